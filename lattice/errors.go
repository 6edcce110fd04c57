package lattice

import "errors"

var (
	// ErrOutOfRange indicates a rule position outside the lattice.
	ErrOutOfRange = errors.New("lattice: position out of range")

	// ErrTooSmall indicates a lattice size below 1.
	ErrTooSmall = errors.New("lattice: size must be ≥ 1")

	// ErrInvalidPitch indicates a non-positive or non-finite pitch or span.
	ErrInvalidPitch = errors.New("lattice: invalid pitch or span")

	// ErrNilTemplate indicates a nil base or rule template.
	ErrNilTemplate = errors.New("lattice: template is nil")

	// ErrInconsistentPitch indicates span differs from n·pitch beyond tolerance.
	ErrInconsistentPitch = errors.New("lattice: span inconsistent with size × pitch")
)
