package pin

import "errors"

var (
	// ErrShapeMismatch indicates the substance count is not len(radii)+1.
	ErrShapeMismatch = errors.New("pin: substances must number len(radii)+1")

	// ErrNonMonotonicRadii indicates radii that are not strictly increasing.
	ErrNonMonotonicRadii = errors.New("pin: radii must be strictly increasing")

	// ErrInvalidRadius indicates a non-finite or non-positive radius.
	ErrInvalidRadius = errors.New("pin: invalid radius")

	// ErrNilSubstance indicates a nil substance in the fill list.
	ErrNilSubstance = errors.New("pin: substance is nil")

	// ErrEmptyName indicates a blank template name.
	ErrEmptyName = errors.New("pin: empty name")

	// ErrDuplicateName indicates two templates with the same name in one batch.
	ErrDuplicateName = errors.New("pin: duplicate name")
)
