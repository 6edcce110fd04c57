package boundary

import (
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/pinlat/csg"
)

var (
	// ErrInvalidExtent indicates a span or height that is not a positive number.
	ErrInvalidExtent = errors.New("boundary: invalid extent")

	// ErrInvalidCondition indicates an unknown boundary condition.
	ErrInvalidCondition = errors.New("boundary: invalid condition")

	// ErrNilLattice indicates Bound was called without a lattice.
	ErrNilLattice = errors.New("boundary: lattice is nil")
)

// Condition is the boundary condition applied to a group of outer surfaces.
type Condition int

const (
	// Reflective mirrors particles back into the assembly (infinite lattice).
	Reflective Condition = iota + 1
	// Vacuum lets particles leak out.
	Vacuum
	// Periodic re-enters particles through the opposite face.
	Periodic
)

var conditionNames = map[Condition]string{
	Reflective: "reflective",
	Vacuum:     "vacuum",
	Periodic:   "periodic",
}

// String returns the condition keyword.
func (c Condition) String() string {
	if s, ok := conditionNames[c]; ok {
		return s
	}

	return "unknown"
}

// Valid reports whether c is one of the declared conditions.
func (c Condition) Valid() bool {
	_, ok := conditionNames[c]
	return ok
}

// ParseCondition maps "reflective", "vacuum" or "periodic" to a Condition.
func ParseCondition(s string) (Condition, error) {
	key := strings.ToLower(strings.TrimSpace(s))
	for c, name := range conditionNames {
		if name == key {
			return c, nil
		}
	}

	return 0, fmt.Errorf("ParseCondition(%q): %w", s, ErrInvalidCondition)
}

// boundaryType maps a Condition to its csg surface tag.
func (c Condition) boundaryType() csg.BoundaryType {
	switch c {
	case Reflective:
		return csg.Reflective
	case Vacuum:
		return csg.Vacuum
	case Periodic:
		return csg.Periodic
	default:
		return csg.Transmission
	}
}
