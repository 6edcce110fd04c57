// SPDX-License-Identifier: MIT
// Package: pinlat/csg
//
// types.go — surfaces, boundary types and half-spaces.

package csg

import (
	"errors"
	"fmt"
	"strconv"
)

// Sentinel errors for csg operations.
var (
	// ErrNilSurface indicates a nil *Surface was passed where one is required.
	ErrNilSurface = errors.New("csg: surface is nil")

	// ErrNotPeriodic indicates a periodic pairing on a non-periodic surface.
	ErrNotPeriodic = errors.New("csg: surface is not periodic")

	// ErrBadPair indicates incompatible periodic partners.
	ErrBadPair = errors.New("csg: incompatible periodic pair")

	// ErrNilArena indicates a builder was called without an ID arena.
	ErrNilArena = errors.New("csg: arena is nil")

	// ErrNilFill indicates a cell without material and without fill.
	ErrNilFill = errors.New("csg: cell has no fill")
)

// Point is a position in cartesian space, in centimeters.
type Point struct {
	X, Y, Z float64
}

// SurfaceKind enumerates the primitive surfaces the builder needs.
type SurfaceKind int

const (
	// XPlane is the plane x = x0.
	XPlane SurfaceKind = iota
	// YPlane is the plane y = y0.
	YPlane
	// ZPlane is the plane z = z0.
	ZPlane
	// ZCylinder is the infinite cylinder x² + y² = r² around the z axis.
	ZCylinder
)

// String returns the solver's surface type keyword.
func (k SurfaceKind) String() string {
	switch k {
	case XPlane:
		return "x-plane"
	case YPlane:
		return "y-plane"
	case ZPlane:
		return "z-plane"
	case ZCylinder:
		return "z-cylinder"
	default:
		return "unknown"
	}
}

// BoundaryType is the condition a particle meets when crossing a surface.
type BoundaryType int

const (
	// Transmission lets particles pass through; default for internal surfaces.
	Transmission BoundaryType = iota
	// Reflective mirrors the particle direction.
	Reflective
	// Vacuum kills the particle (leakage).
	Vacuum
	// Periodic moves the particle to the paired surface.
	Periodic
)

// String returns the solver's boundary keyword.
func (b BoundaryType) String() string {
	switch b {
	case Transmission:
		return "transmission"
	case Reflective:
		return "reflective"
	case Vacuum:
		return "vacuum"
	case Periodic:
		return "periodic"
	default:
		return "unknown"
	}
}

// Surface is an immutable primitive surface. Coeff is x0, y0, z0 or r
// depending on Kind. Periodic holds the partner surface ID (0 when unpaired).
type Surface struct {
	ID       int
	Kind     SurfaceKind
	Coeff    float64
	Boundary BoundaryType
	Periodic int
}

// SurfaceOption customizes a surface at creation time.
type SurfaceOption func(*Surface)

// WithBoundary tags a surface with a boundary type.
func WithBoundary(b BoundaryType) SurfaceOption {
	return func(s *Surface) { s.Boundary = b }
}

// Evaluate returns the signed surface function f(p). Points with f < 0 lie on
// the negative side.
func (s *Surface) Evaluate(p Point) float64 {
	switch s.Kind {
	case XPlane:
		return p.X - s.Coeff
	case YPlane:
		return p.Y - s.Coeff
	case ZPlane:
		return p.Z - s.Coeff
	case ZCylinder:
		return p.X*p.X + p.Y*p.Y - s.Coeff*s.Coeff
	default:
		return 0
	}
}

// Neg returns the half-space f(p) < 0.
func (s *Surface) Neg() Halfspace { return Halfspace{Surface: s, Positive: false} }

// Pos returns the half-space f(p) > 0.
func (s *Surface) Pos() Halfspace { return Halfspace{Surface: s, Positive: true} }

// String renders the surface for diagnostics.
func (s *Surface) String() string {
	return fmt.Sprintf("%s(id=%d, %s, %s)", s.Kind, s.ID,
		strconv.FormatFloat(s.Coeff, 'g', -1, 64), s.Boundary)
}

// PairPeriodic links two periodic surfaces of the same kind.
// Both surfaces must carry the Periodic boundary type.
func PairPeriodic(a, b *Surface) error {
	if a == nil || b == nil {
		return fmt.Errorf("PairPeriodic: %w", ErrNilSurface)
	}
	if a.Boundary != Periodic || b.Boundary != Periodic {
		return fmt.Errorf("PairPeriodic: surfaces %d and %d: %w", a.ID, b.ID, ErrNotPeriodic)
	}
	if a.Kind != b.Kind || a.ID == b.ID {
		return fmt.Errorf("PairPeriodic: %s and %s: %w", a, b, ErrBadPair)
	}
	a.Periodic, b.Periodic = b.ID, a.ID

	return nil
}

// Halfspace is one side of a surface.
type Halfspace struct {
	Surface  *Surface
	Positive bool
}

// Contains reports whether p lies strictly on this side of the surface.
func (h Halfspace) Contains(p Point) bool {
	f := h.Surface.Evaluate(p)
	if h.Positive {
		return f > 0
	}

	return f < 0
}

// String renders the half-space in solver syntax: "-7" or "7".
func (h Halfspace) String() string {
	if h.Positive {
		return strconv.Itoa(h.Surface.ID)
	}

	return "-" + strconv.Itoa(h.Surface.ID)
}
