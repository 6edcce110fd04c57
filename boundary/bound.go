// SPDX-License-Identifier: MIT
// Package: pinlat/boundary
//
// bound.go — Bound(arena, lattice, span, height, radial, axial).
//
// Contract:
//   - span > 0 and height > 0, both finite (else ErrInvalidExtent).
//   - Conditions must be Reflective, Vacuum or Periodic (else ErrInvalidCondition).
//   - Surfaces are allocated in the order xmin, xmax, ymin, ymax, bottom, top.
//   - The returned Region is immutable.

package boundary

import (
	"fmt"
	"math"

	"github.com/katalvlaran/pinlat/csg"
	"github.com/katalvlaran/pinlat/lattice"
)

const (
	methodBound  = "Bound"
	rootCellName = "root cell"
	rootName     = "root"
)

// Region is a lattice bounded radially by a prism and axially by two planes.
type Region struct {
	lat      *lattice.Lattice
	span     float64
	height   float64
	radialBC Condition
	axialBC  Condition

	xmin, xmax, ymin, ymax, bottom, top *csg.Surface

	region csg.Region
	cell   *csg.Cell
	root   *csg.Universe
}

// Bound builds the bounded root geometry around lat.
func Bound(arena *csg.Arena, lat *lattice.Lattice, span, height float64, radial, axial Condition) (*Region, error) {
	// 1) Validate inputs before allocating anything.
	if arena == nil {
		return nil, fmt.Errorf("%s: %w", methodBound, csg.ErrNilArena)
	}
	if lat == nil {
		return nil, fmt.Errorf("%s: %w", methodBound, ErrNilLattice)
	}
	if !positiveFinite(span) {
		return nil, fmt.Errorf("%s: span=%g: %w", methodBound, span, ErrInvalidExtent)
	}
	if !positiveFinite(height) {
		return nil, fmt.Errorf("%s: height=%g: %w", methodBound, height, ErrInvalidExtent)
	}
	if !radial.Valid() {
		return nil, fmt.Errorf("%s: radial condition %d: %w", methodBound, int(radial), ErrInvalidCondition)
	}
	if !axial.Valid() {
		return nil, fmt.Errorf("%s: axial condition %d: %w", methodBound, int(axial), ErrInvalidCondition)
	}

	half, halfZ := span/2, height/2
	rbc := csg.WithBoundary(radial.boundaryType())
	abc := csg.WithBoundary(axial.boundaryType())

	// 2) Radial prism, then axial planes.
	b := &Region{
		lat:      lat,
		span:     span,
		height:   height,
		radialBC: radial,
		axialBC:  axial,
		xmin:     arena.XPlane(-half, rbc),
		xmax:     arena.XPlane(half, rbc),
		ymin:     arena.YPlane(-half, rbc),
		ymax:     arena.YPlane(half, rbc),
		bottom:   arena.ZPlane(-halfZ, abc),
		top:      arena.ZPlane(halfZ, abc),
	}

	// 3) Pair opposite faces for periodic conditions.
	if radial == Periodic {
		if err := csg.PairPeriodic(b.xmin, b.xmax); err != nil {
			return nil, fmt.Errorf("%s: %w", methodBound, err)
		}
		if err := csg.PairPeriodic(b.ymin, b.ymax); err != nil {
			return nil, fmt.Errorf("%s: %w", methodBound, err)
		}
	}
	if axial == Periodic {
		if err := csg.PairPeriodic(b.bottom, b.top); err != nil {
			return nil, fmt.Errorf("%s: %w", methodBound, err)
		}
	}

	// 4) Inside the prism AND above the bottom AND below the top.
	prism := csg.Region{b.xmin.Pos(), b.xmax.Neg(), b.ymin.Pos(), b.ymax.Neg()}
	b.region = prism.And(b.bottom.Pos(), b.top.Neg())

	cell, err := arena.FillCell(rootCellName, b.region, lat)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodBound, err)
	}
	b.cell = cell
	b.root = arena.Universe(rootName, cell)

	return b, nil
}

func positiveFinite(v float64) bool {
	return v > 0 && !math.IsInf(v, 0) && !math.IsNaN(v)
}

// Lattice returns the bounded lattice.
func (b *Region) Lattice() *lattice.Lattice { return b.lat }

// Span returns the radial prism width.
func (b *Region) Span() float64 { return b.span }

// Height returns the axial extent.
func (b *Region) Height() float64 { return b.height }

// RadialExtent returns [min, max] on both x and y.
func (b *Region) RadialExtent() (lo, hi float64) { return b.xmin.Coeff, b.xmax.Coeff }

// AxialExtent returns [min, max] on z.
func (b *Region) AxialExtent() (lo, hi float64) { return b.bottom.Coeff, b.top.Coeff }

// RadialCondition returns the condition on the four prism faces.
func (b *Region) RadialCondition() Condition { return b.radialBC }

// AxialCondition returns the condition on the two axial planes.
func (b *Region) AxialCondition() Condition { return b.axialBC }

// Contains reports whether (x, y, z) lies strictly inside the bounded region.
func (b *Region) Contains(x, y, z float64) bool {
	return b.region.Contains(csg.Point{X: x, Y: y, Z: z})
}

// Bounds returns the bounding half-space intersection.
func (b *Region) Bounds() csg.Region { return append(csg.Region(nil), b.region...) }

// Cell returns the root cell filled with the lattice.
func (b *Region) Cell() *csg.Cell { return b.cell }

// Root returns the root universe.
func (b *Region) Root() *csg.Universe { return b.root }

// Surfaces returns the six bounding surfaces: xmin, xmax, ymin, ymax, bottom, top.
func (b *Region) Surfaces() []*csg.Surface {
	return []*csg.Surface{b.xmin, b.xmax, b.ymin, b.ymax, b.bottom, b.top}
}
