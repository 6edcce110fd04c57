// SPDX-License-Identifier: MIT
// Package: pinlat/csg
//
// arena.go — ID allocation for surfaces, cells and universes.
//
// Contract:
//   - IDs start at 1 and increase by one per allocation within each kind.
//   - Universes and lattices draw from the same counter.
//   - Allocation is lock-free (atomic counters); callers that need stable IDs
//     must allocate in a deterministic order.

package csg

import (
	"sync/atomic"

	"github.com/katalvlaran/pinlat/material"
)

// Arena hands out IDs and constructs geometry primitives.
// The zero value is ready to use.
type Arena struct {
	nextSurface  atomic.Int64
	nextCell     atomic.Int64
	nextUniverse atomic.Int64
}

// NewArena returns an empty arena.
func NewArena() *Arena { return &Arena{} }

// NextUniverseID reserves an ID in the universe/lattice space.
func (a *Arena) NextUniverseID() int { return int(a.nextUniverse.Add(1)) }

func (a *Arena) surface(kind SurfaceKind, coeff float64, opts []SurfaceOption) *Surface {
	s := &Surface{
		ID:    int(a.nextSurface.Add(1)),
		Kind:  kind,
		Coeff: coeff,
	}
	for _, opt := range opts {
		opt(s)
	}

	return s
}

// XPlane creates the plane x = x0.
func (a *Arena) XPlane(x0 float64, opts ...SurfaceOption) *Surface {
	return a.surface(XPlane, x0, opts)
}

// YPlane creates the plane y = y0.
func (a *Arena) YPlane(y0 float64, opts ...SurfaceOption) *Surface {
	return a.surface(YPlane, y0, opts)
}

// ZPlane creates the plane z = z0.
func (a *Arena) ZPlane(z0 float64, opts ...SurfaceOption) *Surface {
	return a.surface(ZPlane, z0, opts)
}

// ZCylinder creates the cylinder of radius r centered on the z axis.
func (a *Arena) ZCylinder(r float64, opts ...SurfaceOption) *Surface {
	return a.surface(ZCylinder, r, opts)
}

// MaterialCell creates a cell filled with a substance.
func (a *Arena) MaterialCell(name string, region Region, m *material.Substance) (*Cell, error) {
	if err := validateFill(name, m, nil); err != nil {
		return nil, err
	}

	return &Cell{ID: int(a.nextCell.Add(1)), Name: name, Region: region, Material: m}, nil
}

// FillCell creates a cell filled with a universe or lattice.
func (a *Arena) FillCell(name string, region Region, f Filler) (*Cell, error) {
	if err := validateFill(name, nil, f); err != nil {
		return nil, err
	}

	return &Cell{ID: int(a.nextCell.Add(1)), Name: name, Region: region, Fill: f}, nil
}

// Universe creates a universe holding cells in the given order.
func (a *Arena) Universe(name string, cells ...*Cell) *Universe {
	cs := make([]*Cell, len(cells))
	copy(cs, cells)

	return &Universe{ID: a.NextUniverseID(), Name: name, Cells: cs}
}
