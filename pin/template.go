// SPDX-License-Identifier: MIT
// Package: pinlat/pin
//
// template.go — Make(arena, name, radii, substances) and the Template handle.
//
// Contract:
//   - Validation happens before any arena ID is allocated; a failed Make
//     leaves the arena untouched.
//   - Surfaces, cells and the universe are allocated in a fixed order:
//     cylinders inner→outer, then cells inner→outer, then the universe.
//   - The returned Template never changes afterwards.

package pin

import (
	"fmt"
	"math"
	"strings"

	"github.com/katalvlaran/pinlat/csg"
	"github.com/katalvlaran/pinlat/material"
)

const methodMake = "Make"

// Template is an immutable radial region stack. It implements csg.Filler.
type Template struct {
	name       string
	radii      []float64
	substances []*material.Substance
	surfaces   []*csg.Surface
	universe   *csg.Universe
}

// Make validates the shape and compiles a template into arena.
func Make(arena *csg.Arena, name string, radii []float64, substances []*material.Substance) (*Template, error) {
	if arena == nil {
		return nil, fmt.Errorf("%s(%q): %w", methodMake, name, csg.ErrNilArena)
	}
	name = strings.TrimSpace(name)
	if err := validate(name, radii, substances); err != nil {
		return nil, err
	}

	return compile(arena, name, radii, substances)
}

// validate checks the template shape without touching any arena.
func validate(name string, radii []float64, substances []*material.Substance) error {
	if name == "" {
		return fmt.Errorf("%s: %w", methodMake, ErrEmptyName)
	}
	if len(substances) != len(radii)+1 {
		return fmt.Errorf("%s(%q): %d radii need %d substances, got %d: %w",
			methodMake, name, len(radii), len(radii)+1, len(substances), ErrShapeMismatch)
	}
	for i, r := range radii {
		if math.IsNaN(r) || math.IsInf(r, 0) {
			return fmt.Errorf("%s(%q): radius[%d]=%g: %w", methodMake, name, i, r, ErrInvalidRadius)
		}
	}
	// Ordering first: any non-increasing sequence is a monotonicity error,
	// whatever the sign of its first radius.
	for i := 1; i < len(radii); i++ {
		if radii[i] <= radii[i-1] {
			return fmt.Errorf("%s(%q): radius[%d]=%g ≤ radius[%d]=%g: %w",
				methodMake, name, i, radii[i], i-1, radii[i-1], ErrNonMonotonicRadii)
		}
	}
	if len(radii) > 0 && radii[0] <= 0 {
		return fmt.Errorf("%s(%q): radius[0]=%g must be > 0: %w", methodMake, name, radii[0], ErrInvalidRadius)
	}
	for i, s := range substances {
		if s == nil {
			return fmt.Errorf("%s(%q): substance[%d]: %w", methodMake, name, i, ErrNilSubstance)
		}
	}

	return nil
}

// compile allocates geometry for an already validated shape.
func compile(arena *csg.Arena, name string, radii []float64, substances []*material.Substance) (*Template, error) {
	t := &Template{
		name:       name,
		radii:      append([]float64(nil), radii...),
		substances: append([]*material.Substance(nil), substances...),
		surfaces:   make([]*csg.Surface, len(radii)),
	}

	// 1) One z-cylinder per boundary radius.
	for i, r := range radii {
		t.surfaces[i] = arena.ZCylinder(r)
	}

	// 2) One cell per region; the last one is unbounded outside r(k-1).
	cells := make([]*csg.Cell, 0, len(substances))
	for i, s := range substances {
		var region csg.Region
		if i > 0 {
			region = append(region, t.surfaces[i-1].Pos())
		}
		if i < len(t.surfaces) {
			region = append(region, t.surfaces[i].Neg())
		}
		cell, err := arena.MaterialCell(fmt.Sprintf("%s:%d", name, i), region, s)
		if err != nil {
			return nil, fmt.Errorf("%s(%q): %w", methodMake, name, err)
		}
		cells = append(cells, cell)
	}

	// 3) Wrap the cells into the template universe.
	t.universe = arena.Universe(name, cells...)

	return t, nil
}

// Name returns the template name.
func (t *Template) Name() string { return t.name }

// ID returns the universe ID of the template.
func (t *Template) ID() int { return t.universe.ID }

// FillID returns the universe ID so a lattice or cell can reference the template.
func (t *Template) FillID() int { return t.universe.ID }

// Universe returns the compiled universe.
func (t *Template) Universe() *csg.Universe { return t.universe }

// Radii returns a copy of the boundary radii.
func (t *Template) Radii() []float64 { return append([]float64(nil), t.radii...) }

// Substances returns a copy of the fills, innermost first.
func (t *Template) Substances() []*material.Substance {
	return append([]*material.Substance(nil), t.substances...)
}

// Surfaces returns a copy of the cylinders, innermost first.
func (t *Template) Surfaces() []*csg.Surface {
	return append([]*csg.Surface(nil), t.surfaces...)
}

// SubstanceAt returns the fill at radial distance r from the pin axis.
// A point exactly on a boundary belongs to the outer region.
func (t *Template) SubstanceAt(r float64) *material.Substance {
	r = math.Abs(r)
	for i, b := range t.radii {
		if r < b {
			return t.substances[i]
		}
	}

	return t.substances[len(t.substances)-1]
}

// String renders a short description.
func (t *Template) String() string {
	return fmt.Sprintf("pin %s (universe %d, %d regions)", t.name, t.universe.ID, len(t.substances))
}
