// SPDX-License-Identifier: MIT
// Package: pinlat/lattice
//
// lattice.go — Build(arena, base, n, pitch, span, rules, opts...) and the
// immutable Lattice it returns.
//
// Algorithm:
//  1. Validate size, pitch, span and the base template.
//  2. Fill an n×n grid with base.
//  3. For each rule in order, for each position: range-check, then assign.
//     Fail fast on the first out-of-range position; the partial grid is
//     discarded.
//  4. Reserve a universe ID for the lattice and freeze the grid.
//
// Complexity: O(n² + Σ|rule positions|) time, O(n²) space.

package lattice

import (
	"fmt"
	"math"

	"github.com/katalvlaran/pinlat/csg"
	"github.com/katalvlaran/pinlat/pin"
)

const methodBuild = "Build"

// Lattice is an immutable N×N grid of shared template references.
// It implements csg.Filler.
type Lattice struct {
	id        int
	name      string
	n         int
	pitch     float64
	span      float64
	lowerLeft [2]float64
	grid      [][]*pin.Template
	templates []*pin.Template
}

// Build composes the lattice. See the package documentation for semantics.
func Build(arena *csg.Arena, base *pin.Template, n int, pitch, span float64, rules []Rule, opts ...Option) (*Lattice, error) {
	cfg := newConfig(opts...)

	// 1) Validate scalar inputs.
	if n < 1 {
		return nil, fmt.Errorf("%s: n=%d: %w", methodBuild, n, ErrTooSmall)
	}
	if !positiveFinite(pitch) || !positiveFinite(span) {
		return nil, fmt.Errorf("%s: pitch=%g, span=%g: %w", methodBuild, pitch, span, ErrInvalidPitch)
	}
	if cfg.checkPitch {
		if d := math.Abs(span - float64(n)*pitch); d > cfg.tolerance {
			return nil, fmt.Errorf("%s: span=%g vs %d×%g (Δ=%g > %g): %w",
				methodBuild, span, n, pitch, d, cfg.tolerance, ErrInconsistentPitch)
		}
	}
	if base == nil {
		return nil, fmt.Errorf("%s: base: %w", methodBuild, ErrNilTemplate)
	}
	if arena == nil {
		return nil, fmt.Errorf("%s: %w", methodBuild, csg.ErrNilArena)
	}

	// 2) Tile the base template.
	grid := make([][]*pin.Template, n)
	owner := make([][]int, n)
	for r := 0; r < n; r++ {
		grid[r] = make([]*pin.Template, n)
		owner[r] = make([]int, n)
		for c := 0; c < n; c++ {
			grid[r][c] = base
			owner[r][c] = -1
		}
	}

	// 3) Apply rules in declared order; last write wins.
	for i, rule := range rules {
		if rule.template == nil {
			return nil, fmt.Errorf("%s: rule[%d]: %w", methodBuild, i, ErrNilTemplate)
		}
		for _, p := range rule.positions {
			if p.Row < 0 || p.Row >= n || p.Col < 0 || p.Col >= n {
				return nil, fmt.Errorf("%s: rule[%d] (%s) position %s outside [0,%d): %w",
					methodBuild, i, rule.template.Name(), p, n, ErrOutOfRange)
			}
			if prev := owner[p.Row][p.Col]; prev >= 0 && prev != i && cfg.onOverlap != nil {
				cfg.onOverlap(p, grid[p.Row][p.Col], rule.template)
			}
			grid[p.Row][p.Col] = rule.template
			owner[p.Row][p.Col] = i
		}
	}

	// 4) Freeze.
	half := span / 2
	lat := &Lattice{
		id:        arena.NextUniverseID(),
		name:      cfg.name,
		n:         n,
		pitch:     pitch,
		span:      span,
		lowerLeft: [2]float64{-half, -half},
		grid:      grid,
		templates: distinct(grid),
	}

	return lat, nil
}

func positiveFinite(v float64) bool {
	return v > 0 && !math.IsInf(v, 0) && !math.IsNaN(v)
}

// distinct lists templates in row-major first-appearance order.
func distinct(grid [][]*pin.Template) []*pin.Template {
	seen := make(map[*pin.Template]struct{})
	var out []*pin.Template
	for _, row := range grid {
		for _, t := range row {
			if _, ok := seen[t]; ok {
				continue
			}
			seen[t] = struct{}{}
			out = append(out, t)
		}
	}

	return out
}

// ID returns the lattice ID (shared universe/lattice ID space).
func (l *Lattice) ID() int { return l.id }

// FillID returns the lattice ID so a cell can be filled with it.
func (l *Lattice) FillID() int { return l.id }

// Name returns the label set by WithName, or "".
func (l *Lattice) Name() string { return l.name }

// Size returns n.
func (l *Lattice) Size() int { return l.n }

// Pitch returns the center-to-center pin spacing.
func (l *Lattice) Pitch() float64 { return l.pitch }

// Span returns the physical assembly width used for the origin.
func (l *Lattice) Span() float64 { return l.span }

// LowerLeft returns the lower-left corner (-span/2, -span/2).
func (l *Lattice) LowerLeft() (x, y float64) { return l.lowerLeft[0], l.lowerLeft[1] }

// InBounds reports whether (row, col) lies within the lattice.
func (l *Lattice) InBounds(row, col int) bool {
	return row >= 0 && row < l.n && col >= 0 && col < l.n
}

// At returns the template at (row, col).
func (l *Lattice) At(row, col int) (*pin.Template, error) {
	if !l.InBounds(row, col) {
		return nil, fmt.Errorf("At%s: %w", Position{Row: row, Col: col}, ErrOutOfRange)
	}

	return l.grid[row][col], nil
}

// Universes returns a copy of the grid, row 0 (top) first.
func (l *Lattice) Universes() [][]*pin.Template {
	out := make([][]*pin.Template, l.n)
	for r := range l.grid {
		out[r] = append([]*pin.Template(nil), l.grid[r]...)
	}

	return out
}

// Templates returns the distinct templates in row-major first-appearance order.
func (l *Lattice) Templates() []*pin.Template {
	return append([]*pin.Template(nil), l.templates...)
}

// Count returns how many positions hold t.
func (l *Lattice) Count(t *pin.Template) int {
	n := 0
	for _, row := range l.grid {
		for _, got := range row {
			if got == t {
				n++
			}
		}
	}

	return n
}

// Positions returns the positions holding t, row-major.
func (l *Lattice) Positions(t *pin.Template) []Position {
	var out []Position
	for r, row := range l.grid {
		for c, got := range row {
			if got == t {
				out = append(out, Position{Row: r, Col: c})
			}
		}
	}

	return out
}

// Center returns the (x, y) center of the cell at (row, col).
// Row 0 is the top row.
func (l *Lattice) Center(row, col int) (x, y float64, err error) {
	if !l.InBounds(row, col) {
		return 0, 0, fmt.Errorf("Center%s: %w", Position{Row: row, Col: col}, ErrOutOfRange)
	}
	x = l.lowerLeft[0] + (float64(col)+0.5)*l.pitch
	y = l.lowerLeft[1] + (float64(l.n-1-row)+0.5)*l.pitch

	return x, y, nil
}
