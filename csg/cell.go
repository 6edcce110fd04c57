package csg

import (
	"fmt"

	"github.com/katalvlaran/pinlat/material"
)

// Filler is anything a cell can be filled with besides a material: a
// universe or a lattice. FillID is the shared universe/lattice ID.
type Filler interface {
	FillID() int
}

// Cell is a region of space filled with exactly one of Material or Fill.
type Cell struct {
	ID       int
	Name     string
	Region   Region
	Material *material.Substance
	Fill     Filler
}

// Universe is an ordered set of cells. It implements Filler.
type Universe struct {
	ID    int
	Name  string
	Cells []*Cell
}

// FillID returns the universe ID.
func (u *Universe) FillID() int { return u.ID }

// Surfaces returns every surface used by the universe's own cells, in order
// of first appearance. Nested fills are not traversed.
func (u *Universe) Surfaces() []*Surface {
	var all Region
	for _, c := range u.Cells {
		all = append(all, c.Region...)
	}

	return all.Surfaces()
}

// validateFill enforces "exactly one of Material or Fill".
func validateFill(name string, m *material.Substance, f Filler) error {
	if m == nil && f == nil {
		return fmt.Errorf("Cell(%q): %w", name, ErrNilFill)
	}
	if m != nil && f != nil {
		return fmt.Errorf("Cell(%q): both material and fill set: %w", name, ErrNilFill)
	}

	return nil
}
