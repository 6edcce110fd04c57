package lattice_test

import (
	"testing"

	"github.com/katalvlaran/pinlat/csg"
	"github.com/katalvlaran/pinlat/material"
	"github.com/katalvlaran/pinlat/pin"
	"github.com/stretchr/testify/require"
)

// pins holds the three reference templates built into one arena.
type pins struct {
	arena                 *csg.Arena
	fuel, guide, rod, alt *pin.Template
}

// newPins builds fuel, guide-tube, control-rod and an extra "alt" template.
func newPins(t testing.TB) pins {
	t.Helper()
	p, err := buildPins()
	require.NoError(t, err)

	return p
}

// buildPins is newPins without a test handle, for examples.
func buildPins() (pins, error) {
	c := material.NewCatalog()
	d := material.Density{Unit: material.AtomPerBarnCm, Value: 0.05}
	fuel, err := c.Define("fuel", d, []material.Nuclide{material.Atom("U233", 1)}, 1500)
	if err != nil {
		return pins{}, err
	}
	clad, err := c.Define("clad", d, []material.Nuclide{material.Atom("Zr91", 1)}, 600)
	if err != nil {
		return pins{}, err
	}
	mod, err := c.Define("moderator", d, []material.Nuclide{material.Atom("H2", 2), material.Atom("O16", 1)}, 600)
	if err != nil {
		return pins{}, err
	}

	arena := csg.NewArena()
	p := pins{arena: arena}
	if p.fuel, err = pin.Make(arena, "fuel", []float64{0.52273, 0.57273}, []*material.Substance{fuel, clad, mod}); err != nil {
		return pins{}, err
	}
	if p.rod, err = pin.Make(arena, "control-rod", []float64{0.5042, 0.5461}, []*material.Substance{mod, clad, mod}); err != nil {
		return pins{}, err
	}
	if p.guide, err = pin.Make(arena, "guide-tube", []float64{0.43688, 0.48387, 0.56134, 0.60198},
		[]*material.Substance{mod, clad, mod, clad, mod}); err != nil {
		return pins{}, err
	}
	if p.alt, err = pin.Make(arena, "alt", nil, []*material.Substance{mod}); err != nil {
		return pins{}, err
	}

	return p, nil
}

// names maps a lattice grid to template names for readable diffs.
func names(grid [][]*pin.Template) [][]string {
	out := make([][]string, len(grid))
	for r, row := range grid {
		out[r] = make([]string, len(row))
		for c, t := range row {
			out[r][c] = t.Name()
		}
	}

	return out
}
