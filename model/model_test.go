package model_test

import (
	"testing"

	"github.com/katalvlaran/pinlat/boundary"
	"github.com/katalvlaran/pinlat/csg"
	"github.com/katalvlaran/pinlat/lattice"
	"github.com/katalvlaran/pinlat/material"
	"github.com/katalvlaran/pinlat/model"
	"github.com/katalvlaran/pinlat/pin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixture struct {
	catalog *material.Catalog
	arena   *csg.Arena
	region  *boundary.Region
}

// newFixture builds a 3×3 lattice of clad water rods inside a reflective box.
func newFixture(t *testing.T) fixture {
	t.Helper()
	c := material.NewCatalog()
	water, err := c.Define("water", material.Density{Unit: material.GramPerCm3, Value: 1},
		[]material.Nuclide{material.Atom("H1", 2), material.Atom("O16", 1)}, 300)
	require.NoError(t, err)
	zr, err := c.Define("zirc", material.Density{Unit: material.GramPerCm3, Value: 6.55},
		[]material.Nuclide{material.Atom("Zr90", 1)}, 300)
	require.NoError(t, err)

	arena := csg.NewArena()
	rod, err := pin.Make(arena, "rod", []float64{0.4, 0.45}, []*material.Substance{water, zr, water})
	require.NoError(t, err)
	lat, err := lattice.Build(arena, rod, 3, 1.26, 3.78, nil)
	require.NoError(t, err)
	region, err := boundary.Bound(arena, lat, 3.78, 10, boundary.Reflective, boundary.Reflective)
	require.NoError(t, err)

	return fixture{catalog: c, arena: arena, region: region}
}

func validPlot() model.Plot {
	return model.Plot{
		Filename: "slice",
		Pixels:   [2]int{100, 100},
		Width:    [2]float64{4, 4},
	}
}

// TestAssemble_Valid checks getters and default settings pass-through.
func TestAssemble_Valid(t *testing.T) {
	f := newFixture(t)
	m, err := model.Assemble(f.catalog, f.region, model.DefaultSettings(), nil)
	require.NoError(t, err)

	assert.Same(t, f.catalog, m.Catalog())
	assert.Same(t, f.region, m.Geometry())
	assert.Equal(t, model.Settings{Particles: 10000, Inactive: 100, Batches: 200}, m.Settings())
	assert.Equal(t, model.InterpolatedMultipole, m.Settings().Temperature)
	assert.Empty(t, m.Plots())
}

// TestAssemble_FreezesCatalog keeps the validated material set fixed.
func TestAssemble_FreezesCatalog(t *testing.T) {
	f := newFixture(t)
	m, err := model.Assemble(f.catalog, f.region, model.DefaultSettings(), nil)
	require.NoError(t, err)

	_, err = m.Catalog().Define("late", material.Density{Unit: material.GramPerCm3, Value: 1},
		[]material.Nuclide{material.Atom("He4", 1)}, 300)
	assert.ErrorIs(t, err, material.ErrFrozen)
	assert.Equal(t, []string{"water", "zirc"}, m.Catalog().Names())
}

// TestAssemble_FailureLeavesCatalogOpen does not seal on a rejected build.
func TestAssemble_FailureLeavesCatalogOpen(t *testing.T) {
	f := newFixture(t)
	_, err := model.Assemble(f.catalog, f.region, model.Settings{}, nil)
	require.ErrorIs(t, err, model.ErrInvalidSettings)
	assert.False(t, f.catalog.Frozen())
}

// TestAssemble_UnresolvedMaterial rejects a substance from a foreign catalog,
// even when it shares a name with a registered one.
func TestAssemble_UnresolvedMaterial(t *testing.T) {
	f := newFixture(t)

	other := material.NewCatalog()
	_, err := other.Define("water", material.Density{Unit: material.GramPerCm3, Value: 1},
		[]material.Nuclide{material.Atom("H1", 2), material.Atom("O16", 1)}, 300)
	require.NoError(t, err)

	m, err := model.Assemble(other, f.region, model.DefaultSettings(), nil)
	assert.Nil(t, m)
	assert.ErrorIs(t, err, model.ErrUnresolvedMaterial)
	assert.Contains(t, err.Error(), `"rod"`)
}

// TestAssemble_Incomplete rejects missing pieces.
func TestAssemble_Incomplete(t *testing.T) {
	f := newFixture(t)
	_, err := model.Assemble(nil, f.region, model.DefaultSettings(), nil)
	assert.ErrorIs(t, err, model.ErrIncomplete)
	_, err = model.Assemble(f.catalog, nil, model.DefaultSettings(), nil)
	assert.ErrorIs(t, err, model.ErrIncomplete)
}

// TestAssemble_InvalidSettings covers each settings constraint.
func TestAssemble_InvalidSettings(t *testing.T) {
	f := newFixture(t)
	cases := []struct {
		name string
		edit func(*model.Settings)
	}{
		{"ZeroParticles", func(s *model.Settings) { s.Particles = 0 }},
		{"ZeroBatches", func(s *model.Settings) { s.Batches = 0 }},
		{"NegativeInactive", func(s *model.Settings) { s.Inactive = -1 }},
		{"InactiveEqualsBatches", func(s *model.Settings) { s.Inactive = s.Batches }},
		{"UnknownMode", func(s *model.Settings) { s.Temperature = model.TemperatureMode(9) }},
		{"NegativeSeed", func(s *model.Settings) { s.Seed = -3 }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s := model.DefaultSettings()
			tc.edit(&s)
			_, err := model.Assemble(f.catalog, f.region, s, nil)
			assert.ErrorIs(t, err, model.ErrInvalidSettings)
		})
	}
}

// TestAssemble_PlotIDs fills missing IDs after the largest explicit one.
func TestAssemble_PlotIDs(t *testing.T) {
	f := newFixture(t)
	a, b, c := validPlot(), validPlot(), validPlot()
	b.ID = 5
	plots := []model.Plot{a, b, c}

	m, err := model.Assemble(f.catalog, f.region, model.DefaultSettings(), plots)
	require.NoError(t, err)

	got := m.Plots()
	require.Len(t, got, 3)
	assert.Equal(t, []int{6, 5, 7}, []int{got[0].ID, got[1].ID, got[2].ID})
	assert.Zero(t, plots[0].ID, "caller slice untouched")

	got[0].Filename = "changed"
	assert.Equal(t, "slice", m.Plots()[0].Filename)
}

// TestAssemble_InvalidPlot covers each plot constraint.
func TestAssemble_InvalidPlot(t *testing.T) {
	f := newFixture(t)
	cases := []struct {
		name  string
		plots func() []model.Plot
	}{
		{"EmptyFilename", func() []model.Plot { p := validPlot(); p.Filename = ""; return []model.Plot{p} }},
		{"ZeroPixels", func() []model.Plot { p := validPlot(); p.Pixels[1] = 0; return []model.Plot{p} }},
		{"NegativeWidth", func() []model.Plot { p := validPlot(); p.Width[0] = -1; return []model.Plot{p} }},
		{"BadBasis", func() []model.Plot { p := validPlot(); p.Basis = model.Basis(7); return []model.Plot{p} }},
		{"BadColor", func() []model.Plot { p := validPlot(); p.ColorBy = model.ColorBy(4); return []model.Plot{p} }},
		{"NegativeID", func() []model.Plot { p := validPlot(); p.ID = -1; return []model.Plot{p} }},
		{"DuplicateID", func() []model.Plot {
			a, b := validPlot(), validPlot()
			a.ID, b.ID = 2, 2
			return []model.Plot{a, b}
		}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := model.Assemble(f.catalog, f.region, model.DefaultSettings(), tc.plots())
			assert.ErrorIs(t, err, model.ErrInvalidPlot)
		})
	}
}

// TestParseKeywords maps text inputs to enums.
func TestParseKeywords(t *testing.T) {
	b, err := model.ParseBasis("XZ")
	require.NoError(t, err)
	assert.Equal(t, model.XZ, b)
	_, err = model.ParseBasis("zz")
	assert.ErrorIs(t, err, model.ErrInvalidPlot)

	c, err := model.ParseColorBy("cell")
	require.NoError(t, err)
	assert.Equal(t, model.ColorByCell, c)
	_, err = model.ParseColorBy("density")
	assert.ErrorIs(t, err, model.ErrInvalidPlot)

	m, err := model.ParseTemperatureMode("nearest")
	require.NoError(t, err)
	assert.Equal(t, model.Pointwise, m)
	m, err = model.ParseTemperatureMode("")
	require.NoError(t, err)
	assert.Equal(t, model.InterpolatedMultipole, m)
	_, err = model.ParseTemperatureMode("hot")
	assert.ErrorIs(t, err, model.ErrInvalidSettings)

	assert.Equal(t, "yz", model.YZ.String())
	assert.Equal(t, "material", model.ColorByMaterial.String())
	assert.Equal(t, "pointwise", model.Pointwise.String())
}
