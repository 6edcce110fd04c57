package config_test

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pinlat/config"
)

// TestReference_Values checks the embedded reference description.
func TestReference_Values(t *testing.T) {
	f := config.Reference()
	assert.Equal(t, "hwr-17x17", f.Name)
	assert.Equal(t, config.ReferenceSource, f.Source)

	require.Len(t, f.Materials, 3)
	want := config.Material{
		Name: "moderator", Density: 6.5491e-2, Units: "atom/b-cm", Fraction: "ao",
		Temperature: 600, Sab: "c_D_in_D2O",
		Nuclides: []config.Nuclide{{Name: "H2", Fraction: 4.3661e-2}, {Name: "O16", Fraction: 2.1830e-2}},
	}
	if diff := cmp.Diff(want, f.Materials[2]); diff != "" {
		t.Fatalf("moderator mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, 1500.0, f.Materials[0].Temperature)

	wantPins := []config.Pin{
		{Name: "fuel", Radii: []float64{0.52273, 0.57273}, Materials: []string{"fuel", "clad", "moderator"}},
		{Name: "control-rod", Radii: []float64{0.5042, 0.5461}, Materials: []string{"moderator", "clad", "moderator"}},
		{Name: "guide-tube", Radii: []float64{0.43688, 0.48387, 0.56134, 0.60198},
			Materials: []string{"moderator", "clad", "moderator", "clad", "moderator"}},
	}
	if diff := cmp.Diff(wantPins, f.Pins); diff != "" {
		t.Fatalf("pins mismatch (-want +got):\n%s", diff)
	}

	assert.Equal(t, 17, f.Lattice.Size)
	assert.Equal(t, 1.26, f.Lattice.Pitch)
	assert.Nil(t, f.Lattice.PitchTolerance)
	assert.Len(t, f.Lattice.Rules, 5)
	assert.Equal(t, config.Bounds{Span: 21.42, Height: 200, Radial: "reflective", Axial: "reflective"}, f.Bounds)
	assert.Equal(t, config.Settings{Particles: 10000, Inactive: 100, Batches: 200, Temperature: "interpolated-multipole"}, f.Settings)
	require.Len(t, f.Plots, 2)
	assert.Equal(t, []float64{100, 100}, f.Plots[1].Width)
}

// TestReference_FreshCopy makes sure callers cannot corrupt the embedded file.
func TestReference_FreshCopy(t *testing.T) {
	a := config.Reference()
	a.Pins[0].Radii[0] = 99
	a.Name = "changed"
	b := config.Reference()
	assert.Equal(t, 0.52273, b.Pins[0].Radii[0])
	assert.Equal(t, "hwr-17x17", b.Name)

	raw := config.ReferenceYAML()
	raw[0] = 'X'
	assert.NotEqual(t, byte('X'), config.ReferenceYAML()[0])
}

// TestLoad reads a description from disk.
func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "assembly.yaml")
	require.NoError(t, os.WriteFile(path, config.ReferenceYAML(), 0o600))

	f, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, path, f.Source)

	_, err = config.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

// TestParse_FieldErrors edits the reference document and checks the reported path.
func TestParse_FieldErrors(t *testing.T) {
	ref := string(config.ReferenceYAML())
	cases := []struct {
		name  string
		old   string
		new   string
		field string
	}{
		{"MissingName", "name: hwr-17x17", "name: ''", "name"},
		{"BadUnits", "units: atom/b-cm\n    fraction: ao\n    temperature: 1500", "units: furlongs\n    fraction: ao\n    temperature: 1500", "materials[0].units"},
		{"BadFraction", "fraction: ao\n    temperature: 600\n    nuclides:\n      - {name: Zr91", "fraction: vo\n    temperature: 600\n    nuclides:\n      - {name: Zr91", "materials[1].fraction"},
		{"EmptyNuclideName", "{name: Th232,", "{name: '',", "materials[0].nuclides[1].name"},
		{"NoPinMaterials", "materials: [moderator, clad, moderator]\n", "materials: []\n", "pins[1].materials"},
		{"NoBase", "base: fuel", "base: ''", "lattice.base"},
		{"RuleWithoutRows", "rows: [8], cols: [8]", "rows: [], cols: [8]", "lattice.rules[0].rows"},
		{"RuleWithoutCols", "rows: [8], cols: [2, 5, 11, 14]", "rows: [8], cols: []", "lattice.rules[4].cols"},
		{"BadRadial", "radial: reflective", "radial: white", "bounds.radial"},
		{"BadAxial", "axial: reflective", "axial: black", "bounds.axial"},
		{"BadTemperature", "temperature: interpolated-multipole", "temperature: hot", "settings.temperature"},
		{"BadBasis", "basis: xz", "basis: zz", "plots[1].basis"},
		{"BadColor", "color_by: material\n  - id: 2", "color_by: density\n  - id: 2", "plots[0].color_by"},
		{"ShortOrigin", "origin: [0, 0, 0]\n    pixels: [3000, 3000]\n    width: [25, 25]", "origin: [0, 0]\n    pixels: [3000, 3000]\n    width: [25, 25]", "plots[0].origin"},
		{"ShortPixels", "pixels: [3000, 3000]\n    width: [100, 100]", "pixels: [3000]\n    width: [100, 100]", "plots[1].pixels"},
		{"LongWidth", "width: [25, 25]", "width: [25, 25, 25]", "plots[0].width"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.Contains(t, ref, tc.old)
			data := strings.Replace(ref, tc.old, tc.new, 1)

			f, err := config.Parse([]byte(data), "test.yaml")
			assert.Nil(t, f)
			require.ErrorIs(t, err, config.ErrInvalidConfig)

			var fe *config.FieldError
			require.True(t, errors.As(err, &fe))
			assert.Equal(t, tc.field, fe.Field)
			assert.Equal(t, "test.yaml", fe.Source)
			assert.Contains(t, err.Error(), "test.yaml: "+tc.field+": ")
		})
	}
}

// TestParse_Malformed covers decoder-level failures.
func TestParse_Malformed(t *testing.T) {
	cases := map[string]string{
		"Empty":      "",
		"UnknownKey": "name: x\ncolour: blue\n",
		"WrongType":  "name: x\nmaterials: 3\n",
		"NoMaterial": "name: x\n",
	}
	for name, data := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := config.Parse([]byte(data), "bad.yaml")
			assert.ErrorIs(t, err, config.ErrInvalidConfig)
		})
	}
}

// TestParse_MinimalDefaults accepts a document relying on keyword defaults.
func TestParse_MinimalDefaults(t *testing.T) {
	data := `
name: tiny
materials:
  - name: water
    density: 1
    units: g/cc
    temperature: 300
    nuclides: [{name: H1, fraction: 2}, {name: O16, fraction: 1}]
pins:
  - {name: water, materials: [water]}
lattice: {size: 1, pitch: 1, base: water}
bounds: {span: 1, height: 1, radial: vacuum, axial: periodic}
settings: {particles: 10, batches: 2}
`
	f, err := config.Parse([]byte(data), "tiny.yaml")
	require.NoError(t, err)
	assert.Empty(t, f.Materials[0].Fraction)
	assert.Empty(t, f.Settings.Temperature)
	assert.Empty(t, f.Plots)
}
