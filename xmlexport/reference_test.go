package xmlexport

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pinlat/assembly"
	"github.com/katalvlaran/pinlat/config"
)

// TestRender_ReferenceAssembly renders the embedded 17×17 assembly.
//
// Fill IDs: fuel 1, control-rod 2, guide-tube 3, lattice 4, root 5.
// Surfaces: fuel 1-2, control-rod 3-4, guide-tube 5-8, bounding box 9-14.
// Cells: fuel 1-3, control-rod 4-6, guide-tube 7-11, root 12.
func TestRender_ReferenceAssembly(t *testing.T) {
	m, err := assembly.Build(context.Background(), config.Reference())
	require.NoError(t, err)
	docs, err := Render(m)
	require.NoError(t, err)

	var geo geometryDoc
	decode(t, docs.Geometry, &geo)
	require.Len(t, geo.Lattices, 1)
	lat := geo.Lattices[0]
	assert.Equal(t, 4, lat.ID)
	assert.Equal(t, "1.26 1.26", lat.Pitch)
	assert.Equal(t, "17 17", lat.Dimension)
	assert.Equal(t, "-10.71 -10.71", lat.LowerLeft)

	rows := strings.Split(strings.Trim(lat.Universes.Body, "\n"), "\n")
	require.Len(t, rows, 17)
	assert.Equal(t, "1 1 1 1 1 2 1 1 2 1 1 2 1 1 1 1 1", rows[2])
	assert.Equal(t, "1 1 2 1 1 2 1 1 3 1 1 2 1 1 2 1 1", rows[8])
	assert.Equal(t, rows[2], rows[14])

	require.Len(t, geo.Surfaces, 14)
	assert.Equal(t, surfaceXML{ID: 1, Type: "z-cylinder", Coeffs: "0 0 0.52273"}, geo.Surfaces[0])
	assert.Equal(t, surfaceXML{ID: 14, Type: "z-plane", Coeffs: "100", Boundary: "reflective"}, geo.Surfaces[13])

	root := geo.Cells[len(geo.Cells)-1]
	assert.Equal(t, cellXML{ID: 12, Name: "root cell", Fill: "4", Region: "9 -10 11 -12 13 -14", Universe: 5}, root)

	var mats materialsDoc
	decode(t, docs.Materials, &mats)
	require.Len(t, mats.Materials, 3)
	assert.Equal(t, "0.080175", mats.Materials[0].Density.Value)
	assert.Equal(t, "atom/b-cm", mats.Materials[0].Density.Units)
	assert.Equal(t, nuclideXML{Name: "U233", AO: "0.0015621"}, mats.Materials[0].Nuclides[0])
	assert.Equal(t, &sabXML{Name: "c_D_in_D2O"}, mats.Materials[2].Sab)

	var plots plotsDoc
	decode(t, docs.Plots, &plots)
	require.Len(t, plots.Plots, 2)
	assert.Equal(t, "materials-xy-Height", plots.Plots[0].Filename)
	assert.Equal(t, "25 25", plots.Plots[0].Width)
}
