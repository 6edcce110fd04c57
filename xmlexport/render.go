// SPDX-License-Identifier: MIT
// Package: pinlat/xmlexport
//
// render.go — Render(model) → Documents.
//
// Contract:
//   - Pure: no I/O, no clock, no randomness.
//   - Materials in catalog order; cells, surfaces and lattices by ascending ID.
//   - Lattice universes are written row 0 (top) first, one row per line.

package xmlexport

import (
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/katalvlaran/pinlat/csg"
	"github.com/katalvlaran/pinlat/lattice"
	"github.com/katalvlaran/pinlat/material"
	"github.com/katalvlaran/pinlat/model"
)

// ErrNilModel indicates Render or Export was called without a model.
var ErrNilModel = errors.New("xmlexport: model is nil")

// File names written by Export.
const (
	MaterialsFile = "materials.xml"
	GeometryFile  = "geometry.xml"
	SettingsFile  = "settings.xml"
	PlotsFile     = "plots.xml"
)

// Documents holds the rendered XML. Plots is nil when the model has no plots.
type Documents struct {
	Materials []byte
	Geometry  []byte
	Settings  []byte
	Plots     []byte
}

// Files returns the documents keyed by file name, skipping a nil Plots.
func (d Documents) Files() map[string][]byte {
	out := map[string][]byte{
		MaterialsFile: d.Materials,
		GeometryFile:  d.Geometry,
		SettingsFile:  d.Settings,
	}
	if d.Plots != nil {
		out[PlotsFile] = d.Plots
	}

	return out
}

// Render builds every document for m.
func Render(m *model.Model) (Documents, error) {
	if m == nil {
		return Documents{}, fmt.Errorf("Render: %w", ErrNilModel)
	}

	var (
		docs Documents
		err  error
	)
	if docs.Materials, err = encode(renderMaterials(m.Catalog())); err != nil {
		return Documents{}, fmt.Errorf("Render: %s: %w", MaterialsFile, err)
	}
	if docs.Geometry, err = encode(renderGeometry(m)); err != nil {
		return Documents{}, fmt.Errorf("Render: %s: %w", GeometryFile, err)
	}
	if docs.Settings, err = encode(renderSettings(m.Settings())); err != nil {
		return Documents{}, fmt.Errorf("Render: %s: %w", SettingsFile, err)
	}
	if plots := m.Plots(); len(plots) > 0 {
		if docs.Plots, err = encode(renderPlots(plots)); err != nil {
			return Documents{}, fmt.Errorf("Render: %s: %w", PlotsFile, err)
		}
	}

	return docs, nil
}

func encode(v any) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteString(xml.Header)
	enc := xml.NewEncoder(&buf)
	enc.Indent("", "  ")
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	buf.WriteByte('\n')

	return buf.Bytes(), nil
}

func renderMaterials(c *material.Catalog) materialsDoc {
	var doc materialsDoc
	for _, s := range c.Substances() {
		mx := materialXML{
			ID:          s.ID(),
			Name:        s.Name(),
			Temperature: ftoa(s.Temperature()),
			Density:     densityXML{Units: s.Density().Unit.String(), Value: ftoa(s.Density().Value)},
		}
		for _, n := range s.Nuclides() {
			nx := nuclideXML{Name: n.Name}
			if n.Kind == material.WeightFraction {
				nx.WO = ftoa(n.Fraction)
			} else {
				nx.AO = ftoa(n.Fraction)
			}
			mx.Nuclides = append(mx.Nuclides, nx)
		}
		if law := s.ScatteringLaw(); law != "" {
			mx.Sab = &sabXML{Name: law}
		}
		doc.Materials = append(doc.Materials, mx)
	}

	return doc
}

func renderGeometry(m *model.Model) geometryDoc {
	region := m.Geometry()
	lat := region.Lattice()

	// 1) Universes reachable from the root: pin universes plus the root itself.
	universes := []*csg.Universe{region.Root()}
	surfaces := append([]*csg.Surface(nil), region.Surfaces()...)
	for _, t := range lat.Templates() {
		universes = append(universes, t.Universe())
		surfaces = append(surfaces, t.Surfaces()...)
	}

	// 2) Cells, tagged with their owning universe.
	var doc geometryDoc
	for _, u := range universes {
		for _, c := range u.Cells {
			cx := cellXML{ID: c.ID, Name: c.Name, Region: c.Region.String(), Universe: u.ID}
			if c.Material != nil {
				cx.Material = strconv.Itoa(c.Material.ID())
			} else {
				cx.Fill = strconv.Itoa(c.Fill.FillID())
			}
			doc.Cells = append(doc.Cells, cx)
		}
	}
	sort.Slice(doc.Cells, func(i, j int) bool { return doc.Cells[i].ID < doc.Cells[j].ID })

	// 3) Surfaces, deduplicated.
	seen := make(map[int]struct{}, len(surfaces))
	for _, s := range surfaces {
		if _, ok := seen[s.ID]; ok {
			continue
		}
		seen[s.ID] = struct{}{}
		doc.Surfaces = append(doc.Surfaces, renderSurface(s))
	}
	sort.Slice(doc.Surfaces, func(i, j int) bool { return doc.Surfaces[i].ID < doc.Surfaces[j].ID })

	// 4) The lattice.
	doc.Lattices = []latticeXML{renderLattice(lat)}

	return doc
}

func renderSurface(s *csg.Surface) surfaceXML {
	sx := surfaceXML{ID: s.ID, Type: s.Kind.String(), PeriodicID: s.Periodic}
	if s.Kind == csg.ZCylinder {
		sx.Coeffs = "0 0 " + ftoa(s.Coeff)
	} else {
		sx.Coeffs = ftoa(s.Coeff)
	}
	if s.Boundary != csg.Transmission {
		sx.Boundary = s.Boundary.String()
	}

	return sx
}

func renderLattice(l *lattice.Lattice) latticeXML {
	x, y := l.LowerLeft()
	n := strconv.Itoa(l.Size())

	var b strings.Builder
	b.WriteByte('\n')
	for _, row := range l.Universes() {
		ids := make([]string, len(row))
		for i, t := range row {
			ids[i] = strconv.Itoa(t.ID())
		}
		b.WriteString(strings.Join(ids, " "))
		b.WriteByte('\n')
	}

	return latticeXML{
		ID:        l.ID(),
		Name:      l.Name(),
		Pitch:     ftoa(l.Pitch()) + " " + ftoa(l.Pitch()),
		Dimension: n + " " + n,
		LowerLeft: ftoa(x) + " " + ftoa(y),
		Universes: rawXML{Body: b.String()},
	}
}

func renderSettings(s model.Settings) settingsDoc {
	doc := settingsDoc{
		RunMode:   "eigenvalue",
		Particles: s.Particles,
		Batches:   s.Batches,
		Inactive:  s.Inactive,
		Seed:      s.Seed,
	}
	switch s.Temperature {
	case model.Pointwise:
		doc.TemperatureMethod = "nearest"
	default:
		doc.TemperatureMethod = "interpolation"
		doc.TemperatureMultipole = true
	}

	return doc
}

func renderPlots(plots []model.Plot) plotsDoc {
	var doc plotsDoc
	for _, p := range plots {
		doc.Plots = append(doc.Plots, plotXML{
			ID:       p.ID,
			Type:     "slice",
			Basis:    p.Basis.String(),
			ColorBy:  p.ColorBy.String(),
			Filename: p.Filename,
			Origin:   ftoa(p.Origin[0]) + " " + ftoa(p.Origin[1]) + " " + ftoa(p.Origin[2]),
			Width:    ftoa(p.Width[0]) + " " + ftoa(p.Width[1]),
			Pixels:   strconv.Itoa(p.Pixels[0]) + " " + strconv.Itoa(p.Pixels[1]),
		})
	}

	return doc
}

// ftoa formats v in the shortest form that parses back to v.
func ftoa(v float64) string { return strconv.FormatFloat(v, 'g', -1, 64) }
