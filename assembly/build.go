// SPDX-License-Identifier: MIT
// Package: pinlat/assembly
//
// build.go — Build(ctx, doc, opts...): config.File → *model.Model.

package assembly

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/katalvlaran/pinlat/boundary"
	"github.com/katalvlaran/pinlat/config"
	"github.com/katalvlaran/pinlat/csg"
	"github.com/katalvlaran/pinlat/lattice"
	"github.com/katalvlaran/pinlat/material"
	"github.com/katalvlaran/pinlat/model"
	"github.com/katalvlaran/pinlat/pin"
)

const methodBuild = "Build"

var (
	// ErrUnknownReference indicates a pin or rule naming an undeclared material or pin.
	ErrUnknownReference = errors.New("assembly: unknown reference")

	// ErrNilDocument indicates Build was called without a description.
	ErrNilDocument = errors.New("assembly: document is nil")
)

// Build constructs the model described by doc.
func Build(ctx context.Context, doc *config.File, opts ...Option) (*model.Model, error) {
	if doc == nil {
		return nil, fmt.Errorf("%s: %w", methodBuild, ErrNilDocument)
	}
	cfg := newConfig(opts...)
	log := cfg.log.With(zap.String("assembly", doc.Name), zap.String("source", doc.Source))

	// 1) Materials.
	catalog, err := buildCatalog(doc.Materials)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodBuild, err)
	}
	log.Debug("materials defined", zap.Strings("names", catalog.Names()))

	// 2) Pins.
	arena := csg.NewArena()
	pins, err := buildPins(ctx, arena, catalog, doc.Pins)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodBuild, err)
	}
	log.Debug("pins built", zap.Int("count", len(pins)))

	// 3) Lattice.
	lat, err := buildLattice(arena, pins, doc, cfg, log)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodBuild, err)
	}
	for _, t := range lat.Templates() {
		log.Debug("lattice population", zap.String("pin", t.Name()), zap.Int("count", lat.Count(t)))
	}

	// 4) Bounds.
	radial, _ := boundary.ParseCondition(doc.Bounds.Radial)
	axial, _ := boundary.ParseCondition(doc.Bounds.Axial)
	region, err := boundary.Bound(arena, lat, doc.Bounds.Span, doc.Bounds.Height, radial, axial)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodBuild, err)
	}
	lo, hi := region.AxialExtent()
	log.Debug("geometry bounded", zap.Float64("span", region.Span()), zap.Float64("z_min", lo), zap.Float64("z_max", hi))

	// 5) Model.
	settings, plots, err := runInputs(doc)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodBuild, err)
	}
	m, err := model.Assemble(catalog, region, settings, plots)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodBuild, err)
	}
	log.Info("model assembled",
		zap.Int("materials", catalog.Len()),
		zap.Int("pins", len(pins)),
		zap.Int("lattice_size", lat.Size()),
		zap.Int("plots", len(m.Plots())))

	return m, nil
}

func buildCatalog(materials []config.Material) (*material.Catalog, error) {
	catalog := material.NewCatalog()
	for i, m := range materials {
		unit, err := material.ParseDensityUnit(m.Units)
		if err != nil {
			return nil, fmt.Errorf("materials[%d]: %w", i, err)
		}
		kind, err := material.ParseFractionKind(m.Fraction)
		if err != nil {
			return nil, fmt.Errorf("materials[%d]: %w", i, err)
		}
		nuclides := make([]material.Nuclide, len(m.Nuclides))
		for j, n := range m.Nuclides {
			nuclides[j] = material.Nuclide{Name: n.Name, Fraction: n.Fraction, Kind: kind}
		}

		var opts []material.DefineOption
		if m.Sab != "" {
			opts = append(opts, material.WithScatteringLaw(m.Sab))
		}
		density := material.Density{Unit: unit, Value: m.Density}
		if _, err := catalog.Define(m.Name, density, nuclides, m.Temperature, opts...); err != nil {
			return nil, fmt.Errorf("materials[%d]: %w", i, err)
		}
	}

	return catalog, nil
}

func buildPins(ctx context.Context, arena *csg.Arena, catalog *material.Catalog, pins []config.Pin) (map[string]*pin.Template, error) {
	recipes := make([]pin.Recipe, len(pins))
	for i, p := range pins {
		subs := make([]*material.Substance, len(p.Materials))
		for j, name := range p.Materials {
			s, ok := catalog.Lookup(name)
			if !ok {
				return nil, fmt.Errorf("pins[%d] (%s): material %q: %w", i, p.Name, name, ErrUnknownReference)
			}
			subs[j] = s
		}
		recipes[i] = pin.Recipe{Name: p.Name, Radii: p.Radii, Substances: subs}
	}

	templates, err := pin.MakeAll(ctx, arena, recipes)
	if err != nil {
		return nil, err
	}
	byName := make(map[string]*pin.Template, len(templates))
	for _, t := range templates {
		byName[t.Name()] = t
	}

	return byName, nil
}

func buildLattice(arena *csg.Arena, pins map[string]*pin.Template, doc *config.File, cfg buildConfig, log *zap.Logger) (*lattice.Lattice, error) {
	lc := doc.Lattice
	base, ok := pins[lc.Base]
	if !ok {
		return nil, fmt.Errorf("lattice.base: pin %q: %w", lc.Base, ErrUnknownReference)
	}

	rules := make([]lattice.Rule, len(lc.Rules))
	for i, r := range lc.Rules {
		t, ok := pins[r.Pin]
		if !ok {
			return nil, fmt.Errorf("lattice.rules[%d]: pin %q: %w", i, r.Pin, ErrUnknownReference)
		}
		rules[i] = lattice.Cross(t, r.Rows, r.Cols)
	}

	opts := []lattice.Option{lattice.WithName(doc.Name)}
	if lc.PitchTolerance != nil {
		opts = append(opts, lattice.WithPitchTolerance(*lc.PitchTolerance))
	}
	if cfg.warnOverlaps {
		opts = append(opts, lattice.WithOverlapHook(func(p lattice.Position, prev, next *pin.Template) {
			log.Warn("lattice position overwritten",
				zap.Stringer("position", p),
				zap.String("previous", prev.Name()),
				zap.String("next", next.Name()))
		}))
	}

	return lattice.Build(arena, base, lc.Size, lc.Pitch, doc.Bounds.Span, rules, opts...)
}

// runInputs converts settings and plots. Keywords were checked by config.Parse,
// but a File may also be built in code, so parse errors are still reported.
func runInputs(doc *config.File) (model.Settings, []model.Plot, error) {
	mode, err := model.ParseTemperatureMode(doc.Settings.Temperature)
	if err != nil {
		return model.Settings{}, nil, fmt.Errorf("settings.temperature: %w", err)
	}
	settings := model.Settings{
		Particles:   doc.Settings.Particles,
		Inactive:    doc.Settings.Inactive,
		Batches:     doc.Settings.Batches,
		Temperature: mode,
		Seed:        doc.Settings.Seed,
	}

	plots := make([]model.Plot, len(doc.Plots))
	for i, p := range doc.Plots {
		basis, err := model.ParseBasis(p.Basis)
		if err != nil {
			return model.Settings{}, nil, fmt.Errorf("plots[%d]: %w", i, err)
		}
		color, err := model.ParseColorBy(p.ColorBy)
		if err != nil {
			return model.Settings{}, nil, fmt.Errorf("plots[%d]: %w", i, err)
		}
		mp := model.Plot{ID: p.ID, Basis: basis, Filename: p.Filename, ColorBy: color}
		copy(mp.Origin[:], p.Origin)
		copy(mp.Pixels[:], p.Pixels)
		copy(mp.Width[:], p.Width)
		plots[i] = mp
	}

	return settings, plots, nil
}
