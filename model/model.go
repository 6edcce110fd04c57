// SPDX-License-Identifier: MIT
// Package: pinlat/model
//
// model.go — Assemble(catalog, region, settings, plots) and the Model it returns.
//
// Contract:
//   - Every substance used by a lattice template must be the catalog's
//     substance (pointer identity), else ErrUnresolvedMaterial.
//   - Settings and plots are validated; plot IDs are completed, never reordered.
//   - Assemble allocates no geometry; it only checks and freezes. On success
//     the catalog is sealed (material.Catalog.Freeze), so the exported
//     materials always match what was validated.

package model

import (
	"context"
	"fmt"
	"math"

	"github.com/katalvlaran/pinlat/boundary"
	"github.com/katalvlaran/pinlat/material"
)

const methodAssemble = "Assemble"

// Exporter writes a Model somewhere (files, memory, a remote store).
type Exporter interface {
	Export(ctx context.Context, m *Model) error
}

// Model is a complete, validated assembly description.
type Model struct {
	catalog  *material.Catalog
	geometry *boundary.Region
	settings Settings
	plots    []Plot
}

// Assemble validates the pieces and freezes them into a Model.
func Assemble(catalog *material.Catalog, region *boundary.Region, settings Settings, plots []Plot) (*Model, error) {
	// 1) Presence.
	if catalog == nil {
		return nil, fmt.Errorf("%s: catalog: %w", methodAssemble, ErrIncomplete)
	}
	if region == nil || region.Lattice() == nil {
		return nil, fmt.Errorf("%s: geometry: %w", methodAssemble, ErrIncomplete)
	}

	// 2) Every reachable substance must be the catalog's own.
	for _, t := range region.Lattice().Templates() {
		for i, s := range t.Substances() {
			if !catalog.Contains(s) {
				return nil, fmt.Errorf("%s: template %q region %d uses %q: %w",
					methodAssemble, t.Name(), i, s.Name(), ErrUnresolvedMaterial)
			}
		}
	}

	// 3) Settings.
	if err := settings.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", methodAssemble, err)
	}

	// 4) Plots.
	ps, err := resolvePlots(plots)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodAssemble, err)
	}

	catalog.Freeze()

	return &Model{catalog: catalog, geometry: region, settings: settings, plots: ps}, nil
}

// resolvePlots validates each plot and assigns IDs to those without one.
func resolvePlots(plots []Plot) ([]Plot, error) {
	out := make([]Plot, len(plots))
	copy(out, plots)

	seen := make(map[int]int, len(out))
	maxID := 0
	for i, p := range out {
		if err := validatePlot(i, p); err != nil {
			return nil, err
		}
		if p.ID == 0 {
			continue
		}
		if j, dup := seen[p.ID]; dup {
			return nil, fmt.Errorf("plots[%d]: id %d already used by plots[%d]: %w", i, p.ID, j, ErrInvalidPlot)
		}
		seen[p.ID] = i
		if p.ID > maxID {
			maxID = p.ID
		}
	}
	for i := range out {
		if out[i].ID == 0 {
			maxID++
			out[i].ID = maxID
		}
	}

	return out, nil
}

func validatePlot(i int, p Plot) error {
	switch {
	case p.ID < 0:
		return fmt.Errorf("plots[%d]: id=%d: %w", i, p.ID, ErrInvalidPlot)
	case p.Filename == "":
		return fmt.Errorf("plots[%d]: empty filename: %w", i, ErrInvalidPlot)
	case p.Basis < XY || p.Basis > YZ:
		return fmt.Errorf("plots[%d]: basis %d: %w", i, int(p.Basis), ErrInvalidPlot)
	case p.ColorBy != ColorByMaterial && p.ColorBy != ColorByCell:
		return fmt.Errorf("plots[%d]: color_by %d: %w", i, int(p.ColorBy), ErrInvalidPlot)
	case p.Pixels[0] <= 0 || p.Pixels[1] <= 0:
		return fmt.Errorf("plots[%d]: pixels %v: %w", i, p.Pixels, ErrInvalidPlot)
	case !(p.Width[0] > 0) || !(p.Width[1] > 0) || math.IsInf(p.Width[0], 0) || math.IsInf(p.Width[1], 0):
		return fmt.Errorf("plots[%d]: width %v: %w", i, p.Width, ErrInvalidPlot)
	}
	for _, o := range p.Origin {
		if math.IsNaN(o) || math.IsInf(o, 0) {
			return fmt.Errorf("plots[%d]: origin %v: %w", i, p.Origin, ErrInvalidPlot)
		}
	}

	return nil
}

// Catalog returns the material catalog. It is frozen: Define fails with
// material.ErrFrozen.
func (m *Model) Catalog() *material.Catalog { return m.catalog }

// Geometry returns the bounded root geometry.
func (m *Model) Geometry() *boundary.Region { return m.geometry }

// Settings returns the run settings.
func (m *Model) Settings() Settings { return m.settings }

// Plots returns a copy of the plot requests with IDs assigned.
func (m *Model) Plots() []Plot { return append([]Plot(nil), m.plots...) }
