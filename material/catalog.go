// SPDX-License-Identifier: MIT
// Package: pinlat/material
//
// catalog.go — the ordered substance catalog.
//
// Contract:
//   - Define validates eagerly and registers nothing on failure.
//   - Names are unique; insertion order is preserved and defines IDs.
//   - A catalog belongs to one build. There is no package-level catalog.

package material

import (
	"fmt"
	"math"
	"strings"
)

const methodDefine = "Define"

// DefineOption customizes a substance at definition time.
type DefineOption func(*Substance)

// WithScatteringLaw attaches a thermal scattering table, e.g. "c_D_in_D2O".
func WithScatteringLaw(name string) DefineOption {
	return func(s *Substance) { s.scatteringLaw = strings.TrimSpace(name) }
}

// Catalog is an insertion-ordered set of substances with unique names.
// It is not safe for concurrent Define calls; reads after the build are safe.
type Catalog struct {
	order  []*Substance
	byName map[string]*Substance
	frozen bool
}

// NewCatalog returns an empty catalog.
func NewCatalog() *Catalog {
	return &Catalog{byName: make(map[string]*Substance)}
}

// Define validates and registers a new substance.
func (c *Catalog) Define(name string, density Density, composition []Nuclide, temperature float64, opts ...DefineOption) (*Substance, error) {
	name = strings.TrimSpace(name)
	if c.frozen {
		return nil, fmt.Errorf("%s(%q): %w", methodDefine, name, ErrFrozen)
	}
	if name == "" {
		return nil, fmt.Errorf("%s: %w", methodDefine, ErrEmptyName)
	}
	if _, dup := c.byName[name]; dup {
		return nil, fmt.Errorf("%s(%q): %w", methodDefine, name, ErrDuplicateName)
	}
	if err := validateDensity(name, density); err != nil {
		return nil, err
	}
	if err := validateComposition(name, composition); err != nil {
		return nil, err
	}
	if math.IsNaN(temperature) || math.IsInf(temperature, 0) || temperature <= 0 {
		return nil, fmt.Errorf("%s(%q): temperature=%g: %w", methodDefine, name, temperature, ErrInvalidTemperature)
	}

	s := &Substance{
		id:          len(c.order) + 1,
		name:        name,
		density:     density,
		nuclides:    append([]Nuclide(nil), composition...),
		temperature: temperature,
	}
	for _, opt := range opts {
		opt(s)
	}

	c.order = append(c.order, s)
	c.byName[name] = s

	return s, nil
}

// Freeze seals the catalog; later Define calls fail with ErrFrozen.
// Freezing twice is a no-op.
func (c *Catalog) Freeze() { c.frozen = true }

// Frozen reports whether Freeze was called.
func (c *Catalog) Frozen() bool { return c.frozen }

// Lookup returns the substance registered under name.
func (c *Catalog) Lookup(name string) (*Substance, bool) {
	s, ok := c.byName[name]
	return s, ok
}

// Contains reports whether s itself (not merely its name) belongs to c.
func (c *Catalog) Contains(s *Substance) bool {
	if s == nil {
		return false
	}
	got, ok := c.byName[s.name]

	return ok && got == s
}

// Substances returns the substances in insertion order.
func (c *Catalog) Substances() []*Substance {
	out := make([]*Substance, len(c.order))
	copy(out, c.order)

	return out
}

// Names returns substance names in insertion order.
func (c *Catalog) Names() []string {
	out := make([]string, len(c.order))
	for i, s := range c.order {
		out[i] = s.name
	}

	return out
}

// Len returns the number of defined substances.
func (c *Catalog) Len() int { return len(c.order) }

func validateDensity(name string, d Density) error {
	if !d.Unit.Valid() {
		return fmt.Errorf("%s(%q): density unit %d: %w", methodDefine, name, int(d.Unit), ErrInvalidComposition)
	}
	if math.IsNaN(d.Value) || math.IsInf(d.Value, 0) || d.Value <= 0 {
		return fmt.Errorf("%s(%q): density=%g %s: %w", methodDefine, name, d.Value, d.Unit, ErrInvalidComposition)
	}

	return nil
}

func validateComposition(name string, nuclides []Nuclide) error {
	if len(nuclides) == 0 {
		return fmt.Errorf("%s(%q): empty composition: %w", methodDefine, name, ErrInvalidComposition)
	}
	kind := nuclides[0].Kind
	for i, n := range nuclides {
		if strings.TrimSpace(n.Name) == "" {
			return fmt.Errorf("%s(%q): nuclide[%d]: %w", methodDefine, name, i, ErrEmptyName)
		}
		if n.Kind != AtomFraction && n.Kind != WeightFraction {
			return fmt.Errorf("%s(%q): nuclide %s: fraction kind %d: %w", methodDefine, name, n.Name, int(n.Kind), ErrInvalidComposition)
		}
		if n.Kind != kind {
			return fmt.Errorf("%s(%q): nuclide %s is %s, expected %s: %w", methodDefine, name, n.Name, n.Kind, kind, ErrInvalidComposition)
		}
		if math.IsNaN(n.Fraction) || math.IsInf(n.Fraction, 0) || n.Fraction <= 0 {
			return fmt.Errorf("%s(%q): nuclide %s fraction=%g: %w", methodDefine, name, n.Name, n.Fraction, ErrInvalidComposition)
		}
	}

	return nil
}
