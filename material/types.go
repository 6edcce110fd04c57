// SPDX-License-Identifier: MIT
// Package: pinlat/material
//
// types.go — density units, fraction kinds, nuclides and substances.

package material

import (
	"fmt"
	"strings"
)

// DensityUnit is the unit a density magnitude is expressed in.
type DensityUnit int

const (
	// AtomPerBarnCm is atoms per barn-centimeter ("atom/b-cm").
	AtomPerBarnCm DensityUnit = iota + 1
	// AtomPerCm3 is atoms per cubic centimeter ("atom/cm3").
	AtomPerCm3
	// GramPerCm3 is grams per cubic centimeter ("g/cm3").
	GramPerCm3
	// KgPerM3 is kilograms per cubic meter ("kg/m3").
	KgPerM3
)

var densityUnitNames = map[DensityUnit]string{
	AtomPerBarnCm: "atom/b-cm",
	AtomPerCm3:    "atom/cm3",
	GramPerCm3:    "g/cm3",
	KgPerM3:       "kg/m3",
}

// String returns the solver keyword for u.
func (u DensityUnit) String() string {
	if s, ok := densityUnitNames[u]; ok {
		return s
	}

	return "unknown"
}

// Valid reports whether u is one of the declared units.
func (u DensityUnit) Valid() bool {
	_, ok := densityUnitNames[u]
	return ok
}

// ParseDensityUnit maps a solver keyword ("atom/b-cm", "g/cm3", "g/cc", ...)
// to a DensityUnit.
func ParseDensityUnit(s string) (DensityUnit, error) {
	key := strings.ToLower(strings.TrimSpace(s))
	if key == "g/cc" {
		return GramPerCm3, nil
	}
	for u, name := range densityUnitNames {
		if name == key {
			return u, nil
		}
	}

	return 0, fmt.Errorf("ParseDensityUnit(%q): %w", s, ErrInvalidComposition)
}

// Density is a magnitude in a unit.
type Density struct {
	Unit  DensityUnit
	Value float64
}

// FractionKind tells whether nuclide fractions are atom or weight based.
type FractionKind int

const (
	// AtomFraction is an atom (number) fraction, "ao".
	AtomFraction FractionKind = iota + 1
	// WeightFraction is a weight (mass) fraction, "wo".
	WeightFraction
)

// String returns the solver keyword: "ao" or "wo".
func (k FractionKind) String() string {
	switch k {
	case AtomFraction:
		return "ao"
	case WeightFraction:
		return "wo"
	default:
		return "unknown"
	}
}

// ParseFractionKind maps "ao"/"wo" to a FractionKind. Empty input means ao.
func ParseFractionKind(s string) (FractionKind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "ao":
		return AtomFraction, nil
	case "wo":
		return WeightFraction, nil
	default:
		return 0, fmt.Errorf("ParseFractionKind(%q): %w", s, ErrInvalidComposition)
	}
}

// Nuclide is one (isotope, fraction, fraction-kind) triple.
type Nuclide struct {
	Name     string
	Fraction float64
	Kind     FractionKind
}

// Atom is shorthand for an atom-fraction nuclide.
func Atom(name string, fraction float64) Nuclide {
	return Nuclide{Name: name, Fraction: fraction, Kind: AtomFraction}
}

// Weight is shorthand for a weight-fraction nuclide.
func Weight(name string, fraction float64) Nuclide {
	return Nuclide{Name: name, Fraction: fraction, Kind: WeightFraction}
}

// Substance is an immutable named material. Obtain one from Catalog.Define.
type Substance struct {
	id            int
	name          string
	density       Density
	nuclides      []Nuclide
	temperature   float64
	scatteringLaw string
}

// ID is the 1-based position of the substance in its catalog.
func (s *Substance) ID() int { return s.id }

// Name returns the unique substance name.
func (s *Substance) Name() string { return s.name }

// Density returns the declared density.
func (s *Substance) Density() Density { return s.density }

// Nuclides returns a copy of the composition in declaration order.
func (s *Substance) Nuclides() []Nuclide {
	out := make([]Nuclide, len(s.nuclides))
	copy(out, s.nuclides)

	return out
}

// FractionKind returns the single fraction kind shared by all nuclides.
func (s *Substance) FractionKind() FractionKind { return s.nuclides[0].Kind }

// Temperature returns the temperature in kelvin.
func (s *Substance) Temperature() float64 { return s.temperature }

// ScatteringLaw returns the S(α,β) table name, or "" when none is attached.
func (s *Substance) ScatteringLaw() string { return s.scatteringLaw }

// String renders a short description for diagnostics.
func (s *Substance) String() string {
	return fmt.Sprintf("%s(id=%d, %g %s, %d nuclides, %gK)",
		s.name, s.id, s.density.Value, s.density.Unit, len(s.nuclides), s.temperature)
}
