// SPDX-License-Identifier: MIT
// Package: pinlat/config
//
// config.go — Load / Parse / Reference.
//
// Contract:
//   - Unknown YAML keys are rejected.
//   - Every structural error is a *FieldError wrapping ErrInvalidConfig.
//   - Parse never mutates data; the returned File is owned by the caller.

package config

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/pinlat/boundary"
	"github.com/katalvlaran/pinlat/material"
	"github.com/katalvlaran/pinlat/model"
)

// ReferenceSource is the Source of the embedded description.
const ReferenceSource = "reference"

//go:embed reference.yaml
var referenceYAML []byte

// ErrInvalidConfig indicates a malformed assembly description.
var ErrInvalidConfig = errors.New("config: invalid config")

// FieldError locates a structural problem in a description.
type FieldError struct {
	Source string
	Field  string
	Msg    string
}

func (e *FieldError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("%s: %s", e.Source, e.Msg)
	}

	return fmt.Sprintf("%s: %s: %s", e.Source, e.Field, e.Msg)
}

// Unwrap makes errors.Is(err, ErrInvalidConfig) hold.
func (e *FieldError) Unwrap() error { return ErrInvalidConfig }

func invalidField(source, field, format string, args ...any) error {
	return &FieldError{Source: source, Field: field, Msg: fmt.Sprintf(format, args...)}
}

// Load reads and parses the description at path.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("Load: %w", err)
	}

	return Parse(data, path)
}

// Parse decodes and structurally validates a description.
// source is used in error messages and stored in File.Source.
func Parse(data []byte, source string) (*File, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var f File
	if err := dec.Decode(&f); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, invalidField(source, "", "empty document")
		}

		return nil, invalidField(source, "", "%v", err)
	}
	f.Source = source

	if err := validate(&f); err != nil {
		return nil, err
	}

	return &f, nil
}

// Reference returns a fresh copy of the embedded reference assembly.
// Panics if the embedded document is invalid.
func Reference() *File {
	f, err := Parse(referenceYAML, ReferenceSource)
	if err != nil {
		panic(fmt.Sprintf("config: embedded reference: %v", err))
	}

	return f
}

// ReferenceYAML returns the embedded reference document.
func ReferenceYAML() []byte { return append([]byte(nil), referenceYAML...) }

func validate(f *File) error {
	src := f.Source
	if strings.TrimSpace(f.Name) == "" {
		return invalidField(src, "name", "name is required")
	}

	// 1) Materials.
	if len(f.Materials) == 0 {
		return invalidField(src, "materials", "at least one material is required")
	}
	for i, m := range f.Materials {
		p := fmt.Sprintf("materials[%d]", i)
		if strings.TrimSpace(m.Name) == "" {
			return invalidField(src, p+".name", "name is required")
		}
		if _, err := material.ParseDensityUnit(m.Units); err != nil {
			return invalidField(src, p+".units", "unknown density unit %q", m.Units)
		}
		if _, err := material.ParseFractionKind(m.Fraction); err != nil {
			return invalidField(src, p+".fraction", "unknown fraction kind %q", m.Fraction)
		}
		if len(m.Nuclides) == 0 {
			return invalidField(src, p+".nuclides", "at least one nuclide is required")
		}
		for j, n := range m.Nuclides {
			if strings.TrimSpace(n.Name) == "" {
				return invalidField(src, fmt.Sprintf("%s.nuclides[%d].name", p, j), "name is required")
			}
		}
	}

	// 2) Pins.
	if len(f.Pins) == 0 {
		return invalidField(src, "pins", "at least one pin is required")
	}
	for i, pn := range f.Pins {
		p := fmt.Sprintf("pins[%d]", i)
		if strings.TrimSpace(pn.Name) == "" {
			return invalidField(src, p+".name", "name is required")
		}
		if len(pn.Materials) == 0 {
			return invalidField(src, p+".materials", "at least one material is required")
		}
	}

	// 3) Lattice.
	if strings.TrimSpace(f.Lattice.Base) == "" {
		return invalidField(src, "lattice.base", "base pin is required")
	}
	for i, r := range f.Lattice.Rules {
		p := fmt.Sprintf("lattice.rules[%d]", i)
		if strings.TrimSpace(r.Pin) == "" {
			return invalidField(src, p+".pin", "pin is required")
		}
		if len(r.Rows) == 0 {
			return invalidField(src, p+".rows", "at least one row is required")
		}
		if len(r.Cols) == 0 {
			return invalidField(src, p+".cols", "at least one column is required")
		}
	}

	// 4) Bounds.
	if _, err := boundary.ParseCondition(f.Bounds.Radial); err != nil {
		return invalidField(src, "bounds.radial", "unknown condition %q", f.Bounds.Radial)
	}
	if _, err := boundary.ParseCondition(f.Bounds.Axial); err != nil {
		return invalidField(src, "bounds.axial", "unknown condition %q", f.Bounds.Axial)
	}

	// 5) Settings and plots.
	if _, err := model.ParseTemperatureMode(f.Settings.Temperature); err != nil {
		return invalidField(src, "settings.temperature", "unknown mode %q", f.Settings.Temperature)
	}
	for i, pl := range f.Plots {
		p := fmt.Sprintf("plots[%d]", i)
		if _, err := model.ParseBasis(pl.Basis); err != nil {
			return invalidField(src, p+".basis", "unknown basis %q", pl.Basis)
		}
		if _, err := model.ParseColorBy(pl.ColorBy); err != nil {
			return invalidField(src, p+".color_by", "unknown color_by %q", pl.ColorBy)
		}
		if len(pl.Origin) != 0 && len(pl.Origin) != 3 {
			return invalidField(src, p+".origin", "want 3 values, got %d", len(pl.Origin))
		}
		if len(pl.Pixels) != 2 {
			return invalidField(src, p+".pixels", "want 2 values, got %d", len(pl.Pixels))
		}
		if len(pl.Width) != 2 {
			return invalidField(src, p+".width", "want 2 values, got %d", len(pl.Width))
		}
	}

	return nil
}
