package model

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrUnresolvedMaterial indicates a lattice substance that is not registered in the catalog.
	ErrUnresolvedMaterial = errors.New("model: unresolved material")

	// ErrIncomplete indicates a missing catalog or geometry.
	ErrIncomplete = errors.New("model: incomplete model")

	// ErrInvalidSettings indicates inconsistent run settings.
	ErrInvalidSettings = errors.New("model: invalid settings")

	// ErrInvalidPlot indicates a malformed plot request.
	ErrInvalidPlot = errors.New("model: invalid plot")
)

// TemperatureMode selects how cross sections are evaluated at material temperatures.
type TemperatureMode int

const (
	// InterpolatedMultipole interpolates between tabulated temperatures and
	// uses windowed multipole data in the resolved range.
	InterpolatedMultipole TemperatureMode = iota
	// Pointwise uses the nearest tabulated temperature.
	Pointwise
)

// String returns the mode keyword.
func (m TemperatureMode) String() string {
	switch m {
	case InterpolatedMultipole:
		return "interpolated-multipole"
	case Pointwise:
		return "pointwise"
	default:
		return "unknown"
	}
}

// ParseTemperatureMode accepts "interpolated-multipole" (or "multipole") and
// "pointwise" (or "nearest").
func ParseTemperatureMode(s string) (TemperatureMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "interpolated-multipole", "multipole", "":
		return InterpolatedMultipole, nil
	case "pointwise", "nearest":
		return Pointwise, nil
	default:
		return 0, fmt.Errorf("ParseTemperatureMode(%q): %w", s, ErrInvalidSettings)
	}
}

// Settings are the eigenvalue run parameters.
// Seed 0 leaves the solver's default seed in place.
type Settings struct {
	Particles   int
	Inactive    int
	Batches     int
	Temperature TemperatureMode
	Seed        int64
}

// DefaultSettings returns 10000 particles per batch, 200 batches of which
// 100 are inactive, with interpolated multipole temperature treatment.
func DefaultSettings() Settings {
	return Settings{
		Particles:   10000,
		Inactive:    100,
		Batches:     200,
		Temperature: InterpolatedMultipole,
	}
}

// Validate checks particles > 0, batches > 0 and 0 ≤ inactive < batches.
func (s Settings) Validate() error {
	switch {
	case s.Particles <= 0:
		return fmt.Errorf("Settings: particles=%d must be > 0: %w", s.Particles, ErrInvalidSettings)
	case s.Batches <= 0:
		return fmt.Errorf("Settings: batches=%d must be > 0: %w", s.Batches, ErrInvalidSettings)
	case s.Inactive < 0 || s.Inactive >= s.Batches:
		return fmt.Errorf("Settings: inactive=%d must be in [0,%d): %w", s.Inactive, s.Batches, ErrInvalidSettings)
	case s.Temperature != InterpolatedMultipole && s.Temperature != Pointwise:
		return fmt.Errorf("Settings: temperature mode %d: %w", int(s.Temperature), ErrInvalidSettings)
	case s.Seed < 0:
		return fmt.Errorf("Settings: seed=%d must be ≥ 0: %w", s.Seed, ErrInvalidSettings)
	}

	return nil
}

// Basis is the slice plane of a plot.
type Basis int

const (
	XY Basis = iota
	XZ
	YZ
)

// String returns the basis keyword ("xy", "xz", "yz").
func (b Basis) String() string {
	switch b {
	case XY:
		return "xy"
	case XZ:
		return "xz"
	case YZ:
		return "yz"
	default:
		return "unknown"
	}
}

// ParseBasis maps "xy", "xz" or "yz" to a Basis.
func ParseBasis(s string) (Basis, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "xy":
		return XY, nil
	case "xz":
		return XZ, nil
	case "yz":
		return YZ, nil
	default:
		return 0, fmt.Errorf("ParseBasis(%q): %w", s, ErrInvalidPlot)
	}
}

// ColorBy selects what plot colors distinguish.
type ColorBy int

const (
	ColorByMaterial ColorBy = iota
	ColorByCell
)

// String returns the keyword ("material", "cell").
func (c ColorBy) String() string {
	switch c {
	case ColorByMaterial:
		return "material"
	case ColorByCell:
		return "cell"
	default:
		return "unknown"
	}
}

// ParseColorBy maps "material" or "cell" to a ColorBy.
func ParseColorBy(s string) (ColorBy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "material", "":
		return ColorByMaterial, nil
	case "cell":
		return ColorByCell, nil
	default:
		return 0, fmt.Errorf("ParseColorBy(%q): %w", s, ErrInvalidPlot)
	}
}

// Plot is a slice-plot request passed through to the solver's plotter.
// ID 0 asks Assemble to assign one.
type Plot struct {
	ID       int
	Basis    Basis
	Filename string
	Origin   [3]float64
	Pixels   [2]int
	Width    [2]float64
	ColorBy  ColorBy
}
