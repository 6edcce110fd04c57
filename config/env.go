package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Env holds process-level overrides read from PINLAT_* variables.
type Env struct {
	Particles int    `env:"PINLAT_PARTICLES"`
	Inactive  int    `env:"PINLAT_INACTIVE"`
	Batches   int    `env:"PINLAT_BATCHES"`
	Threads   int    `env:"PINLAT_THREADS"`
	OutputDir string `env:"PINLAT_OUTPUT_DIR" envDefault:"."`
	Solver    string `env:"PINLAT_SOLVER" envDefault:"openmc"`
}

// LoadEnv parses the environment.
func LoadEnv() (Env, error) {
	var e Env
	if err := env.Parse(&e); err != nil {
		return Env{}, fmt.Errorf("parse env: %w", err)
	}

	return e, nil
}

// Apply copies the non-zero run overrides into f.Settings.
func (e Env) Apply(f *File) {
	if e.Particles != 0 {
		f.Settings.Particles = e.Particles
	}
	if e.Inactive != 0 {
		f.Settings.Inactive = e.Inactive
	}
	if e.Batches != 0 {
		f.Settings.Batches = e.Batches
	}
}
