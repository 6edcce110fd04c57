// SPDX-License-Identifier: MIT
// Package: pinlat/lattice
//
// options.go — functional options for Build.
//
// Contract:
//   - Options are resolved in order; the last one wins.
//   - Option constructors panic on meaningless values (nil hook, negative
//     tolerance). Build itself never panics.

package lattice

import (
	"math"

	"github.com/katalvlaran/pinlat/pin"
)

// OverlapHook observes a last-write-wins overwrite at p: the template placed
// by an earlier rule (prev) is replaced by the current rule's template (next).
type OverlapHook func(p Position, prev, next *pin.Template)

// Option customizes Build.
type Option func(*config)

type config struct {
	name       string
	onOverlap  OverlapHook
	checkPitch bool
	tolerance  float64
}

func newConfig(opts ...Option) config {
	cfg := config{}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// WithName labels the lattice (used by export and diagnostics).
func WithName(name string) Option {
	return func(c *config) { c.name = name }
}

// WithOverlapHook registers fn to be called for every overwrite of a
// position already set by an earlier rule. Panics on nil.
func WithOverlapHook(fn OverlapHook) Option {
	if fn == nil {
		panic("lattice: WithOverlapHook(nil)")
	}
	return func(c *config) { c.onOverlap = fn }
}

// WithPitchTolerance enables the consistency check |span − n·pitch| ≤ tol.
// Panics if tol is negative or not finite.
func WithPitchTolerance(tol float64) Option {
	if tol < 0 || math.IsNaN(tol) || math.IsInf(tol, 0) {
		panic("lattice: WithPitchTolerance(tol<0)")
	}
	return func(c *config) {
		c.checkPitch = true
		c.tolerance = tol
	}
}
