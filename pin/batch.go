// SPDX-License-Identifier: MIT
// Package: pinlat/pin
//
// batch.go — MakeAll: concurrent validation, ordered compilation.
//
// Determinism:
//   - Shapes are validated in parallel (no shared state).
//   - Geometry is compiled sequentially in recipe order, so IDs are the same as
//     calling Make for each recipe in turn.

package pin

import (
	"context"
	"fmt"
	"runtime"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/pinlat/csg"
	"github.com/katalvlaran/pinlat/material"
)

const methodMakeAll = "MakeAll"

// Recipe describes one template to build with MakeAll.
type Recipe struct {
	Name       string
	Radii      []float64
	Substances []*material.Substance
}

// MakeAll builds every recipe. The first validation error (in recipe order) is
// returned and nothing is compiled.
func MakeAll(ctx context.Context, arena *csg.Arena, recipes []Recipe) ([]*Template, error) {
	if arena == nil {
		return nil, fmt.Errorf("%s: %w", methodMakeAll, csg.ErrNilArena)
	}
	seen := make(map[string]int, len(recipes))
	for i, s := range recipes {
		name := strings.TrimSpace(s.Name)
		if j, dup := seen[name]; dup && name != "" {
			return nil, fmt.Errorf("%s: recipes[%d] and recipes[%d] both named %q: %w", methodMakeAll, j, i, name, ErrDuplicateName)
		}
		seen[name] = i
	}

	errs := make([]error, len(recipes))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i := range recipes {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			s := recipes[i]
			errs[i] = validate(strings.TrimSpace(s.Name), s.Radii, s.Substances)

			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("%s: %w", methodMakeAll, err)
	}
	for i, err := range errs {
		if err != nil {
			return nil, fmt.Errorf("%s: recipes[%d]: %w", methodMakeAll, i, err)
		}
	}

	out := make([]*Template, len(recipes))
	for i, s := range recipes {
		t, err := compile(arena, strings.TrimSpace(s.Name), s.Radii, s.Substances)
		if err != nil {
			return nil, fmt.Errorf("%s: recipes[%d]: %w", methodMakeAll, i, err)
		}
		out[i] = t
	}

	return out, nil
}
