// SPDX-License-Identifier: MIT
// Package: pinlat/lattice
//
// rule.go — positions and placement rules.

package lattice

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/pinlat/pin"
)

// Position is a lattice cell address, row-major.
type Position struct {
	Row, Col int
}

// String renders "(row,col)".
func (p Position) String() string { return fmt.Sprintf("(%d,%d)", p.Row, p.Col) }

// Rule assigns one template to a set of positions.
type Rule struct {
	template  *pin.Template
	positions []Position
}

// Row returns the rule "row × cols": one row broadcast over a set of columns.
func Row(t *pin.Template, row int, cols ...int) Rule {
	ps := make([]Position, len(cols))
	for i, c := range cols {
		ps[i] = Position{Row: row, Col: c}
	}

	return Rule{template: t, positions: ps}
}

// Cross returns the rule "rows × cols", expanded row by row.
func Cross(t *pin.Template, rows, cols []int) Rule {
	ps := make([]Position, 0, len(rows)*len(cols))
	for _, r := range rows {
		for _, c := range cols {
			ps = append(ps, Position{Row: r, Col: c})
		}
	}

	return Rule{template: t, positions: ps}
}

// At returns a rule over explicit positions.
func At(t *pin.Template, positions ...Position) Rule {
	return Rule{template: t, positions: append([]Position(nil), positions...)}
}

// Template returns the template the rule places.
func (r Rule) Template() *pin.Template { return r.template }

// Positions returns the expanded positions in declaration order.
func (r Rule) Positions() []Position { return append([]Position(nil), r.positions...) }

// Overlaps returns positions targeted by more than one rule, sorted row-major.
// A position repeated inside a single rule does not count.
func Overlaps(rules []Rule) []Position {
	owners := make(map[Position]int)
	hits := make(map[Position]struct{})
	for i, r := range rules {
		for _, p := range r.positions {
			if prev, ok := owners[p]; ok && prev != i {
				hits[p] = struct{}{}
			}
			owners[p] = i
		}
	}

	out := make([]Position, 0, len(hits))
	for p := range hits {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Row != out[j].Row {
			return out[i].Row < out[j].Row
		}
		return out[i].Col < out[j].Col
	})

	return out
}
