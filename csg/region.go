package csg

import "strings"

// Region is the intersection of its half-spaces. The empty Region is the
// whole space.
type Region []Halfspace

// Intersect returns a new region that is the intersection of all parts.
// Inputs are not modified.
func Intersect(parts ...Region) Region {
	n := 0
	for _, p := range parts {
		n += len(p)
	}
	out := make(Region, 0, n)
	for _, p := range parts {
		out = append(out, p...)
	}

	return out
}

// And returns r ∩ h as a new region.
func (r Region) And(h ...Halfspace) Region {
	return Intersect(r, Region(h))
}

// Contains reports whether p lies strictly inside every half-space.
func (r Region) Contains(p Point) bool {
	for _, h := range r {
		if !h.Contains(p) {
			return false
		}
	}

	return true
}

// Surfaces returns the surfaces referenced by r in order of appearance,
// without duplicates.
func (r Region) Surfaces() []*Surface {
	seen := make(map[int]struct{}, len(r))
	out := make([]*Surface, 0, len(r))
	for _, h := range r {
		if _, ok := seen[h.Surface.ID]; ok {
			continue
		}
		seen[h.Surface.ID] = struct{}{}
		out = append(out, h.Surface)
	}

	return out
}

// String renders r in solver syntax, e.g. "1 -2". The whole space renders as "".
func (r Region) String() string {
	parts := make([]string, len(r))
	for i, h := range r {
		parts[i] = h.String()
	}

	return strings.Join(parts, " ")
}
