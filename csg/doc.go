// Package csg is the thin constructive-solid-geometry data layer used by the
// assembly builder.
//
// It does not evaluate boolean geometry beyond point membership. It only holds
// what the transport solver needs to receive:
//
//   - Surfaces: x/y/z axis planes and z-axis cylinders with a boundary type.
//   - Half-spaces: the negative (-s) or positive (+s) side of a surface.
//   - Regions: intersections of half-spaces, printed in solver syntax ("-1 2 -3").
//   - Cells: a region filled with a material or with another universe/lattice.
//   - Universes: ordered collections of cells.
//
// Identity:
//
//	Every surface, cell and universe gets its ID from an Arena. IDs are
//	monotonically increasing per kind and never reused. Universes and lattices
//	share one ID space, the same way the solver resolves fills.
//
// Errors:
//
//   - ErrNilSurface:   a half-space or pairing referenced a nil surface.
//   - ErrNotPeriodic:  PairPeriodic called on a non-periodic surface.
//   - ErrBadPair:      periodic partners are of different kinds or identical.
//   - ErrNilFill:      a cell was requested without a material or fill.
package csg
