// Package pin builds reusable radial pin templates: stacks of concentric
// z-cylinder regions, each filled with a substance.
//
// A template with radii r0 < r1 < … < r(k-1) and substances s0 … sk produces
// k+1 cells inside one universe:
//
//	cell 0     : -r0            → s0 (innermost)
//	cell i     : +r(i-1) ∩ -ri  → si
//	cell outer : +r(k-1)        → sk (background, unbounded)
//
// Templates are immutable handles. A lattice references the same *Template at
// many positions; the solver resolves the repeated universe ID to one compiled
// region stack, so geometry is never duplicated.
//
// Errors:
//
//   - ErrShapeMismatch:     len(substances) != len(radii)+1.
//   - ErrNonMonotonicRadii: radii are not strictly increasing.
//   - ErrInvalidRadius:     a radius is not finite, or r0 ≤ 0.
//   - ErrNilSubstance:      a substance entry is nil.
//   - csg.ErrNilArena:      Make or MakeAll called without an arena.
//   - ErrEmptyName:         blank template name.
//   - ErrDuplicateName:     MakeAll received two recipes with the same name.
package pin
