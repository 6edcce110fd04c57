// Package lattice composes pin templates into a square N×N lattice and
// applies positional overrides from placement rules.
//
// What:
//
//   - Build tiles a base template over every position, then applies rules in
//     declared order. A later rule overwrites an earlier one at a shared
//     position (last-write-wins). Overlap is allowed and never an error;
//     WithOverlapHook observes it and Overlaps lists it up front.
//   - Rules are built from a row crossed with a column set (Row), a set of
//     rows crossed with a set of columns (Cross) or explicit positions (At).
//     All three expand to the same (row, col) set.
//   - Standard17x17 returns the reference guide-tube/control-rod pattern.
//
// Geometry:
//
//	Pitch (center-to-center spacing) and span (physical width of the
//	assembly) are independent inputs. The lower-left corner is
//	(-span/2, -span/2). Nothing derives one from the other; the optional
//	WithPitchTolerance check reports |span - n·pitch| > tol.
//
//	Row 0 is the top row (largest y), matching the solver's lattice layout:
//
//	    col →   0    1   …  n-1
//	    row 0   ┌────┬────┬────┐  y = lly + n·pitch
//	    row 1   ├────┼────┼────┤
//	      …     └────┴────┴────┘  y = lly
//
// Determinism:
//
//	The same (base, n, pitch, span, rules) always yields identical per-cell
//	template identity. Rule application is order-dependent and sequential.
//
// Errors:
//
//   - ErrOutOfRange:        a rule position is outside [0,n)×[0,n).
//   - ErrTooSmall:          n < 1.
//   - ErrInvalidPitch:      pitch or span not finite or ≤ 0.
//   - ErrNilTemplate:       nil base template or nil rule template.
//   - csg.ErrNilArena:      Build called without an arena.
//   - ErrInconsistentPitch: WithPitchTolerance is set and the span disagrees.
package lattice
