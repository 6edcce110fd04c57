package lattice

import "github.com/katalvlaran/pinlat/pin"

// Standard17x17 returns the reference placement for a 17×17 assembly:
// one guide tube at the center and twenty-four control rods in a pattern that is
// symmetric under 90° rotation about (8,8).
//
//	rows {2,14}  × cols {5,8,11}
//	rows {3,13}  × cols {3,13}
//	rows {5,11}  × cols {2,5,8,11,14}
//	row  8       × cols {2,5,11,14}
//
// No two rules share a position.
func Standard17x17(guideTube, controlRod *pin.Template) []Rule {
	return []Rule{
		At(guideTube, Position{Row: 8, Col: 8}),
		Row(controlRod, 2, 5, 8, 11),
		Row(controlRod, 14, 5, 8, 11),
		Row(controlRod, 3, 3, 13),
		Row(controlRod, 13, 3, 13),
		Row(controlRod, 5, 2, 5, 8, 11, 14),
		Row(controlRod, 11, 2, 5, 8, 11, 14),
		Row(controlRod, 8, 2, 5, 11, 14),
	}
}
