// Package boundary wraps a lattice in a finite radial prism and two axial
// planes, each tagged with a boundary condition.
//
// The bounded region is
//
//	+xmin ∩ -xmax ∩ +ymin ∩ -ymax ∩ +bottom ∩ -top
//
// with xmin/xmax and ymin/ymax at ±span/2 and bottom/top at ±height/2. The
// root cell fills that region with the lattice; the root universe holds only
// that cell.
//
// Periodic conditions pair opposite faces: xmin↔xmax, ymin↔ymax and
// bottom↔top.
package boundary
