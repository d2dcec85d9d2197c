// SPDX-License-Identifier: MIT

package lattice

import "fmt"

// Orientation distinguishes the two edge families of the square lattice.
type Orientation uint8

const (
	// Horizontal edges join (x,y) to (x+1,y).
	Horizontal Orientation = iota
	// Vertical edges join (x,y) to (x,y+1).
	Vertical
)

// String renders "h" / "v".
func (o Orientation) String() string {
	if o == Vertical {
		return "v"
	}

	return "h"
}

// Edge is one physical unit of a toric code: the edge leaving vertex (X, Y)
// in the given orientation.
type Edge struct {
	Index       int
	Orientation Orientation
	X, Y        int
}

// String renders "h(1,2)".
func (e Edge) String() string {
	return fmt.Sprintf("%s(%d,%d)", e.Orientation, e.X, e.Y)
}

// Torus is an L×L square lattice with periodic boundaries. It is immutable
// once built. Vertices are indexed row-major (y*L + x); horizontal edges take
// indices [0, L²) and vertical edges [L², 2L²), both row-major.
type Torus struct {
	L               int
	neighborOffsets [][2]int
}
