// SPDX-License-Identifier: MIT

package lattice

import "fmt"

// NewTorus constructs an L×L periodic lattice.
// Returns ErrTooSmall for L < 2.
// Complexity: O(1).
func NewTorus(l int) (*Torus, error) {
	if l < 2 {
		return nil, fmt.Errorf("NewTorus(%d): %w", l, ErrTooSmall)
	}

	return &Torus{
		L:               l,
		neighborOffsets: [][2]int{{0, -1}, {1, 0}, {0, 1}, {-1, 0}},
	}, nil
}

// Vertices is the vertex count L².
func (t *Torus) Vertices() int { return t.L * t.L }

// Edges is the edge (unit) count 2L².
func (t *Torus) Edges() int { return 2 * t.L * t.L }

// wrap reduces a coordinate onto [0, L).
func (t *Torus) wrap(c int) int {
	c %= t.L
	if c < 0 {
		c += t.L
	}

	return c
}

// VertexIndex maps (x,y), wrapped onto the torus, to y*L + x.
func (t *Torus) VertexIndex(x, y int) int {
	return t.wrap(y)*t.L + t.wrap(x)
}

// Coordinate converts a vertex index back to (x,y).
// Complexity: O(1).
func (t *Torus) Coordinate(v int) (x, y int) {
	return v % t.L, v / t.L
}

// HorizontalEdge is the index of the edge (x,y)→(x+1,y).
func (t *Torus) HorizontalEdge(x, y int) int {
	return t.VertexIndex(x, y)
}

// VerticalEdge is the index of the edge (x,y)→(x,y+1).
func (t *Torus) VerticalEdge(x, y int) int {
	return t.L*t.L + t.VertexIndex(x, y)
}

// Edge decodes an edge index.
func (t *Torus) Edge(i int) (Edge, error) {
	if i < 0 || i >= t.Edges() {
		return Edge{}, fmt.Errorf("Edge(%d): %w", i, ErrEdgeIndex)
	}
	o := Horizontal
	v := i
	if i >= t.Vertices() {
		o = Vertical
		v -= t.Vertices()
	}
	x, y := t.Coordinate(v)

	return Edge{Index: i, Orientation: o, X: x, Y: y}, nil
}

// Endpoints returns the two vertex indices an edge joins.
func (t *Torus) Endpoints(i int) (u, v int, err error) {
	e, err := t.Edge(i)
	if err != nil {
		return 0, 0, err
	}
	u = t.VertexIndex(e.X, e.Y)
	if e.Orientation == Horizontal {
		return u, t.VertexIndex(e.X+1, e.Y), nil
	}

	return u, t.VertexIndex(e.X, e.Y+1), nil
}

// Neighbors returns the four vertices adjacent to v in N, E, S, W order.
func (t *Torus) Neighbors(v int) ([]int, error) {
	if v < 0 || v >= t.Vertices() {
		return nil, fmt.Errorf("Neighbors(%d): %w", v, ErrVertexIndex)
	}
	x, y := t.Coordinate(v)
	out := make([]int, 0, len(t.neighborOffsets))
	for _, d := range t.neighborOffsets {
		out = append(out, t.VertexIndex(x+d[0], y+d[1]))
	}

	return out, nil
}

// Star returns the edges incident to vertex (x,y):
// h(x,y), h(x-1,y), v(x,y), v(x,y-1).
func (t *Torus) Star(x, y int) []int {
	return []int{
		t.HorizontalEdge(x, y),
		t.HorizontalEdge(x-1, y),
		t.VerticalEdge(x, y),
		t.VerticalEdge(x, y-1),
	}
}

// StarSigns orients Star: +1 on outgoing edges, -1 on incoming ones.
func StarSigns() []int { return []int{1, -1, 1, -1} }

// Plaquette returns the boundary edges of the face whose lower-left corner
// is (x,y): h(x,y), h(x,y+1), v(x,y), v(x+1,y).
func (t *Torus) Plaquette(x, y int) []int {
	return []int{
		t.HorizontalEdge(x, y),
		t.HorizontalEdge(x, y+1),
		t.VerticalEdge(x, y),
		t.VerticalEdge(x+1, y),
	}
}

// PlaquetteSigns orients Plaquette counter-clockwise.
func PlaquetteSigns() []int { return []int{1, -1, -1, 1} }
