// SPDX-License-Identifier: MIT
// Package: decodoku/geometry
//
// geometry.go - human labels for physical units.
//
// Every labeled topology reads unit j through the integer j+1 (or through
// its lattice edge), so labels agree with the index structure of the codes:
//   • Fano plane: point j+1 of PG(2,2), written in binary.
//   • Tetrahedron: the non-empty vertex subset whose bitmask is j+1
//     (1 vertex, 2 edge, 3 face, 4 interior).
//   • Boolean 3-cube: the point j of F_2^3.
//   • Toroidal grid: the lattice edge h(x,y) / v(x,y).

package geometry

import (
	"fmt"
	"math/bits"
	"strings"

	"github.com/katalvlaran/decodoku/code"
	"github.com/katalvlaran/decodoku/lattice"
)

// Topology names shared with the code families.
const (
	TopologyFano        = "Fano plane"
	TopologyTetrahedron = "Tetrahedron"
	TopologyCube        = "Boolean 3-cube"
	TopologyToric       = "Toroidal grid"
)

// Labels returns one label per unit of spec. Unknown topologies fall back to
// "u<j>".
func Labels(spec code.Definition) ([]string, error) {
	n := spec.Units()
	switch spec.Topology() {
	case TopologyFano:
		if n != 7 {
			return nil, fmt.Errorf("Labels(%s): %d units: %w", TopologyFano, n, ErrShape)
		}
		return FanoLabels(), nil
	case TopologyTetrahedron:
		if n != 15 {
			return nil, fmt.Errorf("Labels(%s): %d units: %w", TopologyTetrahedron, n, ErrShape)
		}
		return TetrahedronLabels(), nil
	case TopologyCube:
		if n != 8 {
			return nil, fmt.Errorf("Labels(%s): %d units: %w", TopologyCube, n, ErrShape)
		}
		return CubeLabels(), nil
	case TopologyToric:
		t, err := torusFor(n)
		if err != nil {
			return nil, err
		}
		return ToricLabels(t), nil
	default:
		out := make([]string, n)
		for j := range out {
			out[j] = fmt.Sprintf("u%d", j)
		}
		return out, nil
	}
}

// torusFor recovers L from N = 2L².
func torusFor(n int) (*lattice.Torus, error) {
	for l := 2; 2*l*l <= n; l++ {
		if 2*l*l == n {
			return lattice.NewTorus(l)
		}
	}

	return nil, fmt.Errorf("Labels(%s): %d units: %w", TopologyToric, n, ErrShape)
}

// FanoLabels names the seven points "P1 (001)" .. "P7 (111)".
func FanoLabels() []string {
	out := make([]string, 7)
	for j := range out {
		out[j] = fmt.Sprintf("P%d (%03b)", j+1, j+1)
	}

	return out
}

// FanoLines returns the seven lines of PG(2,2) as 0-based unit triples
// {a, b, a⊕b}, ordered lexicographically.
func FanoLines() [][]int {
	var out [][]int
	for a := 1; a <= 7; a++ {
		for b := a + 1; b <= 7; b++ {
			c := a ^ b
			if c > b {
				out = append(out, []int{a - 1, b - 1, c - 1})
			}
		}
	}

	return out
}

// TetrahedronLabels names the fifteen non-empty vertex subsets of a
// tetrahedron with vertices 0..3.
func TetrahedronLabels() []string {
	out := make([]string, 15)
	for j := range out {
		mask := uint(j + 1)
		var vs []string
		for v := 0; v < 4; v++ {
			if mask&(1<<v) != 0 {
				vs = append(vs, fmt.Sprint(v))
			}
		}
		kind := [...]string{"", "Vertex", "Edge", "Face", "Interior"}[bits.OnesCount(mask)]
		if kind == "Interior" {
			out[j] = kind
			continue
		}
		out[j] = kind + " " + strings.Join(vs, "-")
	}

	return out
}

// CubeLabels names the eight points of F_2^3 as "(x1,x2,x3)".
func CubeLabels() []string {
	out := make([]string, 8)
	for p := range out {
		out[p] = fmt.Sprintf("(%d,%d,%d)", p&1, (p>>1)&1, (p>>2)&1)
	}

	return out
}

// ToricLabels names every edge of t.
func ToricLabels(t *lattice.Torus) []string {
	out := make([]string, t.Edges())
	for i := range out {
		e, _ := t.Edge(i)
		out[i] = e.String()
	}

	return out
}

// Describe renders a short text description of spec's geometry: parameters,
// unit labels and, for the Fano plane, its lines.
func Describe(spec code.Definition) (string, error) {
	labels, err := Labels(spec)
	if err != nil {
		return "", err
	}
	var sb strings.Builder
	fmt.Fprintf(&sb, "%s: [[%d,%d,%d]] base %d\n", spec.Topology(), spec.Units(), spec.Logical(), spec.Distance(), spec.Base())
	for j, l := range labels {
		fmt.Fprintf(&sb, "  %2d  %s\n", j, l)
	}
	if spec.Topology() == TopologyFano {
		sb.WriteString("lines:\n")
		for i, line := range FanoLines() {
			fmt.Fprintf(&sb, "  L%d  %v\n", i, line)
		}
	}

	return sb.String(), nil
}
