// SPDX-License-Identifier: MIT

package geometry

import (
	"fmt"

	"github.com/katalvlaran/decodoku/code"
)

// Chains is the lattice picture of a set of faulty edges.
type Chains struct {
	Chains  [][]int  // edges grouped into chains that share a vertex
	Defects []string // vertices on an odd number of faulty edges, as "(x,y)"
}

// ToricChains groups the given units of a toroidal spec into edge chains
// and lists their end vertices. Fails with ErrTopology for other specs.
func ToricChains(spec code.Definition, units []int) (Chains, error) {
	if spec.Topology() != TopologyToric {
		return Chains{}, fmt.Errorf("ToricChains(%s): %w", spec.Topology(), ErrTopology)
	}
	t, err := torusFor(spec.Units())
	if err != nil {
		return Chains{}, err
	}
	chains, err := t.Clusters(units)
	if err != nil {
		return Chains{}, fmt.Errorf("ToricChains: %w", err)
	}
	ends, err := t.Boundary(units)
	if err != nil {
		return Chains{}, fmt.Errorf("ToricChains: %w", err)
	}
	out := Chains{Chains: chains, Defects: make([]string, 0, len(ends))}
	for _, v := range ends {
		x, y := t.Coordinate(v)
		out.Defects = append(out.Defects, fmt.Sprintf("(%d,%d)", x, y))
	}

	return out, nil
}
