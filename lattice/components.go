// SPDX-License-Identifier: MIT

package lattice

import (
	"fmt"
	"sort"
)

// Clusters groups edges into chains that share a vertex.
// Each cluster lists edge indices ascending; clusters are ordered by their
// smallest edge. Duplicate inputs are ignored.
//
// Time:   O(E) with E = len(edges), via BFS over the vertex incidence map.
// Memory: O(E).
func (t *Torus) Clusters(edges []int) ([][]int, error) {
	byVertex := make(map[int][]int)
	seen := make(map[int]bool, len(edges))
	uniq := make([]int, 0, len(edges))
	for _, e := range edges {
		u, v, err := t.Endpoints(e)
		if err != nil {
			return nil, fmt.Errorf("Clusters: %w", err)
		}
		if seen[e] {
			continue
		}
		seen[e] = true
		uniq = append(uniq, e)
		byVertex[u] = append(byVertex[u], e)
		byVertex[v] = append(byVertex[v], e)
	}
	sort.Ints(uniq)

	visited := make(map[int]bool, len(uniq))
	var out [][]int
	for _, start := range uniq {
		if visited[start] {
			continue
		}
		// BFS to collect the chain
		queue := []int{start}
		visited[start] = true
		var comp []int
		for qi := 0; qi < len(queue); qi++ {
			e := queue[qi]
			comp = append(comp, e)
			u, v, _ := t.Endpoints(e)
			for _, w := range [2]int{u, v} {
				for _, f := range byVertex[w] {
					if !visited[f] {
						visited[f] = true
						queue = append(queue, f)
					}
				}
			}
		}
		sort.Ints(comp)
		out = append(out, comp)
	}

	return out, nil
}

// Boundary returns the vertices touched by an odd number of the given edges,
// ascending. These are the flipped stars of a Z-type error chain.
func (t *Torus) Boundary(edges []int) ([]int, error) {
	deg := make(map[int]int)
	for _, e := range edges {
		u, v, err := t.Endpoints(e)
		if err != nil {
			return nil, fmt.Errorf("Boundary: %w", err)
		}
		deg[u]++
		deg[v]++
	}
	var out []int
	for v, d := range deg {
		if d%2 == 1 {
			out = append(out, v)
		}
	}
	sort.Ints(out)

	return out, nil
}
