// SPDX-License-Identifier: MIT

package codes

import (
	"sync"

	"github.com/katalvlaran/decodoku/code"
	"github.com/katalvlaran/decodoku/geometry"
	"github.com/katalvlaran/decodoku/pauli"
)

var (
	rm8Once sync.Once
	rm8     *code.Spec
	rm8Err  error

	rm15Once sync.Once
	rm15     *code.Spec
	rm15Err  error
)

// rm13Rows are the generators of RM(1,3) over the eight points of F_2^3:
// the all-ones row and the three coordinate functions. RM(1,3) is self-dual,
// so these rows are also its parity checks.
func rm13Rows() [][]int {
	rows := make([][]int, 4)
	for i := range rows {
		rows[i] = make([]int, 8)
	}
	for p := 0; p < 8; p++ {
		rows[0][p] = 1
		rows[1][p] = p & 1
		rows[2][p] = (p >> 1) & 1
		rows[3][p] = (p >> 2) & 1
	}

	return rows
}

// ReedMuller13 returns the shared classical RM(1,3) [8,4,4] code in modular
// mode. Its columns do not enumerate 1..N, so it is decoded by lookup.
func ReedMuller13() (*code.Spec, error) {
	rm8Once.Do(func() {
		rm8, rm8Err = code.NewFromMatrix(rm13Rows(), 2,
			code.WithName("Reed-Muller RM(1,3)"),
			code.WithTopology(geometry.TopologyCube),
			code.WithUnits(8),
			code.WithLogical(4),
			code.WithDistance(4),
		)
	})

	return rm8, rm8Err
}

// QuantumReedMuller15 returns the shared [[15,1,3]] quantum Reed-Muller code.
//
// X-type checks are the four rows of the Hamming (15,11) matrix; Z-type
// checks are those four rows plus their six pairwise products. The leading
// four rows of each block carry the binary index structure.
func QuantumReedMuller15() (*code.Spec, error) {
	rm15Once.Do(func() {
		base := code.IndexRows(15, 2, code.MostSignificantFirst)
		zRows := append([][]int(nil), base...)
		for i := 0; i < len(base); i++ {
			for j := i + 1; j < len(base); j++ {
				prod := make([]int, 15)
				for c := range prod {
					prod[c] = base[i][c] * base[j][c]
				}
				zRows = append(zRows, prod)
			}
		}
		checks := append(cssPatterns(zRows, pauli.ZCheck), cssPatterns(base, pauli.XCheck)...)
		rm15, rm15Err = code.NewFromPatterns(checks,
			code.WithName("Quantum Reed-Muller [[15,1,3]]"),
			code.WithTopology(geometry.TopologyTetrahedron),
			code.WithUnits(15),
			code.WithLogical(1),
			code.WithDistance(3),
			code.WithIndexStructure(code.MostSignificantFirst),
			code.WithCommutationCheck(),
		)
	})

	return rm15, rm15Err
}
