// SPDX-License-Identifier: MIT

package codes

import (
	"strings"
	"sync"

	"github.com/katalvlaran/decodoku/code"
	"github.com/katalvlaran/decodoku/geometry"
	"github.com/katalvlaran/decodoku/pauli"
)

var (
	steaneOnce sync.Once
	steane     *code.Spec
	steaneErr  error
)

// Steane returns the shared [[7,1,3]] CSS code: three Z-type then three
// X-type checks, each copying a Hamming (7,4) row. Units are the seven
// points of the Fano plane.
func Steane() (*code.Spec, error) {
	steaneOnce.Do(func() {
		rows := code.IndexRows(7, 2, code.MostSignificantFirst)
		checks := append(cssPatterns(rows, pauli.ZCheck), cssPatterns(rows, pauli.XCheck)...)
		steane, steaneErr = code.NewFromPatterns(checks,
			code.WithName("Steane [[7,1,3]]"),
			code.WithTopology(geometry.TopologyFano),
			code.WithUnits(7),
			code.WithLogical(1),
			code.WithDistance(3),
			code.WithIndexStructure(code.MostSignificantFirst),
			code.WithCommutationCheck(),
		)
	})

	return steane, steaneErr
}

// cssPatterns renders 0/1 rows as patterns of the given check type.
func cssPatterns(rows [][]int, t pauli.CheckType) []code.Pattern {
	sym := t.Symbol().String()
	out := make([]code.Pattern, len(rows))
	for i, row := range rows {
		var sb strings.Builder
		sb.Grow(len(row))
		for _, v := range row {
			if v != 0 {
				sb.WriteString(sym)
			} else {
				sb.WriteByte('I')
			}
		}
		out[i] = code.Pattern{Pattern: sb.String(), Type: t}
	}

	return out
}
