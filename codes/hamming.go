// SPDX-License-Identifier: MIT

package codes

import (
	"fmt"
	"sync"

	"github.com/katalvlaran/decodoku/code"
)

// maxIndexUnits bounds index-structured families so the CLI cannot ask for
// a matrix that does not fit on a screen or in memory.
const (
	maxIndexUnits  = 1 << 12
	maxHammingRows = 12
)

var (
	hamming74Once sync.Once
	hamming74     *code.Spec
	hamming74Err  error
)

// Hamming returns the binary Hamming code with r check rows: N = 2^r − 1
// units whose columns spell 1..N most significant digit first.
// Measured in modular mode. Requires r >= 2.
func Hamming(r int) (*code.Spec, error) {
	if r < 2 || r > maxHammingRows {
		return nil, fmt.Errorf("Hamming(%d): %w", r, ErrBadParameter)
	}
	n := (1 << r) - 1

	return code.NewFromMatrix(code.IndexRows(n, 2, code.MostSignificantFirst), 2,
		code.WithName(fmt.Sprintf("Hamming (%d,%d)", n, n-r)),
		code.WithTopology("Binary index columns"),
		code.WithUnits(n),
		code.WithLogical(n-r),
		code.WithDistance(3),
		code.WithIndexStructure(code.MostSignificantFirst),
	)
}

// Hamming74 is the shared Hamming (7,4) spec, built once per process.
func Hamming74() (*code.Spec, error) {
	hamming74Once.Do(func() {
		hamming74, hamming74Err = Hamming(3)
	})

	return hamming74, hamming74Err
}

// IndexCode returns the base-d index code with r check rows: N = d^r − 1
// units, column j holding the base-d digits of j+1. Requires d >= 2, r >= 2.
//
// For d > 2 two columns can be proportional, so the distance is 2 and only
// unit-magnitude errors point at their own column.
func IndexCode(d, r int) (*code.Spec, error) {
	if d < 2 || r < 2 {
		return nil, fmt.Errorf("IndexCode(%d,%d): %w", d, r, ErrBadParameter)
	}
	n := 1
	for i := 0; i < r; i++ {
		n *= d
		if n-1 > maxIndexUnits {
			return nil, fmt.Errorf("IndexCode(%d,%d): %d units: %w", d, r, n-1, ErrBadParameter)
		}
	}
	n--
	dist := 3
	if d > 2 {
		dist = 2
	}

	return code.NewFromMatrix(code.IndexRows(n, d, code.MostSignificantFirst), d,
		code.WithName(fmt.Sprintf("Base-%d index code", d)),
		code.WithTopology(fmt.Sprintf("Base-%d index columns", d)),
		code.WithUnits(n),
		code.WithLogical(n-r),
		code.WithDistance(dist),
		code.WithIndexStructure(code.MostSignificantFirst),
	)
}
