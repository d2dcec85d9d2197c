// SPDX-License-Identifier: MIT

package codes

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/decodoku/code"
)

// QuditSurfaceDemo returns a base-d spec with L²−1 checks over 2L² units
// whose weights are drawn from rng. The checks are placeholder data with no
// derived structure: the spec is marked Demo and is never index structured.
// Requires d >= 2, L >= 2 and a non-nil rng.
func QuditSurfaceDemo(d, l int, rng *rand.Rand) (*code.Spec, error) {
	if rng == nil {
		return nil, fmt.Errorf("QuditSurfaceDemo(%d,%d): %w", d, l, ErrNeedRandSource)
	}
	if d < 2 || l < 2 {
		return nil, fmt.Errorf("QuditSurfaceDemo(%d,%d): %w", d, l, ErrBadParameter)
	}
	n, r := 2*l*l, l*l-1
	rows := make([][]int, r)
	for i := range rows {
		rows[i] = make([]int, n)
		for j := range rows[i] {
			rows[i][j] = rng.Intn(d)
		}
	}

	return code.NewFromMatrix(rows, d,
		code.WithName(fmt.Sprintf("Qudit surface demo %dx%d (d=%d)", l, l, d)),
		code.WithTopology("Planar surface (random checks)"),
		code.WithUnits(n),
		code.WithLogical(n-r),
		code.WithDemo(),
	)
}
