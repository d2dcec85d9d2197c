// SPDX-License-Identifier: MIT
package matrix_test

import (
	"testing"

	"github.com/katalvlaran/decodoku/matrix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMod(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 0, matrix.Mod(10, 5))
	assert.Equal(t, 4, matrix.Mod(-1, 5))
	assert.Equal(t, 1, matrix.Mod(-9, 10))
	assert.Equal(t, 1, matrix.Mod(3, 2))
}

func TestMulVecMod_Hamming(t *testing.T) {
	t.Parallel()

	h, err := matrix.NewDenseFromRows([][]int{
		{0, 0, 0, 1, 1, 1, 1},
		{0, 1, 1, 0, 0, 1, 1},
		{1, 0, 1, 0, 1, 0, 1},
	})
	require.NoError(t, err)

	// A single flip at column j reproduces column j.
	for j := 0; j < 7; j++ {
		e := make([]int, 7)
		e[j] = 1
		s, err := matrix.MulVecMod(h, e, 2)
		require.NoError(t, err)
		col, _ := h.Column(j)
		assert.Equal(t, col, s, "column %d", j)
	}

	// Two flips cancel pairwise on shared rows.
	s, err := matrix.MulVecMod(h, []int{1, 1, 0, 0, 0, 0, 0}, 2)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 1}, s)
}

func TestMulVecMod_Qudit(t *testing.T) {
	t.Parallel()

	h, err := matrix.NewDenseFromRows([][]int{{1, 4, 0}, {0, 1, 1}})
	require.NoError(t, err)

	s, err := matrix.MulVecMod(h, []int{2, 3, 4}, 5)
	require.NoError(t, err)
	// row0: 2 + 12 = 14 ≡ 4; row1: 3 + 4 = 7 ≡ 2
	assert.Equal(t, []int{4, 2}, s)
}

func TestMulVecMod_Errors(t *testing.T) {
	t.Parallel()

	h, _ := matrix.NewDense(2, 3)
	_, err := matrix.MulVecMod(h, []int{1, 2}, 2)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	_, err = matrix.MulVecMod(h, []int{1, 2, 3}, 1)
	require.ErrorIs(t, err, matrix.ErrBadModulus)
	_, err = matrix.MulVecMod(nil, []int{1}, 2)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestMulModTranspose(t *testing.T) {
	t.Parallel()

	a, err := matrix.NewDenseFromRows([][]int{{1, 1, 0}, {0, 1, 1}})
	require.NoError(t, err)

	at, err := matrix.Transpose(a)
	require.NoError(t, err)
	assert.Equal(t, [][]int{{1, 0}, {1, 1}, {0, 1}}, at.ToRows())

	// Rows overlap in exactly one column: off-diagonal 1, diagonal 2 ≡ 0.
	p, err := matrix.MulMod(a, at, 2)
	require.NoError(t, err)
	assert.Equal(t, [][]int{{0, 1}, {1, 0}}, p.ToRows())

	// products are folded into [0, d)
	s, err := matrix.MulMod(a, at, 7)
	require.NoError(t, err)
	assert.Equal(t, [][]int{{2, 1}, {1, 2}}, s.ToRows())

	_, err = matrix.MulMod(a, a, 2)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}
