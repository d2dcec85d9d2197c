// SPDX-License-Identifier: MIT
package code_test

import (
	"testing"

	"github.com/katalvlaran/decodoku/code"
	"github.com/stretchr/testify/assert"
)

func TestDigitsFor(t *testing.T) {
	t.Parallel()

	cases := []struct {
		n, base, want int
	}{
		{0, 2, 0},
		{1, 2, 1},
		{3, 2, 2},
		{7, 2, 3},
		{8, 2, 4},
		{15, 2, 4},
		{8, 3, 2},
		{9, 3, 3},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, code.DigitsFor(tc.n, tc.base), "n=%d base=%d", tc.n, tc.base)
	}
}

func TestDigitValueRoundTrip(t *testing.T) {
	t.Parallel()

	for _, order := range []code.DigitOrder{code.MostSignificantFirst, code.LeastSignificantFirst} {
		for v := 0; v < 27; v++ {
			dg := code.ValueDigits(v, 3, 3, order)
			assert.Equal(t, v, code.DigitValue(dg, 3, order), "order=%s v=%d", order, v)
		}
	}
	assert.Equal(t, []int{1, 0, 0}, code.ValueDigits(4, 3, 2, code.MostSignificantFirst))
	assert.Equal(t, []int{0, 0, 1}, code.ValueDigits(4, 3, 2, code.LeastSignificantFirst))
}

func TestIndexRowsHamming(t *testing.T) {
	t.Parallel()

	want := [][]int{
		{0, 0, 0, 1, 1, 1, 1},
		{0, 1, 1, 0, 0, 1, 1},
		{1, 0, 1, 0, 1, 0, 1},
	}
	assert.Equal(t, want, code.IndexRows(7, 2, code.MostSignificantFirst))
	assert.Equal(t, "msb-first", code.MostSignificantFirst.String())
	assert.Equal(t, "unknown", code.DigitOrder(0).String())
}
