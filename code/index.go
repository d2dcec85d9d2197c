// SPDX-License-Identifier: MIT

package code

import "fmt"

// DigitOrder fixes how the leading rows of a check block are read as the
// digits of a base-d integer.
type DigitOrder uint8

const (
	// MostSignificantFirst reads row 0 as the most significant digit.
	// The Hamming(7,4) rows 0001111 / 0110011 / 1010101 use this order.
	MostSignificantFirst DigitOrder = iota + 1
	// LeastSignificantFirst reads row 0 as the least significant digit.
	LeastSignificantFirst
)

// String renders "msb-first" / "lsb-first".
func (o DigitOrder) String() string {
	switch o {
	case MostSignificantFirst:
		return "msb-first"
	case LeastSignificantFirst:
		return "lsb-first"
	default:
		return "unknown"
	}
}

// DigitsFor returns the number of base-d digits needed to write n, i.e. the
// smallest r with d^r > n. It returns 0 for n <= 0.
func DigitsFor(n, base int) int {
	r := 0
	for p := 1; p <= n; p *= base {
		r++
	}

	return r
}

// DigitValue interprets digits as a base-d integer in the given order.
func DigitValue(digits []int, base int, order DigitOrder) int {
	v := 0
	if order == LeastSignificantFirst {
		for i := len(digits) - 1; i >= 0; i-- {
			v = v*base + digits[i]
		}
		return v
	}
	for _, dg := range digits {
		v = v*base + dg
	}

	return v
}

// ValueDigits is the inverse of DigitValue for a fixed width r.
func ValueDigits(v, r, base int, order DigitOrder) []int {
	out := make([]int, r)
	for i := 0; i < r; i++ {
		dg := v % base
		v /= base
		if order == LeastSignificantFirst {
			out[i] = dg
		} else {
			out[r-1-i] = dg
		}
	}

	return out
}

// IndexRows builds the r×n matrix whose column j holds the base-d digits of
// j+1 in the given order, r = DigitsFor(n, base). This is the canonical
// Hamming-style check block.
func IndexRows(n, base int, order DigitOrder) [][]int {
	r := DigitsFor(n, base)
	rows := make([][]int, r)
	for i := range rows {
		rows[i] = make([]int, n)
	}
	for j := 0; j < n; j++ {
		dg := ValueDigits(j+1, r, base, order)
		for i := 0; i < r; i++ {
			rows[i][j] = dg[i]
		}
	}

	return rows
}

// verifyIndexBlock checks that the leading DigitsFor(N, d) rows of a block
// spell 1..N across the columns in the given order.
func (s *Spec) verifyIndexBlock(b Block) error {
	r := DigitsFor(s.units, s.base)
	if len(b.Checks) < r {
		return fmt.Errorf("index structure: %s block has %d checks, need %d: %w",
			b.Type, len(b.Checks), r, ErrInvalidSpec)
	}
	digits := make([]int, r)
	for j := 0; j < s.units; j++ {
		for i := 0; i < r; i++ {
			digits[i], _ = s.h.At(b.Checks[i], j)
		}
		if got := DigitValue(digits, s.base, s.order); got != j+1 {
			return fmt.Errorf("index structure: %s block column %d reads %d, want %d: %w",
				b.Type, j, got, j+1, ErrInvalidSpec)
		}
	}

	return nil
}
