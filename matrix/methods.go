// SPDX-License-Identifier: MIT

// Package matrix provides modular operations on any Matrix implementation:
// matrix-vector product mod d, matrix product mod d, transpose and reduction.
// All functions perform strict fail-fast validation and return sentinel errors
// on dimension mismatches; none of them mutate their inputs.
package matrix

import "fmt"

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opMulVecMod = "MulVecMod"
	opMulMod    = "MulMod"
	opTranspose = "Transpose"
)

// matrixErrorf wraps an underlying error with the given tag.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// Mod returns the canonical residue of v in [0, d). Go's % keeps the sign of
// the dividend, so negative weights (e.g. d-1 written as -1) are folded here.
// Assumes d >= 2 (callers validate once per operation).
func Mod(v, d int) int {
	r := v % d
	if r < 0 {
		r += d
	}

	return r
}

// MulVecMod returns y = (m · x) mod d, one entry per row of m.
// Stage 1 (Validate): nil-check, modulus, len(x) == Cols.
// Stage 2 (Execute): fast-path for *Dense or fallback to interface.
// Time Complexity: O(r·c); Space Complexity: O(r).
func MulVecMod(m Matrix, x []int, d int) ([]int, error) {
	// Stage 1: validate inputs
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opMulVecMod, err)
	}
	if err := ValidateModulus(d); err != nil {
		return nil, matrixErrorf(opMulVecMod, err)
	}
	if err := ValidateVecLen(x, m.Cols()); err != nil {
		return nil, matrixErrorf(opMulVecMod, err)
	}

	rows, cols := m.Rows(), m.Cols()
	y := make([]int, rows)

	// Stage 2: Dense fast-path walks the flat buffer row by row
	if dm, ok := m.(*Dense); ok {
		var base, acc int
		for i := 0; i < rows; i++ {
			base, acc = i*cols, 0
			for j := 0; j < cols; j++ {
				acc += dm.data[base+j] * x[j]
			}
			y[i] = Mod(acc, d)
		}

		return y, nil
	}

	// Fallback: generic interface loop
	var v, acc int
	for i := 0; i < rows; i++ {
		acc = 0
		for j := 0; j < cols; j++ {
			v, _ = m.At(i, j) // safe: bounds ensured
			acc += v * x[j]
		}
		y[i] = Mod(acc, d)
	}

	return y, nil
}

// MulMod returns (a · b) mod d as a new Dense.
// Used to verify symplectic orthogonality of CSS check blocks (Hx · Hzᵀ ≡ 0 mod 2).
// Complexity: O(r·k·c).
func MulMod(a, b Matrix, d int) (*Dense, error) {
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMulMod, err)
	}
	if err := ValidateModulus(d); err != nil {
		return nil, matrixErrorf(opMulMod, err)
	}
	res, err := NewDense(a.Rows(), b.Cols())
	if err != nil {
		return nil, matrixErrorf(opMulMod, err)
	}

	var (
		i, j, k int
		av, bv  int
		acc     int
	)
	for i = 0; i < a.Rows(); i++ {
		for j = 0; j < b.Cols(); j++ {
			acc = 0
			for k = 0; k < a.Cols(); k++ {
				av, _ = a.At(i, k)
				bv, _ = b.At(k, j)
				acc += av * bv
			}
			res.data[i*res.c+j] = Mod(acc, d)
		}
	}

	return res, nil
}

// Transpose returns a new Dense with rows and columns swapped.
// Complexity: O(r·c).
func Transpose(m Matrix) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}
	rows, cols := m.Rows(), m.Cols()
	res, err := NewDense(cols, rows) // dims flipped
	if err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}
	var v int
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			v, _ = m.At(i, j)
			res.data[j*rows+i] = v
		}
	}

	return res, nil
}
