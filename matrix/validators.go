// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single, canonical source of truth for common validation checks.
//  - Keep kernels minimal by delegating nil/shape/modulus checks here.
//  - Return sentinel errors tagged with the validator name so call sites can wrap uniformly.
//
// Determinism & Performance:
//  - All checks are pure, deterministic and allocate nothing.
//
// Note:
//  - Each composite validator follows a fixed sequence (e.g. NotNil → Shape).

package matrix

import "fmt"

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil ensures the matrix reference is non-nil.
// Handles both a nil interface and a typed nil *Dense.
// Complexity: O(1).
func ValidateNotNil(m Matrix) error {
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}
	if d, ok := m.(*Dense); ok && d == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateVecLen ensures the vector length matches the required size n.
// Time: O(1). Space: O(1).
func ValidateVecLen(x []int, n int) error {
	// Disallow nil vectors to avoid subtle bugs in MatVec-like routines.
	if x == nil {
		return validatorErrorf("ValidateVecLen", ErrNilMatrix) // we reuse the existing sentinel for "nil argument"
	}
	if len(x) != n {
		return validatorErrorf("ValidateVecLen", ErrDimensionMismatch)
	}

	return nil
}

// ValidateModulus ensures d >= 2.
// Complexity: O(1).
func ValidateModulus(d int) error {
	if d < 2 {
		return validatorErrorf("ValidateModulus", ErrBadModulus)
	}

	return nil
}

// ValidateEntriesInBase checks every entry lies in [0, d).
// Composite: NotNil → Modulus → scan. Reports the first offending cell.
// Complexity: O(r*c).
func ValidateEntriesInBase(m Matrix, d int) error {
	if err := ValidateNotNil(m); err != nil {
		return validatorErrorf("ValidateEntriesInBase", err)
	}
	if err := ValidateModulus(d); err != nil {
		return validatorErrorf("ValidateEntriesInBase", err)
	}
	var v int
	for i := 0; i < m.Rows(); i++ {
		for j := 0; j < m.Cols(); j++ {
			v, _ = m.At(i, j) // bounds are ours
			if v < 0 || v >= d {
				return fmt.Errorf("ValidateEntriesInBase: (%d,%d)=%d, d=%d: %w", i, j, v, d, ErrEntryOutOfBase)
			}
		}
	}

	return nil
}

// ValidateMulCompatible ensures a.Cols == b.Rows, inputs non-nil.
// Complexity: O(1).
func ValidateMulCompatible(a, b Matrix) error {
	if err := ValidateNotNil(a); err != nil {
		return validatorErrorf("ValidateMulCompatible", err)
	}
	if err := ValidateNotNil(b); err != nil {
		return validatorErrorf("ValidateMulCompatible", err)
	}
	if a.Cols() != b.Rows() {
		return validatorErrorf("ValidateMulCompatible", ErrDimensionMismatch)
	}

	return nil
}
