// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the matrix
// package. All operations MUST return these sentinels and tests MUST check them
// via errors.Is. No operation should panic on user-triggered error conditions.

package matrix

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for consistency and to allow
// easy grepping across logs. Context is attached with fmt.Errorf("ctx: %w", ErrX)
// at the nearest detection site; callers still match with errors.Is.
//
// ERROR PRIORITY (documented, enforced in tests):
// nil -> shape/ragged -> index -> modulus -> entry range -> dimension mismatch.

var (
	// ErrInvalidDimensions indicates that requested matrix dimensions are non-positive.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

	// ErrRagged indicates row slices of differing lengths were supplied to a
	// row-based constructor.
	ErrRagged = errors.New("matrix: rows have differing lengths")

	// ErrOutOfRange indicates that an index (row or column) is outside valid bounds.
	// Public indexers (At/Set) MUST return this, not panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible dimensions between operands,
	// e.g., MulVecMod with len(x) != Cols, or MulMod where a.Cols != b.Rows.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNilMatrix indicates that a nil Matrix (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil receiver")

	// ErrBadModulus indicates a modulus below 2; arithmetic over Z_1 or Z_0 is meaningless here.
	ErrBadModulus = errors.New("matrix: modulus must be >= 2")

	// ErrEntryOutOfBase indicates an entry outside [0, d) for the requested modulus d.
	ErrEntryOutOfBase = errors.New("matrix: entry outside [0, d)")
)
