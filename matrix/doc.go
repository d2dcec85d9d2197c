// Package matrix offers the integer check-matrix primitives used by the
// stabilizer codes in this module.
//
// The matrix package provides:
//
//   - Dense, a row-major int matrix with bounds-checked At/Set and copy-out
//     accessors (Row, Column, Support).
//   - Modular kernels: MulVecMod (syndrome = H·e mod d), MulMod, Transpose and Mod.
//   - Centralized validators (ValidateNotNil, ValidateVecLen, ValidateEntriesInBase, ...).
//
// Matrices here are small (tens of rows and columns); every kernel is a plain
// O(r·c) loop in fixed order, so results are deterministic.
//
// See the examples in this package for usage patterns.
package matrix
