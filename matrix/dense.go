// SPDX-License-Identifier: MIT

// Package matrix - Dense storage (row-major) & safe accessors.
//
// Purpose:
//   - Provide a cache-friendly row-major int buffer with the explicit index formula i*cols + j.
//   - Guarantee safety at the public surface: At/Set return errors instead of panicking.
//   - Keep algorithmic determinism (fixed loop orders, no map iteration).
//   - Provide copy-out accessors (Row, Column, Support) so callers never alias storage.
//
// Complexity quicksheet:
//   - NewDense: O(r*c) zero-init; NewDenseFromRows: O(r*c) copy; At/Set: O(1); Clone: O(r*c).

package matrix

import (
	"fmt"
	"strconv"
	"strings"
)

// ---------- error context tags ----------

const (
	ctxAt       = "At"       // method tag used in error wrappers
	ctxSet      = "Set"      // method tag used in error wrappers
	ctxRow      = "Row"      // method tag used in error wrappers
	ctxColumn   = "Column"   // method tag used in error wrappers
	ctxFromRows = "FromRows" // ctor tag for NewDenseFromRows
	ctxSupport  = "Support"  // method tag used in error wrappers
	ctxNewDense = "NewDense" // ctor tag for NewDense
)

// ---------- Formatting literals  ----------
const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = " "
)

// denseErrorf wraps an error with a uniform Dense context and callsite indices.
//   - Stage 1: format "Dense.<method>(row,col): %w".
//   - Stage 2: return wrapped error.
//
// Keep tags in constants for grep-ability and consistency.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a concrete row-major integer matrix.
//   - r,c hold dimensions (rows, cols).
//   - data is a flat buffer of length r*c in row-major order (offset = i*c + j).
type Dense struct {
	r, c int   // row and column counts (>0 for public constructors)
	data []int // contiguous row-major storage (len == r*c)
}

// Compile-time assertions for interface & fmt.Stringer conformance.
var (
	_ Matrix       = (*Dense)(nil) // *Dense implements our public Matrix interface
	_ fmt.Stringer = (*Dense)(nil)
)

// NewDense creates an r×c zero matrix using row-major storage.
//
// Implementation:
//   - Stage 1: validate rows>0 && cols>0; else ErrInvalidDimensions.
//   - Stage 2: allocate zero-filled buffer.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewDense(rows, cols int) (*Dense, error) {
	// Validate shape.
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("%s(%d,%d): %w", ctxNewDense, rows, cols, ErrInvalidDimensions)
	}
	// Allocate a contiguous flat buffer; make() zero-fills it deterministically.
	return &Dense{r: rows, c: cols, data: make([]int, rows*cols)}, nil
}

// NewDenseFromRows builds a Dense by deep-copying a rectangular [][]int.
//
// Implementation:
//   - Stage 1: reject empty input (ErrInvalidDimensions).
//   - Stage 2: reject ragged input (ErrRagged) reporting the first offending row.
//   - Stage 3: copy row by row into the flat buffer.
//
// The caller keeps ownership of rows; later mutation of rows does not leak in.
// Complexity: O(r*c).
func NewDenseFromRows(rows [][]int) (*Dense, error) {
	// Empty matrices are not check matrices.
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, fmt.Errorf("%s: %w", ctxFromRows, ErrInvalidDimensions)
	}
	r, c := len(rows), len(rows[0])
	// Every row must have the same width as the first.
	for i := 1; i < r; i++ {
		if len(rows[i]) != c {
			return nil, fmt.Errorf("%s: row %d has %d columns, want %d: %w",
				ctxFromRows, i, len(rows[i]), c, ErrRagged)
		}
	}
	d := &Dense{r: r, c: c, data: make([]int, r*c)}
	for i := 0; i < r; i++ {
		copy(d.data[i*c:(i+1)*c], rows[i]) // row i → contiguous slab
	}

	return d, nil
}

// Rows returns the number of rows in the matrix.
func (m *Dense) Rows() int { return m.r }

// Cols returns the number of columns in the matrix.
func (m *Dense) Cols() int { return m.c }

// indexOf computes the flat index for (row, col) or returns ErrOutOfRange.
// Complexity: O(1).
func (m *Dense) indexOf(method string, row, col int) (int, error) {
	// Validate row index
	if row < 0 || row >= m.r {
		return 0, denseErrorf(method, row, col, ErrOutOfRange)
	}
	// Validate column index
	if col < 0 || col >= m.c {
		return 0, denseErrorf(method, row, col, ErrOutOfRange)
	}

	// Compute flat offset
	return row*m.c + col, nil
}

// At retrieves the element at (row, col).
// Complexity: O(1).
func (m *Dense) At(row, col int) (int, error) {
	idx, err := m.indexOf(ctxAt, row, col)
	if err != nil {
		return 0, err
	}

	return m.data[idx], nil
}

// Set assigns value v at (row, col).
// Complexity: O(1).
func (m *Dense) Set(row, col int, v int) error {
	idx, err := m.indexOf(ctxSet, row, col)
	if err != nil {
		return err
	}
	m.data[idx] = v

	return nil
}

// Row returns a copy of row i.
// Complexity: O(c).
func (m *Dense) Row(i int) ([]int, error) {
	if i < 0 || i >= m.r {
		return nil, denseErrorf(ctxRow, i, 0, ErrOutOfRange)
	}
	out := make([]int, m.c)
	copy(out, m.data[i*m.c:(i+1)*m.c])

	return out, nil
}

// Column returns a copy of column j, top to bottom.
// Complexity: O(r).
func (m *Dense) Column(j int) ([]int, error) {
	if j < 0 || j >= m.c {
		return nil, denseErrorf(ctxColumn, 0, j, ErrOutOfRange)
	}
	out := make([]int, m.r)
	for i := 0; i < m.r; i++ {
		out[i] = m.data[i*m.c+j] // stride c walks down the column
	}

	return out, nil
}

// Support returns the ascending column indices where row i is non-zero.
// This is the "involved units" set of a check row.
// Complexity: O(c).
func (m *Dense) Support(i int) ([]int, error) {
	if i < 0 || i >= m.r {
		return nil, denseErrorf(ctxSupport, i, 0, ErrOutOfRange)
	}
	base := i * m.c
	out := make([]int, 0, m.c)
	for j := 0; j < m.c; j++ {
		if m.data[base+j] != 0 {
			out = append(out, j)
		}
	}

	return out, nil
}

// ToRows returns a deep copy as [][]int.
// Complexity: O(r*c).
func (m *Dense) ToRows() [][]int {
	out := make([][]int, m.r)
	for i := 0; i < m.r; i++ {
		out[i] = make([]int, m.c)
		copy(out[i], m.data[i*m.c:(i+1)*m.c])
	}

	return out
}

// Clone returns a deep copy of the Dense matrix.
// Complexity: O(r*c) time and memory for copy.
func (m *Dense) Clone() Matrix {
	cp := make([]int, len(m.data))
	copy(cp, m.data)

	return &Dense{r: m.r, c: m.c, data: cp}
}

// String implements fmt.Stringer for debugging and CLI rendering.
// Rows are rendered as "[a b c]\n".
// Complexity: O(r*c).
func (m *Dense) String() string {
	var sb strings.Builder
	for i := 0; i < m.r; i++ {
		sb.WriteString(_fmtRowOpen)
		for j := 0; j < m.c; j++ {
			if j > 0 {
				sb.WriteString(_fmtSep)
			}
			sb.WriteString(strconv.Itoa(m.data[i*m.c+j]))
		}
		sb.WriteString(_fmtRowClose)
	}

	return sb.String()
}
