// SPDX-License-Identifier: MIT
// Package: decodoku/lattice
//
// errors.go - sentinel errors for the lattice package.

package lattice

import "errors"

var (
	// ErrTooSmall indicates a torus side length below 2.
	ErrTooSmall = errors.New("lattice: side length must be at least 2")
	// ErrEdgeIndex indicates an edge index outside [0, 2L²).
	ErrEdgeIndex = errors.New("lattice: edge index out of range")
	// ErrVertexIndex indicates a vertex index outside [0, L²).
	ErrVertexIndex = errors.New("lattice: vertex index out of range")
)
