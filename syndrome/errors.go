// SPDX-License-Identifier: MIT
// Package: decodoku/syndrome
//
// errors.go - sentinel errors for syndrome measurement.

package syndrome

import "errors"

var (
	// ErrLengthMismatch indicates an error vector whose length differs from
	// the unit count of the spec.
	ErrLengthMismatch = errors.New("syndrome: error vector length mismatch")

	// ErrModeUnsupported indicates commutation measurement on a base other
	// than 2, or symbols from an algebra that does not match the spec.
	ErrModeUnsupported = errors.New("syndrome: measurement mode unsupported for this spec")

	// ErrInvalidSymbol indicates a label or register symbol outside the
	// alphabet of the spec's algebra.
	ErrInvalidSymbol = errors.New("syndrome: symbol outside the error alphabet")

	// ErrNilSpec indicates an engine requested for a nil spec.
	ErrNilSpec = errors.New("syndrome: spec is nil")

	// ErrCheckIndex indicates a check index outside [0, Checks()).
	ErrCheckIndex = errors.New("syndrome: check index out of range")
)
