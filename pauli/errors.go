// SPDX-License-Identifier: MIT

package pauli

import "errors"

var (
	// ErrUnknownLabel indicates a rune or symbol outside the alphabet of the algebra.
	ErrUnknownLabel = errors.New("pauli: unknown label")

	// ErrBadBase indicates an algebra was requested for a base below 2.
	ErrBadBase = errors.New("pauli: base must be >= 2")

	// ErrUnknownCheckType indicates a check type other than X or Z.
	ErrUnknownCheckType = errors.New("pauli: unknown check type")
)
