// SPDX-License-Identifier: MIT
// Package: decodoku/session
//
// errors.go - sentinel errors for register operations.

package session

import "errors"

var (
	// ErrIndexOutOfRange indicates a unit index outside [0, N). Indices are
	// never clamped or wrapped.
	ErrIndexOutOfRange = errors.New("session: unit index out of range")

	// ErrInvalidSymbol indicates a symbol outside the register's alphabet.
	ErrInvalidSymbol = errors.New("session: symbol outside the alphabet")

	// ErrLengthMismatch indicates a correction vector whose length is not N.
	ErrLengthMismatch = errors.New("session: correction length mismatch")

	// ErrNotQubit indicates a label view requested on a base-d register.
	ErrNotQubit = errors.New("session: register is not a qubit register")

	// ErrNilSpec indicates a session requested for a nil spec.
	ErrNilSpec = errors.New("session: spec is nil")
)
