// SPDX-License-Identifier: MIT
// Package: decodoku/codes
//
// errors.go - sentinel errors for the code families.
//
// Error policy:
//   • Only sentinel variables are exposed; branch with errors.Is.
//   • Family constructors wrap with the family name and offending value.
//   • Structural problems in a built matrix surface as code.ErrInvalidSpec.

package codes

import "errors"

// ErrBadParameter indicates a family parameter outside its supported range
// (Hamming r < 2, toric L < 2, base d < 2, ...).
var ErrBadParameter = errors.New("codes: parameter out of range")

// ErrNeedRandSource indicates a randomized family was built without an RNG.
var ErrNeedRandSource = errors.New("codes: rng is required")

// ErrUnknownCode indicates a catalog lookup for a name that is not registered.
var ErrUnknownCode = errors.New("codes: unknown code family")
