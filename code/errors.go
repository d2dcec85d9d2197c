// SPDX-License-Identifier: MIT
// Package: decodoku/code
//
// errors.go - sentinel errors for the code package.
//
// Error policy:
//   • Only sentinel variables (package-level) are exposed.
//   • Callers MUST use errors.Is(err, ErrX) to branch on semantics.
//   • Implementations attach context with %w (method + offending value).
//   • Constructors never return a usable *Spec together with an error.

package code

import "errors"

// ErrInvalidSpec indicates a malformed code description: base < 2, no checks,
// ragged rows, a column count that disagrees with the declared unit count,
// an entry outside [0, d), a pattern of the wrong length or alphabet, or a
// declared index structure / commutation property the checks do not have.
// Classification: fatal for the construction; no usable Spec is produced.
var ErrInvalidSpec = errors.New("code: invalid code spec")

// ErrCheckIndex indicates a check index outside [0, Checks()).
var ErrCheckIndex = errors.New("code: check index out of range")
