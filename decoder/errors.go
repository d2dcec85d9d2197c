// SPDX-License-Identifier: MIT
// Package: decodoku/decoder
//
// errors.go - sentinel errors for decoders.
//
// Error policy:
//   • Only sentinel variables are exposed; branch with errors.Is.
//   • Decode never panics on a malformed syndrome; it returns one of these.

package decoder

import "errors"

var (
	// ErrUnsupportedStructure indicates a structural decoder requested for a
	// spec that does not carry the index structure.
	ErrUnsupportedStructure = errors.New("decoder: spec lacks index structure")

	// ErrSyndromeLength indicates a syndrome whose length differs from the
	// spec's check count.
	ErrSyndromeLength = errors.New("decoder: syndrome length mismatch")

	// ErrInconsistentSyndrome indicates a syndrome no single-location error
	// can produce under the structural rule (value beyond N, non-leading rows
	// disagreeing with the decoded column, or CSS blocks naming different units).
	ErrInconsistentSyndrome = errors.New("decoder: syndrome inconsistent with a single error")

	// ErrUnknownSyndrome indicates a lookup miss.
	ErrUnknownSyndrome = errors.New("decoder: syndrome not produced by any single error")

	// ErrAmbiguousSyndrome indicates a syndrome produced by more than one
	// single-location error.
	ErrAmbiguousSyndrome = errors.New("decoder: syndrome produced by several single errors")

	// ErrNilSpec indicates a decoder requested for a nil spec.
	ErrNilSpec = errors.New("decoder: spec is nil")
)
