// Package code describes stabilizer and classical codes as immutable specs.
//
// A Spec fixes the base d, the unit count N, the declared logical count K and
// distance, and a check matrix H with one row per check. Two construction
// paths exist:
//
//   - NewFromMatrix: explicit rows over Z_d, measured in modular mode.
//   - NewFromPatterns: CSS checks written as {I, X, Z} strings with a type,
//     measured in commutation mode.
//
// A spec may declare the index structure (WithIndexStructure): in every check
// block the leading DigitsFor(N, d) rows, read as base-d digits, spell the
// 1-based unit index of each column. The constructor verifies the claim, so
// structural decoders can rely on it.
//
// Specs are read-only after construction and safe to share between
// goroutines.
package code
