// Package pauli defines the error alphabet carried by each physical unit
// and the rule for composing errors.
//
// What:
//
//   - Label: the qubit labels I, X, Y, Z with Compose (Klein four-group).
//   - CheckType: X-type / Z-type stabilizers and Label.Anticommutes.
//   - Algebra: a base-agnostic view (Qubit for d=2, Qudit for Z_d) used by
//     registers, syndrome measurement and decoders.
//
// Errors:
//
//   - ErrUnknownLabel: a symbol outside the alphabet.
//   - ErrBadBase: base below 2.
//   - ErrUnknownCheckType: a check type other than X or Z.
package pauli
