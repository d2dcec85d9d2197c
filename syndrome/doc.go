// Package syndrome measures a register's error against the checks of a
// code.Spec.
//
// An Engine supports two measurement modes: anti-commutation parity for CSS
// pattern codes (MeasureCommutation) and H·e mod d for matrix codes
// (MeasureModular). Measure picks the one the spec declares. A Syndrome is a
// fresh []int per call, one entry per check in declaration order.
package syndrome
