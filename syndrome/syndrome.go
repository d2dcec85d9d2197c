// SPDX-License-Identifier: MIT

package syndrome

import (
	"strconv"
	"strings"

	"github.com/katalvlaran/decodoku/code"
)

// Syndrome is one measurement outcome per check, in declaration order.
// Entries are bits for qubit codes and residues mod d otherwise.
type Syndrome []int

// IsZero reports whether no check fired.
func (s Syndrome) IsZero() bool {
	for _, v := range s {
		if v != 0 {
			return false
		}
	}

	return true
}

// Equal reports entrywise equality.
func (s Syndrome) Equal(o Syndrome) bool {
	if len(s) != len(o) {
		return false
	}
	for i := range s {
		if s[i] != o[i] {
			return false
		}
	}

	return true
}

// Clone returns an independent copy.
func (s Syndrome) Clone() Syndrome {
	return append(Syndrome(nil), s...)
}

// Fired lists the indices of checks with a non-zero outcome.
func (s Syndrome) Fired() []int {
	var out []int
	for i, v := range s {
		if v != 0 {
			out = append(out, i)
		}
	}

	return out
}

// String renders bit syndromes compactly ("101") and residue syndromes
// dot-separated ("3.0.7").
func (s Syndrome) String() string {
	binary := true
	for _, v := range s {
		if v != 0 && v != 1 {
			binary = false
			break
		}
	}
	if binary {
		var sb strings.Builder
		sb.Grow(len(s))
		for _, v := range s {
			sb.WriteByte(byte('0' + v))
		}
		return sb.String()
	}
	parts := make([]string, len(s))
	for i, v := range s {
		parts[i] = strconv.Itoa(v)
	}

	return strings.Join(parts, ".")
}

// Value reads the entries at checks as base-d digits in the given order.
// Used for the decimal hint of index-structured codes.
func (s Syndrome) Value(checks []int, base int, order code.DigitOrder) int {
	digits := make([]int, 0, len(checks))
	for _, c := range checks {
		if c >= 0 && c < len(s) {
			digits = append(digits, s[c])
		}
	}

	return code.DigitValue(digits, base, order)
}
