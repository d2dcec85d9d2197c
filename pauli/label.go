// SPDX-License-Identifier: MIT

// Package pauli - per-unit error labels and their composition.
//
// Purpose:
//   - Label is the qubit error alphabet {I, X, Y, Z}.
//   - Compose implements the Klein four-group table: I is neutral, every
//     generator is its own inverse, and two distinct generators give the third.
//   - CheckType names the two stabilizer flavours (X-type, Z-type) together
//     with the anti-commutation rule used by syndrome measurement.
//
// Phases are ignored: XZ and ZX are both recorded as Y, which is exact for
// error tracking because a global phase never changes a syndrome.

package pauli

import (
	"fmt"
	"strings"
)

// Label is a single-unit Pauli error label.
type Label uint8

// The zero value is I so a freshly allocated register is error free.
const (
	I Label = iota
	X
	Y
	Z
)

// labelRunes maps Label → display rune (index == Label).
var labelRunes = [...]rune{'I', 'X', 'Y', 'Z'}

// Labels lists the alphabet in canonical order.
func Labels() []Label { return []Label{I, X, Y, Z} }

// NonIdentity lists the three error generators in canonical order.
func NonIdentity() []Label { return []Label{X, Y, Z} }

// Valid reports whether l is one of I, X, Y, Z.
func (l Label) Valid() bool { return l <= Z }

// String renders the label as a single letter; invalid values render as "?".
func (l Label) String() string {
	if !l.Valid() {
		return "?"
	}

	return string(labelRunes[l])
}

// Compose returns the label of applying b on top of a.
//
// With the encoding I=0, X=1, Y=2, Z=3 the table is not a plain XOR, so it
// is spelled out through the (x, z) bit pair: X=(1,0), Z=(0,1), Y=(1,1).
// Composition is XOR of bit pairs, which is the Klein four-group.
// Complexity: O(1), total over all 16 ordered pairs of valid labels.
func Compose(a, b Label) Label {
	ax, az := a.bits()
	bx, bz := b.bits()

	return fromBits(ax^bx, az^bz)
}

// bits returns the (x, z) symplectic components of l.
func (l Label) bits() (x, z uint8) {
	switch l {
	case X:
		return 1, 0
	case Y:
		return 1, 1
	case Z:
		return 0, 1
	default:
		return 0, 0
	}
}

// fromBits is the inverse of bits.
func fromBits(x, z uint8) Label {
	switch {
	case x == 1 && z == 1:
		return Y
	case x == 1:
		return X
	case z == 1:
		return Z
	default:
		return I
	}
}

// Anticommutes reports whether an error l is detected by a check of type t.
// Z-type checks detect X and Y; X-type checks detect Z and Y.
func (l Label) Anticommutes(t CheckType) bool {
	x, z := l.bits()
	switch t {
	case ZCheck:
		return x == 1
	case XCheck:
		return z == 1
	default:
		return false
	}
}

// ParseLabel converts 'I', 'X', 'Y', 'Z' (case-insensitive) to a Label.
func ParseLabel(r rune) (Label, error) {
	switch r {
	case 'I', 'i':
		return I, nil
	case 'X', 'x':
		return X, nil
	case 'Y', 'y':
		return Y, nil
	case 'Z', 'z':
		return Z, nil
	}

	return I, fmt.Errorf("ParseLabel(%q): %w", r, ErrUnknownLabel)
}

// ParseLabels converts a string such as "IXIIZII" to one Label per rune.
func ParseLabels(s string) ([]Label, error) {
	out := make([]Label, 0, len(s))
	for i, r := range []rune(s) {
		l, err := ParseLabel(r)
		if err != nil {
			return nil, fmt.Errorf("ParseLabels: position %d: %w", i, err)
		}
		out = append(out, l)
	}

	return out, nil
}

// FormatLabels renders labels as a compact string ("IXIIZII").
func FormatLabels(ls []Label) string {
	var sb strings.Builder
	sb.Grow(len(ls))
	for _, l := range ls {
		sb.WriteString(l.String())
	}

	return sb.String()
}

// CheckType is the flavour of a stabilizer check.
type CheckType uint8

const (
	// NoType marks checks of a plain (classical or qudit) check matrix.
	NoType CheckType = iota
	// XCheck is a product of X operators; it detects Z and Y errors.
	XCheck
	// ZCheck is a product of Z operators; it detects X and Y errors.
	ZCheck
)

// String renders "X", "Z" or "-".
func (t CheckType) String() string {
	switch t {
	case XCheck:
		return "X"
	case ZCheck:
		return "Z"
	default:
		return "-"
	}
}

// ParseCheckType converts "X" / "Z" (case-insensitive) to a CheckType.
func ParseCheckType(s string) (CheckType, error) {
	switch strings.ToUpper(s) {
	case "X":
		return XCheck, nil
	case "Z":
		return ZCheck, nil
	}

	return NoType, fmt.Errorf("ParseCheckType(%q): %w", s, ErrUnknownCheckType)
}

// Symbol returns the pattern letter a check of type t uses on its support.
func (t CheckType) Symbol() Label {
	switch t {
	case XCheck:
		return X
	case ZCheck:
		return Z
	default:
		return I
	}
}
