// SPDX-License-Identifier: MIT

package pauli

import (
	"fmt"
	"strconv"
	"strings"
)

// Algebra is the per-unit error alphabet of a code together with its
// composition rule. Symbols are small non-negative ints so registers of any
// base share one representation.
//
//   - Qubit(): symbols 0..3 are I, X, Y, Z composed by the Klein four-group.
//   - Qudit(d): symbols 0..d-1 are residues composed by addition mod d.
type Algebra interface {
	// Base is the field size d the checks are evaluated over.
	Base() int
	// Size is the number of symbols in the alphabet.
	Size() int
	// Identity is the "no error" symbol.
	Identity() int
	// Compose returns the symbol after applying b on top of a.
	Compose(a, b int) int
	// Magnitude is the weight a symbol contributes to a modular syndrome.
	Magnitude(s int) int
	// Valid reports whether s belongs to the alphabet.
	Valid(s int) bool
	// Format renders one symbol.
	Format(s int) string
	// Parse reads one symbol token.
	Parse(tok string) (int, error)
}

// ForBase returns Qubit() for d == 2 and Qudit(d) for d > 2.
func ForBase(d int) (Algebra, error) {
	switch {
	case d < 2:
		return nil, fmt.Errorf("ForBase(%d): %w", d, ErrBadBase)
	case d == 2:
		return Qubit(), nil
	default:
		return cyclic{d: d}, nil
	}
}

// Qubit returns the Klein four-group algebra over {I, X, Y, Z}.
func Qubit() Algebra { return klein{} }

// Qudit returns the cyclic algebra Z_d. It panics for d < 2 (programmer error);
// use ForBase for untrusted input.
func Qudit(d int) Algebra {
	if d < 2 {
		panic("pauli: Qudit: d must be >= 2")
	}

	return cyclic{d: d}
}

// klein is the qubit algebra. Every non-identity label has magnitude 1 in
// modular mode: X, Y and Z are not told apart there.
type klein struct{}

func (klein) Base() int            { return 2 }
func (klein) Size() int            { return 4 }
func (klein) Identity() int        { return int(I) }
func (klein) Compose(a, b int) int { return int(Compose(Label(a), Label(b))) }
func (klein) Valid(s int) bool     { return s >= 0 && s <= int(Z) }
func (klein) Format(s int) string  { return Label(s).String() }

func (klein) Magnitude(s int) int {
	if s == int(I) {
		return 0
	}

	return 1
}

func (klein) Parse(tok string) (int, error) {
	r := []rune(strings.TrimSpace(tok))
	if len(r) != 1 {
		return 0, fmt.Errorf("Parse(%q): %w", tok, ErrUnknownLabel)
	}
	l, err := ParseLabel(r[0])
	if err != nil {
		return 0, err
	}

	return int(l), nil
}

// cyclic is Z_d. Composition is addition mod d.
type cyclic struct{ d int }

func (c cyclic) Base() int           { return c.d }
func (c cyclic) Size() int           { return c.d }
func (cyclic) Identity() int         { return 0 }
func (c cyclic) Valid(s int) bool    { return s >= 0 && s < c.d }
func (c cyclic) Magnitude(s int) int { return s }
func (cyclic) Format(s int) string   { return strconv.Itoa(s) }

func (c cyclic) Compose(a, b int) int {
	r := (a + b) % c.d
	if r < 0 {
		r += c.d
	}

	return r
}

func (c cyclic) Parse(tok string) (int, error) {
	v, err := strconv.Atoi(strings.TrimSpace(tok))
	if err != nil || !c.Valid(v) {
		return 0, fmt.Errorf("Parse(%q) in Z_%d: %w", tok, c.d, ErrUnknownLabel)
	}

	return v, nil
}

// Inverse returns the symbol that cancels s: s itself for qubits, d-s for qudits.
func Inverse(a Algebra, s int) int {
	if a.Base() == 2 {
		return s
	}

	return a.Compose(0, a.Base()-s)
}

// ParseSymbols reads a correction or error vector in the notation of a:
// qubit vectors are letter strings ("IXIZ"), qudit vectors are comma or
// space separated residues ("0,3,0,1").
func ParseSymbols(a Algebra, s string) ([]int, error) {
	if a.Base() == 2 {
		ls, err := ParseLabels(strings.TrimSpace(s))
		if err != nil {
			return nil, err
		}
		out := make([]int, len(ls))
		for i, l := range ls {
			out[i] = int(l)
		}

		return out, nil
	}

	fields := strings.FieldsFunc(s, func(r rune) bool { return r == ',' || r == ' ' })
	out := make([]int, 0, len(fields))
	for i, f := range fields {
		v, err := a.Parse(f)
		if err != nil {
			return nil, fmt.Errorf("ParseSymbols: position %d: %w", i, err)
		}
		out = append(out, v)
	}

	return out, nil
}

// FormatSymbols is the inverse of ParseSymbols.
func FormatSymbols(a Algebra, syms []int) string {
	if a.Base() == 2 {
		var sb strings.Builder
		for _, s := range syms {
			sb.WriteString(a.Format(s))
		}
		return sb.String()
	}
	parts := make([]string, len(syms))
	for i, s := range syms {
		parts[i] = a.Format(s)
	}

	return strings.Join(parts, ",")
}
