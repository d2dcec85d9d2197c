// SPDX-License-Identifier: MIT
// Package: decodoku/decoder
//
// lookup.go - single-location decoding for specs without index structure.
//
// Model:
//   • A single error of symbol s on unit u fires only the checks in column u
//     of H: magnitude(s)·H[i][u] mod d in modular mode, the anti-commutation
//     bit of s against check i in commutation mode.
//   • Modular specs cannot tell symbols of equal magnitude apart, so only one
//     symbol per magnitude is a candidate (X for qubits).
//
// Decode:
//   • Every matching error fires the first non-zero check i₀, so only the
//     units of check i₀ are tried. A syndrome matched by two different
//     errors is ambiguous; one matched by none is unknown.
//
// Complexity:
//   • NewLookup: O(r·N) to index the columns of H.
//   • Decode:    O(r + w·|alphabet|·c) for check weight w and column weight c.

package decoder

import (
	"fmt"

	"github.com/katalvlaran/decodoku/code"
	"github.com/katalvlaran/decodoku/matrix"
	"github.com/katalvlaran/decodoku/pauli"
	"github.com/katalvlaran/decodoku/syndrome"
)

const methodLookup = "Lookup.Decode"

// cell is one non-zero entry of a column of H.
type cell struct {
	check  int
	weight int
}

// Lookup decodes any spec whose single errors have distinct syndromes.
type Lookup struct {
	spec  *code.Spec
	alg   pauli.Algebra
	syms  []int
	types []pauli.CheckType
	rows  [][]int  // rows[i]: units of check i
	cols  [][]cell // cols[u]: checks acting on unit u
}

var _ Decoder = (*Lookup)(nil)

// NewLookup indexes the rows and columns of spec's check matrix.
func NewLookup(spec *code.Spec) (*Lookup, error) {
	if spec == nil {
		return nil, fmt.Errorf("NewLookup: %w", ErrNilSpec)
	}
	alg, err := pauli.ForBase(spec.Base())
	if err != nil {
		return nil, fmt.Errorf("NewLookup: %w", err)
	}
	h := spec.Matrix()

	d := &Lookup{
		spec:  spec,
		alg:   alg,
		syms:  candidateSymbols(spec, alg),
		types: make([]pauli.CheckType, h.Rows()),
		rows:  make([][]int, h.Rows()),
		cols:  make([][]cell, h.Cols()),
	}
	for i := range d.rows {
		if d.types[i], err = spec.CheckType(i); err != nil {
			return nil, fmt.Errorf("NewLookup: %w", err)
		}
		if d.rows[i], err = h.Support(i); err != nil {
			return nil, fmt.Errorf("NewLookup: %w", err)
		}
	}
	for u := range d.cols {
		col, err := h.Column(u)
		if err != nil {
			return nil, fmt.Errorf("NewLookup: %w", err)
		}
		for i, w := range col {
			if w != 0 {
				d.cols[u] = append(d.cols[u], cell{check: i, weight: w})
			}
		}
	}

	return d, nil
}

// candidateSymbols lists the error symbols worth enumerating for spec.
func candidateSymbols(spec *code.Spec, alg pauli.Algebra) []int {
	var out []int
	seen := make(map[int]bool)
	for s := 0; s < alg.Size(); s++ {
		if s == alg.Identity() {
			continue
		}
		if spec.Mode() == code.ModeModular {
			m := alg.Magnitude(s)
			if seen[m] {
				continue
			}
			seen[m] = true
		}
		out = append(out, s)
	}

	return out
}

// entry is the value check c.check reports for symbol sym on a unit of
// weight c.weight.
func (d *Lookup) entry(c cell, sym int) int {
	if d.spec.Mode() == code.ModeModular {
		return matrix.Mod(d.alg.Magnitude(sym)*c.weight, d.spec.Base())
	}
	t := d.types[c.check]
	if t == pauli.NoType {
		if sym == d.alg.Identity() {
			return 0
		}
		return c.weight & 1
	}
	if pauli.Label(sym).Anticommutes(t) {
		return 1
	}

	return 0
}

// matches reports whether symbol sym on unit u produces exactly s, which
// has fired non-zero entries.
func (d *Lookup) matches(s syndrome.Syndrome, fired, u, sym int) bool {
	n := 0
	for _, c := range d.cols[u] {
		v := d.entry(c, sym)
		if v != s[c.check] {
			return false
		}
		if v != 0 {
			n++
		}
	}

	return n == fired
}

// single writes the syndrome of symbol sym on unit u into out.
func (d *Lookup) single(out syndrome.Syndrome, u, sym int) {
	for i := range out {
		out[i] = 0
	}
	for _, c := range d.cols[u] {
		out[c.check] = d.entry(c, sym)
	}
}

// Coverage enumerates every single error and reports how many syndromes
// decode uniquely and how many are ambiguous.
// Complexity: O(N·|alphabet|·r).
func (d *Lookup) Coverage() (unique, ambiguous int) {
	count := make(map[string]int)
	s := make(syndrome.Syndrome, len(d.rows))
	for u := range d.cols {
		for _, sym := range d.syms {
			d.single(s, u, sym)
			if s.IsZero() {
				continue // undetectable on this unit
			}
			count[s.String()]++
		}
	}
	for _, n := range count {
		if n > 1 {
			ambiguous++
		} else {
			unique++
		}
	}

	return unique, ambiguous
}

// Decode implements Decoder.
func (d *Lookup) Decode(s syndrome.Syndrome) (Correction, bool, error) {
	if len(s) != len(d.rows) {
		return Correction{}, false, fmt.Errorf("%s: %d entries, want %d: %w",
			methodLookup, len(s), len(d.rows), ErrSyndromeLength)
	}
	first, fired := -1, 0
	for i, v := range s {
		if v != 0 {
			fired++
			if first < 0 {
				first = i
			}
		}
	}
	if fired == 0 {
		return Correction{}, false, nil
	}

	var found []Correction
	for _, u := range d.rows[first] {
		for _, sym := range d.syms {
			if d.matches(s, fired, u, sym) {
				found = append(found, newCorrection(d.alg, u, sym))
			}
		}
	}
	switch len(found) {
	case 0:
		return Correction{}, false, fmt.Errorf("%s: %s: %w", methodLookup, s, ErrUnknownSyndrome)
	case 1:
		return found[0], true, nil
	default:
		return Correction{}, false, fmt.Errorf("%s: %s: %w", methodLookup, s, ErrAmbiguousSyndrome)
	}
}
