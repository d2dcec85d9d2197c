// SPDX-License-Identifier: MIT
// Package: decodoku/decoder
//
// structural.go - direct syndrome → location inversion for index-structured
// specs.
//
// Rule (per check block):
//   • Stage 1: read the leading r = DigitsFor(N, d) entries as base-d digits
//     in the spec's digit order; value v.
//   • Stage 2: v == 0 → nothing detected in this block; v > N → inconsistent.
//   • Stage 3: every entry of the block must equal column v−1 of H (the
//     non-leading rows included); otherwise inconsistent.
//
// Combination:
//   • Matrix specs have one block; the inferred error has magnitude 1
//     (X for qubits, residue 1 for qudits).
//   • CSS specs: the Z block locates an X error, the X block locates a Z
//     error, both at the same unit make Y. Different units are inconsistent.

package decoder

import (
	"fmt"

	"github.com/katalvlaran/decodoku/code"
	"github.com/katalvlaran/decodoku/matrix"
	"github.com/katalvlaran/decodoku/pauli"
	"github.com/katalvlaran/decodoku/syndrome"
)

const methodStructural = "Structural.Decode"

// Structural decodes single errors on index-structured specs.
type Structural struct {
	spec   *code.Spec
	h      *matrix.Dense
	blocks []code.Block
	order  code.DigitOrder
	digits int
	alg    pauli.Algebra
}

var _ Decoder = (*Structural)(nil)

// NewStructural fails with ErrUnsupportedStructure unless spec was built with
// a verified index structure.
func NewStructural(spec *code.Spec) (*Structural, error) {
	if spec == nil {
		return nil, fmt.Errorf("NewStructural: %w", ErrNilSpec)
	}
	order, ok := spec.IndexStructure()
	if !ok {
		return nil, fmt.Errorf("NewStructural(%s): %w", spec.Name(), ErrUnsupportedStructure)
	}
	alg, err := pauli.ForBase(spec.Base())
	if err != nil {
		return nil, fmt.Errorf("NewStructural: %w", err)
	}

	return &Structural{
		spec:   spec,
		h:      spec.Matrix(),
		blocks: spec.Blocks(),
		order:  order,
		digits: code.DigitsFor(spec.Units(), spec.Base()),
		alg:    alg,
	}, nil
}

// locate applies the block rule and returns the 0-based unit, or -1.
func (d *Structural) locate(s syndrome.Syndrome, b code.Block) (int, error) {
	v := s.Value(b.Checks[:d.digits], d.spec.Base(), d.order)
	if v > d.spec.Units() {
		return -1, fmt.Errorf("%s: %s block value %d beyond %d units: %w",
			methodStructural, b.Type, v, d.spec.Units(), ErrInconsistentSyndrome)
	}
	unit := v - 1
	for _, c := range b.Checks {
		want := 0
		if unit >= 0 {
			want, _ = d.h.At(c, unit)
		}
		if s[c] != want {
			return -1, fmt.Errorf("%s: check %d reads %d, unit %d implies %d: %w",
				methodStructural, c, s[c], unit, want, ErrInconsistentSyndrome)
		}
	}

	return unit, nil
}

// Decode implements Decoder.
// Complexity: O(r).
func (d *Structural) Decode(s syndrome.Syndrome) (Correction, bool, error) {
	if len(s) != d.spec.Checks() {
		return Correction{}, false, fmt.Errorf("%s: %d entries, want %d: %w",
			methodStructural, len(s), d.spec.Checks(), ErrSyndromeLength)
	}

	xUnit, zUnit := -1, -1
	for _, b := range d.blocks {
		unit, err := d.locate(s, b)
		if err != nil {
			return Correction{}, false, err
		}
		switch b.Type {
		case pauli.XCheck:
			zUnit = unit
		default:
			// Z-type and untyped checks both see bit flips.
			xUnit = unit
		}
	}

	switch {
	case xUnit < 0 && zUnit < 0:
		return Correction{}, false, nil
	case d.spec.Mode() == code.ModeModular:
		mag1 := 1
		if d.spec.Base() == 2 {
			mag1 = int(pauli.X)
		}
		return newCorrection(d.alg, xUnit, mag1), true, nil
	case zUnit < 0:
		return newCorrection(d.alg, xUnit, int(pauli.X)), true, nil
	case xUnit < 0:
		return newCorrection(d.alg, zUnit, int(pauli.Z)), true, nil
	case xUnit == zUnit:
		return newCorrection(d.alg, xUnit, int(pauli.Y)), true, nil
	default:
		return Correction{}, false, fmt.Errorf("%s: Z checks point at unit %d, X checks at %d: %w",
			methodStructural, xUnit, zUnit, ErrInconsistentSyndrome)
	}
}
