// SPDX-License-Identifier: MIT

package decoder

import (
	"fmt"

	"github.com/katalvlaran/decodoku/code"
	"github.com/katalvlaran/decodoku/pauli"
	"github.com/katalvlaran/decodoku/syndrome"
)

// Correction names one unit, the error inferred there and the symbol that
// cancels it when composed onto the unit.
type Correction struct {
	Unit   int
	Error  int
	Symbol int
}

// Vector expands the correction into an n-unit symbol vector (identity
// elsewhere), ready for a register's ApplyCorrection.
func (c Correction) Vector(n int) []int {
	out := make([]int, n)
	if c.Unit >= 0 && c.Unit < n {
		out[c.Unit] = c.Symbol
	}

	return out
}

// Decoder maps a syndrome back to a single-location correction.
// ok == false with a nil error means no error was detected.
type Decoder interface {
	Decode(s syndrome.Syndrome) (c Correction, ok bool, err error)
}

// For returns the structural decoder when spec carries the index structure
// and the lookup decoder otherwise.
func For(spec *code.Spec) (Decoder, error) {
	if spec == nil {
		return nil, fmt.Errorf("For: %w", ErrNilSpec)
	}
	if _, ok := spec.IndexStructure(); ok {
		return NewStructural(spec)
	}

	return NewLookup(spec)
}

// newCorrection pairs an inferred error symbol with its inverse.
func newCorrection(alg pauli.Algebra, unit, sym int) Correction {
	return Correction{Unit: unit, Error: sym, Symbol: pauli.Inverse(alg, sym)}
}
