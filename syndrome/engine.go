// SPDX-License-Identifier: MIT
// Package: decodoku/syndrome
//
// engine.go - syndrome measurement against one spec.
//
// Modes:
//   • Commutation: per check, the parity of units on its support whose label
//     anti-commutes with the check type. Untyped checks of a base-2 matrix
//     count every non-identity label.
//   • Modular: H·e mod d over per-unit error magnitudes.
//
// Side effects: each measurement refreshes the cached last value of every
// check. Nothing else changes, so re-measuring unchanged state yields an
// equal syndrome. An Engine belongs to one session; it is not safe for
// concurrent measurement.

package syndrome

import (
	"fmt"

	"github.com/katalvlaran/decodoku/code"
	"github.com/katalvlaran/decodoku/matrix"
	"github.com/katalvlaran/decodoku/pauli"
)

// Method tags for error wrapping.
const (
	methodCommutation = "MeasureCommutation"
	methodModular     = "MeasureModular"
	methodMeasure     = "Measure"
)

// Engine measures syndromes for a fixed spec.
type Engine struct {
	spec   *code.Spec
	h      *matrix.Dense
	checks []Check
}

// NewEngine prepares the checks of spec for measurement.
// Complexity: O(r·N).
func NewEngine(spec *code.Spec) (*Engine, error) {
	if spec == nil {
		return nil, fmt.Errorf("NewEngine: %w", ErrNilSpec)
	}
	checks := make([]Check, spec.Checks())
	for i := range checks {
		c, err := spec.Check(i)
		if err != nil {
			return nil, fmt.Errorf("NewEngine: %w", err)
		}
		checks[i] = Check{
			Index:   c.Index,
			Type:    c.Type,
			Pattern: c.Pattern,
			Weights: c.Weights,
			Support: c.Support,
		}
	}

	return &Engine{spec: spec, h: spec.Matrix(), checks: checks}, nil
}

// Spec returns the spec this engine measures.
func (e *Engine) Spec() *code.Spec { return e.spec }

// Checks is the check count.
func (e *Engine) Checks() int { return len(e.checks) }

// Check returns a copy of check i, including its cached last value.
func (e *Engine) Check(i int) (Check, error) {
	if i < 0 || i >= len(e.checks) {
		return Check{}, fmt.Errorf("Check(%d): %w", i, ErrCheckIndex)
	}

	return e.checks[i].clone(), nil
}

// MeasureCommutation evaluates qubit labels by anti-commutation parity.
// Fails with ErrModeUnsupported for base != 2, ErrLengthMismatch when
// len(labels) != N and ErrInvalidSymbol for a label outside I, X, Y, Z.
// Complexity: O(Σ|support|).
func (e *Engine) MeasureCommutation(labels []pauli.Label) (Syndrome, error) {
	if e.spec.Base() != 2 {
		return nil, fmt.Errorf("%s: base %d: %w", methodCommutation, e.spec.Base(), ErrModeUnsupported)
	}
	if len(labels) != e.spec.Units() {
		return nil, fmt.Errorf("%s: %d labels, want %d: %w",
			methodCommutation, len(labels), e.spec.Units(), ErrLengthMismatch)
	}
	for u, l := range labels {
		if !l.Valid() {
			return nil, fmt.Errorf("%s: unit %d label %d: %w", methodCommutation, u, l, ErrInvalidSymbol)
		}
	}
	out := make(Syndrome, len(e.checks))
	for i := range e.checks {
		c := &e.checks[i]
		parity := 0
		for _, u := range c.Support {
			l := labels[u]
			if c.Type == pauli.NoType {
				if l != pauli.I {
					parity ^= c.Weights[u] & 1
				}
				continue
			}
			if l.Anticommutes(c.Type) {
				parity ^= 1
			}
		}
		out[i] = parity
	}
	e.remember(out)

	return out, nil
}

// MeasureModular evaluates H·e mod d over error magnitudes.
// Fails with ErrLengthMismatch when len(magnitudes) != N.
// Complexity: O(r·N).
func (e *Engine) MeasureModular(magnitudes []int) (Syndrome, error) {
	if err := matrix.ValidateVecLen(magnitudes, e.spec.Units()); err != nil {
		return nil, fmt.Errorf("%s: %v: %w", methodModular, err, ErrLengthMismatch)
	}
	y, err := matrix.MulVecMod(e.h, magnitudes, e.spec.Base())
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodModular, err)
	}
	out := Syndrome(y)
	e.remember(out)

	return out, nil
}

// MagnitudesOf maps qubit labels to 0 (identity) or 1 (any error).
func MagnitudesOf(labels []pauli.Label) []int {
	out := make([]int, len(labels))
	for i, l := range labels {
		if l != pauli.I {
			out[i] = 1
		}
	}

	return out
}

// Measure dispatches on the spec's mode. symbols are register symbols of alg,
// whose base must equal the spec's base; a symbol alg rejects fails with
// ErrInvalidSymbol.
func (e *Engine) Measure(symbols []int, alg pauli.Algebra) (Syndrome, error) {
	if alg == nil || alg.Base() != e.spec.Base() {
		return nil, fmt.Errorf("%s: algebra does not match base %d: %w", methodMeasure, e.spec.Base(), ErrModeUnsupported)
	}
	if len(symbols) != e.spec.Units() {
		return nil, fmt.Errorf("%s: %d symbols, want %d: %w",
			methodMeasure, len(symbols), e.spec.Units(), ErrLengthMismatch)
	}
	for u, s := range symbols {
		if !alg.Valid(s) {
			return nil, fmt.Errorf("%s: unit %d symbol %d: %w", methodMeasure, u, s, ErrInvalidSymbol)
		}
	}
	if e.spec.Mode() == code.ModeCommutation {
		labels := make([]pauli.Label, len(symbols))
		for i, s := range symbols {
			labels[i] = pauli.Label(s)
		}
		return e.MeasureCommutation(labels)
	}
	mags := make([]int, len(symbols))
	for i, s := range symbols {
		mags[i] = alg.Magnitude(s)
	}

	return e.MeasureModular(mags)
}

// remember caches the outcome on each check.
func (e *Engine) remember(s Syndrome) {
	for i := range e.checks {
		e.checks[i].last = s[i]
		e.checks[i].measured = true
	}
}
