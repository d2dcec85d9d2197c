// SPDX-License-Identifier: MIT
// Package: decodoku/code
//
// spec.go - the immutable code description shared by engines and sessions.
//
// Canonical model:
//   • A Spec holds base d, unit count N, logical count K, distance and a
//     check matrix H (checks × N) with entries in [0, d).
//   • Pattern specs (CSS) additionally keep one CheckType and one pattern
//     string per check; H is the derived 0/1 support matrix.
//   • Every accessor returns copies; nothing can mutate a Spec after
//     construction, so one Spec is safely shared by any number of sessions.
//
// Determinism:
//   • Check order is declaration order everywhere (matrix rows, blocks, syndromes).

package code

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/decodoku/matrix"
	"github.com/katalvlaran/decodoku/pauli"
)

// Method tags for error wrapping.
const (
	methodFromMatrix   = "NewFromMatrix"
	methodFromPatterns = "NewFromPatterns"
	methodInvolved     = "InvolvedUnits"
	methodCheck        = "Check"
)

// Mode selects the syndrome algorithm a spec is measured with.
type Mode uint8

const (
	// ModeModular evaluates H·e mod d over error magnitudes.
	ModeModular Mode = iota
	// ModeCommutation counts anti-commuting labels per typed check.
	ModeCommutation
)

// String renders "modular" / "commutation".
func (m Mode) String() string {
	if m == ModeCommutation {
		return "commutation"
	}

	return "modular"
}

// Definition is the capability set every code family exposes.
type Definition interface {
	Units() int
	Logical() int
	Distance() int
	Base() int
	Matrix() *matrix.Dense
	Topology() string
}

var _ Definition = (*Spec)(nil)

// Pattern is one CSS check: a string over {I, X, Z} of length N and its type.
type Pattern struct {
	Pattern string
	Type    pauli.CheckType
}

// Check is a read-only view of one check row.
type Check struct {
	Index   int
	Type    pauli.CheckType
	Pattern string // empty for matrix specs
	Weights []int  // row of H
	Support []int  // columns with non-zero weight, ascending
}

// Block groups the checks of one type in declaration order. Matrix specs
// have a single NoType block holding every row.
type Block struct {
	Type   pauli.CheckType
	Checks []int
}

// Spec is an immutable code description.
type Spec struct {
	name     string
	topology string
	base     int
	units    int
	logical  int
	distance int
	demo     bool
	mode     Mode

	h        *matrix.Dense
	types    []pauli.CheckType
	patterns []string
	blocks   []Block

	indexed bool
	order   DigitOrder
}

// NewFromMatrix builds a modular-mode spec from an explicit check matrix.
//
// Validation order: base → shape (non-empty, rectangular) → declared unit
// count → entry range → index structure (if declared).
// Complexity: O(r·N).
func NewFromMatrix(rows [][]int, base int, opts ...Option) (*Spec, error) {
	cfg := newSpecConfig(opts...)
	if base < 2 {
		return nil, fmt.Errorf("%s: base %d: %w", methodFromMatrix, base, ErrInvalidSpec)
	}
	h, err := matrix.NewDenseFromRows(rows)
	if err != nil {
		return nil, fmt.Errorf("%s: %v: %w", methodFromMatrix, err, ErrInvalidSpec)
	}
	if cfg.units != 0 && h.Cols() != cfg.units {
		return nil, fmt.Errorf("%s: %d columns, declared %d units: %w",
			methodFromMatrix, h.Cols(), cfg.units, ErrInvalidSpec)
	}
	if err = matrix.ValidateEntriesInBase(h, base); err != nil {
		return nil, fmt.Errorf("%s: %v: %w", methodFromMatrix, err, ErrInvalidSpec)
	}

	types := make([]pauli.CheckType, h.Rows())
	all := make([]int, h.Rows())
	for i := range all {
		all[i] = i
	}
	s := &Spec{
		base:   base,
		units:  h.Cols(),
		mode:   ModeModular,
		h:      h,
		types:  types,
		blocks: []Block{{Type: pauli.NoType, Checks: all}},
	}
	if err = s.finish(cfg, methodFromMatrix); err != nil {
		return nil, err
	}

	return s, nil
}

// NewFromPatterns builds a commutation-mode qubit spec from CSS checks.
//
// Each pattern must be exactly N symbols from {I, X, Z}, every non-identity
// symbol must match the check type (X-type → X, Z-type → Z), and the type
// must be X or Z. The support matrix H gets a 1 wherever the pattern is not I.
// Complexity: O(r·N).
func NewFromPatterns(checks []Pattern, opts ...Option) (*Spec, error) {
	cfg := newSpecConfig(opts...)
	if len(checks) == 0 {
		return nil, fmt.Errorf("%s: no checks: %w", methodFromPatterns, ErrInvalidSpec)
	}
	n := cfg.units
	if n == 0 {
		n = len([]rune(checks[0].Pattern))
	}
	if n == 0 {
		return nil, fmt.Errorf("%s: empty pattern: %w", methodFromPatterns, ErrInvalidSpec)
	}

	rows := make([][]int, len(checks))
	types := make([]pauli.CheckType, len(checks))
	patterns := make([]string, len(checks))
	for i, c := range checks {
		if c.Type != pauli.XCheck && c.Type != pauli.ZCheck {
			return nil, fmt.Errorf("%s: check %d: type %v: %w", methodFromPatterns, i, c.Type, ErrInvalidSpec)
		}
		runes := []rune(c.Pattern)
		if len(runes) != n {
			return nil, fmt.Errorf("%s: check %d: pattern length %d, want %d: %w",
				methodFromPatterns, i, len(runes), n, ErrInvalidSpec)
		}
		row := make([]int, n)
		for j, r := range runes {
			l, err := pauli.ParseLabel(r)
			if err != nil || l == pauli.Y {
				return nil, fmt.Errorf("%s: check %d: symbol %q at %d: %w",
					methodFromPatterns, i, r, j, ErrInvalidSpec)
			}
			if l == pauli.I {
				continue
			}
			if l != c.Type.Symbol() {
				return nil, fmt.Errorf("%s: check %d: %s-type pattern uses %v at %d: %w",
					methodFromPatterns, i, c.Type, l, j, ErrInvalidSpec)
			}
			row[j] = 1
		}
		rows[i] = row
		types[i] = c.Type
		patterns[i] = strings.ToUpper(c.Pattern)
	}

	h, err := matrix.NewDenseFromRows(rows)
	if err != nil {
		return nil, fmt.Errorf("%s: %v: %w", methodFromPatterns, err, ErrInvalidSpec)
	}
	s := &Spec{
		base:     2,
		units:    n,
		mode:     ModeCommutation,
		h:        h,
		types:    types,
		patterns: patterns,
		blocks:   typedBlocks(types),
	}
	if cfg.commutations {
		if err = s.verifyCommutation(); err != nil {
			return nil, fmt.Errorf("%s: %w", methodFromPatterns, err)
		}
	}
	if err = s.finish(cfg, methodFromPatterns); err != nil {
		return nil, err
	}

	return s, nil
}

// typedBlocks groups check indices by type, Z block first when present so
// the syndrome halves line up with the usual (Z | X) presentation.
func typedBlocks(types []pauli.CheckType) []Block {
	var zs, xs []int
	for i, t := range types {
		if t == pauli.ZCheck {
			zs = append(zs, i)
		} else {
			xs = append(xs, i)
		}
	}
	var out []Block
	if len(zs) > 0 {
		out = append(out, Block{Type: pauli.ZCheck, Checks: zs})
	}
	if len(xs) > 0 {
		out = append(out, Block{Type: pauli.XCheck, Checks: xs})
	}

	return out
}

// finish copies descriptive options and verifies a declared index structure.
func (s *Spec) finish(cfg specConfig, method string) error {
	s.name = cfg.name
	s.topology = cfg.topology
	s.logical = cfg.logical
	s.distance = cfg.distance
	s.demo = cfg.demo
	if !cfg.indexed {
		return nil
	}
	if cfg.demo {
		return fmt.Errorf("%s: demo spec cannot claim index structure: %w", method, ErrInvalidSpec)
	}
	s.indexed = true
	s.order = cfg.order
	for _, b := range s.blocks {
		if err := s.verifyIndexBlock(b); err != nil {
			return fmt.Errorf("%s: %w", method, err)
		}
	}

	return nil
}

// verifyCommutation requires Hx · Hzᵀ ≡ 0 (mod 2): every X/Z check pair
// overlaps on an even number of units.
func (s *Spec) verifyCommutation() error {
	var xRows, zRows [][]int
	for _, b := range s.blocks {
		for _, i := range b.Checks {
			row, _ := s.h.Row(i)
			if b.Type == pauli.XCheck {
				xRows = append(xRows, row)
			} else {
				zRows = append(zRows, row)
			}
		}
	}
	if len(xRows) == 0 || len(zRows) == 0 {
		return nil
	}
	hx, _ := matrix.NewDenseFromRows(xRows)
	hz, _ := matrix.NewDenseFromRows(zRows)
	hzT, err := matrix.Transpose(hz)
	if err != nil {
		return fmt.Errorf("commutation: %v: %w", err, ErrInvalidSpec)
	}
	p, err := matrix.MulMod(hx, hzT, 2)
	if err != nil {
		return fmt.Errorf("commutation: %v: %w", err, ErrInvalidSpec)
	}
	for i := 0; i < p.Rows(); i++ {
		for j := 0; j < p.Cols(); j++ {
			if v, _ := p.At(i, j); v != 0 {
				return fmt.Errorf("commutation: X check %d anti-commutes with Z check %d: %w", i, j, ErrInvalidSpec)
			}
		}
	}

	return nil
}

// Name returns the human-readable code name.
func (s *Spec) Name() string { return s.name }

// Topology describes the geometric support of the code.
func (s *Spec) Topology() string { return s.topology }

// Base is the field size d.
func (s *Spec) Base() int { return s.base }

// Units is the physical unit count N.
func (s *Spec) Units() int { return s.units }

// Checks is the number of check rows.
func (s *Spec) Checks() int { return s.h.Rows() }

// Logical is the declared logical unit count K.
func (s *Spec) Logical() int { return s.logical }

// Distance is the declared minimum distance (0 when not declared).
func (s *Spec) Distance() int { return s.distance }

// Demo reports whether the checks are placeholder data.
func (s *Spec) Demo() bool { return s.demo }

// Mode is the syndrome algorithm for this spec.
func (s *Spec) Mode() Mode { return s.mode }

// Matrix returns a copy of H.
func (s *Spec) Matrix() *matrix.Dense {
	return s.h.Clone().(*matrix.Dense)
}

// IndexStructure returns the digit order when the spec carries the verified
// binary/base-d index structure.
func (s *Spec) IndexStructure() (DigitOrder, bool) {
	return s.order, s.indexed
}

// Blocks returns the check blocks (copies) in presentation order.
func (s *Spec) Blocks() []Block {
	out := make([]Block, len(s.blocks))
	for i, b := range s.blocks {
		out[i] = Block{Type: b.Type, Checks: append([]int(nil), b.Checks...)}
	}

	return out
}

// CheckType returns the type of check i (NoType for matrix specs).
func (s *Spec) CheckType(i int) (pauli.CheckType, error) {
	if i < 0 || i >= s.Checks() {
		return pauli.NoType, fmt.Errorf("CheckType(%d): %w", i, ErrCheckIndex)
	}

	return s.types[i], nil
}

// Check returns a read-only view of check i.
func (s *Spec) Check(i int) (Check, error) {
	if i < 0 || i >= s.Checks() {
		return Check{}, fmt.Errorf("%s(%d): %w", methodCheck, i, ErrCheckIndex)
	}
	w, _ := s.h.Row(i)
	sup, _ := s.h.Support(i)
	c := Check{Index: i, Type: s.types[i], Weights: w, Support: sup}
	if s.patterns != nil {
		c.Pattern = s.patterns[i]
	}

	return c, nil
}

// InvolvedUnits returns the ascending unit indices check i acts on.
func (s *Spec) InvolvedUnits(i int) ([]int, error) {
	if i < 0 || i >= s.Checks() {
		return nil, fmt.Errorf("%s(%d): %w", methodInvolved, i, ErrCheckIndex)
	}
	sup, _ := s.h.Support(i)

	return sup, nil
}

// String renders "[[n,k,d]]_d name".
func (s *Spec) String() string {
	return fmt.Sprintf("%s [[%d,%d,%d]] base %d (%s)", s.name, s.units, s.logical, s.distance, s.base, s.mode)
}
