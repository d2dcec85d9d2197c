// SPDX-License-Identifier: MIT
// Package: decodoku/session
//
// session.go - one mutable error register bound to an immutable spec.
//
// Contract:
//   • Every unit holds exactly one symbol of the spec's algebra; errors and
//     corrections are composed onto it, never assigned.
//   • Unit indices outside [0, N) fail with ErrIndexOutOfRange.
//   • A failed call leaves the register unchanged.
//   • Decode uses the structural decoder unless WithDecoder or
//     WithFallbackDecoder says otherwise. On a spec without the index
//     structure it fails with decoder.ErrUnsupportedStructure; measuring
//     still works.
//   • A Session is single-threaded; run one per goroutine.

package session

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/katalvlaran/decodoku/code"
	"github.com/katalvlaran/decodoku/decoder"
	"github.com/katalvlaran/decodoku/pauli"
	"github.com/katalvlaran/decodoku/syndrome"
)

// Session tracks the accumulated error of one register.
type Session struct {
	id     string
	spec   *code.Spec
	alg    pauli.Algebra
	engine *syndrome.Engine
	dec    decoder.Decoder
	decErr error // why dec is nil
	reg    []int
	log    *slog.Logger
}

// Probe is the view-layer highlight data for one check: the units it acts
// on, its type and its last measured value. It is never stored on units.
type Probe struct {
	Check    int
	Type     pauli.CheckType
	Pattern  string
	Units    []int
	Last     int
	Measured bool
}

// New opens a session on spec with every unit at identity.
func New(spec *code.Spec, opts ...Option) (*Session, error) {
	if spec == nil {
		return nil, fmt.Errorf("New: %w", ErrNilSpec)
	}
	cfg := newConfig(opts...)
	alg, err := pauli.ForBase(spec.Base())
	if err != nil {
		return nil, fmt.Errorf("New: %w", err)
	}
	eng, err := syndrome.NewEngine(spec)
	if err != nil {
		return nil, fmt.Errorf("New: %w", err)
	}
	dec := cfg.decoder
	var decErr error
	if dec == nil {
		if cfg.fallback {
			dec, err = decoder.For(spec)
		} else {
			dec, err = decoder.NewStructural(spec)
		}
		switch {
		case errors.Is(err, decoder.ErrUnsupportedStructure):
			dec, decErr = nil, err
		case err != nil:
			return nil, fmt.Errorf("New: %w", err)
		}
	}
	id := cfg.id
	if id == "" {
		id = uuid.NewString()
	}
	s := &Session{
		id:     id,
		spec:   spec,
		alg:    alg,
		engine: eng,
		dec:    dec,
		decErr: decErr,
		reg:    make([]int, spec.Units()),
		log:    cfg.logger.With(slog.String("session_id", id), slog.String("code", spec.Name())),
	}
	s.Reset()

	return s, nil
}

// ID is the session identifier.
func (s *Session) ID() string { return s.id }

// Spec is the code this session measures.
func (s *Session) Spec() *code.Spec { return s.spec }

// Algebra is the per-unit alphabet.
func (s *Session) Algebra() pauli.Algebra { return s.alg }

// Reset returns every unit to identity.
func (s *Session) Reset() {
	for i := range s.reg {
		s.reg[i] = s.alg.Identity()
	}
}

// ApplyError composes symbol onto unit.
func (s *Session) ApplyError(unit, symbol int) error {
	if unit < 0 || unit >= len(s.reg) {
		return fmt.Errorf("ApplyError(%d): N=%d: %w", unit, len(s.reg), ErrIndexOutOfRange)
	}
	if !s.alg.Valid(symbol) {
		return fmt.Errorf("ApplyError(%d, %d): %w", unit, symbol, ErrInvalidSymbol)
	}
	s.reg[unit] = s.alg.Compose(s.reg[unit], symbol)
	s.log.Debug("error applied",
		slog.Int("unit", unit),
		slog.String("symbol", s.alg.Format(symbol)),
		slog.String("state", s.alg.Format(s.reg[unit])),
	)

	return nil
}

// ApplyLabel composes a qubit label onto unit. Fails with ErrNotQubit on
// base-d registers.
func (s *Session) ApplyLabel(unit int, l pauli.Label) error {
	if s.spec.Base() != 2 {
		return fmt.Errorf("ApplyLabel: base %d: %w", s.spec.Base(), ErrNotQubit)
	}

	return s.ApplyError(unit, int(l))
}

// ApplyCorrection composes symbols[i] onto unit i for every unit. The vector
// is validated in full before any unit changes.
func (s *Session) ApplyCorrection(symbols []int) error {
	if len(symbols) != len(s.reg) {
		return fmt.Errorf("ApplyCorrection: %d symbols, want %d: %w", len(symbols), len(s.reg), ErrLengthMismatch)
	}
	for i, v := range symbols {
		if !s.alg.Valid(v) {
			return fmt.Errorf("ApplyCorrection: unit %d symbol %d: %w", i, v, ErrInvalidSymbol)
		}
	}
	for i, v := range symbols {
		s.reg[i] = s.alg.Compose(s.reg[i], v)
	}
	s.log.Debug("correction applied", slog.String("correction", pauli.FormatSymbols(s.alg, symbols)))

	return nil
}

// ApplyCorrectionString parses symbols ("IXIIZII", or "0,2,0" for qudits)
// and applies them as a correction.
func (s *Session) ApplyCorrectionString(str string) error {
	syms, err := pauli.ParseSymbols(s.alg, str)
	if err != nil {
		return fmt.Errorf("ApplyCorrectionString: %v: %w", err, ErrInvalidSymbol)
	}

	return s.ApplyCorrection(syms)
}

// MeasureSyndrome evaluates the register against every check.
func (s *Session) MeasureSyndrome() (syndrome.Syndrome, error) {
	out, err := s.engine.Measure(s.reg, s.alg)
	if err != nil {
		return nil, fmt.Errorf("MeasureSyndrome: %w", err)
	}
	s.log.Debug("syndrome measured", slog.String("syndrome", out.String()))

	return out, nil
}

// Decode asks the session's decoder for a correction.
func (s *Session) Decode(syn syndrome.Syndrome) (decoder.Correction, bool, error) {
	if s.dec == nil {
		return decoder.Correction{}, false, fmt.Errorf("Decode: %w", s.decErr)
	}
	c, ok, err := s.dec.Decode(syn)
	if err != nil {
		s.log.Debug("decode failed", slog.String("syndrome", syn.String()), slog.Any("error", err))
		return decoder.Correction{}, false, fmt.Errorf("Decode: %w", err)
	}
	if ok {
		s.log.Debug("decoded",
			slog.String("syndrome", syn.String()),
			slog.Int("unit", c.Unit),
			slog.String("error", s.alg.Format(c.Error)),
		)
	}

	return c, ok, nil
}

// Correct measures, decodes and applies the decoded correction.
// ok == false means nothing was detected and nothing changed.
func (s *Session) Correct() (decoder.Correction, bool, error) {
	syn, err := s.MeasureSyndrome()
	if err != nil {
		return decoder.Correction{}, false, err
	}
	c, ok, err := s.Decode(syn)
	if err != nil || !ok {
		return c, ok, err
	}
	if err = s.ApplyError(c.Unit, c.Symbol); err != nil {
		return decoder.Correction{}, false, fmt.Errorf("Correct: %w", err)
	}

	return c, true, nil
}

// ErrorVector returns a copy of the register symbols.
func (s *Session) ErrorVector() []int {
	return append([]int(nil), s.reg...)
}

// Labels returns the register as qubit labels. Fails with ErrNotQubit on
// base-d registers.
func (s *Session) Labels() ([]pauli.Label, error) {
	if s.spec.Base() != 2 {
		return nil, fmt.Errorf("Labels: base %d: %w", s.spec.Base(), ErrNotQubit)
	}
	out := make([]pauli.Label, len(s.reg))
	for i, v := range s.reg {
		out[i] = pauli.Label(v)
	}

	return out, nil
}

// ErrorString renders the register ("IXIIZII", or "0,2,0" for qudits).
func (s *Session) ErrorString() string {
	return pauli.FormatSymbols(s.alg, s.reg)
}

// Weight counts the units that are not at identity.
func (s *Session) Weight() int {
	w := 0
	for _, v := range s.reg {
		if v != s.alg.Identity() {
			w++
		}
	}

	return w
}

// InvolvedUnits returns the units check acts on.
func (s *Session) InvolvedUnits(check int) ([]int, error) {
	return s.spec.InvolvedUnits(check)
}

// Probe returns the highlight data for check.
func (s *Session) Probe(check int) (Probe, error) {
	c, err := s.engine.Check(check)
	if err != nil {
		return Probe{}, fmt.Errorf("Probe: %w", err)
	}
	last, measured := c.Last()

	return Probe{
		Check:    c.Index,
		Type:     c.Type,
		Pattern:  c.Pattern,
		Units:    c.Support,
		Last:     last,
		Measured: measured,
	}, nil
}
