// SPDX-License-Identifier: MIT
package session_test

import (
	"bytes"
	"fmt"
	"log/slog"
	"testing"

	"github.com/katalvlaran/decodoku/code"
	"github.com/katalvlaran/decodoku/codes"
	"github.com/katalvlaran/decodoku/decoder"
	"github.com/katalvlaran/decodoku/pauli"
	"github.com/katalvlaran/decodoku/session"
	"github.com/katalvlaran/decodoku/syndrome"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSteane(t *testing.T, opts ...session.Option) *session.Session {
	t.Helper()

	spec, err := codes.Steane()
	require.NoError(t, err)
	s, err := session.New(spec, opts...)
	require.NoError(t, err)

	return s
}

func TestNewSession(t *testing.T) {
	t.Parallel()

	_, err := session.New(nil)
	require.ErrorIs(t, err, session.ErrNilSpec)

	a := newSteane(t)
	b := newSteane(t)
	assert.NotEqual(t, a.ID(), b.ID())
	assert.Len(t, a.ID(), 36)
	assert.Equal(t, "IIIIIII", a.ErrorString())
	assert.Zero(t, a.Weight())

	c := newSteane(t, session.WithID("round-1"))
	assert.Equal(t, "round-1", c.ID())
}

func TestApplyErrorRoundTrip(t *testing.T) {
	t.Parallel()

	s := newSteane(t)
	for _, l := range pauli.NonIdentity() {
		require.NoError(t, s.ApplyLabel(2, l))
		require.NoError(t, s.ApplyLabel(2, l))
		assert.Equal(t, "IIIIIII", s.ErrorString(), "label %v", l)
	}

	require.NoError(t, s.ApplyLabel(1, pauli.X))
	require.NoError(t, s.ApplyLabel(1, pauli.Z))
	labels, err := s.Labels()
	require.NoError(t, err)
	assert.Equal(t, pauli.Y, labels[1])
	assert.Equal(t, 1, s.Weight())

	s.Reset()
	assert.Equal(t, make([]int, 7), s.ErrorVector())
}

func TestBoundsAndSymbols(t *testing.T) {
	t.Parallel()

	s := newSteane(t)
	require.ErrorIs(t, s.ApplyError(7, int(pauli.X)), session.ErrIndexOutOfRange)
	require.ErrorIs(t, s.ApplyError(-1, int(pauli.X)), session.ErrIndexOutOfRange)
	require.ErrorIs(t, s.ApplyError(0, 4), session.ErrInvalidSymbol)
	assert.Equal(t, "IIIIIII", s.ErrorString(), "failed calls change nothing")

	require.ErrorIs(t, s.ApplyCorrection([]int{1, 0}), session.ErrLengthMismatch)
	require.ErrorIs(t, s.ApplyCorrection([]int{1, 0, 0, 0, 0, 0, 9}), session.ErrInvalidSymbol)
	assert.Equal(t, "IIIIIII", s.ErrorString())

	require.ErrorIs(t, s.ApplyCorrectionString("IXQ"), session.ErrInvalidSymbol)
	require.ErrorIs(t, s.ApplyCorrectionString("IXI"), session.ErrLengthMismatch)
	require.NoError(t, s.ApplyCorrectionString("IXIIZII"))
	assert.Equal(t, "IXIIZII", s.ErrorString())

	_, err := s.InvolvedUnits(6)
	require.ErrorIs(t, err, code.ErrCheckIndex)
	_, err = s.Probe(-1)
	require.ErrorIs(t, err, syndrome.ErrCheckIndex)
}

func TestMeasureDecodeCorrect(t *testing.T) {
	t.Parallel()

	s := newSteane(t)
	syn, err := s.MeasureSyndrome()
	require.NoError(t, err)
	assert.True(t, syn.IsZero())
	_, ok, err := s.Decode(syn)
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, s.ApplyLabel(5, pauli.Y))
	syn, err = s.MeasureSyndrome()
	require.NoError(t, err)
	assert.Equal(t, "110110", syn.String())

	c, ok, err := s.Correct()
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, 5, c.Unit)
	assert.Equal(t, int(pauli.Y), c.Error)
	assert.Equal(t, "IIIIIII", s.ErrorString())

	syn, err = s.MeasureSyndrome()
	require.NoError(t, err)
	assert.True(t, syn.IsZero())
}

func TestDecodeFailureSurfaces(t *testing.T) {
	t.Parallel()

	s := newSteane(t)
	require.NoError(t, s.ApplyLabel(0, pauli.X))
	require.NoError(t, s.ApplyLabel(1, pauli.Z))
	_, _, err := s.Correct()
	require.ErrorIs(t, err, decoder.ErrInconsistentSyndrome)
	assert.Equal(t, "XZIIIII", s.ErrorString())
}

func TestDecodeNeedsIndexStructure(t *testing.T) {
	t.Parallel()

	spec, err := codes.ReedMuller13()
	require.NoError(t, err)
	s, err := session.New(spec)
	require.NoError(t, err)
	require.NoError(t, s.ApplyError(2, int(pauli.X)))

	syn, err := s.MeasureSyndrome()
	require.NoError(t, err)
	assert.False(t, syn.IsZero())
	_, ok, err := s.Decode(syn)
	require.ErrorIs(t, err, decoder.ErrUnsupportedStructure)
	assert.False(t, ok)
	_, _, err = s.Correct()
	require.ErrorIs(t, err, decoder.ErrUnsupportedStructure)
	assert.Equal(t, 1, s.Weight(), "a rejected decode changes nothing")

	fb, err := session.New(spec, session.WithFallbackDecoder())
	require.NoError(t, err)
	require.NoError(t, fb.ApplyError(2, int(pauli.X)))
	c, ok, err := fb.Correct()
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, 2, c.Unit)
	assert.Zero(t, fb.Weight())
}

func TestProbe(t *testing.T) {
	t.Parallel()

	s := newSteane(t)
	p, err := s.Probe(1)
	require.NoError(t, err)
	assert.False(t, p.Measured)
	assert.Equal(t, []int{1, 2, 5, 6}, p.Units)
	assert.Equal(t, pauli.ZCheck, p.Type)
	assert.Equal(t, "IZZIIZZ", p.Pattern)

	require.NoError(t, s.ApplyLabel(2, pauli.X))
	_, err = s.MeasureSyndrome()
	require.NoError(t, err)
	p, err = s.Probe(1)
	require.NoError(t, err)
	assert.True(t, p.Measured)
	assert.Equal(t, 1, p.Last)
}

func TestQuditSession(t *testing.T) {
	t.Parallel()

	spec, err := codes.QuditToric(5, 3)
	require.NoError(t, err)
	s, err := session.New(spec, session.WithFallbackDecoder())
	require.NoError(t, err)

	_, err = s.Labels()
	require.ErrorIs(t, err, session.ErrNotQubit)
	require.ErrorIs(t, s.ApplyLabel(0, pauli.X), session.ErrNotQubit)

	require.NoError(t, s.ApplyError(7, 3))
	require.NoError(t, s.ApplyError(7, 4))
	assert.Equal(t, 2, s.ErrorVector()[7])

	c, ok, err := s.Correct()
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, 7, c.Unit)
	assert.Equal(t, 2, c.Error)
	assert.Equal(t, 3, c.Symbol)
	assert.Zero(t, s.Weight())
}

func TestSessionLogs(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	s := newSteane(t, session.WithLogger(logger), session.WithID("log-test"))
	require.NoError(t, s.ApplyLabel(3, pauli.X))
	_, err := s.MeasureSyndrome()
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "error applied")
	assert.Contains(t, out, "syndrome measured")
	assert.Contains(t, out, "session_id=log-test")

	assert.Panics(t, func() { session.WithLogger(nil) })
	assert.Panics(t, func() { session.WithDecoder(nil) })
	assert.Panics(t, func() { session.WithID("") })
}

func ExampleSession_Correct() {
	spec, _ := codes.Steane()
	s, _ := session.New(spec)
	_ = s.ApplyLabel(4, pauli.Z)
	syn, _ := s.MeasureSyndrome()
	c, _, _ := s.Correct()
	fmt.Println(syn, c.Unit, pauli.Label(c.Symbol), s.ErrorString())
	// Output: 000101 4 Z IIIIIII
}
