// SPDX-License-Identifier: MIT
package codes_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/decodoku/code"
	"github.com/katalvlaran/decodoku/codes"
	"github.com/katalvlaran/decodoku/matrix"
	"github.com/katalvlaran/decodoku/pauli"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// requireCommuting checks that every X-type check overlaps every Z-type check
// on an even number of units.
func requireCommuting(t *testing.T, s *code.Spec) {
	t.Helper()

	var xs, zs [][]int
	for i := 0; i < s.Checks(); i++ {
		c, err := s.Check(i)
		require.NoError(t, err)
		switch c.Type {
		case pauli.XCheck:
			xs = append(xs, c.Weights)
		case pauli.ZCheck:
			zs = append(zs, c.Weights)
		}
	}
	require.NotEmpty(t, xs)
	require.NotEmpty(t, zs)
	hx, err := matrix.NewDenseFromRows(xs)
	require.NoError(t, err)
	hz, err := matrix.NewDenseFromRows(zs)
	require.NoError(t, err)
	hzT, err := matrix.Transpose(hz)
	require.NoError(t, err)
	p, err := matrix.MulMod(hx, hzT, 2)
	require.NoError(t, err)
	for i := 0; i < p.Rows(); i++ {
		for j := 0; j < p.Cols(); j++ {
			v, _ := p.At(i, j)
			require.Zero(t, v, "X check %d vs Z check %d", i, j)
		}
	}
}

func TestFamilyParameters(t *testing.T) {
	t.Parallel()

	steane, err := codes.Steane()
	require.NoError(t, err)
	rm8, err := codes.ReedMuller13()
	require.NoError(t, err)
	rm15, err := codes.QuantumReedMuller15()
	require.NoError(t, err)
	h74, err := codes.Hamming74()
	require.NoError(t, err)
	h15, err := codes.Hamming(4)
	require.NoError(t, err)
	idx, err := codes.IndexCode(3, 2)
	require.NoError(t, err)
	toric, err := codes.Toric(3)
	require.NoError(t, err)
	qtoric, err := codes.QuditToric(5, 3)
	require.NoError(t, err)

	cases := []struct {
		name                         string
		spec                         *code.Spec
		units, checks, k, dist, base int
		mode                         code.Mode
		indexed                      bool
	}{
		{"steane", steane, 7, 6, 1, 3, 2, code.ModeCommutation, true},
		{"rm8", rm8, 8, 4, 4, 4, 2, code.ModeModular, false},
		{"rm15", rm15, 15, 14, 1, 3, 2, code.ModeCommutation, true},
		{"hamming74", h74, 7, 3, 4, 3, 2, code.ModeModular, true},
		{"hamming15", h15, 15, 4, 11, 3, 2, code.ModeModular, true},
		{"index3", idx, 8, 2, 6, 2, 3, code.ModeModular, true},
		{"toric3", toric, 18, 16, 2, 3, 2, code.ModeCommutation, false},
		{"qudit-toric", qtoric, 18, 16, 2, 3, 5, code.ModeModular, false},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.units, tc.spec.Units())
			assert.Equal(t, tc.checks, tc.spec.Checks())
			assert.Equal(t, tc.k, tc.spec.Logical())
			assert.Equal(t, tc.dist, tc.spec.Distance())
			assert.Equal(t, tc.base, tc.spec.Base())
			assert.Equal(t, tc.mode, tc.spec.Mode())
			_, ok := tc.spec.IndexStructure()
			assert.Equal(t, tc.indexed, ok)
			assert.False(t, tc.spec.Demo())
		})
	}
}

func TestSharedSpecsAreBuiltOnce(t *testing.T) {
	t.Parallel()

	a, err := codes.Steane()
	require.NoError(t, err)
	b, err := codes.Steane()
	require.NoError(t, err)
	assert.Same(t, a, b)
}

func TestCSSFamiliesCommute(t *testing.T) {
	t.Parallel()

	steane, err := codes.Steane()
	require.NoError(t, err)
	requireCommuting(t, steane)

	rm15, err := codes.QuantumReedMuller15()
	require.NoError(t, err)
	requireCommuting(t, rm15)

	for _, l := range []int{2, 3, 4} {
		toric, err := codes.Toric(l)
		require.NoError(t, err)
		requireCommuting(t, toric)
	}
}

func TestSteaneChecks(t *testing.T) {
	t.Parallel()

	s, err := codes.Steane()
	require.NoError(t, err)
	want := []string{"IIIZZZZ", "IZZIIZZ", "ZIZIZIZ", "IIIXXXX", "IXXIIXX", "XIXIXIX"}
	for i, p := range want {
		c, err := s.Check(i)
		require.NoError(t, err)
		assert.Equal(t, p, c.Pattern)
	}
	assert.Equal(t, "Fano plane", s.Topology())
}

func TestQuantumReedMullerWeights(t *testing.T) {
	t.Parallel()

	s, err := codes.QuantumReedMuller15()
	require.NoError(t, err)
	for i := 0; i < s.Checks(); i++ {
		units, err := s.InvolvedUnits(i)
		require.NoError(t, err)
		ct, err := s.CheckType(i)
		require.NoError(t, err)
		switch {
		case ct == pauli.XCheck, i < 4:
			assert.Len(t, units, 8, "check %d", i)
		default:
			assert.Len(t, units, 4, "check %d", i)
		}
	}
}

func TestToricCheckWeights(t *testing.T) {
	t.Parallel()

	s, err := codes.QuditToric(7, 3)
	require.NoError(t, err)
	m := s.Matrix()
	for i := 0; i < m.Rows(); i++ {
		row, err := m.Row(i)
		require.NoError(t, err)
		plus, minus := 0, 0
		for _, v := range row {
			switch v {
			case 1:
				plus++
			case 6:
				minus++
			case 0:
			default:
				t.Fatalf("row %d has weight %d", i, v)
			}
		}
		assert.Equal(t, 2, plus, "row %d", i)
		assert.Equal(t, 2, minus, "row %d", i)
	}
}

func TestFamilyErrors(t *testing.T) {
	t.Parallel()

	_, err := codes.Hamming(1)
	require.ErrorIs(t, err, codes.ErrBadParameter)
	_, err = codes.Hamming(64)
	require.ErrorIs(t, err, codes.ErrBadParameter)
	_, err = codes.IndexCode(1, 3)
	require.ErrorIs(t, err, codes.ErrBadParameter)
	_, err = codes.IndexCode(10, 5)
	require.ErrorIs(t, err, codes.ErrBadParameter)
	_, err = codes.Toric(1)
	require.ErrorIs(t, err, codes.ErrBadParameter)
	_, err = codes.QuditToric(1, 3)
	require.ErrorIs(t, err, codes.ErrBadParameter)
	_, err = codes.QuditSurfaceDemo(3, 3, nil)
	require.ErrorIs(t, err, codes.ErrNeedRandSource)
	_, err = codes.QuditSurfaceDemo(3, 1, rand.New(rand.NewSource(1)))
	require.ErrorIs(t, err, codes.ErrBadParameter)
}

func TestQuditSurfaceDemo(t *testing.T) {
	t.Parallel()

	a, err := codes.QuditSurfaceDemo(5, 3, rand.New(rand.NewSource(42)))
	require.NoError(t, err)
	b, err := codes.QuditSurfaceDemo(5, 3, rand.New(rand.NewSource(42)))
	require.NoError(t, err)

	assert.True(t, a.Demo())
	assert.Equal(t, 18, a.Units())
	assert.Equal(t, 8, a.Checks())
	_, ok := a.IndexStructure()
	assert.False(t, ok)
	assert.Equal(t, a.Matrix().ToRows(), b.Matrix().ToRows(), "same seed, same checks")
}

func TestCatalog(t *testing.T) {
	t.Parallel()

	assert.Equal(t,
		[]string{"hamming", "index", "qudit-surface", "qudit-toric", "rm15", "rm8", "steane", "toric"},
		codes.Names())
	assert.Len(t, codes.Families(), len(codes.Names()))

	s, err := codes.Build("Toric", codes.Params{Size: 4})
	require.NoError(t, err)
	assert.Equal(t, 32, s.Units())

	s, err = codes.Build("hamming", codes.Params{})
	require.NoError(t, err)
	assert.Equal(t, 7, s.Units())

	_, err = codes.Build("qudit-surface", codes.Params{})
	require.ErrorIs(t, err, codes.ErrNeedRandSource)

	_, err = codes.Build("surface-17", codes.Params{})
	require.ErrorIs(t, err, codes.ErrUnknownCode)

	f, err := codes.Lookup("qudit-surface")
	require.NoError(t, err)
	assert.True(t, f.Random)
}
