// SPDX-License-Identifier: MIT
package geometry_test

import (
	"testing"

	"github.com/katalvlaran/decodoku/code"
	"github.com/katalvlaran/decodoku/codes"
	"github.com/katalvlaran/decodoku/geometry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFanoLines(t *testing.T) {
	t.Parallel()

	lines := geometry.FanoLines()
	require.Len(t, lines, 7)
	pairs := make(map[[2]int]int)
	for _, l := range lines {
		require.Len(t, l, 3)
		assert.Zero(t, (l[0]+1)^(l[1]+1)^(l[2]+1), "line %v", l)
		for i := 0; i < 3; i++ {
			for j := i + 1; j < 3; j++ {
				pairs[[2]int{l[i], l[j]}]++
			}
		}
	}
	// Any two points lie on exactly one line.
	assert.Len(t, pairs, 21)
	for p, n := range pairs {
		assert.Equal(t, 1, n, "pair %v", p)
	}
}

func TestLabelsPerFamily(t *testing.T) {
	t.Parallel()

	steane, err := codes.Steane()
	require.NoError(t, err)
	l, err := geometry.Labels(steane)
	require.NoError(t, err)
	assert.Equal(t, "P5 (101)", l[4])

	rm15, err := codes.QuantumReedMuller15()
	require.NoError(t, err)
	l, err = geometry.Labels(rm15)
	require.NoError(t, err)
	assert.Equal(t, "Vertex 0", l[0])
	assert.Equal(t, "Edge 0-1", l[2])
	assert.Equal(t, "Face 0-1-2", l[6])
	assert.Equal(t, "Interior", l[14])

	rm8, err := codes.ReedMuller13()
	require.NoError(t, err)
	l, err = geometry.Labels(rm8)
	require.NoError(t, err)
	assert.Equal(t, "(1,1,0)", l[3])

	toric, err := codes.Toric(3)
	require.NoError(t, err)
	l, err = geometry.Labels(toric)
	require.NoError(t, err)
	assert.Len(t, l, 18)
	assert.Equal(t, "v(0,0)", l[9])

	h, err := codes.Hamming(4)
	require.NoError(t, err)
	l, err = geometry.Labels(h)
	require.NoError(t, err)
	assert.Equal(t, "u14", l[14])
}

func TestLabelsShapeMismatch(t *testing.T) {
	t.Parallel()

	s, err := code.NewFromMatrix([][]int{{1, 1, 1}}, 2, code.WithTopology(geometry.TopologyFano))
	require.NoError(t, err)
	_, err = geometry.Labels(s)
	require.ErrorIs(t, err, geometry.ErrShape)

	s, err = code.NewFromMatrix([][]int{{1, 1, 1}}, 2, code.WithTopology(geometry.TopologyToric))
	require.NoError(t, err)
	_, err = geometry.Describe(s)
	require.ErrorIs(t, err, geometry.ErrShape)
}

func TestDescribe(t *testing.T) {
	t.Parallel()

	steane, err := codes.Steane()
	require.NoError(t, err)
	out, err := geometry.Describe(steane)
	require.NoError(t, err)
	assert.Contains(t, out, "Fano plane: [[7,1,3]] base 2")
	assert.Contains(t, out, "L0  [0 1 2]")
}

func TestToricChains(t *testing.T) {
	t.Parallel()

	toric, err := codes.Toric(3)
	require.NoError(t, err)
	// h(0,0) and h(1,0) form one chain; v(1,1) stands alone.
	ch, err := geometry.ToricChains(toric, []int{13, 1, 0})
	require.NoError(t, err)
	assert.Equal(t, [][]int{{0, 1}, {13}}, ch.Chains)
	assert.Equal(t, []string{"(0,0)", "(2,0)", "(1,1)", "(1,2)"}, ch.Defects)

	// a closed loop around one plaquette has no end vertices
	loop, err := geometry.ToricChains(toric, []int{0, 3, 9, 10})
	require.NoError(t, err)
	assert.Len(t, loop.Chains, 1)
	assert.Empty(t, loop.Defects)

	_, err = geometry.ToricChains(toric, []int{18})
	require.Error(t, err)

	steane, err := codes.Steane()
	require.NoError(t, err)
	_, err = geometry.ToricChains(steane, []int{0})
	require.ErrorIs(t, err, geometry.ErrTopology)
}
