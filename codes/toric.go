// SPDX-License-Identifier: MIT

package codes

import (
	"fmt"

	"github.com/katalvlaran/decodoku/code"
	"github.com/katalvlaran/decodoku/geometry"
	"github.com/katalvlaran/decodoku/lattice"
	"github.com/katalvlaran/decodoku/matrix"
	"github.com/katalvlaran/decodoku/pauli"
)

// toricChecks returns the L²−1 independent plaquettes followed by the L²−1
// independent stars of the torus. The last face and the last vertex are the
// products of the others and are left out.
func toricChecks(t *lattice.Torus) (plaquettes, stars [][]int) {
	for v := 0; v < t.Vertices()-1; v++ {
		x, y := t.Coordinate(v)
		plaquettes = append(plaquettes, t.Plaquette(x, y))
		stars = append(stars, t.Star(x, y))
	}

	return plaquettes, stars
}

// weightRow places signs on the given edges of a 2L²-wide row, mod d.
func weightRow(n int, edges, signs []int, d int) []int {
	row := make([]int, n)
	for i, e := range edges {
		row[e] = matrix.Mod(row[e]+signs[i], d)
	}

	return row
}

// Toric returns the qubit toric code on an L×L torus: 2L² edge units,
// L²−1 plaquette (Z-type) checks then L²−1 star (X-type) checks.
// Parameters [[2L², 2, L]]. Requires L >= 2.
func Toric(l int) (*code.Spec, error) {
	t, err := lattice.NewTorus(l)
	if err != nil {
		return nil, fmt.Errorf("Toric(%d): %v: %w", l, err, ErrBadParameter)
	}
	n := t.Edges()
	plaq, stars := toricChecks(t)
	ones := []int{1, 1, 1, 1}
	zRows := make([][]int, len(plaq))
	for i, p := range plaq {
		zRows[i] = weightRow(n, p, ones, 2)
	}
	xRows := make([][]int, len(stars))
	for i, s := range stars {
		xRows[i] = weightRow(n, s, ones, 2)
	}

	return code.NewFromPatterns(
		append(cssPatterns(zRows, pauli.ZCheck), cssPatterns(xRows, pauli.XCheck)...),
		code.WithName(fmt.Sprintf("Toric %dx%d", l, l)),
		code.WithTopology(geometry.TopologyToric),
		code.WithUnits(n),
		code.WithLogical(2),
		code.WithDistance(l),
		code.WithCommutationCheck(),
	)
}

// QuditToric returns the Z_d toric code on an L×L torus in modular mode.
// Rows are the oriented plaquettes then the oriented stars; a -1 weight is
// stored as d−1. Requires d >= 2 and L >= 2.
func QuditToric(d, l int) (*code.Spec, error) {
	if d < 2 {
		return nil, fmt.Errorf("QuditToric(%d,%d): %w", d, l, ErrBadParameter)
	}
	t, err := lattice.NewTorus(l)
	if err != nil {
		return nil, fmt.Errorf("QuditToric(%d,%d): %v: %w", d, l, err, ErrBadParameter)
	}
	n := t.Edges()
	plaq, stars := toricChecks(t)
	rows := make([][]int, 0, len(plaq)+len(stars))
	for _, p := range plaq {
		rows = append(rows, weightRow(n, p, lattice.PlaquetteSigns(), d))
	}
	for _, s := range stars {
		rows = append(rows, weightRow(n, s, lattice.StarSigns(), d))
	}

	return code.NewFromMatrix(rows, d,
		code.WithName(fmt.Sprintf("Qudit toric %dx%d (d=%d)", l, l, d)),
		code.WithTopology(geometry.TopologyToric),
		code.WithUnits(n),
		code.WithLogical(2),
		code.WithDistance(l),
	)
}
