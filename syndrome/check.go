// SPDX-License-Identifier: MIT

package syndrome

import "github.com/katalvlaran/decodoku/pauli"

// Check is a stabilizer check together with the value it returned on the
// last measurement. The cached value is for display only.
type Check struct {
	Index    int
	Type     pauli.CheckType
	Pattern  string
	Weights  []int
	Support  []int
	last     int
	measured bool
}

// Last returns the most recent outcome and whether the check was measured.
func (c Check) Last() (int, bool) {
	return c.last, c.measured
}

// clone copies the slices so callers cannot reach engine state.
func (c Check) clone() Check {
	c.Weights = append([]int(nil), c.Weights...)
	c.Support = append([]int(nil), c.Support...)

	return c
}
