// SPDX-License-Identifier: MIT

package geometry

import "errors"

var (
	// ErrShape indicates a spec whose unit count does not fit its declared topology.
	ErrShape = errors.New("geometry: unit count does not match topology")

	// ErrTopology indicates a lattice operation on a spec without that lattice.
	ErrTopology = errors.New("geometry: spec has no such lattice")
)
