// Package geometry attaches human labels to the physical units of a code:
// Fano points for Steane, tetrahedron elements for the 15-unit Reed-Muller
// code, cube points for RM(1,3) and lattice edges for toric codes.
// It is a view layer and never touches error state.
package geometry
