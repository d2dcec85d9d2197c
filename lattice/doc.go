// Package lattice models the periodic square lattice that toric codes live on.
//
// What:
//
//   - Torus: an L×L grid with wrap-around, vertex and edge indexing.
//   - Star / Plaquette: the four edges around a vertex or a face, with the
//     orientation signs used for Z_d weights.
//   - Clusters / Boundary: error chains and their end points.
//
// Indexing:
//
//   - vertex (x,y)      → y*L + x
//   - horizontal h(x,y) → y*L + x
//   - vertical   v(x,y) → L² + y*L + x
//
// Errors:
//
//   - ErrTooSmall: L < 2.
//   - ErrEdgeIndex / ErrVertexIndex: index outside the lattice.
package lattice
