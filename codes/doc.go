// Package codes is the catalog of concrete code families.
//
// Every family is a *code.Spec value built from derived checks:
//
//   - Hamming(r), IndexCode(d, r): index-structured matrices in modular mode.
//   - Steane, QuantumReedMuller15: CSS pattern codes in commutation mode,
//     index structured per check type.
//   - ReedMuller13: the self-dual RM(1,3) [8,4,4] matrix, lookup decoded.
//   - Toric(L), QuditToric(d, L): star and plaquette checks from lattice.Torus.
//   - QuditSurfaceDemo: random placeholder checks, marked Demo.
//
// Fixed families are built once per process and shared; specs are immutable.
// Build resolves a family by name for the CLI.
package codes
