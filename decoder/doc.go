// Package decoder maps a syndrome back to a single-location correction.
//
// Two strategies share the Decoder interface:
//
//   - Structural: reads the leading rows of each check block as the base-d
//     digits of the faulty unit's 1-based index. Only valid for specs built
//     with a verified index structure (Hamming, Steane, index codes, the
//     [[15,1,3]] Reed-Muller code); NewStructural refuses anything else.
//   - Lookup: enumerates every single-location error and inverts the table.
//     Syndromes shared by several errors are reported as ambiguous.
//
// For picks the structural decoder when it applies. Neither strategy
// corrects more than one faulty unit.
package decoder
