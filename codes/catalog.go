// SPDX-License-Identifier: MIT

package codes

import (
	"fmt"
	"math/rand"
	"sort"
	"strings"

	"github.com/katalvlaran/decodoku/code"
)

// Params carries the optional knobs of a catalog build. Zero values select
// the family default.
type Params struct {
	Size int        // Hamming/index rows r, or toric side L
	Base int        // qudit base d
	Rand *rand.Rand // required by randomized families
}

// Family describes one catalog entry.
type Family struct {
	Name    string
	Summary string
	Sized   bool // Params.Size is meaningful
	Based   bool // Params.Base is meaningful
	Random  bool // Params.Rand is required
	build   func(Params) (*code.Spec, error)
}

// Family defaults.
const (
	DefaultHammingRows = 3
	DefaultIndexRows   = 2
	DefaultToricSide   = 3
	DefaultQuditBase   = 3
)

func orDefault(v, def int) int {
	if v == 0 {
		return def
	}

	return v
}

var families = map[string]Family{
	"hamming": {
		Name: "hamming", Summary: "binary Hamming code, r check rows", Sized: true,
		build: func(p Params) (*code.Spec, error) { return Hamming(orDefault(p.Size, DefaultHammingRows)) },
	},
	"index": {
		Name: "index", Summary: "base-d index code, r check rows", Sized: true, Based: true,
		build: func(p Params) (*code.Spec, error) {
			return IndexCode(orDefault(p.Base, DefaultQuditBase), orDefault(p.Size, DefaultIndexRows))
		},
	},
	"steane": {
		Name: "steane", Summary: "Steane [[7,1,3]] on the Fano plane",
		build: func(Params) (*code.Spec, error) { return Steane() },
	},
	"rm8": {
		Name: "rm8", Summary: "classical Reed-Muller RM(1,3) [8,4,4]",
		build: func(Params) (*code.Spec, error) { return ReedMuller13() },
	},
	"rm15": {
		Name: "rm15", Summary: "quantum Reed-Muller [[15,1,3]] on the tetrahedron",
		build: func(Params) (*code.Spec, error) { return QuantumReedMuller15() },
	},
	"toric": {
		Name: "toric", Summary: "qubit toric code on an LxL torus", Sized: true,
		build: func(p Params) (*code.Spec, error) { return Toric(orDefault(p.Size, DefaultToricSide)) },
	},
	"qudit-toric": {
		Name: "qudit-toric", Summary: "Z_d toric code on an LxL torus", Sized: true, Based: true,
		build: func(p Params) (*code.Spec, error) {
			return QuditToric(orDefault(p.Base, DefaultQuditBase), orDefault(p.Size, DefaultToricSide))
		},
	},
	"qudit-surface": {
		Name: "qudit-surface", Summary: "random qudit checks (demo only)", Sized: true, Based: true, Random: true,
		build: func(p Params) (*code.Spec, error) {
			return QuditSurfaceDemo(orDefault(p.Base, DefaultQuditBase), orDefault(p.Size, DefaultToricSide), p.Rand)
		},
	},
}

// Names lists the catalog in ascending order.
func Names() []string {
	out := make([]string, 0, len(families))
	for name := range families {
		out = append(out, name)
	}
	sort.Strings(out)

	return out
}

// Families lists every catalog entry ordered by name.
func Families() []Family {
	names := Names()
	out := make([]Family, len(names))
	for i, n := range names {
		out[i] = families[n]
	}

	return out
}

// Lookup returns the catalog entry for name (case-insensitive).
func Lookup(name string) (Family, error) {
	f, ok := families[strings.ToLower(name)]
	if !ok {
		return Family{}, fmt.Errorf("Lookup(%q): %w", name, ErrUnknownCode)
	}

	return f, nil
}

// Build constructs the named family with p.
func Build(name string, p Params) (*code.Spec, error) {
	f, err := Lookup(name)
	if err != nil {
		return nil, err
	}

	return f.build(p)
}
