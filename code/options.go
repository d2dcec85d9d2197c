// SPDX-License-Identifier: MIT
// Package: decodoku/code
//
// options.go - functional options for Spec constructors.
//
// Contract:
//   • Options are functional (type Option func(*specConfig)).
//   • Option constructors PANIC on meaningless inputs (programmer error).
//     Constructors themselves never panic; they return ErrInvalidSpec.
//   • Later options override earlier ones.

package code

// Option customizes a Spec under construction.
type Option func(*specConfig)

// specConfig aggregates every knob a constructor reads.
type specConfig struct {
	name         string
	topology     string
	logical      int
	distance     int
	units        int // 0 means "take it from the check width"
	indexed      bool
	order        DigitOrder
	demo         bool
	commutations bool
}

// Deterministic defaults.
const (
	defaultName     = "custom"
	defaultTopology = "unspecified"
)

func newSpecConfig(opts ...Option) specConfig {
	cfg := specConfig{
		name:     defaultName,
		topology: defaultTopology,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// WithName sets the human-readable code name ("Steane [[7,1,3]]").
func WithName(name string) Option {
	return func(c *specConfig) { c.name = name }
}

// WithTopology describes the geometric support ("Fano plane", "Toroidal grid").
func WithTopology(t string) Option {
	return func(c *specConfig) { c.topology = t }
}

// WithLogical declares the number of encoded logical units K. Panics on k < 0.
func WithLogical(k int) Option {
	if k < 0 {
		panic("code: WithLogical: k must be >= 0")
	}
	return func(c *specConfig) { c.logical = k }
}

// WithDistance declares the minimum distance. Panics on d < 1.
func WithDistance(d int) Option {
	if d < 1 {
		panic("code: WithDistance: distance must be >= 1")
	}
	return func(c *specConfig) { c.distance = d }
}

// WithUnits declares the physical unit count N. Construction fails with
// ErrInvalidSpec when the checks are not exactly N wide. Panics on n < 1.
func WithUnits(n int) Option {
	if n < 1 {
		panic("code: WithUnits: n must be >= 1")
	}
	return func(c *specConfig) { c.units = n }
}

// WithIndexStructure marks the spec as having the binary/base-d index
// structure in the given digit order. The constructor verifies the claim.
func WithIndexStructure(order DigitOrder) Option {
	if order != MostSignificantFirst && order != LeastSignificantFirst {
		panic("code: WithIndexStructure: unknown digit order")
	}
	return func(c *specConfig) {
		c.indexed = true
		c.order = order
	}
}

// WithDemo marks a spec whose checks are placeholder data rather than a
// derived parity-check structure. Demo specs are never index structured.
func WithDemo() Option {
	return func(c *specConfig) { c.demo = true }
}

// WithCommutationCheck makes NewFromPatterns verify that every X-type check
// overlaps every Z-type check on an even number of units.
func WithCommutationCheck() Option {
	return func(c *specConfig) { c.commutations = true }
}
