// SPDX-License-Identifier: MIT

package session

import (
	"io"
	"log/slog"

	"github.com/katalvlaran/decodoku/decoder"
)

// Option customizes a Session under construction.
type Option func(*config)

type config struct {
	logger   *slog.Logger
	decoder  decoder.Decoder
	fallback bool
	id       string
}

func newConfig(opts ...Option) config {
	cfg := config{logger: slog.New(slog.NewTextHandler(io.Discard, nil))}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// WithLogger routes session events to l. Panics on nil.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic("session: WithLogger(nil)")
	}
	return func(c *config) { c.logger = l }
}

// WithDecoder replaces the default structural decoder. Panics on nil.
func WithDecoder(d decoder.Decoder) Option {
	if d == nil {
		panic("session: WithDecoder(nil)")
	}
	return func(c *config) { c.decoder = d }
}

// WithFallbackDecoder lets specs without the index structure decode through
// the single-location lookup table (decoder.For) instead of failing with
// decoder.ErrUnsupportedStructure.
func WithFallbackDecoder() Option {
	return func(c *config) { c.fallback = true }
}

// WithID fixes the session identifier instead of generating a UUID.
// Panics on an empty id.
func WithID(id string) Option {
	if id == "" {
		panic("session: WithID(\"\")")
	}
	return func(c *config) { c.id = id }
}
