// SPDX-License-Identifier: MIT

package game

import (
	"fmt"
	"io"
	"log/slog"
	"math/rand"
	"time"
)

// Recorder receives round outcomes; internal/telemetry implements it.
type Recorder interface {
	RoundFinished(code string, correct bool, fired int)
	DecodeFailed(code string)
}

type nopRecorder struct{}

func (nopRecorder) RoundFinished(string, bool, int) {}
func (nopRecorder) DecodeFailed(string)             {}

// Option customizes a Game under construction.
type Option func(*config)

type config struct {
	rng      *rand.Rand
	logger   *slog.Logger
	recorder Recorder
	clock    func() time.Time
	errors   int
}

func newConfig(opts ...Option) config {
	cfg := config{
		logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
		recorder: nopRecorder{},
		clock:    time.Now,
		errors:   1,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// WithRand injects the RNG that picks error locations. Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("game: WithRand(nil)")
	}
	return func(c *config) { c.rng = r }
}

// WithSeed creates a deterministic RNG from seed.
func WithSeed(seed int64) Option {
	return func(c *config) { c.rng = rand.New(rand.NewSource(seed)) }
}

// WithErrors hides k errors on distinct units per round. Panics on k < 1.
func WithErrors(k int) Option {
	if k < 1 {
		panic(fmt.Sprintf("game: WithErrors(%d)", k))
	}
	return func(c *config) { c.errors = k }
}

// WithLogger routes round events to l. Panics on nil.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic("game: WithLogger(nil)")
	}
	return func(c *config) { c.logger = l }
}

// WithRecorder sends round outcomes to r. Panics on nil.
func WithRecorder(r Recorder) Option {
	if r == nil {
		panic("game: WithRecorder(nil)")
	}
	return func(c *config) { c.recorder = r }
}

// WithClock replaces time.Now for round timestamps. Panics on nil.
func WithClock(now func() time.Time) Option {
	if now == nil {
		panic("game: WithClock(nil)")
	}
	return func(c *config) { c.clock = now }
}
