// SPDX-License-Identifier: MIT
// Package: decodoku/game
//
// game.go - the error guessing loop.
//
// Round lifecycle:
//   • Start resets the register, draws k distinct units (WithErrors, default
//     1) and an error symbol for each from the injected RNG, applies them
//     and measures the syndrome.
//   • Hint exposes the fired checks, the decimal value of an index-structured
//     syndrome and the decoder's suggestion.
//   • GuessSet closes the round, updates the score and notifies the Recorder.
//
// Scoring:
//   • A guess of k units is correct when it equals the hidden unit set, or
//     when some errors on exactly the guessed units reproduce the round's
//     syndrome. The second check enumerates at most maxAssignments symbol
//     assignments; larger guesses are scored by set equality alone.

package game

import (
	"fmt"
	"log/slog"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/katalvlaran/decodoku/code"
	"github.com/katalvlaran/decodoku/decoder"
	"github.com/katalvlaran/decodoku/pauli"
	"github.com/katalvlaran/decodoku/session"
	"github.com/katalvlaran/decodoku/syndrome"
)

// maxAssignments bounds the symbol assignments tried per guess.
const maxAssignments = 1 << 12

// Round is one puzzle: hidden errors and their syndrome.
type Round struct {
	ID        string
	Number    int
	Code      string
	Unit      int // Units[0]
	Error     int // Errors[0]
	Units     []int
	Errors    []int // Errors[i] sits on Units[i]
	Syndrome  syndrome.Syndrome
	StartedAt time.Time
}

// Hint is what a player may ask for during a round.
type Hint struct {
	Fired         []int
	Value         int  // decimal value of the first fired index block
	HasValue      bool // the spec carries the index structure
	Suggested     int  // decoder's unit
	HasSuggestion bool
}

// Result closes a round.
type Result struct {
	Round    Round
	Guess    int   // Guesses[0]
	Guesses  []int // sorted
	Correct  bool
	Decoded  decoder.Correction
	Decodes  bool // the decoder resolved the syndrome
	Solution string
	Duration time.Duration
}

// Score aggregates finished rounds.
type Score struct {
	Rounds  int
	Correct int
}

// Accuracy is Correct/Rounds, 0 before the first round.
func (s Score) Accuracy() float64 {
	if s.Rounds == 0 {
		return 0
	}

	return float64(s.Correct) / float64(s.Rounds)
}

// Game runs rounds on one session.
type Game struct {
	sess    *session.Session
	engine  *syndrome.Engine // scores guesses on a scratch register
	alg     pauli.Algebra
	cfg     config
	log     *slog.Logger
	symbols []int
	score   Score
	round   *Round
	open    bool
}

// New prepares a game on spec. An RNG must be supplied with WithRand or
// WithSeed. Specs without the index structure get suggestions from the
// single-location lookup decoder.
func New(spec *code.Spec, opts ...Option) (*Game, error) {
	cfg := newConfig(opts...)
	if cfg.rng == nil {
		return nil, fmt.Errorf("New: %w", ErrNeedRandSource)
	}
	sess, err := session.New(spec, session.WithLogger(cfg.logger), session.WithFallbackDecoder())
	if err != nil {
		return nil, fmt.Errorf("New: %w", err)
	}
	if cfg.errors > spec.Units() {
		return nil, fmt.Errorf("New: %d errors on %d units: %w", cfg.errors, spec.Units(), ErrTooManyErrors)
	}
	engine, err := syndrome.NewEngine(spec)
	if err != nil {
		return nil, fmt.Errorf("New: %w", err)
	}

	return &Game{
		sess:    sess,
		engine:  engine,
		alg:     sess.Algebra(),
		cfg:     cfg,
		log:     cfg.logger.With(slog.String("code", spec.Name())),
		symbols: errorSymbols(spec),
	}, nil
}

// errorSymbols lists the symbols a round may inject. Modular qubit codes see
// only bit flips, so X alone is drawn for them.
func errorSymbols(spec *code.Spec) []int {
	if spec.Base() == 2 {
		if spec.Mode() == code.ModeModular {
			return []int{1}
		}
		return []int{1, 2, 3}
	}
	out := make([]int, 0, spec.Base()-1)
	for s := 1; s < spec.Base(); s++ {
		out = append(out, s)
	}

	return out
}

// Session exposes the underlying register.
func (g *Game) Session() *session.Session { return g.sess }

// Score returns the running totals.
func (g *Game) Score() Score { return g.score }

// Start begins a new round, abandoning any open one.
func (g *Game) Start() (Round, error) {
	g.sess.Reset()
	n := g.sess.Spec().Units()
	placed := make(map[int]int, g.cfg.errors)
	for len(placed) < g.cfg.errors {
		unit := g.cfg.rng.Intn(n)
		if _, taken := placed[unit]; taken {
			continue
		}
		placed[unit] = g.symbols[g.cfg.rng.Intn(len(g.symbols))]
	}
	r := Round{
		ID:        uuid.NewString(),
		Number:    g.score.Rounds + 1,
		Code:      g.sess.Spec().Name(),
		Units:     make([]int, 0, len(placed)),
		Errors:    make([]int, 0, len(placed)),
		StartedAt: g.cfg.clock(),
	}
	for unit := range placed {
		r.Units = append(r.Units, unit)
	}
	sort.Ints(r.Units)
	for _, unit := range r.Units {
		sym := placed[unit]
		if err := g.sess.ApplyError(unit, sym); err != nil {
			return Round{}, fmt.Errorf("Start: %w", err)
		}
		r.Errors = append(r.Errors, sym)
	}
	r.Unit, r.Error = r.Units[0], r.Errors[0]
	syn, err := g.sess.MeasureSyndrome()
	if err != nil {
		return Round{}, fmt.Errorf("Start: %w", err)
	}
	r.Syndrome = syn
	g.round, g.open = &r, true
	g.log.Info("round started",
		slog.String("round_id", r.ID),
		slog.Int("round", r.Number),
		slog.Int("errors", len(r.Units)),
	)

	return r, nil
}

// Hint describes the current syndrome.
func (g *Game) Hint() (Hint, error) {
	if g.round == nil {
		return Hint{}, fmt.Errorf("Hint: %w", ErrNoRound)
	}
	spec := g.sess.Spec()
	syn := g.round.Syndrome
	h := Hint{Fired: syn.Fired()}
	if order, ok := spec.IndexStructure(); ok {
		h.HasValue = true
		r := code.DigitsFor(spec.Units(), spec.Base())
		for _, b := range spec.Blocks() {
			if v := syn.Value(b.Checks[:r], spec.Base(), order); v != 0 {
				h.Value = v
				break
			}
		}
	}
	if c, ok, err := g.sess.Decode(syn); err == nil && ok {
		h.Suggested, h.HasSuggestion = c.Unit, true
	}

	return h, nil
}

// Guess closes a single-error round with the player's unit.
func (g *Game) Guess(unit int) (Result, error) {
	return g.GuessSet([]int{unit})
}

// GuessSet closes the round with the player's set of units. The order of
// units is irrelevant; a repeated unit fails with ErrDuplicateGuess.
func (g *Game) GuessSet(units []int) (Result, error) {
	if g.round == nil {
		return Result{}, fmt.Errorf("GuessSet: %w", ErrNoRound)
	}
	if !g.open {
		return Result{}, fmt.Errorf("GuessSet: %w", ErrRoundOver)
	}
	if len(units) == 0 {
		return Result{}, fmt.Errorf("GuessSet: %w", ErrEmptyGuess)
	}
	spec := g.sess.Spec()
	guesses := append([]int(nil), units...)
	sort.Ints(guesses)
	for i, u := range guesses {
		if u < 0 || u >= spec.Units() {
			return Result{}, fmt.Errorf("GuessSet(%d): %w", u, session.ErrIndexOutOfRange)
		}
		if i > 0 && guesses[i-1] == u {
			return Result{}, fmt.Errorf("GuessSet(%d): %w", u, ErrDuplicateGuess)
		}
	}

	correct, err := g.solves(guesses)
	if err != nil {
		return Result{}, fmt.Errorf("GuessSet: %w", err)
	}
	res := Result{
		Round:    *g.round,
		Guess:    guesses[0],
		Guesses:  guesses,
		Correct:  correct,
		Solution: g.sess.ErrorString(),
		Duration: g.cfg.clock().Sub(g.round.StartedAt),
	}
	c, ok, err := g.sess.Decode(g.round.Syndrome)
	switch {
	case err != nil:
		g.cfg.recorder.DecodeFailed(spec.Name())
	case ok:
		res.Decoded, res.Decodes = c, true
	}

	g.open = false
	g.score.Rounds++
	if res.Correct {
		g.score.Correct++
	}
	g.cfg.recorder.RoundFinished(spec.Name(), res.Correct, len(res.Round.Syndrome.Fired()))
	g.log.Info("round finished",
		slog.String("round_id", res.Round.ID),
		slog.Any("guess", guesses),
		slog.Any("units", res.Round.Units),
		slog.Bool("correct", res.Correct),
		slog.Float64("accuracy", g.score.Accuracy()),
	)

	return res, nil
}

// solves reports whether sorted, distinct guesses solve the open round.
func (g *Game) solves(guesses []int) (bool, error) {
	want := g.round.Units
	if len(guesses) != len(want) {
		return false, nil
	}
	same := true
	for i := range want {
		if guesses[i] != want[i] {
			same = false
			break
		}
	}
	if same {
		return true, nil
	}

	return g.equivalent(guesses)
}

// equivalent reports whether some non-identity symbols on exactly the
// guessed units reproduce the round's syndrome.
func (g *Game) equivalent(guesses []int) (bool, error) {
	total := 1
	for range guesses {
		total *= len(g.symbols)
		if total > maxAssignments {
			return false, nil
		}
	}
	scratch := make([]int, g.sess.Spec().Units())
	pick := make([]int, len(guesses)) // pick[i] indexes g.symbols
	for {
		for i, u := range guesses {
			scratch[u] = g.symbols[pick[i]]
		}
		syn, err := g.engine.Measure(scratch, g.alg)
		if err != nil {
			return false, err
		}
		if syn.Equal(g.round.Syndrome) {
			return true, nil
		}
		// advance pick like an odometer
		i := 0
		for ; i < len(pick); i++ {
			pick[i]++
			if pick[i] < len(g.symbols) {
				break
			}
			pick[i] = 0
		}
		if i == len(pick) {
			return false, nil
		}
	}
}
