// SPDX-License-Identifier: MIT

package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"
	"unicode"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/decodoku/game"
	"github.com/katalvlaran/decodoku/geometry"
	"github.com/katalvlaran/decodoku/internal/telemetry"
	"github.com/katalvlaran/decodoku/store"
)

func (a *app) playCmd() *cobra.Command {
	var auto bool
	cmd := &cobra.Command{
		Use:   "play",
		Short: "Guess which units carry the hidden errors",
		Long: `Play hides --errors errors (default 1) on distinct units per round and
shows their syndrome. Answer with the unit indices ("3" or "3 5"), "h" for
a hint or "q" to stop. A guess also counts when errors on the guessed
units would produce the same syndrome.

With --db every finished round is stored; with --metrics-addr the game
counters are served on /metrics for the duration of the game.

Examples:
  decodoku play --code steane --rounds 3
  decodoku play --code toric --size 4 --auto --db rounds.db
  decodoku play --code rm15 --errors 2`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, cancel := context.WithCancel(cmd.Context())
			defer cancel()

			spec, err := a.spec()
			if err != nil {
				return err
			}
			reg := prometheus.NewRegistry()
			metrics := telemetry.New(reg)
			if a.cfg.MetricsAddr != "" {
				go func() {
					if err := telemetry.Serve(ctx, a.cfg.MetricsAddr, reg); err != nil {
						a.log.Error("metrics server", slog.Any("error", err))
					}
				}()
			}
			var st *store.Store
			if a.cfg.DBPath != "" {
				if st, err = store.Open(ctx, a.cfg.DBPath); err != nil {
					return err
				}
				defer st.Close()
			}

			g, err := game.New(spec,
				game.WithRand(a.rng()),
				game.WithLogger(a.log),
				game.WithRecorder(metrics),
				game.WithErrors(a.cfg.Errors),
			)
			if err != nil {
				return err
			}
			p := &player{
				out:  cmd.OutOrStdout(),
				in:   bufio.NewScanner(cmd.InOrStdin()),
				game: g,
				auto: auto,
			}
			fmt.Fprintf(p.out, "%s: %d units, %d checks\n", spec, spec.Units(), spec.Checks())
			for i := 0; i < a.cfg.Rounds; i++ {
				res, done, err := p.round()
				if err != nil {
					return err
				}
				if done {
					fmt.Fprintln(p.out, "stopped")
					break
				}
				if st != nil {
					if err := st.RecordRound(ctx, toRecord(res)); err != nil {
						return err
					}
				}
			}
			sc := g.Score()
			fmt.Fprintf(p.out, "score %d/%d (%.1f%%)\n", sc.Correct, sc.Rounds, 100*sc.Accuracy())
			return nil
		},
	}
	cmd.Flags().BoolVar(&auto, "auto", false, "let the decoder answer every round")

	return cmd
}

// player drives one game from a line-oriented reader.
type player struct {
	out  io.Writer
	in   *bufio.Scanner
	game *game.Game
	auto bool
}

// round plays one round. done reports that the player quit or input ended.
func (p *player) round() (res game.Result, done bool, err error) {
	r, err := p.game.Start()
	if err != nil {
		return game.Result{}, false, err
	}
	spec := p.game.Session().Spec()
	labels, err := geometry.Labels(spec)
	if err != nil {
		return game.Result{}, false, err
	}
	fmt.Fprintf(p.out, "round %d  syndrome %s\n", r.Number, renderSyndrome(r.Syndrome, spec.Base()))

	for {
		guesses, ok, quit, err := p.answer()
		if err != nil {
			return game.Result{}, false, err
		}
		if quit {
			return game.Result{}, true, nil
		}
		if !ok {
			continue
		}
		res, err = p.game.GuessSet(guesses)
		if err != nil {
			fmt.Fprintf(p.out, "  %v\n", err)
			continue
		}
		alg := p.game.Session().Algebra()
		hidden := make([]int, spec.Units())
		placed := make([]string, len(r.Units))
		for i, u := range r.Units {
			hidden[u] = r.Errors[i]
			placed[i] = fmt.Sprintf("%s on unit %d %s", alg.Format(r.Errors[i]), u, labels[u])
		}
		fmt.Fprintf(p.out, "  %s: %s  %s\n",
			verdict(res.Correct), strings.Join(placed, ", "), renderRegister(alg, hidden, nil))
		return res, false, nil
	}
}

// answer reads one player line. ok is false when the line was consumed
// without a guess.
func (p *player) answer() (guesses []int, ok, quit bool, err error) {
	if p.auto {
		h, err := p.game.Hint()
		if err != nil {
			return nil, false, false, err
		}
		// without a suggestion the decoder answers unit 0
		return []int{h.Suggested}, true, false, nil
	}

	fmt.Fprint(p.out, "guess> ")
	if !p.in.Scan() {
		return nil, false, true, p.in.Err()
	}
	line := strings.ToLower(strings.TrimSpace(p.in.Text()))
	switch line {
	case "q", "quit":
		return nil, false, true, nil
	case "h", "hint":
		h, err := p.game.Hint()
		if err != nil {
			return nil, false, false, err
		}
		fmt.Fprintf(p.out, "  fired checks %v", h.Fired)
		if h.HasValue {
			fmt.Fprintf(p.out, ", index value %d", h.Value)
		}
		fmt.Fprintln(p.out)
		return nil, false, false, nil
	}
	fields := strings.FieldsFunc(line, func(r rune) bool { return r == ',' || unicode.IsSpace(r) })
	for _, f := range fields {
		n, err := strconv.Atoi(f)
		if err != nil {
			guesses = nil
			break
		}
		guesses = append(guesses, n)
	}
	if len(guesses) == 0 {
		fmt.Fprintln(p.out, `  enter unit indices, "h" or "q"`)
		return nil, false, false, nil
	}

	return guesses, true, false, nil
}

// toRecord flattens a finished round for the history store.
func toRecord(res game.Result) store.Round {
	return store.Round{
		ID:        res.Round.ID,
		Code:      res.Round.Code,
		Unit:      res.Round.Unit,
		Error:     res.Solution,
		Syndrome:  res.Round.Syndrome.String(),
		Units:     res.Round.Units,
		Guess:     res.Guess,
		Guesses:   res.Guesses,
		Correct:   res.Correct,
		StartedAt: res.Round.StartedAt,
		Duration:  res.Duration,
	}
}
