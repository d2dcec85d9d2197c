// SPDX-License-Identifier: MIT

// Package cli wires the decodoku commands: catalog listing, single-shot
// measurement, check probing, the guessing game and round statistics.
package cli

import (
	crand "crypto/rand"
	"encoding/binary"
	"fmt"
	"log/slog"
	"math/rand"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/decodoku/code"
	"github.com/katalvlaran/decodoku/codes"
	"github.com/katalvlaran/decodoku/internal/config"
)

// app carries the resolved configuration into every subcommand.
type app struct {
	cfgPath string
	flags   config.Config
	cfg     config.Config
	log     *slog.Logger
}

// NewRootCmd builds the decodoku command tree.
func NewRootCmd(version string) *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:     "decodoku",
		Short:   "Stabilizer code syndrome simulator and decoding puzzle",
		Version: version,
		Long: `decodoku injects single-unit errors into small stabilizer and
classical codes, measures their syndromes and decodes them.

Configuration is read from defaults, an optional YAML file (--config),
DECODOKU_* environment variables and finally these flags.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.resolve,
	}

	pf := root.PersistentFlags()
	pf.StringVar(&a.cfgPath, "config", "", "YAML config file")
	pf.StringVarP(&a.flags.Code, "code", "c", "", "code family (see 'decodoku codes')")
	pf.IntVar(&a.flags.Size, "size", 0, "family size parameter (rows, lattice side)")
	pf.IntVar(&a.flags.Base, "base", 0, "qudit dimension for base-d families")
	pf.Int64Var(&a.flags.Seed, "seed", 0, "random seed (0 draws a fresh one)")
	pf.IntVar(&a.flags.Rounds, "rounds", 0, "rounds to play")
	pf.IntVar(&a.flags.Errors, "errors", 0, "errors hidden per round (1-8)")
	pf.StringVar(&a.flags.DBPath, "db", "", "SQLite round history path")
	pf.StringVar(&a.flags.LogLevel, "log-level", "", "debug, info, warn or error")
	pf.BoolVar(&a.flags.NoColor, "no-color", false, "disable colored output")
	pf.StringVar(&a.flags.MetricsAddr, "metrics-addr", "", "serve Prometheus /metrics on host:port while playing")

	root.AddCommand(a.codesCmd())
	root.AddCommand(a.describeCmd())
	root.AddCommand(a.measureCmd())
	root.AddCommand(a.probeCmd())
	root.AddCommand(a.playCmd())
	root.AddCommand(a.statsCmd())

	return root
}

// resolve loads the configuration, lets explicitly set flags win and
// builds the stderr logger.
func (a *app) resolve(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(a.cfgPath)
	if err != nil {
		return err
	}
	fs := cmd.Flags()
	if fs.Changed("code") {
		cfg.Code = a.flags.Code
	}
	if fs.Changed("size") {
		cfg.Size = a.flags.Size
	}
	if fs.Changed("base") {
		cfg.Base = a.flags.Base
	}
	if fs.Changed("seed") {
		cfg.Seed = a.flags.Seed
	}
	if fs.Changed("rounds") {
		cfg.Rounds = a.flags.Rounds
	}
	if fs.Changed("errors") {
		cfg.Errors = a.flags.Errors
	}
	if fs.Changed("db") {
		cfg.DBPath = a.flags.DBPath
	}
	if fs.Changed("log-level") {
		cfg.LogLevel = a.flags.LogLevel
	}
	if fs.Changed("no-color") {
		cfg.NoColor = a.flags.NoColor
	}
	if fs.Changed("metrics-addr") {
		cfg.MetricsAddr = a.flags.MetricsAddr
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	if cfg.Seed == 0 {
		if cfg.Seed, err = newSeed(); err != nil {
			return err
		}
	}
	if cfg.NoColor {
		color.NoColor = true
	}

	var level slog.Level
	if err := level.UnmarshalText([]byte(cfg.LogLevel)); err != nil {
		return fmt.Errorf("log level %q: %w", cfg.LogLevel, err)
	}
	a.cfg = cfg
	a.log = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))
	a.log.Debug("config resolved",
		slog.String("code", cfg.Code),
		slog.Int("size", cfg.Size),
		slog.Int("base", cfg.Base),
		slog.Int64("seed", cfg.Seed),
	)

	return nil
}

// newSeed draws a fresh seed from crypto/rand.
func newSeed() (int64, error) {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		return 0, fmt.Errorf("read random seed: %w", err)
	}

	return int64(binary.LittleEndian.Uint64(b[:])), nil
}

// rng returns a source seeded from the resolved configuration.
func (a *app) rng() *rand.Rand {
	return rand.New(rand.NewSource(a.cfg.Seed))
}

// spec builds the configured code family.
func (a *app) spec() (*code.Spec, error) {
	s, err := codes.Build(a.cfg.Code, codes.Params{Size: a.cfg.Size, Base: a.cfg.Base, Rand: a.rng()})
	if err != nil {
		return nil, fmt.Errorf("build %s: %w", a.cfg.Code, err)
	}
	a.log.Debug("code built", slog.String("spec", s.String()))

	return s, nil
}
