// SPDX-License-Identifier: MIT
package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/katalvlaran/decodoku/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "decodoku.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	return path
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := config.Load("")
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)
}

func TestLoadYAMLThenEnv(t *testing.T) {
	path := writeFile(t, "code: toric\nsize: 4\nrounds: 12\nerrors: 2\nlog_level: debug\n")
	t.Setenv("DECODOKU_ROUNDS", "3")
	t.Setenv("DECODOKU_SEED", "42")
	t.Setenv("DECODOKU_NO_COLOR", "true")

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, "toric", cfg.Code)
	assert.Equal(t, 4, cfg.Size)
	assert.Equal(t, 3, cfg.Rounds)
	assert.Equal(t, 2, cfg.Errors)
	assert.Equal(t, int64(42), cfg.Seed)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.True(t, cfg.NoColor)
}

func TestLoadErrors(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)

	_, err = config.Load(writeFile(t, "code: [unterminated\n"))
	require.Error(t, err)

	t.Setenv("DECODOKU_ROUNDS", "many")
	_, err = config.Load("")
	require.Error(t, err)
}

func TestValidate(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name   string
		mutate func(*config.Config)
		ok     bool
	}{
		{"default", func(*config.Config) {}, true},
		{"case-insensitive code", func(c *config.Config) { c.Code = " RM15 " }, true},
		{"unknown code", func(c *config.Config) { c.Code = "surface17" }, false},
		{"empty code", func(c *config.Config) { c.Code = "" }, false},
		{"zero rounds", func(c *config.Config) { c.Rounds = 0 }, false},
		{"two errors", func(c *config.Config) { c.Errors = 2 }, true},
		{"zero errors", func(c *config.Config) { c.Errors = 0 }, false},
		{"too many errors", func(c *config.Config) { c.Errors = 9 }, false},
		{"negative size", func(c *config.Config) { c.Size = -1 }, false},
		{"largest lattice", func(c *config.Config) { c.Code, c.Size = "qudit-toric", 16 }, true},
		{"lattice too large", func(c *config.Config) { c.Code, c.Size = "qudit-toric", 17 }, false},
		{"bad level", func(c *config.Config) { c.LogLevel = "trace" }, false},
		{"metrics addr", func(c *config.Config) { c.MetricsAddr = "localhost:9090" }, true},
		{"bad metrics addr", func(c *config.Config) { c.MetricsAddr = "nope" }, false},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			cfg := config.Default()
			tc.mutate(&cfg)
			err := cfg.Validate()
			if tc.ok {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, config.ErrInvalidConfig)
		})
	}
}
