// SPDX-License-Identifier: MIT
package cli_test

import (
	"bytes"
	"io"
	"path/filepath"
	"strings"
	"testing"

	"github.com/katalvlaran/decodoku/internal/cli"
	"github.com/katalvlaran/decodoku/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// run executes the command tree with args and stdin, returning stdout.
func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	root := cli.NewRootCmd("test")
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(io.Discard)
	root.SetIn(strings.NewReader(stdin))
	root.SetArgs(append(args, "--no-color"))
	err := root.Execute()

	return out.String(), err
}

func TestCodesCommand(t *testing.T) {
	out, err := run(t, "", "codes")
	require.NoError(t, err)
	assert.Contains(t, out, "steane")
	assert.Contains(t, out, "qudit-toric")
	assert.Contains(t, out, "size,base,seed")
}

func TestDescribeCommand(t *testing.T) {
	out, err := run(t, "", "describe", "--code", "steane")
	require.NoError(t, err)
	assert.Contains(t, out, "Steane [[7,1,3]]")
	assert.Contains(t, out, "msb-first")
	assert.Contains(t, out, "c0   Z  IIIZZZZ  [3 4 5 6]")
	assert.Contains(t, out, "P7 (111)")
	assert.Contains(t, out, "lines:")

	out, err = run(t, "", "describe", "--code", "toric", "--size", "3")
	require.NoError(t, err)
	assert.Contains(t, out, "Toroidal grid")
	assert.Contains(t, out, "h(0,0)")
}

func TestMeasureCommand(t *testing.T) {
	out, err := run(t, "", "measure", "--code", "steane", "--error", "IIIYIII")
	require.NoError(t, err)
	assert.Contains(t, out, "syndrome:  100100")
	assert.Contains(t, out, "decoded:   Y on unit 3 (apply Y)")
	assert.Contains(t, out, "corrected: IIIIIII (weight 0)")

	out, err = run(t, "", "measure", "--code", "hamming", "--size", "4", "--apply", "9=X")
	require.NoError(t, err)
	assert.Contains(t, out, "syndrome:  1010")
	assert.Contains(t, out, "decoded:   X on unit 9 (apply X)")

	out, err = run(t, "", "measure", "--code", "steane")
	require.NoError(t, err)
	assert.Contains(t, out, "decoded:   nothing to correct")
}

func TestMeasureFallsBackToLookup(t *testing.T) {
	out, err := run(t, "", "measure", "--code", "rm8", "--apply", "2=X")
	require.NoError(t, err)
	assert.Contains(t, out, "decoded:   X on unit 2 (apply X)")
	assert.Contains(t, out, "corrected: IIIIIIII (weight 0)")
}

func TestToricChainsShown(t *testing.T) {
	out, err := run(t, "", "measure", "--code", "toric", "--size", "3", "--apply", "0=X", "--apply", "1=X")
	require.NoError(t, err)
	assert.Contains(t, out, "chains:    [[0 1]]")
	assert.Contains(t, out, "defects:   (0,0) (2,0)")

	out, err = run(t, "", "probe", "--code", "toric", "--size", "3", "0", "--apply", "13=Z")
	require.NoError(t, err)
	assert.Contains(t, out, "chains:    [[13]]")
	assert.Contains(t, out, "defects:   (1,1) (1,2)")

	out, err = run(t, "", "measure", "--code", "steane", "--apply", "3=X")
	require.NoError(t, err)
	assert.NotContains(t, out, "chains:")
}

func TestMeasureCommandErrors(t *testing.T) {
	_, err := run(t, "", "measure", "--code", "steane", "--apply", "3")
	require.ErrorIs(t, err, cli.ErrBadAssignment)

	_, err = run(t, "", "measure", "--code", "steane", "--apply", "x=Y")
	require.ErrorIs(t, err, cli.ErrBadAssignment)

	_, err = run(t, "", "measure", "--code", "steane", "--apply", "7=Y")
	require.Error(t, err)

	_, err = run(t, "", "measure", "--code", "nope")
	require.ErrorIs(t, err, config.ErrInvalidConfig)
}

func TestProbeCommand(t *testing.T) {
	out, err := run(t, "", "probe", "--code", "steane", "0", "--apply", "4=X")
	require.NoError(t, err)
	assert.Contains(t, out, "check:     c0 (Z-type)")
	assert.Contains(t, out, "pattern:   IIIZZZZ")
	assert.Contains(t, out, "units:     [3 4 5 6]")
	assert.Contains(t, out, "value:     1")
	assert.Contains(t, out, "P5 (101)")

	_, err = run(t, "", "probe", "--code", "steane", "6")
	require.Error(t, err)
}

func TestPlayAndStats(t *testing.T) {
	db := filepath.Join(t.TempDir(), "rounds.db")

	out, err := run(t, "", "play", "--code", "steane", "--rounds", "3", "--seed", "7", "--auto", "--db", db)
	require.NoError(t, err)
	assert.Contains(t, out, "round 3")
	assert.Contains(t, out, "score 3/3 (100.0%)")

	out, err = run(t, "", "stats", "--db", db, "--recent", "5")
	require.NoError(t, err)
	assert.Contains(t, out, "Steane [[7,1,3]]")
	assert.Contains(t, out, "100.0%")
	assert.Equal(t, 3, strings.Count(out, "correct"))
}

func TestPlayInteractive(t *testing.T) {
	out, err := run(t, "h\nabc\n99\nq\n", "play", "--code", "steane", "--rounds", "2", "--seed", "3")
	require.NoError(t, err)
	assert.Contains(t, out, "fired checks")
	assert.Contains(t, out, "index value")
	assert.Contains(t, out, "enter unit indices")
	assert.Contains(t, out, "out of range")
	assert.Contains(t, out, "stopped")
	assert.Contains(t, out, "score 0/0 (0.0%)")
}

func TestPlayShowsUnitLabels(t *testing.T) {
	out, err := run(t, "", "play", "--code", "steane", "--rounds", "2", "--seed", "5", "--auto")
	require.NoError(t, err)
	assert.Regexp(t, `correct: [XYZ] on unit \d P\d \([01]{3}\)`, out)

	out, err = run(t, "", "play", "--code", "toric", "--size", "3", "--rounds", "1", "--seed", "5", "--auto")
	require.NoError(t, err)
	assert.Regexp(t, `on unit \d+ [hv]\(\d,\d\)`, out)
}

func TestPlayMultipleErrors(t *testing.T) {
	db := filepath.Join(t.TempDir(), "rounds.db")

	out, err := run(t, "", "play", "--code", "rm15", "--errors", "2", "--rounds", "2", "--seed", "9", "--auto", "--db", db)
	require.NoError(t, err)
	assert.Regexp(t, `wrong: [XYZ] on unit \d+ [^,]+, [XYZ] on unit \d+ `, out)
	assert.Contains(t, out, "score 0/2 (0.0%)", "a single suggestion never names two units")

	out, err = run(t, "", "stats", "--db", db, "--recent", "2")
	require.NoError(t, err)
	assert.Regexp(t, `units \d+,\d+`, out)

	out, err = run(t, "0,1\n2 3\nq\n", "play", "--code", "rm15", "--errors", "2", "--rounds", "3", "--seed", "9")
	require.NoError(t, err)
	assert.NotContains(t, out, "enter unit indices")
	assert.Contains(t, out, "score")

	_, err = run(t, "", "play", "--code", "steane", "--errors", "9")
	require.ErrorIs(t, err, config.ErrInvalidConfig)
}

func TestStatsNeedsDatabase(t *testing.T) {
	_, err := run(t, "", "stats")
	require.ErrorIs(t, err, cli.ErrNoDatabase)

	out, err := run(t, "", "stats", "--db", filepath.Join(t.TempDir(), "empty.db"))
	require.NoError(t, err)
	assert.Contains(t, out, "no rounds recorded")
}
