// SPDX-License-Identifier: MIT
package store_test

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/katalvlaran/decodoku/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTemp(t *testing.T) *store.Store {
	t.Helper()
	s, err := store.Open(context.Background(), filepath.Join(t.TempDir(), "rounds.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })

	return s
}

func round(id, code string, correct bool, started time.Time) store.Round {
	return store.Round{
		ID:        id,
		Code:      code,
		Unit:      3,
		Units:     []int{3},
		Error:     "Y",
		Syndrome:  "011011",
		Guess:     3,
		Guesses:   []int{3},
		Correct:   correct,
		StartedAt: started,
		Duration:  1500 * time.Millisecond,
	}
}

func TestOpenRejectsEmptyPath(t *testing.T) {
	t.Parallel()

	_, err := store.Open(context.Background(), "  ")
	require.ErrorIs(t, err, store.ErrPathRequired)
}

func TestRecordAndListRounds(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	s := openTemp(t)
	base := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)

	require.NoError(t, s.RecordRound(ctx, round("a", "steane", true, base)))
	require.NoError(t, s.RecordRound(ctx, round("b", "steane", false, base.Add(time.Minute))))
	require.NoError(t, s.RecordRound(ctx, round("c", "hamming", true, base.Add(2*time.Minute))))

	all, err := s.Rounds(ctx, "", 0)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "c", all[0].ID)
	assert.Equal(t, "a", all[2].ID)
	assert.True(t, all[2].StartedAt.Equal(base))
	assert.Equal(t, 1500*time.Millisecond, all[2].Duration)
	assert.Equal(t, "011011", all[2].Syndrome)

	steane, err := s.Rounds(ctx, "steane", 1)
	require.NoError(t, err)
	require.Len(t, steane, 1)
	assert.Equal(t, "b", steane[0].ID)
	assert.False(t, steane[0].Correct)
}

func TestRecordRoundErrors(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	s := openTemp(t)
	now := time.Now()

	require.NoError(t, s.RecordRound(ctx, round("dup", "steane", true, now)))
	require.ErrorIs(t, s.RecordRound(ctx, round("dup", "steane", true, now)), store.ErrDuplicateRound)
	require.ErrorIs(t, s.RecordRound(ctx, round("", "steane", true, now)), store.ErrInvalidRound)

	cancelled, cancel := context.WithCancel(ctx)
	cancel()
	require.ErrorIs(t, s.RecordRound(cancelled, round("x", "steane", true, now)), context.Canceled)

	_, err := s.Rounds(cancelled, "", 0)
	require.ErrorIs(t, err, context.Canceled)
	_, err = s.Stats(cancelled)
	require.ErrorIs(t, err, context.Canceled)

	var nilStore *store.Store
	require.ErrorIs(t, nilStore.RecordRound(ctx, round("y", "steane", true, now)), store.ErrNotConfigured)
	require.NoError(t, nilStore.Close())
}

func TestStats(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	s, err := store.Open(ctx, store.MemoryPath)
	require.NoError(t, err)
	defer s.Close()

	now := time.Now()
	require.NoError(t, s.RecordRound(ctx, round("1", "steane", true, now)))
	require.NoError(t, s.RecordRound(ctx, round("2", "steane", false, now)))
	require.NoError(t, s.RecordRound(ctx, round("3", "toric", true, now)))

	stats, err := s.Stats(ctx)
	require.NoError(t, err)
	require.Len(t, stats, 2)
	assert.Equal(t, "steane", stats[0].Code)
	assert.Equal(t, 2, stats[0].Rounds)
	assert.Equal(t, 1, stats[0].Correct)
	assert.InDelta(t, 0.5, stats[0].Accuracy(), 1e-9)
	assert.Equal(t, 1500*time.Millisecond, stats[0].AvgDuration)
	assert.Equal(t, "toric", stats[1].Code)
	assert.InDelta(t, 0.0, store.CodeStats{}.Accuracy(), 1e-9)
}

func TestReopenKeepsRounds(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "rounds.db")
	s, err := store.Open(ctx, path)
	require.NoError(t, err)
	require.NoError(t, s.RecordRound(ctx, round("keep", "rm15", true, time.Now())))
	require.NoError(t, s.Close())

	s, err = store.Open(ctx, path)
	require.NoError(t, err)
	defer s.Close()
	rounds, err := s.Rounds(ctx, "rm15", 0)
	require.NoError(t, err)
	require.Len(t, rounds, 1)
	assert.Equal(t, "keep", rounds[0].ID)
}

func TestRoundUnitSets(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	s := openTemp(t)
	r := round("pair", "rm15", false, time.Now())
	r.Unit, r.Units = 2, []int{2, 9}
	r.Guess, r.Guesses = 2, []int{2, 11}
	require.NoError(t, s.RecordRound(ctx, r))

	legacy := round("legacy", "rm15", true, time.Now())
	legacy.Units, legacy.Guesses = nil, nil
	require.NoError(t, s.RecordRound(ctx, legacy))

	got, err := s.Rounds(ctx, "rm15", 0)
	require.NoError(t, err)
	require.Len(t, got, 2)
	byID := map[string]store.Round{got[0].ID: got[0], got[1].ID: got[1]}
	assert.Equal(t, []int{2, 9}, byID["pair"].Units)
	assert.Equal(t, []int{2, 11}, byID["pair"].Guesses)
	assert.Nil(t, byID["legacy"].Units)
	assert.Nil(t, byID["legacy"].Guesses)
}
