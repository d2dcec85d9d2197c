// SPDX-License-Identifier: MIT

// Package store persists finished game rounds in SQLite.
package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	msqlite "modernc.org/sqlite"
	sqlite3lib "modernc.org/sqlite/lib"

	"github.com/katalvlaran/decodoku/store/migrations"
)

// MemoryPath opens a private in-memory database.
const MemoryPath = ":memory:"

// Round is one finished round as stored. Unit and Guess repeat the first
// entries of Units and Guesses.
type Round struct {
	ID        string
	Code      string
	Unit      int
	Units     []int
	Error     string
	Syndrome  string
	Guess     int
	Guesses   []int
	Correct   bool
	StartedAt time.Time
	Duration  time.Duration
}

// CodeStats aggregates the rounds of one code.
type CodeStats struct {
	Code        string
	Rounds      int
	Correct     int
	AvgDuration time.Duration
}

// Accuracy is Correct/Rounds, 0 for no rounds.
func (s CodeStats) Accuracy() float64 {
	if s.Rounds == 0 {
		return 0
	}

	return float64(s.Correct) / float64(s.Rounds)
}

// Store is a SQLite round history. The *sql.DB is safe for concurrent use.
type Store struct {
	db *sql.DB
}

func toMillis(t time.Time) int64 { return t.UTC().UnixMilli() }

func fromMillis(v int64) time.Time { return time.UnixMilli(v).UTC() }

// joinInts stores a unit list as "3,5".
func joinInts(v []int) string {
	parts := make([]string, len(v))
	for i, n := range v {
		parts[i] = strconv.Itoa(n)
	}

	return strings.Join(parts, ",")
}

func splitInts(s string) ([]int, error) {
	if s == "" {
		return nil, nil
	}
	parts := strings.Split(s, ",")
	out := make([]int, len(parts))
	for i, p := range parts {
		n, err := strconv.Atoi(p)
		if err != nil {
			return nil, fmt.Errorf("unit list %q: %w", s, err)
		}
		out[i] = n
	}

	return out, nil
}

// Open opens (creating if needed) the database at path and applies the
// embedded migrations. MemoryPath gives a throwaway database.
func Open(ctx context.Context, path string) (*Store, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return nil, fmt.Errorf("Open: %w", ErrPathRequired)
	}
	dsn := path
	if path != MemoryPath {
		dsn = filepath.Clean(path) + "?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)"
	}
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	if path == MemoryPath {
		// every pooled connection would otherwise see its own empty database
		db.SetMaxOpenConns(1)
	}
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}
	if err := applyMigrations(ctx, db, migrations.FS); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	return &Store{db: db}, nil
}

// Close closes the database handle.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}

	return s.db.Close()
}

// RecordRound inserts one finished round.
func (s *Store) RecordRound(ctx context.Context, r Round) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if s == nil || s.db == nil {
		return fmt.Errorf("RecordRound: %w", ErrNotConfigured)
	}
	if strings.TrimSpace(r.ID) == "" || strings.TrimSpace(r.Code) == "" {
		return fmt.Errorf("RecordRound: %w", ErrInvalidRound)
	}
	correct := 0
	if r.Correct {
		correct = 1
	}
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO rounds (id, code, unit, units, error, syndrome, guess, guesses, correct, started_at, duration_ms)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		r.ID, r.Code, r.Unit, joinInts(r.Units), r.Error, r.Syndrome, r.Guess, joinInts(r.Guesses), correct,
		toMillis(r.StartedAt), r.Duration.Milliseconds(),
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("RecordRound(%s): %w", r.ID, ErrDuplicateRound)
		}
		return fmt.Errorf("record round: %w", err)
	}

	return nil
}

// Rounds returns the most recent rounds first, at most limit (all when
// limit <= 0), optionally filtered by code.
func (s *Store) Rounds(ctx context.Context, code string, limit int) ([]Round, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if s == nil || s.db == nil {
		return nil, fmt.Errorf("Rounds: %w", ErrNotConfigured)
	}
	if limit <= 0 {
		limit = -1 // SQLite: no limit
	}
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, code, unit, units, error, syndrome, guess, guesses, correct, started_at, duration_ms
		   FROM rounds
		  WHERE (? = '' OR code = ?)
		  ORDER BY started_at DESC, id
		  LIMIT ?`,
		code, code, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("query rounds: %w", err)
	}
	defer rows.Close()

	var out []Round
	for rows.Next() {
		var r Round
		var units, guesses string
		var correct int
		var started, duration int64
		if err := rows.Scan(&r.ID, &r.Code, &r.Unit, &units, &r.Error, &r.Syndrome, &r.Guess, &guesses,
			&correct, &started, &duration); err != nil {
			return nil, fmt.Errorf("scan round: %w", err)
		}
		if r.Units, err = splitInts(units); err != nil {
			return nil, fmt.Errorf("scan round %s: %w", r.ID, err)
		}
		if r.Guesses, err = splitInts(guesses); err != nil {
			return nil, fmt.Errorf("scan round %s: %w", r.ID, err)
		}
		r.Correct = correct != 0
		r.StartedAt = fromMillis(started)
		r.Duration = time.Duration(duration) * time.Millisecond
		out = append(out, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate rounds: %w", err)
	}

	return out, nil
}

// Stats aggregates rounds per code, ordered by code.
func (s *Store) Stats(ctx context.Context) ([]CodeStats, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if s == nil || s.db == nil {
		return nil, fmt.Errorf("Stats: %w", ErrNotConfigured)
	}
	rows, err := s.db.QueryContext(ctx,
		`SELECT code, COUNT(*), COALESCE(SUM(correct), 0), COALESCE(AVG(duration_ms), 0)
		   FROM rounds
		  GROUP BY code
		  ORDER BY code`)
	if err != nil {
		return nil, fmt.Errorf("query stats: %w", err)
	}
	defer rows.Close()

	var out []CodeStats
	for rows.Next() {
		var (
			st  CodeStats
			avg float64
		)
		if err := rows.Scan(&st.Code, &st.Rounds, &st.Correct, &avg); err != nil {
			return nil, fmt.Errorf("scan stats: %w", err)
		}
		st.AvgDuration = time.Duration(avg * float64(time.Millisecond))
		out = append(out, st)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate stats: %w", err)
	}

	return out, nil
}

func isUniqueViolation(err error) bool {
	var sqliteErr *msqlite.Error
	if errors.As(err, &sqliteErr) {
		switch sqliteErr.Code() {
		case sqlite3lib.SQLITE_CONSTRAINT_PRIMARYKEY, sqlite3lib.SQLITE_CONSTRAINT_UNIQUE:
			return true
		}
	}

	return strings.Contains(strings.ToLower(err.Error()), "unique constraint failed")
}
