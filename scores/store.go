package scores

import (
	"database/sql"
	"fmt"
	"time"

	_ "modernc.org/sqlite"
)

// RunRecord is one finished run. Simulation state is never persisted;
// this is the only thing that outlives a process.
type RunRecord struct {
	ID              string // uuid assigned at run start
	Variant         string
	Outcome         string // "game-over" or "victory"
	Score           int
	Defeated        int
	SurvivedSeconds float64
	CreatedAt       time.Time
}

// Recorder is the seam the scene loop writes finished runs through.
// A nil-safe no-op implementation stands in when persistence is
// disabled or unavailable.
type Recorder interface {
	RecordRun(rec RunRecord) error
	BestScore(variant string) (int, error)
}

// Store persists run history in a SQLite file.
type Store struct {
	conn *sql.DB
}

// Open opens (or creates) the score database and runs migration.
func Open(path string) (*Store, error) {
	conn, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open score db: %w", err)
	}

	// WAL keeps writers from blocking the read on the start screen
	if _, err := conn.Exec("PRAGMA journal_mode=WAL"); err != nil {
		conn.Close()
		return nil, fmt.Errorf("set journal mode: %w", err)
	}

	s := &Store{conn: conn}
	if err := s.migrate(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("migrate score db: %w", err)
	}
	return s, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.conn.Close()
}

func (s *Store) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS runs (
		id TEXT PRIMARY KEY,
		variant TEXT NOT NULL,
		outcome TEXT NOT NULL,
		score INTEGER NOT NULL DEFAULT 0,
		defeated INTEGER NOT NULL DEFAULT 0,
		survived_seconds REAL NOT NULL DEFAULT 0,
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP
	);

	CREATE INDEX IF NOT EXISTS idx_runs_variant_score ON runs(variant, score DESC);
	`
	_, err := s.conn.Exec(schema)
	return err
}

// RecordRun inserts one finished run.
func (s *Store) RecordRun(rec RunRecord) error {
	_, err := s.conn.Exec(
		"INSERT INTO runs (id, variant, outcome, score, defeated, survived_seconds, created_at) VALUES (?, ?, ?, ?, ?, ?, ?)",
		rec.ID, rec.Variant, rec.Outcome, rec.Score, rec.Defeated, rec.SurvivedSeconds, rec.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("record run: %w", err)
	}
	return nil
}

// BestScore returns the highest score recorded for a variant, zero
// when no run has finished yet.
func (s *Store) BestScore(variant string) (int, error) {
	row := s.conn.QueryRow(
		"SELECT COALESCE(MAX(score), 0) FROM runs WHERE variant = ?",
		variant,
	)
	var best int
	if err := row.Scan(&best); err != nil {
		return 0, fmt.Errorf("best score: %w", err)
	}
	return best, nil
}

// RecentRuns returns up to n most recent runs for a variant, newest
// first.
func (s *Store) RecentRuns(variant string, n int) ([]RunRecord, error) {
	rows, err := s.conn.Query(
		"SELECT id, variant, outcome, score, defeated, survived_seconds, created_at FROM runs WHERE variant = ? ORDER BY created_at DESC LIMIT ?",
		variant, n,
	)
	if err != nil {
		return nil, fmt.Errorf("recent runs: %w", err)
	}
	defer rows.Close()

	var out []RunRecord
	for rows.Next() {
		var rec RunRecord
		if err := rows.Scan(&rec.ID, &rec.Variant, &rec.Outcome, &rec.Score, &rec.Defeated, &rec.SurvivedSeconds, &rec.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan run: %w", err)
		}
		out = append(out, rec)
	}
	return out, rows.Err()
}

// NopRecorder discards everything. Used when the score path is empty
// or the database failed to open; play continues without persistence.
type NopRecorder struct{}

func (NopRecorder) RecordRun(RunRecord) error { return nil }

func (NopRecorder) BestScore(string) (int, error) { return 0, nil }
