// Package storage provides the SQLite run journal.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
//
// The journal is write-mostly: the game appends every finished run and the
// CLI reads it back for `flappydive history`. The game never reads it, so a
// new process always starts with a high score of zero.
package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/vovakirdan/flappydive/internal/game"
)

var _ game.RunRecorder = (*Store)(nil)

const timeLayout = "2006-01-02 15:04:05"

// Store manages the SQLite database connection for the run journal.
type Store struct {
	db      *sql.DB
	session string
}

// RunEntry is a single journaled run.
type RunEntry struct {
	ID        int64
	Session   string
	Run       int
	Score     int64
	HighScore int64
	Reason    string
	Theme     string
	Duration  time.Duration
	EndedAt   time.Time
}

// Stats aggregates the whole journal.
type Stats struct {
	Runs     int
	Sessions int
	Best     int64
	Average  float64
}

// DefaultPath returns ~/.flappydive/journal.db.
func DefaultPath() string {
	return filepath.Join("~", ".flappydive", "journal.db")
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	// Expand ~ to home directory
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{
		db:      db,
		session: time.Now().UTC().Format("20060102T150405.000000"),
	}

	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS runs (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			session TEXT NOT NULL,
			run INTEGER NOT NULL,
			score INTEGER NOT NULL,
			high_score INTEGER NOT NULL,
			reason TEXT NOT NULL,
			theme TEXT NOT NULL,
			duration_ms INTEGER NOT NULL DEFAULT 0,
			ended_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_runs_session ON runs(session);
		CREATE INDEX IF NOT EXISTS idx_runs_score ON runs(score DESC);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// Session returns the id stamped on every run recorded through this store.
func (s *Store) Session() string {
	return s.session
}

// RecordRun journals a finished run under the store's session.
func (s *Store) RecordRun(r game.RunResult) error {
	_, err := s.SaveRun(RunEntry{
		Session:   s.session,
		Run:       r.Run,
		Score:     r.Score,
		HighScore: r.HighScore,
		Reason:    r.Reason.String(),
		Theme:     r.Theme,
		Duration:  r.Duration,
		EndedAt:   r.EndedAt,
	})
	return err
}

// SaveRun inserts a run and returns its ID. A zero EndedAt means now.
func (s *Store) SaveRun(e RunEntry) (int64, error) {
	endedAt := e.EndedAt
	if endedAt.IsZero() {
		endedAt = time.Now()
	}

	result, err := s.db.Exec(
		`INSERT INTO runs (session, run, score, high_score, reason, theme, duration_ms, ended_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		e.Session, e.Run, e.Score, e.HighScore, e.Reason, e.Theme,
		e.Duration.Milliseconds(), endedAt.UTC().Format(timeLayout),
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save run: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// RecentRuns returns the latest runs, newest first.
func (s *Store) RecentRuns(limit int) ([]RunEntry, error) {
	if limit <= 0 {
		limit = 20
	}
	return s.queryRuns(
		`SELECT id, session, run, score, high_score, reason, theme, duration_ms, ended_at
		 FROM runs
		 ORDER BY id DESC
		 LIMIT ?`,
		limit,
	)
}

// TopRuns returns the best runs, highest score first.
func (s *Store) TopRuns(limit int) ([]RunEntry, error) {
	if limit <= 0 {
		limit = 10
	}
	return s.queryRuns(
		`SELECT id, session, run, score, high_score, reason, theme, duration_ms, ended_at
		 FROM runs
		 ORDER BY score DESC, id ASC
		 LIMIT ?`,
		limit,
	)
}

func (s *Store) queryRuns(query string, args ...any) ([]RunEntry, error) {
	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query runs: %w", err)
	}
	defer rows.Close()

	var entries []RunEntry
	for rows.Next() {
		var e RunEntry
		var durationMS int64
		var endedAt any
		if err := rows.Scan(&e.ID, &e.Session, &e.Run, &e.Score, &e.HighScore, &e.Reason, &e.Theme, &durationMS, &endedAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		e.Duration = time.Duration(durationMS) * time.Millisecond

		// The driver may hand back either a time.Time or the stored text.
		switch v := endedAt.(type) {
		case time.Time:
			e.EndedAt = v
		case string:
			if parsed, err := time.Parse(timeLayout, v); err == nil {
				e.EndedAt = parsed
			}
		}
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return entries, nil
}

// Stats summarizes every journaled run.
func (s *Store) Stats() (Stats, error) {
	var st Stats
	var best sql.NullInt64
	var avg sql.NullFloat64
	err := s.db.QueryRow(
		"SELECT COUNT(*), COUNT(DISTINCT session), MAX(score), AVG(score) FROM runs",
	).Scan(&st.Runs, &st.Sessions, &best, &avg)
	if err != nil {
		return Stats{}, fmt.Errorf("storage: cannot query stats: %w", err)
	}
	st.Best = best.Int64
	st.Average = avg.Float64
	return st, nil
}

// ClearRuns deletes the whole journal.
func (s *Store) ClearRuns() error {
	if _, err := s.db.Exec("DELETE FROM runs"); err != nil {
		return fmt.Errorf("storage: cannot clear runs: %w", err)
	}
	return nil
}
