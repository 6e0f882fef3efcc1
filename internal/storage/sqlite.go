// Package storage keeps a SQLite journal of finished memory runs.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
// The journal is a history only; nothing in it is read back to resume play.
package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// Store manages the SQLite database connection for the run journal.
type Store struct {
	db *sql.DB
}

// Run is one finished run.
type Run struct {
	ID        int64
	GameID    string
	Player    string
	Result    string // "won" or "timed_out"
	Level     int    // Level reached
	Matched   int    // Pairs found on that level
	Duration  time.Duration
	CreatedAt time.Time
}

// ResultCount is the number of runs that ended one way.
type ResultCount struct {
	Result string
	Count  int
}

// timeLayout is fixed-width so stored timestamps sort as text.
const timeLayout = "2006-01-02T15:04:05.000000000Z07:00"

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
// The special path ":memory:" opens a private in-memory database.
func Open(dbPath string) (*Store, error) {
	if dbPath != ":memory:" {
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
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}
	// One connection keeps an in-memory database alive and serializes writers.
	db.SetMaxOpenConns(1)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}

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
			game_id TEXT NOT NULL,
			player TEXT NOT NULL DEFAULT '',
			result TEXT NOT NULL,
			level INTEGER NOT NULL,
			matched INTEGER NOT NULL DEFAULT 0,
			duration_ms INTEGER NOT NULL DEFAULT 0,
			created_at TEXT NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_runs_game_id ON runs(game_id);
		CREATE INDEX IF NOT EXISTS idx_runs_player ON runs(player);
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

// RecordRun appends a finished run. A zero CreatedAt is set to now.
// Returns the ID of the inserted record.
func (s *Store) RecordRun(r Run) (int64, error) {
	if r.CreatedAt.IsZero() {
		r.CreatedAt = time.Now()
	}

	result, err := s.db.Exec(
		`INSERT INTO runs (game_id, player, result, level, matched, duration_ms, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		r.GameID, r.Player, r.Result, r.Level, r.Matched,
		r.Duration.Milliseconds(), r.CreatedAt.UTC().Format(timeLayout),
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot record run: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// RecentRuns returns up to limit runs of a game, newest first.
// An empty gameID matches every game.
func (s *Store) RecentRuns(gameID string, limit int) ([]Run, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT id, game_id, player, result, level, matched, duration_ms, created_at
		 FROM runs
		 WHERE ? = '' OR game_id = ?
		 ORDER BY created_at DESC, id DESC
		 LIMIT ?`,
		gameID, gameID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var (
			r          Run
			durationMs int64
			createdAt  string
		)
		if err := rows.Scan(&r.ID, &r.GameID, &r.Player, &r.Result, &r.Level, &r.Matched, &durationMs, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		r.Duration = time.Duration(durationMs) * time.Millisecond
		if parsed, err := time.Parse(timeLayout, createdAt); err == nil {
			r.CreatedAt = parsed
		}
		runs = append(runs, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return runs, nil
}

// ResultCounts tallies runs of a game by result, most frequent first.
func (s *Store) ResultCounts(gameID string) ([]ResultCount, error) {
	rows, err := s.db.Query(
		`SELECT result, COUNT(*)
		 FROM runs
		 WHERE ? = '' OR game_id = ?
		 GROUP BY result
		 ORDER BY COUNT(*) DESC, result`,
		gameID, gameID,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot count runs: %w", err)
	}
	defer rows.Close()

	var counts []ResultCount
	for rows.Next() {
		var c ResultCount
		if err := rows.Scan(&c.Result, &c.Count); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		counts = append(counts, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return counts, nil
}

// ClearRuns deletes the journal of a game, or of every game when gameID is
// empty. Returns the number of deleted runs.
func (s *Store) ClearRuns(gameID string) (int64, error) {
	result, err := s.db.Exec(`DELETE FROM runs WHERE ? = '' OR game_id = ?`, gameID, gameID)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot clear runs: %w", err)
	}
	n, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot count deleted runs: %w", err)
	}
	return n, nil
}
