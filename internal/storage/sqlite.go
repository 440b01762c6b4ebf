// Package storage keeps the session run log in an in-memory SQLite
// database. Uses the pure-Go modernc.org/sqlite driver to avoid CGO
// dependencies. Nothing is written to disk; the log dies with the process.
package storage

import (
	"database/sql"
	"fmt"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// DefaultName is the in-memory database name used by the CLI.
const DefaultName = "picodino"

// Store manages the in-memory database holding finished runs.
type Store struct {
	db *sql.DB
}

// Run is one finished game.
type Run struct {
	ID        int64
	Backend   string
	Points    int
	Distance  int
	Duration  time.Duration
	CreatedAt time.Time
}

// Stats aggregates every run in the session.
type Stats struct {
	Runs          int
	BestPoints    int
	AvgPoints     float64
	TotalDistance int64
}

// Open creates a private in-memory database called name and runs
// migrations. Two stores opened with the same name do not share data.
func Open(name string) (*Store, error) {
	if name == "" {
		name = DefaultName
	}

	db, err := sql.Open("sqlite", "file:"+name+"?mode=memory")
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	// Each connection to a memory database gets its own copy, so keep one.
	db.SetMaxOpenConns(1)
	db.SetConnMaxLifetime(0)

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

// migrate creates the schema.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS runs (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			backend TEXT NOT NULL,
			points INTEGER NOT NULL,
			distance INTEGER NOT NULL,
			duration_ms INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_runs_top ON runs(points DESC);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection and discards its contents.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// SaveRun records a finished game.
// Returns the ID of the inserted record.
func (s *Store) SaveRun(backend string, points, distance int, duration time.Duration) (int64, error) {
	result, err := s.db.Exec(
		"INSERT INTO runs (backend, points, distance, duration_ms) VALUES (?, ?, ?, ?)",
		backend, points, distance, duration.Milliseconds(),
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

// TopRuns retrieves the best N runs, ordered by points descending.
// Ties keep the earlier run first.
func (s *Store) TopRuns(limit int) ([]Run, error) {
	return s.queryRuns("points DESC, id ASC", limit)
}

// RecentRuns retrieves the last N runs, newest first.
func (s *Store) RecentRuns(limit int) ([]Run, error) {
	return s.queryRuns("id DESC", limit)
}

func (s *Store) queryRuns(order string, limit int) ([]Run, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT id, backend, points, distance, duration_ms, created_at
		 FROM runs
		 ORDER BY `+order+`
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var r Run
		var durationMs int64
		var createdAt any
		if err := rows.Scan(&r.ID, &r.Backend, &r.Points, &r.Distance, &durationMs, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		r.Duration = time.Duration(durationMs) * time.Millisecond
		r.CreatedAt = parseTime(createdAt)
		runs = append(runs, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return runs, nil
}

// BestPoints returns the highest points of the session.
// Returns 0 if no runs exist.
func (s *Store) BestPoints() (int, error) {
	var points sql.NullInt64
	err := s.db.QueryRow("SELECT MAX(points) FROM runs").Scan(&points)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot query best points: %w", err)
	}

	if !points.Valid {
		return 0, nil
	}

	return int(points.Int64), nil
}

// Count returns the number of recorded runs.
func (s *Store) Count() (int, error) {
	var n int
	if err := s.db.QueryRow("SELECT COUNT(*) FROM runs").Scan(&n); err != nil {
		return 0, fmt.Errorf("storage: cannot count runs: %w", err)
	}
	return n, nil
}

// Stats retrieves aggregated statistics for the session.
func (s *Store) Stats() (Stats, error) {
	var st Stats
	err := s.db.QueryRow(
		`SELECT COUNT(*), COALESCE(MAX(points), 0), COALESCE(AVG(points), 0), COALESCE(SUM(distance), 0)
		 FROM runs`,
	).Scan(&st.Runs, &st.BestPoints, &st.AvgPoints, &st.TotalDistance)
	if err != nil {
		return Stats{}, fmt.Errorf("storage: cannot get stats: %w", err)
	}
	return st, nil
}

// Clear deletes all runs.
func (s *Store) Clear() error {
	if _, err := s.db.Exec("DELETE FROM runs"); err != nil {
		return fmt.Errorf("storage: cannot clear runs: %w", err)
	}
	return nil
}

// parseTime handles the driver returning either time.Time or a string.
func parseTime(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", t); err == nil {
			return parsed
		}
	}
	return time.Time{}
}
