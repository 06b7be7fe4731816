package results

import (
	"database/sql"
	"fmt"
	"time"

	"benchsuite/packages/verify"

	// SQLite driver
	_ "github.com/mattn/go-sqlite3"
)

// HistoryName is the history database file under the results root.
const HistoryName = "history.db"

const createRunsTable = `
CREATE TABLE IF NOT EXISTS runs (
	id         TEXT PRIMARY KEY,
	started_at TEXT NOT NULL,
	passed     INTEGER NOT NULL,
	warned     INTEGER NOT NULL,
	errored    INTEGER NOT NULL
)`

// History is the run-history index: one row per benchmark run with its
// verification tallies. It stores summaries, not logs; the transcript
// stays plain text.
type History struct {
	db *sql.DB
}

// RunRecord is one row of the history index.
type RunRecord struct {
	ID        string
	StartedAt time.Time
	Totals    verify.Totals
}

// OpenHistory opens (creating if needed) the history database at path.
func OpenHistory(path string) (*History, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open history database: %w", err)
	}
	if _, err := db.Exec(createRunsTable); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to initialize history database: %w", err)
	}
	return &History{db: db}, nil
}

// Close closes the underlying database.
func (h *History) Close() error {
	return h.db.Close()
}

// RecordRun inserts one row for a completed run.
func (h *History) RecordRun(run *Run, totals verify.Totals) error {
	_, err := h.db.Exec(
		"INSERT INTO runs (id, started_at, passed, warned, errored) VALUES (?, ?, ?, ?, ?)",
		run.ID.String(),
		run.StartedAt.Format(time.RFC3339),
		totals.Passed,
		totals.Warned,
		totals.Errored,
	)
	if err != nil {
		return fmt.Errorf("failed to record run: %w", err)
	}
	return nil
}

// RecentRuns returns up to limit runs, newest first.
func (h *History) RecentRuns(limit int) ([]RunRecord, error) {
	rows, err := h.db.Query(
		"SELECT id, started_at, passed, warned, errored FROM runs ORDER BY started_at DESC LIMIT ?",
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query runs: %w", err)
	}
	defer rows.Close()

	var records []RunRecord
	for rows.Next() {
		var rec RunRecord
		var startedAt string
		if err := rows.Scan(&rec.ID, &startedAt, &rec.Totals.Passed, &rec.Totals.Warned, &rec.Totals.Errored); err != nil {
			return nil, fmt.Errorf("failed to scan run row: %w", err)
		}
		if ts, err := time.Parse(time.RFC3339, startedAt); err == nil {
			rec.StartedAt = ts
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}
