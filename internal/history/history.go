// Package history persists a CLI-visible audit log of past check()
// invocations to a local sqlite file, the same way an interactive REPL
// keeps command history. It is deliberately not a definitional-equality
// cache (spec.md §1's non-goal): nothing in internal/check, internal/reduce,
// or internal/equiv ever reads from a Store, so recording here can never
// change — or shortcut — a type-checking result.
//
// Grounded on the database/sql + blank-imported modernc.org/sqlite wiring
// pattern used elsewhere in the example pack for local SQLite storage
// (e.g. a project's internal/database package opening "data/app.db" via
// sql.Open("sqlite", path)); the teacher's own go.mod carries
// modernc.org/sqlite as a direct dependency with no call site of its own.
package history

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "modernc.org/sqlite"
)

// Entry is one recorded check() invocation.
type Entry struct {
	RequestID  string
	Scenario   string
	Term       string
	Success    bool
	Result     string // the rendered type, or the error message
	RecordedAt time.Time
}

// Store wraps a sqlite-backed history log.
type Store struct {
	db *sql.DB
}

// Open opens (creating if necessary) the sqlite file at path and ensures
// its schema exists.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("history: opening %s: %w", path, err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("history: creating schema: %w", err)
	}
	return &Store{db: db}, nil
}

const schema = `
CREATE TABLE IF NOT EXISTS invocations (
	request_id  TEXT PRIMARY KEY,
	scenario    TEXT NOT NULL,
	term        TEXT NOT NULL,
	success     INTEGER NOT NULL,
	result      TEXT NOT NULL,
	recorded_at TEXT NOT NULL
)`

// Close closes the underlying database handle.
func (s *Store) Close() error {
	return s.db.Close()
}

// Record appends entry to the log.
func (s *Store) Record(ctx context.Context, entry Entry) error {
	// Fixed-width fractional seconds, so that Recent's text ORDER BY on
	// recorded_at sorts chronologically (RFC3339Nano drops trailing zeros).
	const recordedAtLayout = "2006-01-02T15:04:05.000000000Z07:00"
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO invocations (request_id, scenario, term, success, result, recorded_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		entry.RequestID, entry.Scenario, entry.Term, entry.Success, entry.Result,
		entry.RecordedAt.UTC().Format(recordedAtLayout),
	)
	if err != nil {
		return fmt.Errorf("history: recording entry: %w", err)
	}
	return nil
}

// Recent returns the n most recently recorded entries, newest first.
func (s *Store) Recent(ctx context.Context, n int) ([]Entry, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT request_id, scenario, term, success, result, recorded_at
		 FROM invocations ORDER BY recorded_at DESC LIMIT ?`, n)
	if err != nil {
		return nil, fmt.Errorf("history: querying recent entries: %w", err)
	}
	defer rows.Close()

	var out []Entry
	for rows.Next() {
		var e Entry
		var recordedAt string
		if err := rows.Scan(&e.RequestID, &e.Scenario, &e.Term, &e.Success, &e.Result, &recordedAt); err != nil {
			return nil, fmt.Errorf("history: scanning entry: %w", err)
		}
		e.RecordedAt, err = time.Parse(time.RFC3339Nano, recordedAt)
		if err != nil {
			return nil, fmt.Errorf("history: parsing recorded_at: %w", err)
		}
		out = append(out, e)
	}
	return out, rows.Err()
}
