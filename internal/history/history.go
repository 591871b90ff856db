// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package history records résumé builds in a local SQLite database so that
// earlier outputs can be traced back to the input that produced them.
package history

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/pdiddy/resume-engine/pkg/types"
)

const (
	dbFile           = "history.db"
	defaultListLimit = 20

	// Fixed-width so that built_at sorts correctly as text.
	timestampLayout = "2006-01-02T15:04:05.000000000Z07:00"
)

// Entry describes one completed build.
type Entry struct {
	ID          int64
	InputPath   string
	InputDigest string
	Template    string
	OutputPath  string
	Bytes       int64
	BuiltAt     time.Time
}

// Store manages the history database.
type Store struct {
	db *sql.DB
}

// Open opens or creates dir/history.db and its schema.
func Open(cfg types.HistoryConfig) (*Store, error) {
	if err := os.MkdirAll(cfg.Dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating history directory: %w", err)
	}

	dbPath := filepath.Join(cfg.Dir, dbFile)
	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	s := &Store{db: db}
	if err := s.createSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}
	return s, nil
}

// Close releases the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) createSchema() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS builds (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			input_path TEXT NOT NULL,
			input_digest TEXT NOT NULL,
			template TEXT NOT NULL,
			output_path TEXT,
			bytes INTEGER,
			built_at TEXT NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_builds_built_at ON builds(built_at)`,
	}
	for _, stmt := range statements {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("executing schema statement: %w", err)
		}
	}
	return nil
}

// Record inserts e and returns its assigned ID. A zero BuiltAt is set to now.
func (s *Store) Record(ctx context.Context, e Entry) (int64, error) {
	if e.BuiltAt.IsZero() {
		e.BuiltAt = time.Now()
	}
	res, err := s.db.ExecContext(ctx,
		`INSERT INTO builds (input_path, input_digest, template, output_path, bytes, built_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		e.InputPath, e.InputDigest, e.Template, e.OutputPath, e.Bytes,
		e.BuiltAt.UTC().Format(timestampLayout),
	)
	if err != nil {
		return 0, fmt.Errorf("recording build: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("reading build id: %w", err)
	}
	return id, nil
}

// List returns up to limit builds, most recent first. A non-positive limit
// uses the default of 20.
func (s *Store) List(ctx context.Context, limit int) ([]Entry, error) {
	if limit <= 0 {
		limit = defaultListLimit
	}
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, input_path, input_digest, template, output_path, bytes, built_at
		 FROM builds ORDER BY built_at DESC, id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("querying builds: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var (
			e       Entry
			output  sql.NullString
			size    sql.NullInt64
			builtAt string
		)
		if err := rows.Scan(&e.ID, &e.InputPath, &e.InputDigest, &e.Template, &output, &size, &builtAt); err != nil {
			return nil, fmt.Errorf("scanning build: %w", err)
		}
		e.OutputPath = output.String
		e.Bytes = size.Int64
		if e.BuiltAt, err = time.Parse(timestampLayout, builtAt); err != nil {
			return nil, fmt.Errorf("parsing build time %q: %w", builtAt, err)
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}
