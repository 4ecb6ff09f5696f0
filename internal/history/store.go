// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package history keeps a local log of executed searches in a SQLite
// database under the user config directory.
package history

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/pdiddy/openshelf/pkg/types"
)

const dbFile = "history.db"

// defaultMaxList bounds `history list` output when no limit is configured.
const defaultMaxList = 20

// Store manages the search history SQLite database.
type Store struct {
	db      *sql.DB
	maxList int
}

// Entry is one recorded search.
type Entry struct {
	ID         int64     `json:"id"`
	Title      string    `json:"title"`
	Author     string    `json:"author,omitempty"`
	Page       int       `json:"page"`
	NumFound   int       `json:"num_found"`
	SearchedAt time.Time `json:"searched_at"`
}

// DefaultPath returns the database location under the user config
// directory, falling back to the working directory when that is unknown.
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return dbFile
	}
	return filepath.Join(dir, "openshelf", dbFile)
}

// NewStore opens or creates the history database at cfg's path (or the
// default location), creating the schema if it does not exist.
func NewStore(cfg types.HistoryConfig) (*Store, error) {
	path := cfg.Path
	if path == "" {
		path = DefaultPath()
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("creating history directory: %w", err)
	}

	db, err := sql.Open("sqlite3", path+"?_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("opening history database: %w", err)
	}

	maxList := cfg.MaxList
	if maxList <= 0 {
		maxList = defaultMaxList
	}

	s := &Store{db: db, maxList: maxList}
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
		`CREATE TABLE IF NOT EXISTS searches (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			title TEXT NOT NULL,
			author TEXT,
			page INTEGER NOT NULL,
			num_found INTEGER NOT NULL,
			searched_at TEXT NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_searches_at ON searches(searched_at)`,
	}
	for _, stmt := range statements {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("executing schema statement: %w", err)
		}
	}
	return nil
}

// Record appends one executed search to the log.
func (s *Store) Record(ctx context.Context, title, author string, page, numFound int) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO searches (title, author, page, num_found, searched_at)
		 VALUES (?, ?, ?, ?, ?)`,
		title, author, page, numFound, time.Now().UTC().Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("recording search: %w", err)
	}
	return nil
}

// List returns the most recent searches, newest first. A non-positive limit
// uses the store default.
func (s *Store) List(ctx context.Context, limit int) ([]Entry, error) {
	if limit <= 0 {
		limit = s.maxList
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT id, title, author, page, num_found, searched_at
		 FROM searches ORDER BY id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("querying history: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var e Entry
		var author sql.NullString
		var at string
		if err := rows.Scan(&e.ID, &e.Title, &author, &e.Page, &e.NumFound, &at); err != nil {
			return nil, fmt.Errorf("scanning history row: %w", err)
		}
		e.Author = author.String
		if t, parseErr := time.Parse(time.RFC3339Nano, at); parseErr == nil {
			e.SearchedAt = t
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// Clear removes all recorded searches.
func (s *Store) Clear(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM searches`); err != nil {
		return fmt.Errorf("clearing history: %w", err)
	}
	return nil
}
