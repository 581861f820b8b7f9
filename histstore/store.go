// Copyright © 2026 Serialcli contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: histstore/store.go
// Summary: SQLite-backed persistent command history.

// Package histstore persists submitted command lines to SQLite so an
// interactive session can restore its history ring across restarts.
// The engine itself never touches the store: embedders wire
// Store.Append into cli.Config.OnSubmit and seed the ring with Tail.
package histstore

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"
)

// SQLite schema for the history store.
const storeSchema = `
CREATE TABLE IF NOT EXISTS history (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    ts INTEGER NOT NULL,              -- UnixNano of submission
    line TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_history_ts ON history(ts);
`

// Store is a persistent command history: lines are appended, and Prune
// drops all but the newest.
type Store struct {
	db *sql.DB
}

// Open creates or opens the history database at path, creating parent
// directories as needed.
func Open(path string) (*Store, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}

	dsn := path +
		"?_pragma=journal_mode(WAL)" +
		"&_pragma=synchronous(NORMAL)"

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	if _, err := db.Exec(storeSchema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create schema: %w", err)
	}
	return &Store{db: db}, nil
}

// Append records one submitted line.
func (s *Store) Append(line string) error {
	_, err := s.db.Exec(
		"INSERT INTO history(ts, line) VALUES (?, ?)",
		time.Now().UnixNano(), line,
	)
	if err != nil {
		return fmt.Errorf("failed to append history line: %w", err)
	}
	return nil
}

// Tail returns up to limit of the most recent lines, oldest first, in
// the order cli.Session.PreloadHistory expects.
func (s *Store) Tail(limit int) ([]string, error) {
	rows, err := s.db.Query(
		"SELECT line FROM (SELECT id, line FROM history ORDER BY id DESC LIMIT ?) ORDER BY id ASC",
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query history: %w", err)
	}
	defer rows.Close()

	var lines []string
	for rows.Next() {
		var line string
		if err := rows.Scan(&line); err != nil {
			return nil, fmt.Errorf("failed to scan history line: %w", err)
		}
		lines = append(lines, line)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read history: %w", err)
	}
	return lines, nil
}

// Prune keeps only the newest keep lines, dropping the rest.
func (s *Store) Prune(keep int) error {
	_, err := s.db.Exec(
		"DELETE FROM history WHERE id NOT IN (SELECT id FROM history ORDER BY id DESC LIMIT ?)",
		keep,
	)
	if err != nil {
		return fmt.Errorf("failed to prune history: %w", err)
	}
	return nil
}

// Close closes the database.
func (s *Store) Close() error {
	return s.db.Close()
}
