// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"database/sql"
	"fmt"
	"strings"

	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"
)

// Supported database types
const (
	TypePostgres = "postgres"
	TypeSQLite   = "sqlite"
)

// Open connects to the database of the given type and verifies the connection
func Open(dbType, url string) (*sql.DB, error) {
	driver, err := driverName(dbType)
	if err != nil {
		return nil, err
	}

	conn, err := sql.Open(driver, url)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s database: %w", dbType, err)
	}

	if dbType == TypeSQLite {
		// a single connection serializes writers and keeps :memory: databases shared
		conn.SetMaxOpenConns(1)
	}

	if err := conn.Ping(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to ping %s database: %w", dbType, err)
	}

	return conn, nil
}

func driverName(dbType string) (string, error) {
	switch dbType {
	case TypePostgres:
		return "postgres", nil
	case TypeSQLite:
		return "sqlite", nil
	}
	return "", fmt.Errorf("unsupported database type %q", dbType)
}

// CreateSchema creates all tables needed for the application.
// Safe to call multiple times - uses IF NOT EXISTS.
func CreateSchema(db *sql.DB, dbType string) error {
	seqColumn := "seq BIGSERIAL PRIMARY KEY"
	if dbType == TypeSQLite {
		seqColumn = "seq INTEGER PRIMARY KEY AUTOINCREMENT"
	}

	_, err := db.Exec(strings.Replace(schema, "{{seq}}", seqColumn, 1))
	if err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	return nil
}

// Answer vectors and snapshots are stored as JSON text so the same
// schema runs on both PostgreSQL and SQLite.
const schema = `
-- Submissions (append-only)
CREATE TABLE IF NOT EXISTS submission (
    {{seq}},
    id TEXT NOT NULL UNIQUE,
    grupo TEXT NOT NULL CHECK (grupo <> ''),
    tema1 TEXT NOT NULL,
    tema2 TEXT NOT NULL,
    tema3 TEXT NOT NULL,
    medias TEXT NOT NULL,
    submitted_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE INDEX IF NOT EXISTS idx_submission_grupo ON submission(grupo);

-- Latest dominant-value summary (single row)
CREATE TABLE IF NOT EXISTS dominant_summary (
    id INTEGER PRIMARY KEY CHECK (id = 1),
    submission_id TEXT NOT NULL REFERENCES submission(id),
    medias TEXT NOT NULL,
    updated_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
);
`
