// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db handles database connections and schema creation.

# Connecting

Open picks the driver from the configured database type:

	conn, err := db.Open(db.TypePostgres, "postgres://...")
	conn, err := db.Open(db.TypeSQLite, "file:survey.db")

PostgreSQL uses github.com/lib/pq and SQLite uses modernc.org/sqlite.
SQLite connections are limited to one open connection.

# Schema Creation

	if err := db.CreateSchema(conn, db.TypeSQLite); err != nil {
		log.Fatal(err)
	}

Safe to call multiple times - uses IF NOT EXISTS for all tables and indexes.

# Tables

  - submission: append-only survey answers and the snapshot computed when
    each row was written, ordered by seq
  - dominant_summary: a single row (id = 1) pointing at the latest
    submission, rewritten in the same transaction as every append

# Relationships

	dominant_summary 1──1 submission (latest)
*/
package db
