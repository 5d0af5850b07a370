// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package store persists survey submissions.

Store is append-only: records are never updated or deleted, ListAll returns
them in insertion order and Latest returns the last one appended (nil when
the store is empty).

  - SQL: PostgreSQL or SQLite through database/sql. Each Append inserts the
    submission and rewrites the dominant_summary row in one transaction, and
    Latest reads through that row.
  - Memory: a mutex-guarded slice for tests and -t memory.
*/
package store
