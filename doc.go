// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the Quickly Survey API server.

Quickly Survey collects survey answers from respondent groups (three topics
of 7, 7 and 8 questions, each answered 1-10) and keeps, for every question,
the answer chosen most often so far.

# Starting the Server

With SQLite (the default):

	DATABASE_URL=file:survey.db go run .

With PostgreSQL:

	go run . -t postgres -d "postgres://..."

Without persistence, for local experiments:

	go run . -t memory

A .env file in the working directory is loaded if present.

# Configuration

  - PORT (-p): Server port (default: 5051)
  - DATABASE_TYPE (-t): sqlite, postgres or memory (default: sqlite)
  - DATABASE_URL (-d): Connection string (required unless memory)
  - ALLOWED_ORIGINS (-origins): CORS allow-list (default: http://localhost:3000)
  - LOG_LEVEL (-log-level): debug, info, warn, error
  - LOG_FORMAT (-log-format): text or json

# Architecture

  - aggregate: dominant-value computation
  - survey: ingestion and summary flows, validation, error types
  - store: append-only submission store (SQL, in-memory)
  - handlers: HTTP request handlers
  - router: route definitions using Go 1.22+ routing
  - middleware: CORS, logging, JSON helpers
  - metrics: Prometheus collectors
  - models: request/response and domain types
  - db: connections and schema creation
  - cliparse: configuration parsing

See package documentation for each component.
*/
package main
