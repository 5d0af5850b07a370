// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/danielhkuo/quickly-survey/models"
)

// SQL stores submissions in the submission table and keeps the
// dominant_summary row pointing at the latest one
type SQL struct {
	db *sql.DB
}

var _ Store = (*SQL)(nil)

func NewSQL(db *sql.DB) *SQL {
	return &SQL{db: db}
}

// Append inserts the submission and rewrites the summary row in one transaction
func (s *SQL) Append(ctx context.Context, sub models.Submission) error {
	tema1, err := json.Marshal(sub.Topic1)
	if err != nil {
		return fmt.Errorf("failed to encode tema1: %w", err)
	}
	tema2, err := json.Marshal(sub.Topic2)
	if err != nil {
		return fmt.Errorf("failed to encode tema2: %w", err)
	}
	tema3, err := json.Marshal(sub.Topic3)
	if err != nil {
		return fmt.Errorf("failed to encode tema3: %w", err)
	}
	medias, err := json.Marshal(sub.Dominant)
	if err != nil {
		return fmt.Errorf("failed to encode medias: %w", err)
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx, `
		INSERT INTO submission (id, grupo, tema1, tema2, tema3, medias, submitted_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`, sub.ID, sub.Group, string(tema1), string(tema2), string(tema3), string(medias), sub.SubmittedAt)
	if err != nil {
		return fmt.Errorf("failed to insert submission: %w", err)
	}

	_, err = tx.ExecContext(ctx, `
		INSERT INTO dominant_summary (id, submission_id, medias, updated_at)
		VALUES (1, $1, $2, $3)
		ON CONFLICT (id) DO UPDATE
		SET submission_id = excluded.submission_id,
		    medias = excluded.medias,
		    updated_at = excluded.updated_at
	`, sub.ID, string(medias), sub.SubmittedAt)
	if err != nil {
		return fmt.Errorf("failed to update summary: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit submission: %w", err)
	}

	return nil
}

// ListAll returns every submission ordered by insertion
func (s *SQL) ListAll(ctx context.Context) ([]models.Submission, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, grupo, tema1, tema2, tema3, medias, submitted_at
		FROM submission
		ORDER BY seq
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query submissions: %w", err)
	}
	defer rows.Close()

	subs := []models.Submission{}
	for rows.Next() {
		sub, err := scanSubmission(rows)
		if err != nil {
			return nil, err
		}
		subs = append(subs, sub)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate submissions: %w", err)
	}

	return subs, nil
}

// Latest returns the submission the summary row points at
func (s *SQL) Latest(ctx context.Context) (*models.Submission, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT s.id, s.grupo, s.tema1, s.tema2, s.tema3, s.medias, s.submitted_at
		FROM dominant_summary d
		JOIN submission s ON s.id = d.submission_id
		WHERE d.id = 1
	`)

	sub, err := scanSubmission(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &sub, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanSubmission(row scanner) (models.Submission, error) {
	var sub models.Submission
	var tema1, tema2, tema3, medias string

	err := row.Scan(&sub.ID, &sub.Group, &tema1, &tema2, &tema3, &medias, &sub.SubmittedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return sub, err
	}
	if err != nil {
		return sub, fmt.Errorf("failed to scan submission: %w", err)
	}

	for _, col := range []struct {
		name string
		raw  string
		dest any
	}{
		{"tema1", tema1, &sub.Topic1},
		{"tema2", tema2, &sub.Topic2},
		{"tema3", tema3, &sub.Topic3},
		{"medias", medias, &sub.Dominant},
	} {
		if err := json.Unmarshal([]byte(col.raw), col.dest); err != nil {
			return sub, fmt.Errorf("failed to parse %s of submission %s: %w", col.name, sub.ID, err)
		}
	}

	return sub, nil
}
