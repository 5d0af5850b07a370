// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"context"

	"github.com/danielhkuo/quickly-survey/models"
)

// Store is an append-only, insertion-ordered collection of submissions
type Store interface {
	// Append durably adds a submission after every previously appended one
	Append(ctx context.Context, sub models.Submission) error

	// ListAll returns every stored submission in insertion order
	ListAll(ctx context.Context) ([]models.Submission, error)

	// Latest returns the most recently appended submission, or nil if the store is empty
	Latest(ctx context.Context) (*models.Submission, error)
}
