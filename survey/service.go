// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package survey

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/danielhkuo/quickly-survey/aggregate"
	"github.com/danielhkuo/quickly-survey/metrics"
	"github.com/danielhkuo/quickly-survey/models"
	"github.com/danielhkuo/quickly-survey/store"
)

// Service runs the ingestion and summary flows against a store
type Service struct {
	store store.Store
	now   func() time.Time
}

func NewService(s store.Store) *Service {
	return &Service{store: s, now: time.Now}
}

// Ingest validates a submission, recomputes the dominant values over the
// full history including it, and appends it with that snapshot.
//
// Two concurrent ingestions may each miss the other when reading history;
// the stored records stay intact, only their snapshots may be stale.
func (s *Service) Ingest(ctx context.Context, req models.SubmitRequest) (models.Submission, error) {
	if err := Validate(req); err != nil {
		metrics.SubmissionsRejected.WithLabelValues("validation").Inc()
		return models.Submission{}, err
	}

	history, err := s.store.ListAll(ctx)
	if err != nil {
		metrics.SubmissionsRejected.WithLabelValues("storage").Inc()
		return models.Submission{}, &StorageError{Op: "read", Err: err}
	}

	sub := models.Submission{
		ID:          uuid.NewString(),
		Group:       strings.TrimSpace(req.Group),
		Topic1:      req.Topic1,
		Topic2:      req.Topic2,
		Topic3:      req.Topic3,
		SubmittedAt: s.now().UTC(),
	}

	start := time.Now()
	sub.Dominant = aggregate.ComputeSnapshot(append(history, sub))
	metrics.AggregateDuration.Observe(time.Since(start).Seconds())
	metrics.AggregateHistorySize.Set(float64(len(history) + 1))

	if err := s.store.Append(ctx, sub); err != nil {
		metrics.SubmissionsRejected.WithLabelValues("storage").Inc()
		return models.Submission{}, &StorageError{Op: "write", Err: err}
	}

	metrics.SubmissionsAccepted.Inc()
	slog.Info("submission stored", "id", sub.ID, "grupo", sub.Group, "history_size", len(history)+1)

	return sub, nil
}

// Summary returns the snapshot stored with the latest submission.
// It returns ErrNoSummary when nothing has been stored yet.
func (s *Service) Summary(ctx context.Context) (models.Snapshot, error) {
	latest, err := s.store.Latest(ctx)
	if err != nil {
		return models.Snapshot{}, &StorageError{Op: "read", Err: err}
	}

	if latest == nil || latest.Dominant.IsEmpty() {
		return models.Snapshot{}, ErrNoSummary
	}

	return latest.Dominant, nil
}
