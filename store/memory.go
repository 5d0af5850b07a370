// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"context"
	"slices"
	"sync"

	"github.com/danielhkuo/quickly-survey/models"
)

// Memory keeps submissions in process memory. Nothing survives a restart.
type Memory struct {
	mu   sync.RWMutex
	subs []models.Submission
}

var _ Store = (*Memory)(nil)

func NewMemory() *Memory {
	return &Memory{}
}

func (m *Memory) Append(ctx context.Context, sub models.Submission) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.subs = append(m.subs, clone(sub))
	return nil
}

func (m *Memory) ListAll(ctx context.Context) ([]models.Submission, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]models.Submission, len(m.subs))
	for i, sub := range m.subs {
		out[i] = clone(sub)
	}
	return out, nil
}

func (m *Memory) Latest(ctx context.Context) (*models.Submission, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	if len(m.subs) == 0 {
		return nil, nil
	}
	latest := clone(m.subs[len(m.subs)-1])
	return &latest, nil
}

// clone copies the answer and snapshot slices so callers can't mutate stored records
func clone(sub models.Submission) models.Submission {
	sub.Topic1 = slices.Clone(sub.Topic1)
	sub.Topic2 = slices.Clone(sub.Topic2)
	sub.Topic3 = slices.Clone(sub.Topic3)
	for i := range sub.Dominant {
		sub.Dominant[i] = slices.Clone(sub.Dominant[i])
	}
	return sub
}
