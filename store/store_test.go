// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/danielhkuo/quickly-survey/models"
	"github.com/danielhkuo/quickly-survey/testutil"
)

func intp(v int) *int { return &v }

func makeSubmission(i int) models.Submission {
	return models.Submission{
		ID:     fmt.Sprintf("sub-%02d", i),
		Group:  fmt.Sprintf("grupo-%d", i),
		Topic1: testutil.Answers(7, i%10+1),
		Topic2: testutil.Answers(7, 2),
		Topic3: testutil.Answers(8, 3),
		Dominant: models.Snapshot{
			{intp(i%10 + 1), nil, intp(1), intp(1), intp(1), intp(1), intp(1)},
			{intp(2), intp(2), intp(2), intp(2), intp(2), intp(2), intp(2)},
			{intp(3), intp(3), intp(3), intp(3), intp(3), intp(3), intp(3), intp(3)},
		},
		SubmittedAt: time.Date(2025, 3, 1, 12, 0, i, 0, time.UTC),
	}
}

// implementations runs every test against both store backends
var implementations = map[string]func(t *testing.T) Store{
	"memory": func(t *testing.T) Store { return NewMemory() },
	"sqlite": func(t *testing.T) Store { return NewSQL(testutil.SetupTestDB(t)) },
}

func TestStore_EmptyLatest(t *testing.T) {
	for name, newStore := range implementations {
		t.Run(name, func(t *testing.T) {
			st := newStore(t)

			latest, err := st.Latest(context.Background())
			require.NoError(t, err)
			assert.Nil(t, latest)

			all, err := st.ListAll(context.Background())
			require.NoError(t, err)
			assert.Empty(t, all)
		})
	}
}

func TestStore_AppendPreservesOrder(t *testing.T) {
	for name, newStore := range implementations {
		t.Run(name, func(t *testing.T) {
			st := newStore(t)
			ctx := context.Background()

			for i := 0; i < 5; i++ {
				require.NoError(t, st.Append(ctx, makeSubmission(i)))
			}

			all, err := st.ListAll(ctx)
			require.NoError(t, err)
			require.Len(t, all, 5)
			for i, sub := range all {
				assert.Equal(t, fmt.Sprintf("sub-%02d", i), sub.ID)
			}

			latest, err := st.Latest(ctx)
			require.NoError(t, err)
			require.NotNil(t, latest)
			assert.Equal(t, "sub-04", latest.ID)
		})
	}
}

func TestStore_RoundTripsRecord(t *testing.T) {
	for name, newStore := range implementations {
		t.Run(name, func(t *testing.T) {
			st := newStore(t)
			ctx := context.Background()
			want := makeSubmission(7)

			require.NoError(t, st.Append(ctx, want))

			latest, err := st.Latest(ctx)
			require.NoError(t, err)
			require.NotNil(t, latest)

			assert.Equal(t, want.Group, latest.Group)
			assert.Equal(t, want.Topic1, latest.Topic1)
			assert.Equal(t, want.Topic2, latest.Topic2)
			assert.Equal(t, want.Topic3, latest.Topic3)
			assert.Equal(t, want.Dominant, latest.Dominant)
			assert.Nil(t, latest.Dominant[models.Topic1][1], "missing values survive storage")
			assert.True(t, want.SubmittedAt.Equal(latest.SubmittedAt))
		})
	}
}

func TestSQL_RejectsDuplicateID(t *testing.T) {
	st := NewSQL(testutil.SetupTestDB(t))
	ctx := context.Background()

	require.NoError(t, st.Append(ctx, makeSubmission(1)))
	err := st.Append(ctx, makeSubmission(1))
	assert.Error(t, err)

	// the failed append rolled back and left the summary on the first record
	all, err := st.ListAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)

	latest, err := st.Latest(ctx)
	require.NoError(t, err)
	assert.Equal(t, "sub-01", latest.ID)
}

func TestSQL_SummaryRowTracksLatest(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	st := NewSQL(conn)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		require.NoError(t, st.Append(ctx, makeSubmission(i)))
	}

	var rows int
	var submissionID string
	require.NoError(t, conn.QueryRow(`SELECT COUNT(*) FROM dominant_summary`).Scan(&rows))
	require.NoError(t, conn.QueryRow(`SELECT submission_id FROM dominant_summary WHERE id = 1`).Scan(&submissionID))

	assert.Equal(t, 1, rows)
	assert.Equal(t, "sub-02", submissionID)
}

func TestSQL_ClosedDatabase(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	st := NewSQL(conn)
	conn.Close()

	_, err := st.ListAll(context.Background())
	assert.Error(t, err)
	_, err = st.Latest(context.Background())
	assert.Error(t, err)
	assert.Error(t, st.Append(context.Background(), makeSubmission(1)))
}

func TestMemory_ReturnsCopies(t *testing.T) {
	st := NewMemory()
	ctx := context.Background()
	require.NoError(t, st.Append(ctx, makeSubmission(1)))

	all, err := st.ListAll(ctx)
	require.NoError(t, err)
	all[0].Topic1[0] = 99

	latest, err := st.Latest(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, latest.Topic1[0])
}

func TestMemory_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	st := NewMemory()
	assert.ErrorIs(t, st.Append(ctx, makeSubmission(1)), context.Canceled)
	_, err := st.ListAll(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}
