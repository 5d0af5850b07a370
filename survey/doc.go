// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package survey implements the ingestion and summary flows.

	svc := survey.NewService(store.NewSQL(conn))

	sub, err := svc.Ingest(ctx, req)
	snapshot, err := svc.Summary(ctx)

# Ingestion

Ingest validates the request (group, then answer counts 7/7/8, then the
1-10 range), reads the full history, computes the dominant values over the
history plus the new submission and appends the submission with that
snapshot.

# Errors

  - *ValidationError: the request was rejected before touching the store
  - *StorageError: reading or writing the store failed
  - ErrNoSummary: Summary found nothing stored yet

Use errors.As / errors.Is to tell them apart.
*/
package survey
