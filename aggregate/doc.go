// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package aggregate computes the dominant answer of every survey question.

# Dominant Values

For a topic and question index, the dominant value is the answer that
occurs most often across all submissions considered:

	dominant := aggregate.ComputeDominant(subs, models.Topic1, 7)

When several answers share the highest count, the one seen first (scanning
subs in order, then the answers of each submission) wins, so the result is
deterministic for a given history.

Positions that no submission answered come back as nil.

# Snapshots

ComputeSnapshot assembles the three topics into a models.Snapshot:

	snapshot := aggregate.ComputeSnapshot(append(history, candidate))

The aggregate is always recomputed from the full history. Both functions are
pure and safe for concurrent use.
*/
package aggregate
