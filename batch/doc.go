// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package batch applies write intents to the store in fixed-size chunks.

	applied, err := batch.Write(ctx, rep, "Updating cohorts", results, batch.DefaultSize, st.UpdateCohorts)

Chunks are written one after another, each awaited before the next. The
first failure stops the batch and returns a *ChunkError. Chunks already
written stay written; there is no rollback, so a failed batch leaves the
store partially updated and the operator has to reconcile it.
*/
package batch
