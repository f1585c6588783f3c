// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package batch

import (
	"context"
	"fmt"

	"github.com/danielhkuo/cohortvote/progress"
)

// DefaultSize is the most records the store accepts per write.
const DefaultSize = 10

// ChunkError reports the chunk that stopped a batch.
type ChunkError struct {
	Index   int // zero-based
	Total   int
	Applied int // records written before the failing chunk
	Err     error
}

func (e *ChunkError) Error() string {
	return fmt.Sprintf("chunk %d of %d failed after %d records written: %v", e.Index+1, e.Total, e.Applied, e.Err)
}

func (e *ChunkError) Unwrap() error {
	return e.Err
}

// Chunks slices items into consecutive groups of at most size. The chunks
// share items' backing array; items is not modified.
func Chunks[T any](items []T, size int) [][]T {
	if size < 1 {
		size = DefaultSize
	}

	chunks := make([][]T, 0, (len(items)+size-1)/size)
	for start := 0; start < len(items); start += size {
		end := min(start+size, len(items))
		chunks = append(chunks, items[start:end:end])
	}
	return chunks
}

// Write applies items through write, one chunk at a time, and returns the
// number of records written.
func Write[T any](ctx context.Context, rep progress.Reporter, verb string, items []T, size int, write func(context.Context, []T) error) (int, error) {
	chunks := Chunks(items, size)

	applied := 0
	for i, chunk := range chunks {
		if err := ctx.Err(); err != nil {
			return applied, &ChunkError{Index: i, Total: len(chunks), Applied: applied, Err: err}
		}

		msg := fmt.Sprintf("%s %d of %d", verb, i+1, len(chunks))
		err := progress.Run(rep, msg, func() error {
			return write(ctx, chunk)
		})
		if err != nil {
			return applied, &ChunkError{Index: i, Total: len(chunks), Applied: applied, Err: err}
		}
		applied += len(chunk)
	}

	return applied, nil
}
