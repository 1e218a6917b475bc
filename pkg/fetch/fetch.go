// Package fetch turns logical "give me everything" requests against a
// rate-limited remote api into bounded page and chunk requests.
package fetch

import (
	"context"

	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/semaphore"
)

// Chunk partitions items into sub-lists of at most size elements, preserving
// order. A size smaller than 1 returns a single chunk with all items.
func Chunk[T any](items []T, size int) (chunks [][]T) {
	if len(items) == 0 {
		return chunks
	}
	if size < 1 {
		return [][]T{items}
	}

	for size < len(items) {
		items, chunks = items[size:], append(chunks, items[0:size:size])
	}

	return append(chunks, items)
}

// Pages issues page requests sequentially, starting at page index 0, until
// hasNextPage returns false for the latest response. A failed page fails the
// whole fetch; retrying is the transport's responsibility.
func Pages[R any](ctx context.Context, fetchPage func(ctx context.Context, pageIndex int) (R, error), hasNextPage func(response R) bool) (responses []R, err error) {
	for pageIndex := 0; ; pageIndex++ {
		response, err := fetchPage(ctx, pageIndex)
		if err != nil {
			return responses, err
		}
		responses = append(responses, response)

		if !hasNextPage(response) {
			return responses, nil
		}
	}
}

// ForEachChunk partitions items into chunks of chunkSize and runs handler for
// each chunk, at most concurrency chunks in flight at once. The first handler
// error cancels the remaining chunks and is returned.
func ForEachChunk[T any](ctx context.Context, items []T, chunkSize int, concurrency int64, handler func(ctx context.Context, chunk []T) error) (err error) {
	if concurrency < 1 {
		concurrency = 1
	}

	// limit concurrency using a semaphore
	sem := semaphore.NewWeighted(concurrency)
	g, ctx := errgroup.WithContext(ctx)

	for _, chunk := range Chunk(items, chunkSize) {
		chunk := chunk
		g.Go(func() error {
			if err := sem.Acquire(ctx, 1); err != nil {
				return err
			}
			defer sem.Release(1)

			return handler(ctx, chunk)
		})
	}

	return g.Wait()
}
