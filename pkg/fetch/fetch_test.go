package fetch

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestChunk(t *testing.T) {

	t.Run("ReturnsEmptySliceForNoItems", func(t *testing.T) {

		chunks := Chunk([]int{}, 20)

		assert.Equal(t, 0, len(chunks))
	})

	t.Run("ReturnsSingleChunkWhenItemsFit", func(t *testing.T) {

		chunks := Chunk([]int{1, 2, 3}, 20)

		assert.Equal(t, 1, len(chunks))
		assert.Equal(t, []int{1, 2, 3}, chunks[0])
	})

	t.Run("SplitsIntoFixedSizeChunksPreservingOrder", func(t *testing.T) {

		items := make([]int, 45)
		for i := range items {
			items[i] = i
		}

		chunks := Chunk(items, 20)

		assert.Equal(t, 3, len(chunks))
		assert.Equal(t, 20, len(chunks[0]))
		assert.Equal(t, 20, len(chunks[1]))
		assert.Equal(t, 5, len(chunks[2]))
		assert.Equal(t, 0, chunks[0][0])
		assert.Equal(t, 20, chunks[1][0])
		assert.Equal(t, 44, chunks[2][4])
	})

	t.Run("ReturnsAllItemsInOneChunkForInvalidSize", func(t *testing.T) {

		chunks := Chunk([]int{1, 2, 3}, 0)

		assert.Equal(t, 1, len(chunks))
		assert.Equal(t, 3, len(chunks[0]))
	})
}

func TestPages(t *testing.T) {

	t.Run("FetchesSequentiallyUntilPredicateIsFalse", func(t *testing.T) {

		var fetched []int
		fetchPage := func(ctx context.Context, pageIndex int) (int, error) {
			fetched = append(fetched, pageIndex)
			return pageIndex, nil
		}

		responses, err := Pages(context.Background(), fetchPage, func(response int) bool {
			return response < 2
		})

		assert.Nil(t, err)
		assert.Equal(t, []int{0, 1, 2}, fetched)
		assert.Equal(t, 3, len(responses))
	})

	t.Run("FailsWholeFetchWhenAPageFails", func(t *testing.T) {

		fetchPage := func(ctx context.Context, pageIndex int) (int, error) {
			if pageIndex == 1 {
				return 0, fmt.Errorf("page %v failed", pageIndex)
			}
			return pageIndex, nil
		}

		_, err := Pages(context.Background(), fetchPage, func(response int) bool {
			return true
		})

		assert.NotNil(t, err)
	})
}

func TestForEachChunk(t *testing.T) {

	t.Run("HandlesEveryChunk", func(t *testing.T) {

		items := make([]int, 45)
		for i := range items {
			items[i] = i
		}

		var mutex sync.Mutex
		var handled [][]int
		err := ForEachChunk(context.Background(), items, 20, 5, func(ctx context.Context, chunk []int) error {
			mutex.Lock()
			defer mutex.Unlock()
			handled = append(handled, chunk)
			return nil
		})

		assert.Nil(t, err)
		assert.Equal(t, 3, len(handled))
	})

	t.Run("BoundsConcurrency", func(t *testing.T) {

		items := make([]int, 100)
		var inFlight, maxInFlight int64

		err := ForEachChunk(context.Background(), items, 10, 2, func(ctx context.Context, chunk []int) error {
			current := atomic.AddInt64(&inFlight, 1)
			for {
				max := atomic.LoadInt64(&maxInFlight)
				if current <= max || atomic.CompareAndSwapInt64(&maxInFlight, max, current) {
					break
				}
			}
			atomic.AddInt64(&inFlight, -1)
			return nil
		})

		assert.Nil(t, err)
		assert.LessOrEqual(t, atomic.LoadInt64(&maxInFlight), int64(2))
	})

	t.Run("ReturnsFirstHandlerError", func(t *testing.T) {

		items := make([]int, 40)

		err := ForEachChunk(context.Background(), items, 20, 5, func(ctx context.Context, chunk []int) error {
			return fmt.Errorf("chunk failed")
		})

		assert.NotNil(t, err)
		assert.Equal(t, "chunk failed", err.Error())
	})
}
