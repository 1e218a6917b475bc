package pool

import (
	"context"
	"fmt"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewPool(t *testing.T) {

	t.Run("ReturnsErrorForZeroSize", func(t *testing.T) {

		worker := func(ctx context.Context, job int) (int, error) { return job, nil }

		_, err := NewPool(context.Background(), NewConfig(0, 10, 10, 0, false, worker))

		assert.NotNil(t, err)
	})

	t.Run("ProcessesAllJobs", func(t *testing.T) {

		var processed int64
		worker := func(ctx context.Context, job int) (int, error) {
			atomic.AddInt64(&processed, 1)
			return job * 2, nil
		}

		p, err := NewPool(context.Background(), DefaultConfig(5, worker))
		assert.Nil(t, err)

		for i := 0; i < 50; i++ {
			p.SendJobs(i)
		}
		p.Close()

		jobErrs := p.Errors()

		assert.Equal(t, 0, len(jobErrs))
		assert.Equal(t, int64(50), atomic.LoadInt64(&processed))
	})

	t.Run("CollectsErrorsForFailedJobs", func(t *testing.T) {

		worker := func(ctx context.Context, job int) (int, error) {
			if job%2 == 0 {
				return 0, fmt.Errorf("job %v failed", job)
			}
			return job, nil
		}

		p, err := NewPool(context.Background(), DefaultConfig(3, worker))
		assert.Nil(t, err)

		p.SendJobs(0, 1, 2, 3)
		p.Close()

		jobErrs := p.Errors()

		assert.Equal(t, 2, len(jobErrs))
	})

	t.Run("RetriesFailedJobsUpToMaxRetry", func(t *testing.T) {

		var attempts int64
		worker := func(ctx context.Context, job int) (int, error) {
			if atomic.AddInt64(&attempts, 1) < 3 {
				return 0, fmt.Errorf("transient")
			}
			return job, nil
		}

		p, err := NewPool(context.Background(), NewConfig(1, 10, 10, 5, false, worker))
		assert.Nil(t, err)

		p.SendJobs(42)
		p.Close()

		jobErrs := p.Errors()

		assert.Equal(t, 0, len(jobErrs))
		assert.Equal(t, int64(3), atomic.LoadInt64(&attempts))
	})
}
