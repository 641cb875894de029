package outbox

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWorkerPool_Submit(t *testing.T) {
	tests := []struct {
		name     string
		jobs     int
		workers  int
		failures int
	}{
		{name: "More jobs than workers", jobs: 6, workers: 2},
		{name: "Failing job does not stop the others", jobs: 3, workers: 2, failures: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			wp := NewWorkerPool(tt.workers)

			var done, failed atomic.Int32
			for i := 0; i < tt.jobs; i++ {
				fail := i < tt.failures
				err := wp.Submit(context.Background(), func() error {
					time.Sleep(5 * time.Millisecond)
					if fail {
						failed.Add(1)
						return assert.AnError
					}
					done.Add(1)
					return nil
				})
				require.NoError(t, err)
			}
			wp.Shutdown()

			assert.Equal(t, int32(tt.jobs-tt.failures), done.Load())
			assert.Equal(t, int32(tt.failures), failed.Load())
		})
	}
}

func TestWorkerPool_SubmitCanceledContext(t *testing.T) {
	wp := NewWorkerPool(1)
	defer wp.Shutdown()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := wp.Submit(ctx, func() error {
		t.Error("job should not run")
		return nil
	})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestWorkerPool_ShutdownWaitsForRunningJobs(t *testing.T) {
	wp := NewWorkerPool(1)

	var finished atomic.Bool
	started := make(chan struct{})
	require.NoError(t, wp.Submit(context.Background(), func() error {
		close(started)
		time.Sleep(30 * time.Millisecond)
		finished.Store(true)
		return nil
	}))
	<-started

	wp.Shutdown()
	assert.True(t, finished.Load())
}

func TestWorkerPool_ShutdownTwice(t *testing.T) {
	wp := NewWorkerPool(2)
	wp.Shutdown()

	assert.NotPanics(t, wp.Shutdown)
	assert.ErrorIs(t, wp.Submit(context.Background(), func() error { return nil }), ErrPoolClosed)
}
