package outbox

import (
	"context"
	"errors"
	"sync"

	"go.uber.org/zap"
)

var ErrPoolClosed = errors.New("worker pool is closed")

type Pool interface {
	Submit(ctx context.Context, job Job) error
	Shutdown()
}

type Job func() error

// WorkerPool runs jobs on a fixed number of goroutines.
type WorkerPool struct {
	jobs chan Job
	wg   sync.WaitGroup

	mu     sync.RWMutex
	closed bool
}

func NewWorkerPool(workers int) *WorkerPool {
	wp := &WorkerPool{jobs: make(chan Job, workers)}
	wp.wg.Add(workers)
	for i := 0; i < workers; i++ {
		go wp.work()
	}
	return wp
}

func (wp *WorkerPool) work() {
	defer wp.wg.Done()
	for job := range wp.jobs {
		if err := job(); err != nil {
			zap.L().Error("outbox job failed", zap.Error(err))
		}
	}
}

// Submit blocks until a worker accepts job, ctx is done or the pool is shut down.
func (wp *WorkerPool) Submit(ctx context.Context, job Job) error {
	wp.mu.RLock()
	defer wp.mu.RUnlock()
	if wp.closed {
		return ErrPoolClosed
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	select {
	case <-ctx.Done():
		return ctx.Err()
	case wp.jobs <- job:
		return nil
	}
}

// Shutdown stops accepting jobs and returns once the accepted ones have run.
// Calling it more than once is safe.
func (wp *WorkerPool) Shutdown() {
	wp.mu.Lock()
	if !wp.closed {
		wp.closed = true
		close(wp.jobs)
	}
	wp.mu.Unlock()
	wp.wg.Wait()
}
