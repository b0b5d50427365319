package runtime

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/semaphore"

	"github.com/go-drift/pure/pkg/errors"
)

// DefaultMaxConcurrent bounds running task units when no limit is configured.
const DefaultMaxConcurrent = 8

// Executor runs tasks in the background, delivering their messages through
// a callback. At most a fixed number of units run at once. Failures and
// panics are reported through the errors package and never stop the
// executor.
type Executor[M any] struct {
	ctx    context.Context
	cancel context.CancelFunc
	sem    *semaphore.Weighted
	group  errgroup.Group
	emit   func(M)
	logger zerolog.Logger

	mu     sync.Mutex
	closed bool
}

// NewExecutor returns an executor bound to ctx. Messages are passed to emit,
// which must be safe for concurrent use.
func NewExecutor[M any](ctx context.Context, maxConcurrent int, emit func(M), logger zerolog.Logger) *Executor[M] {
	if maxConcurrent <= 0 {
		maxConcurrent = DefaultMaxConcurrent
	}
	ctx, cancel := context.WithCancel(ctx)
	return &Executor[M]{
		ctx:    ctx,
		cancel: cancel,
		sem:    semaphore.NewWeighted(int64(maxConcurrent)),
		emit:   emit,
		logger: logger,
	}
}

// Spawn starts every unit of t. It never blocks.
func (e *Executor[M]) Spawn(t Task[M]) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.closed {
		return
	}
	for _, u := range t.units {
		e.group.Go(func() error {
			e.run(u)
			return nil
		})
	}
}

func (e *Executor[M]) run(u unit[M]) {
	if err := e.sem.Acquire(e.ctx, 1); err != nil {
		return
	}
	defer e.sem.Release(1)
	defer errors.Recover("runtime.Executor.run")

	start := time.Now()
	err := u(e.ctx, func(m M) {
		if e.ctx.Err() == nil {
			e.emit(m)
		}
	})
	if err != nil && e.ctx.Err() == nil {
		errors.Report("runtime.Executor.run", errors.KindTask, fmt.Errorf("task failed: %w", err))
		return
	}
	e.logger.Debug().Dur("elapsed", time.Since(start)).Msg("task finished")
}

// Wait blocks until every spawned unit has returned.
func (e *Executor[M]) Wait() {
	_ = e.group.Wait()
}

// Close cancels running work and waits for it to stop. Spawn is a no-op
// afterwards.
func (e *Executor[M]) Close() error {
	e.mu.Lock()
	e.closed = true
	e.mu.Unlock()
	e.cancel()
	return e.group.Wait()
}
