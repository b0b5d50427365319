package runtime_test

import (
	"context"
	stderrors "errors"
	"sort"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/rs/zerolog"

	"github.com/go-drift/pure/pkg/errors"
	"github.com/go-drift/pure/pkg/runtime"
)

// collector gathers emitted messages from any goroutine.
type collector[M any] struct {
	mu   sync.Mutex
	msgs []M
}

func (c *collector[M]) emit(m M) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.msgs = append(c.msgs, m)
}

func (c *collector[M]) take() []M {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := c.msgs
	c.msgs = nil
	return out
}

// reports records engine errors and panics.
type reports struct {
	mu     sync.Mutex
	errs   []*errors.EngineError
	panics []*errors.PanicError
}

func (r *reports) HandleError(err *errors.EngineError) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.errs = append(r.errs, err)
}

func (r *reports) HandlePanic(err *errors.PanicError) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.panics = append(r.panics, err)
}

func (r *reports) HandleInvariant(*errors.InvariantError) {}

func installReports(t *testing.T) *reports {
	t.Helper()
	r := &reports{}
	prev := errors.SetHandler(r)
	t.Cleanup(func() { errors.SetHandler(prev) })
	return r
}

func run[M any](t *testing.T, task runtime.Task[M]) []M {
	t.Helper()
	var c collector[M]
	ex := runtime.NewExecutor(context.Background(), 0, c.emit, zerolog.Nop())
	ex.Spawn(task)
	ex.Wait()
	if err := ex.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	return c.take()
}

func TestTaskConstructors(t *testing.T) {
	if !runtime.None[int]().IsNone() {
		t.Error("None is not empty")
	}
	if diff := cmp.Diff([]int{7}, run(t, runtime.Done(7))); diff != "" {
		t.Errorf("Done (-want +got):\n%s", diff)
	}

	double := runtime.Perform(func(context.Context) (int, error) { return 21, nil }, func(v int) int { return v * 2 })
	if diff := cmp.Diff([]int{42}, run(t, double)); diff != "" {
		t.Errorf("Perform (-want +got):\n%s", diff)
	}

	failing := runtime.Attempt(func(context.Context) (int, error) { return 0, stderrors.New("boom") },
		func(_ int, err error) string { return err.Error() })
	if diff := cmp.Diff([]string{"boom"}, run(t, failing)); diff != "" {
		t.Errorf("Attempt (-want +got):\n%s", diff)
	}

	stream := runtime.Stream(func(_ context.Context, emit func(int)) error {
		for i := range 3 {
			emit(i)
		}
		return nil
	})
	if diff := cmp.Diff([]int{0, 1, 2}, run(t, stream)); diff != "" {
		t.Errorf("Stream (-want +got):\n%s", diff)
	}
}

func TestBatchAndMap(t *testing.T) {
	batch := runtime.Batch(runtime.Done(1), runtime.None[int](), runtime.Done(2))
	if got := batch.Len(); got != 2 {
		t.Errorf("Len = %d, want 2", got)
	}
	mapped := runtime.MapTask(batch, func(v int) string { return string(rune('a' + v)) })
	got := run(t, mapped)
	sort.Strings(got)
	if diff := cmp.Diff([]string{"b", "c"}, got); diff != "" {
		t.Errorf("MapTask (-want +got):\n%s", diff)
	}
}

func TestPerformFailureIsReported(t *testing.T) {
	r := installReports(t)
	task := runtime.Perform(func(context.Context) (int, error) { return 0, stderrors.New("offline") },
		func(v int) int { return v })
	if got := run(t, task); len(got) != 0 {
		t.Errorf("failed task emitted %v", got)
	}
	if len(r.errs) != 1 || r.errs[0].Kind != errors.KindTask {
		t.Fatalf("reports = %+v, want one task error", r.errs)
	}
	if r.errs[0].Err.Error() != "task failed: offline" {
		t.Errorf("error = %v", r.errs[0].Err)
	}
}

func TestExecutorRecoversPanics(t *testing.T) {
	r := installReports(t)
	task := runtime.Batch(
		runtime.Stream(func(context.Context, func(int)) error { panic("bad task") }),
		runtime.Done(1),
	)
	if diff := cmp.Diff([]int{1}, run(t, task)); diff != "" {
		t.Errorf("messages (-want +got):\n%s", diff)
	}
	if len(r.panics) != 1 || r.panics[0].Value != "bad task" {
		t.Errorf("panics = %+v, want one", r.panics)
	}
}

func TestExecutorLimitsConcurrency(t *testing.T) {
	var active, peak int32
	work := runtime.Stream(func(context.Context, func(int)) error {
		n := atomic.AddInt32(&active, 1)
		for {
			p := atomic.LoadInt32(&peak)
			if n <= p || atomic.CompareAndSwapInt32(&peak, p, n) {
				break
			}
		}
		time.Sleep(5 * time.Millisecond)
		atomic.AddInt32(&active, -1)
		return nil
	})
	ex := runtime.NewExecutor(context.Background(), 2, func(int) {}, zerolog.Nop())
	ex.Spawn(runtime.Batch(work, work, work, work, work, work))
	ex.Wait()
	if p := atomic.LoadInt32(&peak); p > 2 || p == 0 {
		t.Errorf("peak concurrency = %d, want 1 or 2", p)
	}
}

func TestExecutorCloseCancels(t *testing.T) {
	var c collector[int]
	ex := runtime.NewExecutor(context.Background(), 1, c.emit, zerolog.Nop())
	started := make(chan struct{})
	ex.Spawn(runtime.Stream(func(ctx context.Context, emit func(int)) error {
		close(started)
		<-ctx.Done()
		emit(1)
		return ctx.Err()
	}))
	<-started
	if err := ex.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	ex.Spawn(runtime.Done(2))
	ex.Wait()
	if got := c.take(); len(got) != 0 {
		t.Errorf("messages after close = %v", got)
	}
}
