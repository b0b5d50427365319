package runtime

import (
	"context"
	"fmt"
	"reflect"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/go-drift/pure/pkg/errors"
)

// Recipe is a long-running source of messages identified by a comparable ID.
// Two recipes with equal IDs describe the same stream.
type Recipe[M any] interface {
	ID() any
	Run(ctx context.Context, emit func(M)) error
}

// Subscription is the set of streams a program wants running. The zero
// value subscribes to nothing.
type Subscription[M any] struct {
	recipes []Recipe[M]
}

// Recipes returns the recipes of the subscription.
func (s Subscription[M]) Recipes() []Recipe[M] {
	return s.recipes
}

// IsNone reports whether the subscription is empty.
func (s Subscription[M]) IsNone() bool {
	return len(s.recipes) == 0
}

// NoSubscription returns an empty subscription.
func NoSubscription[M any]() Subscription[M] {
	return Subscription[M]{}
}

// Subscribe wraps a recipe.
func Subscribe[M any](r Recipe[M]) Subscription[M] {
	return Subscription[M]{recipes: []Recipe[M]{r}}
}

// BatchSubscriptions merges subscriptions.
func BatchSubscriptions[M any](subs ...Subscription[M]) Subscription[M] {
	var out Subscription[M]
	for _, s := range subs {
		out.recipes = append(out.recipes, s.recipes...)
	}
	return out
}

type funcRecipe[M any] struct {
	id  any
	run func(ctx context.Context, emit func(M)) error
}

func (r funcRecipe[M]) ID() any { return r.id }

func (r funcRecipe[M]) Run(ctx context.Context, emit func(M)) error { return r.run(ctx, emit) }

// Run subscribes to a stream produced by f under id.
func Run[M any](id any, f func(ctx context.Context, emit func(M)) error) Subscription[M] {
	return Subscribe[M](funcRecipe[M]{id: id, run: f})
}

type everyID struct {
	period time.Duration
	msg    reflect.Type
}

// Every emits f(now) once per period.
func Every[M any](period time.Duration, f func(time.Time) M) Subscription[M] {
	return Run(everyID{period: period, msg: reflect.TypeFor[M]()}, func(ctx context.Context, emit func(M)) error {
		ticker := time.NewTicker(period)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return nil
			case now := <-ticker.C:
				emit(f(now))
			}
		}
	})
}

type mappedID struct {
	inner any
	to    reflect.Type
}

type mappedRecipe[A, B any] struct {
	inner Recipe[A]
	f     func(A) B
}

func (r mappedRecipe[A, B]) ID() any {
	return mappedID{inner: r.inner.ID(), to: reflect.TypeFor[B]()}
}

func (r mappedRecipe[A, B]) Run(ctx context.Context, emit func(B)) error {
	return r.inner.Run(ctx, func(a A) { emit(r.f(a)) })
}

// MapSubscription converts the messages of s with f. The identity of each
// stream includes the target message type, so the same stream mapped into
// two types runs twice.
func MapSubscription[A, B any](s Subscription[A], f func(A) B) Subscription[B] {
	out := Subscription[B]{recipes: make([]Recipe[B], len(s.recipes))}
	for i, r := range s.recipes {
		out.recipes[i] = mappedRecipe[A, B]{inner: r, f: f}
	}
	return out
}

// Tracker keeps the running streams in line with the latest subscription:
// new IDs start, missing IDs stop, and unchanged IDs keep running untouched.
type Tracker[M any] struct {
	mu      sync.Mutex
	running map[any]context.CancelFunc
	wg      sync.WaitGroup
	logger  zerolog.Logger
}

// NewTracker returns an empty tracker.
func NewTracker[M any](logger zerolog.Logger) *Tracker[M] {
	return &Tracker[M]{running: make(map[any]context.CancelFunc), logger: logger}
}

// Update starts and stops streams to match s. Duplicate IDs in s run once.
func (t *Tracker[M]) Update(ctx context.Context, s Subscription[M], emit func(M)) {
	t.mu.Lock()
	defer t.mu.Unlock()

	alive := make(map[any]bool, len(s.recipes))
	for _, r := range s.recipes {
		id := r.ID()
		if alive[id] {
			continue
		}
		alive[id] = true
		if _, ok := t.running[id]; ok {
			continue
		}
		runCtx, cancel := context.WithCancel(ctx)
		t.running[id] = cancel
		t.wg.Add(1)
		go t.run(runCtx, id, r, emit)
	}
	for id, cancel := range t.running {
		if !alive[id] {
			cancel()
			delete(t.running, id)
		}
	}
}

func (t *Tracker[M]) run(ctx context.Context, id any, r Recipe[M], emit func(M)) {
	defer t.wg.Done()
	defer errors.Recover("runtime.Tracker.run")

	t.logger.Debug().Str("id", fmt.Sprint(id)).Msg("subscription started")
	err := r.Run(ctx, func(m M) {
		if ctx.Err() == nil {
			emit(m)
		}
	})
	if err != nil && ctx.Err() == nil {
		errors.Report("runtime.Tracker.run", errors.KindSubscription, fmt.Errorf("subscription %v: %w", id, err))
	}
	t.logger.Debug().Str("id", fmt.Sprint(id)).Msg("subscription stopped")
}

// Len returns the number of running streams.
func (t *Tracker[M]) Len() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.running)
}

// Close stops every stream and waits for them to return.
func (t *Tracker[M]) Close() {
	t.mu.Lock()
	for id, cancel := range t.running {
		cancel()
		delete(t.running, id)
	}
	t.mu.Unlock()
	t.wg.Wait()
}
