package runtime

import (
	"context"
)

// unit is one piece of asynchronous work. It emits zero or more messages.
type unit[M any] func(ctx context.Context, emit func(M)) error

// Task is a batch of asynchronous work that produces messages. The zero
// value does nothing.
type Task[M any] struct {
	units []unit[M]
}

// None returns a task that does nothing.
func None[M any]() Task[M] {
	return Task[M]{}
}

// Done returns a task that produces msg immediately.
func Done[M any](msg M) Task[M] {
	return Task[M]{units: []unit[M]{func(_ context.Context, emit func(M)) error {
		emit(msg)
		return nil
	}}}
}

// Perform runs f in the background and maps its result to a message. If f
// fails, the error is reported and no message is produced.
func Perform[T, M any](f func(context.Context) (T, error), then func(T) M) Task[M] {
	return Task[M]{units: []unit[M]{func(ctx context.Context, emit func(M)) error {
		v, err := f(ctx)
		if err != nil {
			return err
		}
		emit(then(v))
		return nil
	}}}
}

// Attempt runs f in the background and maps its result, including any
// error, to a message.
func Attempt[T, M any](f func(context.Context) (T, error), then func(T, error) M) Task[M] {
	return Task[M]{units: []unit[M]{func(ctx context.Context, emit func(M)) error {
		v, err := f(ctx)
		emit(then(v, err))
		return nil
	}}}
}

// Stream runs f in the background; f may emit any number of messages.
func Stream[M any](f func(ctx context.Context, emit func(M)) error) Task[M] {
	return Task[M]{units: []unit[M]{f}}
}

// Batch combines tasks into one that runs all of them concurrently.
func Batch[M any](tasks ...Task[M]) Task[M] {
	var out Task[M]
	for _, t := range tasks {
		out.units = append(out.units, t.units...)
	}
	return out
}

// MapTask converts the messages of t with f.
func MapTask[A, B any](t Task[A], f func(A) B) Task[B] {
	out := Task[B]{units: make([]unit[B], len(t.units))}
	for i, u := range t.units {
		out.units[i] = func(ctx context.Context, emit func(B)) error {
			return u(ctx, func(a A) { emit(f(a)) })
		}
	}
	return out
}

// IsNone reports whether the task does nothing.
func (t Task[M]) IsNone() bool {
	return len(t.units) == 0
}

// Len returns the number of independent pieces of work in the task.
func (t Task[M]) Len() int {
	return len(t.units)
}
