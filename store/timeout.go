package store

import (
	"context"
	"errors"
	"fmt"
	"time"
)

type timeoutBackend struct {
	next Backend
	d    time.Duration
}

// WithTimeout bounds every call of next by d. A call that outlives d returns
// ErrTimeout; its result is discarded when it eventually completes.
//
// ErrTimeout does not mean nothing was written. The deadline cancels the
// context, but a write the driver already sent can still commit, so a caller
// that retries an Insert after ErrTimeout may store the row twice.
func WithTimeout(next Backend, d time.Duration) Backend {
	if d <= 0 {
		return next
	}
	return &timeoutBackend{next: next, d: d}
}

type outcome[T any] struct {
	val T
	err error
}

func bounded[T any](parent context.Context, d time.Duration, fn func(context.Context) (T, error)) (T, error) {
	ctx, cancel := context.WithTimeout(parent, d)
	defer cancel()

	done := make(chan outcome[T], 1)
	go func() {
		v, err := fn(ctx)
		done <- outcome[T]{val: v, err: err}
	}()

	select {
	case o := <-done:
		if o.err != nil && parent.Err() == nil && errors.Is(ctx.Err(), context.DeadlineExceeded) {
			return o.val, fmt.Errorf("%w after %s: %v", ErrTimeout, d, o.err)
		}
		return o.val, o.err
	case <-ctx.Done():
		var zero T
		if err := parent.Err(); err != nil {
			return zero, err
		}
		return zero, fmt.Errorf("%w after %s: %v", ErrTimeout, d, ctx.Err())
	}
}

func (t *timeoutBackend) run(ctx context.Context, fn func(context.Context) error) error {
	_, err := bounded(ctx, t.d, func(ctx context.Context) (struct{}, error) {
		return struct{}{}, fn(ctx)
	})
	return err
}

func (t *timeoutBackend) Insert(ctx context.Context, row Record) error {
	return t.run(ctx, func(ctx context.Context) error { return t.next.Insert(ctx, row) })
}

func (t *timeoutBackend) Find(ctx context.Context, table Record, q Query, dest interface{}) error {
	return t.run(ctx, func(ctx context.Context) error { return t.next.Find(ctx, table, q, dest) })
}

func (t *timeoutBackend) First(ctx context.Context, q Query, dest Record) error {
	return t.run(ctx, func(ctx context.Context) error { return t.next.First(ctx, q, dest) })
}

func (t *timeoutBackend) Update(ctx context.Context, table Record, q Query, values map[string]interface{}) (int64, error) {
	return bounded(ctx, t.d, func(ctx context.Context) (int64, error) {
		return t.next.Update(ctx, table, q, values)
	})
}

func (t *timeoutBackend) Delete(ctx context.Context, table Record, q Query) (int64, error) {
	return bounded(ctx, t.d, func(ctx context.Context) (int64, error) {
		return t.next.Delete(ctx, table, q)
	})
}

func (t *timeoutBackend) Ping(ctx context.Context) error {
	return t.run(ctx, t.next.Ping)
}
