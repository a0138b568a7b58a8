package store

import (
	"context"
	"errors"
	"time"

	"github.com/ariebrainware/healthghar/metrics"
)

type instrumented struct {
	next Backend
}

// Instrument records the latency and outcome of every call in
// metrics.StoreOps.
func Instrument(next Backend) Backend {
	return &instrumented{next: next}
}

func observe(op, table string, start time.Time, err error) {
	metrics.StoreOps.WithLabelValues(op, table, metrics.Outcome(err)).Observe(time.Since(start).Seconds())
}

func (i *instrumented) Insert(ctx context.Context, row Record) error {
	start := time.Now()
	err := i.next.Insert(ctx, row)
	observe("insert", row.TableName(), start, err)
	return err
}

func (i *instrumented) Find(ctx context.Context, table Record, q Query, dest interface{}) error {
	start := time.Now()
	err := i.next.Find(ctx, table, q, dest)
	observe("find", table.TableName(), start, err)
	return err
}

func (i *instrumented) First(ctx context.Context, q Query, dest Record) error {
	start := time.Now()
	err := i.next.First(ctx, q, dest)
	// A miss is an answer, not a failure.
	if errors.Is(err, ErrNotFound) {
		observe("first", dest.TableName(), start, nil)
		return err
	}
	observe("first", dest.TableName(), start, err)
	return err
}

func (i *instrumented) Update(ctx context.Context, table Record, q Query, values map[string]interface{}) (int64, error) {
	start := time.Now()
	n, err := i.next.Update(ctx, table, q, values)
	observe("update", table.TableName(), start, err)
	return n, err
}

func (i *instrumented) Delete(ctx context.Context, table Record, q Query) (int64, error) {
	start := time.Now()
	n, err := i.next.Delete(ctx, table, q)
	observe("delete", table.TableName(), start, err)
	return n, err
}

func (i *instrumented) Ping(ctx context.Context) error {
	start := time.Now()
	err := i.next.Ping(ctx)
	observe("ping", "", start, err)
	return err
}
