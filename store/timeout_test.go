package store

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/ariebrainware/healthghar/model"
	"github.com/stretchr/testify/assert"
)

// slowBackend blocks every call until its context is done or delay passes.
type slowBackend struct {
	delay time.Duration
}

func (s slowBackend) wait(ctx context.Context) error {
	select {
	case <-time.After(s.delay):
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (s slowBackend) Insert(ctx context.Context, _ Record) error { return s.wait(ctx) }
func (s slowBackend) Find(ctx context.Context, _ Record, _ Query, _ interface{}) error {
	return s.wait(ctx)
}
func (s slowBackend) First(ctx context.Context, _ Query, _ Record) error { return s.wait(ctx) }
func (s slowBackend) Update(ctx context.Context, _ Record, _ Query, _ map[string]interface{}) (int64, error) {
	return 1, s.wait(ctx)
}
func (s slowBackend) Delete(ctx context.Context, _ Record, _ Query) (int64, error) {
	return 1, s.wait(ctx)
}
func (s slowBackend) Ping(ctx context.Context) error { return s.wait(ctx) }

func TestWithTimeout_ExpiresSlowCalls(t *testing.T) {
	b := WithTimeout(slowBackend{delay: time.Second}, 20*time.Millisecond)

	start := time.Now()
	err := b.Insert(context.Background(), &model.Slot{})
	assert.ErrorIs(t, err, ErrTimeout)
	assert.Less(t, time.Since(start), 500*time.Millisecond)

	n, err := b.Delete(context.Background(), &model.Slot{}, Where(Eq("id", "x")))
	assert.ErrorIs(t, err, ErrTimeout)
	assert.Equal(t, int64(0), n)
}

func TestWithTimeout_PassesFastCalls(t *testing.T) {
	b := WithTimeout(slowBackend{delay: time.Millisecond}, time.Second)

	assert.NoError(t, b.Ping(context.Background()))
	n, err := b.Update(context.Background(), &model.Slot{}, Where(Eq("id", "x")), nil)
	assert.NoError(t, err)
	assert.Equal(t, int64(1), n)
}

// committingBackend ignores cancellation and records the insert after delay,
// like a driver whose statement is already on the wire.
type committingBackend struct {
	slowBackend
	mu       sync.Mutex
	inserted int
}

func (c *committingBackend) Insert(_ context.Context, _ Record) error {
	time.Sleep(c.delay)
	c.mu.Lock()
	c.inserted++
	c.mu.Unlock()
	return nil
}

func (c *committingBackend) count() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.inserted
}

func TestWithTimeout_LateWriteCanStillCommit(t *testing.T) {
	inner := &committingBackend{slowBackend: slowBackend{delay: 50 * time.Millisecond}}
	b := WithTimeout(inner, 10*time.Millisecond)

	err := b.Insert(context.Background(), &model.Slot{})
	assert.ErrorIs(t, err, ErrTimeout)
	assert.Eventually(t, func() bool { return inner.count() == 1 }, time.Second, 5*time.Millisecond)
}

func TestWithTimeout_ZeroDisables(t *testing.T) {
	inner := slowBackend{}
	assert.Equal(t, Backend(inner), WithTimeout(inner, 0))
}
