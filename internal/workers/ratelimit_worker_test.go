package workers

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type countingCleaner struct {
	calls int32
}

func (c *countingCleaner) Cleanup() {
	atomic.AddInt32(&c.calls, 1)
}

func TestRateLimitWorker_RunsUntilCancelled(t *testing.T) {
	cleaner := &countingCleaner{}
	ctx, cancel := context.WithCancel(context.Background())

	NewRateLimitWorker(cleaner, 5*time.Millisecond).Start(ctx)

	assert.Eventually(t, func() bool {
		return atomic.LoadInt32(&cleaner.calls) >= 2
	}, time.Second, 5*time.Millisecond)

	cancel()
	time.Sleep(20 * time.Millisecond)
	stopped := atomic.LoadInt32(&cleaner.calls)
	time.Sleep(30 * time.Millisecond)
	assert.Equal(t, stopped, atomic.LoadInt32(&cleaner.calls))
}

func TestNewRateLimitWorker_DefaultInterval(t *testing.T) {
	w := NewRateLimitWorker(&countingCleaner{}, 0)
	assert.Equal(t, defaultCleanupInterval, w.interval)
}
