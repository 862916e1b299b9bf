package worker

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/Materials_Go/internal/testing/leaktest"
)

func TestPool_ProcessesJobs(t *testing.T) {
	var executed int32
	pool := NewPool(2, 10)
	pool.Start()
	defer pool.Stop()

	job := JobFunc(func(context.Context) error {
		atomic.AddInt32(&executed, 1)
		return nil
	})
	require.True(t, pool.Enqueue(job))
	require.True(t, pool.Enqueue(job))

	assert.Eventually(t, func() bool { return atomic.LoadInt32(&executed) == 2 }, time.Second, 5*time.Millisecond)
}

func TestPool_FailingJobKeepsWorkerAlive(t *testing.T) {
	var executed int32
	pool := NewPool(1, 10)
	pool.Start()
	defer pool.Stop()

	pool.Enqueue(JobFunc(func(context.Context) error { return errors.New("boom") }))
	pool.Enqueue(JobFunc(func(context.Context) error {
		atomic.AddInt32(&executed, 1)
		return nil
	}))

	assert.Eventually(t, func() bool { return atomic.LoadInt32(&executed) == 1 }, time.Second, 5*time.Millisecond)
}

func TestPool_EnqueueFullQueue(t *testing.T) {
	// Not started, so nothing drains the queue
	pool := NewPool(1, 1)
	defer pool.Stop()

	noop := JobFunc(func(context.Context) error { return nil })
	assert.True(t, pool.Enqueue(noop))
	assert.False(t, pool.Enqueue(noop))
}

func TestPool_StopCancelsJobContext(t *testing.T) {
	pool := NewPool(1, 1)
	pool.Start()

	started := make(chan struct{})
	cancelled := make(chan struct{})
	pool.Enqueue(JobFunc(func(ctx context.Context) error {
		close(started)
		<-ctx.Done()
		close(cancelled)
		return ctx.Err()
	}))

	<-started
	pool.Stop()
	pool.Stop()

	select {
	case <-cancelled:
	default:
		t.Fatal("job context was not cancelled by Stop")
	}
	assert.False(t, pool.Enqueue(JobFunc(func(context.Context) error { return nil })))
}

func TestPool_StopReleasesWorkers(t *testing.T) {
	leaktest.CheckNoGoroutineLeak(t, func() {
		pool := NewPool(4, 4)
		pool.Start()
		pool.Stop()
	})
}
