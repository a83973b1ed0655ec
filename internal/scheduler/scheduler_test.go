package scheduler

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/osse101/GildedRose_Go/internal/worker"
)

// MockJob is a simple job for testing
type MockJob struct {
	RunCount atomic.Int32
	Done     chan struct{}
}

func (m *MockJob) Process(ctx context.Context) error {
	m.RunCount.Add(1)
	select {
	case m.Done <- struct{}{}:
	default:
	}
	return nil
}

// rejectingPool counts offers and accepts none
type rejectingPool struct {
	offers atomic.Int32
}

func (p *rejectingPool) TryEnqueue(job worker.Job) bool {
	p.offers.Add(1)
	return false
}

func TestScheduler(t *testing.T) {
	pool := worker.NewPool(1, 10)
	pool.Start()
	defer pool.Stop()

	sched := New(pool)
	defer sched.Stop()

	job := &MockJob{Done: make(chan struct{}, 10)}
	sched.Schedule(10*time.Millisecond, job)

	timeout := time.After(time.Second)
	runCount := 0
	for runCount < 2 {
		select {
		case <-job.Done:
			runCount++
		case <-timeout:
			t.Fatal("Timeout waiting for job execution")
		}
	}

	assert.GreaterOrEqual(t, runCount, 2)
}

func TestScheduler_SkipsWhenQueueFull(t *testing.T) {
	pool := &rejectingPool{}
	sched := New(pool)

	sched.Schedule(5*time.Millisecond, &MockJob{Done: make(chan struct{}, 1)})

	assert.Eventually(t, func() bool { return pool.offers.Load() >= 3 }, time.Second, 5*time.Millisecond,
		"a rejected tick must not block later ticks")
	sched.Stop()
}

func TestScheduler_NonPositiveInterval(t *testing.T) {
	pool := &rejectingPool{}
	sched := New(pool)

	sched.Schedule(0, &MockJob{})
	sched.Schedule(-time.Second, &MockJob{})
	sched.Stop()

	assert.Equal(t, int32(0), pool.offers.Load())
	assert.NotPanics(t, sched.Stop)
}
