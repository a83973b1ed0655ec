package scheduler

import (
	"sync"
	"time"

	"github.com/osse101/GildedRose_Go/internal/logger"
	"github.com/osse101/GildedRose_Go/internal/worker"
)

// Enqueuer accepts jobs without blocking
type Enqueuer interface {
	TryEnqueue(job worker.Job) bool
}

// Scheduler manages jobs that repeat at a fixed interval
type Scheduler struct {
	workerPool Enqueuer
	quit       chan struct{}
	stopOnce   sync.Once
	wg         sync.WaitGroup
}

// New creates a new scheduler
func New(pool Enqueuer) *Scheduler {
	return &Scheduler{
		workerPool: pool,
		quit:       make(chan struct{}),
	}
}

// Schedule starts enqueueing job every interval until Stop.
// A tick that finds the pool queue full is skipped rather than queued behind it.
func (s *Scheduler) Schedule(interval time.Duration, job worker.Job) {
	if interval <= 0 {
		logger.Warn(LogMsgInvalidInterval, "interval", interval)
		return
	}

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				if !s.workerPool.TryEnqueue(job) {
					logger.Debug(LogMsgTickSkipped, "interval", interval)
				}
			case <-s.quit:
				return
			}
		}
	}()
}

// Stop stops all scheduled jobs
func (s *Scheduler) Stop() {
	s.stopOnce.Do(func() {
		close(s.quit)
	})
	s.wg.Wait()
}
