package scheduler

import (
	"sync"
	"time"

	"github.com/osse101/GranblueTeam_Go/internal/logger"
	"github.com/osse101/GranblueTeam_Go/internal/worker"
)

const logMsgInvalidInterval = "Ignoring job with non-positive interval"

// Scheduler enqueues jobs on a worker pool at fixed intervals
type Scheduler struct {
	workerPool *worker.Pool
	quit       chan struct{}
	wg         sync.WaitGroup
	stopOnce   sync.Once
}

// New creates a scheduler feeding pool
func New(pool *worker.Pool) *Scheduler {
	return &Scheduler{
		workerPool: pool,
		quit:       make(chan struct{}),
	}
}

// Schedule enqueues job once right away and then every interval until Stop.
// Ticks that find the pool queue full are dropped, not retried.
func (s *Scheduler) Schedule(interval time.Duration, job worker.Job) {
	if interval <= 0 {
		logger.Warn(logMsgInvalidInterval, "job", job.Name(), "interval", interval)
		return
	}

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		s.workerPool.Enqueue(job)

		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				s.workerPool.Enqueue(job)
			case <-s.quit:
				return
			}
		}
	}()
}

// Stop ends every schedule and waits for the loops to exit. Jobs already
// queued on the pool still run; stop the pool afterwards to drain them.
func (s *Scheduler) Stop() {
	s.stopOnce.Do(func() {
		close(s.quit)
	})
	s.wg.Wait()
}
