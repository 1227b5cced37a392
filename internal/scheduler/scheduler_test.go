package scheduler

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/osse101/GranblueTeam_Go/internal/testing/leaktest"
	"github.com/osse101/GranblueTeam_Go/internal/worker"
)

// MockJob signals each time it runs
type MockJob struct {
	Done chan struct{}
}

func (m *MockJob) Name() string { return "mock" }

func (m *MockJob) Process(ctx context.Context) error {
	select {
	case m.Done <- struct{}{}:
	default:
	}
	return nil
}

func TestScheduler(t *testing.T) {
	pool := worker.NewPool(1, 10, time.Second)
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

func TestScheduler_StopIsIdempotent(t *testing.T) {
	pool := worker.NewPool(1, 1, 0)
	sched := New(pool)
	sched.Schedule(time.Hour, &MockJob{Done: make(chan struct{}, 1)})

	sched.Stop()
	sched.Stop()
}

func TestScheduler_StopReleasesGoroutines(t *testing.T) {
	leaktest.CheckNoGoroutineLeak(t, func() {
		pool := worker.NewPool(2, 4, time.Second)
		pool.Start()

		sched := New(pool)
		job := &MockJob{Done: make(chan struct{}, 1)}
		sched.Schedule(5*time.Millisecond, job)
		sched.Schedule(time.Hour, job)
		<-job.Done

		sched.Stop()
		pool.Stop()
	})
}

func TestScheduler_RunsImmediately(t *testing.T) {
	pool := worker.NewPool(1, 4, time.Second)
	pool.Start()
	defer pool.Stop()

	sched := New(pool)
	defer sched.Stop()

	job := &MockJob{Done: make(chan struct{}, 1)}
	sched.Schedule(time.Hour, job)

	select {
	case <-job.Done:
	case <-time.After(time.Second):
		t.Fatal("expected the first run without waiting for the interval")
	}
}

func TestScheduler_IgnoresNonPositiveInterval(t *testing.T) {
	pool := worker.NewPool(1, 1, 0)
	sched := New(pool)

	assert.NotPanics(t, func() { sched.Schedule(0, &MockJob{Done: make(chan struct{}, 1)}) })
	sched.Stop()
}
