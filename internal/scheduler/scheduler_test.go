package scheduler

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/osse101/RaidCompanion_Go/internal/testing/leaktest"
	"github.com/osse101/RaidCompanion_Go/internal/worker"
)

type signalJob struct {
	done chan struct{}
}

func (j *signalJob) Process(ctx context.Context) error {
	select {
	case j.done <- struct{}{}:
	default:
	}
	return nil
}

func TestScheduler(t *testing.T) {
	pool := worker.NewPool(1, 10)
	pool.Start()
	defer pool.Stop()

	sched := New(pool)
	defer sched.Stop()

	job := &signalJob{done: make(chan struct{}, 10)}
	sched.Schedule("signal", 10*time.Millisecond, job)

	timeout := time.After(time.Second)
	runCount := 0
	for runCount < 2 {
		select {
		case <-job.done:
			runCount++
		case <-timeout:
			t.Fatal("Timeout waiting for job execution")
		}
	}

	assert.GreaterOrEqual(t, runCount, 2)
}

func TestScheduler_StopIsIdempotent(t *testing.T) {
	pool := worker.NewPool(1, 1)
	sched := New(pool)
	sched.Schedule("noop", time.Hour, &signalJob{done: make(chan struct{}, 1)})

	sched.Stop()
	assert.NotPanics(t, sched.Stop)
}

func TestScheduler_StopReleasesTickers(t *testing.T) {
	leaktest.CheckNoGoroutineLeak(t, func() {
		pool := worker.NewPool(1, 1)
		sched := New(pool)
		sched.Schedule("a", time.Hour, &signalJob{done: make(chan struct{}, 1)})
		sched.Schedule("b", time.Hour, &signalJob{done: make(chan struct{}, 1)})
		sched.Stop()
	})
}
