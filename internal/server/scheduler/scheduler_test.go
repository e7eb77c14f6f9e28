package scheduler

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/dmitrijs2005/satstream/internal/logging"
	"github.com/stretchr/testify/assert"
)

func TestScheduler_RunsJobsUntilCancelled(t *testing.T) {
	var ticks, failures atomic.Int32

	s := New(logging.Nop(),
		Job{Name: "tick", Interval: 5 * time.Millisecond, Run: func(context.Context) error {
			ticks.Add(1)
			return nil
		}},
		Job{Name: "failing", Interval: 5 * time.Millisecond, Run: func(context.Context) error {
			failures.Add(1)
			return errors.New("boom")
		}},
	)

	ctx, cancel := context.WithCancel(context.Background())
	s.Start(ctx)

	assert.Eventually(t, func() bool { return ticks.Load() >= 3 && failures.Load() >= 3 }, time.Second, time.Millisecond)

	cancel()
	s.Wait()

	stopped := ticks.Load()
	time.Sleep(20 * time.Millisecond)
	assert.Equal(t, stopped, ticks.Load())
}

func TestScheduler_PanicDoesNotStopJob(t *testing.T) {
	var runs atomic.Int32

	s := New(logging.Nop(), Job{Name: "panicky", Interval: 2 * time.Millisecond, Run: func(context.Context) error {
		runs.Add(1)
		panic("bad")
	}})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	s.Start(ctx)

	assert.Eventually(t, func() bool { return runs.Load() >= 2 }, time.Second, time.Millisecond)
	cancel()
	s.Wait()
}

func TestScheduler_SkipsDisabledJobs(t *testing.T) {
	called := false
	s := New(logging.Nop(), Job{Name: "off", Interval: 0, Run: func(context.Context) error {
		called = true
		return nil
	}})

	ctx, cancel := context.WithCancel(context.Background())
	s.Start(ctx)
	cancel()
	s.Wait()
	assert.False(t, called)
}
