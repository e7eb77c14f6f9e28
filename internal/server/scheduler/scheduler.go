// Package scheduler runs named periodic jobs until its context is cancelled.
package scheduler

import (
	"context"
	"sync"
	"time"

	"github.com/dmitrijs2005/satstream/internal/logging"
)

// Job is one unit of periodic work. A returned error is logged; it never
// stops the job.
type Job struct {
	Name     string
	Interval time.Duration
	Run      func(ctx context.Context) error
}

type Scheduler struct {
	jobs   []Job
	logger logging.Logger
	wg     sync.WaitGroup
}

func New(logger logging.Logger, jobs ...Job) *Scheduler {
	return &Scheduler{jobs: jobs, logger: logger.With("module", "scheduler")}
}

// Start launches one goroutine per job. Jobs with a non-positive interval are
// skipped.
func (s *Scheduler) Start(ctx context.Context) {
	for _, j := range s.jobs {
		if j.Interval <= 0 {
			s.logger.Warn(ctx, "job disabled", "job", j.Name)
			continue
		}
		s.wg.Add(1)
		go s.loop(ctx, j)
	}
}

// Wait blocks until every job goroutine has returned.
func (s *Scheduler) Wait() {
	s.wg.Wait()
}

func (s *Scheduler) loop(ctx context.Context, j Job) {
	defer s.wg.Done()

	ticker := time.NewTicker(j.Interval)
	defer ticker.Stop()

	s.logger.Info(ctx, "job started", "job", j.Name, "interval", j.Interval.String())
	for {
		select {
		case <-ctx.Done():
			s.logger.Info(ctx, "job stopped", "job", j.Name)
			return
		case <-ticker.C:
			s.runOnce(ctx, j)
		}
	}
}

func (s *Scheduler) runOnce(ctx context.Context, j Job) {
	defer func() {
		if r := recover(); r != nil {
			s.logger.Error(ctx, "job panicked", "job", j.Name, "panic", r)
		}
	}()
	if err := j.Run(ctx); err != nil {
		s.logger.Error(ctx, "job failed", "job", j.Name, "error", err)
	}
}
