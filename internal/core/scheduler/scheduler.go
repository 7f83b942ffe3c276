package scheduler

import (
	"context"
	"time"

	"shipment-sync/internal/core/logger"

	"go.uber.org/zap"
)

// Job is one unit of scheduled work.
type Job func(ctx context.Context) error

// Scheduler runs a named job at a fixed interval. Job errors are logged and
// swallowed: a scheduled run has no caller to report to.
type Scheduler struct {
	name     string
	interval time.Duration
	job      Job
	logger   *zap.Logger
	done     chan struct{}
}

// New creates a new Scheduler for the given job.
func New(name string, interval time.Duration, job Job) *Scheduler {
	return &Scheduler{
		name:     name,
		interval: interval,
		job:      job,
		logger:   logger.Named("scheduler"),
		done:     make(chan struct{}),
	}
}

// Start launches the periodic loop in a goroutine. The loop stops when ctx
// is cancelled.
func (s *Scheduler) Start(ctx context.Context) {
	ticker := time.NewTicker(s.interval)

	go func() {
		defer ticker.Stop()
		defer close(s.done)

		s.logger.Info("Scheduler started",
			zap.String("job", s.name),
			zap.Duration("interval", s.interval),
		)

		for {
			select {
			case <-ctx.Done():
				s.logger.Info("Scheduler stopped", zap.String("job", s.name))
				return
			case <-ticker.C:
				s.runOnce(ctx)
			}
		}
	}()
}

// Wait blocks until the scheduler loop has exited.
func (s *Scheduler) Wait() {
	<-s.done
}

// runOnce executes the job, logging and swallowing any error.
func (s *Scheduler) runOnce(ctx context.Context) {
	start := time.Now()

	if err := s.job(ctx); err != nil {
		s.logger.Error("Scheduled run failed",
			zap.String("job", s.name),
			zap.Duration("duration", time.Since(start)),
			zap.Error(err),
		)
		return
	}

	s.logger.Debug("Scheduled run completed",
		zap.String("job", s.name),
		zap.Duration("duration", time.Since(start)),
	)
}
