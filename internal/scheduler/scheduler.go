package scheduler

import (
	"context"
	"time"

	"github.com/rs/zerolog"
)

type ReportRunner interface {
	Execute(ctx context.Context) error
}

// Scheduler invokes the report cycle on a fixed cadence. A failed cycle
// is logged and skipped; there is no retry inside a tick.
type Scheduler struct {
	runner   ReportRunner
	interval time.Duration
	log      zerolog.Logger
}

func New(runner ReportRunner, interval time.Duration, log zerolog.Logger) *Scheduler {
	if interval <= 0 {
		interval = time.Hour
	}
	return &Scheduler{
		runner:   runner,
		interval: interval,
		log:      log,
	}
}

// Run blocks until ctx is cancelled, firing one report cycle per tick.
func (s *Scheduler) Run(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.log.Info().Dur("interval", s.interval).Msg("report scheduler started")

	for {
		select {
		case <-ctx.Done():
			s.log.Info().Msg("report scheduler stopped")
			return
		case <-ticker.C:
			if err := s.runner.Execute(ctx); err != nil {
				s.log.Error().Err(err).Msg("report cycle failed, waiting for next tick")
			}
		}
	}
}
