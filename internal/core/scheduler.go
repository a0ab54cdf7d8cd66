package core

import (
	"context"
	"log/slog"
	"time"

	"github.com/baxromumarov/recipe-hunter/internal/output"
	"github.com/baxromumarov/recipe-hunter/internal/scraper"
)

// JobSource builds the jobs for one scheduled pass. It is called on every
// tick so each pass gets fresh sessions and crawl delays.
type JobSource func(ctx context.Context) []scraper.Job

// SinkSource builds the sinks a job writes to.
type SinkSource func(job scraper.Job) ([]output.Sink, error)

// SchedulerService re-runs every configured site at a fixed interval.
type SchedulerService struct {
	runner   *Runner
	jobs     JobSource
	sinks    SinkSource
	interval time.Duration
	logger   *slog.Logger
}

func NewSchedulerService(runner *Runner, jobs JobSource, sinks SinkSource, interval time.Duration, logger *slog.Logger) *SchedulerService {
	if logger == nil {
		logger = slog.Default()
	}
	return &SchedulerService{runner: runner, jobs: jobs, sinks: sinks, interval: interval, logger: logger}
}

// Start runs one pass immediately and then one per interval until ctx is
// done. A non-positive interval does nothing.
func (s *SchedulerService) Start(ctx context.Context) {
	if s.interval <= 0 {
		return
	}
	go s.scrapeLoop(ctx)
}

func (s *SchedulerService) scrapeLoop(ctx context.Context) {
	s.RunOnce(ctx)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.RunOnce(ctx)
		}
	}
}

// RunOnce runs every job sequentially and returns the total record count.
func (s *SchedulerService) RunOnce(ctx context.Context) int {
	total := 0
	for _, job := range s.jobs(ctx) {
		if ctx.Err() != nil {
			return total
		}
		sinks, err := s.sinks(job)
		if err != nil {
			s.logger.Error("scheduler: failed to open sinks", "site", job.Name(), "error", err)
			continue
		}
		n, err := s.runner.Run(ctx, job, sinks...)
		if err != nil {
			s.logger.Error("scheduler: run failed", "site", job.Name(), "error", err)
		}
		total += n
	}
	s.logger.Info("scheduler: pass complete", "recipes", total)
	return total
}
