package core

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/baxromumarov/recipe-hunter/internal/observability"
	"github.com/baxromumarov/recipe-hunter/internal/output"
	"github.com/baxromumarov/recipe-hunter/internal/scraper"
)

// Runner drains a job into one or more sinks.
type Runner struct {
	logger *slog.Logger
}

func NewRunner(logger *slog.Logger) *Runner {
	if logger == nil {
		logger = slog.Default()
	}
	return &Runner{logger: logger}
}

// Run writes every record the job yields to each sink, then closes the
// sinks. A failed write is logged and counted; it does not stop the run.
// Each sink's "saved" log line reports only the writes it accepted. The
// returned count is the number of records the job produced.
func (r *Runner) Run(ctx context.Context, job scraper.Job, sinks ...output.Sink) (int, error) {
	logger := r.logger.With("site", job.Name())
	component := "sink_" + job.Name()

	total := 0
	saved := make([]int, len(sinks))
	for rec := range job.Scrape(ctx) {
		total++
		for i, sink := range sinks {
			if err := sink.Write(ctx, rec); err != nil {
				logger.Error("failed to write recipe", "url", rec.URL, "sink", location(sink), "error", err)
				observability.IncError(observability.ErrorStore, component)
				continue
			}
			saved[i]++
		}
	}

	var errs []error
	for i, sink := range sinks {
		if err := sink.Close(); err != nil {
			errs = append(errs, fmt.Errorf("close %s: %w", location(sink), err))
			continue
		}
		logger.Info(fmt.Sprintf("saved %d recipes to %s", saved[i], location(sink)), "count", saved[i])
	}
	return total, errors.Join(errs...)
}

func location(s output.Sink) string {
	if l, ok := s.(output.Locator); ok {
		return l.Location()
	}
	return fmt.Sprintf("%T", s)
}
