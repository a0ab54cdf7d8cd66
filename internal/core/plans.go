package core

import (
	"context"
	"log/slog"

	"github.com/baxromumarov/recipe-hunter/internal/config"
	"github.com/baxromumarov/recipe-hunter/internal/output"
	"github.com/baxromumarov/recipe-hunter/internal/scraper"
	"github.com/baxromumarov/recipe-hunter/internal/store"
)

// Plan pairs a ready job with the settings it was built from.
type Plan struct {
	Job      scraper.Job
	Settings config.SiteSettings
}

// BuildPlans builds a job for each named site, or for every enabled site
// when names is empty.
func BuildPlans(ctx context.Context, cfg *config.Config, reg *scraper.Registry, names []string, logger *slog.Logger, opts ...scraper.DriverOption) ([]Plan, error) {
	if len(names) == 0 {
		names = cfg.SiteNames()
	}
	if logger != nil {
		opts = append([]scraper.DriverOption{scraper.WithLogger(logger)}, opts...)
	}

	plans := make([]Plan, 0, len(names))
	for _, name := range names {
		settings, err := cfg.Site(name)
		if err != nil {
			return nil, err
		}
		job, err := reg.New(ctx, name, scraper.ConfigFromSettings(settings), opts...)
		if err != nil {
			return nil, err
		}
		plans = append(plans, Plan{Job: job, Settings: settings})
	}
	return plans, nil
}

// OpenSinks opens the site's output file and, when st is set, a store sink.
func OpenSinks(settings config.SiteSettings, st *store.Store) ([]output.Sink, error) {
	file, err := output.OpenFile(settings.Output, settings.Format)
	if err != nil {
		return nil, err
	}
	sinks := []output.Sink{file}
	if st != nil {
		sinks = append(sinks, store.NewSink(st))
	}
	return sinks, nil
}
