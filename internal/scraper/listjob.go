package scraper

import (
	"context"
	"iter"
	"log/slog"

	"github.com/baxromumarov/recipe-hunter/internal/content"
	"github.com/baxromumarov/recipe-hunter/internal/observability"
)

// pageParser turns one fetched page into a record.
type pageParser func(doc *content.Document, pageURL string) Recipe

// newListSession builds the session used by the fixed-list scrapers. These
// sites are not consulted for robots.txt.
func newListSession(cfg Config, opts []DriverOption) *Session {
	deps := &driverDeps{}
	for _, opt := range opts {
		opt(deps)
	}
	logger := deps.logger
	if logger == nil {
		logger = slog.Default()
	}
	logger = logger.With("site", cfg.Name)
	if deps.fetcher == nil {
		deps.fetcher = NewFetcher(cfg, 0)
	}
	return NewSession(cfg.Name, cfg.BaseURL, deps.fetcher, cfg.DelayMin, cfg.DelayMax,
		WithSleeper(deps.sleeper),
		WithRand(deps.rng),
		WithSessionLogger(logger),
	)
}

// scrapeList fetches each URL in order and yields the parsed record. A
// failed fetch skips the URL.
func scrapeList(ctx context.Context, sess *Session, urls []string, parse pageParser) iter.Seq[Recipe] {
	return func(yield func(Recipe) bool) {
		logger := sess.Logger()
		component := sess.component()
		for _, pageURL := range urls {
			if ctx.Err() != nil {
				return
			}
			logger.Info("scraping", "url", pageURL)
			doc, err := sess.Fetch(ctx, pageURL)
			if err != nil {
				logger.Warn("error scraping", "url", pageURL, "error", err)
				observability.IncError(observability.ClassifyScrapeError(err), component)
				observability.IncPageSkipped(component)
			} else {
				rec := parse(doc, pageURL)
				observability.IncRecipeExtracted(sess.Name())
				if !yield(rec) {
					return
				}
			}
			if err := sess.Pause(ctx); err != nil {
				return
			}
		}
	}
}

func textsOf(nodes []content.Node) []string {
	out := make([]string, 0, len(nodes))
	for _, n := range nodes {
		out = append(out, n.Text())
	}
	return out
}

func firstText(doc *content.Document, selector string) *string {
	n, ok := doc.First(selector)
	if !ok {
		return nil
	}
	t := n.Text()
	return &t
}
