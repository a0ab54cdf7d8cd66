package scraper

import (
	"context"
	"fmt"
	"iter"
	"log/slog"
	"math/rand/v2"
	"net/http"
	"net/url"
	"time"

	"github.com/baxromumarov/recipe-hunter/internal/content"
	"github.com/baxromumarov/recipe-hunter/internal/httpx"
	"github.com/baxromumarov/recipe-hunter/internal/observability"
)

// Config is the per-driver configuration. Each driver gets its own copy so
// sites can be tuned independently.
type Config struct {
	Name          string
	BaseURL       string
	UserAgent     string
	Timeout       time.Duration
	MaxAttempts   int
	DelayMin      time.Duration
	DelayMax      time.Duration
	RespectRobots bool
	// Pages is the number of listing pages a site walks, when it paginates.
	Pages int
	// URLs is the fixed target list for list-driven jobs.
	URLs []string
}

// Driver runs the shared scrape procedure for one Site.
type Driver struct {
	cfg     Config
	site    Site
	session *Session
	logger  *slog.Logger
}

type driverDeps struct {
	fetcher  PageFetcher
	resolver DelayResolver
	sleeper  Sleeper
	rng      *rand.Rand
	logger   *slog.Logger
}

// hostLimiter is implemented by fetchers that throttle per host.
type hostLimiter interface {
	SetHostLimit(host string, per time.Duration)
}

// DriverOption replaces one of the driver's collaborators.
type DriverOption func(*driverDeps)

func WithFetcher(f PageFetcher) DriverOption {
	return func(d *driverDeps) { d.fetcher = f }
}

func WithResolver(r DelayResolver) DriverOption {
	return func(d *driverDeps) { d.resolver = r }
}

func WithDriverSleeper(fn Sleeper) DriverOption {
	return func(d *driverDeps) { d.sleeper = fn }
}

func WithDriverRand(r *rand.Rand) DriverOption {
	return func(d *driverDeps) { d.rng = r }
}

func WithLogger(l *slog.Logger) DriverOption {
	return func(d *driverDeps) { d.logger = l }
}

// NewDriver resolves the site's crawl delay once and builds the session the
// driver will use for its whole lifetime. When robots.txt declares no delay,
// cfg.DelayMin is used. A declared delay also becomes the fetcher's floor for
// the site's host.
func NewDriver(ctx context.Context, cfg Config, site Site, opts ...DriverOption) *Driver {
	deps := &driverDeps{}
	for _, opt := range opts {
		opt(deps)
	}
	logger := deps.logger
	if logger == nil {
		logger = slog.Default()
	}
	logger = logger.With("site", cfg.Name)

	if deps.resolver == nil {
		deps.resolver = httpx.NewCrawlDelayResolver(&http.Client{Timeout: timeoutOrDefault(cfg.Timeout)}, cfg.UserAgent, logger)
	}
	if deps.fetcher == nil {
		deps.fetcher = NewFetcher(cfg, cfg.DelayMin)
	}

	delayMin := cfg.DelayMin
	if d, ok := deps.resolver.Resolve(ctx, cfg.BaseURL); ok {
		logger.Info("using robots.txt crawl delay", "delay", d)
		delayMin = d
		if hl, ok := deps.fetcher.(hostLimiter); ok {
			if u, err := url.Parse(cfg.BaseURL); err == nil && u.Host != "" {
				hl.SetHostLimit(u.Host, d)
			}
		}
	}

	session := NewSession(cfg.Name, cfg.BaseURL, deps.fetcher, delayMin, cfg.DelayMax,
		WithSleeper(deps.sleeper),
		WithRand(deps.rng),
		WithSessionLogger(logger),
	)

	return &Driver{cfg: cfg, site: site, session: session, logger: logger}
}

// NewFetcher builds the colly fetcher described by cfg.
func NewFetcher(cfg Config, minInterval time.Duration) *httpx.CollyFetcher {
	return httpx.NewCollyFetcher(cfg.UserAgent,
		httpx.WithTimeout(cfg.Timeout),
		httpx.WithAttempts(cfg.MaxAttempts),
		httpx.WithRobots(cfg.RespectRobots),
		httpx.WithMinInterval(minInterval),
	)
}

func timeoutOrDefault(d time.Duration) time.Duration {
	if d <= 0 {
		return httpx.DefaultTimeout
	}
	return d
}

func (d *Driver) Name() string { return d.cfg.Name }

// Scrape collects the site's recipe URLs once and yields a record for every
// page that carries a JSON-LD Recipe. Failures on a single page are logged
// and skipped; the pause after each page happens whatever its outcome.
func (d *Driver) Scrape(ctx context.Context) iter.Seq[Recipe] {
	return func(yield func(Recipe) bool) {
		d.logger.Info("collecting recipe urls", "base_url", d.cfg.BaseURL)
		urls, err := d.collect(ctx)
		if err != nil {
			d.logger.Error("collecting recipe urls failed", "error", err)
			observability.IncError(observability.ClassifyScrapeError(err), d.session.component())
		}
		d.logger.Info("found recipes", "count", len(urls), "base_url", d.cfg.BaseURL)
		observability.AddURLsDiscovered(d.session.component(), len(urls))

		for _, pageURL := range urls.Sorted() {
			if ctx.Err() != nil {
				return
			}
			rec, ok := d.scrapeOne(ctx, pageURL)
			if ok && !yield(rec) {
				return
			}
			if err := d.session.Pause(ctx); err != nil {
				return
			}
		}
	}
}

func (d *Driver) collect(ctx context.Context) (urls URLSet, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("collect panicked: %v", r)
		}
	}()
	urls, err = d.site.CollectRecipeURLs(ctx, d.session)
	if urls == nil {
		urls = URLSet{}
	}
	return urls, err
}

func (d *Driver) scrapeOne(ctx context.Context, pageURL string) (rec Recipe, ok bool) {
	component := d.session.component()
	defer func() {
		if r := recover(); r != nil {
			d.logger.Error("unexpected error", "url", pageURL, "error", fmt.Sprint(r))
			observability.IncError(observability.ErrorUnknown, component)
			observability.IncPageSkipped(component)
			ok = false
		}
	}()

	doc, err := d.session.Fetch(ctx, pageURL)
	if err != nil {
		if observability.IsNetworkError(err) {
			d.logger.Warn("network error fetching", "url", pageURL, "error", err)
		} else {
			d.logger.Error("unexpected error", "url", pageURL, "error", err)
		}
		observability.IncError(observability.ClassifyScrapeError(err), component)
		observability.IncPageSkipped(component)
		return Recipe{}, false
	}

	data, found := content.ExtractRecipe(doc)
	if !found {
		d.logger.Debug("no JSON-LD recipe", "url", pageURL)
		observability.IncPageSkipped(component)
		return Recipe{}, false
	}

	rec = BuildRecipe(d.cfg.BaseURL, pageURL, data, d.site.ExtractComments(doc))
	observability.IncRecipeExtracted(d.cfg.Name)
	return rec, true
}

// BuildRecipe assembles a record from a JSON-LD Recipe object.
func BuildRecipe(source, pageURL string, data map[string]any, comments []Comment) Recipe {
	rec := Recipe{
		Source:       source,
		URL:          pageURL,
		Ingredients:  content.StringList(data["recipeIngredient"]),
		Instructions: content.FlattenInstructions(data["recipeInstructions"]),
		Comments:     comments,
	}
	if name, ok := content.StringField(data["name"]); ok {
		rec.Title = &name
	}
	if rec.Comments == nil {
		rec.Comments = []Comment{}
	}
	return rec
}
