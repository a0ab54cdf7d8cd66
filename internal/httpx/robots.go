package httpx

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/temoto/robotstxt"

	"github.com/baxromumarov/recipe-hunter/internal/urlutil"
)

// CrawlDelayResolver reads the advisory Crawl-delay from a site's robots.txt.
type CrawlDelayResolver struct {
	client *http.Client
	ua     string
	logger *slog.Logger
}

func NewCrawlDelayResolver(client *http.Client, userAgent string, logger *slog.Logger) *CrawlDelayResolver {
	if client == nil {
		client = &http.Client{Timeout: DefaultTimeout}
	}
	if userAgent == "" {
		userAgent = DefaultUserAgent
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &CrawlDelayResolver{client: client, ua: userAgent, logger: logger}
}

// Resolve returns the crawl delay that applies to the resolver's user agent.
// The second result is false when robots.txt is unreachable, malformed,
// returns a non-2xx status or declares no delay. Errors never escape.
func (r *CrawlDelayResolver) Resolve(ctx context.Context, baseURL string) (time.Duration, bool) {
	robotsURL := urlutil.RobotsURL(baseURL)
	data, err := r.fetch(ctx, robotsURL)
	if err != nil {
		r.logger.Debug("could not read robots.txt", "url", robotsURL, "error", err)
		return 0, false
	}
	if data == nil {
		return 0, false
	}
	group := data.FindGroup(r.ua)
	if group == nil || group.CrawlDelay <= 0 {
		return 0, false
	}
	return group.CrawlDelay, true
}

func (r *CrawlDelayResolver) fetch(ctx context.Context, robotsURL string) (*robotstxt.RobotsData, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, robotsURL, http.NoBody)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", r.ua)

	resp, err := r.client.Do(req)
	if err != nil {
		return nil, &FetchError{URL: robotsURL, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		r.logger.Debug("robots.txt not available", "url", robotsURL, "status", resp.StatusCode)
		return nil, nil
	}

	return robotstxt.FromResponse(resp)
}
