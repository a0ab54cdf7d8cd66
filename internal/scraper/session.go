package scraper

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"time"

	"github.com/baxromumarov/recipe-hunter/internal/content"
	"github.com/baxromumarov/recipe-hunter/internal/httpx"
	"github.com/baxromumarov/recipe-hunter/internal/observability"
)

// Sleeper blocks for d or until ctx is done.
type Sleeper func(ctx context.Context, d time.Duration) error

// Session is the network state owned by a single driver: its fetcher, the
// resolved delay bounds and the pacing clock. Sessions are not shared.
type Session struct {
	name     string
	baseURL  string
	fetcher  PageFetcher
	delayMin time.Duration
	delayMax time.Duration
	sleep    Sleeper
	rng      *rand.Rand
	logger   *slog.Logger
}

// SessionOption configures a Session.
type SessionOption func(*Session)

func WithSleeper(fn Sleeper) SessionOption {
	return func(s *Session) {
		if fn != nil {
			s.sleep = fn
		}
	}
}

func WithRand(r *rand.Rand) SessionOption {
	return func(s *Session) {
		if r != nil {
			s.rng = r
		}
	}
}

func WithSessionLogger(l *slog.Logger) SessionOption {
	return func(s *Session) {
		if l != nil {
			s.logger = l
		}
	}
}

// NewSession builds a session pacing requests between delayMin and delayMax.
// A delayMax below delayMin is raised to delayMin.
func NewSession(name, baseURL string, fetcher PageFetcher, delayMin, delayMax time.Duration, opts ...SessionOption) *Session {
	if delayMin < 0 {
		delayMin = 0
	}
	if delayMax < delayMin {
		delayMax = delayMin
	}
	s := &Session{
		name:     name,
		baseURL:  baseURL,
		fetcher:  fetcher,
		delayMin: delayMin,
		delayMax: delayMax,
		sleep:    httpx.SleepWithContext,
		rng:      rand.New(rand.NewPCG(uint64(time.Now().UnixNano()), 0x5eed)),
		logger:   slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Session) Name() string { return s.name }

func (s *Session) BaseURL() string { return s.baseURL }

func (s *Session) Logger() *slog.Logger { return s.logger }

func (s *Session) delays() (time.Duration, time.Duration) {
	return s.delayMin, s.delayMax
}

func (s *Session) component() string {
	return "scraper_" + s.name
}

// Fetch retrieves and parses rawURL. Network failures come back as
// *httpx.FetchError; a body that cannot be parsed is a parse error.
func (s *Session) Fetch(ctx context.Context, rawURL string) (*content.Document, error) {
	start := time.Now()
	body, _, err := s.fetcher.FetchBytes(ctx, rawURL)
	observability.ObserveFetchDuration(s.component(), time.Since(start).Seconds())
	if err != nil {
		return nil, err
	}
	observability.IncPagesFetched(s.component())

	doc, err := content.ParseBytes(body)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", rawURL, err)
	}
	return doc, nil
}

// NextDelay draws a duration uniformly from [delayMin, delayMax].
func (s *Session) NextDelay() time.Duration {
	span := s.delayMax - s.delayMin
	if span <= 0 {
		return s.delayMin
	}
	return s.delayMin + time.Duration(s.rng.Int64N(int64(span)+1))
}

// Pause sleeps for NextDelay.
func (s *Session) Pause(ctx context.Context) error {
	return s.sleep(ctx, s.NextDelay())
}
