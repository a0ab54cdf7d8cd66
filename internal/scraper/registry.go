package scraper

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/baxromumarov/recipe-hunter/internal/config"
)

var ErrUnknownSite = errors.New("unknown site")

// Factory builds a ready-to-run job from its configuration.
type Factory func(ctx context.Context, cfg Config, opts ...DriverOption) Job

// Registry maps site names to job factories.
type Registry struct {
	factories map[string]Factory
}

func NewRegistry() *Registry {
	return &Registry{factories: make(map[string]Factory)}
}

// DefaultRegistry knows every bundled site.
func DefaultRegistry() *Registry {
	r := NewRegistry()
	r.RegisterSite("epicurious", func(cfg Config) Site { return NewEpicurious(cfg.Pages) })
	r.Register("cookpad", func(_ context.Context, cfg Config, opts ...DriverOption) Job {
		return NewCookpad(cfg, opts...)
	})
	r.Register("kitchenaid", func(_ context.Context, cfg Config, opts ...DriverOption) Job {
		return NewKitchenAid(cfg, opts...)
	})
	return r
}

func (r *Registry) Register(name string, f Factory) {
	r.factories[name] = f
}

// RegisterSite registers a Site that runs under the shared Driver.
func (r *Registry) RegisterSite(name string, build func(Config) Site) {
	r.Register(name, func(ctx context.Context, cfg Config, opts ...DriverOption) Job {
		return NewDriver(ctx, cfg, build(cfg), opts...)
	})
}

func (r *Registry) New(ctx context.Context, name string, cfg Config, opts ...DriverOption) (Job, error) {
	f, ok := r.factories[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownSite, name)
	}
	if cfg.Name == "" {
		cfg.Name = name
	}
	return f(ctx, cfg, opts...), nil
}

func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.factories))
	for name := range r.factories {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ConfigFromSettings converts resolved site settings into a driver Config.
func ConfigFromSettings(s config.SiteSettings) Config {
	return Config{
		Name:          s.Name,
		BaseURL:       s.BaseURL,
		UserAgent:     s.UserAgent,
		Timeout:       s.RequestTimeout,
		MaxAttempts:   s.MaxAttempts,
		DelayMin:      s.DelayMin,
		DelayMax:      s.DelayMax,
		RespectRobots: s.RespectRobots,
		Pages:         s.Pages,
		URLs:          s.URLs,
	}
}
