package config

import (
	"fmt"
	"log/slog"
	"net/url"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	FormatJSONL = "jsonl"
	FormatJSON  = "json"
)

// Config is the full runtime configuration. Global crawl settings apply to
// every site unless the site entry overrides them.
type Config struct {
	LogLevel       string                `yaml:"log_level"`
	UserAgent      string                `yaml:"user_agent"`
	RequestTimeout Duration              `yaml:"request_timeout"`
	MaxAttempts    int                   `yaml:"max_attempts"`
	DelayMin       Duration              `yaml:"delay_min"`
	DelayMax       Duration              `yaml:"delay_max"`
	RespectRobots  bool                  `yaml:"respect_robots"`
	Database       DatabaseConfig        `yaml:"database"`
	Server         ServerConfig          `yaml:"server"`
	Sites          map[string]SiteConfig `yaml:"sites"`
}

type DatabaseConfig struct {
	URL        string `yaml:"url"`
	SchemaPath string `yaml:"schema_path"`
}

type ServerConfig struct {
	Port string `yaml:"port"`
	// ScrapeInterval re-runs every enabled site from the server. Zero disables it.
	ScrapeInterval Duration `yaml:"scrape_interval"`
}

// SiteConfig holds one site's settings. Unset fields inherit the global value.
type SiteConfig struct {
	BaseURL   string    `yaml:"base_url"`
	Pages     int       `yaml:"pages"`
	URLs      []string  `yaml:"urls"`
	Output    string    `yaml:"output"`
	Format    string    `yaml:"format"`
	UserAgent string    `yaml:"user_agent"`
	DelayMin  *Duration `yaml:"delay_min"`
	DelayMax  *Duration `yaml:"delay_max"`
	Disabled  bool      `yaml:"disabled"`
}

// SiteSettings is a site entry with inheritance applied.
type SiteSettings struct {
	Name           string
	BaseURL        string
	Pages          int
	URLs           []string
	Output         string
	Format         string
	UserAgent      string
	RequestTimeout time.Duration
	MaxAttempts    int
	DelayMin       time.Duration
	DelayMax       time.Duration
	RespectRobots  bool
}

func Default() *Config {
	return &Config{
		LogLevel:       "info",
		UserAgent:      "Mozilla/5.0 (compatible; RecipeScraper/1.0; +https://yourdomain.com/bot)",
		RequestTimeout: DurationFrom(10 * time.Second),
		MaxAttempts:    1,
		DelayMin:       DurationFrom(1 * time.Second),
		DelayMax:       DurationFrom(3 * time.Second),
		Database: DatabaseConfig{
			SchemaPath: filepath.Join("internal", "store", "schema.sql"),
		},
		Server: ServerConfig{Port: "8080"},
		Sites:  defaultSites(),
	}
}

// Load reads path over the defaults, applies environment overrides and
// validates the result. An empty path loads defaults only.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config: %w", err)
		}
		if err := cfg.merge(data); err != nil {
			return nil, err
		}
	}
	cfg.applyEnv(os.Getenv)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) merge(data []byte) error {
	defaults := c.Sites
	c.Sites = nil
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("%w: parse yaml: %v", ErrInvalid, err)
	}
	overrides := c.Sites
	c.Sites = defaults
	if c.Sites == nil {
		c.Sites = map[string]SiteConfig{}
	}
	for name, site := range overrides {
		c.Sites[name] = mergeSite(c.Sites[name], site)
	}
	return nil
}

func mergeSite(base, override SiteConfig) SiteConfig {
	if override.BaseURL != "" {
		base.BaseURL = override.BaseURL
	}
	if override.Pages > 0 {
		base.Pages = override.Pages
	}
	if override.URLs != nil {
		base.URLs = override.URLs
	}
	if override.Output != "" {
		base.Output = override.Output
	}
	if override.Format != "" {
		base.Format = override.Format
	}
	if override.UserAgent != "" {
		base.UserAgent = override.UserAgent
	}
	if override.DelayMin != nil {
		base.DelayMin = override.DelayMin
	}
	if override.DelayMax != nil {
		base.DelayMax = override.DelayMax
	}
	base.Disabled = override.Disabled
	return base
}

func (c *Config) applyEnv(getenv func(string) string) {
	if v := getenv("DATABASE_URL"); v != "" {
		c.Database.URL = v
	}
	if v := getenv("PORT"); v != "" {
		c.Server.Port = v
	}
	if v := getenv("LOG_LEVEL"); v != "" {
		c.LogLevel = v
	}
}

func (c *Config) Validate() error {
	if c.MaxAttempts < 1 {
		return fmt.Errorf("%w: max_attempts must be >= 1", ErrInvalid)
	}
	if c.RequestTimeout.Duration <= 0 {
		return fmt.Errorf("%w: request_timeout must be positive", ErrInvalid)
	}
	if c.Server.ScrapeInterval.Duration < 0 {
		return fmt.Errorf("%w: server.scrape_interval must not be negative", ErrInvalid)
	}
	switch strings.ToLower(c.LogLevel) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("%w: log_level %q", ErrInvalid, c.LogLevel)
	}
	for _, name := range c.SiteNames() {
		s, err := c.Site(name)
		if err != nil {
			return err
		}
		if err := s.validate(); err != nil {
			return err
		}
	}
	return nil
}

// Level maps log_level onto a slog level.
func (c *Config) Level() slog.Level {
	switch strings.ToLower(c.LogLevel) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// SiteNames returns the enabled site names in sorted order.
func (c *Config) SiteNames() []string {
	names := make([]string, 0, len(c.Sites))
	for name, s := range c.Sites {
		if s.Disabled {
			continue
		}
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Site resolves the effective settings for name.
func (c *Config) Site(name string) (SiteSettings, error) {
	site, ok := c.Sites[name]
	if !ok {
		return SiteSettings{}, fmt.Errorf("%w: %s", ErrUnknownSite, name)
	}
	s := SiteSettings{
		Name:           name,
		BaseURL:        strings.TrimRight(site.BaseURL, "/"),
		Pages:          site.Pages,
		URLs:           site.URLs,
		Output:         ExpandPath(site.Output),
		Format:         strings.ToLower(site.Format),
		UserAgent:      c.UserAgent,
		RequestTimeout: c.RequestTimeout.Duration,
		MaxAttempts:    c.MaxAttempts,
		DelayMin:       c.DelayMin.Duration,
		DelayMax:       c.DelayMax.Duration,
		RespectRobots:  c.RespectRobots,
	}
	if site.UserAgent != "" {
		s.UserAgent = site.UserAgent
	}
	if site.DelayMin != nil {
		s.DelayMin = site.DelayMin.Duration
	}
	if site.DelayMax != nil {
		s.DelayMax = site.DelayMax.Duration
	}
	if s.Format == "" {
		s.Format = FormatJSONL
	}
	return s, nil
}

func (s SiteSettings) validate() error {
	if s.DelayMin < 0 || s.DelayMax < 0 {
		return fmt.Errorf("%w: site %s: negative delay", ErrInvalid, s.Name)
	}
	if s.DelayMax < s.DelayMin {
		return fmt.Errorf("%w: site %s: delay_max %s < delay_min %s", ErrInvalid, s.Name, s.DelayMax, s.DelayMin)
	}
	if s.BaseURL == "" {
		return fmt.Errorf("%w: site %s: base_url is required", ErrInvalid, s.Name)
	}
	if u, err := url.Parse(s.BaseURL); err != nil || u.Host == "" {
		return fmt.Errorf("%w: site %s: base_url %q", ErrInvalid, s.Name, s.BaseURL)
	}
	if s.Output == "" {
		return fmt.Errorf("%w: site %s: output is required", ErrInvalid, s.Name)
	}
	if s.Format != FormatJSONL && s.Format != FormatJSON {
		return fmt.Errorf("%w: site %s: format %q", ErrInvalid, s.Name, s.Format)
	}
	return nil
}

// ExpandPath replaces a leading "~/" with the user's home directory.
func ExpandPath(p string) string {
	if p != "~" && !strings.HasPrefix(p, "~/") {
		return p
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return p
	}
	return filepath.Join(home, strings.TrimPrefix(p, "~"))
}
