package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestDefaultsValidate(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, []string{"cookpad", "epicurious", "kitchenaid"}, cfg.SiteNames())

	epi, err := cfg.Site("epicurious")
	require.NoError(t, err)
	assert.Equal(t, "https://www.epicurious.com", epi.BaseURL)
	assert.Equal(t, 10, epi.Pages)
	assert.Equal(t, time.Second, epi.DelayMin)
	assert.Equal(t, 3*time.Second, epi.DelayMax)
	assert.Equal(t, FormatJSONL, epi.Format)
	assert.Equal(t, 1, epi.MaxAttempts)

	kit, err := cfg.Site("kitchenaid")
	require.NoError(t, err)
	assert.Equal(t, FormatJSON, kit.Format)
	assert.Zero(t, kit.DelayMin)
	assert.Len(t, kit.URLs, 37)

	cook, err := cfg.Site("cookpad")
	require.NoError(t, err)
	assert.Equal(t, 2*time.Second, cook.DelayMin)
	assert.Equal(t, "Mozilla/5.0", cook.UserAgent)
	assert.NotContains(t, cook.Output, "~")
}

func TestLoadMergesSiteOverrides(t *testing.T) {
	path := writeConfig(t, `
log_level: debug
delay_min: 500ms
delay_max: 2
sites:
  epicurious:
    pages: 2
    output: /tmp/epi.jsonl
  kitchenaid:
    disabled: true
  example:
    base_url: https://recipes.example.com/
    output: example.jsonl
    delay_min: 0.25
    delay_max: 1s
`)
	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, []string{"cookpad", "epicurious", "example"}, cfg.SiteNames())

	epi, err := cfg.Site("epicurious")
	require.NoError(t, err)
	assert.Equal(t, 2, epi.Pages)
	assert.Equal(t, "/tmp/epi.jsonl", epi.Output)
	assert.Equal(t, "https://www.epicurious.com", epi.BaseURL)
	assert.Equal(t, 500*time.Millisecond, epi.DelayMin)
	assert.Equal(t, 2*time.Second, epi.DelayMax)

	ex, err := cfg.Site("example")
	require.NoError(t, err)
	assert.Equal(t, "https://recipes.example.com", ex.BaseURL)
	assert.Equal(t, 250*time.Millisecond, ex.DelayMin)
	assert.Equal(t, time.Second, ex.DelayMax)

	cook, err := cfg.Site("cookpad")
	require.NoError(t, err)
	assert.Len(t, cook.URLs, 89)
}

func TestLoadRejectsInvertedDelays(t *testing.T) {
	path := writeConfig(t, "delay_min: 5s\ndelay_max: 1s\n")
	_, err := Load(path)
	require.ErrorIs(t, err, ErrInvalid)
}

func TestLoadRejectsBadYAML(t *testing.T) {
	path := writeConfig(t, "sites: [unterminated")
	_, err := Load(path)
	require.ErrorIs(t, err, ErrInvalid)
}

func TestLoadRejectsBadFormat(t *testing.T) {
	path := writeConfig(t, "sites:\n  epicurious:\n    format: xml\n")
	_, err := Load(path)
	require.ErrorIs(t, err, ErrInvalid)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
}

func TestApplyEnv(t *testing.T) {
	cfg := Default()
	env := map[string]string{
		"DATABASE_URL": "postgres://localhost/recipes",
		"PORT":         "9090",
		"LOG_LEVEL":    "warn",
	}
	cfg.applyEnv(func(k string) string { return env[k] })

	assert.Equal(t, "postgres://localhost/recipes", cfg.Database.URL)
	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, "warn", cfg.LogLevel)
}

func TestSiteUnknown(t *testing.T) {
	_, err := Default().Site("allrecipes")
	require.ErrorIs(t, err, ErrUnknownSite)
}

func TestExpandPath(t *testing.T) {
	home, err := os.UserHomeDir()
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(home, "Documents", "x.jsonl"), ExpandPath("~/Documents/x.jsonl"))
	assert.Equal(t, "out.jsonl", ExpandPath("out.jsonl"))
	assert.Equal(t, "/abs/out.jsonl", ExpandPath("/abs/out.jsonl"))
}

func TestDurationUnmarshalText(t *testing.T) {
	var d Duration
	require.NoError(t, d.UnmarshalText([]byte("1m30s")))
	assert.Equal(t, 90*time.Second, d.Duration)
	require.Error(t, d.UnmarshalText([]byte("soon")))
}

func TestLevel(t *testing.T) {
	cfg := Default()
	assert.Equal(t, slog.LevelInfo, cfg.Level())
	cfg.LogLevel = "DEBUG"
	assert.Equal(t, slog.LevelDebug, cfg.Level())
	cfg.LogLevel = "warn"
	assert.Equal(t, slog.LevelWarn, cfg.Level())
}

func TestLoadScrapeInterval(t *testing.T) {
	cfg, err := Load(writeConfig(t, "server:\n  scrape_interval: 6h\n"))
	require.NoError(t, err)
	assert.Equal(t, 6*time.Hour, cfg.Server.ScrapeInterval.Duration)

	_, err = Load(writeConfig(t, "server:\n  scrape_interval: -1s\n"))
	require.ErrorIs(t, err, ErrInvalid)
}
