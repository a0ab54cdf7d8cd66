package core

import (
	"bytes"
	"context"
	"errors"
	"io"
	"iter"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/baxromumarov/recipe-hunter/internal/config"
	"github.com/baxromumarov/recipe-hunter/internal/observability"
	"github.com/baxromumarov/recipe-hunter/internal/output"
	"github.com/baxromumarov/recipe-hunter/internal/scraper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type fakeJob struct {
	name string
	recs []scraper.Recipe
}

func (j *fakeJob) Name() string { return j.name }

func (j *fakeJob) Scrape(context.Context) iter.Seq[scraper.Recipe] {
	return func(yield func(scraper.Recipe) bool) {
		for _, r := range j.recs {
			if !yield(r) {
				return
			}
		}
	}
}

type memorySink struct {
	got      []scraper.Recipe
	failOn   string
	closeErr error
	closed   bool
}

func (m *memorySink) Write(_ context.Context, rec scraper.Recipe) error {
	if rec.URL == m.failOn {
		return errors.New("disk full")
	}
	m.got = append(m.got, rec)
	return nil
}

func (m *memorySink) Close() error {
	m.closed = true
	return m.closeErr
}

type namedSink struct {
	*memorySink
	loc string
}

func (n namedSink) Location() string { return n.loc }

func records(urls ...string) []scraper.Recipe {
	out := make([]scraper.Recipe, 0, len(urls))
	for _, u := range urls {
		out = append(out, scraper.Recipe{Source: "https://example.com", URL: u})
	}
	return out
}

func TestRunnerWritesEverySink(t *testing.T) {
	job := &fakeJob{name: "test", recs: records("a", "b", "c")}
	first, second := &memorySink{}, &memorySink{failOn: "b"}
	before := observability.Snapshot().ErrorsByType[observability.ErrorStore]

	n, err := NewRunner(quietLogger()).Run(context.Background(), job, first, second)
	require.NoError(t, err)

	assert.Equal(t, 3, n)
	assert.Len(t, first.got, 3)
	assert.Len(t, second.got, 2, "a failed write does not stop the run")
	assert.True(t, first.closed)
	assert.True(t, second.closed)
	assert.Equal(t, before+1, observability.Snapshot().ErrorsByType[observability.ErrorStore])
}

func TestRunnerLogsSavedCountPerSink(t *testing.T) {
	job := &fakeJob{name: "test", recs: records("a", "b", "c")}
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))

	_, err := NewRunner(logger).Run(context.Background(), job,
		namedSink{memorySink: &memorySink{}, loc: "all.jsonl"},
		namedSink{memorySink: &memorySink{failOn: "b"}, loc: "partial.jsonl"},
	)
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "saved 3 recipes to all.jsonl")
	assert.Contains(t, out, "saved 2 recipes to partial.jsonl")
	assert.NotContains(t, out, "saved 3 recipes to partial.jsonl")
}

func TestRunnerReportsCloseErrors(t *testing.T) {
	job := &fakeJob{name: "test", recs: records("a")}
	sink := &memorySink{closeErr: errors.New("flush failed")}

	n, err := NewRunner(quietLogger()).Run(context.Background(), job, sink)
	assert.Equal(t, 1, n)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "flush failed")
}

func TestRunnerNoSinks(t *testing.T) {
	n, err := NewRunner(nil).Run(context.Background(), &fakeJob{name: "x", recs: records("a", "b")})
	require.NoError(t, err)
	assert.Equal(t, 2, n)
}

func TestSchedulerRunOnce(t *testing.T) {
	sinks := map[string]*memorySink{}
	jobs := func(context.Context) []scraper.Job {
		return []scraper.Job{
			&fakeJob{name: "one", recs: records("a")},
			&fakeJob{name: "broken"},
			&fakeJob{name: "two", recs: records("b", "c")},
		}
	}
	open := func(job scraper.Job) ([]output.Sink, error) {
		if job.Name() == "broken" {
			return nil, errors.New("no sink")
		}
		s := &memorySink{}
		sinks[job.Name()] = s
		return []output.Sink{s}, nil
	}

	s := NewSchedulerService(NewRunner(quietLogger()), jobs, open, 0, quietLogger())
	assert.Equal(t, 3, s.RunOnce(context.Background()))
	assert.Len(t, sinks["one"].got, 1)
	assert.Len(t, sinks["two"].got, 2)

	// non-positive interval: Start is a no-op
	s.Start(context.Background())
}

func TestBuildPlans(t *testing.T) {
	cfg := config.Default()
	reg := scraper.NewRegistry()
	reg.Register("cookpad", func(_ context.Context, c scraper.Config, _ ...scraper.DriverOption) scraper.Job {
		return &fakeJob{name: c.Name}
	})
	reg.Register("kitchenaid", func(_ context.Context, c scraper.Config, _ ...scraper.DriverOption) scraper.Job {
		return &fakeJob{name: c.Name}
	})

	plans, err := BuildPlans(context.Background(), cfg, reg, []string{"kitchenaid", "cookpad"}, quietLogger())
	require.NoError(t, err)
	require.Len(t, plans, 2)
	assert.Equal(t, "kitchenaid", plans[0].Job.Name())
	assert.Equal(t, config.FormatJSON, plans[0].Settings.Format)

	_, err = BuildPlans(context.Background(), cfg, reg, nil, quietLogger())
	require.ErrorIs(t, err, scraper.ErrUnknownSite, "epicurious is enabled but not registered")

	_, err = BuildPlans(context.Background(), cfg, reg, []string{"nope"}, nil)
	require.ErrorIs(t, err, config.ErrUnknownSite)
}

func TestOpenSinksFileOnly(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out", "cookpad.jsonl")
	sinks, err := OpenSinks(config.SiteSettings{Output: path, Format: config.FormatJSONL}, nil)
	require.NoError(t, err)
	require.Len(t, sinks, 1)

	n, err := NewRunner(quietLogger()).Run(context.Background(), &fakeJob{name: "cookpad", recs: records("a", "b")}, sinks...)
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, 2, strings.Count(string(data), "\n"))
}
