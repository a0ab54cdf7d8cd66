package output

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/baxromumarov/recipe-hunter/internal/config"
	"github.com/baxromumarov/recipe-hunter/internal/scraper"
)

// Sink receives recipe records as they are produced.
type Sink interface {
	Write(ctx context.Context, rec scraper.Recipe) error
	Close() error
}

// JSONLWriter writes one JSON object per line and flushes after each one.
type JSONLWriter struct {
	w      *bufio.Writer
	enc    *json.Encoder
	closer io.Closer
}

func NewJSONLWriter(w io.Writer) *JSONLWriter {
	bw := bufio.NewWriter(w)
	enc := json.NewEncoder(bw)
	enc.SetEscapeHTML(false)
	jw := &JSONLWriter{w: bw, enc: enc}
	if c, ok := w.(io.Closer); ok {
		jw.closer = c
	}
	return jw
}

func (j *JSONLWriter) Write(_ context.Context, rec scraper.Recipe) error {
	if err := j.enc.Encode(rec); err != nil {
		return fmt.Errorf("encode record: %w", err)
	}
	return j.w.Flush()
}

func (j *JSONLWriter) Close() error {
	if err := j.w.Flush(); err != nil {
		return err
	}
	if j.closer != nil {
		return j.closer.Close()
	}
	return nil
}

// ArrayWriter collects records and writes them as one indented JSON array
// on Close.
type ArrayWriter struct {
	w       io.Writer
	records []scraper.Recipe
}

func NewArrayWriter(w io.Writer) *ArrayWriter {
	return &ArrayWriter{w: w, records: []scraper.Recipe{}}
}

func (a *ArrayWriter) Write(_ context.Context, rec scraper.Recipe) error {
	a.records = append(a.records, rec)
	return nil
}

func (a *ArrayWriter) Close() error {
	enc := json.NewEncoder(a.w)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "    ")
	err := enc.Encode(a.records)
	if c, ok := a.w.(io.Closer); ok {
		if cerr := c.Close(); err == nil {
			err = cerr
		}
	}
	if err != nil {
		return fmt.Errorf("write json array: %w", err)
	}
	return nil
}

// Locator is implemented by sinks that can name where records end up.
type Locator interface {
	Location() string
}

// FileSink is a Sink backed by a file on disk.
type FileSink struct {
	Sink
	path string
}

func (f *FileSink) Location() string { return f.path }

// OpenFile creates path, including missing parent directories, and wraps it
// in the writer for format.
func OpenFile(path, format string) (*FileSink, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create output dir: %w", err)
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("create output file: %w", err)
	}
	switch format {
	case config.FormatJSON:
		return &FileSink{Sink: NewArrayWriter(f), path: path}, nil
	case config.FormatJSONL, "":
		return &FileSink{Sink: NewJSONLWriter(f), path: path}, nil
	default:
		f.Close()
		os.Remove(path)
		return nil, fmt.Errorf("unknown output format %q", format)
	}
}
