package output

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/baxromumarov/recipe-hunter/internal/config"
	"github.com/baxromumarov/recipe-hunter/internal/scraper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sample(title string) scraper.Recipe {
	return scraper.Recipe{
		Source:       "https://www.epicurious.com",
		URL:          "https://www.epicurious.com/recipes/" + title,
		Title:        &title,
		Ingredients:  []string{"crème fraîche", "salt & pepper"},
		Instructions: []string{"Stir <gently>."},
		Comments:     []scraper.Comment{},
	}
}

func TestJSONLWriter(t *testing.T) {
	var buf bytes.Buffer
	w := NewJSONLWriter(&buf)

	require.NoError(t, w.Write(context.Background(), sample("one")))
	assert.Equal(t, 1, strings.Count(buf.String(), "\n"), "flushed after each record")
	require.NoError(t, w.Write(context.Background(), sample("two")))
	require.NoError(t, w.Close())

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], "crème fraîche")
	assert.Contains(t, lines[0], "salt & pepper")
	assert.Contains(t, lines[0], "Stir <gently>.")

	var got scraper.Recipe
	require.NoError(t, json.Unmarshal([]byte(lines[1]), &got))
	assert.Equal(t, "two", *got.Title)
}

func TestJSONLWriterNullTitle(t *testing.T) {
	var buf bytes.Buffer
	w := NewJSONLWriter(&buf)
	rec := sample("x")
	rec.Title = nil
	require.NoError(t, w.Write(context.Background(), rec))

	assert.Contains(t, buf.String(), `"title":null`)
}

func TestArrayWriter(t *testing.T) {
	var buf bytes.Buffer
	w := NewArrayWriter(&buf)
	require.NoError(t, w.Write(context.Background(), sample("one")))
	require.NoError(t, w.Write(context.Background(), sample("two")))
	assert.Zero(t, buf.Len(), "nothing written before close")

	require.NoError(t, w.Close())
	assert.True(t, strings.HasPrefix(buf.String(), "[\n    {\n        \"source\""))

	var got []scraper.Recipe
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	require.Len(t, got, 2)
	assert.Equal(t, "one", *got[0].Title)
}

func TestArrayWriterEmpty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewArrayWriter(&buf).Close())
	assert.Equal(t, "[]\n", buf.String())
}

func TestOpenFileCreatesDirs(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "out.jsonl")
	sink, err := OpenFile(path, config.FormatJSONL)
	require.NoError(t, err)
	require.NoError(t, sink.Write(context.Background(), sample("one")))
	require.NoError(t, sink.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, 1, strings.Count(string(data), "\n"))
}

func TestOpenFileJSONArray(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.json")
	sink, err := OpenFile(path, config.FormatJSON)
	require.NoError(t, err)
	assert.IsType(t, &ArrayWriter{}, sink.Sink)
	assert.Equal(t, path, sink.Location())
	require.NoError(t, sink.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "[]\n", string(data))
}

func TestOpenFileUnknownFormat(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.csv")
	_, err := OpenFile(path, "csv")
	require.Error(t, err)
	_, statErr := os.Stat(path)
	assert.True(t, os.IsNotExist(statErr))
}
