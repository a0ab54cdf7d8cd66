package scraper

import (
	"context"
	"iter"
	"sort"
	"time"

	"github.com/baxromumarov/recipe-hunter/internal/content"
)

// Comment is one reader review attached to a recipe page.
type Comment struct {
	Author string `json:"author"`
	Text   string `json:"text"`
}

// Recipe is the normalized record produced for every successfully parsed
// page. A missing title encodes as null; list fields are never null.
type Recipe struct {
	Source       string    `json:"source"`
	URL          string    `json:"url"`
	Title        *string   `json:"title"`
	Ingredients  []string  `json:"ingredients"`
	Instructions []string  `json:"instructions"`
	Comments     []Comment `json:"comments"`
}

// URLSet is an unordered set of canonical recipe URLs.
type URLSet map[string]struct{}

func (s URLSet) Add(u string) {
	if u == "" {
		return
	}
	s[u] = struct{}{}
}

// Sorted returns the members in lexical order.
func (s URLSet) Sorted() []string {
	out := make([]string, 0, len(s))
	for u := range s {
		out = append(out, u)
	}
	sort.Strings(out)
	return out
}

// Site is the capability a concrete recipe site plugs into the Driver.
type Site interface {
	// CollectRecipeURLs discovers canonical recipe URLs from the site's
	// listing or search pages.
	CollectRecipeURLs(ctx context.Context, sess *Session) (URLSet, error)
	// ExtractComments returns the page's reviews in document order.
	ExtractComments(doc *content.Document) []Comment
}

// Job is anything that produces recipe records for the runner.
type Job interface {
	Name() string
	Scrape(ctx context.Context) iter.Seq[Recipe]
}

// PageFetcher performs a GET and returns the body and status code.
type PageFetcher interface {
	FetchBytes(ctx context.Context, rawURL string) ([]byte, int, error)
}

// DelayResolver looks up a site's advisory crawl delay.
type DelayResolver interface {
	Resolve(ctx context.Context, baseURL string) (delay time.Duration, ok bool)
}
