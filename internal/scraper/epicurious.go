package scraper

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/baxromumarov/recipe-hunter/internal/content"
	"github.com/baxromumarov/recipe-hunter/internal/urlutil"
)

const DefaultEpicuriousPages = 10

// Epicurious discovers recipes through the site's paginated search.
type Epicurious struct {
	pages int
}

func NewEpicurious(pages int) *Epicurious {
	if pages <= 0 {
		pages = DefaultEpicuriousPages
	}
	return &Epicurious{pages: pages}
}

func (e *Epicurious) searchURL(base string, page int) string {
	return fmt.Sprintf("%s/search?content=recipe&page=%d", base, page)
}

func (e *Epicurious) CollectRecipeURLs(ctx context.Context, sess *Session) (URLSet, error) {
	urls := URLSet{}
	base, err := url.Parse(sess.BaseURL())
	if err != nil {
		return urls, fmt.Errorf("base url: %w", err)
	}

	for p := 1; p <= e.pages; p++ {
		listing := e.searchURL(sess.BaseURL(), p)
		doc, err := sess.Fetch(ctx, listing)
		if err != nil {
			sess.Logger().Warn("listing page failed", "url", listing, "error", err)
		} else {
			for _, href := range doc.Links() {
				if !strings.Contains(href, "/recipes/") {
					continue
				}
				full := urlutil.ResolveLink(base, urlutil.StripQuery(href))
				if full == "" || !urlutil.IsCrawlable(full) || !urlutil.SameHost(base, full) {
					continue
				}
				urls.Add(urlutil.Canonicalize(full))
			}
		}
		if err := sess.Pause(ctx); err != nil {
			return urls, err
		}
	}
	return urls, nil
}

func (e *Epicurious) ExtractComments(doc *content.Document) []Comment {
	comments := []Comment{}
	for _, review := range doc.FindAll("div.reviews__review") {
		author, ok := review.First("a.reviews__reviewer")
		if !ok {
			continue
		}
		text, ok := review.First("p.reviews__review-text")
		if !ok {
			continue
		}
		comments = append(comments, Comment{Author: author.Text(), Text: text.Text()})
	}
	return comments
}
