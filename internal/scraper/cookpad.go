package scraper

import (
	"context"
	"fmt"
	"iter"

	"github.com/baxromumarov/recipe-hunter/internal/content"
)

// Cookpad scrapes a fixed list of cookpad.com recipe pages from the DOM.
type Cookpad struct {
	cfg     Config
	session *Session
}

func NewCookpad(cfg Config, opts ...DriverOption) *Cookpad {
	return &Cookpad{cfg: cfg, session: newListSession(cfg, opts)}
}

func (c *Cookpad) Name() string { return c.cfg.Name }

func (c *Cookpad) Scrape(ctx context.Context) iter.Seq[Recipe] {
	return scrapeList(ctx, c.session, c.cfg.URLs, func(doc *content.Document, pageURL string) Recipe {
		return ParseCookpad(doc, c.cfg.BaseURL, pageURL)
	})
}

// ParseCookpad reads title, ingredients and numbered steps from a page.
func ParseCookpad(doc *content.Document, source, pageURL string) Recipe {
	rec := Recipe{
		Source:       source,
		URL:          pageURL,
		Title:        firstText(doc, "h1"),
		Ingredients:  []string{},
		Instructions: []string{},
		Comments:     []Comment{},
	}

	seen := make(map[string]struct{})
	for _, n := range doc.FindByAttrContains("class", "ingredient") {
		text := n.Text()
		if text == "" {
			continue
		}
		if _, dup := seen[text]; dup {
			continue
		}
		seen[text] = struct{}{}
		rec.Ingredients = append(rec.Ingredients, text)
	}

	steps := doc.FindByClass("div", "step__text")
	if len(steps) == 0 {
		steps = doc.FindByClass("li", "step")
	}
	for i, step := range steps {
		rec.Instructions = append(rec.Instructions, fmt.Sprintf("Step %d: %s", i+1, step.Text()))
	}
	return rec
}
