package scraper

import (
	"context"
	"iter"

	"github.com/baxromumarov/recipe-hunter/internal/content"
)

// KitchenAid scrapes a fixed list of kitchenaid.com recipe pages. JSON-LD
// is preferred; the DOM fills whatever it leaves empty.
type KitchenAid struct {
	cfg     Config
	session *Session
}

func NewKitchenAid(cfg Config, opts ...DriverOption) *KitchenAid {
	return &KitchenAid{cfg: cfg, session: newListSession(cfg, opts)}
}

func (k *KitchenAid) Name() string { return k.cfg.Name }

func (k *KitchenAid) Scrape(ctx context.Context) iter.Seq[Recipe] {
	return scrapeList(ctx, k.session, k.cfg.URLs, func(doc *content.Document, pageURL string) Recipe {
		return ParseKitchenAid(doc, k.cfg.BaseURL, pageURL)
	})
}

func ParseKitchenAid(doc *content.Document, source, pageURL string) Recipe {
	var rec Recipe
	if data, ok := content.ExtractRecipe(doc); ok {
		rec = BuildRecipe(source, pageURL, data, nil)
	} else {
		rec = Recipe{
			Source:       source,
			URL:          pageURL,
			Ingredients:  []string{},
			Instructions: []string{},
			Comments:     []Comment{},
		}
	}

	if rec.Title == nil {
		rec.Title = firstText(doc, "h1")
	}
	if len(rec.Ingredients) == 0 {
		rec.Ingredients = kitchenAidIngredients(doc)
	}
	if len(rec.Instructions) == 0 {
		rec.Instructions = kitchenAidSteps(doc)
	}
	return rec
}

// kitchenAidIngredients reads the list that follows the first "Ingredients"
// heading.
func kitchenAidIngredients(doc *content.Document) []string {
	for _, h := range doc.FindAll("h2") {
		if !content.ContainsFold(h.Text(), "ingredients") {
			continue
		}
		list, ok := h.NextSibling()
		if !ok || (list.Tag() != "ul" && list.Tag() != "ol") {
			return []string{}
		}
		return textsOf(list.FindAll("li"))
	}
	return []string{}
}

func kitchenAidSteps(doc *content.Document) []string {
	steps := []string{}
	for _, h := range doc.FindAll("h3") {
		text := h.Text()
		if !content.ContainsFold(text, "step") {
			continue
		}
		if p, ok := h.NextSibling(); ok && p.Tag() == "p" {
			text += " " + p.Text()
		}
		steps = append(steps, text)
	}
	return steps
}
