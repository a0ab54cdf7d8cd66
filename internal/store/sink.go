package store

import (
	"context"

	"github.com/baxromumarov/recipe-hunter/internal/scraper"
)

// Sink saves every record it receives. Close leaves the store open.
type Sink struct {
	store *Store
}

func NewSink(s *Store) *Sink {
	return &Sink{store: s}
}

func (k *Sink) Write(ctx context.Context, rec scraper.Recipe) error {
	return k.store.SaveRecipe(ctx, rec)
}

func (k *Sink) Close() error { return nil }

func (k *Sink) Location() string { return "postgres" }
