package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/baxromumarov/recipe-hunter/internal/scraper"
)

var ErrNotFound = errors.New("not found")

// StoredRecipe is a recipe row with its bookkeeping columns.
type StoredRecipe struct {
	ID int `json:"id"`
	scraper.Recipe
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// SaveRecipe inserts rec or replaces the row with the same URL.
func (s *Store) SaveRecipe(ctx context.Context, rec scraper.Recipe) error {
	ingredients, err := marshalList(rec.Ingredients)
	if err != nil {
		return err
	}
	instructions, err := marshalList(rec.Instructions)
	if err != nil {
		return err
	}
	comments := rec.Comments
	if comments == nil {
		comments = []scraper.Comment{}
	}
	commentsJSON, err := json.Marshal(comments)
	if err != nil {
		return fmt.Errorf("marshal comments: %w", err)
	}

	var title sql.NullString
	if rec.Title != nil {
		title = sql.NullString{String: *rec.Title, Valid: true}
	}

	_, err = s.db.ExecContext(ctx, `
INSERT INTO recipes (source, url, title, ingredients, instructions, comments, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, NOW(), NOW())
ON CONFLICT (url) DO UPDATE SET
    source = EXCLUDED.source,
    title = EXCLUDED.title,
    ingredients = EXCLUDED.ingredients,
    instructions = EXCLUDED.instructions,
    comments = EXCLUDED.comments,
    updated_at = NOW()
`, rec.Source, rec.URL, title, ingredients, instructions, commentsJSON)
	if err != nil {
		return fmt.Errorf("save recipe %s: %w", rec.URL, err)
	}
	return nil
}

// ListRecipes returns recipes newest first, optionally filtered by source.
func (s *Store) ListRecipes(ctx context.Context, source string, limit, offset int) ([]StoredRecipe, error) {
	limit = clampLimit(limit, 20, 200)
	if offset < 0 {
		offset = 0
	}

	rows, err := s.db.QueryContext(ctx, `
SELECT id, source, url, title, ingredients, instructions, comments, created_at, updated_at
FROM recipes
WHERE ($1 = '' OR source = $1)
ORDER BY updated_at DESC, id DESC
LIMIT $2 OFFSET $3
`, source, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	recipes := []StoredRecipe{}
	for rows.Next() {
		rec, err := scanRecipe(rows)
		if err != nil {
			return nil, err
		}
		recipes = append(recipes, rec)
	}
	return recipes, rows.Err()
}

func (s *Store) GetRecipe(ctx context.Context, id int) (StoredRecipe, error) {
	row := s.db.QueryRowContext(ctx, `
SELECT id, source, url, title, ingredients, instructions, comments, created_at, updated_at
FROM recipes
WHERE id = $1
`, id)
	rec, err := scanRecipe(row)
	if errors.Is(err, sql.ErrNoRows) {
		return StoredRecipe{}, ErrNotFound
	}
	return rec, err
}

// CountRecipes returns the number of stored recipes per source.
func (s *Store) CountRecipes(ctx context.Context) (map[string]int, error) {
	rows, err := s.db.QueryContext(ctx, `
SELECT source, COUNT(*)
FROM recipes
GROUP BY source
`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	counts := map[string]int{}
	for rows.Next() {
		var (
			source string
			n      int
		)
		if err := rows.Scan(&source, &n); err != nil {
			return nil, err
		}
		counts[source] = n
	}
	return counts, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanRecipe(row rowScanner) (StoredRecipe, error) {
	var (
		rec          StoredRecipe
		title        sql.NullString
		ingredients  []byte
		instructions []byte
		comments     []byte
	)
	if err := row.Scan(
		&rec.ID,
		&rec.Source,
		&rec.URL,
		&title,
		&ingredients,
		&instructions,
		&comments,
		&rec.CreatedAt,
		&rec.UpdatedAt,
	); err != nil {
		return StoredRecipe{}, err
	}

	if title.Valid {
		t := title.String
		rec.Title = &t
	}
	rec.Ingredients = []string{}
	rec.Instructions = []string{}
	rec.Comments = []scraper.Comment{}
	if err := unmarshalJSONB(ingredients, &rec.Ingredients); err != nil {
		return StoredRecipe{}, fmt.Errorf("ingredients: %w", err)
	}
	if err := unmarshalJSONB(instructions, &rec.Instructions); err != nil {
		return StoredRecipe{}, fmt.Errorf("instructions: %w", err)
	}
	if err := unmarshalJSONB(comments, &rec.Comments); err != nil {
		return StoredRecipe{}, fmt.Errorf("comments: %w", err)
	}
	return rec, nil
}

func marshalList(v []string) ([]byte, error) {
	if v == nil {
		v = []string{}
	}
	b, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("marshal list: %w", err)
	}
	return b, nil
}

func unmarshalJSONB(raw []byte, dst any) error {
	if len(raw) == 0 {
		return nil
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		return fmt.Errorf("decode failed: %w", err)
	}
	return nil
}
