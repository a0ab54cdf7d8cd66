package api

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/baxromumarov/recipe-hunter/internal/observability"
	"github.com/baxromumarov/recipe-hunter/internal/store"
)

func (s *Server) handleListRecipes(w http.ResponseWriter, r *http.Request) {
	limit, offset := parsePagination(r, 20)
	source := r.URL.Query().Get("source")

	recipes, err := s.store.ListRecipes(r.Context(), source, limit, offset)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to fetch recipes: "+err.Error())
		return
	}
	if recipes == nil {
		recipes = []store.StoredRecipe{}
	}
	respondJSON(w, http.StatusOK, map[string]any{
		"items":  recipes,
		"limit":  limit,
		"offset": offset,
		"source": source,
	})
}

func (s *Server) handleGetRecipe(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil || id <= 0 {
		respondError(w, http.StatusBadRequest, "Invalid recipe ID")
		return
	}

	rec, err := s.store.GetRecipe(r.Context(), id)
	if errors.Is(err, store.ErrNotFound) {
		respondError(w, http.StatusNotFound, "Recipe not found")
		return
	}
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to fetch recipe: "+err.Error())
		return
	}
	respondJSON(w, http.StatusOK, rec)
}

func (s *Server) handleStats(w http.ResponseWriter, r *http.Request) {
	counts, err := s.store.CountRecipes(r.Context())
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to count recipes: "+err.Error())
		return
	}
	total := 0
	for _, n := range counts {
		total += n
	}
	respondJSON(w, http.StatusOK, map[string]any{
		"stored_total":     total,
		"stored_by_source": counts,
		"scrape":           observability.Snapshot(),
	})
}

func parsePagination(r *http.Request, defaultLimit int) (int, int) {
	q := r.URL.Query()
	limit := defaultLimit
	offset := 0

	if v := q.Get("limit"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			limit = parsed
		}
	}

	if v := q.Get("offset"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			offset = parsed
		}
	}

	if limit <= 0 {
		limit = defaultLimit
	}
	if offset < 0 {
		offset = 0
	}
	return limit, offset
}
