package api

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/baxromumarov/recipe-hunter/internal/store"
)

// RecipeStore is the read side of the recipe database.
type RecipeStore interface {
	ListRecipes(ctx context.Context, source string, limit, offset int) ([]store.StoredRecipe, error)
	GetRecipe(ctx context.Context, id int) (store.StoredRecipe, error)
	CountRecipes(ctx context.Context) (map[string]int, error)
}

type Server struct {
	router *chi.Mux
	store  RecipeStore
}

func NewServer(store RecipeStore) *Server {
	s := &Server{
		router: chi.NewRouter(),
		store:  store,
	}

	s.setupRoutes()
	return s
}

func (s *Server) setupRoutes() {
	s.router.Use(middleware.Logger)
	s.router.Use(middleware.Recoverer)
	s.router.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
	}))

	s.router.Get("/health", s.handleHealth)
	s.router.Get("/recipes", s.handleListRecipes)
	s.router.Get("/recipes/{id}", s.handleGetRecipe)
	s.router.Get("/stats", s.handleStats)
}

func (s *Server) Router() http.Handler {
	return s.router
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("OK"))
}

func respondJSON(w http.ResponseWriter, status int, payload any) {
	response, _ := json.Marshal(payload)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write(response)
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"error": message})
}
