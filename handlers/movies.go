package handlers

import (
	"context"
	"errors"
	"log"
	"net/http"
	"strconv"
	"strings"

	"github.com/gorilla/mux"

	"watchdeck/models"
	"watchdeck/services/tmdb"
)

type moviesService interface {
	Configuration(ctx context.Context) (*models.Configuration, error)
	SearchMulti(ctx context.Context, query string, page int) (*models.PagedResponse[models.SearchResult], error)
	Trending(ctx context.Context) (*models.PagedResponse[models.SearchResult], error)
	Discover(ctx context.Context, page int) (*models.PagedResponse[models.SearchResult], error)
	MovieDetails(ctx context.Context, id int) (*models.MovieDetailsBundle, error)
}

var _ moviesService = (*tmdb.Service)(nil)

// MoviesHandler serves the TMDB proxy surface under /api/movies.
type MoviesHandler struct {
	Service moviesService
}

func NewMoviesHandler(service moviesService) *MoviesHandler {
	return &MoviesHandler{Service: service}
}

// Register mounts the movie routes on the given router.
func (h *MoviesHandler) Register(r *mux.Router) {
	r.HandleFunc("/api/movies/config", h.Config).Methods(http.MethodGet)
	r.HandleFunc("/api/movies/search", h.Search).Methods(http.MethodGet)
	r.HandleFunc("/api/movies/trending", h.Trending).Methods(http.MethodGet)
	r.HandleFunc("/api/movies/discover", h.Discover).Methods(http.MethodGet)
	r.HandleFunc("/api/movies/details/{id:[0-9]+}", h.Details).Methods(http.MethodGet)
}

func (h *MoviesHandler) Config(w http.ResponseWriter, r *http.Request) {
	cfg, err := h.Service.Configuration(r.Context())
	if err != nil {
		h.respondServiceError(w, "configuration", err)
		return
	}
	respondOK(w, cfg)
}

func (h *MoviesHandler) Search(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("query")
	page := parsePage(r.URL.Query().Get("page"))

	results, err := h.Service.SearchMulti(r.Context(), query, page)
	if err != nil {
		h.respondServiceError(w, "search", err)
		return
	}
	respondOK(w, results)
}

func (h *MoviesHandler) Trending(w http.ResponseWriter, r *http.Request) {
	results, err := h.Service.Trending(r.Context())
	if err != nil {
		h.respondServiceError(w, "trending", err)
		return
	}
	respondOK(w, results)
}

func (h *MoviesHandler) Discover(w http.ResponseWriter, r *http.Request) {
	page := parsePage(r.URL.Query().Get("page"))

	results, err := h.Service.Discover(r.Context(), page)
	if err != nil {
		h.respondServiceError(w, "discover", err)
		return
	}
	respondOK(w, results)
}

func (h *MoviesHandler) Details(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		respondError(w, http.StatusBadRequest, "id must be a number")
		return
	}

	bundle, err := h.Service.MovieDetails(r.Context(), id)
	if err != nil {
		h.respondServiceError(w, "details", err)
		return
	}
	respondOK(w, bundle)
}

// respondServiceError maps service failures onto the envelope: validation
// sentinels are echoed with 400, an upstream 404 passes through as 404, and
// everything else from the upstream surfaces as 502.
func (h *MoviesHandler) respondServiceError(w http.ResponseWriter, op string, err error) {
	switch {
	case errors.Is(err, tmdb.ErrQueryRequired),
		errors.Is(err, tmdb.ErrInvalidPage),
		errors.Is(err, tmdb.ErrInvalidID):
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	var upstream *tmdb.UpstreamError
	if errors.As(err, &upstream) && upstream.NotFound() {
		log.Printf("[movies] %s not found upstream: %v", op, err)
		respondError(w, http.StatusNotFound, "title not found")
		return
	}

	log.Printf("[movies] %s failed: %v", op, err)
	respondError(w, http.StatusBadGateway, "upstream metadata service failed")
}

// parsePage defaults to 1 for missing or unparseable values; range checks are
// the service's job.
func parsePage(raw string) int {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 1
	}
	page, err := strconv.Atoi(raw)
	if err != nil {
		return 1
	}
	return page
}
