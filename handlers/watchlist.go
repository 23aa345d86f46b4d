package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"watchdeck/internal/auth"
	"watchdeck/models"
	"watchdeck/services/watchlist"
)

type watchlistService interface {
	List(ctx context.Context, userID string) ([]models.WatchlistItem, error)
	Add(ctx context.Context, userID string, req models.WatchlistCreate) (models.WatchlistItem, error)
	Remove(ctx context.Context, userID string, tmdbID int) error
}

var _ watchlistService = (*watchlist.Service)(nil)

// WatchlistHandler serves per-user watchlist CRUD under /api/watchlist.
// Routes are mounted behind the identity middleware, so the user ID is always
// present in the request context.
type WatchlistHandler struct {
	Service watchlistService
}

func NewWatchlistHandler(service watchlistService) *WatchlistHandler {
	return &WatchlistHandler{Service: service}
}

// Register mounts the watchlist routes on a subrouter already prefixed with
// /api/watchlist and guarded by the identity middleware.
func (h *WatchlistHandler) Register(r *mux.Router) {
	r.HandleFunc("", h.List).Methods(http.MethodGet)
	r.HandleFunc("", h.Add).Methods(http.MethodPost)
	r.HandleFunc("/{tmdbId:[0-9]+}", h.Remove).Methods(http.MethodDelete)
}

func (h *WatchlistHandler) List(w http.ResponseWriter, r *http.Request) {
	userID := auth.GetUserID(r)

	items, err := h.Service.List(r.Context(), userID)
	if err != nil {
		h.respondServiceError(w, "list", err)
		return
	}
	respondOK(w, items)
}

func (h *WatchlistHandler) Add(w http.ResponseWriter, r *http.Request) {
	userID := auth.GetUserID(r)

	var body models.WatchlistCreate
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&body); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	item, err := h.Service.Add(r.Context(), userID, body)
	if err != nil {
		h.respondServiceError(w, "add", err)
		return
	}
	respondOK(w, fmt.Sprintf("added %q to watchlist", item.Title))
}

func (h *WatchlistHandler) Remove(w http.ResponseWriter, r *http.Request) {
	userID := auth.GetUserID(r)

	tmdbID, err := strconv.Atoi(mux.Vars(r)["tmdbId"])
	if err != nil {
		respondError(w, http.StatusBadRequest, "tmdbId must be a number")
		return
	}

	if err := h.Service.Remove(r.Context(), userID, tmdbID); err != nil {
		h.respondServiceError(w, "remove", err)
		return
	}
	respondOK(w, "removed from watchlist")
}

func (h *WatchlistHandler) respondServiceError(w http.ResponseWriter, op string, err error) {
	switch {
	case errors.Is(err, watchlist.ErrUserIDRequired):
		respondError(w, http.StatusUnauthorized, err.Error())
	case errors.Is(err, watchlist.ErrInvalidItem):
		respondError(w, http.StatusBadRequest, err.Error())
	default:
		log.Printf("[watchlist] %s failed: %v", op, err)
		respondError(w, http.StatusInternalServerError, "watchlist store failed")
	}
}
