package watchlist

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"watchdeck/models"
)

var (
	ErrUserIDRequired = errors.New("user id is required")
	ErrInvalidItem    = errors.New("invalid watchlist item")
)

// Service provides per-user watchlist CRUD over a document store. Watchlist
// data is never cached; every call goes to the store.
type Service struct {
	store    Store
	validate *validator.Validate
	now      func() time.Time
}

// NewService constructs a watchlist service backed by the given store.
func NewService(store Store) *Service {
	return &Service{
		store:    store,
		validate: validator.New(validator.WithRequiredStructEnabled()),
		now:      time.Now,
	}
}

// List returns the user's watchlist, oldest first.
func (s *Service) List(ctx context.Context, userID string) ([]models.WatchlistItem, error) {
	if userID == "" {
		return nil, ErrUserIDRequired
	}
	items, err := s.store.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list watchlist: %w", err)
	}
	if items == nil {
		items = []models.WatchlistItem{}
	}
	return items, nil
}

// Add persists a new watchlist item for the user, stamping the owner, a fresh
// document id, and the added timestamp. Duplicate (user, tmdbId) pairs are
// permitted; Remove deletes all of them.
func (s *Service) Add(ctx context.Context, userID string, req models.WatchlistCreate) (models.WatchlistItem, error) {
	if userID == "" {
		return models.WatchlistItem{}, ErrUserIDRequired
	}
	if err := s.validate.Struct(req); err != nil {
		return models.WatchlistItem{}, fmt.Errorf("%w: %v", ErrInvalidItem, err)
	}

	item := models.WatchlistItem{
		ID:          uuid.NewString(),
		UserID:      userID,
		TmdbID:      req.TmdbID,
		Title:       req.Title,
		Type:        req.Type,
		PosterPath:  req.PosterPath,
		ReleaseYear: req.ReleaseYear,
		AddedAt:     s.now().UTC(),
	}
	if err := s.store.Insert(ctx, item); err != nil {
		return models.WatchlistItem{}, fmt.Errorf("add watchlist item: %w", err)
	}
	return item, nil
}

// Remove deletes every watchlist document matching (userID, tmdbID). Removing
// an id that is not on the list succeeds silently, so the call is idempotent.
func (s *Service) Remove(ctx context.Context, userID string, tmdbID int) error {
	if userID == "" {
		return ErrUserIDRequired
	}
	if tmdbID <= 0 {
		return fmt.Errorf("%w: tmdbId must be greater than zero", ErrInvalidItem)
	}
	if _, err := s.store.DeleteByUserAndTmdbID(ctx, userID, tmdbID); err != nil {
		return fmt.Errorf("remove watchlist item: %w", err)
	}
	return nil
}
