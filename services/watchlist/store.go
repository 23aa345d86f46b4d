package watchlist

import (
	"context"

	"watchdeck/models"
)

// Store abstracts the document store holding watchlist items. Implementations
// must filter by user server-side rather than loading the whole collection,
// and must return items in insertion order.
type Store interface {
	// ListByUser returns every item owned by userID, oldest first.
	ListByUser(ctx context.Context, userID string) ([]models.WatchlistItem, error)
	// Insert persists item as a new document. No uniqueness is enforced on
	// (UserID, TmdbID).
	Insert(ctx context.Context, item models.WatchlistItem) error
	// DeleteByUserAndTmdbID removes every document matching (userID, tmdbID)
	// and reports how many were deleted. Zero matches is not an error.
	DeleteByUserAndTmdbID(ctx context.Context, userID string, tmdbID int) (int, error)
	// Ping verifies the store is reachable.
	Ping(ctx context.Context) error
	Close() error
}
