package models

import "time"

// WatchlistItem is one saved title in a user's watchlist as stored in the
// document store. Identity in practice is (UserID, TmdbID), but duplicates
// are permitted; Remove deletes every matching document.
type WatchlistItem struct {
	ID          string    `json:"id" firestore:"-"`
	UserID      string    `json:"userId" firestore:"userId"`
	TmdbID      int       `json:"tmdbId" firestore:"tmdbId"`
	Title       string    `json:"title" firestore:"title"`
	Type        string    `json:"type" firestore:"type"` // movie | tv
	PosterPath  *string   `json:"posterPath,omitempty" firestore:"posterPath"`
	ReleaseYear *int      `json:"releaseYear,omitempty" firestore:"releaseYear"`
	AddedAt     time.Time `json:"addedAt" firestore:"addedAt"`
}

// WatchlistCreate captures the data a client supplies when saving a title.
// The owner and timestamp are stamped server-side.
type WatchlistCreate struct {
	TmdbID      int     `json:"tmdbId" validate:"required,gt=0"`
	Title       string  `json:"title" validate:"required"`
	Type        string  `json:"type" validate:"required,oneof=movie tv"`
	PosterPath  *string `json:"posterPath,omitempty"`
	ReleaseYear *int    `json:"releaseYear,omitempty" validate:"omitempty,gte=1870"`
}
