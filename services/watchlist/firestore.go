package watchlist

import (
	"context"
	"fmt"
	"sort"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/api/option"

	"watchdeck/models"
)

const watchlistCollection = "watchlist"

// FirestoreStore persists watchlist items in a Firestore collection, one
// document per item, filtered server-side by the userId field.
type FirestoreStore struct {
	client *firestore.Client
}

// NewFirestoreStore connects to the given Firestore project. credentialsFile
// may be empty, in which case application default credentials are used.
func NewFirestoreStore(ctx context.Context, projectID, credentialsFile string) (*FirestoreStore, error) {
	var opts []option.ClientOption
	if credentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(credentialsFile))
	}
	client, err := firestore.NewClient(ctx, projectID, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create firestore client: %w", err)
	}
	return &FirestoreStore{client: client}, nil
}

func (s *FirestoreStore) ListByUser(ctx context.Context, userID string) ([]models.WatchlistItem, error) {
	iter := s.client.Collection(watchlistCollection).
		Where("userId", "==", userID).
		Documents(ctx)
	defer iter.Stop()

	var items []models.WatchlistItem
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, err
		}
		var item models.WatchlistItem
		if err := doc.DataTo(&item); err != nil {
			return nil, fmt.Errorf("decode watchlist document %s: %w", doc.Ref.ID, err)
		}
		item.ID = doc.Ref.ID
		items = append(items, item)
	}

	// Equality filters don't guarantee order; sort to insertion order here
	// instead of requiring a composite index.
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].AddedAt.Before(items[j].AddedAt)
	})
	return items, nil
}

func (s *FirestoreStore) Insert(ctx context.Context, item models.WatchlistItem) error {
	_, err := s.client.Collection(watchlistCollection).Doc(item.ID).Set(ctx, item)
	return err
}

func (s *FirestoreStore) DeleteByUserAndTmdbID(ctx context.Context, userID string, tmdbID int) (int, error) {
	iter := s.client.Collection(watchlistCollection).
		Where("userId", "==", userID).
		Where("tmdbId", "==", tmdbID).
		Documents(ctx)
	defer iter.Stop()

	deleted := 0
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return deleted, err
		}
		if _, err := doc.Ref.Delete(ctx); err != nil {
			return deleted, err
		}
		deleted++
	}
	return deleted, nil
}

func (s *FirestoreStore) Ping(ctx context.Context) error {
	iter := s.client.Collection(watchlistCollection).Limit(1).Documents(ctx)
	defer iter.Stop()
	if _, err := iter.Next(); err != nil && err != iterator.Done {
		return err
	}
	return nil
}

func (s *FirestoreStore) Close() error {
	return s.client.Close()
}
