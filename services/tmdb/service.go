package tmdb

import (
	"context"
	"log"
	"strconv"
	"strings"
	"time"

	"github.com/sourcegraph/conc/pool"

	"watchdeck/models"
)

// upstream is the slice of the TMDB client the aggregation service depends on.
type upstream interface {
	Configuration(ctx context.Context) (*models.Configuration, error)
	SearchMulti(ctx context.Context, query string, page int) (*models.PagedResponse[models.SearchResult], error)
	Trending(ctx context.Context) (*models.PagedResponse[models.SearchResult], error)
	Discover(ctx context.Context, page int) (*models.PagedResponse[models.SearchResult], error)
	MovieDetails(ctx context.Context, id int) (*models.MovieDetails, error)
	WatchProviders(ctx context.Context, id int) (*models.WatchProviders, error)
}

var _ upstream = (*Client)(nil)

// Service composes the TMDB client with a TTL cache and exposes one operation
// per client-facing need. Configuration, trending, and discover pages are
// cached; search and movie details are always fetched fresh.
type Service struct {
	client upstream
	cache  *memoryCache
}

// NewService constructs the aggregation service. ttlMinutes controls how long
// cacheable responses are reused; values <= 0 fall back to 30 minutes.
func NewService(client upstream, ttlMinutes int) *Service {
	if ttlMinutes <= 0 {
		ttlMinutes = 30
	}
	return &Service{
		client: client,
		cache:  newMemoryCache(time.Duration(ttlMinutes) * time.Minute),
	}
}

// Configuration returns the TMDB image configuration, cached.
func (s *Service) Configuration(ctx context.Context) (*models.Configuration, error) {
	value, err := s.cache.getOrPopulate(cacheKey("tmdb", "configuration"), func() (any, error) {
		return s.client.Configuration(ctx)
	})
	if err != nil {
		return nil, err
	}
	return value.(*models.Configuration), nil
}

// SearchMulti searches movies, TV shows, and people. Never cached: the
// per-query cardinality is too high to be worth holding.
func (s *Service) SearchMulti(ctx context.Context, query string, page int) (*models.PagedResponse[models.SearchResult], error) {
	if strings.TrimSpace(query) == "" {
		return nil, ErrQueryRequired
	}
	if page <= 0 {
		page = 1
	}
	return s.client.SearchMulti(ctx, query, page)
}

// Trending returns the weekly trending feed, cached.
func (s *Service) Trending(ctx context.Context) (*models.PagedResponse[models.SearchResult], error) {
	value, err := s.cache.getOrPopulate(cacheKey("tmdb", "trending"), func() (any, error) {
		return s.client.Trending(ctx)
	})
	if err != nil {
		return nil, err
	}
	return value.(*models.PagedResponse[models.SearchResult]), nil
}

// Discover returns a page of popular movies, cached per page.
func (s *Service) Discover(ctx context.Context, page int) (*models.PagedResponse[models.SearchResult], error) {
	if page <= 0 {
		return nil, ErrInvalidPage
	}
	value, err := s.cache.getOrPopulate(cacheKey("tmdb", "discover", strconv.Itoa(page)), func() (any, error) {
		return s.client.Discover(ctx, page)
	})
	if err != nil {
		return nil, err
	}
	return value.(*models.PagedResponse[models.SearchResult]), nil
}

// MovieDetails fetches movie details and watch providers concurrently and
// merges them into one bundle. The two sub-fetches are independent, but the
// contract is all-or-nothing: if either fails, the whole operation fails.
func (s *Service) MovieDetails(ctx context.Context, id int) (*models.MovieDetailsBundle, error) {
	if id <= 0 {
		return nil, ErrInvalidID
	}

	start := time.Now()
	bundle := &models.MovieDetailsBundle{}

	p := pool.New().WithErrors().WithContext(ctx).WithCancelOnError().WithFirstError()
	p.Go(func(ctx context.Context) error {
		details, err := s.client.MovieDetails(ctx, id)
		if err != nil {
			return err
		}
		bundle.Details = details
		return nil
	})
	p.Go(func(ctx context.Context) error {
		providers, err := s.client.WatchProviders(ctx, id)
		if err != nil {
			return err
		}
		bundle.Providers = providers
		return nil
	})
	if err := p.Wait(); err != nil {
		return nil, err
	}

	log.Printf("[tmdb] movie details bundle id=%d took %dms", id, time.Since(start).Milliseconds())
	return bundle, nil
}
