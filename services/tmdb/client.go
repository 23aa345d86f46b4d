package tmdb

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"watchdeck/models"
)

const defaultBaseURL = "https://api.themoviedb.org/3"

// maxErrorBodyBytes caps how much of an upstream error body is kept for
// diagnostics.
const maxErrorBodyBytes = 2048

// Client issues authenticated GET requests against the TMDB API and decodes
// the JSON responses into typed models. Failed calls surface immediately;
// there is no retry logic.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

// NewClient constructs a TMDB client. baseURL falls back to the public v3 API
// when empty.
func NewClient(baseURL, apiKey string) *Client {
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	return &Client{
		baseURL:    baseURL,
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

// Configuration fetches the image configuration and change keys.
func (c *Client) Configuration(ctx context.Context) (*models.Configuration, error) {
	var cfg models.Configuration
	if err := c.getJSON(ctx, "/configuration", nil, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// SearchMulti searches movies, TV shows, and people in one call.
func (c *Client) SearchMulti(ctx context.Context, query string, page int) (*models.PagedResponse[models.SearchResult], error) {
	params := url.Values{}
	params.Set("query", query)
	params.Set("page", strconv.Itoa(page))
	var resp models.PagedResponse[models.SearchResult]
	if err := c.getJSON(ctx, "/search/multi", params, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Trending fetches the weekly trending feed across all media kinds.
func (c *Client) Trending(ctx context.Context) (*models.PagedResponse[models.SearchResult], error) {
	var resp models.PagedResponse[models.SearchResult]
	if err := c.getJSON(ctx, "/trending/all/week", nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Discover fetches a page of popular movies.
func (c *Client) Discover(ctx context.Context, page int) (*models.PagedResponse[models.SearchResult], error) {
	params := url.Values{}
	params.Set("page", strconv.Itoa(page))
	params.Set("sort_by", "popularity.desc")
	var resp models.PagedResponse[models.SearchResult]
	if err := c.getJSON(ctx, "/discover/movie", params, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// MovieDetails fetches a movie with credits and videos embedded in the same
// call via append_to_response.
func (c *Client) MovieDetails(ctx context.Context, id int) (*models.MovieDetails, error) {
	params := url.Values{}
	params.Set("append_to_response", "credits,videos")
	var details models.MovieDetails
	if err := c.getJSON(ctx, "/movie/"+strconv.Itoa(id), params, &details); err != nil {
		return nil, err
	}
	return &details, nil
}

// WatchProviders fetches regional streaming/rent/buy availability for a movie.
func (c *Client) WatchProviders(ctx context.Context, id int) (*models.WatchProviders, error) {
	var providers models.WatchProviders
	if err := c.getJSON(ctx, "/movie/"+strconv.Itoa(id)+"/watch/providers", nil, &providers); err != nil {
		return nil, err
	}
	return &providers, nil
}

// getJSON issues a GET against the given endpoint with the api_key attached
// and decodes the body into out.
func (c *Client) getJSON(ctx context.Context, endpoint string, params url.Values, out any) error {
	if params == nil {
		params = url.Values{}
	}
	params.Set("api_key", c.apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+endpoint+"?"+params.Encode(), nil)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodyBytes))
		return &UpstreamError{StatusCode: resp.StatusCode, Body: string(body)}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return &DecodeError{Endpoint: endpoint, Err: err}
	}
	return nil
}
