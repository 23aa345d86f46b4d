package tmdb

import (
	"errors"
	"fmt"
	"net/http"
)

// Validation sentinels returned before any upstream call is made.
var (
	ErrQueryRequired = errors.New("search query is required")
	ErrInvalidPage   = errors.New("page must be greater than zero")
	ErrInvalidID     = errors.New("id must be greater than zero")
)

// UpstreamError reports a non-2xx response from the TMDB API. The body is
// kept for diagnostics; it is not forwarded to clients.
type UpstreamError struct {
	StatusCode int
	Body       string
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("tmdb upstream returned status %d: %s", e.StatusCode, e.Body)
}

// NotFound reports whether the upstream rejected the request with a 404,
// e.g. an unknown movie id.
func (e *UpstreamError) NotFound() bool {
	return e.StatusCode == http.StatusNotFound
}

// DecodeError reports a response body that did not match the expected shape.
type DecodeError struct {
	Endpoint string
	Err      error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("tmdb response for %s could not be decoded: %v", e.Endpoint, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}
