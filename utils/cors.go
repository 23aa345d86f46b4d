package utils

import (
	"net/url"
	"strings"
)

// OriginChecker decides which Origin header values are trusted for CORS.
// Localhost is always allowed so the web client can develop against a local
// backend; everything else must be listed explicitly.
type OriginChecker struct {
	allowed map[string]struct{}
}

// NewOriginChecker builds a checker from configured origins. Entries are
// matched case-insensitively on scheme://host[:port].
func NewOriginChecker(origins []string) *OriginChecker {
	allowed := make(map[string]struct{}, len(origins))
	for _, origin := range origins {
		allowed[strings.ToLower(strings.TrimRight(origin, "/"))] = struct{}{}
	}
	return &OriginChecker{allowed: allowed}
}

// Allowed reports whether the given Origin header value should be trusted.
func (c *OriginChecker) Allowed(origin string) bool {
	if origin == "" {
		return false
	}
	if _, ok := c.allowed[strings.ToLower(strings.TrimRight(origin, "/"))]; ok {
		return true
	}

	parsed, err := url.Parse(origin)
	if err != nil || parsed.Host == "" {
		return false
	}
	hostname := parsed.Hostname()
	return hostname == "localhost" || hostname == "127.0.0.1" || hostname == "::1"
}
