package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Config holds the process configuration, read from WATCHDECK_* environment
// variables at startup.
type Config struct {
	// ListenAddr is the host:port the HTTP server binds to.
	ListenAddr string

	// TMDBBaseURL and TMDBAPIKey configure the upstream metadata API.
	TMDBBaseURL string
	TMDBAPIKey  string

	// CacheTTLMinutes is the TTL applied to cacheable upstream responses.
	CacheTTLMinutes int

	// FirestoreProject selects the Firestore watchlist store when non-empty;
	// otherwise the SQLite store at SQLitePath is used.
	FirestoreProject     string
	FirestoreCredentials string
	SQLitePath           string

	// AllowedOrigins are additional CORS origins beyond localhost.
	AllowedOrigins []string

	// LogFile enables rotated file logging when non-empty.
	LogFile string
}

// FromEnv builds a Config from the environment, applying defaults.
func FromEnv() (Config, error) {
	cfg := Config{
		ListenAddr:           envOr("WATCHDECK_LISTEN_ADDR", ":8080"),
		TMDBBaseURL:          os.Getenv("WATCHDECK_TMDB_BASE_URL"),
		TMDBAPIKey:           os.Getenv("WATCHDECK_TMDB_API_KEY"),
		CacheTTLMinutes:      30,
		FirestoreProject:     os.Getenv("WATCHDECK_FIRESTORE_PROJECT"),
		FirestoreCredentials: os.Getenv("WATCHDECK_FIRESTORE_CREDENTIALS"),
		SQLitePath:           envOr("WATCHDECK_SQLITE_PATH", "data/watchdeck.db"),
		LogFile:              os.Getenv("WATCHDECK_LOG_FILE"),
	}

	if raw := os.Getenv("WATCHDECK_CACHE_TTL_MINUTES"); raw != "" {
		ttl, err := strconv.Atoi(raw)
		if err != nil || ttl <= 0 {
			return Config{}, fmt.Errorf("WATCHDECK_CACHE_TTL_MINUTES must be a positive integer, got %q", raw)
		}
		cfg.CacheTTLMinutes = ttl
	}

	if raw := os.Getenv("WATCHDECK_ALLOWED_ORIGINS"); raw != "" {
		for _, origin := range strings.Split(raw, ",") {
			if origin = strings.TrimSpace(origin); origin != "" {
				cfg.AllowedOrigins = append(cfg.AllowedOrigins, origin)
			}
		}
	}

	if cfg.TMDBAPIKey == "" {
		return Config{}, fmt.Errorf("WATCHDECK_TMDB_API_KEY is required")
	}
	return cfg, nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
