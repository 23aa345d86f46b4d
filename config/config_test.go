package config

import "testing"

func TestFromEnvDefaults(t *testing.T) {
	t.Setenv("WATCHDECK_TMDB_API_KEY", "test-key")

	cfg, err := FromEnv()
	if err != nil {
		t.Fatalf("expected config, got error: %v", err)
	}

	if cfg.ListenAddr != ":8080" {
		t.Fatalf("unexpected listen addr %q", cfg.ListenAddr)
	}
	if cfg.CacheTTLMinutes != 30 {
		t.Fatalf("expected default TTL of 30 minutes, got %d", cfg.CacheTTLMinutes)
	}
	if cfg.SQLitePath != "data/watchdeck.db" {
		t.Fatalf("unexpected sqlite path %q", cfg.SQLitePath)
	}
}

func TestFromEnvRequiresAPIKey(t *testing.T) {
	t.Setenv("WATCHDECK_TMDB_API_KEY", "")

	if _, err := FromEnv(); err == nil {
		t.Fatal("expected error without API key")
	}
}

func TestFromEnvParsesOverrides(t *testing.T) {
	t.Setenv("WATCHDECK_TMDB_API_KEY", "test-key")
	t.Setenv("WATCHDECK_CACHE_TTL_MINUTES", "5")
	t.Setenv("WATCHDECK_ALLOWED_ORIGINS", "https://app.example.com, https://beta.example.com ,")
	t.Setenv("WATCHDECK_FIRESTORE_PROJECT", "watchdeck-prod")

	cfg, err := FromEnv()
	if err != nil {
		t.Fatalf("expected config, got error: %v", err)
	}

	if cfg.CacheTTLMinutes != 5 {
		t.Fatalf("expected TTL override, got %d", cfg.CacheTTLMinutes)
	}
	if len(cfg.AllowedOrigins) != 2 || cfg.AllowedOrigins[1] != "https://beta.example.com" {
		t.Fatalf("unexpected origins %v", cfg.AllowedOrigins)
	}
	if cfg.FirestoreProject != "watchdeck-prod" {
		t.Fatalf("unexpected firestore project %q", cfg.FirestoreProject)
	}
}

func TestFromEnvRejectsBadTTL(t *testing.T) {
	t.Setenv("WATCHDECK_TMDB_API_KEY", "test-key")

	for _, ttl := range []string{"abc", "0", "-10"} {
		t.Setenv("WATCHDECK_CACHE_TTL_MINUTES", ttl)
		if _, err := FromEnv(); err == nil {
			t.Fatalf("expected error for TTL %q", ttl)
		}
	}
}
