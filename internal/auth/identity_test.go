package auth

import (
	"net/http/httptest"
	"testing"

	"github.com/golang-jwt/jwt/v5"
)

func signedToken(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	if err != nil {
		t.Fatalf("failed to sign token: %v", err)
	}
	return token
}

func TestResolveUserIDFromBearerSubject(t *testing.T) {
	r := httptest.NewRequest("GET", "/api/watchlist", nil)
	r.Header.Set("Authorization", "Bearer "+signedToken(t, jwt.MapClaims{"sub": "firebase-uid-123"}))

	if got := ResolveUserID(r); got != "firebase-uid-123" {
		t.Fatalf("expected subject claim, got %q", got)
	}
}

func TestResolveUserIDBearerWinsOverHeader(t *testing.T) {
	r := httptest.NewRequest("GET", "/api/watchlist", nil)
	r.Header.Set("Authorization", "bearer "+signedToken(t, jwt.MapClaims{"sub": "token-user"}))
	r.Header.Set(DevUserHeader, "header-user")

	if got := ResolveUserID(r); got != "token-user" {
		t.Fatalf("expected token subject to take priority, got %q", got)
	}
}

func TestResolveUserIDFallsBackToDevHeader(t *testing.T) {
	r := httptest.NewRequest("GET", "/api/watchlist", nil)
	r.Header.Set(DevUserHeader, "  dev-user  ")

	if got := ResolveUserID(r); got != "dev-user" {
		t.Fatalf("expected trimmed dev header value, got %q", got)
	}
}

func TestResolveUserIDEmptyWithoutIdentity(t *testing.T) {
	r := httptest.NewRequest("GET", "/api/watchlist", nil)
	if got := ResolveUserID(r); got != "" {
		t.Fatalf("expected empty id without identity, got %q", got)
	}

	r = httptest.NewRequest("GET", "/api/watchlist", nil)
	r.Header.Set("Authorization", "Bearer not-a-jwt")
	if got := ResolveUserID(r); got != "" {
		t.Fatalf("expected empty id for malformed token, got %q", got)
	}

	r = httptest.NewRequest("GET", "/api/watchlist", nil)
	r.Header.Set("Authorization", "Basic dXNlcjpwYXNz")
	if got := ResolveUserID(r); got != "" {
		t.Fatalf("expected empty id for non-bearer scheme, got %q", got)
	}

	r = httptest.NewRequest("GET", "/api/watchlist", nil)
	r.Header.Set("Authorization", "Bearer "+signedToken(t, jwt.MapClaims{"aud": "watchdeck"}))
	if got := ResolveUserID(r); got != "" {
		t.Fatalf("expected empty id for token without subject, got %q", got)
	}
}
