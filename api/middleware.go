package api

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"watchdeck/internal/auth"
	"watchdeck/models"
)

// RequireUserMiddleware resolves the caller's identity (bearer token subject
// claim, with an X-User-Id fallback for development) and injects it into the
// request context. Requests with no resolvable identity get a 401 envelope.
func RequireUserMiddleware() mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			// Always allow OPTIONS for CORS
			if r.Method == http.MethodOptions {
				next.ServeHTTP(w, r)
				return
			}

			userID := auth.ResolveUserID(r)
			if userID == "" {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusUnauthorized)
				json.NewEncoder(w).Encode(models.Fail("authentication required"))
				return
			}

			ctx := context.WithValue(r.Context(), auth.ContextKeyUserID, userID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
