package auth

import "net/http"

// ContextKey is the type used for context keys
type ContextKey string

// ContextKeyUserID is the key for the resolved user ID in the context
const ContextKeyUserID ContextKey = "userID"

// GetUserID retrieves the authenticated user ID from the request context.
func GetUserID(r *http.Request) string {
	if id, ok := r.Context().Value(ContextKeyUserID).(string); ok {
		return id
	}
	return ""
}
