package middleware

import (
	"net/http"

	"github.com/frahmantamala/expense-tracker/internal"
)

// UserContext lifts the caller's user id into the request context. Identity
// is asserted upstream; the API only scopes data by it.
func UserContext(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if userID := r.Header.Get("X-User-ID"); userID != "" {
			r = r.WithContext(internal.ContextWithUserID(r.Context(), userID))
		}
		next.ServeHTTP(w, r)
	})
}
