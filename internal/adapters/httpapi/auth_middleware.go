package httpapi

import (
	"net/http"
	"strings"

	"github.com/TECHBREW-hub/TravelSure/internal/app/store"
	"github.com/TECHBREW-hub/TravelSure/internal/platform/auth/sessiontoken"
)

// NewAuthMiddleware enforces Authorization: Bearer <token> on the protected
// routes. The server holds a single storefront session; a token whose subject
// is not the currently signed-in user is rejected even when its signature is
// valid (it belongs to a session that has since been logged out or replaced).
func NewAuthMiddleware(secret string, st *store.Store) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authz := r.Header.Get("Authorization")
			if authz == "" {
				writeError(w, r, http.StatusUnauthorized, "UNAUTHORIZED", "missing Authorization header", nil)
				return
			}
			const prefix = "Bearer "
			if !strings.HasPrefix(authz, prefix) {
				writeError(w, r, http.StatusUnauthorized, "UNAUTHORIZED", "malformed Authorization header", nil)
				return
			}
			raw := strings.TrimSpace(strings.TrimPrefix(authz, prefix))
			if raw == "" {
				writeError(w, r, http.StatusUnauthorized, "UNAUTHORIZED", "missing bearer token", nil)
				return
			}

			claims, err := sessiontoken.Parse(raw, secret)
			if err != nil {
				writeError(w, r, http.StatusUnauthorized, "UNAUTHORIZED", "invalid token", nil)
				return
			}

			snap := st.Snapshot()
			if snap.User == nil || snap.User.ID != claims.UserID() {
				writeError(w, r, http.StatusUnauthorized, "SESSION_MISMATCH", "token does not match the active session", nil)
				return
			}

			next.ServeHTTP(w, r.WithContext(WithUserID(r.Context(), claims.UserID())))
		})
	}
}
