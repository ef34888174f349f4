package httpapi

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/TECHBREW-hub/TravelSure/internal/app/store"
	"github.com/TECHBREW-hub/TravelSure/internal/domain"
	"github.com/TECHBREW-hub/TravelSure/internal/platform/auth/sessiontoken"
)

func middlewareEnv(t *testing.T, user *domain.User) http.Handler {
	t.Helper()

	st := store.New()
	if user != nil {
		st.Dispatch(store.Login{User: *user})
	}

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, ok := UserIDFromContext(r.Context())
		require.True(t, ok)
		_, _ = w.Write([]byte(string(id)))
	})
	return NewAuthMiddleware(testSecret, st)(next)
}

func TestAuthMiddleware_MissingHeader(t *testing.T) {
	h := middlewareEnv(t, nil)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/me", nil))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthMiddleware_MalformedHeader(t *testing.T) {
	h := middlewareEnv(t, nil)

	req := httptest.NewRequest(http.MethodGet, "/v1/me", nil)
	req.Header.Set("Authorization", "Basic abc123")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthMiddleware_ValidTokenMatchingSession(t *testing.T) {
	u := domain.User{ID: "1", Name: "John Doe", Email: "john@example.com"}
	h := middlewareEnv(t, &u)

	tok, err := sessiontoken.Mint(u, testSecret, time.Hour)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/v1/me", nil)
	req.Header.Set("Authorization", "Bearer "+tok)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "1", rec.Body.String())
}

func TestAuthMiddleware_TokenForDifferentSession(t *testing.T) {
	active := domain.User{ID: "1", Name: "John Doe", Email: "john@example.com"}
	h := middlewareEnv(t, &active)

	other := domain.User{ID: "2", Name: "Priya Sharma", Email: "priya@example.com"}
	tok, err := sessiontoken.Mint(other, testSecret, time.Hour)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/v1/me", nil)
	req.Header.Set("Authorization", "Bearer "+tok)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthMiddleware_WrongKeyToken(t *testing.T) {
	u := domain.User{ID: "1", Name: "John Doe", Email: "john@example.com"}
	h := middlewareEnv(t, &u)

	tok, err := sessiontoken.Mint(u, "some-other-secret", time.Hour)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/v1/me", nil)
	req.Header.Set("Authorization", "Bearer "+tok)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
