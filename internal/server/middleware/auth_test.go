package middleware

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/authgate/internal/server/auth"
	"github.com/iudanet/authgate/internal/server/handlers"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testTokenConfig() auth.TokenConfig {
	return auth.TokenConfig{
		Secret:          []byte("test-secret-key"),
		AccessTokenTTL:  15 * time.Minute,
		RefreshTokenTTL: time.Hour,
	}
}

func TestAuthMiddleware_ValidToken(t *testing.T) {
	cfg := testTokenConfig()

	token, err := auth.SignToken(cfg, auth.TokenPayload{
		UserID: "user-123",
		Login:  "testuser",
		Role:   "user",
	}, cfg.AccessTokenTTL)
	require.NoError(t, err)

	var gotUserID, gotLogin, gotRole string
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUserID, _ = handlers.GetUserID(r.Context())
		gotLogin, _ = handlers.GetLogin(r.Context())
		gotRole, _ = handlers.GetRole(r.Context())
		w.WriteHeader(http.StatusOK)
	})

	handler := AuthMiddleware(testLogger(), cfg)(next)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/logout", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "user-123", gotUserID)
	assert.Equal(t, "testuser", gotLogin)
	assert.Equal(t, "user", gotRole)
}

func TestAuthMiddleware_Rejected(t *testing.T) {
	cfg := testTokenConfig()

	expired, err := auth.SignToken(cfg, auth.TokenPayload{
		UserID: "user-123",
		Login:  "testuser",
		Role:   "user",
	}, -time.Minute)
	require.NoError(t, err)

	tests := []struct {
		name       string
		authHeader string
	}{
		{name: "missing header", authHeader: ""},
		{name: "not bearer scheme", authHeader: "Basic dXNlcjpwYXNz"},
		{name: "malformed header", authHeader: "Bearer"},
		{name: "garbage token", authHeader: "Bearer not-a-token"},
		{name: "expired token", authHeader: "Bearer " + expired},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				t.Fatal("next handler should not be called")
			})

			handler := AuthMiddleware(testLogger(), cfg)(next)

			req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/logout", nil)
			if tt.authHeader != "" {
				req.Header.Set("Authorization", tt.authHeader)
			}
			w := httptest.NewRecorder()
			handler.ServeHTTP(w, req)

			assert.Equal(t, http.StatusUnauthorized, w.Code)
		})
	}
}

func TestAuthMiddleware_WrongSecret(t *testing.T) {
	cfg := testTokenConfig()

	otherCfg := cfg
	otherCfg.Secret = []byte("another-secret")

	token, err := auth.SignToken(otherCfg, auth.TokenPayload{
		UserID: "user-123",
		Login:  "testuser",
		Role:   "user",
	}, time.Minute)
	require.NoError(t, err)

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("next handler should not be called")
	})

	handler := AuthMiddleware(testLogger(), cfg)(next)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/logout", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
