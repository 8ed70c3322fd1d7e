package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAPIKeyMiddleware(t *testing.T) {
	tests := []struct {
		name       string
		headerKey  string
		wantStatus int
		wantNext   bool
	}{
		{
			name:       "valid key",
			headerKey:  "secret-api-key",
			wantStatus: http.StatusOK,
			wantNext:   true,
		},
		{
			name:       "missing key",
			headerKey:  "",
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "wrong key",
			headerKey:  "wrong-key",
			wantStatus: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			nextCalled := false
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				nextCalled = true
				w.WriteHeader(http.StatusOK)
			})

			handler := APIKeyMiddleware(testLogger(), "secret-api-key")(next)

			req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/register", nil)
			if tt.headerKey != "" {
				req.Header.Set("X-Api-Key", tt.headerKey)
			}
			w := httptest.NewRecorder()
			handler.ServeHTTP(w, req)

			assert.Equal(t, tt.wantStatus, w.Code)
			assert.Equal(t, tt.wantNext, nextCalled)
		})
	}
}
