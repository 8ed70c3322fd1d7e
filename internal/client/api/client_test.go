package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/authgate/pkg/api"
)

func testTokenData() api.TokenData {
	return api.TokenData{
		AccessToken:         "access-token",
		AccessTokenExpires:  900,
		RefreshToken:        "refresh-token",
		RefreshTokenExpires: 3600,
	}
}

func writeEnvelope(t *testing.T, w http.ResponseWriter, statusCode int, message string, data any) {
	t.Helper()
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	require.NoError(t, json.NewEncoder(w).Encode(api.Response{
		Message:    message,
		StatusCode: statusCode,
		Data:       data,
	}))
}

func TestClient_Register(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/v1/auth/register", r.URL.Path)
		assert.Equal(t, "service-key", r.Header.Get("X-Api-Key"))

		var req api.RegisterRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "newuser", req.Login)

		writeEnvelope(t, w, http.StatusCreated, "user registered successfully",
			api.RegisterData{UserID: "user-123"})
	}))
	defer server.Close()

	client := NewClient(server.URL, "service-key")

	data, err := client.Register(context.Background(), api.RegisterRequest{
		Login:    "newuser",
		Password: "password123",
	})
	require.NoError(t, err)
	assert.Equal(t, "user-123", data.UserID)
}

func TestClient_Login(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/auth/login", r.URL.Path)
		writeEnvelope(t, w, http.StatusOK, "login successful", testTokenData())
	}))
	defer server.Close()

	client := NewClient(server.URL, "")

	data, err := client.Login(context.Background(), api.LoginRequest{
		Login:    "testuser",
		Password: "password123",
	})
	require.NoError(t, err)
	assert.Equal(t, "access-token", data.AccessToken)
	assert.Equal(t, "refresh-token", data.RefreshToken)
	assert.Equal(t, int64(900), data.AccessTokenExpires)
	assert.Equal(t, int64(3600), data.RefreshTokenExpires)
}

func TestClient_Login_InvalidCredentials(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeEnvelope(t, w, http.StatusUnauthorized, "invalid credentials", nil)
	}))
	defer server.Close()

	client := NewClient(server.URL, "")

	data, err := client.Login(context.Background(), api.LoginRequest{
		Login:    "testuser",
		Password: "wrongpassword",
	})
	require.Error(t, err)
	assert.Nil(t, data)
	// Сообщение сервера доходит до пользователя
	assert.Contains(t, err.Error(), "invalid credentials")
}

func TestClient_Refresh(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/auth/refresh", r.URL.Path)

		var req api.RefreshRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "old-refresh-token", req.RefreshToken)

		writeEnvelope(t, w, http.StatusOK, "tokens refreshed successfully", testTokenData())
	}))
	defer server.Close()

	client := NewClient(server.URL, "")

	data, err := client.Refresh(context.Background(), "old-refresh-token")
	require.NoError(t, err)
	assert.Equal(t, "refresh-token", data.RefreshToken)
}

func TestClient_Logout(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/auth/logout", r.URL.Path)
		assert.Equal(t, "Bearer access-token", r.Header.Get("Authorization"))
		writeEnvelope(t, w, http.StatusOK, "logout successful", nil)
	}))
	defer server.Close()

	client := NewClient(server.URL, "")

	assert.NoError(t, client.Logout(context.Background(), "access-token"))
}

func TestClient_ServerError_NonEnvelope(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "bad gateway", http.StatusBadGateway)
	}))
	defer server.Close()

	client := NewClient(server.URL, "")

	_, err := client.Login(context.Background(), api.LoginRequest{
		Login:    "testuser",
		Password: "password123",
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "502")
}
