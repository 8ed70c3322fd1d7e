// Package storage defines the client-side session persistence boundary.
package storage

import (
	"context"
	"errors"
	"time"
)

// ErrSessionNotFound indicates that no session is stored locally
var ErrSessionNotFound = errors.New("session not found")

// Session represents the locally stored authentication state.
// Tokens are stored as issued; the file relies on 0600 permissions.
type Session struct {
	UserID           string `json:"user_id"`
	Login            string `json:"login"`
	AccessToken      string `json:"access_token"`
	RefreshToken     string `json:"refresh_token"`
	AccessExpiresAt  int64  `json:"access_expires_at"`  // unix seconds
	RefreshExpiresAt int64  `json:"refresh_expires_at"` // unix seconds
}

// AccessValid reports whether the access token is still usable
func (s *Session) AccessValid() bool {
	return time.Now().Unix() < s.AccessExpiresAt
}

// RefreshValid reports whether the refresh token is still usable
func (s *Session) RefreshValid() bool {
	return time.Now().Unix() < s.RefreshExpiresAt
}

//go:generate moq -out session_mock.go . SessionStorage

// SessionStorage defines interface for storing the single local session
type SessionStorage interface {
	// SaveSession stores the session, replacing any previous one
	SaveSession(ctx context.Context, session *Session) error

	// GetSession retrieves the stored session
	// Returns ErrSessionNotFound if nothing is stored
	GetSession(ctx context.Context) (*Session, error)

	// DeleteSession removes the stored session
	// Returns ErrSessionNotFound if nothing is stored
	DeleteSession(ctx context.Context) error
}
