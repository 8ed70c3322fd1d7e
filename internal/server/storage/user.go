package storage

import (
	"context"

	"github.com/iudanet/authgate/internal/models"
)

// UserStorage defines interface for user record persistence.
// The credential service reads records and mutates only the
// refresh_token_hash column; everything else is written at registration.
type UserStorage interface {
	// CreateUser creates a new user in the storage
	// Returns ErrUserAlreadyExists if login is taken
	CreateUser(ctx context.Context, user *models.User) error

	// GetUserByLogin retrieves user by login
	// Returns ErrUserNotFound if user doesn't exist
	GetUserByLogin(ctx context.Context, login string) (*models.User, error)

	// GetUserByID retrieves user by ID
	// Returns ErrUserNotFound if user doesn't exist
	GetUserByID(ctx context.Context, userID string) (*models.User, error)

	// SetRefreshTokenHash stores the hash of the single currently valid
	// refresh token, replacing any previous value
	// Returns ErrUserNotFound if user doesn't exist
	SetRefreshTokenHash(ctx context.Context, userID, hash string) error

	// ClearRefreshTokenHash removes the stored refresh token hash,
	// invalidating the user's session
	// Returns ErrUserNotFound if user doesn't exist
	ClearRefreshTokenHash(ctx context.Context, userID string) error
}
