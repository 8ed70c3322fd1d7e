package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/iudanet/authgate/internal/models"
	"github.com/iudanet/authgate/internal/server/storage"
)

// CreateUser creates a new user in the storage
func (s *Storage) CreateUser(ctx context.Context, user *models.User) error {
	query := `
		INSERT INTO users (id, login, password_hash, refresh_token_hash, role, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`

	var refreshTokenHash sql.NullString
	if user.RefreshTokenHash != nil {
		refreshTokenHash = sql.NullString{String: *user.RefreshTokenHash, Valid: true}
	}

	_, err := s.db.ExecContext(ctx, query,
		user.ID,
		user.Login,
		user.PasswordHash,
		refreshTokenHash,
		user.Role,
		user.CreatedAt,
		user.UpdatedAt,
	)

	if err != nil {
		// Проверяем на duplicate login
		if strings.Contains(err.Error(), "UNIQUE constraint failed") {
			return storage.ErrUserAlreadyExists
		}
		return fmt.Errorf("failed to insert user: %w", err)
	}

	return nil
}

// GetUserByLogin retrieves user by login
func (s *Storage) GetUserByLogin(ctx context.Context, login string) (*models.User, error) {
	query := `
		SELECT id, login, password_hash, refresh_token_hash, role, created_at, updated_at
		FROM users
		WHERE login = ?
	`

	return s.scanUser(s.db.QueryRowContext(ctx, query, login))
}

// GetUserByID retrieves user by ID
func (s *Storage) GetUserByID(ctx context.Context, userID string) (*models.User, error) {
	query := `
		SELECT id, login, password_hash, refresh_token_hash, role, created_at, updated_at
		FROM users
		WHERE id = ?
	`

	return s.scanUser(s.db.QueryRowContext(ctx, query, userID))
}

// SetRefreshTokenHash stores the hash of the current refresh token,
// replacing any previous session
func (s *Storage) SetRefreshTokenHash(ctx context.Context, userID, hash string) error {
	query := `UPDATE users SET refresh_token_hash = ?, updated_at = ? WHERE id = ?`

	result, err := s.db.ExecContext(ctx, query, hash, time.Now(), userID)
	if err != nil {
		return fmt.Errorf("failed to set refresh token hash: %w", err)
	}

	return s.checkAffected(result)
}

// ClearRefreshTokenHash removes the stored refresh token hash
func (s *Storage) ClearRefreshTokenHash(ctx context.Context, userID string) error {
	query := `UPDATE users SET refresh_token_hash = NULL, updated_at = ? WHERE id = ?`

	result, err := s.db.ExecContext(ctx, query, time.Now(), userID)
	if err != nil {
		return fmt.Errorf("failed to clear refresh token hash: %w", err)
	}

	return s.checkAffected(result)
}

// scanUser читает строку users в модель, разворачивая nullable колонку
func (s *Storage) scanUser(row *sql.Row) (*models.User, error) {
	user := &models.User{}
	var refreshTokenHash sql.NullString

	err := row.Scan(
		&user.ID,
		&user.Login,
		&user.PasswordHash,
		&refreshTokenHash,
		&user.Role,
		&user.CreatedAt,
		&user.UpdatedAt,
	)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	if refreshTokenHash.Valid {
		user.RefreshTokenHash = &refreshTokenHash.String
	}

	return user, nil
}

func (s *Storage) checkAffected(result sql.Result) error {
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rows == 0 {
		return storage.ErrUserNotFound
	}

	return nil
}
