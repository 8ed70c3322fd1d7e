// Package auth implements the credential service: it authenticates
// login/password pairs, issues signed access/refresh token pairs, rotates
// refresh tokens and revokes sessions. The service itself does not log;
// handlers log around it.
package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/iudanet/authgate/internal/models"
	"github.com/iudanet/authgate/internal/server/storage"
)

// TokenPair — пара токенов, возвращаемая клиенту.
// Сроки действия в секундах, как в ответе API.
type TokenPair struct {
	AccessToken         string
	AccessTokenExpires  int64
	RefreshToken        string
	RefreshTokenExpires int64
}

// Service предоставляет операции аутентификации поверх хранилища пользователей.
// Конфигурация (секрет, сроки действия, bcrypt cost) неизменяема после создания.
type Service struct {
	users      storage.UserStorage
	tokens     TokenConfig
	bcryptCost int
}

// NewService создает новый credential service
func NewService(users storage.UserStorage, tokens TokenConfig, bcryptCost int) *Service {
	return &Service{
		users:      users,
		tokens:     tokens,
		bcryptCost: bcryptCost,
	}
}

// Register создает нового пользователя с bcrypt хешем пароля.
// Возвращает storage.ErrUserAlreadyExists если логин занят.
func (s *Service) Register(ctx context.Context, login, password, role string) (*models.User, error) {
	passwordHash, err := HashPassword(password, s.bcryptCost)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	user := &models.User{
		ID:           uuid.New().String(),
		Login:        login,
		PasswordHash: passwordHash,
		Role:         role,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.users.CreateUser(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}

// Login проверяет учетные данные и выдает новую пару токенов.
// Неизвестный логин и неверный пароль возвращают одну и ту же
// ErrInvalidCredentials, чтобы не раскрывать существование логина.
func (s *Service) Login(ctx context.Context, login, password string) (*TokenPair, error) {
	user, err := s.users.GetUserByLogin(ctx, login)
	if err != nil {
		if errors.Is(err, storage.ErrUserNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	if err := CheckPassword(password, user.PasswordHash); err != nil {
		return nil, ErrInvalidCredentials
	}

	return s.issueTokens(ctx, user)
}

// Refresh проверяет предъявленный refresh токен и выполняет ротацию:
// выдает новую пару и перезаписывает сохраненный хеш, старый refresh токен
// перестает действовать.
//
// Токен самоописывающий: подпись и срок действия проверяются до обращения
// к хранилищу, id пользователя берется из claims. Ошибка верификации —
// ErrAccessDenied; несовпадение с сохраненным хешем сжигает сессию и
// возвращает ErrInvalidCredentials.
//
// Чтение и перезапись хеша не атомарны: из двух конкурентных refresh
// одного пользователя выживает перезаписавший хеш последним.
func (s *Service) Refresh(ctx context.Context, refreshToken string) (*TokenPair, error) {
	claims, err := VerifyToken(s.tokens, refreshToken)
	if err != nil {
		return nil, accessDenied(err)
	}

	user, err := s.users.GetUserByID(ctx, claims.Subject)
	if err != nil {
		if errors.Is(err, storage.ErrUserNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	if !user.HasSession() {
		return nil, ErrInvalidCredentials
	}

	if err := CheckRefreshToken(refreshToken, *user.RefreshTokenHash); err != nil {
		// Токен подписан нами, но не совпадает с текущей сессией:
		// предъявлен устаревший или украденный refresh токен
		if clearErr := s.users.ClearRefreshTokenHash(ctx, user.ID); clearErr != nil &&
			!errors.Is(clearErr, storage.ErrUserNotFound) {
			return nil, fmt.Errorf("failed to clear refresh token hash: %w", clearErr)
		}
		return nil, ErrInvalidCredentials
	}

	return s.issueTokens(ctx, user)
}

// Logout снимает сессию пользователя. Идемпотентен: повторный выход
// и выход без активной сессии — успешный no-op.
func (s *Service) Logout(ctx context.Context, userID string) error {
	if err := s.users.ClearRefreshTokenHash(ctx, userID); err != nil &&
		!errors.Is(err, storage.ErrUserNotFound) {
		return fmt.Errorf("failed to clear refresh token hash: %w", err)
	}
	return nil
}

// issueTokens подписывает пару токенов с одинаковым payload и сохраняет
// хеш refresh токена, перезаписывая предыдущую сессию.
// Сам refresh токен нигде не сохраняется.
func (s *Service) issueTokens(ctx context.Context, user *models.User) (*TokenPair, error) {
	payload := TokenPayload{
		UserID: user.ID,
		Login:  user.Login,
		Role:   user.Role,
	}

	accessToken, err := SignToken(s.tokens, payload, s.tokens.AccessTokenTTL)
	if err != nil {
		return nil, err
	}

	refreshToken, err := SignToken(s.tokens, payload, s.tokens.RefreshTokenTTL)
	if err != nil {
		return nil, err
	}

	refreshTokenHash, err := HashRefreshToken(refreshToken, s.bcryptCost)
	if err != nil {
		return nil, err
	}

	if err := s.users.SetRefreshTokenHash(ctx, user.ID, refreshTokenHash); err != nil {
		return nil, fmt.Errorf("failed to store refresh token hash: %w", err)
	}

	return &TokenPair{
		AccessToken:         accessToken,
		AccessTokenExpires:  int64(s.tokens.AccessTokenTTL.Seconds()),
		RefreshToken:        refreshToken,
		RefreshTokenExpires: int64(s.tokens.RefreshTokenTTL.Seconds()),
	}, nil
}
