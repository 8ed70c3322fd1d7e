package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/iudanet/authgate/internal/models"
	"github.com/iudanet/authgate/internal/server/auth"
	"github.com/iudanet/authgate/internal/server/storage"
	"github.com/iudanet/authgate/internal/validation"
	"github.com/iudanet/authgate/pkg/api"
)

// CredentialService is the part of the credential service the HTTP layer needs
type CredentialService interface {
	Register(ctx context.Context, login, password, role string) (*models.User, error)
	Login(ctx context.Context, login, password string) (*auth.TokenPair, error)
	Refresh(ctx context.Context, refreshToken string) (*auth.TokenPair, error)
	Logout(ctx context.Context, userID string) error
}

// AuthHandler обрабатывает запросы авторизации
type AuthHandler struct {
	logger  *slog.Logger
	service CredentialService
}

// NewAuthHandler создает новый handler для авторизации
func NewAuthHandler(logger *slog.Logger, service CredentialService) *AuthHandler {
	return &AuthHandler{
		logger:  logger,
		service: service,
	}
}

// Register обрабатывает POST /api/v1/auth/register
// Регистрация нового пользователя
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req api.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.ErrorContext(ctx, "failed to decode register request", slog.Any("error", err))
		sendError(h.logger, w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := validation.ValidateLogin(req.Login); err != nil {
		h.logger.WarnContext(ctx, "invalid login", slog.String("login", req.Login), slog.Any("error", err))
		sendError(h.logger, w, http.StatusBadRequest, err.Error())
		return
	}

	if err := validation.ValidatePassword(req.Password); err != nil {
		sendError(h.logger, w, http.StatusBadRequest, err.Error())
		return
	}

	// Роль по умолчанию — обычный пользователь
	role := req.Role
	if role == "" {
		role = models.RoleUser
	}
	if role != models.RoleUser && role != models.RoleAdmin {
		sendError(h.logger, w, http.StatusBadRequest, "unknown role")
		return
	}

	user, err := h.service.Register(ctx, req.Login, req.Password, role)
	if err != nil {
		if errors.Is(err, storage.ErrUserAlreadyExists) {
			h.logger.WarnContext(ctx, "user already exists", slog.String("login", req.Login))
			sendError(h.logger, w, http.StatusConflict, "login already taken")
			return
		}
		h.logger.ErrorContext(ctx, "failed to register user", slog.Any("error", err))
		sendError(h.logger, w, http.StatusInternalServerError, "internal server error")
		return
	}

	h.logger.InfoContext(ctx, "user registered successfully",
		slog.String("login", user.Login),
		slog.String("user_id", user.ID))

	sendJSON(h.logger, w, http.StatusCreated, "user registered successfully",
		api.RegisterData{UserID: user.ID})
}

// Login обрабатывает POST /api/v1/auth/login
// Аутентификация пользователя и выдача пары токенов
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req api.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.ErrorContext(ctx, "failed to decode login request", slog.Any("error", err))
		sendError(h.logger, w, http.StatusBadRequest, "invalid request body")
		return
	}

	if req.Login == "" || req.Password == "" {
		sendError(h.logger, w, http.StatusBadRequest, "login and password are required")
		return
	}

	pair, err := h.service.Login(ctx, req.Login, req.Password)
	if err != nil {
		// Неизвестный логин и неверный пароль неразличимы для клиента
		if errors.Is(err, auth.ErrInvalidCredentials) {
			h.logger.WarnContext(ctx, "login failed", slog.String("login", req.Login))
			sendError(h.logger, w, http.StatusUnauthorized, "invalid credentials")
			return
		}
		h.logger.ErrorContext(ctx, "login error", slog.Any("error", err))
		sendError(h.logger, w, http.StatusInternalServerError, "internal server error")
		return
	}

	h.logger.InfoContext(ctx, "user logged in successfully", slog.String("login", req.Login))

	sendJSON(h.logger, w, http.StatusOK, "login successful", tokenData(pair))
}

// Refresh обрабатывает POST /api/v1/auth/refresh
// Ротация пары токенов по refresh токену
func (h *AuthHandler) Refresh(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req api.RefreshRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.ErrorContext(ctx, "failed to decode refresh request", slog.Any("error", err))
		sendError(h.logger, w, http.StatusBadRequest, "invalid request body")
		return
	}

	pair, err := h.service.Refresh(ctx, req.RefreshToken)
	if err != nil {
		switch {
		case errors.Is(err, auth.ErrAccessDenied):
			// Просроченный, поврежденный или чужой токен: клиенту нужен новый логин
			h.logger.WarnContext(ctx, "refresh token rejected", slog.Any("error", err))
			sendError(h.logger, w, http.StatusUnauthorized, "access denied")
		case errors.Is(err, auth.ErrInvalidCredentials):
			h.logger.WarnContext(ctx, "refresh failed: no matching session")
			sendError(h.logger, w, http.StatusUnauthorized, "invalid credentials")
		default:
			h.logger.ErrorContext(ctx, "refresh error", slog.Any("error", err))
			sendError(h.logger, w, http.StatusInternalServerError, "internal server error")
		}
		return
	}

	h.logger.InfoContext(ctx, "tokens refreshed successfully")

	sendJSON(h.logger, w, http.StatusOK, "tokens refreshed successfully", tokenData(pair))
}

// Logout обрабатывает POST /api/v1/auth/logout
// Снимает сессию пользователя, идентификация — из проверенного access токена
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := GetUserID(ctx)
	if !ok {
		sendError(h.logger, w, http.StatusUnauthorized, "access denied")
		return
	}

	if err := h.service.Logout(ctx, userID); err != nil {
		h.logger.ErrorContext(ctx, "logout error", slog.Any("error", err))
		sendError(h.logger, w, http.StatusInternalServerError, "internal server error")
		return
	}

	h.logger.InfoContext(ctx, "user logged out successfully", slog.String("user_id", userID))

	sendJSON(h.logger, w, http.StatusOK, "logout successful", nil)
}

// tokenData маппирует пару токенов в wire-формат
func tokenData(pair *auth.TokenPair) api.TokenData {
	return api.TokenData{
		AccessToken:         pair.AccessToken,
		AccessTokenExpires:  pair.AccessTokenExpires,
		RefreshToken:        pair.RefreshToken,
		RefreshTokenExpires: pair.RefreshTokenExpires,
	}
}
