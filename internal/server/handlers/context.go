package handlers

import "context"

// contextKey is a private type for context keys to avoid collisions
type contextKey string

// Context keys for authenticated request identity, populated by the
// auth middleware from verified access-token claims
const (
	UserIDKey contextKey = "user_id"
	LoginKey  contextKey = "login"
	RoleKey   contextKey = "role"
)

// GetUserID извлекает ID пользователя из контекста запроса
func GetUserID(ctx context.Context) (string, bool) {
	userID, ok := ctx.Value(UserIDKey).(string)
	return userID, ok
}

// GetLogin извлекает логин пользователя из контекста запроса
func GetLogin(ctx context.Context) (string, bool) {
	login, ok := ctx.Value(LoginKey).(string)
	return login, ok
}

// GetRole извлекает роль пользователя из контекста запроса
func GetRole(ctx context.Context) (string, bool) {
	role, ok := ctx.Value(RoleKey).(string)
	return role, ok
}

// WithIdentity кладет данные проверенного токена в контекст
func WithIdentity(ctx context.Context, userID, login, role string) context.Context {
	ctx = context.WithValue(ctx, UserIDKey, userID)
	ctx = context.WithValue(ctx, LoginKey, login)
	return context.WithValue(ctx, RoleKey, role)
}
