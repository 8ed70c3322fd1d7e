package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/iudanet/authgate/internal/server/auth"
	"github.com/iudanet/authgate/internal/server/handlers"
)

// AuthMiddleware создает middleware для проверки access токена.
// Данные проверенного токена кладутся в контекст запроса.
func AuthMiddleware(logger *slog.Logger, tokens auth.TokenConfig) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			// Извлекаем токен из заголовка Authorization
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				logger.Warn("missing Authorization header")
				http.Error(w, "Unauthorized: missing token", http.StatusUnauthorized)
				return
			}

			// Ожидаем формат: "Bearer <token>"
			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
				logger.Warn("invalid Authorization header format")
				http.Error(w, "Unauthorized: invalid token format", http.StatusUnauthorized)
				return
			}

			claims, err := auth.VerifyToken(tokens, parts[1])
			if err != nil {
				logger.Warn("invalid access token", "error", err)
				http.Error(w, "Unauthorized: invalid token", http.StatusUnauthorized)
				return
			}

			ctx := handlers.WithIdentity(r.Context(), claims.Subject, claims.Login, claims.Role)

			logger.Debug("user authenticated",
				"user_id", claims.Subject, "login", claims.Login, "role", claims.Role)

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
