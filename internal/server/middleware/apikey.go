package middleware

import (
	"crypto/subtle"
	"log/slog"
	"net/http"
)

// APIKeyMiddleware создает middleware, требующее заголовок X-Api-Key.
// Используется для служебных эндпоинтов (регистрация пользователей).
func APIKeyMiddleware(logger *slog.Logger, apiKey string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			key := r.Header.Get("X-Api-Key")
			if key == "" {
				logger.Warn("missing X-Api-Key header",
					"method", r.Method, "path", r.URL.Path)
				http.Error(w, "Unauthorized: missing api key", http.StatusUnauthorized)
				return
			}

			if subtle.ConstantTimeCompare([]byte(key), []byte(apiKey)) != 1 {
				logger.Warn("invalid api key",
					"method", r.Method, "path", r.URL.Path)
				http.Error(w, "Unauthorized: invalid api key", http.StatusUnauthorized)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
