// Package server assembles the HTTP surface: routes, middleware chain and
// the http.Server lifecycle with graceful shutdown.
package server

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/iudanet/authgate/internal/server/auth"
	"github.com/iudanet/authgate/internal/server/config"
	"github.com/iudanet/authgate/internal/server/handlers"
	"github.com/iudanet/authgate/internal/server/middleware"
)

const shutdownTimeout = 10 * time.Second

const healthPath = "/api/v1/health"

// Server wraps http.Server with the assembled router
type Server struct {
	logger *slog.Logger
	http   *http.Server
}

// New собирает маршруты и цепочку middleware.
// Logout защищен access-токеном; регистрация дополнительно защищается
// API ключом, если он задан в конфигурации.
func New(
	logger *slog.Logger,
	cfg *config.Config,
	authHandler *handlers.AuthHandler,
	healthHandler *handlers.HealthHandler,
	tokens auth.TokenConfig,
) *Server {
	mux := http.NewServeMux()

	register := http.Handler(http.HandlerFunc(authHandler.Register))
	if cfg.APIKey != "" {
		register = middleware.APIKeyMiddleware(logger, cfg.APIKey)(register)
	}

	requireAuth := middleware.AuthMiddleware(logger, tokens)

	mux.Handle("POST /api/v1/auth/register", register)
	mux.HandleFunc("POST /api/v1/auth/login", authHandler.Login)
	mux.HandleFunc("POST /api/v1/auth/refresh", authHandler.Refresh)
	mux.Handle("POST /api/v1/auth/logout", requireAuth(http.HandlerFunc(authHandler.Logout)))
	mux.HandleFunc("GET "+healthPath, healthHandler.Health)

	var handler http.Handler = mux
	handler = middleware.LoggingMiddleware(logger, healthPath)(handler)
	handler = middleware.RecoveryMiddleware(logger)(handler)

	return &Server{
		logger: logger,
		http: &http.Server{
			Addr:              cfg.Addr,
			Handler:           handler,
			ReadHeaderTimeout: 5 * time.Second,
		},
	}
}

// Run starts the HTTP server and blocks until ctx is canceled or the
// listener fails. Shutdown waits for in-flight requests up to a timeout.
func (s *Server) Run(ctx context.Context) error {
	go func() {
		<-ctx.Done()
		s.logger.Info("stopping HTTP server")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		if err := s.http.Shutdown(shutdownCtx); err != nil {
			s.logger.Error("shutdown error", "error", err)
		}
	}()

	s.logger.Info("starting HTTP server", "address", s.http.Addr)

	if err := s.http.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return nil
}
