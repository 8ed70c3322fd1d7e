package handlers

import (
	"context"
	"log/slog"
	"net/http"
)

// Pinger проверяет доступность хранилища
type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthHandler обрабатывает health check запросы
type HealthHandler struct {
	logger *slog.Logger
	db     Pinger
}

// NewHealthHandler создает новый handler для health check
func NewHealthHandler(logger *slog.Logger, db Pinger) *HealthHandler {
	return &HealthHandler{
		logger: logger,
		db:     db,
	}
}

// HealthData представляет полезную нагрузку health check
type HealthData struct {
	Status   string `json:"status"`
	Database string `json:"database"`
}

// Health обрабатывает GET /api/v1/health
// Health check endpoint для мониторинга, проверяет доступность БД
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if err := h.db.Ping(ctx); err != nil {
		h.logger.ErrorContext(ctx, "health check: database unreachable", slog.Any("error", err))
		sendJSON(h.logger, w, http.StatusServiceUnavailable, "service unavailable",
			HealthData{Status: "degraded", Database: "unreachable"})
		return
	}

	sendJSON(h.logger, w, http.StatusOK, "ok",
		HealthData{Status: "ok", Database: "ok"})
}
