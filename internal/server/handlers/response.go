package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/iudanet/authgate/pkg/api"
)

// sendJSON отправляет ответ в едином конверте {message, statusCode, data}
func sendJSON(logger *slog.Logger, w http.ResponseWriter, statusCode int, message string, data any) {
	resp := api.Response{
		Message:    message,
		StatusCode: statusCode,
		Data:       data,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		logger.Error("failed to encode JSON response", slog.Any("error", err))
	}
}

// sendError отправляет конверт без данных с сообщением об ошибке.
// Сообщение всегда безопасно показать конечному пользователю.
func sendError(logger *slog.Logger, w http.ResponseWriter, statusCode int, message string) {
	sendJSON(logger, w, statusCode, message, nil)
}
