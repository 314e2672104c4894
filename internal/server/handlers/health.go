package handlers

import (
	"log/slog"
	"net/http"

	pkgapi "github.com/aemlabs/aemdash/pkg/api"
)

// HealthHandler обрабатывает health check запросы
type HealthHandler struct {
	logger  *slog.Logger
	version string
}

// NewHealthHandler создает новый handler для health check
func NewHealthHandler(logger *slog.Logger, version string) *HealthHandler {
	return &HealthHandler{
		logger:  logger,
		version: version,
	}
}

// Health обрабатывает GET /api/v1/health
// Используется мониторингом и connectivity probe клиента
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	resp := pkgapi.HealthResponse{
		Status:  "ok",
		Version: h.version,
	}

	if err := sendJSON(w, resp, http.StatusOK); err != nil {
		h.logger.Error("failed to encode health response", slog.Any("error", err))
	}
}
