package handlers

import (
	"log/slog"
	"net/http"

	"github.com/aemlabs/aemdash/internal/models"
	"github.com/aemlabs/aemdash/internal/server/storage"
	pkgapi "github.com/aemlabs/aemdash/pkg/api"
)

// DashboardHandler обрабатывает запросы данных дашборда
type DashboardHandler struct {
	logger  *slog.Logger
	storage storage.DashboardStorage
}

// NewDashboardHandler создает новый handler дашборда
func NewDashboardHandler(logger *slog.Logger, storage storage.DashboardStorage) *DashboardHandler {
	return &DashboardHandler{
		logger:  logger,
		storage: storage,
	}
}

// Dashboard обрабатывает GET /dashboard (за auth middleware)
func (h *DashboardHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	data, err := h.storage.GetDashboard(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to load dashboard data", slog.Any("error", err))
		sendError(w, "failed to load dashboard data", http.StatusInternalServerError)
		return
	}

	if err := sendJSON(w, toResponse(data), http.StatusOK); err != nil {
		h.logger.ErrorContext(ctx, "failed to encode dashboard response", slog.Any("error", err))
	}
}

// toResponse конвертирует доменные типы в wire-типы
func toResponse(data *models.DashboardData) *pkgapi.DashboardResponse {
	resp := &pkgapi.DashboardResponse{
		Success:    true,
		ChartDonut: make([]pkgapi.ChartItem, 0, len(data.Donut)),
		ChartBar:   make([]pkgapi.ChartItem, 0, len(data.Bar)),
		TableUsers: make([]pkgapi.TableUser, 0, len(data.Users)),
	}

	for _, p := range data.Donut {
		resp.ChartDonut = append(resp.ChartDonut, pkgapi.ChartItem{Name: p.Name, Value: p.Value})
	}
	for _, p := range data.Bar {
		resp.ChartBar = append(resp.ChartBar, pkgapi.ChartItem{Name: p.Name, Value: p.Value})
	}
	for _, u := range data.Users {
		resp.TableUsers = append(resp.TableUsers, pkgapi.TableUser{
			FirstName: u.FirstName,
			LastName:  u.LastName,
			Username:  u.Username,
		})
	}

	return resp
}
