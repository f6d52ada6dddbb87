package handler

import (
	"log/slog"
	"net/http"

	"github.com/ugordi/gladialore-admin/internal/glapi"
)

// DashboardHandler renders the landing page with headline counts
type DashboardHandler struct {
	api    *glapi.Client
	logger *slog.Logger
}

// NewDashboardHandler creates a new DashboardHandler
func NewDashboardHandler(api *glapi.Client, logger *slog.Logger) *DashboardHandler {
	return &DashboardHandler{api: api, logger: logger}
}

type dashboardPage struct {
	UserTotal   int
	RegionTotal int
	EnemyTotal  int
	ItemTotal   int
}

// Dashboard renders the overview page. Each count is best-effort: a failing
// backend read logs and shows zero rather than failing the page.
func (h *DashboardHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var data dashboardPage
	if users, err := h.api.ListUsers(ctx, glapi.UserFilter{Limit: 1}); err != nil {
		h.logger.Warn("dashboard count failed", slog.String("resource", "users"), slog.Any("error", err))
	} else {
		data.UserTotal = users.Total
	}
	if regions, err := h.api.ListRegions(ctx, glapi.RegionFilter{Limit: 1}); err != nil {
		h.logger.Warn("dashboard count failed", slog.String("resource", "regions"), slog.Any("error", err))
	} else {
		data.RegionTotal = regions.Total
	}
	if enemies, err := h.api.ListEnemies(ctx, glapi.EnemyFilter{Limit: 1}); err != nil {
		h.logger.Warn("dashboard count failed", slog.String("resource", "enemies"), slog.Any("error", err))
	} else {
		data.EnemyTotal = enemies.Total
	}
	if items, err := h.api.ListItemTemplates(ctx, glapi.ItemFilter{Limit: 1}); err != nil {
		h.logger.Warn("dashboard count failed", slog.String("resource", "items"), slog.Any("error", err))
	} else {
		data.ItemTotal = items.Total
	}

	render(w, r, "dashboard", "Dashboard", "dashboard", data)
}
