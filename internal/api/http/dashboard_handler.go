package http

import (
	"net/http"

	"star-gestao-backend/internal/logger"
	"star-gestao-backend/internal/service"
)

type DashboardHandler struct {
	svc    service.DashboardService
	export service.ExportService
}

func NewDashboardHandler(svc service.DashboardService, export service.ExportService) *DashboardHandler {
	return &DashboardHandler{svc: svc, export: export}
}

func (h *DashboardHandler) Stats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.svc.GetStats(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, stats)
}

func (h *DashboardHandler) Financial(w http.ResponseWriter, r *http.Request) {
	d, err := h.svc.GetFinancialDashboard(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, d)
}

func (h *DashboardHandler) Info(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.svc.GetInfo())
}

func (h *DashboardHandler) Health(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.Health(r.Context()); err != nil {
		logger.Warn("Health check failed", "error", err)
		writeJSON(w, http.StatusServiceUnavailable, map[string]string{"status": "unhealthy", "database": "unreachable"})
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "healthy", "database": "ok"})
}

// SyncSheet pushes the current contracts and accounts to the configured spreadsheet
func (h *DashboardHandler) SyncSheet(w http.ResponseWriter, r *http.Request) {
	if err := h.export.ExportAll(r.Context()); err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}
