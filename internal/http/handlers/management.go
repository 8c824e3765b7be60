package handlers

import (
	"net/http"

	"parcel-tracking-service/internal/domain"
	"parcel-tracking-service/internal/logx"
)

// ManagementHandler serves the login-gated console data endpoints.
type ManagementHandler struct {
	usecase deliveryUsecase
	logger  logx.Logger
}

// NewManagementHandler creates a new ManagementHandler.
func NewManagementHandler(logger logx.Logger, uc deliveryUsecase) *ManagementHandler {
	return &ManagementHandler{usecase: uc, logger: logger}
}

// Dashboard handles GET /gestao/dashboard.
func (h *ManagementHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	stats, err := h.usecase.QuickStats(r.Context())
	if err != nil {
		writeError(h.logger, w, r, http.StatusInternalServerError, "erro interno do servidor")
		return
	}
	writeData(h.logger, w, r, http.StatusOK, map[string]any{
		"total":       stats.TotalDeliveries,
		"pendentes":   stats.ByStatus[domain.StatusPending],
		"em_transito": stats.ByStatus[domain.StatusInTransit],
		"entregues":   stats.ByStatus[domain.StatusDelivered],
	})
}

// Reports handles GET /gestao/relatorios.
func (h *ManagementHandler) Reports(w http.ResponseWriter, r *http.Request) {
	stats, err := h.usecase.QuickStats(r.Context())
	if err != nil {
		writeError(h.logger, w, r, http.StatusInternalServerError, "erro interno do servidor")
		return
	}
	writeData(h.logger, w, r, http.StatusOK, map[string]any{
		"total":        stats.TotalDeliveries,
		"pendentes":    stats.ByStatus[domain.StatusPending],
		"em_transito":  stats.ByStatus[domain.StatusInTransit],
		"entregues":    stats.ByStatus[domain.StatusDelivered],
		"devolvidas":   stats.ByStatus[domain.StatusReturned],
		"taxa_sucesso": stats.SuccessRate,
	})
}
