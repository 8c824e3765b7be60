package handlers

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"

	"parcel-tracking-service/internal/apperr"
	"parcel-tracking-service/internal/domain"
	"parcel-tracking-service/internal/logx"
)

// DeliveryHandler handles HTTP requests for delivery resources.
type DeliveryHandler struct {
	usecase deliveryUsecase
	logger  logx.Logger
	created prometheus.Counter
}

// NewDeliveryHandler creates a new DeliveryHandler.
func NewDeliveryHandler(logger logx.Logger, uc deliveryUsecase, created prometheus.Counter) *DeliveryHandler {
	return &DeliveryHandler{usecase: uc, logger: logger, created: created}
}

// List handles GET /api/entregas.
func (h *DeliveryHandler) List(w http.ResponseWriter, r *http.Request) {
	deliveries, err := h.usecase.List(r.Context())
	if err != nil {
		writeError(h.logger, w, r, http.StatusInternalServerError, "erro interno do servidor")
		return
	}

	out := make([]deliverySummaryResponse, 0, len(deliveries))
	for i := range deliveries {
		out = append(out, deliveryToSummary(&deliveries[i]))
	}
	writeJSON(h.logger, w, r, http.StatusOK, map[string]any{
		"success": true,
		"data":    out,
		"total":   len(out),
	})
}

// GetByCode handles GET /api/entregas/{codigo}.
func (h *DeliveryHandler) GetByCode(w http.ResponseWriter, r *http.Request) {
	code := chi.URLParam(r, "codigo")

	d, err := h.usecase.GetByCode(r.Context(), code)
	switch {
	case err == nil:
		writeData(h.logger, w, r, http.StatusOK, deliveryToDetail(d))
	case errors.Is(err, apperr.NotFound):
		writeError(h.logger, w, r, http.StatusNotFound, "Entrega não encontrada")
	default:
		writeError(h.logger, w, r, http.StatusInternalServerError, "erro interno do servidor")
	}
}

// Create handles POST /api/entregas.
func (h *DeliveryHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createDeliveryRequest
	if ok := decodeJSON(h.logger, w, r, &req); !ok {
		return
	}
	if err := validate.Struct(&req); err != nil {
		writeError(h.logger, w, r, http.StatusBadRequest, firstValidationMessage(err))
		return
	}

	d, err := h.usecase.Create(r.Context(), createRequestToInput(&req, nil))
	switch {
	case err == nil:
		if h.created != nil {
			h.created.Inc()
		}
		writeJSON(h.logger, w, r, http.StatusCreated, map[string]any{
			"success": true,
			"data": createDeliveryResponse{
				ID:                 d.ID,
				CodigoRastreamento: d.TrackingCode,
				Status:             string(d.Status),
			},
			"message": "Entrega criada com sucesso",
		})
	case errors.Is(err, apperr.Invalid):
		writeError(h.logger, w, r, http.StatusBadRequest, "entrada inválida")
	default:
		writeError(h.logger, w, r, http.StatusInternalServerError, "erro interno do servidor")
	}
}

// UpdateStatus handles PUT /api/entregas/{codigo}/status.
func (h *DeliveryHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	code := chi.URLParam(r, "codigo")

	var req updateStatusRequest
	if ok := decodeJSON(h.logger, w, r, &req); !ok {
		return
	}
	if req.Status == "" {
		writeError(h.logger, w, r, http.StatusBadRequest, "Status é obrigatório")
		return
	}

	res, err := h.usecase.UpdateStatus(r.Context(), code, domain.DeliveryStatus(req.Status))
	switch {
	case err == nil:
		writeData(h.logger, w, r, http.StatusOK, updateStatusResponse{
			CodigoRastreamento: res.TrackingCode,
			Status:             string(res.Status),
			DataAtualizacao:    res.UpdatedAt,
		})
	case errors.Is(err, apperr.Invalid):
		writeError(h.logger, w, r, http.StatusBadRequest, "Status inválido")
	case errors.Is(err, apperr.NotFound):
		writeError(h.logger, w, r, http.StatusNotFound, "Entrega não encontrada")
	default:
		writeError(h.logger, w, r, http.StatusInternalServerError, "erro interno do servidor")
	}
}

// Stats handles GET /api/estatisticas.
func (h *DeliveryHandler) Stats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.usecase.QuickStats(r.Context())
	if err != nil {
		writeError(h.logger, w, r, http.StatusInternalServerError, "erro interno do servidor")
		return
	}
	writeData(h.logger, w, r, http.StatusOK, statsToResponse(stats))
}

// Track handles GET /api/rastrear/{codigo}, the public tracking lookup.
// An unknown code is not an error here: the page renders "not found".
func (h *DeliveryHandler) Track(w http.ResponseWriter, r *http.Request) {
	code := chi.URLParam(r, "codigo")

	d, err := h.usecase.GetByCode(r.Context(), code)
	switch {
	case err == nil:
		writeJSON(h.logger, w, r, http.StatusOK, deliveryToTrack(d))
	case errors.Is(err, apperr.NotFound):
		writeJSON(h.logger, w, r, http.StatusOK, trackDeliveryResponse{Encontrado: false})
	default:
		writeError(h.logger, w, r, http.StatusInternalServerError, "erro interno do servidor")
	}
}
