package handlers

import (
	"net/http"

	"parcel-tracking-service/internal/logx"
)

// ContactHandler accepts contact-form submissions from the public site.
// Messages are logged for the commercial team; actual email delivery is
// handled outside this service.
type ContactHandler struct {
	logger logx.Logger
}

// NewContactHandler creates a new ContactHandler.
func NewContactHandler(logger logx.Logger) *ContactHandler {
	return &ContactHandler{logger: logger}
}

// Submit handles POST /api/contato.
func (h *ContactHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var req contactRequest
	if ok := decodeJSON(h.logger, w, r, &req); !ok {
		return
	}
	if err := validate.Struct(&req); err != nil {
		writeError(h.logger, w, r, http.StatusBadRequest, firstValidationMessage(err))
		return
	}

	h.logger.Info("contact message received",
		logx.String("nome", req.Nome),
		logx.String("email", req.Email),
		logx.String("telefone", req.Telefone),
		logx.String("assunto", req.Assunto),
		logx.Int("mensagem_len", len(req.Mensagem)),
	)

	writeJSON(h.logger, w, r, http.StatusOK, map[string]any{
		"success": true,
		"message": "Mensagem enviada com sucesso! Entraremos em contato em breve.",
	})
}
