package handlers

import (
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"parcel-tracking-service/internal/apperr"
	"parcel-tracking-service/internal/auth"
	"parcel-tracking-service/internal/logx"
)

// AuthHandler serves the management console login endpoints.
type AuthHandler struct {
	svc        authService
	logger     logx.Logger
	failures   prometheus.Counter
	sessionTTL time.Duration
}

// NewAuthHandler wires the auth service into HTTP handlers.
func NewAuthHandler(logger logx.Logger, svc authService, failures prometheus.Counter, sessionTTL time.Duration) *AuthHandler {
	return &AuthHandler{svc: svc, logger: logger, failures: failures, sessionTTL: sessionTTL}
}

// Login handles POST /gestao/login.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if ok := decodeJSON(h.logger, w, r, &req); !ok {
		return
	}

	sess, err := h.svc.Login(r.Context(), clientIP(r), req.Username, req.Password)
	switch {
	case err == nil:
		http.SetCookie(w, &http.Cookie{
			Name:     auth.SessionCookie,
			Value:    sess.Token,
			Path:     "/",
			MaxAge:   int(h.sessionTTL.Seconds()),
			HttpOnly: true,
			Secure:   true,
			SameSite: http.SameSiteLaxMode,
		})
		writeData(h.logger, w, r, http.StatusOK, loginResponse{
			Username: sess.Username,
			Perfil:   sess.Role,
		})
	case errors.Is(err, apperr.RateLimited):
		writeError(h.logger, w, r, http.StatusTooManyRequests,
			"Muitas tentativas de login. Tente novamente em 15 minutos.")
	case errors.Is(err, apperr.Invalid), errors.Is(err, apperr.Unauthorized):
		if h.failures != nil {
			h.failures.Inc()
		}
		writeError(h.logger, w, r, http.StatusUnauthorized, "Usuário ou senha inválidos")
	default:
		writeError(h.logger, w, r, http.StatusInternalServerError, "erro interno do servidor")
	}
}

// Logout handles POST /gestao/logout.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	if c, err := r.Cookie(auth.SessionCookie); err == nil {
		h.svc.Logout(c.Value)
	}
	http.SetCookie(w, &http.Cookie{
		Name:     auth.SessionCookie,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   true,
		SameSite: http.SameSiteLaxMode,
	})
	writeJSON(h.logger, w, r, http.StatusOK, map[string]any{"success": true})
}

func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err == nil && host != "" {
		return host
	}
	if r.RemoteAddr != "" {
		return r.RemoteAddr
	}
	return "unknown"
}
