// Package sessiongate guards management console routes behind a valid
// session cookie.
package sessiongate

import (
	"context"
	"io"
	"net/http"

	"parcel-tracking-service/internal/auth"
	"parcel-tracking-service/internal/logx"
)

const expiredBody = `{"success":false,"error":"Sessão expirada. Faça login novamente."}`

type ctxKey struct{}

// Validator checks a session token and returns the session it belongs to.
type Validator interface {
	Validate(token string) (auth.Session, error)
}

// Middleware rejects requests that do not carry a valid session cookie.
type Middleware struct {
	logger    logx.Logger
	validator Validator
}

// New creates the session gate middleware.
func New(logger logx.Logger, validator Validator) *Middleware {
	return &Middleware{logger: logger, validator: validator}
}

// Handler returns chi-style middleware.
func (m *Middleware) Handler() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			c, err := r.Cookie(auth.SessionCookie)
			if err != nil {
				m.reject(w, r, "missing session cookie")
				return
			}

			sess, err := m.validator.Validate(c.Value)
			if err != nil {
				m.reject(w, r, "invalid or expired session")
				return
			}

			next.ServeHTTP(w, r.WithContext(WithSession(r.Context(), sess)))
		})
	}
}

func (m *Middleware) reject(w http.ResponseWriter, r *http.Request, reason string) {
	m.logger.Warn("management access denied",
		logx.String("reason", reason),
		logx.String("method", r.Method),
		logx.String("path", r.URL.Path),
	)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	if _, err := io.WriteString(w, expiredBody); err != nil {
		m.logger.Debug("session gate response write failed", logx.Any("err", err))
	}
}

// WithSession stores the session in the context.
func WithSession(ctx context.Context, sess auth.Session) context.Context {
	return context.WithValue(ctx, ctxKey{}, sess)
}

// SessionFrom extracts the session placed by the middleware, if any.
func SessionFrom(ctx context.Context) (auth.Session, bool) {
	sess, ok := ctx.Value(ctxKey{}).(auth.Session)
	return sess, ok
}
