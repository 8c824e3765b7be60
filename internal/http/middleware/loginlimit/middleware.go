// Package loginlimit rejects login attempts from clients that exceeded the
// sliding failure window before the credentials are even read.
package loginlimit

import (
	"io"
	"net"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"

	"parcel-tracking-service/internal/logx"
)

const lockedOutBody = `{"success":false,"error":"Muitas tentativas de login. Tente novamente em 15 minutos."}`

// Guard reports whether a client is currently locked out.
type Guard interface {
	IsRateLimited(clientID string) bool
}

// Middleware wraps the login endpoint with a lockout check.
type Middleware struct {
	logger  logx.Logger
	counter prometheus.Counter
	guard   Guard
}

// New creates the lockout middleware.
func New(logger logx.Logger, counter prometheus.Counter, guard Guard) *Middleware {
	if guard == nil {
		guard = nopGuard{}
	}
	return &Middleware{
		logger:  logger,
		counter: counter,
		guard:   guard,
	}
}

// Handler returns chi-style middleware.
func (m *Middleware) Handler() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ip := clientIP(r)

			if m.guard.IsRateLimited(ip) {
				if m.counter != nil {
					m.counter.Inc()
				}
				m.logger.Warn("login locked out",
					logx.String("ip", ip),
					logx.String("method", r.Method),
					logx.String("path", r.URL.Path),
				)
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusTooManyRequests)
				if _, err := io.WriteString(w, lockedOutBody); err != nil {
					// client may have dropped the connection
					m.logger.Debug("lockout response write failed",
						logx.String("ip", ip),
						logx.Any("err", err),
					)
				}
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

type nopGuard struct{}

func (nopGuard) IsRateLimited(string) bool { return false }

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
