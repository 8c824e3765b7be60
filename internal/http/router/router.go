package router

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"parcel-tracking-service/internal/http/handlers"
	appmw "parcel-tracking-service/internal/http/middleware"
	"parcel-tracking-service/internal/http/middleware/loginlimit"
	"parcel-tracking-service/internal/http/middleware/sessiongate"
	"parcel-tracking-service/internal/logx"
)

// New constructs a chi-based http.Handler with base middleware and all routes.
func New(
	logger logx.Logger,
	base *handlers.Handlers,
	del *handlers.DeliveryHandler,
	authH *handlers.AuthHandler,
	mgmt *handlers.ManagementHandler,
	contact *handlers.ContactHandler,
	lockout *loginlimit.Middleware,
	gate *sessiongate.Middleware,
) http.Handler {
	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Recoverer)
	r.Use(chimw.Timeout(5 * time.Second))
	r.Use(appmw.Observability(logger))

	r.Get("/ping", base.Ping)
	r.Method(http.MethodHead, "/healthcheck", http.HandlerFunc(base.HealthcheckHead))
	r.Method(http.MethodGet, "/metrics", promhttp.Handler())

	r.Route("/api", func(r chi.Router) {
		r.Get("/entregas", del.List)
		r.Post("/entregas", del.Create)
		r.Get("/entregas/{codigo}", del.GetByCode)
		r.Put("/entregas/{codigo}/status", del.UpdateStatus)
		r.Get("/estatisticas", del.Stats)
		r.Get("/rastrear/{codigo}", del.Track)
		r.Post("/contato", contact.Submit)
	})

	r.Route("/gestao", func(r chi.Router) {
		r.With(lockout.Handler()).Post("/login", authH.Login)
		r.Post("/logout", authH.Logout)

		r.Group(func(r chi.Router) {
			r.Use(gate.Handler())
			r.Get("/dashboard", mgmt.Dashboard)
			r.Get("/relatorios", mgmt.Reports)
		})
	})

	r.NotFound(http.HandlerFunc(base.NotFound))

	return r
}
