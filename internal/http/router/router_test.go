package router_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"parcel-tracking-service/internal/http/handlers"
	"parcel-tracking-service/internal/http/middleware/loginlimit"
	"parcel-tracking-service/internal/http/middleware/sessiongate"
	"parcel-tracking-service/internal/http/router"
	"parcel-tracking-service/internal/testutil/testlog"
)

func newTestRouter() http.Handler {
	logger := testlog.New().Logger()
	return router.New(
		logger,
		handlers.New(logger),
		&handlers.DeliveryHandler{},
		&handlers.AuthHandler{},
		&handlers.ManagementHandler{},
		handlers.NewContactHandler(logger),
		loginlimit.New(logger, nil, nil),
		sessiongate.New(logger, nil),
	)
}

func TestRouter_Ping(t *testing.T) {
	t.Parallel()

	srv := newTestRouter()

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "pong")
}

func TestRouter_Healthcheck(t *testing.T) {
	t.Parallel()

	srv := newTestRouter()

	req := httptest.NewRequest(http.MethodHead, "/healthcheck", nil)
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)

	require.Equal(t, http.StatusNoContent, rec.Code)
}

func TestRouter_Metrics(t *testing.T) {
	t.Parallel()

	srv := newTestRouter()

	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
}

func TestRouter_UnknownRouteIsJSON404(t *testing.T) {
	t.Parallel()

	srv := newTestRouter()

	req := httptest.NewRequest(http.MethodGet, "/nope", nil)
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)

	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "rota não encontrada")
}
