package app

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"
	"go.uber.org/dig"

	"parcel-tracking-service/internal/config"
	"parcel-tracking-service/internal/logx"
	"parcel-tracking-service/internal/metrics"
)

func stubDBConnect(context.Context, string, int, time.Duration) (*pgxpool.Pool, error) {
	return &pgxpool.Pool{}, nil
}

func testConfig() *config.Config {
	return &config.Config{
		Port: 8080,
		DB:   config.DefaultDB(),
		Auth: config.DefaultAuth(),
	}
}

func setupContainerWithCfg(t *testing.T, cfg *config.Config) *dig.Container {
	t.Helper()

	c := dig.New()

	require.NoError(t, c.Provide(func() context.Context { return context.Background() }))
	require.NoError(t, c.Provide(func() *config.Config { return cfg }))
	require.NoError(t, c.Provide(logx.Nop))
	require.NoError(t, c.Provide(func() *pgxpool.Pool { return &pgxpool.Pool{} }))
	require.NoError(t, c.Provide(func() metricsOut {
		mk := func(name string) prometheus.Counter {
			return prometheus.NewCounter(prometheus.CounterOpts{Name: name, Help: "stub"})
		}
		return metricsOut{
			LoginLockoutsTotal:     mk("login_lockouts_total_unit"),
			LoginFailuresTotal:     mk("login_failures_total_unit"),
			DeliveriesCreatedTotal: mk("deliveries_created_total_unit"),
		}
	}))

	require.NoError(t, registerAuth(c))
	require.NoError(t, registerDomainServices(c))
	require.NoError(t, registerHTTP(c))

	return c
}

func TestRegisterHTTP_ProvidesServer(t *testing.T) {
	t.Parallel()

	c := setupContainerWithCfg(t, testConfig())
	err := c.Invoke(func(srv *http.Server) {
		require.NotNil(t, srv)
		require.Equal(t, ":8080", srv.Addr)
		require.NotNil(t, srv.Handler)
	})
	require.NoError(t, err)
}

func TestProvideMetrics_Success_RegistersAndReturnsCounters(t *testing.T) {
	oldReg := prometheus.DefaultRegisterer
	oldGath := prometheus.DefaultGatherer
	reg := prometheus.NewRegistry()
	prometheus.DefaultRegisterer = reg
	prometheus.DefaultGatherer = reg
	t.Cleanup(func() {
		prometheus.DefaultRegisterer = oldReg
		prometheus.DefaultGatherer = oldGath
	})

	out, err := provideMetrics()
	require.NoError(t, err)
	require.NotNil(t, out.LoginLockoutsTotal)
	require.NotNil(t, out.LoginFailuresTotal)
	require.NotNil(t, out.DeliveriesCreatedTotal)
}

func TestProvideMetrics_AlreadyRegistered_ReturnsExistingCounters(t *testing.T) {
	oldReg := prometheus.DefaultRegisterer
	oldGath := prometheus.DefaultGatherer
	reg := prometheus.NewRegistry()
	prometheus.DefaultRegisterer = reg
	prometheus.DefaultGatherer = reg
	t.Cleanup(func() {
		prometheus.DefaultRegisterer = oldReg
		prometheus.DefaultGatherer = oldGath
	})

	existing := metrics.NewLoginLockoutsTotal()
	require.NoError(t, reg.Register(existing))

	out, err := provideMetrics()
	require.NoError(t, err)
	require.Same(t, existing, out.LoginLockoutsTotal)
}

func TestContainerBuilder_MustBuild(t *testing.T) {
	fatalCalled := false
	b := NewContainerBuilder().
		WithDBConnect(stubDBConnect).
		WithLogFatalf(func(string, ...interface{}) { fatalCalled = true })

	c := b.MustBuild(context.Background())
	require.NotNil(t, c)
	require.False(t, fatalCalled)
}
