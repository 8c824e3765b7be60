package app

import (
	"errors"
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/dig"

	"parcel-tracking-service/internal/metrics"
)

type metricsOut struct {
	dig.Out

	LoginLockoutsTotal     prometheus.Counter `name:"login_lockouts_total"`
	LoginFailuresTotal     prometheus.Counter `name:"login_failures_total"`
	DeliveriesCreatedTotal prometheus.Counter `name:"deliveries_created_total"`
}

func provideMetrics() (metricsOut, error) {
	lockouts, err := registerCounter(metrics.NewLoginLockoutsTotal())
	if err != nil {
		return metricsOut{}, fmt.Errorf("register login_lockouts_total: %w", err)
	}
	failures, err := registerCounter(metrics.NewLoginFailuresTotal())
	if err != nil {
		return metricsOut{}, fmt.Errorf("register login_failures_total: %w", err)
	}
	created, err := registerCounter(metrics.NewDeliveriesCreatedTotal())
	if err != nil {
		return metricsOut{}, fmt.Errorf("register deliveries_created_total: %w", err)
	}
	return metricsOut{
		LoginLockoutsTotal:     lockouts,
		LoginFailuresTotal:     failures,
		DeliveriesCreatedTotal: created,
	}, nil
}

// registerCounter registers the counter, reusing an existing collector when
// the process already registered one with the same name.
func registerCounter(c prometheus.Counter) (prometheus.Counter, error) {
	if err := prometheus.DefaultRegisterer.Register(c); err != nil {
		var are prometheus.AlreadyRegisteredError
		if errors.As(err, &are) {
			if existing, ok := are.ExistingCollector.(prometheus.Counter); ok {
				return existing, nil
			}
		}
		return nil, err
	}
	return c, nil
}
