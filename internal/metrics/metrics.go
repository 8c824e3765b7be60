package metrics

import "github.com/prometheus/client_golang/prometheus"

// NewLoginLockoutsTotal returns a Prometheus counter for login requests rejected by the lockout policy
func NewLoginLockoutsTotal() prometheus.Counter {
	return prometheus.NewCounter(prometheus.CounterOpts{
		Name: "login_lockouts_total",
		Help: "Total number of login requests rejected by the lockout policy",
	})
}

// NewLoginFailuresTotal returns a Prometheus counter for failed login attempts
func NewLoginFailuresTotal() prometheus.Counter {
	return prometheus.NewCounter(prometheus.CounterOpts{
		Name: "login_failures_total",
		Help: "Total number of failed login attempts",
	})
}

// NewDeliveriesCreatedTotal returns a Prometheus counter for created deliveries
func NewDeliveriesCreatedTotal() prometheus.Counter {
	return prometheus.NewCounter(prometheus.CounterOpts{
		Name: "deliveries_created_total",
		Help: "Total number of deliveries created",
	})
}
