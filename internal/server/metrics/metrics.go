package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the Prometheus metrics for the demo sign-up server.
type Metrics struct {
	RegistrationsTotal prometheus.Counter
	RejectionsTotal    prometheus.Counter
}

// New creates and registers all server metrics on the default registry.
func New() *Metrics {
	return &Metrics{
		RegistrationsTotal: promauto.NewCounter(prometheus.CounterOpts{
			Name: "enroll_server_registrations_total",
			Help: "Total number of identities registered",
		}),
		RejectionsTotal: promauto.NewCounter(prometheus.CounterOpts{
			Name: "enroll_server_rejections_total",
			Help: "Total number of sign-up requests rejected",
		}),
	}
}

// IncrementRegistrations records one successful registration.
func (m *Metrics) IncrementRegistrations() {
	m.RegistrationsTotal.Inc()
}

// IncrementRejections records one rejected sign-up request.
func (m *Metrics) IncrementRejections() {
	m.RejectionsTotal.Inc()
}
