package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Submission outcome labels.
const (
	OutcomeAccepted     = "accepted"
	OutcomeInvalid      = "invalid"
	OutcomeRemoteReject = "remote_reject"
	OutcomeConnectivity = "connectivity"
	OutcomeInFlight     = "in_flight_reject"
)

// Metrics holds the Prometheus metrics for the sign-up flow.
type Metrics struct {
	SubmissionsTotal *prometheus.CounterVec
}

// New creates and registers all sign-up metrics on the default registry.
func New() *Metrics {
	return &Metrics{
		SubmissionsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "enroll_signup_submissions_total",
			Help: "Total number of sign-up submissions by outcome",
		}, []string{"outcome"}),
	}
}

// ObserveSubmission records one submission with the given outcome label.
func (m *Metrics) ObserveSubmission(outcome string) {
	m.SubmissionsTotal.WithLabelValues(outcome).Inc()
}
