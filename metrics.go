package desktopapi

import (
	"context"
	"errors"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	roleClient = "client"
	roleHost   = "host"
)

// Request outcomes as recorded in desktopapi_requests_total.
const (
	OutcomeOK          = "ok"
	OutcomeRemoteError = "remote_error"
	OutcomeCanceled    = "canceled"
	OutcomeClosed      = "closed"
	OutcomeError       = "error"
	OutcomePanic       = "panic"
)

// Metrics holds the runtime's Prometheus collectors. A nil *Metrics records
// nothing.
type Metrics struct {
	requests *prometheus.CounterVec
	duration *prometheus.HistogramVec
	inFlight *prometheus.GaugeVec
}

// NewMetrics registers the collectors with reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		requests: f.NewCounterVec(prometheus.CounterOpts{
			Name: "desktopapi_requests_total",
			Help: "Requests completed, by role, kind, and outcome.",
		}, []string{"role", "kind", "outcome"}),
		duration: f.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "desktopapi_request_duration_seconds",
			Help:    "Time from sending a request to its answer (client) or from receipt to reply (host).",
			Buckets: prometheus.DefBuckets,
		}, []string{"role", "kind"}),
		inFlight: f.NewGaugeVec(prometheus.GaugeOpts{
			Name: "desktopapi_requests_in_flight",
			Help: "Requests awaiting an answer (client) or being handled (host).",
		}, []string{"role"}),
	}
}

// begin marks a request in flight and returns the function that records
// its completion.
func (m *Metrics) begin(role string, kind RequestKind) func(outcome string) {
	if m == nil {
		return func(string) {}
	}
	start := time.Now()
	m.inFlight.WithLabelValues(role).Inc()
	return func(outcome string) {
		m.inFlight.WithLabelValues(role).Dec()
		m.requests.WithLabelValues(role, kind.String(), outcome).Inc()
		m.duration.WithLabelValues(role, kind.String()).Observe(time.Since(start).Seconds())
	}
}

func outcomeOf(err error) string {
	var reqErr *RequestError
	switch {
	case err == nil:
		return OutcomeOK
	case errors.As(err, &reqErr):
		return OutcomeRemoteError
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return OutcomeCanceled
	case errors.Is(err, ErrConnectionClosed):
		return OutcomeClosed
	}
	return OutcomeError
}
