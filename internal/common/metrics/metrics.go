package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the service collectors. Register them once on the registry
// the /metrics endpoint exposes.
type Metrics struct {
	rateLookups       *prometheus.CounterVec
	rateMemoHits      prometheus.Counter
	rowsRejected      prometheus.Counter
	sessionsCompleted prometheus.Counter
	upstreamLatency   *prometheus.HistogramVec
}

func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		rateLookups: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "taxdecl_rate_lookups_total",
			Help: "Network lookups against the rate service, by currency.",
		}, []string{"currency"}),
		rateMemoHits: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "taxdecl_rate_memo_hits_total",
			Help: "Rate resolutions answered from the per-run memo.",
		}),
		rowsRejected: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "taxdecl_rows_rejected_total",
			Help: "Transaction rows rejected during table preparation.",
		}),
		sessionsCompleted: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "taxdecl_sessions_completed_total",
			Help: "Sessions that reached the completed state.",
		}),
		upstreamLatency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "taxdecl_upstream_request_duration_seconds",
			Help:    "Latency of outbound requests, by upstream service.",
			Buckets: prometheus.DefBuckets,
		}, []string{"service", "method", "status"}),
	}

	if reg != nil {
		reg.MustRegister(m.rateLookups, m.rateMemoHits, m.rowsRejected, m.sessionsCompleted, m.upstreamLatency)
	}

	return m
}

func (m *Metrics) IncRateLookup(currency string) {
	m.rateLookups.WithLabelValues(currency).Inc()
}

func (m *Metrics) IncRateMemoHit() {
	m.rateMemoHits.Inc()
}

func (m *Metrics) AddRowsRejected(n int) {
	m.rowsRejected.Add(float64(n))
}

func (m *Metrics) IncSessionCompleted() {
	m.sessionsCompleted.Inc()
}

func (m *Metrics) ObserveUpstreamRequest(service, method string, status int, d time.Duration) {
	m.upstreamLatency.WithLabelValues(service, method, httpStatusClass(status)).Observe(d.Seconds())
}

func httpStatusClass(status int) string {
	switch {
	case status >= 500:
		return "5xx"
	case status >= 400:
		return "4xx"
	case status >= 300:
		return "3xx"
	case status >= 200:
		return "2xx"
	default:
		return "other"
	}
}
