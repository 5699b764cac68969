package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics groups the dashboard's Prometheus collectors.
type Metrics struct {
	requestCounter *prometheus.CounterVec
	requestLatency *prometheus.HistogramVec
	apiCounter     *prometheus.CounterVec
	apiLatency     *prometheus.HistogramVec
	cacheEvents    *prometheus.CounterVec
	activeSessions prometheus.Gauge
}

// New creates the collectors and registers them on reg.
func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		requestCounter: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "prep_dashboard_requests_total",
				Help: "Total number of page and form requests served by the dashboard",
			},
			[]string{"method", "route", "status"},
		),
		requestLatency: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "prep_dashboard_request_duration_seconds",
				Help:    "Duration of dashboard requests in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "route"},
		),
		apiCounter: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "prep_api_requests_total",
				Help: "Total number of calls made to the Prep Manager API",
			},
			[]string{"method", "endpoint", "status"},
		),
		apiLatency: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "prep_api_request_duration_seconds",
				Help:    "Duration of Prep Manager API calls in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "endpoint"},
		),
		cacheEvents: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "prep_cache_events_total",
				Help: "Query cache lookups by result (hit, miss, invalidate, error)",
			},
			[]string{"result"},
		),
		activeSessions: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Name: "prep_dashboard_logins_active",
				Help: "Logins minus logouts since process start",
			},
		),
	}

	reg.MustRegister(
		m.requestCounter,
		m.requestLatency,
		m.apiCounter,
		m.apiLatency,
		m.cacheEvents,
		m.activeSessions,
	)
	return m
}

// ObserveRequest records one dashboard request. A nil receiver is a no-op.
func (m *Metrics) ObserveRequest(method, route string, status int, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.requestCounter.WithLabelValues(method, route, statusLabel(status)).Inc()
	m.requestLatency.WithLabelValues(method, route).Observe(elapsed.Seconds())
}

// ObserveAPICall records one upstream call. status is 0 when no response arrived.
func (m *Metrics) ObserveAPICall(method, endpoint string, status int, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.apiCounter.WithLabelValues(method, endpoint, statusLabel(status)).Inc()
	m.apiLatency.WithLabelValues(method, endpoint).Observe(elapsed.Seconds())
}

func (m *Metrics) CacheEvent(result string) {
	if m == nil {
		return
	}
	m.cacheEvents.WithLabelValues(result).Inc()
}

func (m *Metrics) LoggedIn() {
	if m == nil {
		return
	}
	m.activeSessions.Inc()
}

func (m *Metrics) LoggedOut() {
	if m == nil {
		return
	}
	m.activeSessions.Dec()
}

func statusLabel(status int) string {
	switch {
	case status == 0:
		return "error"
	case status < 300:
		return "2xx"
	case status < 400:
		return "3xx"
	case status < 500:
		return "4xx"
	default:
		return "5xx"
	}
}
