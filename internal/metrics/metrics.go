package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "flyerscan"

// Upstream call outcomes.
const (
	OutcomeOK          = "ok"
	OutcomeMiss        = "miss"
	OutcomeError       = "error"
	OutcomeRateLimited = "rate_limited"
)

// Metrics holds the service's Prometheus collectors. A nil *Metrics is valid
// and records nothing.
type Metrics struct {
	upstreamRequests *prometheus.CounterVec
	upstreamDuration *prometheus.HistogramVec
	analyses         *prometheus.CounterVec
	venueSearches    *prometheus.CounterVec
	httpRequests     *prometheus.CounterVec
	httpDuration     *prometheus.HistogramVec
}

// New creates the collectors and registers them with reg.
func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		upstreamRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "upstream_requests_total",
			Help:      "Calls to upstream APIs by service, operation and outcome",
		}, []string{"service", "operation", "outcome"}),
		upstreamDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "upstream_request_duration_seconds",
			Help:      "Latency of upstream API calls",
			Buckets:   []float64{0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30, 60},
		}, []string{"service", "operation"}),
		analyses: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "flyer_analyses_total",
			Help:      "Flyer analyses by reported status",
		}, []string{"status"}),
		venueSearches: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "venue_searches_total",
			Help:      "Venue searches by reported status",
		}, []string{"status"}),
		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "HTTP requests by method, route and status code",
		}, []string{"method", "route", "code"}),
		httpDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route"}),
	}
	reg.MustRegister(
		m.upstreamRequests,
		m.upstreamDuration,
		m.analyses,
		m.venueSearches,
		m.httpRequests,
		m.httpDuration,
	)
	return m
}

// ObserveUpstream records one upstream call.
func (m *Metrics) ObserveUpstream(service, operation, outcome string, d time.Duration) {
	if m == nil {
		return
	}
	m.upstreamRequests.WithLabelValues(service, operation, outcome).Inc()
	m.upstreamDuration.WithLabelValues(service, operation).Observe(d.Seconds())
}

// IncAnalysis counts a finished flyer analysis.
func (m *Metrics) IncAnalysis(status string) {
	if m == nil {
		return
	}
	m.analyses.WithLabelValues(status).Inc()
}

// IncVenueSearch counts a finished venue search.
func (m *Metrics) IncVenueSearch(status string) {
	if m == nil {
		return
	}
	m.venueSearches.WithLabelValues(status).Inc()
}

// ObserveHTTP records one served HTTP request.
func (m *Metrics) ObserveHTTP(method, route string, code int, d time.Duration) {
	if m == nil {
		return
	}
	m.httpRequests.WithLabelValues(method, route, strconv.Itoa(code)).Inc()
	m.httpDuration.WithLabelValues(method, route).Observe(d.Seconds())
}
