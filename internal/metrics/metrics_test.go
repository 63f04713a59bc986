package metrics_test

import (
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"flyerscan/internal/metrics"
)

func TestMetrics_Counters(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := metrics.New(reg)

	m.IncAnalysis("success")
	m.IncAnalysis("success")
	m.IncAnalysis("not_event_flyer")
	m.IncVenueSearch("error")
	m.ObserveUpstream("places", "find_place", metrics.OutcomeMiss, 20*time.Millisecond)

	expected := `
# HELP flyerscan_flyer_analyses_total Flyer analyses by reported status
# TYPE flyerscan_flyer_analyses_total counter
flyerscan_flyer_analyses_total{status="not_event_flyer"} 1
flyerscan_flyer_analyses_total{status="success"} 2
# HELP flyerscan_upstream_requests_total Calls to upstream APIs by service, operation and outcome
# TYPE flyerscan_upstream_requests_total counter
flyerscan_upstream_requests_total{operation="find_place",outcome="miss",service="places"} 1
# HELP flyerscan_venue_searches_total Venue searches by reported status
# TYPE flyerscan_venue_searches_total counter
flyerscan_venue_searches_total{status="error"} 1
`
	require.NoError(t, testutil.GatherAndCompare(reg, strings.NewReader(expected),
		"flyerscan_flyer_analyses_total",
		"flyerscan_upstream_requests_total",
		"flyerscan_venue_searches_total",
	))

	count, err := testutil.GatherAndCount(reg, "flyerscan_upstream_request_duration_seconds")
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestMetrics_NilIsSafe(t *testing.T) {
	var m *metrics.Metrics

	assert.NotPanics(t, func() {
		m.IncAnalysis("success")
		m.IncVenueSearch("success")
		m.ObserveUpstream("gemini", "generate_content", metrics.OutcomeOK, time.Second)
		m.ObserveHTTP("GET", "/health", 200, time.Millisecond)
	})
}
