package providers

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"

	"github.com/DamienOReilly/reddit-stats/internal/structures"
)

func withTestRegistry(t *testing.T) {
	t.Helper()
	reg := prometheus.NewRegistry()
	prometheus.DefaultRegisterer = reg
	prometheus.DefaultGatherer = reg
	t.Cleanup(func() {
		prometheus.DefaultRegisterer = prometheus.NewRegistry()
		prometheus.DefaultGatherer = prometheus.DefaultRegisterer.(prometheus.Gatherer)
	})
}

func TestNoopMetrics_WhenDisabled(t *testing.T) {
	conf := &structures.Config{
		Metrics: structures.MetricsConfig{Enabled: false},
	}
	m := NewMetricsProvider(conf)
	_, ok := m.(*noopMetrics)
	assert.True(t, ok, "should return noopMetrics when disabled")

	// Ensure no-op methods don't panic
	m.IncRequestsTotal("/stats", 200)
	m.ObserveRequestDuration("/stats", time.Millisecond)
	m.IncCacheHits()
	m.IncCacheMisses()
	m.IncUpstreamRequests("comment", "created_utc", 200)
	m.ObserveFetchDuration(time.Millisecond)
	m.IncSnapshotDecodeFailures()
}

func TestMetricsProvider_WhenEnabled(t *testing.T) {
	withTestRegistry(t)

	conf := &structures.Config{
		Metrics: structures.MetricsConfig{Enabled: true},
	}
	m := NewMetricsProvider(conf)
	_, ok := m.(*MetricsProvider)
	assert.True(t, ok, "should return MetricsProvider when enabled")
}

func TestMetricsProvider_IncrementCounters(t *testing.T) {
	withTestRegistry(t)

	conf := &structures.Config{
		Metrics: structures.MetricsConfig{Enabled: true},
	}
	m := NewMetricsProvider(conf)

	// These should not panic
	m.IncRequestsTotal("/stats", 200)
	m.IncRequestsTotal("/snapshot", 400)
	m.ObserveRequestDuration("/stats", 5*time.Millisecond)
	m.IncCacheHits()
	m.IncCacheMisses()
	m.IncUpstreamRequests("comment", "created_utc", 200)
	m.IncUpstreamRequests("submission", "subreddit", 0)
	m.ObserveFetchDuration(100 * time.Millisecond)
	m.IncSnapshotDecodeFailures()
}

func TestHttpStatusBucket(t *testing.T) {
	tests := []struct {
		code     int
		expected string
	}{
		{100, "1xx"},
		{200, "2xx"},
		{201, "2xx"},
		{301, "3xx"},
		{400, "4xx"},
		{404, "4xx"},
		{500, "5xx"},
		{503, "5xx"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.expected, httpStatusBucket(tt.code))
	}
}

func TestUpstreamStatusLabel(t *testing.T) {
	assert.Equal(t, "error", upstreamStatusLabel(0))
	assert.Equal(t, "200", upstreamStatusLabel(200))
	assert.Equal(t, "502", upstreamStatusLabel(502))
}
