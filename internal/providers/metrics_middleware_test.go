package providers

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type middlewareTestMetrics struct {
	endpoints []string
	statuses  []int
	durations int
}

func (m *middlewareTestMetrics) IncRequestsTotal(endpoint string, status int) {
	m.endpoints = append(m.endpoints, endpoint)
	m.statuses = append(m.statuses, status)
}

func (m *middlewareTestMetrics) ObserveRequestDuration(_ string, _ time.Duration) {
	m.durations++
}

func (m *middlewareTestMetrics) IncCacheHits()                          {}
func (m *middlewareTestMetrics) IncCacheMisses()                        {}
func (m *middlewareTestMetrics) IncUpstreamRequests(_, _ string, _ int) {}
func (m *middlewareTestMetrics) ObserveFetchDuration(_ time.Duration)   {}
func (m *middlewareTestMetrics) IncSnapshotDecodeFailures()             {}

func TestMetricsMiddleware_RecordsStatusAndDuration(t *testing.T) {
	metrics := &middlewareTestMetrics{}
	handler := MetricsMiddleware(metrics, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))

	req := httptest.NewRequest(http.MethodGet, "/stats", nil)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	require.Len(t, metrics.statuses, 1)
	assert.Equal(t, http.StatusBadGateway, metrics.statuses[0])
	assert.Equal(t, []string{"/stats"}, metrics.endpoints)
	assert.Equal(t, 1, metrics.durations)
}

func TestMetricsMiddleware_DefaultsToOK(t *testing.T) {
	metrics := &middlewareTestMetrics{}
	handler := MetricsMiddleware(metrics, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("hello"))
	}))

	req := httptest.NewRequest(http.MethodGet, "/snapshot", nil)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	require.Len(t, metrics.statuses, 1)
	assert.Equal(t, http.StatusOK, metrics.statuses[0])
}
