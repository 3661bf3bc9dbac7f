package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetrics_Counters(t *testing.T) {
	m := New()

	m.AuthFailed("missing")
	m.AuthFailed("missing")
	m.AuthFailed("invalid")
	m.RateLimitHit()
	m.NotificationFailed()

	assert.Equal(t, 2.0, testutil.ToFloat64(m.AuthFailures.WithLabelValues("missing")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.AuthFailures.WithLabelValues("invalid")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.RateLimited))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.NotificationErr))
}

func TestMetrics_NilSafe(t *testing.T) {
	var m *Metrics
	assert.NotPanics(t, func() {
		m.AuthFailed("missing")
		m.RateLimitHit()
		m.NotificationFailed()
	})
}

func TestMetrics_Handler(t *testing.T) {
	m := New()
	m.Requests.WithLabelValues("GET", "/api/job", "200").Inc()

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `jobboard_http_requests_total{method="GET",path="/api/job",status="200"} 1`)
}

func TestNew_IndependentRegistries(t *testing.T) {
	assert.NotPanics(t, func() {
		New()
		New()
	})
}
