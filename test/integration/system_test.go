package integration_test

import (
	"net/http"
	"testing"

	"jobboard_backend/test/helpers"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHealth(t *testing.T) {
	t.Parallel()
	ts := helpers.NewTestServer(t)

	res, body := ts.SendRequest(t, http.MethodGet, "/health", "", nil)
	require.Equal(t, http.StatusOK, res.StatusCode)
	assert.JSONEq(t, `{"status":"ok"}`, body)
}

func TestRequestIDHeader(t *testing.T) {
	t.Parallel()
	ts := helpers.NewTestServer(t)

	res, _ := ts.SendRequest(t, http.MethodGet, "/health", "", nil)
	assert.NotEmpty(t, res.Header.Get("X-Request-ID"))
}

func TestMetricsEndpoint(t *testing.T) {
	t.Parallel()
	ts := helpers.NewTestServer(t)

	ts.SendRequest(t, http.MethodGet, "/api/job", "", nil)
	ts.SendRequest(t, http.MethodGet, "/api/user", "", nil)

	res, body := ts.SendRequest(t, http.MethodGet, "/metrics", "", nil)
	require.Equal(t, http.StatusOK, res.StatusCode)
	assert.Contains(t, body, `jobboard_http_requests_total{method="GET",path="/api/job",status="200"} 1`)
	assert.Contains(t, body, `jobboard_auth_failures_total{reason="missing"} 1`)
}

func TestAuthRateLimit(t *testing.T) {
	t.Parallel()
	ts := helpers.NewTestServer(t, helpers.WithRateLimit(0.001, 2))

	login := map[string]interface{}{"email": "x@x.com", "password": "whatever"}
	for i := 0; i < 2; i++ {
		res, _ := ts.SendRequest(t, http.MethodPost, "/api/auth/login", "", login)
		assert.Equal(t, http.StatusUnauthorized, res.StatusCode)
	}

	res, body := ts.SendRequest(t, http.MethodPost, "/api/auth/login", "", login)
	assert.Equal(t, http.StatusTooManyRequests, res.StatusCode)
	assert.Contains(t, body, "Too many requests")

	// остальной API лимитом не ограничен
	res, _ = ts.SendRequest(t, http.MethodGet, "/api/job", "", nil)
	assert.Equal(t, http.StatusOK, res.StatusCode)
}

func TestSwaggerServed(t *testing.T) {
	t.Parallel()
	ts := helpers.NewTestServer(t)

	res, body := ts.SendRequest(t, http.MethodGet, "/swagger/doc.json", "", nil)
	require.Equal(t, http.StatusOK, res.StatusCode)
	assert.Contains(t, body, "Job Board API")
	assert.Contains(t, body, `"/health"`)
	assert.Contains(t, body, `"/api/profile/resume"`)
}
