package httpmetrics

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"

	"github.com/Gerardo-HG/exercise-tracker-api-freeCodeCamp/internal/observability/metrics"
)

func TestNormalizePath(t *testing.T) {
	cases := map[string]string{
		"":            "/",
		"/":           "/",
		"/api/users":  "/api/users",
		"/api/users/": "other",
		"/api/users/8c0b6f1e-2f44-4c8b-9a51-2c1f5f3b7d10/logs":      "/api/users/{id}/logs",
		"/api/users/65a1f0c2e4b0a1b2c3d4e5f6/exercises":             "/api/users/{id}/exercises",
		"/api/users/whatever-the-client-sent/logs":                  "/api/users/{id}/logs",
		"/public/style.css":                                         "/public/*",
		"/public/../../etc/passwd":                                  "/public/*",
		"/health":                                                   "/health",
		"/metrics":                                                  "/metrics",
		"/wp-login.php":                                             "other",
		"/x1":                                                       "other",
		"/api/users/abc/unknown":                                    "other",
		"/api/users/abc/logs/extra":                                 "other",
		"/api/users/8c0b6f1e-2f44-4c8b-9a51-2c1f5f3b7d10/exercises": "/api/users/{id}/exercises",
	}
	for in, want := range cases {
		assert.Equal(t, want, NormalizePath(in), in)
	}
}

func TestWrap_PassesThroughStatus(t *testing.T) {
	handler := Wrap(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
		_, _ = w.Write([]byte("short and stout"))
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/users", nil))

	assert.Equal(t, http.StatusTeapot, rec.Code)
	assert.Equal(t, "short and stout", rec.Body.String())
}

func TestWrap_UnknownPathsShareOneSeries(t *testing.T) {
	handler := Wrap(http.NotFoundHandler())
	other := metrics.HTTPRequestsTotal.WithLabelValues(http.MethodGet, "other", "404")
	before := testutil.ToFloat64(other)

	for _, path := range []string{"/wp-login.php", "/x1", "/x2"} {
		handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, path, nil))
	}

	assert.Equal(t, before+3, testutil.ToFloat64(other))
}
