package httpapi

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestMetricsMiddlewareRouteLabel(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /tasks/{id}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	handler := MetricsMiddleware(mux)

	t.Run("matched requests count under the route pattern", func(t *testing.T) {
		rawPath := "/tasks/3f2a9c44-1111-2222-3333-444455556666"
		req := httptest.NewRequest(http.MethodGet, rawPath, nil)
		handler.ServeHTTP(httptest.NewRecorder(), req)

		pattern := testutil.ToFloat64(requestsTotal.WithLabelValues(http.MethodGet, "GET /tasks/{id}", "200"))
		assert.GreaterOrEqual(t, pattern, 1.0)

		raw := testutil.ToFloat64(requestsTotal.WithLabelValues(http.MethodGet, rawPath, "200"))
		assert.Zero(t, raw, "raw URL paths must not become label values")
	})

	t.Run("unmatched requests share one label", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/nope/123", nil)
		handler.ServeHTTP(httptest.NewRecorder(), req)

		unmatched := testutil.ToFloat64(requestsTotal.WithLabelValues(http.MethodGet, "unmatched", "404"))
		assert.GreaterOrEqual(t, unmatched, 1.0)
	})
}
