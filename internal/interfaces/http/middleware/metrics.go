package middleware

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/rjsky311/GHS-label-quick-search/internal/infrastructure/monitoring/prometheus"
)

// MetricsMiddleware records request counts and latency labelled by the
// matched route pattern, never the raw path.
type MetricsMiddleware struct {
	metrics *prometheus.AppMetrics
}

// NewMetricsMiddleware creates the middleware.  A nil metrics set records
// nothing.
func NewMetricsMiddleware(metrics *prometheus.AppMetrics) *MetricsMiddleware {
	return &MetricsMiddleware{metrics: metrics}
}

// Handler returns the middleware handler function.
func (m *MetricsMiddleware) Handler(next http.Handler) http.Handler {
	if m.metrics == nil {
		return next
	}
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)

		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}
		m.metrics.RecordHTTPRequest(r.Method, routePattern(r), status, time.Since(start))
	})
}

// routePattern returns the chi pattern that served r, or "unmatched".
func routePattern(r *http.Request) string {
	if rctx := chi.RouteContext(r.Context()); rctx != nil {
		if p := rctx.RoutePattern(); p != "" {
			return p
		}
	}
	return "unmatched"
}
