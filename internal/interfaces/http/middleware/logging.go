package middleware

import (
	"net/http"
	"time"

	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/rjsky311/GHS-label-quick-search/internal/infrastructure/monitoring/logging"
)

// LoggingConfig holds configuration for the request logging middleware.
type LoggingConfig struct {
	// SkipPaths are paths that should not be logged (e.g., /healthz, /metrics).
	SkipPaths []string

	// SlowThreshold is the duration above which a request is considered slow.
	// Batch searches are throttled on purpose, so the default is generous.
	SlowThreshold time.Duration
}

// DefaultLoggingConfig returns a sensible default logging configuration.
func DefaultLoggingConfig() LoggingConfig {
	return LoggingConfig{
		SkipPaths:     []string{"/healthz", "/readyz", "/metrics"},
		SlowThreshold: 30 * time.Second,
	}
}

// LoggingMiddleware logs one line per completed request and hands handlers a
// request-scoped logger through logging.FromContext.
type LoggingMiddleware struct {
	logger logging.Logger
	cfg    LoggingConfig
	skip   map[string]bool
}

// NewLoggingMiddleware creates the middleware.
func NewLoggingMiddleware(logger logging.Logger, cfg LoggingConfig) *LoggingMiddleware {
	if logger == nil {
		logger = logging.Default()
	}
	skip := make(map[string]bool, len(cfg.SkipPaths))
	for _, p := range cfg.SkipPaths {
		skip[p] = true
	}
	return &LoggingMiddleware{logger: logger.Named("http"), cfg: cfg, skip: skip}
}

// Handler returns the middleware handler function.
func (m *LoggingMiddleware) Handler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if m.skip[r.URL.Path] {
			next.ServeHTTP(w, r)
			return
		}

		reqLogger := m.logger.With(logging.String("request_id", chimw.GetReqID(r.Context())))
		r = r.WithContext(logging.WithContext(r.Context(), reqLogger))

		start := time.Now()
		ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)
		duration := time.Since(start)

		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}

		path := r.URL.Path
		if r.URL.RawQuery != "" {
			path += "?" + r.URL.RawQuery
		}
		fields := []logging.Field{
			logging.String("method", r.Method),
			logging.String("path", path),
			logging.Int("status", status),
			logging.Duration("duration", duration),
			logging.Int("bytes", ww.BytesWritten()),
			logging.String("remote_addr", r.RemoteAddr),
			logging.String("request_id", chimw.GetReqID(r.Context())),
		}
		if id := ww.Header().Get("X-Batch-ID"); id != "" {
			fields = append(fields, logging.String("batch_id", id))
		}

		switch {
		case status >= 500:
			m.logger.Error("HTTP request completed with server error", fields...)
		case status >= 400:
			m.logger.Warn("HTTP request completed with client error", fields...)
		case m.cfg.SlowThreshold > 0 && duration >= m.cfg.SlowThreshold:
			m.logger.Warn("HTTP request completed (slow)", fields...)
		default:
			m.logger.Info("HTTP request completed", fields...)
		}
	})
}
