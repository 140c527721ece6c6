package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/rjsky311/GHS-label-quick-search/internal/infrastructure/monitoring/logging"
	"github.com/rjsky311/GHS-label-quick-search/internal/infrastructure/monitoring/prometheus"
	"github.com/rjsky311/GHS-label-quick-search/internal/interfaces/http/handlers"
	"github.com/rjsky311/GHS-label-quick-search/internal/interfaces/http/middleware"
)

// RouterConfig aggregates all handler and middleware dependencies required
// to construct the complete HTTP route tree.
type RouterConfig struct {
	// Handlers
	SearchHandler *handlers.SearchHandler
	HealthHandler *handlers.HealthHandler

	// Middleware
	CORSMiddleware      *middleware.CORSMiddleware
	LoggingMiddleware   *middleware.LoggingMiddleware
	RateLimitMiddleware *middleware.RateLimitMiddleware
	MetricsMiddleware   *middleware.MetricsMiddleware

	// Infrastructure
	Logger           logging.Logger
	MetricsCollector prometheus.MetricsCollector
	MetricsPath      string
}

// NewRouter constructs the complete HTTP route tree from the given
// configuration.
func NewRouter(cfg RouterConfig) http.Handler {
	r := chi.NewRouter()

	// --- Global middleware (applied to every request) ---
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Recoverer)

	if cfg.CORSMiddleware != nil {
		r.Use(cfg.CORSMiddleware.Handler)
	}
	if cfg.MetricsMiddleware != nil {
		r.Use(cfg.MetricsMiddleware.Handler)
	}
	if cfg.LoggingMiddleware != nil {
		r.Use(cfg.LoggingMiddleware.Handler)
	}

	// --- Probes ---
	if cfg.HealthHandler != nil {
		r.Get("/healthz", cfg.HealthHandler.Liveness)
		r.Get("/readyz", cfg.HealthHandler.Readiness)
	}

	if cfg.MetricsCollector != nil {
		path := cfg.MetricsPath
		if path == "" {
			path = "/metrics"
		}
		r.Handle(path, cfg.MetricsCollector.Handler())
	}

	// --- Public API ---
	r.Route("/api", func(api chi.Router) {
		if cfg.RateLimitMiddleware != nil {
			api.Use(cfg.RateLimitMiddleware.Handler)
		}
		if cfg.HealthHandler != nil {
			api.Get("/health", cfg.HealthHandler.Health)
		}
		registerSearchRoutes(api, cfg.SearchHandler)
	})

	return r
}

// registerSearchRoutes mounts the search, lookup and export endpoints.
func registerSearchRoutes(r chi.Router, h *handlers.SearchHandler) {
	if h == nil {
		return
	}
	r.Get("/", h.Root)
	r.Post("/search", h.SearchBatch)
	r.Get("/search/{query}", h.SearchOne)
	r.Get("/search-by-name/{query}", h.SearchByName)
	r.Get("/ghs-pictograms", h.Pictograms)
	r.Post("/export/{format}", h.Export)
}
