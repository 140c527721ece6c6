package handlers

import (
	"context"
	"net/http"
	"sync"
	"time"

	"github.com/rjsky311/GHS-label-quick-search/pkg/types/ghs"
)

// HealthChecker is an interface for components that can report their health.
type HealthChecker interface {
	Name() string
	Check(ctx context.Context) error
}

// HealthCheckFunc adapts a function to HealthChecker.
type HealthCheckFunc struct {
	ComponentName string
	Fn            func(ctx context.Context) error
}

// Name implements HealthChecker.
func (f HealthCheckFunc) Name() string { return f.ComponentName }

// Check implements HealthChecker.
func (f HealthCheckFunc) Check(ctx context.Context) error { return f.Fn(ctx) }

// HealthHandler handles health check HTTP requests.
type HealthHandler struct {
	checkers []HealthChecker
	version  string
	startAt  time.Time
	now      func() time.Time
}

// NewHealthHandler creates a new HealthHandler.
func NewHealthHandler(version string, checkers ...HealthChecker) *HealthHandler {
	return &HealthHandler{
		checkers: checkers,
		version:  version,
		startAt:  time.Now(),
		now:      time.Now,
	}
}

// LivenessResponse is the response for liveness probe.
type LivenessResponse struct {
	Status  string `json:"status"`
	Version string `json:"version"`
	Uptime  string `json:"uptime"`
}

// ReadinessResponse is the response for readiness probe.
type ReadinessResponse struct {
	Status     string                    `json:"status"`
	Components map[string]ComponentCheck `json:"components,omitempty"`
}

// ComponentCheck represents the health status of a single component.
type ComponentCheck struct {
	Status  string `json:"status"`
	Latency string `json:"latency,omitempty"`
	Error   string `json:"error,omitempty"`
}

// Health handles GET /api/health, the probe the web frontend polls.
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, ghs.HealthResponse{
		Status:    "healthy",
		Timestamp: h.now().UTC().Format(time.RFC3339),
		Version:   h.version,
	})
}

// Liveness handles GET /healthz.  Always returns 200 if the process is
// running.
func (h *HealthHandler) Liveness(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, LivenessResponse{
		Status:  "alive",
		Version: h.version,
		Uptime:  time.Since(h.startAt).Truncate(time.Second).String(),
	})
}

// Readiness handles GET /readyz.  Returns 200 if all dependencies are
// healthy, 503 otherwise.
func (h *HealthHandler) Readiness(w http.ResponseWriter, r *http.Request) {
	if len(h.checkers) == 0 {
		writeJSON(w, http.StatusOK, ReadinessResponse{Status: "ready"})
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	components := h.checkAll(ctx)
	resp := ReadinessResponse{Status: "ready", Components: components}
	code := http.StatusOK
	for _, c := range components {
		if c.Status != "healthy" {
			resp.Status = "not_ready"
			code = http.StatusServiceUnavailable
			break
		}
	}
	writeJSON(w, code, resp)
}

// checkAll runs all health checkers concurrently and returns results.
func (h *HealthHandler) checkAll(ctx context.Context) map[string]ComponentCheck {
	results := make(map[string]ComponentCheck, len(h.checkers))
	var mu sync.Mutex
	var wg sync.WaitGroup

	for _, checker := range h.checkers {
		wg.Add(1)
		go func(c HealthChecker) {
			defer wg.Done()

			start := time.Now()
			err := c.Check(ctx)

			cc := ComponentCheck{
				Status:  "healthy",
				Latency: time.Since(start).Truncate(time.Microsecond).String(),
			}
			if err != nil {
				cc.Status = "unhealthy"
				cc.Error = err.Error()
			}

			mu.Lock()
			results[c.Name()] = cc
			mu.Unlock()
		}(checker)
	}

	wg.Wait()
	return results
}
