package middleware

import (
	"encoding/json"
	"math"
	"net"
	"net/http"
	"strconv"
	"sync"
	"time"

	"golang.org/x/time/rate"

	"github.com/rjsky311/GHS-label-quick-search/internal/infrastructure/monitoring/logging"
	"github.com/rjsky311/GHS-label-quick-search/pkg/errors"
	"github.com/rjsky311/GHS-label-quick-search/pkg/types/ghs"
)

// RateLimitConfig holds configuration for the rate limit middleware.
type RateLimitConfig struct {
	// RequestsPerSecond is the sustained request rate per client.
	RequestsPerSecond float64
	// BurstSize is the maximum burst size above the sustained rate.
	BurstSize int
	// KeyFunc extracts the rate limit key from a request.  Defaults to the
	// client IP.
	KeyFunc func(r *http.Request) string
	// SkipPaths bypass rate limiting.
	SkipPaths []string
	// IdleTTL is how long an untouched client limiter is kept.
	IdleTTL time.Duration
}

// DefaultRateLimitConfig returns a sensible default rate limit configuration.
func DefaultRateLimitConfig() RateLimitConfig {
	return RateLimitConfig{
		RequestsPerSecond: 20,
		BurstSize:         40,
		KeyFunc:           clientIP,
		SkipPaths:         []string{"/healthz", "/readyz", "/metrics"},
		IdleTTL:           10 * time.Minute,
	}
}

// clientIP returns the host part of RemoteAddr.  chi's RealIP middleware runs
// first, so proxied requests already carry the forwarded address here.
func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

type clientLimiter struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// RateLimitMiddleware applies a token bucket per client key.
type RateLimitMiddleware struct {
	cfg    RateLimitConfig
	logger logging.Logger
	skip   map[string]bool
	now    func() time.Time

	mu        sync.Mutex
	clients   map[string]*clientLimiter
	lastSweep time.Time
}

// NewRateLimitMiddleware creates the middleware.  A non-positive rate
// disables limiting.
func NewRateLimitMiddleware(cfg RateLimitConfig, logger logging.Logger) *RateLimitMiddleware {
	d := DefaultRateLimitConfig()
	if cfg.BurstSize <= 0 {
		cfg.BurstSize = int(math.Max(1, math.Ceil(cfg.RequestsPerSecond)))
	}
	if cfg.KeyFunc == nil {
		cfg.KeyFunc = d.KeyFunc
	}
	if cfg.IdleTTL <= 0 {
		cfg.IdleTTL = d.IdleTTL
	}
	if logger == nil {
		logger = logging.NewNopLogger()
	}
	skip := make(map[string]bool, len(cfg.SkipPaths))
	for _, p := range cfg.SkipPaths {
		skip[p] = true
	}
	return &RateLimitMiddleware{
		cfg:     cfg,
		logger:  logger,
		skip:    skip,
		now:     time.Now,
		clients: make(map[string]*clientLimiter),
	}
}

// Handler returns the middleware handler function.
func (m *RateLimitMiddleware) Handler(next http.Handler) http.Handler {
	if m.cfg.RequestsPerSecond <= 0 {
		return next
	}
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if m.skip[r.URL.Path] {
			next.ServeHTTP(w, r)
			return
		}

		key := m.cfg.KeyFunc(r)
		lim := m.limiterFor(key)
		now := m.now()

		w.Header().Set("X-RateLimit-Limit", strconv.Itoa(m.cfg.BurstSize))
		if !lim.AllowN(now, 1) {
			retry := int(math.Ceil(1 / m.cfg.RequestsPerSecond))
			w.Header().Set("X-RateLimit-Remaining", "0")
			w.Header().Set("Retry-After", strconv.Itoa(retry))
			m.logger.Warn("rate limit exceeded",
				logging.String("client", key),
				logging.String("path", r.URL.Path))
			w.Header().Set("Content-Type", "application/json; charset=utf-8")
			w.WriteHeader(http.StatusTooManyRequests)
			_ = json.NewEncoder(w).Encode(ghs.ErrorResponse{
				Code:    errors.ErrCodeTooManyRequests.String(),
				Message: errors.DefaultMessageForCode(errors.ErrCodeTooManyRequests),
			})
			return
		}
		w.Header().Set("X-RateLimit-Remaining", strconv.Itoa(int(lim.TokensAt(now))))
		next.ServeHTTP(w, r)
	})
}

func (m *RateLimitMiddleware) limiterFor(key string) *rate.Limiter {
	now := m.now()

	m.mu.Lock()
	defer m.mu.Unlock()

	if now.Sub(m.lastSweep) > m.cfg.IdleTTL {
		for k, c := range m.clients {
			if now.Sub(c.lastSeen) > m.cfg.IdleTTL {
				delete(m.clients, k)
			}
		}
		m.lastSweep = now
	}

	c, ok := m.clients[key]
	if !ok {
		c = &clientLimiter{limiter: rate.NewLimiter(rate.Limit(m.cfg.RequestsPerSecond), m.cfg.BurstSize)}
		m.clients[key] = c
	}
	c.lastSeen = now
	return c.limiter
}

// ClientCount returns the number of tracked clients.
func (m *RateLimitMiddleware) ClientCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.clients)
}
