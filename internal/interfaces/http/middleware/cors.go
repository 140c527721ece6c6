package middleware

import (
	"net/http"

	"github.com/go-chi/cors"
)

// CORSConfig holds configuration for CORS middleware.
type CORSConfig struct {
	// AllowedOrigins lists origins allowed to call the API.  ["*"] allows all
	// origins; patterns such as "https://*.example.com" are accepted.
	AllowedOrigins []string

	AllowedMethods []string
	AllowedHeaders []string
	ExposedHeaders []string

	AllowCredentials bool

	// MaxAge is how long (in seconds) preflight results may be cached.
	MaxAge int
}

// DefaultCORSConfig returns the configuration used when only the origins are
// supplied by the operator.
func DefaultCORSConfig() CORSConfig {
	return CORSConfig{
		AllowedOrigins: []string{},
		AllowedMethods: []string{
			http.MethodGet,
			http.MethodPost,
			http.MethodOptions,
		},
		AllowedHeaders: []string{
			"Accept",
			"Content-Type",
			"X-Request-ID",
		},
		ExposedHeaders: []string{
			"Content-Disposition",
			"X-Batch-ID",
			"X-Request-ID",
			"X-RateLimit-Limit",
			"X-RateLimit-Remaining",
		},
		AllowCredentials: true,
		MaxAge:           86400,
	}
}

// CORSMiddleware wraps go-chi/cors for use with router configuration.
type CORSMiddleware struct {
	handler func(http.Handler) http.Handler
}

// NewCORSMiddleware creates a new CORS middleware with the given config.
func NewCORSMiddleware(config CORSConfig) *CORSMiddleware {
	return &CORSMiddleware{
		handler: cors.Handler(cors.Options{
			AllowedOrigins:   config.AllowedOrigins,
			AllowedMethods:   config.AllowedMethods,
			AllowedHeaders:   config.AllowedHeaders,
			ExposedHeaders:   config.ExposedHeaders,
			AllowCredentials: config.AllowCredentials,
			MaxAge:           config.MaxAge,
		}),
	}
}

// Handler returns the middleware handler function.
func (m *CORSMiddleware) Handler(next http.Handler) http.Handler {
	return m.handler(next)
}
