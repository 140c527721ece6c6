// Package app assembles the service from configuration: logger-scoped
// infrastructure clients, caches, the search service and the HTTP stack.
// Both the apiserver binary and the ghsq CLI build on it.
package app

import (
	"context"
	"fmt"
	"net/http"

	"github.com/rjsky311/GHS-label-quick-search/internal/application/search"
	"github.com/rjsky311/GHS-label-quick-search/internal/config"
	"github.com/rjsky311/GHS-label-quick-search/internal/domain/chemical"
	"github.com/rjsky311/GHS-label-quick-search/internal/infrastructure/cache"
	"github.com/rjsky311/GHS-label-quick-search/internal/infrastructure/database/redis"
	"github.com/rjsky311/GHS-label-quick-search/internal/infrastructure/monitoring/logging"
	"github.com/rjsky311/GHS-label-quick-search/internal/infrastructure/monitoring/prometheus"
	"github.com/rjsky311/GHS-label-quick-search/internal/infrastructure/pubchem"
	"github.com/rjsky311/GHS-label-quick-search/internal/intelligence/chem_extractor"
	httpserver "github.com/rjsky311/GHS-label-quick-search/internal/interfaces/http"
	"github.com/rjsky311/GHS-label-quick-search/internal/interfaces/http/handlers"
	"github.com/rjsky311/GHS-label-quick-search/internal/interfaces/http/middleware"
)

// Cache names, used as metrics labels and Redis key namespaces.
const (
	CIDCacheName      = "cid"
	DocumentCacheName = "document"
)

// App holds every long-lived component of one process.
type App struct {
	Config    *config.Config
	Logger    logging.Logger
	Collector prometheus.MetricsCollector
	Metrics   *prometheus.AppMetrics

	Gateway     *pubchem.Client
	Redis       *redis.Client
	RemoteCache redis.Cache

	Search search.Service
}

// Option configures New.
type Option func(*options)

type options struct {
	gateway chem_extractor.Gateway
	remote  redis.Cache
}

// WithGateway replaces the PubChem client, mainly for tests.
func WithGateway(gw chem_extractor.Gateway) Option {
	return func(o *options) { o.gateway = gw }
}

// WithRemoteCache supplies an already-connected shared tier.
func WithRemoteCache(c redis.Cache) Option {
	return func(o *options) { o.remote = c }
}

// New wires the service.  An unreachable Redis is logged and the caches run
// local-only.
func New(cfg *config.Config, logger logging.Logger, opts ...Option) (*App, error) {
	if logger == nil {
		logger = logging.Default()
	}
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	a := &App{Config: cfg, Logger: logger}

	if cfg.Metrics.Enabled {
		collector, err := prometheus.NewMetricsCollector(prometheus.CollectorConfig{
			Namespace:            cfg.Metrics.Namespace,
			EnableProcessMetrics: true,
			EnableGoMetrics:      true,
		}, logger)
		if err != nil {
			return nil, fmt.Errorf("metrics: %w", err)
		}
		a.Collector = collector
		a.Metrics = prometheus.NewAppMetrics(collector)
	}

	gw := o.gateway
	if gw == nil {
		client, err := pubchem.NewClient(pubchem.Config{
			BaseURL:           cfg.PubChem.BaseURL,
			MetadataTimeout:   cfg.PubChem.MetadataTimeout,
			DocumentTimeout:   cfg.PubChem.DocumentTimeout,
			MaxConns:          cfg.PubChem.MaxConns,
			MaxIdleConns:      cfg.PubChem.MaxIdleConns,
			RequestsPerSecond: cfg.PubChem.RequestsPerSecond,
			Burst:             cfg.PubChem.Burst,
			UserAgent:         cfg.PubChem.UserAgent,
		}, pubchem.WithLogger(logger), pubchem.WithMetrics(a.Metrics))
		if err != nil {
			return nil, fmt.Errorf("pubchem: %w", err)
		}
		a.Gateway = client
		gw = client
	}

	a.RemoteCache = o.remote
	if a.RemoteCache == nil && cfg.Redis.Enabled {
		a.connectRedis()
	}

	index, err := chem_extractor.NewIndex(chemical.BundledTables())
	if err != nil {
		a.Close()
		return nil, fmt.Errorf("dictionary: %w", err)
	}

	var remote cache.Remote
	if a.RemoteCache != nil {
		remote = a.RemoteCache
	}
	ids := cache.NewTiered[int](CIDCacheName,
		cache.NewTTLCache[string, int](cfg.Cache.Capacity, cfg.Cache.TTL),
		cache.WithRemote[int](remote),
		cache.WithMetrics[int](a.Metrics),
		cache.WithLogger[int](logger))
	docs := cache.NewTiered[*chem_extractor.Document](DocumentCacheName,
		cache.NewTTLCache[string, *chem_extractor.Document](cfg.Cache.Capacity, cfg.Cache.TTL),
		cache.WithRemote[*chem_extractor.Document](remote),
		cache.WithMetrics[*chem_extractor.Document](a.Metrics),
		cache.WithLogger[*chem_extractor.Document](logger))

	components := search.NewComponents(gw, index, ids, docs, logger,
		chem_extractor.WithSynonymScanLimit(cfg.Search.SynonymScanLimit))
	a.Search = search.NewService(components, search.Config{
		WindowSize:      cfg.Search.WindowSize,
		WindowPause:     cfg.Search.WindowPause,
		MaxBatch:        cfg.Search.MaxBatch,
		NameSearchLimit: cfg.Search.NameSearchLimit,
	}, search.WithLogger(logger), search.WithMetrics(a.Metrics))

	logger.Info("service initialized",
		logging.Bool("metrics", a.Metrics != nil),
		logging.Bool("redis", a.RemoteCache != nil),
		logging.Int("cache_capacity", cfg.Cache.Capacity),
		logging.Duration("cache_ttl", cfg.Cache.TTL),
		logging.Strings("cors_origins", cfg.Server.CORSOrigins),
		logging.Float64("rate_limit_rps", cfg.Server.RateLimitRPS))
	return a, nil
}

func (a *App) connectRedis() {
	rc := a.Config.Redis
	client, err := redis.NewClient(&redis.RedisConfig{
		Addr:         rc.Addr,
		Password:     rc.Password,
		DB:           rc.DB,
		PoolSize:     rc.PoolSize,
		DialTimeout:  rc.DialTimeout,
		ReadTimeout:  rc.ReadTimeout,
		WriteTimeout: rc.WriteTimeout,
	}, a.Logger)
	if err != nil {
		a.Logger.Warn("redis unavailable, caches run local-only",
			logging.String("addr", rc.Addr), logging.Err(err))
		return
	}
	a.Redis = client
	a.RemoteCache = redis.NewRedisCache(client, a.Logger,
		redis.WithPrefix(rc.KeyPrefix),
		redis.WithDefaultTTL(a.Config.Cache.TTL))
}

// HealthCheckers returns the readiness checks for the configured
// dependencies.
func (a *App) HealthCheckers() []handlers.HealthChecker {
	var checkers []handlers.HealthChecker
	if a.RemoteCache != nil {
		checkers = append(checkers, handlers.HealthCheckFunc{
			ComponentName: "redis",
			Fn:            func(ctx context.Context) error { return a.RemoteCache.Ping(ctx) },
		})
	}
	return checkers
}

// HTTPHandler builds the complete route tree.
func (a *App) HTTPHandler() http.Handler {
	sc := a.Config.Server

	cors := middleware.DefaultCORSConfig()
	cors.AllowedOrigins = sc.CORSOrigins

	rl := middleware.DefaultRateLimitConfig()
	rl.RequestsPerSecond = sc.RateLimitRPS
	rl.BurstSize = sc.RateLimitBurst

	rc := httpserver.RouterConfig{
		SearchHandler: handlers.NewSearchHandler(a.Search, a.Logger,
			handlers.WithMaxBodySize(sc.MaxBodySize),
			handlers.WithNameLimit(a.Config.Search.NameSearchLimit)),
		HealthHandler:       handlers.NewHealthHandler(config.Version, a.HealthCheckers()...),
		CORSMiddleware:      middleware.NewCORSMiddleware(cors),
		LoggingMiddleware:   middleware.NewLoggingMiddleware(a.Logger, middleware.DefaultLoggingConfig()),
		RateLimitMiddleware: middleware.NewRateLimitMiddleware(rl, a.Logger),
		MetricsMiddleware:   middleware.NewMetricsMiddleware(a.Metrics),
		Logger:              a.Logger,
	}
	if a.Collector != nil {
		rc.MetricsCollector = a.Collector
		rc.MetricsPath = a.Config.Metrics.Path
	}
	return httpserver.NewRouter(rc)
}

// HTTPServer wraps HTTPHandler in a server using the configured timeouts.
func (a *App) HTTPServer() *httpserver.Server {
	return httpserver.NewServer(a.Config.Server, a.HTTPHandler(), a.Logger)
}

// RunHTTP serves the HTTP API until ctx is canceled, then drains in-flight
// requests.
func (a *App) RunHTTP(ctx context.Context) error {
	srv := a.HTTPServer()
	errCh := make(chan error, 1)
	go func() { errCh <- srv.Start() }()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}
	if err := srv.Stop(context.Background()); err != nil {
		return err
	}
	return <-errCh
}

// Close releases pooled connections.
func (a *App) Close() {
	if a.Gateway != nil {
		a.Gateway.Close()
	}
	if a.Redis != nil {
		if err := a.Redis.Close(); err != nil {
			a.Logger.Warn("redis close failed", logging.Err(err))
		}
	}
}
