// Package config defines the configuration structures for the GHS label
// service.  No I/O or parsing logic lives in this file; only plain data types
// and validation.
package config

import (
	"fmt"
	"net/url"
	"time"
)

// Version is the service version reported by health endpoints and the CLI.
const Version = "1.2.0"

// ─────────────────────────────────────────────────────────────────────────────
// Sub-configuration structs
// ─────────────────────────────────────────────────────────────────────────────

// ServerConfig holds HTTP server tunables.
type ServerConfig struct {
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	ReadTimeout     time.Duration `mapstructure:"read_timeout"`
	WriteTimeout    time.Duration `mapstructure:"write_timeout"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
	MaxBodySize     int64         `mapstructure:"max_body_size"`
	CORSOrigins     []string      `mapstructure:"cors_origins"`
	RateLimitRPS    float64       `mapstructure:"rate_limit_rps"`
	RateLimitBurst  int           `mapstructure:"rate_limit_burst"`
}

// Addr returns the listen address in host:port form.
func (s ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

// PubChemConfig holds upstream gateway parameters.
type PubChemConfig struct {
	BaseURL           string        `mapstructure:"base_url"`
	MetadataTimeout   time.Duration `mapstructure:"metadata_timeout"`
	DocumentTimeout   time.Duration `mapstructure:"document_timeout"`
	MaxConns          int           `mapstructure:"max_conns"`
	MaxIdleConns      int           `mapstructure:"max_idle_conns"`
	RequestsPerSecond float64       `mapstructure:"requests_per_second"`
	Burst             int           `mapstructure:"burst"`
	UserAgent         string        `mapstructure:"user_agent"`
}

// CacheConfig sizes the process-local caches.  Both the compound-id cache and
// the classification-document cache use these values.
type CacheConfig struct {
	TTL      time.Duration `mapstructure:"ttl"`
	Capacity int           `mapstructure:"capacity"`
}

// RedisConfig holds the optional shared cache tier parameters.
type RedisConfig struct {
	Enabled      bool          `mapstructure:"enabled"`
	Addr         string        `mapstructure:"addr"`
	Password     string        `mapstructure:"password"`
	DB           int           `mapstructure:"db"`
	PoolSize     int           `mapstructure:"pool_size"`
	DialTimeout  time.Duration `mapstructure:"dial_timeout"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
	KeyPrefix    string        `mapstructure:"key_prefix"`
}

// SearchConfig tunes the orchestrator.
type SearchConfig struct {
	WindowSize       int           `mapstructure:"window_size"`
	WindowPause      time.Duration `mapstructure:"window_pause"`
	MaxBatch         int           `mapstructure:"max_batch"`
	NameSearchLimit  int           `mapstructure:"name_search_limit"`
	SynonymScanLimit int           `mapstructure:"synonym_scan_limit"`
}

// LogConfig holds structured-logging parameters.
type LogConfig struct {
	Level  string `mapstructure:"level"`  // "debug" | "info" | "warn" | "error"
	Format string `mapstructure:"format"` // "json" | "console"
}

// MetricsConfig holds Prometheus exposition parameters.
type MetricsConfig struct {
	Enabled   bool   `mapstructure:"enabled"`
	Namespace string `mapstructure:"namespace"`
	Path      string `mapstructure:"path"`
}

// ─────────────────────────────────────────────────────────────────────────────
// Root Config
// ─────────────────────────────────────────────────────────────────────────────

// Config is the root configuration structure.
type Config struct {
	Server  ServerConfig  `mapstructure:"server"`
	PubChem PubChemConfig `mapstructure:"pubchem"`
	Cache   CacheConfig   `mapstructure:"cache"`
	Redis   RedisConfig   `mapstructure:"redis"`
	Search  SearchConfig  `mapstructure:"search"`
	Log     LogConfig     `mapstructure:"log"`
	Metrics MetricsConfig `mapstructure:"metrics"`
}

// ─────────────────────────────────────────────────────────────────────────────
// Validation
// ─────────────────────────────────────────────────────────────────────────────

// Validate performs semantic validation of a fully-populated Config and
// returns the first problem found.
func (c *Config) Validate() error {
	// Server
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("config: server.port %d is out of range [1, 65535]", c.Server.Port)
	}
	if c.Server.RateLimitRPS < 0 {
		return fmt.Errorf("config: server.rate_limit_rps must be ≥ 0, got %v", c.Server.RateLimitRPS)
	}

	// PubChem
	u, err := url.Parse(c.PubChem.BaseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("config: pubchem.base_url %q is not an absolute URL", c.PubChem.BaseURL)
	}
	if c.PubChem.MetadataTimeout <= 0 || c.PubChem.DocumentTimeout <= 0 {
		return fmt.Errorf("config: pubchem timeouts must be positive")
	}
	if c.PubChem.MaxConns < 1 {
		return fmt.Errorf("config: pubchem.max_conns must be ≥ 1, got %d", c.PubChem.MaxConns)
	}
	if c.PubChem.MaxIdleConns > c.PubChem.MaxConns {
		return fmt.Errorf("config: pubchem.max_idle_conns %d exceeds max_conns %d", c.PubChem.MaxIdleConns, c.PubChem.MaxConns)
	}
	if c.PubChem.RequestsPerSecond <= 0 {
		return fmt.Errorf("config: pubchem.requests_per_second must be > 0")
	}

	// Cache
	if c.Cache.TTL <= 0 {
		return fmt.Errorf("config: cache.ttl must be positive")
	}
	if c.Cache.Capacity < 1 {
		return fmt.Errorf("config: cache.capacity must be ≥ 1, got %d", c.Cache.Capacity)
	}

	// Redis
	if c.Redis.Enabled && c.Redis.Addr == "" {
		return fmt.Errorf("config: redis.addr is required when redis.enabled is true")
	}
	if c.Redis.DB < 0 {
		return fmt.Errorf("config: redis.db must be ≥ 0, got %d", c.Redis.DB)
	}

	// Search
	if c.Search.WindowSize < 1 {
		return fmt.Errorf("config: search.window_size must be ≥ 1, got %d", c.Search.WindowSize)
	}
	if c.Search.MaxBatch < 1 {
		return fmt.Errorf("config: search.max_batch must be ≥ 1, got %d", c.Search.MaxBatch)
	}
	if c.Search.WindowPause < 0 {
		return fmt.Errorf("config: search.window_pause must be ≥ 0")
	}

	// Log
	switch c.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("config: log.level %q is invalid; expected debug|info|warn|error", c.Log.Level)
	}
	switch c.Log.Format {
	case "json", "console":
	default:
		return fmt.Errorf("config: log.format %q is invalid; expected json|console", c.Log.Format)
	}

	return nil
}
