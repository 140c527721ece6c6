package config

import "time"

// ─────────────────────────────────────────────────────────────────────────────
// Default value constants
// ─────────────────────────────────────────────────────────────────────────────

const (
	DefaultServerHost            = "0.0.0.0"
	DefaultServerPort            = 8001
	DefaultServerReadTimeout     = 30 * time.Second
	DefaultServerWriteTimeout    = 120 * time.Second
	DefaultServerShutdownTimeout = 15 * time.Second
	DefaultServerMaxBodySize     = 1 << 20
	DefaultCORSOrigin            = "https://ghs-frontend.zeabur.app"
	DefaultRateLimitRPS          = 20
	DefaultRateLimitBurst        = 40

	DefaultPubChemBaseURL         = "https://pubchem.ncbi.nlm.nih.gov"
	DefaultPubChemMetadataTimeout = 15 * time.Second
	DefaultPubChemDocumentTimeout = 30 * time.Second
	DefaultPubChemMaxConns        = 20
	DefaultPubChemMaxIdleConns    = 10
	DefaultPubChemRPS             = 5
	DefaultPubChemBurst           = 5
	DefaultPubChemUserAgent       = "GHS-label-quick-search/" + Version

	DefaultCacheTTL      = 24 * time.Hour
	DefaultCacheCapacity = 5000

	DefaultRedisAddr      = "localhost:6379"
	DefaultRedisPoolSize  = 10
	DefaultRedisKeyPrefix = "ghs:"

	DefaultSearchWindowSize       = 5
	DefaultSearchWindowPause      = 500 * time.Millisecond
	DefaultSearchMaxBatch         = 100
	DefaultSearchNameSearchLimit  = 20
	DefaultSearchSynonymScanLimit = 15

	DefaultLogLevel  = "info"
	DefaultLogFormat = "json"

	DefaultMetricsNamespace = "ghs"
	DefaultMetricsPath      = "/metrics"
)

// NewDefaultConfig returns a Config populated entirely from defaults.  Metrics
// are enabled; the Redis tier is not.
func NewDefaultConfig() *Config {
	cfg := &Config{Metrics: MetricsConfig{Enabled: true}}
	ApplyDefaults(cfg)
	return cfg
}

// ApplyDefaults fills every zero-value field in cfg with its default.  Fields
// already set are left unchanged so explicit configuration always wins.
// Boolean switches (redis.enabled, metrics.enabled) are not touched.
func ApplyDefaults(cfg *Config) {
	if cfg == nil {
		return
	}

	// ── Server ────────────────────────────────────────────────────────────────
	if cfg.Server.Host == "" {
		cfg.Server.Host = DefaultServerHost
	}
	if cfg.Server.Port == 0 {
		cfg.Server.Port = DefaultServerPort
	}
	if cfg.Server.ReadTimeout == 0 {
		cfg.Server.ReadTimeout = DefaultServerReadTimeout
	}
	if cfg.Server.WriteTimeout == 0 {
		cfg.Server.WriteTimeout = DefaultServerWriteTimeout
	}
	if cfg.Server.ShutdownTimeout == 0 {
		cfg.Server.ShutdownTimeout = DefaultServerShutdownTimeout
	}
	if cfg.Server.MaxBodySize == 0 {
		cfg.Server.MaxBodySize = DefaultServerMaxBodySize
	}
	if len(cfg.Server.CORSOrigins) == 0 {
		cfg.Server.CORSOrigins = []string{DefaultCORSOrigin}
	}
	if cfg.Server.RateLimitRPS == 0 {
		cfg.Server.RateLimitRPS = DefaultRateLimitRPS
	}
	if cfg.Server.RateLimitBurst == 0 {
		cfg.Server.RateLimitBurst = DefaultRateLimitBurst
	}

	// ── PubChem ───────────────────────────────────────────────────────────────
	if cfg.PubChem.BaseURL == "" {
		cfg.PubChem.BaseURL = DefaultPubChemBaseURL
	}
	if cfg.PubChem.MetadataTimeout == 0 {
		cfg.PubChem.MetadataTimeout = DefaultPubChemMetadataTimeout
	}
	if cfg.PubChem.DocumentTimeout == 0 {
		cfg.PubChem.DocumentTimeout = DefaultPubChemDocumentTimeout
	}
	if cfg.PubChem.MaxConns == 0 {
		cfg.PubChem.MaxConns = DefaultPubChemMaxConns
	}
	if cfg.PubChem.MaxIdleConns == 0 {
		cfg.PubChem.MaxIdleConns = DefaultPubChemMaxIdleConns
	}
	if cfg.PubChem.RequestsPerSecond == 0 {
		cfg.PubChem.RequestsPerSecond = DefaultPubChemRPS
	}
	if cfg.PubChem.Burst == 0 {
		cfg.PubChem.Burst = DefaultPubChemBurst
	}
	if cfg.PubChem.UserAgent == "" {
		cfg.PubChem.UserAgent = DefaultPubChemUserAgent
	}

	// ── Cache ─────────────────────────────────────────────────────────────────
	if cfg.Cache.TTL == 0 {
		cfg.Cache.TTL = DefaultCacheTTL
	}
	if cfg.Cache.Capacity == 0 {
		cfg.Cache.Capacity = DefaultCacheCapacity
	}

	// ── Redis ─────────────────────────────────────────────────────────────────
	if cfg.Redis.Addr == "" {
		cfg.Redis.Addr = DefaultRedisAddr
	}
	if cfg.Redis.PoolSize == 0 {
		cfg.Redis.PoolSize = DefaultRedisPoolSize
	}
	if cfg.Redis.KeyPrefix == "" {
		cfg.Redis.KeyPrefix = DefaultRedisKeyPrefix
	}
	if cfg.Redis.DialTimeout == 0 {
		cfg.Redis.DialTimeout = 5 * time.Second
	}
	if cfg.Redis.ReadTimeout == 0 {
		cfg.Redis.ReadTimeout = 3 * time.Second
	}
	if cfg.Redis.WriteTimeout == 0 {
		cfg.Redis.WriteTimeout = 3 * time.Second
	}

	// ── Search ────────────────────────────────────────────────────────────────
	if cfg.Search.WindowSize == 0 {
		cfg.Search.WindowSize = DefaultSearchWindowSize
	}
	if cfg.Search.WindowPause == 0 {
		cfg.Search.WindowPause = DefaultSearchWindowPause
	}
	if cfg.Search.MaxBatch == 0 {
		cfg.Search.MaxBatch = DefaultSearchMaxBatch
	}
	if cfg.Search.NameSearchLimit == 0 {
		cfg.Search.NameSearchLimit = DefaultSearchNameSearchLimit
	}
	if cfg.Search.SynonymScanLimit == 0 {
		cfg.Search.SynonymScanLimit = DefaultSearchSynonymScanLimit
	}

	// ── Log ───────────────────────────────────────────────────────────────────
	if cfg.Log.Level == "" {
		cfg.Log.Level = DefaultLogLevel
	}
	if cfg.Log.Format == "" {
		cfg.Log.Format = DefaultLogFormat
	}

	// ── Metrics ───────────────────────────────────────────────────────────────
	if cfg.Metrics.Namespace == "" {
		cfg.Metrics.Namespace = DefaultMetricsNamespace
	}
	if cfg.Metrics.Path == "" {
		cfg.Metrics.Path = DefaultMetricsPath
	}
}
