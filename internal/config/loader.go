package config

import (
	"fmt"
	"strings"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"
)

// envPrefix is the environment variable prefix used by all service settings.
const envPrefix = "GHS"

// newViper builds a Viper instance with YAML file type, GHS_ env prefix,
// automatic env binding and a "." → "_" key replacer, so "pubchem.base_url"
// resolves to GHS_PUBCHEM_BASE_URL.  Every default is registered up front;
// AutomaticEnv only overrides keys viper already knows about.
func newViper() *viper.Viper {
	v := viper.New()
	v.SetConfigType("yaml")
	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	registerDefaults(v)
	return v
}

func registerDefaults(v *viper.Viper) {
	d := NewDefaultConfig()

	v.SetDefault("server.host", d.Server.Host)
	v.SetDefault("server.port", d.Server.Port)
	v.SetDefault("server.read_timeout", d.Server.ReadTimeout)
	v.SetDefault("server.write_timeout", d.Server.WriteTimeout)
	v.SetDefault("server.shutdown_timeout", d.Server.ShutdownTimeout)
	v.SetDefault("server.max_body_size", d.Server.MaxBodySize)
	v.SetDefault("server.cors_origins", d.Server.CORSOrigins)
	v.SetDefault("server.rate_limit_rps", d.Server.RateLimitRPS)
	v.SetDefault("server.rate_limit_burst", d.Server.RateLimitBurst)

	v.SetDefault("pubchem.base_url", d.PubChem.BaseURL)
	v.SetDefault("pubchem.metadata_timeout", d.PubChem.MetadataTimeout)
	v.SetDefault("pubchem.document_timeout", d.PubChem.DocumentTimeout)
	v.SetDefault("pubchem.max_conns", d.PubChem.MaxConns)
	v.SetDefault("pubchem.max_idle_conns", d.PubChem.MaxIdleConns)
	v.SetDefault("pubchem.requests_per_second", d.PubChem.RequestsPerSecond)
	v.SetDefault("pubchem.burst", d.PubChem.Burst)
	v.SetDefault("pubchem.user_agent", d.PubChem.UserAgent)

	v.SetDefault("cache.ttl", d.Cache.TTL)
	v.SetDefault("cache.capacity", d.Cache.Capacity)

	v.SetDefault("redis.enabled", d.Redis.Enabled)
	v.SetDefault("redis.addr", d.Redis.Addr)
	v.SetDefault("redis.password", d.Redis.Password)
	v.SetDefault("redis.db", d.Redis.DB)
	v.SetDefault("redis.pool_size", d.Redis.PoolSize)
	v.SetDefault("redis.dial_timeout", d.Redis.DialTimeout)
	v.SetDefault("redis.read_timeout", d.Redis.ReadTimeout)
	v.SetDefault("redis.write_timeout", d.Redis.WriteTimeout)
	v.SetDefault("redis.key_prefix", d.Redis.KeyPrefix)

	v.SetDefault("search.window_size", d.Search.WindowSize)
	v.SetDefault("search.window_pause", d.Search.WindowPause)
	v.SetDefault("search.max_batch", d.Search.MaxBatch)
	v.SetDefault("search.name_search_limit", d.Search.NameSearchLimit)
	v.SetDefault("search.synonym_scan_limit", d.Search.SynonymScanLimit)

	v.SetDefault("log.level", d.Log.Level)
	v.SetDefault("log.format", d.Log.Format)

	v.SetDefault("metrics.enabled", d.Metrics.Enabled)
	v.SetDefault("metrics.namespace", d.Metrics.Namespace)
	v.SetDefault("metrics.path", d.Metrics.Path)
}

// Load reads the YAML file at configPath, merges GHS_* environment overrides,
// fills defaults and validates the result.
func Load(configPath string) (*Config, error) {
	v := newViper()
	v.SetConfigFile(configPath)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("config: failed to read config file %q: %w", configPath, err)
	}

	return unmarshalAndFinalize(v)
}

// LoadFromEnv builds a Config from GHS_* environment variables alone.
//
//	GHS_<SECTION>_<FIELD>   e.g.  GHS_SERVER_PORT, GHS_REDIS_ENABLED
func LoadFromEnv() (*Config, error) {
	return unmarshalAndFinalize(newViper())
}

// LoadOrDefault loads configPath when it is non-empty and falls back to the
// environment otherwise.
func LoadOrDefault(configPath string) (*Config, error) {
	if configPath == "" {
		return LoadFromEnv()
	}
	return Load(configPath)
}

func unmarshalAndFinalize(v *viper.Viper) (*Config, error) {
	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("config: failed to unmarshal configuration: %w", err)
	}

	ApplyDefaults(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: validation failed: %w", err)
	}

	return cfg, nil
}

// Watch re-reads configPath whenever it changes on disk and passes the new
// Config to onChange.  A change that fails to parse or validate is reported
// to onError (when non-nil) and onChange is skipped.  Only the log level is
// meant to be applied live; everything else takes effect on restart.
func Watch(configPath string, onChange func(*Config), onError func(error)) error {
	v := newViper()
	v.SetConfigFile(configPath)

	if err := v.ReadInConfig(); err != nil {
		return fmt.Errorf("config: failed to read config file %q: %w", configPath, err)
	}

	v.OnConfigChange(func(e fsnotify.Event) {
		if !e.Has(fsnotify.Write) && !e.Has(fsnotify.Create) {
			return
		}
		cfg, err := unmarshalAndFinalize(v)
		if err != nil {
			if onError != nil {
				onError(err)
			}
			return
		}
		onChange(cfg)
	})
	v.WatchConfig()
	return nil
}

// MustLoad wraps Load and panics on any error.  main() only.
func MustLoad(configPath string) *Config {
	cfg, err := Load(configPath)
	if err != nil {
		panic(fmt.Sprintf("config: MustLoad failed: %v", err))
	}
	return cfg
}
