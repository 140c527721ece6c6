package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rjsky311/GHS-label-quick-search/internal/config"
)

// validConfig returns a Config that passes Validate().
func validConfig() *config.Config {
	return config.NewDefaultConfig()
}

func TestConfig_Validate_ValidConfig(t *testing.T) {
	t.Parallel()
	assert.NoError(t, validConfig().Validate())
}

func TestConfig_Validate_InvalidServerPort(t *testing.T) {
	t.Parallel()
	for _, port := range []int{0, -1, 65536} {
		cfg := validConfig()
		cfg.Server.Port = port
		err := cfg.Validate()
		require.Error(t, err, "port %d", port)
		assert.Contains(t, err.Error(), "server.port")
	}
}

func TestConfig_Validate_NegativeRateLimit(t *testing.T) {
	t.Parallel()
	cfg := validConfig()
	cfg.Server.RateLimitRPS = -1
	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "server.rate_limit_rps")
}

func TestConfig_Validate_RelativeBaseURL(t *testing.T) {
	t.Parallel()
	cfg := validConfig()
	cfg.PubChem.BaseURL = "pubchem.local"
	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "pubchem.base_url")
}

func TestConfig_Validate_IdleConnsExceedMax(t *testing.T) {
	t.Parallel()
	cfg := validConfig()
	cfg.PubChem.MaxIdleConns = cfg.PubChem.MaxConns + 1
	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "max_idle_conns")
}

func TestConfig_Validate_ZeroUpstreamRate(t *testing.T) {
	t.Parallel()
	cfg := validConfig()
	cfg.PubChem.RequestsPerSecond = 0
	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "pubchem.requests_per_second")
}

func TestConfig_Validate_CacheCapacity(t *testing.T) {
	t.Parallel()
	cfg := validConfig()
	cfg.Cache.Capacity = 0
	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "cache.capacity")
}

func TestConfig_Validate_RedisEnabledWithoutAddr(t *testing.T) {
	t.Parallel()
	cfg := validConfig()
	cfg.Redis.Enabled = true
	cfg.Redis.Addr = ""
	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "redis.addr")
}

func TestConfig_Validate_RedisDisabledWithoutAddr(t *testing.T) {
	t.Parallel()
	cfg := validConfig()
	cfg.Redis.Addr = ""
	assert.NoError(t, cfg.Validate())
}

func TestConfig_Validate_WindowSize(t *testing.T) {
	t.Parallel()
	cfg := validConfig()
	cfg.Search.WindowSize = 0
	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "search.window_size")
}

func TestConfig_Validate_NegativeWindowPause(t *testing.T) {
	t.Parallel()
	cfg := validConfig()
	cfg.Search.WindowPause = -time.Millisecond
	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "search.window_pause")
}

func TestConfig_Validate_InvalidLogLevel(t *testing.T) {
	t.Parallel()
	cfg := validConfig()
	cfg.Log.Level = "verbose"
	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "log.level")
}

func TestConfig_Validate_InvalidLogFormat(t *testing.T) {
	t.Parallel()
	cfg := validConfig()
	cfg.Log.Format = "xml"
	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "log.format")
}

func TestServerConfig_Addr(t *testing.T) {
	t.Parallel()
	s := config.ServerConfig{Host: "127.0.0.1", Port: 8001}
	assert.Equal(t, "127.0.0.1:8001", s.Addr())
}
