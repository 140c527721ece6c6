package redis

import (
	"context"
	"testing"
	"time"

	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rjsky311/GHS-label-quick-search/internal/infrastructure/monitoring/logging"
	"github.com/rjsky311/GHS-label-quick-search/pkg/errors"
)

func TestNewClient_ConnectionFailed(t *testing.T) {
	cfg := &RedisConfig{
		Addr:        "127.0.0.1:1",
		DialTimeout: 200 * time.Millisecond,
		MaxRetries:  -1,
	}

	client, err := NewClient(cfg, logging.NewNopLogger())
	assert.Nil(t, client)
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrCodeCacheUnavailable))
}

func TestApplyDefaults(t *testing.T) {
	cfg := &RedisConfig{PoolSize: 3}
	applyDefaults(cfg)
	assert.Equal(t, 3, cfg.PoolSize)
	assert.Equal(t, 5*time.Second, cfg.DialTimeout)
	assert.Equal(t, 3, cfg.MaxRetries)
}

func TestClient_PingAndClose(t *testing.T) {
	db, mock := redismock.NewClientMock()
	client := NewClientFromUniversal(db, nil, nil)

	mock.ExpectPing().SetVal("PONG")
	require.NoError(t, client.Ping(context.Background()))

	require.NoError(t, client.Close())
	assert.NoError(t, client.Close(), "second close is a no-op")

	assert.Equal(t, ErrClientClosed, client.Ping(context.Background()))
	assert.Equal(t, ErrClientClosed, client.Get(context.Background(), "k").Err())
	assert.Equal(t, ErrClientClosed, client.Set(context.Background(), "k", "v", 0).Err())
	assert.Equal(t, ErrClientClosed, client.Del(context.Background(), "k").Err())
	assert.NoError(t, mock.ExpectationsWereMet())
}
