package redis

import (
	"context"
	"encoding/json"
	"math/rand"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/rjsky311/GHS-label-quick-search/internal/infrastructure/monitoring/logging"
	"github.com/rjsky311/GHS-label-quick-search/pkg/errors"
)

var (
	ErrCacheMiss           = errors.New(errors.ErrCodeCacheMiss, "cache miss")
	ErrSerializationFailed = errors.New(errors.ErrCodeCacheCodec, "serialization failed")
)

// Cache is the JSON-valued key/value contract of the shared tier.
type Cache interface {
	Get(ctx context.Context, key string, dest interface{}) error
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error
	Delete(ctx context.Context, keys ...string) error
	DeleteByPrefix(ctx context.Context, prefix string) (int64, error)
	Ping(ctx context.Context) error
}

type redisCache struct {
	client     *Client
	logger     logging.Logger
	prefix     string
	defaultTTL time.Duration
	jitter     float64
}

// CacheOption configures the Redis cache.
type CacheOption func(*redisCache)

// WithPrefix namespaces every key.  Defaults to "ghs:".
func WithPrefix(prefix string) CacheOption {
	return func(c *redisCache) { c.prefix = prefix }
}

// WithDefaultTTL applies when Set is called with a zero ttl.
func WithDefaultTTL(ttl time.Duration) CacheOption {
	return func(c *redisCache) { c.defaultTTL = ttl }
}

// WithTTLJitter shortens each expiry by up to fraction of the ttl, never
// lengthening it.  Zero disables it.
func WithTTLJitter(fraction float64) CacheOption {
	return func(c *redisCache) { c.jitter = fraction }
}

// NewRedisCache returns a Cache backed by client.
func NewRedisCache(client *Client, log logging.Logger, opts ...CacheOption) Cache {
	if log == nil {
		log = logging.NewNopLogger()
	}
	c := &redisCache{
		client:     client,
		logger:     log,
		prefix:     "ghs:",
		defaultTTL: 24 * time.Hour,
		jitter:     0.1,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *redisCache) fullKey(key string) string {
	return c.prefix + key
}

func (c *redisCache) jitterTTL(ttl time.Duration) time.Duration {
	if ttl == 0 || c.jitter == 0 {
		return ttl
	}
	delta := float64(ttl) * c.jitter * rand.Float64()
	return ttl - time.Duration(delta)
}

func (c *redisCache) Get(ctx context.Context, key string, dest interface{}) error {
	data, err := c.client.Get(ctx, c.fullKey(key)).Bytes()
	if err == redis.Nil {
		return ErrCacheMiss
	}
	if err != nil {
		return errors.Wrap(err, errors.ErrCodeCacheUnavailable, "failed to get from cache")
	}
	if err := json.Unmarshal(data, dest); err != nil {
		c.logger.Warn("corrupt cache entry", logging.String("key", key), logging.Err(err))
		return ErrSerializationFailed.WithCause(err)
	}
	return nil
}

func (c *redisCache) Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	if ttl == 0 {
		ttl = c.defaultTTL
	}
	data, err := json.Marshal(value)
	if err != nil {
		return ErrSerializationFailed.WithCause(err)
	}
	if err := c.client.Set(ctx, c.fullKey(key), data, c.jitterTTL(ttl)).Err(); err != nil {
		return errors.Wrap(err, errors.ErrCodeCacheUnavailable, "failed to write cache")
	}
	return nil
}

func (c *redisCache) Delete(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}
	full := make([]string, len(keys))
	for i, k := range keys {
		full[i] = c.fullKey(k)
	}
	return c.client.Del(ctx, full...).Err()
}

// DeleteByPrefix removes every key under prefix.  Used by the
// "cache flush" maintenance path.
func (c *redisCache) DeleteByPrefix(ctx context.Context, prefix string) (int64, error) {
	var deleted int64
	var cursor uint64
	match := c.fullKey(prefix) + "*"
	for {
		keys, next, err := c.client.Scan(ctx, cursor, match, 100).Result()
		if err != nil {
			return deleted, err
		}
		if len(keys) > 0 {
			if err := c.client.Del(ctx, keys...).Err(); err != nil {
				return deleted, err
			}
			deleted += int64(len(keys))
		}
		cursor = next
		if cursor == 0 {
			return deleted, nil
		}
	}
}

func (c *redisCache) Ping(ctx context.Context) error {
	return c.client.Ping(ctx)
}
