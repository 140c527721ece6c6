// Package cache provides the bounded, time-expiring caches used by the
// identity and classification resolvers.
package cache

import (
	"sync"
	"time"

	"github.com/hashicorp/golang-lru/v2/simplelru"
)

// Clock returns the current time.  Tests inject a fake.
type Clock func() time.Time

// Default sizing for resolver caches.
const (
	DefaultTTL      = 24 * time.Hour
	DefaultCapacity = 5000
)

type entry[V any] struct {
	value      V
	insertedAt time.Time
}

// TTLCache is a fixed-capacity LRU whose entries expire ttl after insertion.
// Expiry is checked lazily on Get; capacity pressure evicts the least
// recently used entry.  Safe for concurrent use; last writer wins.
type TTLCache[K comparable, V any] struct {
	mu    sync.Mutex
	lru   *simplelru.LRU[K, entry[V]]
	ttl   time.Duration
	clock Clock
}

// TTLOption configures a TTLCache.
type TTLOption[K comparable, V any] func(*TTLCache[K, V])

// WithClock overrides time.Now.
func WithClock[K comparable, V any](clock Clock) TTLOption[K, V] {
	return func(c *TTLCache[K, V]) {
		if clock != nil {
			c.clock = clock
		}
	}
}

// NewTTLCache builds a cache holding at most capacity entries.  Non-positive
// arguments fall back to DefaultCapacity and DefaultTTL.
func NewTTLCache[K comparable, V any](capacity int, ttl time.Duration, opts ...TTLOption[K, V]) *TTLCache[K, V] {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	// simplelru.NewLRU only fails on a non-positive size.
	lru, _ := simplelru.NewLRU[K, entry[V]](capacity, nil)
	c := &TTLCache[K, V]{lru: lru, ttl: ttl, clock: time.Now}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Get returns the live value for key.  An expired entry is removed and
// reported as a miss.
func (c *TTLCache[K, V]) Get(key K) (V, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	var zero V
	e, ok := c.lru.Get(key)
	if !ok {
		return zero, false
	}
	if c.clock().Sub(e.insertedAt) >= c.ttl {
		c.lru.Remove(key)
		return zero, false
	}
	return e.value, true
}

// Put stores value under key, replacing any previous entry and restarting
// its TTL.
func (c *TTLCache[K, V]) Put(key K, value V) {
	c.PutAt(key, value, c.clock())
}

// PutAt stores value as if it had been inserted at insertedAt, so it expires
// ttl after that instant rather than after now.
func (c *TTLCache[K, V]) PutAt(key K, value V, insertedAt time.Time) {
	c.mu.Lock()
	c.lru.Add(key, entry[V]{value: value, insertedAt: insertedAt})
	c.mu.Unlock()
}

// Now reads the cache's clock.
func (c *TTLCache[K, V]) Now() time.Time { return c.clock() }

// Len reports the number of stored entries, expired ones included until
// they are next read.
func (c *TTLCache[K, V]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.lru.Len()
}

// TTL returns the configured time-to-live.
func (c *TTLCache[K, V]) TTL() time.Duration { return c.ttl }
