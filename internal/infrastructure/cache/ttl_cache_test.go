package cache

import (
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rjsky311/GHS-label-quick-search/internal/testutil"
)

func newClockedCache(capacity int, ttl time.Duration) (*TTLCache[string, int], *testutil.FakeClock) {
	clock := testutil.NewFakeClock(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))
	return NewTTLCache[string, int](capacity, ttl, WithClock[string, int](clock.Now)), clock
}

func TestTTLCache_PutGet(t *testing.T) {
	c, _ := newClockedCache(10, time.Hour)
	c.Put("64-17-5", 702)

	v, ok := c.Get("64-17-5")
	require.True(t, ok)
	assert.Equal(t, 702, v)

	_, ok = c.Get("67-64-1")
	assert.False(t, ok)
}

func TestTTLCache_ExpiresLazily(t *testing.T) {
	c, clock := newClockedCache(10, time.Hour)
	c.Put("k", 1)

	clock.Advance(59 * time.Minute)
	_, ok := c.Get("k")
	assert.True(t, ok)

	clock.Advance(time.Minute)
	_, ok = c.Get("k")
	assert.False(t, ok, "entry at exactly ttl age must not be returned")
	assert.Equal(t, 0, c.Len(), "expired entry is dropped on read")
}

func TestTTLCache_OverwriteRestartsTTL(t *testing.T) {
	c, clock := newClockedCache(10, time.Hour)
	c.Put("k", 1)
	clock.Advance(50 * time.Minute)
	c.Put("k", 2)
	clock.Advance(50 * time.Minute)

	v, ok := c.Get("k")
	require.True(t, ok)
	assert.Equal(t, 2, v)
}

func TestTTLCache_EvictsLeastRecentlyUsed(t *testing.T) {
	c, _ := newClockedCache(2, time.Hour)
	c.Put("a", 1)
	c.Put("b", 2)
	_, _ = c.Get("a") // a is now most recent
	c.Put("c", 3)

	_, ok := c.Get("b")
	assert.False(t, ok)
	_, ok = c.Get("a")
	assert.True(t, ok)
	_, ok = c.Get("c")
	assert.True(t, ok)
	assert.Equal(t, 2, c.Len())
}

func TestTTLCache_Defaults(t *testing.T) {
	c := NewTTLCache[string, int](0, 0)
	assert.Equal(t, DefaultTTL, c.TTL())
	for i := 0; i < DefaultCapacity+10; i++ {
		c.Put(fmt.Sprint(i), i)
	}
	assert.Equal(t, DefaultCapacity, c.Len())
}

func TestTTLCache_ConcurrentAccess(t *testing.T) {
	c := NewTTLCache[string, int](100, time.Hour)
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			key := fmt.Sprint(i % 10)
			c.Put(key, i)
			_, _ = c.Get(key)
		}(i)
	}
	wg.Wait()
	assert.LessOrEqual(t, c.Len(), 10)
}
