package cache

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rjsky311/GHS-label-quick-search/internal/testutil"
	pkgerrors "github.com/rjsky311/GHS-label-quick-search/pkg/errors"
)

type fakeRemote struct {
	mu      sync.Mutex
	data    map[string][]byte
	ttls    map[string]time.Duration
	failGet error
	failSet error
	gets    int
}

func newFakeRemote() *fakeRemote {
	return &fakeRemote{data: map[string][]byte{}, ttls: map[string]time.Duration{}}
}

func (f *fakeRemote) Get(_ context.Context, key string, dest interface{}) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.gets++
	if f.failGet != nil {
		return f.failGet
	}
	b, ok := f.data[key]
	if !ok {
		return pkgerrors.New(pkgerrors.ErrCodeCacheMiss, "cache miss")
	}
	return json.Unmarshal(b, dest)
}

func (f *fakeRemote) Set(_ context.Context, key string, value interface{}, ttl time.Duration) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failSet != nil {
		return f.failSet
	}
	b, err := json.Marshal(value)
	if err != nil {
		return err
	}
	f.data[key] = b
	f.ttls[key] = ttl
	return nil
}

func TestTiered_LocalOnly(t *testing.T) {
	tc := NewTiered[int]("cid", NewTTLCache[string, int](10, time.Hour))
	ctx := context.Background()

	_, ok := tc.Get(ctx, "64-17-5")
	assert.False(t, ok)

	tc.Put(ctx, "64-17-5", 702)
	v, ok := tc.Get(ctx, "64-17-5")
	require.True(t, ok)
	assert.Equal(t, 702, v)
	assert.Equal(t, 1, tc.Len())
}

func TestTiered_WriteThroughAndRemoteHit(t *testing.T) {
	remote := newFakeRemote()
	ctx := context.Background()

	writer := NewTiered[int]("cid", NewTTLCache[string, int](10, time.Hour), WithRemote[int](remote))
	writer.Put(ctx, "64-17-5", 702)
	assert.Contains(t, remote.data, "cid:64-17-5")
	assert.Equal(t, time.Hour, remote.ttls["cid:64-17-5"])

	// A second process with a cold local tier reads through the remote.
	reader := NewTiered[int]("cid", NewTTLCache[string, int](10, time.Hour), WithRemote[int](remote))
	v, ok := reader.Get(ctx, "64-17-5")
	require.True(t, ok)
	assert.Equal(t, 702, v)

	// Remote hit was promoted locally.
	_, _ = reader.Get(ctx, "64-17-5")
	assert.Equal(t, 1, remote.gets)
}

func TestTiered_PromotedEntryKeepsOriginalAge(t *testing.T) {
	remote := newFakeRemote()
	clock := testutil.NewFakeClock(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))
	ctx := context.Background()
	newTier := func() *Tiered[int] {
		local := NewTTLCache[string, int](10, 24*time.Hour, WithClock[string, int](clock.Now))
		return NewTiered[int]("cid", local, WithRemote[int](remote))
	}

	writer := newTier()
	writer.Put(ctx, "64-17-5", 702)

	clock.Advance(23 * time.Hour)
	reader := newTier()
	v, ok := reader.Get(ctx, "64-17-5")
	require.True(t, ok)
	assert.Equal(t, 702, v)

	// 25h after the original write the promoted copy has expired too.
	clock.Advance(2 * time.Hour)
	_, ok = reader.Get(ctx, "64-17-5")
	assert.False(t, ok)
}

func TestTiered_StaleRemoteEntryIsMiss(t *testing.T) {
	remote := newFakeRemote()
	clock := testutil.NewFakeClock(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))
	ctx := context.Background()

	writer := NewTiered[int]("cid", NewTTLCache[string, int](10, time.Hour, WithClock[string, int](clock.Now)), WithRemote[int](remote))
	writer.Put(ctx, "k", 1)

	// The shared tier may still hold the key past its TTL.
	clock.Advance(time.Hour)
	reader := NewTiered[int]("cid", NewTTLCache[string, int](10, time.Hour, WithClock[string, int](clock.Now)), WithRemote[int](remote))
	_, ok := reader.Get(ctx, "k")
	assert.False(t, ok)
	assert.Equal(t, 0, reader.Len())
}

func TestTiered_RemoteFailureDegrades(t *testing.T) {
	remote := newFakeRemote()
	remote.failGet = errors.New("connection refused")
	remote.failSet = errors.New("connection refused")
	logger := testutil.NewMockLogger()
	ctx := context.Background()

	tc := NewTiered[int]("cid", NewTTLCache[string, int](10, time.Hour), WithRemote[int](remote), WithLogger[int](logger))

	_, ok := tc.Get(ctx, "k")
	assert.False(t, ok)
	assert.True(t, logger.HasMessage("warn", "remote cache read failed"))

	tc.Put(ctx, "k", 1)
	assert.True(t, logger.HasMessage("warn", "remote cache write failed"))

	v, ok := tc.Get(ctx, "k")
	require.True(t, ok)
	assert.Equal(t, 1, v)
}

func TestTiered_RemoteMissIsSilent(t *testing.T) {
	logger := testutil.NewMockLogger()
	tc := NewTiered[int]("cid", NewTTLCache[string, int](10, time.Hour), WithRemote[int](newFakeRemote()), WithLogger[int](logger))

	_, ok := tc.Get(context.Background(), "absent")
	assert.False(t, ok)
	assert.Equal(t, 0, logger.Count("warn"))
}

func TestTiered_CanceledContextSkipsRemote(t *testing.T) {
	remote := newFakeRemote()
	tc := NewTiered[int]("cid", NewTTLCache[string, int](10, time.Hour), WithRemote[int](remote))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, ok := tc.Get(ctx, "k")
	assert.False(t, ok)
	assert.Equal(t, 0, remote.gets)
}
