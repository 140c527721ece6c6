package cache

import (
	"context"
	"time"

	"github.com/rjsky311/GHS-label-quick-search/internal/infrastructure/monitoring/logging"
	"github.com/rjsky311/GHS-label-quick-search/internal/infrastructure/monitoring/prometheus"
	pkgerrors "github.com/rjsky311/GHS-label-quick-search/pkg/errors"
)

// Remote is an optional shared cache tier, typically Redis.  Get must return
// an error satisfying errors.IsNotFound on a miss.
type Remote interface {
	Get(ctx context.Context, key string, dest interface{}) error
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error
}

// Tiered fronts an optional Remote with a process-local TTLCache.  Remote
// failures degrade to local-only operation and are never returned.
type Tiered[V any] struct {
	name    string
	local   *TTLCache[string, V]
	remote  Remote
	metrics *prometheus.AppMetrics
	logger  logging.Logger
}

// TieredOption configures a Tiered cache.
type TieredOption[V any] func(*Tiered[V])

// WithRemote attaches a shared tier.  nil leaves the cache local-only.
func WithRemote[V any](r Remote) TieredOption[V] {
	return func(t *Tiered[V]) { t.remote = r }
}

// WithMetrics records hit/miss counters under the cache's name.
func WithMetrics[V any](m *prometheus.AppMetrics) TieredOption[V] {
	return func(t *Tiered[V]) { t.metrics = m }
}

// WithLogger sets the logger used for remote-tier failures.
func WithLogger[V any](l logging.Logger) TieredOption[V] {
	return func(t *Tiered[V]) {
		if l != nil {
			t.logger = l
		}
	}
}

// NewTiered wraps local under name ("cid", "document").  The name doubles as
// the remote key namespace and the metrics label.
func NewTiered[V any](name string, local *TTLCache[string, V], opts ...TieredOption[V]) *Tiered[V] {
	t := &Tiered[V]{name: name, local: local, logger: logging.NewNopLogger()}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// remoteEntry is the shared-tier payload.  StoredAt travels with the value so
// every process ages it from the original write.
type remoteEntry[V any] struct {
	Value    V         `json:"v"`
	StoredAt time.Time `json:"stored_at"`
}

func (t *Tiered[V]) remoteKey(key string) string { return t.name + ":" + key }

// Get consults the local tier, then the remote one.  A remote hit older than
// the TTL is a miss; a live one is copied into the local tier keeping its
// original write time.
func (t *Tiered[V]) Get(ctx context.Context, key string) (V, bool) {
	if v, ok := t.local.Get(key); ok {
		t.metrics.RecordCacheAccess(t.name, true)
		return v, true
	}

	var zero V
	if t.remote == nil || ctx.Err() != nil {
		t.metrics.RecordCacheAccess(t.name, false)
		return zero, false
	}

	var e remoteEntry[V]
	if err := t.remote.Get(ctx, t.remoteKey(key), &e); err != nil {
		if !pkgerrors.IsNotFound(err) {
			t.logger.Warn("remote cache read failed", logging.String("cache", t.name), logging.String("key", key), logging.Err(err))
		}
		t.metrics.RecordCacheAccess(t.name, false)
		return zero, false
	}
	if t.local.Now().Sub(e.StoredAt) >= t.local.TTL() {
		t.metrics.RecordCacheAccess(t.name, false)
		return zero, false
	}

	t.local.PutAt(key, e.Value, e.StoredAt)
	t.metrics.RecordCacheAccess(t.name, true)
	return e.Value, true
}

// Put writes through both tiers.
func (t *Tiered[V]) Put(ctx context.Context, key string, v V) {
	now := t.local.Now()
	t.local.PutAt(key, v, now)
	t.metrics.SetCacheEntries(t.name, t.local.Len())

	if t.remote == nil {
		return
	}
	e := remoteEntry[V]{Value: v, StoredAt: now}
	if err := t.remote.Set(ctx, t.remoteKey(key), e, t.local.TTL()); err != nil {
		t.logger.Warn("remote cache write failed", logging.String("cache", t.name), logging.String("key", key), logging.Err(err))
	}
}

// Len reports the local tier's size.
func (t *Tiered[V]) Len() int { return t.local.Len() }
