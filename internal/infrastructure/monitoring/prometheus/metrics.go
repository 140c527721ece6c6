package prometheus

import (
	"strconv"
	"time"
)

// Outcome label values.  OK and Error are upstream-only; NotFound is shared
// by the upstream and search counters.
const (
	OutcomeOK       = "ok"
	OutcomeNotFound = "not_found"
	OutcomeError    = "error"

	OutcomeFound      = "found"
	OutcomeLocalOnly  = "local_only"
	OutcomeMalformed  = "malformed"
	OutcomeUnresolved = "unresolved"
	OutcomeCanceled   = "canceled"
)

// AppMetrics holds every metric the service records.  All Record* methods
// are safe on a nil receiver so metrics can be switched off by passing nil.
type AppMetrics struct {
	// HTTP layer
	HTTPRequestsTotal   CounterVec
	HTTPRequestDuration HistogramVec

	// Upstream (PubChem) layer
	UpstreamRequestsTotal   CounterVec
	UpstreamRequestDuration HistogramVec

	// Caches
	CacheRequestsTotal CounterVec
	CacheEntries       GaugeVec

	// Search
	SearchResultsTotal CounterVec
	BatchSize          HistogramVec
}

// Default buckets
var (
	DefaultHTTPDurationBuckets     = []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10, 30, 60}
	DefaultUpstreamDurationBuckets = []float64{.05, .1, .25, .5, 1, 2.5, 5, 10, 15, 30}
	DefaultBatchSizeBuckets        = []float64{1, 5, 10, 25, 50, 100}
)

// NewAppMetrics registers all metrics on collector.
func NewAppMetrics(collector MetricsCollector) *AppMetrics {
	m := &AppMetrics{}

	m.HTTPRequestsTotal = collector.RegisterCounter("http_requests_total", "Total HTTP requests", "method", "path", "status")
	m.HTTPRequestDuration = collector.RegisterHistogram("http_request_duration_seconds", "HTTP request duration", DefaultHTTPDurationBuckets, "method", "path")

	m.UpstreamRequestsTotal = collector.RegisterCounter("upstream_requests_total", "Requests sent to the upstream compound database", "operation", "outcome")
	m.UpstreamRequestDuration = collector.RegisterHistogram("upstream_request_duration_seconds", "Upstream request duration", DefaultUpstreamDurationBuckets, "operation")

	m.CacheRequestsTotal = collector.RegisterCounter("cache_requests_total", "Cache lookups", "cache", "result")
	m.CacheEntries = collector.RegisterGauge("cache_entries", "Entries currently held by a process-local cache", "cache")

	m.SearchResultsTotal = collector.RegisterCounter("search_results_total", "Per-identifier search outcomes", "outcome")
	m.BatchSize = collector.RegisterHistogram("search_batch_size", "Identifiers per batch request", DefaultBatchSizeBuckets)

	return m
}

// RecordHTTPRequest counts one served request.
func (m *AppMetrics) RecordHTTPRequest(method, path string, status int, d time.Duration) {
	if m == nil {
		return
	}
	m.HTTPRequestsTotal.WithLabelValues(method, path, strconv.Itoa(status)).Inc()
	m.HTTPRequestDuration.WithLabelValues(method, path).Observe(d.Seconds())
}

// RecordUpstream counts one upstream call.  notFound distinguishes a clean
// "no record" answer from a failure.
func (m *AppMetrics) RecordUpstream(operation string, d time.Duration, err error, notFound bool) {
	if m == nil {
		return
	}
	outcome := OutcomeOK
	switch {
	case notFound:
		outcome = OutcomeNotFound
	case err != nil:
		outcome = OutcomeError
	}
	m.UpstreamRequestsTotal.WithLabelValues(operation, outcome).Inc()
	m.UpstreamRequestDuration.WithLabelValues(operation).Observe(d.Seconds())
}

// RecordCacheAccess counts a cache lookup as a hit or miss.
func (m *AppMetrics) RecordCacheAccess(cache string, hit bool) {
	if m == nil {
		return
	}
	result := "miss"
	if hit {
		result = "hit"
	}
	m.CacheRequestsTotal.WithLabelValues(cache, result).Inc()
}

// SetCacheEntries publishes the current size of a cache.
func (m *AppMetrics) SetCacheEntries(cache string, n int) {
	if m == nil {
		return
	}
	m.CacheEntries.WithLabelValues(cache).Set(float64(n))
}

// RecordSearchResult counts one per-identifier outcome.
func (m *AppMetrics) RecordSearchResult(outcome string) {
	if m == nil {
		return
	}
	m.SearchResultsTotal.WithLabelValues(outcome).Inc()
}

// RecordBatch observes the size of one batch request.
func (m *AppMetrics) RecordBatch(n int) {
	if m == nil {
		return
	}
	m.BatchSize.WithLabelValues().Observe(float64(n))
}
