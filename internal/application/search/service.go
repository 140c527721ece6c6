// Package search is the application service behind every query surface.  It
// turns one identifier, a free-text name or a batch of either into wire
// results, combining the dictionary, identity resolver, naming chain and
// classification extractor from chem_extractor.
package search

import (
	"context"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/rjsky311/GHS-label-quick-search/internal/domain/chemical"
	"github.com/rjsky311/GHS-label-quick-search/internal/infrastructure/monitoring/logging"
	"github.com/rjsky311/GHS-label-quick-search/internal/infrastructure/monitoring/prometheus"
	"github.com/rjsky311/GHS-label-quick-search/internal/intelligence/chem_extractor"
	"github.com/rjsky311/GHS-label-quick-search/pkg/errors"
	"github.com/rjsky311/GHS-label-quick-search/pkg/types/ghs"
)

// User-facing result messages.
const (
	msgLocalOnly  = "PubChem 無 GHS 資料，僅提供本地字典名稱"
	msgNotFound   = "在 PubChem 資料庫中找不到 CAS %s，請確認號碼是否正確"
	msgUnresolved = "找不到名稱「%s」對應的 CAS 號碼"
)

// Service defines the search operations exposed to the HTTP, CLI and MCP
// surfaces.  Single-identifier operations never return an error: every
// failure is reported inside the result.
type Service interface {
	// Search looks up one CAS identifier.
	Search(ctx context.Context, raw string) ghs.Result
	// SearchAny treats raw as a CAS identifier when it looks like one and as
	// a chemical name otherwise.
	SearchAny(ctx context.Context, raw string) ghs.Result
	// SearchBatch runs Search over raws in throttled windows.  Output order
	// matches input order.
	SearchBatch(ctx context.Context, raws []string) ([]ghs.Result, error)
	// SearchBatchAny is SearchBatch with auto-detection per entry.
	SearchBatchAny(ctx context.Context, raws []string) ([]ghs.Result, error)
	// SearchByName lists dictionary entries matching query.
	SearchByName(query string, limit int) []ghs.NameMatch
	// Pictograms returns the pictogram reference table keyed by code.
	Pictograms() map[string]ghs.Pictogram
}

// Config tunes the orchestrator.
type Config struct {
	WindowSize      int
	WindowPause     time.Duration
	MaxBatch        int
	NameSearchLimit int
}

// DefaultConfig returns the production throttle settings.
func DefaultConfig() Config {
	return Config{
		WindowSize:      5,
		WindowPause:     500 * time.Millisecond,
		MaxBatch:        ghs.MaxBatchSize,
		NameSearchLimit: chem_extractor.DefaultNameSearchLimit,
	}
}

func (c *Config) applyDefaults() {
	d := DefaultConfig()
	if c.WindowSize <= 0 {
		c.WindowSize = d.WindowSize
	}
	if c.WindowPause < 0 {
		c.WindowPause = 0
	}
	if c.MaxBatch <= 0 {
		c.MaxBatch = d.MaxBatch
	}
	if c.NameSearchLimit <= 0 {
		c.NameSearchLimit = d.NameSearchLimit
	}
}

// Option configures the service.
type Option func(*serviceImpl)

// WithMetrics records per-identifier outcomes and batch sizes.
func WithMetrics(m *prometheus.AppMetrics) Option {
	return func(s *serviceImpl) { s.metrics = m }
}

// WithLogger sets the service logger.
func WithLogger(l logging.Logger) Option {
	return func(s *serviceImpl) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithPause replaces the wait between batch windows.  The function must
// return early with ctx's error when ctx ends.
func WithPause(pause func(ctx context.Context, d time.Duration) error) Option {
	return func(s *serviceImpl) {
		if pause != nil {
			s.pause = pause
		}
	}
}

type serviceImpl struct {
	cfg       Config
	index     *chem_extractor.Index
	identity  *chem_extractor.IdentityResolver
	documents *chem_extractor.DocumentSource
	namer     *chem_extractor.Namer
	metrics   *prometheus.AppMetrics
	logger    logging.Logger
	pause     func(ctx context.Context, d time.Duration) error
}

// NewService creates the search service over c.
func NewService(c *Components, cfg Config, opts ...Option) Service {
	cfg.applyDefaults()
	s := &serviceImpl{
		cfg:       cfg,
		index:     c.Index,
		identity:  c.Identity,
		documents: c.Documents,
		namer:     c.Namer,
		logger:    logging.NewNopLogger(),
		pause:     sleepContext,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.logger = s.logger.Named("search")
	return s
}

func (s *serviceImpl) Search(ctx context.Context, raw string) ghs.Result {
	cas, err := chem_extractor.ValidateCAS(raw)
	if err != nil {
		return s.malformed(raw, cas, err)
	}
	r := s.searchCAS(ctx, cas)
	r.MatchedBy = ghs.MatchedByCAS
	if raw != cas {
		r.Query = raw
	}
	return r
}

func (s *serviceImpl) SearchAny(ctx context.Context, raw string) ghs.Result {
	if strings.TrimSpace(raw) == "" || chem_extractor.IsCAS(raw) || chem_extractor.LooksLikeCAS(raw) {
		return s.Search(ctx, raw)
	}

	res, ok := s.index.ResolveName(raw)
	if !ok {
		s.metrics.RecordSearchResult(prometheus.OutcomeUnresolved)
		r := failedResult(raw, errors.Errorf(errors.ErrCodeNameUnresolved, msgUnresolved, raw).Message)
		r.Query = raw
		return r
	}

	r := s.searchCAS(ctx, res.CAS)
	r.MatchedBy = matchedBy(res.Kind)
	r.Query = raw
	return r
}

func (s *serviceImpl) SearchByName(query string, limit int) []ghs.NameMatch {
	if limit <= 0 || limit > s.cfg.NameSearchLimit {
		limit = s.cfg.NameSearchLimit
	}
	return toNameMatches(s.index.SearchNames(query, limit))
}

func (s *serviceImpl) Pictograms() map[string]ghs.Pictogram {
	return PictogramTable()
}

func (s *serviceImpl) malformed(raw, normalized string, err error) ghs.Result {
	s.metrics.RecordSearchResult(prometheus.OutcomeMalformed)
	cas := normalized
	if cas == "" {
		cas = raw
	}
	message := err.Error()
	var appErr *errors.AppError
	if errors.As(err, &appErr) {
		message = appErr.Message
	}
	r := failedResult(cas, message)
	if raw != cas {
		r.Query = raw
	}
	return r
}

// searchCAS resolves a validated CAS number.  Without a compound id the
// result falls back to the local dictionary names; otherwise the naming
// chain and the classification fetch run side by side.
func (s *serviceImpl) searchCAS(ctx context.Context, cas string) ghs.Result {
	local := s.namer.Local(cas)

	cid, ok := s.identity.ResolveCID(ctx, cas)
	if !ok {
		if err := ctx.Err(); err != nil {
			return s.canceled(cas, err)
		}
		if local.English != "" || local.Chinese != "" {
			s.metrics.RecordSearchResult(prometheus.OutcomeLocalOnly)
			r := newResult(cas)
			r.NameEN = local.English
			r.NameZH = local.Chinese
			r.Found = true
			r.Error = msgLocalOnly
			return r
		}
		s.metrics.RecordSearchResult(prometheus.OutcomeNotFound)
		return failedResult(cas, errors.Errorf(errors.ErrCodeChemicalNotFound, msgNotFound, cas).Message)
	}

	var (
		draft chem_extractor.NameDraft
		doc   *chem_extractor.Document
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		draft = s.namer.Lookup(gctx, cas, cid)
		return nil
	})
	g.Go(func() error {
		doc = s.documents.Fetch(gctx, cid)
		return nil
	})
	_ = g.Wait()
	if err := ctx.Err(); err != nil {
		return s.canceled(cas, err)
	}

	names := s.namer.Finish(draft, doc, cid)
	agg, classified := chem_extractor.Classify(doc)
	if !classified {
		s.logger.Debug("no classification available", logging.CAS(cas), logging.CID(cid))
	}
	s.metrics.RecordSearchResult(prometheus.OutcomeFound)

	return present(chemical.Identity{
		CAS:    cas,
		CID:    cid,
		NameEN: names.English,
		NameZH: names.Chinese,
	}, agg, classified)
}

func (s *serviceImpl) canceled(cas string, err error) ghs.Result {
	s.metrics.RecordSearchResult(prometheus.OutcomeCanceled)
	return failedResult(cas, err.Error())
}

func matchedBy(kind chemical.MatchKind) string {
	switch kind {
	case chemical.MatchAlias:
		return ghs.MatchedByAlias
	case chemical.MatchCAS:
		return ghs.MatchedByCAS
	default:
		return ghs.MatchedByName
	}
}

func sleepContext(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
