package chem_extractor

import (
	"context"
	"strconv"

	"golang.org/x/sync/singleflight"

	"github.com/rjsky311/GHS-label-quick-search/internal/infrastructure/monitoring/logging"
)

// DocumentCache stores classification documents by compound id.
type DocumentCache interface {
	Get(ctx context.Context, key string) (*Document, bool)
	Put(ctx context.Context, key string, doc *Document)
}

// DocumentSource fetches classification documents through a cache.  Only
// successful fetches are cached.
type DocumentSource struct {
	gateway Gateway
	cache   DocumentCache
	flight  singleflight.Group
	logger  logging.Logger
}

// NewDocumentSource wires a source over gw and c.
func NewDocumentSource(gw Gateway, c DocumentCache, logger logging.Logger) *DocumentSource {
	if logger == nil {
		logger = logging.NewNopLogger()
	}
	return &DocumentSource{gateway: gw, cache: c, logger: logger.Named("document")}
}

// Fetch returns the document for cid, or nil when it cannot be had.
func (s *DocumentSource) Fetch(ctx context.Context, cid int) *Document {
	key := strconv.Itoa(cid)
	if doc, ok := s.cache.Get(ctx, key); ok {
		return doc
	}

	for {
		ch := s.flight.DoChan(key, func() (interface{}, error) {
			doc, err := s.gateway.Document(ctx, cid)
			if err != nil {
				if ctx.Err() != nil {
					return nil, ctx.Err()
				}
				s.logger.Debug("classification document unavailable", logging.CID(cid), logging.Err(err))
				return (*Document)(nil), nil
			}
			if doc != nil {
				s.cache.Put(ctx, key, doc)
			}
			return doc, nil
		})
		select {
		case <-ctx.Done():
			return nil
		case res := <-ch:
			if res.Err == nil {
				return res.Val.(*Document)
			}
			if ctx.Err() != nil || !isContextErr(res.Err) {
				return nil
			}
		}
	}
}
