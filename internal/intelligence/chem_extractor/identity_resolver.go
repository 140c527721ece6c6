package chem_extractor

import (
	"context"
	"errors"

	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/singleflight"

	"github.com/rjsky311/GHS-label-quick-search/internal/infrastructure/monitoring/logging"
	pkgerrors "github.com/rjsky311/GHS-label-quick-search/pkg/errors"
)

// IDCache stores resolved compound ids by normalized CAS number.
// cache.Tiered[int] satisfies it.
type IDCache interface {
	Get(ctx context.Context, key string) (int, bool)
	Put(ctx context.Context, key string, cid int)
}

// lookupStrategy is one way of asking the upstream for a compound id.
type lookupStrategy struct {
	name   string
	lookup func(ctx context.Context, cas string) (int, error)
}

// IdentityResolver maps a normalized CAS number to an upstream compound id.
type IdentityResolver struct {
	gateway    Gateway
	cache      IDCache
	strategies []lookupStrategy
	flight     singleflight.Group
	logger     logging.Logger
}

// NewIdentityResolver wires a resolver over gw, remembering hits in c.
func NewIdentityResolver(gw Gateway, c IDCache, logger logging.Logger) *IdentityResolver {
	if logger == nil {
		logger = logging.NewNopLogger()
	}
	return &IdentityResolver{
		gateway: gw,
		cache:   c,
		// Priority order: the first positive id in this order wins.
		strategies: []lookupStrategy{
			{name: "cid_by_name", lookup: gw.CIDByName},
			{name: "cid_by_xref", lookup: gw.CIDByXref},
			{name: "cid_by_substance_xref", lookup: gw.CIDBySubstanceXref},
		},
		logger: logger.Named("identity"),
	}
}

// ResolveCID returns the compound id for cas and whether one was found.  A
// cache hit returns immediately.  Concurrent misses for the same cas share a
// single set of upstream calls; if the caller that started them is cancelled,
// the others retry under their own context.
func (r *IdentityResolver) ResolveCID(ctx context.Context, cas string) (int, bool) {
	if cid, ok := r.cache.Get(ctx, cas); ok {
		return cid, true
	}

	for {
		ch := r.flight.DoChan(cas, func() (interface{}, error) {
			return r.lookup(ctx, cas)
		})
		select {
		case <-ctx.Done():
			return 0, false
		case res := <-ch:
			if res.Err == nil {
				cid := res.Val.(int)
				return cid, cid > 0
			}
			if ctx.Err() != nil || !isContextErr(res.Err) {
				return 0, false
			}
		}
	}
}

// lookup runs every strategy and, failing that, the zero-stripped variant
// through the name strategy.  It returns the context's error when ctx ended
// before a result was found so that coalesced callers can tell a real miss
// from an aborted one.
func (r *IdentityResolver) lookup(ctx context.Context, cas string) (int, error) {
	if cid := r.firstInPriority(ctx, cas, r.strategies); cid > 0 {
		r.cache.Put(ctx, cas, cid)
		return cid, nil
	}

	if alt := stripFirstGroupZeros(cas); alt != cas {
		if cid := r.firstInPriority(ctx, alt, r.strategies[:1]); cid > 0 {
			r.cache.Put(ctx, cas, cid)
			return cid, nil
		}
	}

	if err := ctx.Err(); err != nil {
		return 0, err
	}
	r.logger.Warn("CID not found", logging.CAS(cas))
	return 0, nil
}

// firstInPriority starts all strategies at once, waits for every one of them
// and then returns the first positive id in slice order.  It does not race:
// a slow high-priority strategy still beats a fast low-priority one.
func (r *IdentityResolver) firstInPriority(ctx context.Context, cas string, strategies []lookupStrategy) int {
	ids := make([]int, len(strategies))

	var g errgroup.Group
	for i, s := range strategies {
		g.Go(func() error {
			cid, err := s.lookup(ctx, cas)
			switch {
			case err == nil && cid > 0:
				ids[i] = cid
			case err != nil && !pkgerrors.IsNotFound(err):
				r.logger.Debug("CID lookup failed",
					logging.String("strategy", s.name), logging.CAS(cas), logging.Err(err))
			}
			return nil
		})
	}
	_ = g.Wait()

	for _, cid := range ids {
		if cid > 0 {
			return cid
		}
	}
	return 0
}

func isContextErr(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}
