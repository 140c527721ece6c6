package chem_extractor

import (
	"context"
	"sync"
	"time"

	"github.com/rjsky311/GHS-label-quick-search/internal/infrastructure/cache"
	"github.com/rjsky311/GHS-label-quick-search/pkg/errors"
)

var errNoRecord = errors.New(errors.ErrCodeDataSourceNoRecord, "no record")

// fakeGateway serves canned answers and counts calls per operation.
type fakeGateway struct {
	mu    sync.Mutex
	calls map[string]int

	byName      map[string]int
	byXref      map[string]int
	bySubstance map[string]int
	delays      map[string]time.Duration
	failing     map[string]bool

	properties  map[int]Properties
	synonyms    map[int][]string
	description map[int]Description
	documents   map[int]*Document
}

func newFakeGateway() *fakeGateway {
	return &fakeGateway{
		calls:       map[string]int{},
		byName:      map[string]int{},
		byXref:      map[string]int{},
		bySubstance: map[string]int{},
		delays:      map[string]time.Duration{},
		failing:     map[string]bool{},
		properties:  map[int]Properties{},
		synonyms:    map[int][]string{},
		description: map[int]Description{},
		documents:   map[int]*Document{},
	}
}

func (g *fakeGateway) count(op string) int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.calls[op]
}

// enter records the call, applies any configured delay and reports a
// context or injected failure.
func (g *fakeGateway) enter(ctx context.Context, op string) error {
	g.mu.Lock()
	g.calls[op]++
	delay, fail := g.delays[op], g.failing[op]
	g.mu.Unlock()

	if delay > 0 {
		select {
		case <-time.After(delay):
		case <-ctx.Done():
			return ctx.Err()
		}
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	if fail {
		return errors.New(errors.ErrCodeDataSourceUnavailable, "injected failure")
	}
	return nil
}

func (g *fakeGateway) cid(ctx context.Context, op string, table map[string]int, key string) (int, error) {
	if err := g.enter(ctx, op); err != nil {
		return 0, err
	}
	if cid, ok := table[key]; ok {
		return cid, nil
	}
	return 0, errNoRecord
}

func (g *fakeGateway) CIDByName(ctx context.Context, name string) (int, error) {
	return g.cid(ctx, "name", g.byName, name)
}

func (g *fakeGateway) CIDByXref(ctx context.Context, cas string) (int, error) {
	return g.cid(ctx, "xref", g.byXref, cas)
}

func (g *fakeGateway) CIDBySubstanceXref(ctx context.Context, cas string) (int, error) {
	return g.cid(ctx, "substance", g.bySubstance, cas)
}

func (g *fakeGateway) Properties(ctx context.Context, cid int) (Properties, error) {
	if err := g.enter(ctx, "properties"); err != nil {
		return Properties{}, err
	}
	p, ok := g.properties[cid]
	if !ok {
		return Properties{}, errNoRecord
	}
	return p, nil
}

func (g *fakeGateway) Synonyms(ctx context.Context, cid int) ([]string, error) {
	if err := g.enter(ctx, "synonyms"); err != nil {
		return nil, err
	}
	s, ok := g.synonyms[cid]
	if !ok {
		return nil, errNoRecord
	}
	return s, nil
}

func (g *fakeGateway) Description(ctx context.Context, cid int) (Description, error) {
	if err := g.enter(ctx, "description"); err != nil {
		return Description{}, err
	}
	d, ok := g.description[cid]
	if !ok {
		return Description{}, errNoRecord
	}
	return d, nil
}

func (g *fakeGateway) Document(ctx context.Context, cid int) (*Document, error) {
	if err := g.enter(ctx, "document"); err != nil {
		return nil, err
	}
	d, ok := g.documents[cid]
	if !ok {
		return nil, errNoRecord
	}
	return d, nil
}

func newIDCache() *cache.Tiered[int] {
	return cache.NewTiered[int]("cid", cache.NewTTLCache[string, int](100, time.Hour))
}

func newDocumentCache() *cache.Tiered[*Document] {
	return cache.NewTiered[*Document]("document", cache.NewTTLCache[string, *Document](100, time.Hour))
}
