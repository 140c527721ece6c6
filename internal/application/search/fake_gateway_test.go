package search

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/rjsky311/GHS-label-quick-search/internal/domain/chemical"
	"github.com/rjsky311/GHS-label-quick-search/internal/infrastructure/cache"
	"github.com/rjsky311/GHS-label-quick-search/internal/intelligence/chem_extractor"
	"github.com/rjsky311/GHS-label-quick-search/pkg/errors"
)

var errNoRecord = errors.New(errors.ErrCodeDataSourceNoRecord, "no record")

// fakeGateway answers from canned tables and tracks how many name lookups
// (one per searched identifier) are in flight at once.
type fakeGateway struct {
	mu          sync.Mutex
	cids        map[string]int
	titles      map[int]string
	synonyms    map[int][]string
	documents   map[int]*chem_extractor.Document
	delay       time.Duration
	inFlight    int
	maxInFlight int
	nameCalls   []string
}

func newFakeGateway() *fakeGateway {
	return &fakeGateway{
		cids:      map[string]int{},
		titles:    map[int]string{},
		synonyms:  map[int][]string{},
		documents: map[int]*chem_extractor.Document{},
	}
}

func (g *fakeGateway) CIDByName(ctx context.Context, name string) (int, error) {
	g.mu.Lock()
	g.inFlight++
	g.maxInFlight = max(g.maxInFlight, g.inFlight)
	g.nameCalls = append(g.nameCalls, name)
	delay := g.delay
	g.mu.Unlock()

	defer func() {
		g.mu.Lock()
		g.inFlight--
		g.mu.Unlock()
	}()

	if delay > 0 {
		select {
		case <-time.After(delay):
		case <-ctx.Done():
			return 0, ctx.Err()
		}
	}
	return g.cid(name)
}

func (g *fakeGateway) CIDByXref(ctx context.Context, cas string) (int, error) {
	return 0, errNoRecord
}

func (g *fakeGateway) CIDBySubstanceXref(ctx context.Context, cas string) (int, error) {
	return 0, errNoRecord
}

func (g *fakeGateway) cid(key string) (int, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if cid, ok := g.cids[key]; ok {
		return cid, nil
	}
	return 0, errNoRecord
}

func (g *fakeGateway) Properties(ctx context.Context, cid int) (chem_extractor.Properties, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if title, ok := g.titles[cid]; ok {
		return chem_extractor.Properties{Title: title}, nil
	}
	return chem_extractor.Properties{}, errNoRecord
}

func (g *fakeGateway) Synonyms(ctx context.Context, cid int) ([]string, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if s, ok := g.synonyms[cid]; ok {
		return s, nil
	}
	return nil, errNoRecord
}

func (g *fakeGateway) Description(ctx context.Context, cid int) (chem_extractor.Description, error) {
	return chem_extractor.Description{}, errNoRecord
}

func (g *fakeGateway) Document(ctx context.Context, cid int) (*chem_extractor.Document, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if doc, ok := g.documents[cid]; ok {
		return doc, nil
	}
	return nil, errNoRecord
}

func (g *fakeGateway) peak() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.maxInFlight
}

// pauseRecorder stands in for the inter-window sleep.
type pauseRecorder struct {
	mu     sync.Mutex
	pauses []time.Duration
}

func (p *pauseRecorder) pause(ctx context.Context, d time.Duration) error {
	p.mu.Lock()
	p.pauses = append(p.pauses, d)
	p.mu.Unlock()
	return ctx.Err()
}

func (p *pauseRecorder) count() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.pauses)
}

func newTestComponents(t *testing.T, gw chem_extractor.Gateway) *Components {
	t.Helper()
	index, err := chem_extractor.NewIndex(chemical.BundledTables())
	require.NoError(t, err)
	return NewComponents(gw, index,
		cache.NewTiered[int]("cid", cache.NewTTLCache[string, int](100, time.Hour)),
		cache.NewTiered[*chem_extractor.Document]("doc", cache.NewTTLCache[string, *chem_extractor.Document](100, time.Hour)),
		nil,
	)
}

func ghsSection(heading string, children []chem_extractor.Section, info ...chem_extractor.Information) chem_extractor.Section {
	return chem_extractor.Section{Heading: heading, Sections: children, Information: info}
}

func pictogramInfo(codes ...string) chem_extractor.Information {
	var markup []chem_extractor.Markup
	for _, c := range codes {
		markup = append(markup, chem_extractor.Markup{Type: "Icon", URL: "https://pubchem.ncbi.nlm.nih.gov/images/ghs/" + c + ".svg"})
	}
	return chem_extractor.Information{
		Name:  "Pictogram(s)",
		Value: chem_extractor.Value{Strings: []chem_extractor.StringWithMarkup{{Markup: markup}}},
	}
}

func textInfo(name string, lines ...string) chem_extractor.Information {
	var s []chem_extractor.StringWithMarkup
	for _, l := range lines {
		s = append(s, chem_extractor.StringWithMarkup{String: l})
	}
	return chem_extractor.Information{Name: name, Value: chem_extractor.Value{Strings: s}}
}

func classificationDocument(title string, entries ...chem_extractor.Information) *chem_extractor.Document {
	return &chem_extractor.Document{Record: chem_extractor.Record{
		RecordTitle: title,
		Sections: []chem_extractor.Section{
			ghsSection("Safety and Hazards", []chem_extractor.Section{
				ghsSection("Hazards Identification", []chem_extractor.Section{
					ghsSection("GHS Classification", nil, entries...),
				}),
			}),
		},
	}}
}
