package chem_extractor

import (
	"context"
	"unicode"

	"github.com/rjsky311/GHS-label-quick-search/internal/domain/chemical"
	"github.com/rjsky311/GHS-label-quick-search/internal/infrastructure/monitoring/logging"
	pkgerrors "github.com/rjsky311/GHS-label-quick-search/pkg/errors"
)

// DefaultSynonymScanLimit is how many upstream synonyms are tried against
// the translation dictionary when no Chinese name is known.
const DefaultSynonymScanLimit = 15

// Names is the resolved display pair for a compound.
type Names struct {
	English string
	Chinese string
}

// NameDraft is the partial result of the upstream naming steps.  It is
// completed by Namer.Finish once the classification document is available.
type NameDraft struct {
	Names
	Synonyms []string
}

// Namer resolves bilingual display names.  The local dictionary is
// authoritative; upstream fields only fill what it leaves empty.
type Namer struct {
	gateway          Gateway
	index            *Index
	synonymScanLimit int
	logger           logging.Logger
}

// NamerOption configures a Namer.
type NamerOption func(*Namer)

// WithSynonymScanLimit overrides DefaultSynonymScanLimit.
func WithSynonymScanLimit(n int) NamerOption {
	return func(nm *Namer) {
		if n > 0 {
			nm.synonymScanLimit = n
		}
	}
}

// NewNamer creates a Namer.
func NewNamer(gw Gateway, index *Index, logger logging.Logger, opts ...NamerOption) *Namer {
	if logger == nil {
		logger = logging.NewNopLogger()
	}
	n := &Namer{
		gateway:          gw,
		index:            index,
		synonymScanLimit: DefaultSynonymScanLimit,
		logger:           logger.Named("naming"),
	}
	for _, opt := range opts {
		opt(n)
	}
	return n
}

// Local returns the dictionary names for cas.
func (n *Namer) Local(cas string) Names {
	var out Names
	out.English, _ = n.index.EnglishName(cas)
	out.Chinese, _ = n.index.ChineseName(cas)
	return out
}

// Lookup runs the dictionary step and the upstream property, synonym and
// description steps, each only while a name is still missing.
func (n *Namer) Lookup(ctx context.Context, cas string, cid int) NameDraft {
	d := NameDraft{Names: n.Local(cas)}

	if d.English == "" {
		props, err := n.gateway.Properties(ctx, cid)
		n.debugFailure("properties", cid, err)
		if err == nil {
			d.English = firstNonEmpty(props.Title, props.IUPACName)
		}
	}

	if d.English == "" || d.Chinese == "" {
		synonyms, err := n.gateway.Synonyms(ctx, cid)
		n.debugFailure("synonyms", cid, err)
		if err == nil {
			d.Synonyms = synonyms
			if d.English == "" && len(synonyms) > 0 {
				d.English = synonyms[0]
			}
			if d.Chinese == "" {
				d.Chinese = firstCJK(synonyms)
			}
		}
	}

	if d.English == "" {
		desc, err := n.gateway.Description(ctx, cid)
		n.debugFailure("description", cid, err)
		if err == nil {
			d.English = desc.Title
		}
	}
	return d
}

// Finish applies the document-based English fallbacks, translates a
// missing Chinese name through the dictionary, and synthesizes an English
// label from cid if everything else failed.
func (n *Namer) Finish(d NameDraft, doc *Document, cid int) Names {
	out := d.Names
	if out.English == "" {
		out.English = doc.Title()
	}
	if out.English == "" {
		out.English = ExtractIUPACName(doc)
	}

	if out.Chinese == "" && out.English != "" {
		out.Chinese = n.translate(out.English, d.Synonyms)
	}

	if out.English == "" {
		out.English = chemical.FallbackName(cid)
		n.logger.Warn("no name found, using compound id", logging.CID(cid))
	}
	return out
}

func (n *Namer) translate(english string, synonyms []string) string {
	if zh, ok := n.index.Translate(english); ok {
		return zh
	}
	if len(synonyms) > n.synonymScanLimit {
		synonyms = synonyms[:n.synonymScanLimit]
	}
	for _, s := range synonyms {
		if zh, ok := n.index.Translate(s); ok {
			return zh
		}
	}
	return ""
}

func (n *Namer) debugFailure(step string, cid int, err error) {
	if err == nil || pkgerrors.IsNotFound(err) {
		return
	}
	n.logger.Debug("naming step failed", logging.String("step", step), logging.CID(cid), logging.Err(err))
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

func firstCJK(values []string) string {
	for _, v := range values {
		for _, r := range v {
			if unicode.Is(unicode.Han, r) {
				return v
			}
		}
	}
	return ""
}
