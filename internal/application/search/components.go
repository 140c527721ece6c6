package search

import (
	"github.com/rjsky311/GHS-label-quick-search/internal/infrastructure/monitoring/logging"
	"github.com/rjsky311/GHS-label-quick-search/internal/intelligence/chem_extractor"
)

// Components are the core collaborators the service orchestrates.
type Components struct {
	Index     *chem_extractor.Index
	Identity  *chem_extractor.IdentityResolver
	Documents *chem_extractor.DocumentSource
	Namer     *chem_extractor.Namer
}

// NewComponents wires the core over one gateway and the two caches.
func NewComponents(
	gw chem_extractor.Gateway,
	index *chem_extractor.Index,
	ids chem_extractor.IDCache,
	docs chem_extractor.DocumentCache,
	logger logging.Logger,
	namerOpts ...chem_extractor.NamerOption,
) *Components {
	return &Components{
		Index:     index,
		Identity:  chem_extractor.NewIdentityResolver(gw, ids, logger),
		Documents: chem_extractor.NewDocumentSource(gw, docs, logger),
		Namer:     chem_extractor.NewNamer(gw, index, logger, namerOpts...),
	}
}
