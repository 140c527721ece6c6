package search

import (
	"github.com/rjsky311/GHS-label-quick-search/internal/domain/chemical"
	"github.com/rjsky311/GHS-label-quick-search/internal/domain/hazard"
	"github.com/rjsky311/GHS-label-quick-search/internal/intelligence/chem_extractor"
	"github.com/rjsky311/GHS-label-quick-search/pkg/types/ghs"
)

// newResult returns a result with every list field set to an empty slice so
// that the wire form never carries null arrays.
func newResult(cas string) ghs.Result {
	return ghs.Result{
		CASNumber:            cas,
		Pictograms:           []ghs.Pictogram{},
		HazardStatements:     []ghs.HazardStatement{},
		OtherClassifications: []ghs.Classification{},
	}
}

func failedResult(cas, message string) ghs.Result {
	r := newResult(cas)
	r.Error = message
	return r
}

func toPictogram(p hazard.Pictogram) ghs.Pictogram {
	return ghs.Pictogram{
		Code:   string(p.Code),
		Name:   p.Name,
		NameZh: p.NameZh,
		Icon:   p.Icon,
		Image:  p.Image,
	}
}

func toPictograms(codes []hazard.PictogramCode) []ghs.Pictogram {
	out := make([]ghs.Pictogram, 0, len(codes))
	for _, code := range codes {
		if p, ok := hazard.LookupPictogram(code); ok {
			out = append(out, toPictogram(p))
		}
	}
	return out
}

func toHazardStatements(statements []hazard.HazardStatement) []ghs.HazardStatement {
	out := make([]ghs.HazardStatement, 0, len(statements))
	for _, h := range statements {
		out = append(out, ghs.HazardStatement{Code: h.Code, TextEN: h.TextEN, TextZH: h.TextZH})
	}
	return out
}

func toClassification(r hazard.Report) ghs.Classification {
	return ghs.Classification{
		Pictograms:       toPictograms(r.Pictograms),
		HazardStatements: toHazardStatements(r.HazardStatements),
		SignalWord:       r.Signal.EN,
		SignalWordZH:     r.Signal.ZH,
		Source:           r.Source,
		ReportCount:      r.ReportCount,
	}
}

// present folds the identity, names and aggregated classification into the
// wire result.  The primary report is flattened to the top level.
func present(id chemical.Identity, agg hazard.Aggregated, classified bool) ghs.Result {
	r := newResult(id.CAS)
	r.CID = id.CID
	r.NameEN = id.NameEN
	r.NameZH = id.NameZH
	r.Found = true
	if !classified {
		return r
	}

	r.Pictograms = toPictograms(agg.Primary.Pictograms)
	r.HazardStatements = toHazardStatements(agg.Primary.HazardStatements)
	r.SignalWord = agg.Primary.Signal.EN
	r.SignalWordZH = agg.Primary.Signal.ZH
	for _, s := range agg.Secondary {
		r.OtherClassifications = append(r.OtherClassifications, toClassification(s))
	}
	r.HasMultipleClassifications = agg.HasMultiple
	return r
}

func toNameMatches(in []chem_extractor.NameMatch) []ghs.NameMatch {
	out := make([]ghs.NameMatch, 0, len(in))
	for _, m := range in {
		out = append(out, ghs.NameMatch{CASNumber: m.CAS, NameEN: m.NameEN, NameZH: m.NameZH, Alias: m.Alias})
	}
	return out
}

// PictogramTable returns the pictogram reference table keyed by code.
func PictogramTable() map[string]ghs.Pictogram {
	all := hazard.Pictograms()
	out := make(map[string]ghs.Pictogram, len(all))
	for _, p := range all {
		out[string(p.Code)] = toPictogram(p)
	}
	return out
}
