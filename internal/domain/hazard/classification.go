package hazard

import (
	"sort"
	"strings"
)

// Report is one hazard-classification submission for a compound.  A report
// without pictograms is incomplete and never leaves the extractor.
type Report struct {
	Pictograms       []PictogramCode
	HazardStatements []HazardStatement
	Signal           SignalWord
	Source           string
	ReportCount      string
}

// AddPictogram appends code unless it is already present.
func (r *Report) AddPictogram(code PictogramCode) {
	for _, c := range r.Pictograms {
		if c == code {
			return
		}
	}
	r.Pictograms = append(r.Pictograms, code)
}

// AddHazardStatement appends s unless its code is already present.
func (r *Report) AddHazardStatement(s HazardStatement) {
	for _, h := range r.HazardStatements {
		if h.Code == s.Code {
			return
		}
	}
	r.HazardStatements = append(r.HazardStatements, s)
}

// Valid reports whether r carries at least one pictogram.
func (r *Report) Valid() bool { return len(r.Pictograms) > 0 }

// pictogramSetKey is an order-independent key of r's pictogram codes.
func (r *Report) pictogramSetKey() string {
	codes := make([]string, len(r.Pictograms))
	for i, c := range r.Pictograms {
		codes[i] = string(c)
	}
	sort.Strings(codes)
	return strings.Join(codes, ",")
}

// Aggregated is the primary classification plus the distinct alternatives.
type Aggregated struct {
	Primary     Report
	Secondary   []Report
	HasMultiple bool
}

// Aggregate picks the first report as primary and keeps each later report
// only if its pictogram set differs from the primary's and from every report
// already kept.  It returns false for an empty list.
func Aggregate(reports []Report) (Aggregated, bool) {
	if len(reports) == 0 {
		return Aggregated{}, false
	}

	primary := reports[0]
	seen := map[string]struct{}{primary.pictogramSetKey(): {}}

	var secondary []Report
	for _, r := range reports[1:] {
		key := r.pictogramSetKey()
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		secondary = append(secondary, r)
	}

	return Aggregated{
		Primary:     primary,
		Secondary:   secondary,
		HasMultiple: len(secondary) > 0,
	}, true
}
