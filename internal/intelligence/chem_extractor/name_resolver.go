package chem_extractor

import (
	"regexp"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/rjsky311/GHS-label-quick-search/internal/domain/chemical"
)

const (
	// MinNameQueryLength is the shortest trimmed query, in runes, that name
	// resolution and name search accept.
	MinNameQueryLength = 2

	// DefaultNameSearchLimit caps SearchNames when the caller passes no limit.
	DefaultNameSearchLimit = 20
)

// Resolution is the outcome of reverse name resolution.
type Resolution struct {
	CAS  string
	Kind chemical.MatchKind
}

// NameMatch is one hit of SearchNames.
type NameMatch struct {
	CAS    string `json:"cas_number"`
	NameEN string `json:"name_en"`
	NameZH string `json:"name_zh"`
	Alias  bool   `json:"alias"`
}

// ResolveName maps free text to a CAS number.  The first rule that matches
// wins: exact English name or alias, exact Chinese name or alias, then a
// word-boundary match inside a longer English name ("Methanol" finds
// "Methyl alcohol (Methanol)").  Among word-boundary hits the shortest name
// wins and table order breaks ties.
func (x *Index) ResolveName(query string) (Resolution, bool) {
	q := foldKey(query)
	if utf8.RuneCountInString(q) < MinNameQueryLength {
		return Resolution{}, false
	}

	if e, ok := x.english[q]; ok {
		return resolutionFor(e), true
	}
	if e, ok := x.chinese[q]; ok {
		return resolutionFor(e), true
	}

	pattern, err := regexp.Compile(`(^|[^\p{L}\p{N}])` + regexp.QuoteMeta(q) + `($|[^\p{L}\p{N}])`)
	if err != nil {
		return Resolution{}, false
	}
	best, bestLen := "", 0
	for _, e := range x.entries {
		name := foldKey(e.NameEN)
		if len(name) <= len(q) || !pattern.MatchString(name) {
			continue
		}
		if best == "" || len(name) < bestLen {
			best, bestLen = e.CAS, len(name)
		}
	}
	if best == "" {
		return Resolution{}, false
	}
	return Resolution{CAS: best, Kind: chemical.MatchName}, true
}

func resolutionFor(e indexEntry) Resolution {
	kind := chemical.MatchName
	if e.Alias {
		kind = chemical.MatchAlias
	}
	return Resolution{CAS: e.CAS, Kind: kind}
}

// SearchNames lists dictionary entries whose English or Chinese key contains
// query.  Exact key matches come first, the rest follow in lexicographic key
// order, and each CAS number appears once.  Queries shorter than
// MinNameQueryLength yield an empty, non-nil slice.
func (x *Index) SearchNames(query string, limit int) []NameMatch {
	if limit <= 0 {
		limit = DefaultNameSearchLimit
	}
	q := foldKey(query)
	if utf8.RuneCountInString(q) < MinNameQueryLength {
		return []NameMatch{}
	}

	type hit struct {
		key   string
		exact bool
		entry indexEntry
	}
	var hits []hit
	for _, m := range []map[string]indexEntry{x.english, x.chinese} {
		for key, e := range m {
			if strings.Contains(key, q) {
				hits = append(hits, hit{key: key, exact: key == q, entry: e})
			}
		}
	}
	sort.Slice(hits, func(i, j int) bool {
		if hits[i].exact != hits[j].exact {
			return hits[i].exact
		}
		if hits[i].key != hits[j].key {
			return hits[i].key < hits[j].key
		}
		return hits[i].entry.CAS < hits[j].entry.CAS
	})

	out := make([]NameMatch, 0, min(limit, len(hits)))
	seen := make(map[string]struct{}, len(hits))
	for _, h := range hits {
		if len(out) == limit {
			break
		}
		if _, dup := seen[h.entry.CAS]; dup {
			continue
		}
		seen[h.entry.CAS] = struct{}{}
		entry := x.byCAS[h.entry.CAS]
		out = append(out, NameMatch{
			CAS:    entry.CAS,
			NameEN: entry.NameEN,
			NameZH: entry.NameZH,
			Alias:  h.entry.Alias,
		})
	}
	return out
}
