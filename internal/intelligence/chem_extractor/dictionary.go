package chem_extractor

import (
	"sort"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/unicode/norm"

	"github.com/rjsky311/GHS-label-quick-search/internal/domain/chemical"
)

// ---------------------------------------------------------------------------
// Types
// ---------------------------------------------------------------------------

// indexEntry is one reverse-mapping target.
type indexEntry struct {
	CAS   string
	Alias bool
}

// Index is the immutable lookup structure built over the bundled tables.
// Build it once with NewIndex and share it; it is safe for concurrent reads.
type Index struct {
	entries []chemical.Entry // table order, used for tie-breaking

	byCAS   map[string]chemical.Entry
	english map[string]indexEntry // folded English name or alias → CAS
	chinese map[string]indexEntry // folded Chinese name or alias → CAS

	translations map[string]string // folded English name → Chinese
	cleaned      map[string]string // alphanumeric-only key → Chinese
}

// ---------------------------------------------------------------------------
// Construction
// ---------------------------------------------------------------------------

// NewIndex validates tables and builds every reverse mapping.  Formal names
// are inserted before aliases, and both go through mergeIfAbsent, so an
// alias can never shadow a formal name.
func NewIndex(tables chemical.Tables) (*Index, error) {
	if err := tables.Validate(); err != nil {
		return nil, err
	}

	x := &Index{
		entries:      tables.Entries,
		byCAS:        make(map[string]chemical.Entry, len(tables.Entries)),
		english:      make(map[string]indexEntry, len(tables.Entries)+len(tables.EnglishAliases)),
		chinese:      make(map[string]indexEntry, len(tables.Entries)+len(tables.ChineseAliases)),
		translations: make(map[string]string, len(tables.Entries)+len(tables.Translations)),
	}

	for _, e := range tables.Entries {
		x.byCAS[e.CAS] = e
		if k := foldKey(e.NameEN); k != "" {
			mergeIfAbsent(x.english, k, indexEntry{CAS: e.CAS})
			if e.NameZH != "" {
				mergeIfAbsent(x.translations, k, e.NameZH)
			}
		}
		if k := foldKey(e.NameZH); k != "" {
			mergeIfAbsent(x.chinese, k, indexEntry{CAS: e.CAS})
		}
	}
	for _, a := range tables.EnglishAliases {
		mergeIfAbsent(x.english, foldKey(a.Name), indexEntry{CAS: a.CAS, Alias: true})
	}
	for _, a := range tables.ChineseAliases {
		mergeIfAbsent(x.chinese, foldKey(a.Name), indexEntry{CAS: a.CAS, Alias: true})
	}

	for _, name := range sortedKeys(tables.Translations) {
		mergeIfAbsent(x.translations, foldKey(name), tables.Translations[name])
	}

	x.cleaned = make(map[string]string, len(x.translations))
	for _, name := range sortedKeys(x.translations) {
		if ck := cleanKey(name); ck != "" {
			mergeIfAbsent(x.cleaned, ck, x.translations[name])
		}
	}
	return x, nil
}

// MustBundledIndex builds the index over the compiled-in dictionary.  A
// failure means the binary itself is broken, so it panics.
func MustBundledIndex() *Index {
	x, err := NewIndex(chemical.BundledTables())
	if err != nil {
		panic(err)
	}
	return x
}

// mergeIfAbsent inserts v under key only when key is not already mapped.  It
// reports whether the insert happened.
func mergeIfAbsent[V any](dst map[string]V, key string, v V) bool {
	if _, exists := dst[key]; exists {
		return false
	}
	dst[key] = v
	return true
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// foldKey is the reverse-mapping key: NFKC-normalized, trimmed and
// case-folded.
func foldKey(s string) string {
	s = strings.TrimSpace(norm.NFKC.String(s))
	if s == "" {
		return ""
	}
	return cases.Fold().String(s)
}

// cleanKey keeps only ASCII letters and digits of an already folded key.
func cleanKey(folded string) string {
	var b strings.Builder
	b.Grow(len(folded))
	for _, r := range folded {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// ---------------------------------------------------------------------------
// Lookups
// ---------------------------------------------------------------------------

// Entry returns the formal dictionary row for cas.
func (x *Index) Entry(cas string) (chemical.Entry, bool) {
	e, ok := x.byCAS[cas]
	return e, ok
}

// EnglishName returns the dictionary's English name for cas.
func (x *Index) EnglishName(cas string) (string, bool) {
	e, ok := x.byCAS[cas]
	if !ok || e.NameEN == "" {
		return "", false
	}
	return e.NameEN, true
}

// ChineseName returns the dictionary's Chinese name for cas.
func (x *Index) ChineseName(cas string) (string, bool) {
	e, ok := x.byCAS[cas]
	if !ok || e.NameZH == "" {
		return "", false
	}
	return e.NameZH, true
}

// Translate finds a Chinese name for an English name or synonym: first by
// exact folded key, then through the alphanumeric-only index.
func (x *Index) Translate(name string) (string, bool) {
	k := foldKey(name)
	if k == "" {
		return "", false
	}
	if zh, ok := x.translations[k]; ok {
		return zh, true
	}
	if ck := cleanKey(k); ck != "" {
		if zh, ok := x.cleaned[ck]; ok {
			return zh, true
		}
	}
	return "", false
}

// Len reports the number of formal entries.
func (x *Index) Len() int { return len(x.entries) }
