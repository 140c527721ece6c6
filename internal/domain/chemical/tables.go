package chemical

import (
	"fmt"
	"strings"

	"github.com/rjsky311/GHS-label-quick-search/pkg/errors"
)

// Entry is one formal dictionary row.  Table order is significant: it breaks
// ties in name resolution.
type Entry struct {
	CAS    string
	NameEN string
	NameZH string
}

// Alias maps an informal name to a formal CAS number.
type Alias struct {
	Name string
	CAS  string
}

// Tables is the raw bundled dictionary before indexing.
type Tables struct {
	Entries        []Entry
	EnglishAliases []Alias
	ChineseAliases []Alias
	// Translations maps case-folded English names and synonyms to Chinese.
	Translations map[string]string
}

// BundledTables returns the dictionary compiled into the binary.
func BundledTables() Tables {
	return Tables{
		Entries:        bundledEntries,
		EnglishAliases: bundledEnglishAliases,
		ChineseAliases: bundledChineseAliases,
		Translations:   bundledTranslations,
	}
}

// Validate rejects tables whose CAS numbers are malformed, repeated, or
// referenced by an alias without a formal entry.
func (t Tables) Validate() error {
	known := make(map[string]struct{}, len(t.Entries))
	for i, e := range t.Entries {
		if !CASPattern.MatchString(e.CAS) {
			return corrupt(fmt.Sprintf("entry %d has malformed CAS %q", i, e.CAS))
		}
		if _, dup := known[e.CAS]; dup {
			return corrupt(fmt.Sprintf("entry %d repeats CAS %s", i, e.CAS))
		}
		if strings.TrimSpace(e.NameEN) == "" && strings.TrimSpace(e.NameZH) == "" {
			return corrupt(fmt.Sprintf("entry %s has no name", e.CAS))
		}
		known[e.CAS] = struct{}{}
	}
	for _, group := range [][]Alias{t.EnglishAliases, t.ChineseAliases} {
		for _, a := range group {
			if strings.TrimSpace(a.Name) == "" {
				return corrupt(fmt.Sprintf("alias for %s has an empty name", a.CAS))
			}
			if _, ok := known[a.CAS]; !ok {
				return corrupt(fmt.Sprintf("alias %q points at unknown CAS %s", a.Name, a.CAS))
			}
		}
	}
	return nil
}

func corrupt(detail string) error {
	return errors.New(errors.ErrCodeDictionaryCorrupt, "bundled dictionary is inconsistent").WithDetail(detail)
}
