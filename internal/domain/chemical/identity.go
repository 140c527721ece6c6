// Package chemical models a chemical substance's identity and carries the
// bundled bilingual dictionary used to name and find substances offline.
package chemical

import (
	"fmt"
	"regexp"
)

// CASPattern is the canonical CAS registry number shape.
var CASPattern = regexp.MustCompile(`^\d{2,7}-\d{2}-\d$`)

// Identity is everything known about which substance a query refers to.
// CID is zero when the upstream database has no record.
type Identity struct {
	CAS    string
	CID    int
	NameEN string
	NameZH string
}

// HasCID reports whether an upstream compound id was resolved.
func (i Identity) HasCID() bool { return i.CID > 0 }

// FallbackName is the label used when no English name can be resolved.
func FallbackName(cid int) string { return fmt.Sprintf("CID-%d", cid) }

// MatchKind records how a free-text query reached its CAS number.
type MatchKind string

const (
	MatchCAS   MatchKind = "cas"
	MatchName  MatchKind = "name"
	MatchAlias MatchKind = "alias"
)
