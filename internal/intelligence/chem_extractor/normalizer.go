// Package chem_extractor resolves free-text chemical identifiers into a
// canonical identity and a bilingual GHS hazard classification.  It owns the
// CAS normalizer, the bundled dictionary index, the identity resolver that
// talks to the upstream compound database, the classification extractor and
// the bilingual naming chain.  Network access goes through the Gateway
// interface; nothing in this package performs I/O directly.
package chem_extractor

import (
	"regexp"
	"strings"

	"golang.org/x/text/width"

	"github.com/rjsky311/GHS-label-quick-search/internal/domain/chemical"
	"github.com/rjsky311/GHS-label-quick-search/pkg/errors"
)

var (
	casLabelPattern = regexp.MustCompile(`(?i)^CAS[:\s-]*`)
	nonCASChars     = regexp.MustCompile(`[^\d-]`)

	// Dash look-alikes that users paste from documents and spreadsheets.
	dashFolder = strings.NewReplacer(
		"‐", "-", "‑", "-", "‒", "-", "–", "-",
		"—", "-", "−", "-", "﹣", "-",
	)
)

// NormalizeCAS canonicalizes CAS-like text.  Full-width digits and dash
// variants are folded first, a leading "CAS" label is dropped and everything
// except digits and hyphens is removed.  Three-group input has leading zeros
// stripped from the outer groups and a one-digit middle group padded; a bare
// run of five or more digits is split as first-middle-check.  Any other shape
// is returned as-is for ValidateCAS to reject.
func NormalizeCAS(raw string) string {
	s := dashFolder.Replace(width.Fold.String(raw))
	s = strings.TrimSpace(s)
	s = casLabelPattern.ReplaceAllString(s, "")
	s = nonCASChars.ReplaceAllString(s, "")
	if s == "" {
		return ""
	}

	parts := strings.Split(s, "-")
	switch {
	case len(parts) == 3:
		parts[0] = trimLeadingZeros(parts[0])
		parts[2] = trimLeadingZeros(parts[2])
		if len(parts[1]) == 1 {
			parts[1] = "0" + parts[1]
		}
		return strings.Join(parts, "-")
	case len(parts) == 1 && len(s) >= 5:
		check := s[len(s)-1:]
		middle := s[len(s)-3 : len(s)-1]
		first := trimLeadingZeros(s[:len(s)-3])
		return first + "-" + middle + "-" + check
	}
	return s
}

func trimLeadingZeros(s string) string {
	t := strings.TrimLeft(s, "0")
	if t == "" && s != "" {
		return "0"
	}
	return t
}

// ValidateCAS normalizes raw and checks it against the canonical pattern.
// The returned error carries the user-facing message; the normalized text is
// returned in both cases so callers can report it.
func ValidateCAS(raw string) (string, error) {
	normalized := NormalizeCAS(raw)
	if normalized == "" {
		return "", errors.New(errors.ErrCodeCASEmpty, "無效的 CAS 號碼格式（正確格式如：64-17-5）")
	}
	if !chemical.CASPattern.MatchString(normalized) {
		return normalized, errors.Errorf(errors.ErrCodeCASMalformed,
			"CAS 號碼格式不正確：%s（正確格式如：64-17-5）", normalized)
	}
	return normalized, nil
}

// IsCAS reports whether raw normalizes to a well-formed CAS number.
func IsCAS(raw string) bool {
	_, err := ValidateCAS(raw)
	return err == nil
}

// LooksLikeCAS reports whether raw is shaped like a registry number (an
// optional "CAS" label followed by digits, dashes and spaces) whether or not
// it is well formed.  Auto-detecting search uses it to tell a mistyped CAS
// number from a chemical name.
func LooksLikeCAS(raw string) bool {
	s := dashFolder.Replace(width.Fold.String(raw))
	s = casLabelPattern.ReplaceAllString(strings.TrimSpace(s), "")
	digits := 0
	for _, r := range s {
		switch {
		case r >= '0' && r <= '9':
			digits++
		case r == '-' || r == ' ' || r == '.' || r == '\t':
		default:
			return false
		}
	}
	return digits > 0
}

// stripFirstGroupZeros returns the identifier with leading zeros removed from
// its first group only; it is the variant tried when every lookup misses.
// NormalizeCAS output never has such zeros, so the variant only differs for
// callers that pass an unnormalized identifier.
func stripFirstGroupZeros(cas string) string {
	first, rest, ok := strings.Cut(cas, "-")
	if !ok {
		return cas
	}
	return strings.TrimLeft(first, "0") + "-" + rest
}
