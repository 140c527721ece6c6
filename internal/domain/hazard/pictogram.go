// Package hazard holds the static GHS reference tables (pictograms, hazard
// statements, signal words) and the classification report model built from
// upstream data.
package hazard

import (
	"regexp"
	"strings"
)

// PictogramCode is a GHS pictogram identifier such as "GHS02".
type PictogramCode string

// PictogramImageBase is the URL prefix of the pictogram SVG images.
const PictogramImageBase = "https://pubchem.ncbi.nlm.nih.gov/images/ghs/"

// Pictogram describes one GHS hazard pictogram.
type Pictogram struct {
	Code   PictogramCode
	Name   string
	NameZh string
	Icon   string
	Image  string
}

var pictogramCodePattern = regexp.MustCompile(`GHS\d{2}`)

var pictogramTable = []Pictogram{
	newPictogram("GHS01", "Explosive", "爆炸物", "💥"),
	newPictogram("GHS02", "Flammable", "易燃物", "🔥"),
	newPictogram("GHS03", "Oxidizer", "氧化劑", "⭕"),
	newPictogram("GHS04", "Compressed Gas", "壓縮氣體", "🫧"),
	newPictogram("GHS05", "Corrosive", "腐蝕性", "🧪"),
	newPictogram("GHS06", "Toxic", "劇毒", "💀"),
	newPictogram("GHS07", "Irritant", "刺激性/有害", "⚠️"),
	newPictogram("GHS08", "Health Hazard", "健康危害", "🫁"),
	newPictogram("GHS09", "Environmental Hazard", "環境危害", "🐟"),
}

var pictogramsByCode = func() map[PictogramCode]Pictogram {
	m := make(map[PictogramCode]Pictogram, len(pictogramTable))
	for _, p := range pictogramTable {
		m[p.Code] = p
	}
	return m
}()

func newPictogram(code, name, nameZh, icon string) Pictogram {
	return Pictogram{
		Code:   PictogramCode(code),
		Name:   name,
		NameZh: nameZh,
		Icon:   icon,
		Image:  PictogramImageBase + code + ".svg",
	}
}

// LookupPictogram returns the table entry for code.
func LookupPictogram(code PictogramCode) (Pictogram, bool) {
	p, ok := pictogramsByCode[PictogramCode(strings.ToUpper(string(code)))]
	return p, ok
}

// Pictograms returns the full table in code order.  The slice is a copy.
func Pictograms() []Pictogram {
	out := make([]Pictogram, len(pictogramTable))
	copy(out, pictogramTable)
	return out
}

// PictogramCodeFromReference extracts a known pictogram code from an icon
// URL or label ("https://.../GHS02.svg" → GHS02).
func PictogramCodeFromReference(ref string) (PictogramCode, bool) {
	m := pictogramCodePattern.FindString(ref)
	if m == "" {
		return "", false
	}
	code := PictogramCode(m)
	if _, ok := pictogramsByCode[code]; !ok {
		return "", false
	}
	return code, true
}
