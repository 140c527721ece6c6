package chem_extractor

import (
	"regexp"
	"strings"

	"github.com/rjsky311/GHS-label-quick-search/internal/domain/hazard"
)

// Entry names inside the GHS classification section.
const (
	entryPictograms   = "Pictogram(s)"
	entrySignal       = "Signal"
	entryHazards      = "GHS Hazard Statements"
	entryNotification = "ECHA C&L Notifications Summary"
)

var reportCountPattern = regexp.MustCompile(`(\d+)\s*report`)

// entryHandlers attach a non-pictogram entry to the open report.  Entries
// without a handler are skipped.
var entryHandlers = map[string]func(*hazard.Report, Information){
	entrySignal:       attachSignal,
	entryHazards:      attachHazardStatements,
	entryNotification: attachNotification,
}

// ExtractClassifications walks the GHS classification section of doc and
// returns its reports in document order.  Each "Pictogram(s)" entry opens a
// new report; the entries after it attach to that report until the next one.
// Reports that end up without a recognised pictogram are dropped.  A document
// without the section yields nil.
func ExtractClassifications(doc *Document) []hazard.Report {
	section := doc.Find(ghsClassificationPath)
	if section == nil {
		return nil
	}

	var (
		reports []hazard.Report
		open    *hazard.Report
	)
	closeOpen := func() {
		if open != nil && open.Valid() {
			reports = append(reports, *open)
		}
		open = nil
	}

	section.Visit(func(info Information) {
		if info.Name == entryPictograms {
			closeOpen()
			open = &hazard.Report{}
			for _, url := range info.Icons() {
				if code, ok := hazard.PictogramCodeFromReference(url); ok {
					open.AddPictogram(code)
				}
			}
			return
		}
		if open == nil {
			return
		}
		if attach, ok := entryHandlers[info.Name]; ok {
			attach(open, info)
		}
	})
	closeOpen()
	return reports
}

func attachSignal(r *hazard.Report, info Information) {
	if s, ok := info.FirstString(); ok {
		r.Signal = hazard.NewSignalWord(s)
	}
}

func attachHazardStatements(r *hazard.Report, info Information) {
	for _, s := range info.Value.Strings {
		if stmt, ok := hazard.ParseHazardStatement(s.String); ok {
			r.AddHazardStatement(stmt)
		}
	}
}

func attachNotification(r *hazard.Report, info Information) {
	text, ok := info.FirstString()
	if !ok {
		return
	}
	r.Source = text
	if m := reportCountPattern.FindStringSubmatch(strings.ToLower(text)); m != nil {
		r.ReportCount = m[1]
	}
}

// ExtractIUPACName reads the computed IUPAC descriptor from doc, or "".
func ExtractIUPACName(doc *Document) string {
	section := doc.Find(iupacNamePath)
	if section == nil || len(section.Information) == 0 {
		return ""
	}
	s, _ := section.Information[0].FirstString()
	return s
}

// Classify extracts and aggregates the classification of doc.  It returns
// false when doc carries no usable report.
func Classify(doc *Document) (hazard.Aggregated, bool) {
	return hazard.Aggregate(ExtractClassifications(doc))
}
