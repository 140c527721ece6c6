// Package export renders search results as spreadsheet downloads.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/rjsky311/GHS-label-quick-search/pkg/errors"
	"github.com/rjsky311/GHS-label-quick-search/pkg/types/ghs"
)

// Format is an export file type.
type Format string

const (
	FormatXLSX Format = "xlsx"
	FormatCSV  Format = "csv"
)

// SheetName is the worksheet title of XLSX exports.
const SheetName = "GHS查詢結果"

// Placeholders for empty cells.
const (
	noPictograms = "無"
	noSignal     = "-"
	noHazards    = "無危害說明"
)

const utf8BOM = "\ufeff"

var headers = []string{"CAS No.", "英文名稱", "中文名稱", "GHS標示", "警示語", "危害說明"}

var columnWidths = []float64{15, 30, 20, 35, 12, 50}

// ParseFormat maps a user-supplied format name to a Format.
func ParseFormat(s string) (Format, error) {
	switch Format(strings.ToLower(strings.TrimSpace(s))) {
	case FormatXLSX, "excel":
		return FormatXLSX, nil
	case FormatCSV:
		return FormatCSV, nil
	}
	return "", errors.Errorf(errors.ErrCodeExportFormat, "unsupported export format %q", s)
}

// Filename is the attachment name for f.
func (f Format) Filename() string { return "ghs_results." + string(f) }

// ContentType is the MIME type for f.
func (f Format) ContentType() string {
	if f == FormatCSV {
		return "text/csv; charset=utf-8"
	}
	return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
}

// Write renders results to w in format f.
func Write(w io.Writer, f Format, results []ghs.Result) error {
	switch f {
	case FormatXLSX:
		return WriteXLSX(w, results)
	case FormatCSV:
		return WriteCSV(w, results)
	}
	return errors.Errorf(errors.ErrCodeExportFormat, "unsupported export format %q", f)
}

// Row is the six display cells of one result.  Hazard statements are joined
// with sep.
func Row(r ghs.Result, sep string) []string {
	return []string{
		r.CASNumber,
		r.NameEN,
		r.NameZH,
		pictogramCell(r.Pictograms),
		signalCell(r),
		hazardCell(r.HazardStatements, sep),
	}
}

func pictogramCell(pictograms []ghs.Pictogram) string {
	if len(pictograms) == 0 {
		return noPictograms
	}
	parts := make([]string, len(pictograms))
	for i, p := range pictograms {
		parts[i] = fmt.Sprintf("%s (%s)", p.Code, p.NameZh)
	}
	return strings.Join(parts, ", ")
}

func signalCell(r ghs.Result) string {
	switch {
	case r.SignalWordZH != "":
		return r.SignalWordZH
	case r.SignalWord != "":
		return r.SignalWord
	}
	return noSignal
}

func hazardCell(statements []ghs.HazardStatement, sep string) string {
	if len(statements) == 0 {
		return noHazards
	}
	parts := make([]string, len(statements))
	for i, h := range statements {
		text := h.TextZH
		if text == "" {
			text = h.TextEN
		}
		parts[i] = h.Code + ": " + text
	}
	return strings.Join(parts, sep)
}

// WriteCSV writes a UTF-8 CSV with a byte order mark so spreadsheet tools
// detect the encoding of the Chinese columns.
func WriteCSV(w io.Writer, results []ghs.Result) error {
	if _, err := io.WriteString(w, utf8BOM); err != nil {
		return errors.Wrap(err, errors.ErrCodeExportRender, "failed to write csv")
	}
	cw := csv.NewWriter(w)
	if err := cw.Write(headers); err != nil {
		return errors.Wrap(err, errors.ErrCodeExportRender, "failed to write csv header")
	}
	for _, r := range results {
		if err := cw.Write(Row(r, "; ")); err != nil {
			return errors.Wrap(err, errors.ErrCodeExportRender, "failed to write csv row")
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return errors.Wrap(err, errors.ErrCodeExportRender, "failed to flush csv")
	}
	return nil
}

// WriteXLSX writes a single-sheet workbook with a styled header row.
func WriteXLSX(w io.Writer, results []ghs.Result) error {
	f, err := buildWorkbook(results)
	if err != nil {
		return errors.Wrap(err, errors.ErrCodeExportRender, "failed to build workbook")
	}
	defer f.Close()

	if err := f.Write(w); err != nil {
		return errors.Wrap(err, errors.ErrCodeExportRender, "failed to write workbook")
	}
	return nil
}

func buildWorkbook(results []ghs.Result) (*excelize.File, error) {
	f := excelize.NewFile()
	if err := f.SetSheetName(f.GetSheetName(0), SheetName); err != nil {
		f.Close()
		return nil, err
	}

	border := []excelize.Border{
		{Type: "left", Color: "000000", Style: 1},
		{Type: "top", Color: "000000", Style: 1},
		{Type: "right", Color: "000000", Style: 1},
		{Type: "bottom", Color: "000000", Style: 1},
	}
	headerStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Color: "FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#4472C4"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
		Border:    border,
	})
	if err != nil {
		f.Close()
		return nil, err
	}
	cellStyle, err := f.NewStyle(&excelize.Style{
		Alignment: &excelize.Alignment{Vertical: "top"},
		Border:    border,
	})
	if err != nil {
		f.Close()
		return nil, err
	}
	wrapStyle, err := f.NewStyle(&excelize.Style{
		Alignment: &excelize.Alignment{Vertical: "top", WrapText: true},
		Border:    border,
	})
	if err != nil {
		f.Close()
		return nil, err
	}

	if err := f.SetSheetRow(SheetName, "A1", &headers); err != nil {
		f.Close()
		return nil, err
	}
	lastCol, _ := excelize.ColumnNumberToName(len(headers))
	if err := f.SetCellStyle(SheetName, "A1", lastCol+"1", headerStyle); err != nil {
		f.Close()
		return nil, err
	}

	for i, r := range results {
		row := i + 2
		cells := Row(r, "\n")
		start, _ := excelize.CoordinatesToCellName(1, row)
		if err := f.SetSheetRow(SheetName, start, &cells); err != nil {
			f.Close()
			return nil, err
		}
		_ = f.SetCellStyle(SheetName, start, fmt.Sprintf("E%d", row), cellStyle)
		_ = f.SetCellStyle(SheetName, fmt.Sprintf("F%d", row), fmt.Sprintf("F%d", row), wrapStyle)
	}

	for i, width := range columnWidths {
		col, _ := excelize.ColumnNumberToName(i + 1)
		if err := f.SetColWidth(SheetName, col, col, width); err != nil {
			f.Close()
			return nil, err
		}
	}
	return f, nil
}
