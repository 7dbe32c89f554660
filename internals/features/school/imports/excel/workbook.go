// file: internals/features/school/imports/excel/workbook.go
package excel

import (
	"fmt"
	"io"
	"strings"

	"github.com/xuri/excelize/v2"
)

// ParseError is a file-level failure: nothing was imported and no row was
// touched. Problems lists everything wrong with the file at once.
type ParseError struct {
	Problems []string
}

func (e *ParseError) Error() string {
	if len(e.Problems) == 0 {
		return "unreadable spreadsheet"
	}
	return strings.Join(e.Problems, "; ")
}

func NewParseError(problems ...string) *ParseError {
	return &ParseError{Problems: problems}
}

// RawRow is one data row straight off the sheet, 1-based SourceRow for error
// reporting. Cells are untyped strings as excelize hands them over.
type RawRow struct {
	SourceRow int
	Cells     []string
}

func (r RawRow) Cell(idx int) string {
	if idx < 0 || idx >= len(r.Cells) {
		return ""
	}
	return strings.TrimSpace(r.Cells[idx])
}

// Table is the selected sheet reduced to a header row plus data rows. Rows
// whose every cell is blank are dropped during reading, not reported.
type Table struct {
	SheetName string
	Headers   []string
	Rows      []RawRow
}

// ReadWorkbook opens an xlsx stream and extracts the data table from the
// best-matching sheet.
func ReadWorkbook(r io.Reader) (*Table, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, NewParseError(fmt.Sprintf("unable to read workbook: %v", err))
	}
	defer func() { _ = f.Close() }()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, NewParseError("workbook has no sheets")
	}

	sheet := pickDataSheet(sheets)
	rows, err := f.GetRows(sheet, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, NewParseError(fmt.Sprintf("unable to read sheet %q: %v", sheet, err))
	}
	if len(rows) == 0 {
		return nil, NewParseError(fmt.Sprintf("sheet %q is empty", sheet))
	}

	t := &Table{SheetName: sheet, Headers: rows[0]}
	for i, cells := range rows[1:] {
		if isBlankRow(cells) {
			continue
		}
		// SourceRow counts from 1 including the header, matching what the
		// operator sees in their spreadsheet program.
		t.Rows = append(t.Rows, RawRow{SourceRow: i + 2, Cells: cells})
	}
	return t, nil
}

// Sheet names we prefer when a workbook carries several sheets.
var preferredSheetNames = []string{"student data", "results", "data"}

func pickDataSheet(sheets []string) string {
	for _, want := range preferredSheetNames {
		for _, s := range sheets {
			if strings.Contains(normalizeHeader(s), want) {
				return s
			}
		}
	}
	for _, s := range sheets {
		if !strings.EqualFold(strings.TrimSpace(s), "Instructions") {
			return s
		}
	}
	return sheets[0]
}

func isBlankRow(cells []string) bool {
	for _, c := range cells {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}

// normalizeHeader lowercases and collapses internal whitespace so header
// matching ignores spacing and case.
func normalizeHeader(s string) string {
	return strings.Join(strings.Fields(strings.ToLower(s)), " ")
}
