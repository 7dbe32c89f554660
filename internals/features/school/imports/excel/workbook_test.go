// file: internals/features/school/imports/excel/workbook_test.go
package excel

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/xuri/excelize/v2"
)

// buildWorkbook writes an in-memory xlsx with the given sheets; each sheet
// is rows of cells starting at A1.
func buildWorkbook(t *testing.T, sheets map[string][][]string, order []string) *bytes.Reader {
	t.Helper()
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	for i, name := range order {
		if i == 0 {
			if err := f.SetSheetName(f.GetSheetName(0), name); err != nil {
				t.Fatal(err)
			}
		} else {
			if _, err := f.NewSheet(name); err != nil {
				t.Fatal(err)
			}
		}
		for r, row := range sheets[name] {
			cell, _ := excelize.CoordinatesToCellName(1, r+1)
			if err := f.SetSheetRow(name, cell, &row); err != nil {
				t.Fatal(err)
			}
		}
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		t.Fatal(err)
	}
	return bytes.NewReader(buf.Bytes())
}

func TestReadWorkbookPicksDataSheet(t *testing.T) {
	r := buildWorkbook(t, map[string][][]string{
		"Instructions": {{"Fill in the columns below"}},
		"Student Data": {
			{"Student ID", "Full Name"},
			{"STU001", "Ama Serwaa"},
			{"STU002", "Kofi Mensah"},
		},
	}, []string{"Instructions", "Student Data"})

	table, err := ReadWorkbook(r)
	if err != nil {
		t.Fatal(err)
	}
	if table.SheetName != "Student Data" {
		t.Errorf("picked sheet %q, want Student Data", table.SheetName)
	}
	if len(table.Rows) != 2 {
		t.Errorf("got %d rows, want 2", len(table.Rows))
	}
}

func TestReadWorkbookSkipsInstructionsEvenWithoutPreferredName(t *testing.T) {
	r := buildWorkbook(t, map[string][][]string{
		"Instructions": {{"How to fill"}},
		"Sheet2": {
			{"Student ID", "Full Name"},
			{"STU001", "Ama Serwaa"},
		},
	}, []string{"Instructions", "Sheet2"})

	table, err := ReadWorkbook(r)
	if err != nil {
		t.Fatal(err)
	}
	if table.SheetName != "Sheet2" {
		t.Errorf("picked sheet %q, want Sheet2", table.SheetName)
	}
}

func TestReadWorkbookDropsBlankRowsKeepsSourceRow(t *testing.T) {
	r := buildWorkbook(t, map[string][][]string{
		"Data": {
			{"Student ID", "Full Name"},
			{"STU001", "Ama Serwaa"},
			{"", ""},
			{"STU003", "Yaw Boateng"},
		},
	}, []string{"Data"})

	table, err := ReadWorkbook(r)
	if err != nil {
		t.Fatal(err)
	}
	if len(table.Rows) != 2 {
		t.Fatalf("got %d rows, want 2", len(table.Rows))
	}
	// row numbering matches the spreadsheet the operator is looking at
	if table.Rows[0].SourceRow != 2 || table.Rows[1].SourceRow != 4 {
		t.Errorf("source rows = %d, %d; want 2, 4", table.Rows[0].SourceRow, table.Rows[1].SourceRow)
	}
	if got := table.Rows[1].Cell(1); got != "Yaw Boateng" {
		t.Errorf("Cell(1) = %q", got)
	}
}

func TestReadWorkbookRejectsGarbage(t *testing.T) {
	_, err := ReadWorkbook(strings.NewReader("this is not a spreadsheet"))
	if err == nil {
		t.Fatal("expected error")
	}
	var pe *ParseError
	if !errors.As(err, &pe) {
		t.Fatalf("want *ParseError, got %T", err)
	}
}

func TestRawRowCellOutOfRange(t *testing.T) {
	row := RawRow{SourceRow: 2, Cells: []string{"a"}}
	if got := row.Cell(5); got != "" {
		t.Errorf("out-of-range cell = %q, want empty", got)
	}
	if got := row.Cell(-1); got != "" {
		t.Errorf("negative cell = %q, want empty", got)
	}
}
