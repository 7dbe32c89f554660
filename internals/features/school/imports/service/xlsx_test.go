// file: internals/features/school/imports/service/xlsx_test.go
package service

import (
	"bytes"
	"testing"

	"github.com/xuri/excelize/v2"
)

// sheetBytes builds a one-sheet xlsx from rows, header row first.
func sheetBytes(t *testing.T, rows [][]string) *bytes.Reader {
	t.Helper()
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	sheet := f.GetSheetName(0)
	for r, row := range rows {
		cell, _ := excelize.CoordinatesToCellName(1, r+1)
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			t.Fatal(err)
		}
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		t.Fatal(err)
	}
	return bytes.NewReader(buf.Bytes())
}

// checkConservation asserts the report bucket invariant.
func checkConservation(t *testing.T, total, success, failed, skipped, duplicate int) {
	t.Helper()
	if success+failed+skipped+duplicate != total {
		t.Errorf("buckets do not add up: %d+%d+%d+%d != %d",
			success, failed, skipped, duplicate, total)
	}
}
