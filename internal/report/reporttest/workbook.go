// Package reporttest builds failed query log workbooks for tests.
package reporttest

import (
	"fmt"
	"testing"

	"github.com/xuri/excelize/v2"
)

// Workbook writes header and rows to the first sheet of a new xlsx file and
// returns its bytes. time.Time cells are stored as Excel dates.
func Workbook(t testing.TB, header []string, rows ...[]any) []byte {
	t.Helper()

	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	sheet := f.GetSheetName(0)

	hdr := make([]any, len(header))
	for i, h := range header {
		hdr[i] = h
	}
	if err := f.SetSheetRow(sheet, "A1", &hdr); err != nil {
		t.Fatalf("write header: %v", err)
	}

	for i, row := range rows {
		cellRef := fmt.Sprintf("A%d", i+2)
		r := row
		if err := f.SetSheetRow(sheet, cellRef, &r); err != nil {
			t.Fatalf("write row %d: %v", i+2, err)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		t.Fatalf("write workbook: %v", err)
	}

	return buf.Bytes()
}
