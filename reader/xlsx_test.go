package reader

import (
	"path/filepath"
	"reflect"
	"testing"

	"github.com/xuri/excelize/v2"
)

// createTestWorkbook writes rows to the first sheet of a new workbook
func createTestWorkbook(t *testing.T, dir string, rows [][]interface{}) string {
	t.Helper()
	path := filepath.Join(dir, "phones.xlsx")

	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	sheet := f.GetSheetName(0)
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			t.Fatalf("failed to build cell name: %v", err)
		}
		row := row
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			t.Fatalf("failed to write row %d: %v", i+1, err)
		}
	}
	if err := f.SaveAs(path); err != nil {
		t.Fatalf("failed to save workbook: %v", err)
	}
	return path
}

func TestLoad_XLSX(t *testing.T) {
	path := createTestWorkbook(t, t.TempDir(), [][]interface{}{
		{"name", "brand", "price", "rating"},
		{"iphone 15 pro", "apple", 999, 4.9},
		{"poco x5 pro", "xiaomi", 299},
	})

	ds, err := Load(path, Options{})
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	assertHeader(t, ds, phoneHeader)
	if ds.Len() != 2 {
		t.Fatalf("Load() returned %d rows, want 2", ds.Len())
	}

	// trailing blank cells are padded
	want := map[string]string{"name": "poco x5 pro", "brand": "xiaomi", "price": "299", "rating": ""}
	if got := ds.Rows[1].Map(); !reflect.DeepEqual(got, want) {
		t.Errorf("row = %v, want %v", got, want)
	}
}

func TestLoad_XLSXEmptySheet(t *testing.T) {
	path := createTestWorkbook(t, t.TempDir(), nil)

	ds, err := Load(path, Options{})
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if ds.Len() != 0 || ds.Columns.Len() != 0 {
		t.Errorf("Load() = %d rows, %d columns; want empty", ds.Len(), ds.Columns.Len())
	}
}
