package query

import (
	"testing"

	"github.com/vegasq/csvcat/dataset"
)

// phoneHeader and phoneRecords are the sample catalogue used across tests
var phoneHeader = []string{"name", "brand", "price", "rating"}

var phoneRecords = [][]string{
	{"iphone 15 pro", "apple", "999", "4.9"},
	{"galaxy s23 ultra", "samsung", "1199", "4.8"},
	{"redmi note 12", "xiaomi", "199", "4.6"},
	{"poco x5 pro", "xiaomi", "299", "4.4"},
	{"c4", "xiaomi", "1000", "5.0"},
}

// newTestDataset builds a dataset from a header and records
func newTestDataset(t *testing.T, header []string, records [][]string) *dataset.Dataset {
	t.Helper()
	ds, err := dataset.New(header)
	if err != nil {
		t.Fatalf("failed to create dataset: %v", err)
	}
	for _, rec := range records {
		if err := ds.Append(rec); err != nil {
			t.Fatalf("failed to append record %v: %v", rec, err)
		}
	}
	return ds
}

// phoneDataset returns the sample phone catalogue
func phoneDataset(t *testing.T) *dataset.Dataset {
	t.Helper()
	return newTestDataset(t, phoneHeader, phoneRecords)
}

// columnValues extracts one column from rows, failing if it is absent
func columnValues(t *testing.T, rows []dataset.Row, column string) []string {
	t.Helper()
	values := make([]string, 0, len(rows))
	for _, row := range rows {
		v, ok := row.Get(column)
		if !ok {
			t.Fatalf("row %v has no column %q", row.Map(), column)
		}
		values = append(values, v)
	}
	return values
}
