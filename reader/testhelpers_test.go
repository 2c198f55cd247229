package reader

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/vegasq/csvcat/dataset"
)

const phonesCSV = `name,brand,price,rating
iphone 15 pro,apple,999,4.9
galaxy s23 ultra,samsung,1199,4.8
redmi note 12,xiaomi,199,4.6
poco x5 pro,xiaomi,299,4.4
c4,xiaomi,1000,5.0
`

var phoneHeader = []string{"name", "brand", "price", "rating"}

// writeFile creates a file under dir with the given content
func writeFile(t *testing.T, dir, name string, content []byte) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("failed to create directory: %v", err)
	}
	if err := os.WriteFile(path, content, 0o644); err != nil {
		t.Fatalf("failed to write %s: %v", name, err)
	}
	return path
}

// assertHeader fails the test when ds does not have the expected header
func assertHeader(t *testing.T, ds *dataset.Dataset, want []string) {
	t.Helper()
	if got := ds.Header(); !reflect.DeepEqual(got, want) {
		t.Fatalf("Header() = %v, want %v", got, want)
	}
}

// column returns every value of one column
func column(t *testing.T, ds *dataset.Dataset, name string) []string {
	t.Helper()
	values := make([]string, 0, ds.Len())
	for _, row := range ds.Rows {
		v, ok := row.Get(name)
		if !ok {
			t.Fatalf("row %v has no column %q", row.Map(), name)
		}
		values = append(values, v)
	}
	return values
}
