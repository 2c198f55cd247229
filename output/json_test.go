package output

import (
	"bytes"
	"math"
	"testing"

	"github.com/vegasq/csvcat/query"
)

func TestJSONFormatter_Format(t *testing.T) {
	var buf bytes.Buffer
	ds := newDataset(t, []string{"price", "name"},
		[]string{"1000", "c4"},
		[]string{"", "say \"hi\""},
	)

	if err := NewJSONFormatter(&buf).Format(ds); err != nil {
		t.Fatalf("Format() error = %v", err)
	}

	want := "{\"price\":\"1000\",\"name\":\"c4\"}\n" +
		"{\"price\":\"\",\"name\":\"say \\\"hi\\\"\"}\n"
	if buf.String() != want {
		t.Errorf("Format() = %q, want %q", buf.String(), want)
	}
}

func TestJSONFormatter_NoRows(t *testing.T) {
	var buf bytes.Buffer
	if err := NewJSONFormatter(&buf).Format(newDataset(t, []string{"a"})); err != nil {
		t.Fatalf("Format() error = %v", err)
	}
	if buf.Len() != 0 {
		t.Errorf("Format() = %q, want nothing", buf.String())
	}
}

func TestJSONFormatter_FormatAggregateInfinite(t *testing.T) {
	var buf bytes.Buffer
	r := query.Result{Value: math.Inf(1), Valid: true}
	if err := NewJSONFormatter(&buf).FormatAggregate("max", r); err != nil {
		t.Fatalf("FormatAggregate() error = %v", err)
	}
	if want := "{\"max\":\"+Inf\"}\n"; buf.String() != want {
		t.Errorf("FormatAggregate() = %q, want %q", buf.String(), want)
	}
}
