package query

import (
	"errors"
	"reflect"
	"testing"

	"github.com/vegasq/csvcat/dataset"
)

func TestCompare_Numbers(t *testing.T) {
	tests := []struct {
		name     string
		left     string
		operator Operator
		right    string
		want     bool
	}{
		{"int equal", "30", OpEqual, "30", true},
		{"int equal float form", "30", OpEqual, "30.0", true},
		{"less", "25", OpLess, "30", true},
		{"greater", "35", OpGreater, "30", true},
		{"less equal same", "30", OpLessEqual, "30", true},
		{"greater equal same", "30", OpGreaterEqual, "30", true},
		{"numeric not lexical", "199", OpLess, "500", true},
		{"numeric not lexical reversed", "1199", OpGreater, "500", true},
		{"exponent", "1e3", OpEqual, "1000", true},
		{"negative", "-2.5", OpLess, "0", true},
		{"whitespace around number", " 42 ", OpEqual, "42", true},

		{"less wrong", "35", OpLess, "30", false},
		{"greater wrong", "25", OpGreater, "30", false},
		{"nan never equal", "NaN", OpEqual, "NaN", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := compare(ParseValue(tt.left), tt.operator, ParseValue(tt.right))
			if got != tt.want {
				t.Errorf("compare(%q, %v, %q) = %v, want %v", tt.left, tt.operator, tt.right, got, tt.want)
			}
		})
	}
}

func TestCompare_Strings(t *testing.T) {
	tests := []struct {
		name     string
		left     string
		operator Operator
		right    string
		want     bool
	}{
		{"equal", "alice", OpEqual, "alice", true},
		{"less", "alice", OpLess, "bob", true},
		{"greater", "bob", OpGreater, "alice", true},
		{"less equal same", "alice", OpLessEqual, "alice", true},
		{"greater equal greater", "bob", OpGreaterEqual, "alice", true},

		// Case sensitivity
		{"case sensitive not equal", "Alice", OpEqual, "alice", false},
		{"uppercase sorts first", "Zed", OpLess, "alice", true},

		// One numeric side falls back to text
		{"number vs text", "10", OpLess, "abc", true},
		{"text vs number", "n/a", OpGreater, "500", true},
		{"text equality is exact", " 42", OpEqual, "42x", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := compare(ParseValue(tt.left), tt.operator, ParseValue(tt.right))
			if got != tt.want {
				t.Errorf("compare(%q, %v, %q) = %v, want %v", tt.left, tt.operator, tt.right, got, tt.want)
			}
		})
	}
}

func TestApplyFilter_Numeric(t *testing.T) {
	ds := phoneDataset(t)

	filtered, err := ApplyFilter(ds.Rows, Condition{Column: "price", Operator: OpLess, Value: "500"})
	if err != nil {
		t.Fatalf("ApplyFilter() error = %v", err)
	}

	got := columnValues(t, filtered, "price")
	want := []string{"199", "299"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("ApplyFilter() prices = %v, want %v", got, want)
	}
}

func TestApplyFilter_String(t *testing.T) {
	ds := phoneDataset(t)

	filtered, err := ApplyFilter(ds.Rows, Condition{Column: "brand", Operator: OpEqual, Value: "apple"})
	if err != nil {
		t.Fatalf("ApplyFilter() error = %v", err)
	}
	if len(filtered) != 1 {
		t.Fatalf("ApplyFilter() returned %d rows, want 1", len(filtered))
	}
	if name, _ := filtered[0].Get("name"); name != "iphone 15 pro" {
		t.Errorf("ApplyFilter() name = %q, want %q", name, "iphone 15 pro")
	}
}

func TestApplyFilter_MixedColumn(t *testing.T) {
	ds := newTestDataset(t, []string{"id", "size"}, [][]string{
		{"1", "9"},
		{"2", "10"},
		{"3", "abc"},
		{"4", "1"},
		{"5", "-"},
	})

	// numeric rows compare by value; "abc" and "-" compare against "5" as text
	filtered, err := ApplyFilter(ds.Rows, Condition{Column: "size", Operator: OpLess, Value: "5"})
	if err != nil {
		t.Fatalf("ApplyFilter() error = %v", err)
	}

	got := columnValues(t, filtered, "id")
	want := []string{"4", "5"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("ApplyFilter() ids = %v, want %v", got, want)
	}
}

func TestApplyFilter_StableAndIdempotent(t *testing.T) {
	ds := phoneDataset(t)
	cond := Condition{Column: "brand", Operator: OpEqual, Value: "xiaomi"}

	once, err := ApplyFilter(ds.Rows, cond)
	if err != nil {
		t.Fatalf("ApplyFilter() error = %v", err)
	}
	twice, err := ApplyFilter(once, cond)
	if err != nil {
		t.Fatalf("ApplyFilter() second pass error = %v", err)
	}

	wantNames := []string{"redmi note 12", "poco x5 pro", "c4"}
	if got := columnValues(t, once, "name"); !reflect.DeepEqual(got, wantNames) {
		t.Errorf("first pass names = %v, want %v", got, wantNames)
	}
	if got := columnValues(t, twice, "name"); !reflect.DeepEqual(got, wantNames) {
		t.Errorf("second pass names = %v, want %v", got, wantNames)
	}

	for _, row := range once {
		match, err := cond.match(row, ParseValue(cond.Value))
		if err != nil || !match {
			t.Errorf("row %v in result does not satisfy %s", row.Map(), cond)
		}
	}
}

func TestApplyFilter_DoesNotMutateInput(t *testing.T) {
	ds := phoneDataset(t)
	before := columnValues(t, ds.Rows, "name")

	if _, err := ApplyFilter(ds.Rows, Condition{Column: "price", Operator: OpGreater, Value: "900"}); err != nil {
		t.Fatalf("ApplyFilter() error = %v", err)
	}

	if after := columnValues(t, ds.Rows, "name"); !reflect.DeepEqual(before, after) {
		t.Errorf("input rows changed: %v -> %v", before, after)
	}
}

func TestApplyFilter_NoMatches(t *testing.T) {
	ds := phoneDataset(t)

	filtered, err := ApplyFilter(ds.Rows, Condition{Column: "price", Operator: OpGreater, Value: "5000"})
	if err != nil {
		t.Fatalf("ApplyFilter() error = %v", err)
	}
	if filtered == nil || len(filtered) != 0 {
		t.Errorf("ApplyFilter() = %v, want empty non-nil slice", filtered)
	}
}

func TestApplyFilter_UnknownOperator(t *testing.T) {
	// checked before rows, so even a missing column is not reported
	rows := []dataset.Row{{}}

	_, err := ApplyFilter(rows, Condition{Column: "price", Operator: "!=", Value: "1"})
	if !errors.Is(err, ErrUnknownOperator) {
		t.Errorf("ApplyFilter() error = %v, want ErrUnknownOperator", err)
	}
}

func TestApplyFilter_MissingColumn(t *testing.T) {
	ds := phoneDataset(t)

	_, err := ApplyFilter(ds.Rows, Condition{Column: "weight", Operator: OpEqual, Value: "1"})
	if !errors.Is(err, ErrMissingColumn) {
		t.Errorf("ApplyFilter() error = %v, want ErrMissingColumn", err)
	}
}

func TestApplyFilter_EmptyInput(t *testing.T) {
	filtered, err := ApplyFilter(nil, Condition{Column: "weight", Operator: OpEqual, Value: "1"})
	if err != nil {
		t.Fatalf("ApplyFilter() error = %v", err)
	}
	if len(filtered) != 0 {
		t.Errorf("ApplyFilter() returned %d rows, want 0", len(filtered))
	}
}

func TestCondition_match(t *testing.T) {
	ds := phoneDataset(t)
	row := ds.Rows[0]

	tests := []struct {
		name    string
		cond    Condition
		want    bool
		wantErr error
	}{
		{"match", Condition{Column: "rating", Operator: OpGreaterEqual, Value: "4.9"}, true, nil},
		{"no match", Condition{Column: "rating", Operator: OpGreater, Value: "4.9"}, false, nil},
		{"missing column", Condition{Column: "color", Operator: OpEqual, Value: "red"}, false, ErrMissingColumn},
		{"numeric literal", Condition{Column: "price", Operator: OpEqual, Value: "999.0"}, true, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.cond.match(row, ParseValue(tt.cond.Value))
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("match() error = %v, want %v", err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("match() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestApplyFilter_HexLiteralIsText(t *testing.T) {
	ds := newTestDataset(t, []string{"code"}, [][]string{{"16"}, {"0x10"}})

	filtered, err := ApplyFilter(ds.Rows, Condition{Column: "code", Operator: OpEqual, Value: "16"})
	if err != nil {
		t.Fatalf("ApplyFilter() error = %v", err)
	}
	if got := columnValues(t, filtered, "code"); !reflect.DeepEqual(got, []string{"16"}) {
		t.Errorf("code=16 matched %v, want [16]", got)
	}
}
