// Package dataset holds the in-memory table that csvcat loads, filters and
// renders.
//
// Column names are interned once per dataset in a Columns index; every Row
// shares it and stores its cells as a fixed-order slice. Rows still behave
// like a name-to-value mapping through Get and Map.
package dataset

import (
	"errors"
	"fmt"
)

// ErrDuplicateColumn is returned when a header names the same column twice
var ErrDuplicateColumn = errors.New("duplicate column name")

// Columns is the shared, immutable column-name index of a dataset.
type Columns struct {
	names []string
	index map[string]int
}

// NewColumns builds a column index from header names.
func NewColumns(names []string) (*Columns, error) {
	c := &Columns{
		names: append([]string(nil), names...),
		index: make(map[string]int, len(names)),
	}
	for i, name := range names {
		if _, exists := c.index[name]; exists {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateColumn, name)
		}
		c.index[name] = i
	}
	return c, nil
}

// Names returns the column names in header order.
func (c *Columns) Names() []string {
	return append([]string(nil), c.names...)
}

// Len returns the number of columns
func (c *Columns) Len() int {
	return len(c.names)
}

// Index returns the position of a column in the header.
func (c *Columns) Index(name string) (int, bool) {
	i, ok := c.index[name]
	return i, ok
}

// Row is a single record. The zero Row has no columns.
type Row struct {
	cols   *Columns
	values []string
}

// NewRow binds values to a column index. The value count must match the
// number of columns.
func NewRow(cols *Columns, values []string) (Row, error) {
	if len(values) != cols.Len() {
		return Row{}, fmt.Errorf("row has %d fields, header has %d", len(values), cols.Len())
	}
	return Row{cols: cols, values: values}, nil
}

// Get returns the raw cell for a column and whether the column exists.
func (r Row) Get(column string) (string, bool) {
	if r.cols == nil {
		return "", false
	}
	i, ok := r.cols.Index(column)
	if !ok {
		return "", false
	}
	return r.values[i], true
}

// Values returns the cells in header order. The slice must not be modified.
func (r Row) Values() []string {
	return r.values
}

// Map materializes the row as a name-to-value map.
func (r Row) Map() map[string]string {
	m := make(map[string]string, len(r.values))
	if r.cols == nil {
		return m
	}
	for i, name := range r.cols.names {
		m[name] = r.values[i]
	}
	return m
}

// Dataset is a header plus the rows loaded under it.
type Dataset struct {
	Columns *Columns
	Rows    []Row
}

// New creates an empty dataset for the given header.
func New(header []string) (*Dataset, error) {
	cols, err := NewColumns(header)
	if err != nil {
		return nil, err
	}
	return &Dataset{Columns: cols}, nil
}

// Append adds a record to the dataset.
func (d *Dataset) Append(values []string) error {
	row, err := NewRow(d.Columns, values)
	if err != nil {
		return err
	}
	d.Rows = append(d.Rows, row)
	return nil
}

// Header returns the column names in order.
func (d *Dataset) Header() []string {
	return d.Columns.Names()
}

// Len returns the number of rows
func (d *Dataset) Len() int {
	return len(d.Rows)
}

// WithRows returns a dataset sharing this header with a different row set.
// The receiver is not modified.
func (d *Dataset) WithRows(rows []Row) *Dataset {
	return &Dataset{Columns: d.Columns, Rows: rows}
}
