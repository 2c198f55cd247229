package output

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/vegasq/csvcat/dataset"
	"github.com/vegasq/csvcat/query"
)

// ErrUnknownFormat is returned by New for an unsupported output format name
var ErrUnknownFormat = errors.New("unknown output format")

// Output format names
const (
	FormatTable = "table"
	FormatCSV   = "csv"
	FormatJSON  = "json"
	FormatYAML  = "yaml"
)

// Formats lists the supported output format names
func Formats() []string {
	return []string{FormatTable, FormatCSV, FormatJSON, FormatYAML}
}

// Formatter defines the interface for output formatters.
//
// Implementers must provide Format to render a dataset, FormatAggregate to
// render a single aggregate value, and SetOutput to change the output
// destination.
type Formatter interface {
	// Format writes the dataset in the formatter's specific format
	Format(ds *dataset.Dataset) error

	// FormatAggregate writes one aggregate result under label, usually
	// the function name. An invalid result is written as an empty value.
	FormatAggregate(label string, r query.Result) error

	// SetOutput changes the output writer
	SetOutput(w io.Writer)
}

// Options tunes formatter output.
type Options struct {
	// MaxCellWidth truncates table cells wider than this many terminal
	// columns. Zero disables truncation.
	MaxCellWidth int
}

// New returns the formatter registered under name.
func New(name string, w io.Writer, opts Options) (Formatter, error) {
	switch strings.ToLower(name) {
	case "", FormatTable:
		return NewTableFormatter(w, opts.MaxCellWidth), nil
	case FormatCSV:
		return NewCSVFormatter(w), nil
	case FormatJSON:
		return NewJSONFormatter(w), nil
	case FormatYAML:
		return NewYAMLFormatter(w), nil
	default:
		return nil, fmt.Errorf("%w: %q (supported: %s)", ErrUnknownFormat, name, strings.Join(Formats(), ", "))
	}
}
