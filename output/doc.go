// Package output renders datasets and aggregate results.
//
// Every format implements the Formatter interface:
//
//	type Formatter interface {
//	    Format(ds *dataset.Dataset) error
//	    FormatAggregate(label string, r query.Result) error
//	    SetOutput(w io.Writer)
//	}
//
// # Supported Formats
//
//   - table: bordered grid with a separator line between rows (default)
//   - csv: comma-separated values with a header row
//   - json: JSON Lines, one object per row
//   - yaml: a sequence of mappings
//
// # Basic Usage
//
//	formatter, err := output.New("table", os.Stdout, output.Options{MaxCellWidth: 40})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if err := formatter.Format(ds); err != nil {
//	    log.Fatal(err)
//	}
//
// An aggregate is written as a one-column table whose header is the
// function name:
//
//	+------+
//	| avg  |
//	+------+
//	| 4.74 |
//	+------+
//
// # Type Handling
//
// Cells are raw text and are written as strings in every format. CSV output
// prefixes values that start with a formula character (=, +, -, @) with a
// single quote, except negative numbers.
package output
