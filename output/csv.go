package output

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/vegasq/csvcat/dataset"
	"github.com/vegasq/csvcat/query"
)

// CSVFormatter outputs rows as CSV format
type CSVFormatter struct {
	writer io.Writer
}

// NewCSVFormatter creates a new CSV formatter
func NewCSVFormatter(w io.Writer) *CSVFormatter {
	return &CSVFormatter{writer: w}
}

// SetOutput sets the output writer
func (c *CSVFormatter) SetOutput(w io.Writer) {
	c.writer = w
}

// Format writes the dataset as CSV, header first, columns in header order
func (c *CSVFormatter) Format(ds *dataset.Dataset) error {
	header := ds.Header()
	if len(header) == 0 {
		return nil
	}

	records := make([][]string, 0, ds.Len()+1)
	records = append(records, sanitizeAll(header))
	for _, row := range ds.Rows {
		records = append(records, sanitizeAll(row.Values()))
	}
	return c.write(records)
}

// FormatAggregate writes a header of label and a single value record
func (c *CSVFormatter) FormatAggregate(label string, r query.Result) error {
	return c.write([][]string{
		{sanitizeCell(label)},
		{r.String()},
	})
}

func (c *CSVFormatter) write(records [][]string) error {
	csvWriter := csv.NewWriter(c.writer)
	for _, record := range records {
		if err := csvWriter.Write(record); err != nil {
			return err
		}
	}

	// Flush and check for errors
	csvWriter.Flush()
	if err := csvWriter.Error(); err != nil {
		return fmt.Errorf("failed to flush CSV writer: %w", err)
	}
	return nil
}

func sanitizeAll(cells []string) []string {
	out := make([]string, len(cells))
	for i, cell := range cells {
		out[i] = sanitizeCell(cell)
	}
	return out
}

// sanitizeCell guards against CSV injection by prefixing values that a
// spreadsheet would evaluate as a formula
func sanitizeCell(val string) string {
	if val == "" {
		return val
	}
	switch val[0] {
	case '=', '+', '-', '@', '\t', '\r', '\n', '|':
		// negative numbers are data, not formulas
		if val[0] == '-' && isNumeric(val) {
			return val
		}
		return "'" + strings.ReplaceAll(val, "'", "''")
	}
	return val
}

func isNumeric(s string) bool {
	return query.ParseValue(s).Kind == query.KindNumber
}
