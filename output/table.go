package output

import (
	"io"

	"github.com/mattn/go-runewidth"
	"github.com/olekukonko/tablewriter"

	"github.com/vegasq/csvcat/dataset"
	"github.com/vegasq/csvcat/query"
)

// ellipsis marks a truncated cell
const ellipsis = "…"

// TableFormatter outputs rows as a bordered grid with a line between rows
type TableFormatter struct {
	writer       io.Writer
	maxCellWidth int
}

// NewTableFormatter creates a new grid formatter. Cells wider than
// maxCellWidth are truncated; zero keeps them whole.
func NewTableFormatter(w io.Writer, maxCellWidth int) *TableFormatter {
	return &TableFormatter{writer: w, maxCellWidth: maxCellWidth}
}

// SetOutput sets the output writer
func (t *TableFormatter) SetOutput(w io.Writer) {
	t.writer = w
}

// Format writes the dataset as a grid. A dataset without columns writes
// nothing; one with columns but no rows writes only the header.
func (t *TableFormatter) Format(ds *dataset.Dataset) error {
	header := ds.Header()
	if len(header) == 0 {
		return nil
	}

	table := t.newTable(header)
	for _, row := range ds.Rows {
		table.Append(t.truncateAll(row.Values()))
	}
	table.Render()
	return nil
}

// FormatAggregate writes a one-column grid with label as the header
func (t *TableFormatter) FormatAggregate(label string, r query.Result) error {
	table := t.newTable([]string{label})
	table.Append([]string{r.String()})
	table.Render()
	return nil
}

func (t *TableFormatter) newTable(header []string) *tablewriter.Table {
	table := tablewriter.NewWriter(t.writer)
	table.SetHeader(t.truncateAll(header))
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetRowLine(true)
	return table
}

func (t *TableFormatter) truncateAll(cells []string) []string {
	if t.maxCellWidth <= 0 {
		return cells
	}
	out := make([]string, len(cells))
	for i, cell := range cells {
		out[i] = runewidth.Truncate(cell, t.maxCellWidth, ellipsis)
	}
	return out
}
