package reader

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/vegasq/csvcat/dataset"
)

// readXLSX loads the first sheet of a workbook. The first row is the
// header; rows shorter than the header are padded with empty cells, since
// excelize trims trailing blanks.
func readXLSX(path string) (*dataset.Dataset, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open xlsx file: %w", err)
	}
	defer func() { _ = f.Close() }()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("no sheets found in xlsx file")
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %q: %w", sheets[0], err)
	}
	if len(rows) == 0 {
		return dataset.New(nil)
	}

	header := NormalizeHeaders(rows[0])
	ds, err := dataset.New(header)
	if err != nil {
		return nil, err
	}

	for i, row := range rows[1:] {
		if len(row) > len(header) {
			return nil, fmt.Errorf("%w: sheet row %d has %d cells, header has %d", ErrFieldCount, i+2, len(row), len(header))
		}
		values := make([]string, len(header))
		copy(values, row)
		if err := ds.Append(values); err != nil {
			return nil, err
		}
	}

	return ds, nil
}
