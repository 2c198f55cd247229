package reader

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/vegasq/csvcat/dataset"
)

// ErrFieldCount is returned when a record's field count differs from the header
var ErrFieldCount = errors.New("wrong number of fields")

// readDelimited reads delimited text whose first record is the header.
//
// Every data record must have as many fields as the header. An input with
// no records at all yields an empty dataset without columns.
func readDelimited(r io.Reader, delimiter rune) (*dataset.Dataset, error) {
	csvReader := csv.NewReader(r)
	csvReader.Comma = delimiter
	// header width is enforced for every record
	csvReader.FieldsPerRecord = 0

	header, err := csvReader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return dataset.New(nil)
		}
		return nil, fmt.Errorf("failed to read header: %w", err)
	}
	if len(header) > 0 {
		header[0] = strings.TrimPrefix(header[0], utf8BOM)
	}

	ds, err := dataset.New(NormalizeHeaders(header))
	if err != nil {
		return nil, err
	}

	for {
		record, err := csvReader.Read()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			if errors.Is(err, csv.ErrFieldCount) {
				line := 0
				var parseErr *csv.ParseError
				if errors.As(err, &parseErr) {
					line = parseErr.StartLine
				}
				return nil, fmt.Errorf("%w: line %d has %d fields, header has %d", ErrFieldCount, line, len(record), len(header))
			}
			return nil, fmt.Errorf("failed to read record: %w", err)
		}
		if err := ds.Append(record); err != nil {
			return nil, err
		}
	}

	return ds, nil
}
