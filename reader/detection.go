package reader

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

// ErrUnsupportedFormat is returned for inputs csvcat cannot read
var ErrUnsupportedFormat = errors.New("unsupported input format")

// Format identifies the layout of an input file
type Format int

const (
	FormatAuto Format = iota
	FormatDelimited
	FormatParquet
	FormatXLSX
	FormatJSON
	FormatJSONLines
)

// String returns the string representation of Format
func (f Format) String() string {
	switch f {
	case FormatDelimited:
		return "csv"
	case FormatParquet:
		return "parquet"
	case FormatXLSX:
		return "xlsx"
	case FormatJSON:
		return "json"
	case FormatJSONLines:
		return "jsonl"
	default:
		return "auto"
	}
}

// ParseFormat converts a format name as given on the command line
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(name) {
	case "", "auto":
		return FormatAuto, nil
	case "csv", "tsv", "txt":
		return FormatDelimited, nil
	case "parquet":
		return FormatParquet, nil
	case "xlsx":
		return FormatXLSX, nil
	case "json":
		return FormatJSON, nil
	case "jsonl", "ndjson":
		return FormatJSONLines, nil
	default:
		return FormatAuto, fmt.Errorf("%w: %q", ErrUnsupportedFormat, name)
	}
}

// DetectFormat guesses the format of path from its extension, looking
// through a trailing compression suffix. Unknown extensions are read as
// delimited text.
func DetectFormat(path string) Format {
	_, base := compressionFromExtension(path)
	switch strings.ToLower(filepath.Ext(base)) {
	case ".parquet", ".pq":
		return FormatParquet
	case ".xlsx", ".xlsm":
		return FormatXLSX
	case ".json":
		return FormatJSON
	case ".jsonl", ".ndjson":
		return FormatJSONLines
	default:
		return FormatDelimited
	}
}

// defaultDelimiter picks ',' or '\t' based on the path's extension
func defaultDelimiter(path string) rune {
	_, base := compressionFromExtension(path)
	if strings.EqualFold(filepath.Ext(base), ".tsv") {
		return '\t'
	}
	return ','
}
