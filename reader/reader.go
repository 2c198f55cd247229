package reader

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"slices"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/vegasq/csvcat/dataset"
)

// FileColumn is appended to datasets loaded from a glob pattern and holds
// each row's source path
const FileColumn = "_file"

// maxFiles caps how many files a glob pattern may expand to
const maxFiles = 1000

var (
	// ErrNoMatches is returned when a glob pattern matches no files
	ErrNoMatches = errors.New("no files match pattern")

	// ErrHeaderMismatch is returned when globbed files disagree on the header
	ErrHeaderMismatch = errors.New("header mismatch")
)

// Options controls how input files are read.
type Options struct {
	// Format forces the input format. FormatAuto detects it from the
	// file extension.
	Format Format

	// Delimiter separates fields of delimited text. Zero picks '\t' for
	// .tsv files and ',' otherwise.
	Delimiter rune

	// JSONPath selects the records inside a JSON document. Empty means
	// the document root.
	JSONPath string

	// Logger receives load diagnostics. Nil uses slog.Default().
	Logger *slog.Logger
}

func (o Options) logger() *slog.Logger {
	if o.Logger != nil {
		return o.Logger
	}
	return slog.Default()
}

// IsGlob reports whether path contains glob metacharacters
func IsGlob(path string) bool {
	return strings.ContainsAny(path, "*?[]{}")
}

// Load reads a whole input into memory.
//
// path is either a single file or a doublestar glob pattern such as
// "data/**/*.csv". A path naming an existing file is never expanded, so
// "data[1].csv" loads that file. Glob matches are read in lexical order, must share one
// header, and are concatenated with an extra FileColumn naming the source
// of each row.
func Load(path string, opts Options) (*dataset.Dataset, error) {
	if path == "" {
		return nil, fmt.Errorf("file path is empty")
	}
	if !IsGlob(path) {
		return loadFile(path, opts)
	}
	// an existing file is read as named even if its name looks like a pattern
	if info, err := os.Stat(path); err == nil && !info.IsDir() {
		return loadFile(path, opts)
	}
	return loadGlob(path, opts)
}

// loadFile reads a single file in its detected or forced format
func loadFile(path string, opts Options) (*dataset.Dataset, error) {
	format := opts.Format
	if format == FormatAuto {
		format = DetectFormat(path)
	}

	log := opts.logger().With("path", path, "format", format.String())
	log.Debug("loading input")

	var (
		ds  *dataset.Dataset
		err error
	)
	switch format {
	case FormatParquet:
		ds, err = readParquet(path)
	case FormatXLSX:
		ds, err = readXLSX(path)
	case FormatDelimited, FormatJSON, FormatJSONLines:
		ds, err = readStream(path, format, opts)
	default:
		err = fmt.Errorf("%w: %v", ErrUnsupportedFormat, format)
	}
	if err != nil {
		return nil, err
	}

	log.Debug("input loaded", "rows", ds.Len(), "columns", ds.Columns.Len())
	return ds, nil
}

// readStream handles the formats that can be read through a (possibly
// decompressing) byte stream
func readStream(path string, format Format, opts Options) (*dataset.Dataset, error) {
	rc, compression, err := openDecompressed(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rc.Close() }()

	if compression != CompressionNone {
		opts.logger().Debug("decompressing input", "path", path, "compression", compression.String())
	}

	switch format {
	case FormatJSON:
		return readJSON(rc, opts.JSONPath)
	case FormatJSONLines:
		return readJSONLines(rc)
	default:
		delimiter := opts.Delimiter
		if delimiter == 0 {
			delimiter = defaultDelimiter(path)
		}
		return readDelimited(rc, delimiter)
	}
}

// loadGlob expands pattern and concatenates every matching file
func loadGlob(pattern string, opts Options) (*dataset.Dataset, error) {
	matches, err := doublestar.FilepathGlob(pattern, doublestar.WithFilesOnly())
	if err != nil {
		return nil, fmt.Errorf("invalid glob pattern: %w", err)
	}
	if len(matches) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrNoMatches, pattern)
	}
	if len(matches) > maxFiles {
		return nil, fmt.Errorf("glob pattern matched too many files (%d), maximum is %d", len(matches), maxFiles)
	}
	sort.Strings(matches)

	opts.logger().Debug("glob expanded", "pattern", pattern, "files", len(matches))

	var (
		combined *dataset.Dataset
		header   []string
	)
	for _, filePath := range matches {
		ds, err := loadFile(filePath, opts)
		if err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", filePath, err)
		}

		if combined == nil {
			header = ds.Header()
			combined, err = dataset.New(append(ds.Header(), FileColumn))
			if err != nil {
				return nil, err
			}
		} else if !slices.Equal(header, ds.Header()) {
			return nil, fmt.Errorf("%w: %s has columns %v, expected %v", ErrHeaderMismatch, filePath, ds.Header(), header)
		}

		for _, row := range ds.Rows {
			values := append(append(make([]string, 0, len(header)+1), row.Values()...), filePath)
			if err := combined.Append(values); err != nil {
				return nil, err
			}
		}
	}

	return combined, nil
}
