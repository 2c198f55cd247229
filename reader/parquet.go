package reader

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/parquet-go/parquet-go"

	"github.com/vegasq/csvcat/dataset"
)

// ParquetReader reads parquet files into a dataset.
//
// It maintains both an OS file handle and a parquet file handle to enable
// proper resource cleanup.
type ParquetReader struct {
	file   *os.File
	pqFile *parquet.File
}

// NewParquetReader opens a parquet file for reading.
//
// The file is opened and validated as a parquet file. Returns an error if
// the file doesn't exist or is not a valid parquet file.
//
// Example:
//
//	r, err := NewParquetReader("data.parquet")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer r.Close()
func NewParquetReader(path string) (*ParquetReader, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}

	stat, err := file.Stat()
	if err != nil {
		_ = file.Close()
		return nil, fmt.Errorf("failed to stat file: %w", err)
	}

	pqFile, err := parquet.OpenFile(file, stat.Size())
	if err != nil {
		_ = file.Close()
		return nil, fmt.Errorf("failed to open parquet file: %w", err)
	}

	return &ParquetReader{
		file:   file,
		pqFile: pqFile,
	}, nil
}

// Columns returns the top-level column names in schema order.
func (r *ParquetReader) Columns() []string {
	fields := r.pqFile.Schema().Fields()
	names := make([]string, len(fields))
	for i, field := range fields {
		names[i] = field.Name()
	}
	return names
}

// ReadAll reads all rows from the parquet file into memory.
//
// Each cell is rendered to text. Null values become empty cells and
// nested groups are rendered as JSON.
func (r *ParquetReader) ReadAll() (*dataset.Dataset, error) {
	columns := r.Columns()
	ds, err := dataset.New(columns)
	if err != nil {
		return nil, err
	}

	reader := parquet.NewReader(r.pqFile)
	defer func() { _ = reader.Close() }()

	for {
		row := make(map[string]interface{})
		err := reader.Read(&row)
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, fmt.Errorf("failed to read row: %w", err)
		}

		values := make([]string, len(columns))
		for i, col := range columns {
			values[i] = formatCell(row[col])
		}
		if err := ds.Append(values); err != nil {
			return nil, err
		}
	}

	return ds, nil
}

// Close closes the underlying file. It is safe to call Close multiple times.
func (r *ParquetReader) Close() error {
	if r.file != nil {
		err := r.file.Close()
		r.file = nil
		return err
	}
	return nil
}

// readParquet loads a whole parquet file
func readParquet(path string) (*dataset.Dataset, error) {
	r, err := NewParquetReader(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = r.Close() }()

	return r.ReadAll()
}
