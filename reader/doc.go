// Package reader loads tabular input files into an in-memory dataset.
//
// Delimited text is the primary format: the first record is the header and
// every following record must have the same number of fields. Parquet,
// XLSX (first sheet), JSON arrays and JSON Lines are read too, with every
// cell rendered to text.
//
// # Basic Usage
//
//	ds, err := reader.Load("phones.csv", reader.Options{})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	for _, row := range ds.Rows {
//	    price, _ := row.Get("price")
//	    fmt.Println(price)
//	}
//
// # Compression
//
// Delimited and JSON inputs may be compressed. gzip, bzip2, xz, zstd and
// lz4 are recognized from their magic bytes; brotli from a .br suffix.
// The compression suffix is ignored when detecting the format, so
// "phones.tsv.gz" is read as gzip-compressed, tab-separated text.
//
// # Multi-file Operations
//
// Glob patterns, including "**" and "{a,b}", load every matching file:
//
//	ds, err := reader.Load("exports/**/*.csv", reader.Options{})
//
// The files must share a header. Rows gain a "_file" column holding the
// path they were read from.
//
// # Resource Management
//
// Files are opened and closed inside Load; nothing needs to be released by
// the caller. ParquetReader is exported for callers that want the column
// list before reading rows and must be closed:
//
//	r, err := reader.NewParquetReader("data.parquet")
//	if err != nil {
//	    return err
//	}
//	defer r.Close()
package reader
