package reader

import (
	"bufio"
	"bytes"
	"compress/bzip2"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/andybalholm/brotli"
	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
	"github.com/ulikunitz/xz"
)

// Compression represents the compression format of an input file
type Compression int

const (
	CompressionNone Compression = iota
	CompressionGzip
	CompressionBzip2
	CompressionXZ
	CompressionZstd
	CompressionLZ4
	CompressionBrotli
)

// String returns the string representation of Compression
func (c Compression) String() string {
	switch c {
	case CompressionGzip:
		return "gzip"
	case CompressionBzip2:
		return "bzip2"
	case CompressionXZ:
		return "xz"
	case CompressionZstd:
		return "zstd"
	case CompressionLZ4:
		return "lz4"
	case CompressionBrotli:
		return "brotli"
	default:
		return "none"
	}
}

// Magic byte signatures for compression detection
var (
	gzipMagic  = []byte{0x1f, 0x8b}
	bzip2Magic = []byte{0x42, 0x5a, 0x68}
	xzMagic    = []byte{0xfd, 0x37, 0x7a, 0x58, 0x5a, 0x00}
	zstdMagic  = []byte{0x28, 0xb5, 0x2f, 0xfd}
	lz4Magic   = []byte{0x04, 0x22, 0x4d, 0x18}

	// a bzip2 stream continues "BZh<level>" with a block or end-of-stream marker
	bzip2BlockMagic = []byte{0x31, 0x41, 0x59, 0x26, 0x53, 0x59}
	bzip2EOSMagic   = []byte{0x17, 0x72, 0x45, 0x38, 0x50, 0x90}
)

// magicPeekLen is how many leading bytes detection needs
const magicPeekLen = 10

// compressionExtensions maps file suffixes to the compression they imply.
// Brotli streams have no magic number, so the suffix is the only signal.
var compressionExtensions = map[string]Compression{
	".gz":   CompressionGzip,
	".gzip": CompressionGzip,
	".bz2":  CompressionBzip2,
	".xz":   CompressionXZ,
	".zst":  CompressionZstd,
	".zstd": CompressionZstd,
	".lz4":  CompressionLZ4,
	".br":   CompressionBrotli,
}

// detectCompressionByMagic inspects the leading bytes of a stream
func detectCompressionByMagic(header []byte) Compression {
	switch {
	case bytes.HasPrefix(header, gzipMagic):
		return CompressionGzip
	case isBzip2Header(header):
		return CompressionBzip2
	case bytes.HasPrefix(header, xzMagic):
		return CompressionXZ
	case bytes.HasPrefix(header, zstdMagic):
		return CompressionZstd
	case bytes.HasPrefix(header, lz4Magic):
		return CompressionLZ4
	default:
		return CompressionNone
	}
}

// isBzip2Header matches the full bzip2 stream header. "BZh" alone is
// printable text and may start a plain CSV header.
func isBzip2Header(header []byte) bool {
	if len(header) < magicPeekLen || !bytes.HasPrefix(header, bzip2Magic) {
		return false
	}
	if header[3] < '1' || header[3] > '9' {
		return false
	}
	marker := header[4:magicPeekLen]
	return bytes.Equal(marker, bzip2BlockMagic) || bytes.Equal(marker, bzip2EOSMagic)
}

// compressionFromExtension returns the compression implied by the path's
// suffix and the path with that suffix removed.
func compressionFromExtension(path string) (Compression, string) {
	ext := strings.ToLower(filepath.Ext(path))
	if c, ok := compressionExtensions[ext]; ok {
		return c, strings.TrimSuffix(path, filepath.Ext(path))
	}
	return CompressionNone, path
}

// decompressingReadCloser closes both the decoder (when it has a Close) and
// the underlying file
type decompressingReadCloser struct {
	reader  io.Reader
	decoder io.Closer
	file    *os.File
}

func (d *decompressingReadCloser) Read(p []byte) (int, error) {
	return d.reader.Read(p)
}

func (d *decompressingReadCloser) Close() error {
	var decErr error
	if d.decoder != nil {
		decErr = d.decoder.Close()
	}
	if err := d.file.Close(); err != nil {
		return err
	}
	return decErr
}

// openDecompressed opens path and returns a reader over its decompressed
// content along with the compression that was detected. Magic bytes win
// over the file extension.
func openDecompressed(path string) (io.ReadCloser, Compression, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, CompressionNone, fmt.Errorf("failed to open file: %w", err)
	}

	buffered := bufio.NewReader(f)
	// short files just yield fewer bytes
	header, err := buffered.Peek(magicPeekLen)
	if err != nil && err != io.EOF && err != bufio.ErrBufferFull {
		_ = f.Close()
		return nil, CompressionNone, fmt.Errorf("failed to read file header: %w", err)
	}

	compression := detectCompressionByMagic(header)
	if compression == CompressionNone {
		if byExt, _ := compressionFromExtension(path); byExt == CompressionBrotli {
			compression = CompressionBrotli
		}
	}

	rc := &decompressingReadCloser{file: f}
	switch compression {
	case CompressionNone:
		rc.reader = buffered
	case CompressionGzip:
		gz, err := gzip.NewReader(buffered)
		if err != nil {
			_ = f.Close()
			return nil, compression, fmt.Errorf("failed to create gzip reader: %w", err)
		}
		rc.reader, rc.decoder = gz, gz
	case CompressionBzip2:
		rc.reader = bzip2.NewReader(buffered)
	case CompressionXZ:
		xzReader, err := xz.NewReader(buffered)
		if err != nil {
			_ = f.Close()
			return nil, compression, fmt.Errorf("failed to create xz reader: %w", err)
		}
		rc.reader = xzReader
	case CompressionZstd:
		dec, err := zstd.NewReader(buffered)
		if err != nil {
			_ = f.Close()
			return nil, compression, fmt.Errorf("failed to create zstd reader: %w", err)
		}
		zrc := dec.IOReadCloser()
		rc.reader, rc.decoder = zrc, zrc
	case CompressionLZ4:
		rc.reader = lz4.NewReader(buffered)
	case CompressionBrotli:
		rc.reader = brotli.NewReader(buffered)
	}

	return rc, compression, nil
}
