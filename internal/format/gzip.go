package format

import (
	"bytes"
	"io"

	"github.com/klauspost/compress/gzip"
)

// IsGzip reports whether b starts with the gzip magic bytes.
func IsGzip(b []byte) bool {
	return len(b) >= 2 && b[0] == GzipMagic0 && b[1] == GzipMagic1
}

// Decompress inflates a gzip-framed buffer fully into memory. Errors from
// the decompression library are returned as-is so callers can distinguish
// them from format errors.
func Decompress(b []byte) ([]byte, error) {
	zr, err := gzip.NewReader(bytes.NewReader(b))
	if err != nil {
		return nil, err
	}
	defer zr.Close()
	out, err := io.ReadAll(zr)
	if err != nil {
		return nil, err
	}
	return out, nil
}
