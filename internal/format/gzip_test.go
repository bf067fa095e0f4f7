package format

import (
	"bytes"
	"testing"

	"github.com/klauspost/compress/gzip"
)

func gzipBytes(t *testing.T, payload []byte) []byte {
	t.Helper()
	var buf bytes.Buffer
	zw := gzip.NewWriter(&buf)
	if _, err := zw.Write(payload); err != nil {
		t.Fatalf("gzip write: %v", err)
	}
	if err := zw.Close(); err != nil {
		t.Fatalf("gzip close: %v", err)
	}
	return buf.Bytes()
}

func TestIsGzip(t *testing.T) {
	if !IsGzip(gzipBytes(t, []byte("payload"))) {
		t.Fatal("gzip framing not detected")
	}
	if IsGzip([]byte{0x0A, 0x00, 0x00}) {
		t.Fatal("raw document misdetected as gzip")
	}
	if IsGzip(nil) || IsGzip([]byte{0x1f}) {
		t.Fatal("short buffers must not be detected")
	}
}

func TestDecompressRoundTrip(t *testing.T) {
	payload := []byte{0x0A, 0x00, 0x00, 0x01, 0x00, 0x01, 'b', 0x01, 0x00}
	out, err := Decompress(gzipBytes(t, payload))
	if err != nil {
		t.Fatalf("Decompress: %v", err)
	}
	if !bytes.Equal(out, payload) {
		t.Fatalf("round trip mismatch: %x != %x", out, payload)
	}
}

func TestDecompressCorrupt(t *testing.T) {
	// Valid magic, garbage afterwards: the library's own error must surface.
	if _, err := Decompress([]byte{0x1f, 0x8b, 0xff, 0xff, 0xff}); err == nil {
		t.Fatal("expected decompression failure")
	}
}
