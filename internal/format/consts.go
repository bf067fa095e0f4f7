// Package format holds wire-level constants, sentinel errors, and the
// checked big-endian read helpers shared by the decoder.
//
// The NBT wire format is a stream of entries, each 1 tag byte, a
// length-prefixed key, and a tag-specific payload. All multi-byte integers
// and floats are big-endian. A compound payload is a nested entry stream
// closed by a single End tag byte; the top-level document is an implicit
// compound terminated the same way.
package format

// Tag byte values. Kept as raw bytes here; pkg/types carries the public
// enumeration. The two must agree.
const (
	TagEndByte  = 0x00
	TagMaxByte  = 0x0B // TAG_Int_Array; anything above is invalid
	CompoundTag = 0x0A
)

// Fixed payload and prefix widths in bytes.
const (
	TagSize       = 1
	StrLenSize    = 2 // big-endian uint16 string length prefix
	ArrayLenSize  = 4 // big-endian int32 element count prefix
	ByteElemSize  = 1
	ShortElemSize = 2
	IntElemSize   = 4
	LongElemSize  = 8
)

// Gzip framing magic, checked on the raw input before parsing.
const (
	GzipMagic0 = 0x1f
	GzipMagic1 = 0x8b
)

// MaxDepth bounds compound/list nesting. Documents deeper than this are
// rejected as invalid rather than risking unbounded recursion.
const MaxDepth = 512
