package decoder

import (
	"fmt"
	"unicode/utf8"

	"github.com/mcformats/nbtkit/internal/buf"
	"github.com/mcformats/nbtkit/internal/format"
	"github.com/mcformats/nbtkit/pkg/types"
)

// Cursor is a forward-only read position over the input buffer. Every read
// bounds-checks before advancing and reports format.ErrTruncated instead of
// reading past the end.
type Cursor struct {
	buf []byte
	off int
}

// NewCursor wraps b with the cursor at offset 0.
func NewCursor(b []byte) *Cursor {
	return &Cursor{buf: b}
}

// Offset returns the current read position.
func (c *Cursor) Offset() int { return c.off }

// Remaining returns the number of unread bytes.
func (c *Cursor) Remaining() int { return len(c.buf) - c.off }

// AtEnd reports whether the cursor has consumed the whole buffer.
func (c *Cursor) AtEnd() bool { return c.off >= len(c.buf) }

// ReadTag reads one tag byte and maps it to the tag enumeration.
func (c *Cursor) ReadTag() (types.Tag, error) {
	b, err := format.CheckedReadU8(c.buf, c.off)
	if err != nil {
		return types.TagEnd, err
	}
	t := types.Tag(b)
	if !t.Valid() {
		return types.TagEnd, fmt.Errorf("tag 0x%02x at %d: %w", b, c.off, format.ErrBadTag)
	}
	c.off += format.TagSize
	return t, nil
}

// ReadByte reads a TAG_Byte payload.
func (c *Cursor) ReadByte() (byte, error) {
	v, err := format.CheckedReadU8(c.buf, c.off)
	if err != nil {
		return 0, err
	}
	c.off += format.ByteElemSize
	return v, nil
}

// ReadShort reads a big-endian TAG_Short payload.
func (c *Cursor) ReadShort() (int16, error) {
	v, err := format.CheckedReadU16(c.buf, c.off)
	if err != nil {
		return 0, err
	}
	c.off += format.ShortElemSize
	return int16(v), nil
}

// ReadInt reads a big-endian TAG_Int payload.
func (c *Cursor) ReadInt() (int32, error) {
	v, err := format.CheckedReadU32(c.buf, c.off)
	if err != nil {
		return 0, err
	}
	c.off += format.IntElemSize
	return int32(v), nil
}

// ReadLong reads a big-endian TAG_Long payload.
func (c *Cursor) ReadLong() (int64, error) {
	v, err := format.CheckedReadU64(c.buf, c.off)
	if err != nil {
		return 0, err
	}
	c.off += format.LongElemSize
	return int64(v), nil
}

// ReadFloat reads a big-endian TAG_Float payload.
func (c *Cursor) ReadFloat() (float32, error) {
	v, err := format.CheckedReadF32(c.buf, c.off)
	if err != nil {
		return 0, err
	}
	c.off += format.IntElemSize
	return v, nil
}

// ReadDouble reads a big-endian TAG_Double payload.
func (c *Cursor) ReadDouble() (float64, error) {
	v, err := format.CheckedReadF64(c.buf, c.off)
	if err != nil {
		return 0, err
	}
	c.off += format.LongElemSize
	return v, nil
}

// ReadString reads a length-prefixed UTF-8 string: a big-endian uint16 byte
// count followed by that many bytes. Invalid UTF-8 fails with ErrBadString.
func (c *Cursor) ReadString() (string, error) {
	n, err := format.CheckedReadU16(c.buf, c.off)
	if err != nil {
		return "", err
	}
	start := c.off + format.StrLenSize
	if !buf.Has(c.buf, start, int(n)) {
		return "", fmt.Errorf("string of %d bytes at %d: %w (len %d)", n, start, format.ErrTruncated, len(c.buf))
	}
	raw := c.buf[start : start+int(n)]
	if !utf8.Valid(raw) {
		return "", fmt.Errorf("string at %d: %w", start, format.ErrBadString)
	}
	c.off = start + int(n)
	return string(raw), nil
}

// ReadByteArray reads a TAG_Byte_Array payload: a big-endian int32 count
// followed by that many signed bytes.
func (c *Cursor) ReadByteArray() ([]int8, error) {
	n, err := c.readCount()
	if err != nil {
		return nil, err
	}
	end, err := buf.CheckArrayBounds(len(c.buf), c.off, n, format.ByteElemSize)
	if err != nil {
		return nil, fmt.Errorf("byte array: %w: %w", format.ErrTruncated, err)
	}
	out := make([]int8, n)
	for i := 0; i < n; i++ {
		out[i] = int8(c.buf[c.off+i])
	}
	c.off = end
	return out, nil
}

// ReadIntArray reads a TAG_Int_Array payload: a big-endian int32 count
// followed by that many big-endian int32 elements.
func (c *Cursor) ReadIntArray() ([]int32, error) {
	n, err := c.readCount()
	if err != nil {
		return nil, err
	}
	end, err := buf.CheckArrayBounds(len(c.buf), c.off, n, format.IntElemSize)
	if err != nil {
		return nil, fmt.Errorf("int array: %w: %w", format.ErrTruncated, err)
	}
	out := make([]int32, n)
	for i := 0; i < n; i++ {
		v, err := format.CheckedReadU32(c.buf, c.off+i*format.IntElemSize)
		if err != nil {
			return nil, err
		}
		out[i] = int32(v)
	}
	c.off = end
	return out, nil
}

// readCount reads a big-endian int32 element count, rejecting negatives.
func (c *Cursor) readCount() (int, error) {
	n, err := c.ReadInt()
	if err != nil {
		return 0, err
	}
	if n < 0 {
		return 0, fmt.Errorf("count %d at %d: %w", n, c.off-format.ArrayLenSize, format.ErrBadLength)
	}
	return int(n), nil
}
