package decoder

import (
	"errors"
	"testing"

	"github.com/mcformats/nbtkit/internal/format"
	"github.com/mcformats/nbtkit/pkg/types"
)

func TestCursorScalars(t *testing.T) {
	b := []byte{
		0xFF,                   // byte
		0x80, 0x00,             // short: -32768
		0xFF, 0xFF, 0xFF, 0xFE, // int: -2
		0x3F, 0xC0, 0x00, 0x00, // float: 1.5
	}
	c := NewCursor(b)

	v8, err := c.ReadByte()
	if err != nil || v8 != 0xFF {
		t.Fatalf("byte: %v %v", v8, err)
	}
	v16, err := c.ReadShort()
	if err != nil || v16 != -32768 {
		t.Fatalf("short: %v %v", v16, err)
	}
	v32, err := c.ReadInt()
	if err != nil || v32 != -2 {
		t.Fatalf("int: %v %v", v32, err)
	}
	f, err := c.ReadFloat()
	if err != nil || f != 1.5 {
		t.Fatalf("float: %v %v", f, err)
	}
	if !c.AtEnd() {
		t.Fatalf("cursor should be exhausted, offset %d", c.Offset())
	}
}

func TestCursorReadTag(t *testing.T) {
	c := NewCursor([]byte{0x0A, 0x0B, 0xFF})
	if tag, err := c.ReadTag(); err != nil || tag != types.TagCompound {
		t.Fatalf("tag: %v %v", tag, err)
	}
	if tag, err := c.ReadTag(); err != nil || tag != types.TagIntArray {
		t.Fatalf("tag: %v %v", tag, err)
	}
	if _, err := c.ReadTag(); !errors.Is(err, format.ErrBadTag) {
		t.Fatalf("expected ErrBadTag for 0xFF, got %v", err)
	}
	// A failed read must not advance past the bad byte.
	if c.Offset() != 2 {
		t.Fatalf("offset moved on failure: %d", c.Offset())
	}
}

func TestCursorReadString(t *testing.T) {
	c := NewCursor([]byte{0x00, 0x05, 'h', 'e', 'l', 'l', 'o'})
	s, err := c.ReadString()
	if err != nil || s != "hello" {
		t.Fatalf("string: %q %v", s, err)
	}
}

func TestCursorReadStringBadUTF8(t *testing.T) {
	c := NewCursor([]byte{0x00, 0x02, 0xC3, 0x28})
	if _, err := c.ReadString(); !errors.Is(err, format.ErrBadString) {
		t.Fatalf("expected ErrBadString, got %v", err)
	}
}

func TestCursorReadStringOverrun(t *testing.T) {
	// Length prefix claims 16 bytes; only 2 remain.
	c := NewCursor([]byte{0x00, 0x10, 'h', 'i'})
	if _, err := c.ReadString(); !errors.Is(err, format.ErrTruncated) {
		t.Fatalf("expected ErrTruncated, got %v", err)
	}
}

func TestCursorReadByteArray(t *testing.T) {
	c := NewCursor([]byte{0x00, 0x00, 0x00, 0x03, 0x01, 0xFF, 0x80})
	arr, err := c.ReadByteArray()
	if err != nil {
		t.Fatalf("ReadByteArray: %v", err)
	}
	want := []int8{1, -1, -128}
	for i, v := range want {
		if arr[i] != v {
			t.Fatalf("elem %d: got %d want %d", i, arr[i], v)
		}
	}
}

func TestCursorReadIntArray(t *testing.T) {
	c := NewCursor([]byte{
		0x00, 0x00, 0x00, 0x02,
		0x00, 0x00, 0x00, 0x07,
		0xFF, 0xFF, 0xFF, 0xFF,
	})
	arr, err := c.ReadIntArray()
	if err != nil {
		t.Fatalf("ReadIntArray: %v", err)
	}
	if len(arr) != 2 || arr[0] != 7 || arr[1] != -1 {
		t.Fatalf("unexpected elements: %v", arr)
	}
}

func TestCursorArrayCountOverrun(t *testing.T) {
	// Count says 1000 ints but the buffer holds none.
	c := NewCursor([]byte{0x00, 0x00, 0x03, 0xE8})
	if _, err := c.ReadIntArray(); !errors.Is(err, format.ErrTruncated) {
		t.Fatalf("expected ErrTruncated, got %v", err)
	}
}

func TestCursorArrayNegativeCount(t *testing.T) {
	c := NewCursor([]byte{0xFF, 0xFF, 0xFF, 0xFF})
	if _, err := c.ReadByteArray(); !errors.Is(err, format.ErrBadLength) {
		t.Fatalf("expected ErrBadLength, got %v", err)
	}
}
