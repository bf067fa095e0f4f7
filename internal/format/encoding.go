package format

import (
	"encoding/binary"
	"fmt"
	"math"
)

// Binary encoding utilities for big-endian integers and floats.
//
// Every multi-byte quantity in the wire format is stored big-endian, so all
// readers here decode via encoding/binary.BigEndian regardless of host order.
// Each CheckedRead bounds-checks before touching the buffer and reports
// ErrTruncated instead of panicking on short input.

// CheckedReadU8 reads one byte at off.
func CheckedReadU8(b []byte, off int) (uint8, error) {
	if off < 0 || off+1 > len(b) {
		return 0, fmt.Errorf("u8 at %d: %w (len %d)", off, ErrTruncated, len(b))
	}
	return b[off], nil
}

// CheckedReadU16 reads a big-endian uint16 at off.
func CheckedReadU16(b []byte, off int) (uint16, error) {
	if off < 0 || off+2 > len(b) {
		return 0, fmt.Errorf("u16 at %d: %w (len %d)", off, ErrTruncated, len(b))
	}
	return binary.BigEndian.Uint16(b[off : off+2]), nil
}

// CheckedReadU32 reads a big-endian uint32 at off.
func CheckedReadU32(b []byte, off int) (uint32, error) {
	if off < 0 || off+4 > len(b) {
		return 0, fmt.Errorf("u32 at %d: %w (len %d)", off, ErrTruncated, len(b))
	}
	return binary.BigEndian.Uint32(b[off : off+4]), nil
}

// CheckedReadU64 reads a big-endian uint64 at off.
func CheckedReadU64(b []byte, off int) (uint64, error) {
	if off < 0 || off+8 > len(b) {
		return 0, fmt.Errorf("u64 at %d: %w (len %d)", off, ErrTruncated, len(b))
	}
	return binary.BigEndian.Uint64(b[off : off+8]), nil
}

// CheckedReadF32 reads a big-endian IEEE-754 single at off.
func CheckedReadF32(b []byte, off int) (float32, error) {
	bits, err := CheckedReadU32(b, off)
	if err != nil {
		return 0, err
	}
	return math.Float32frombits(bits), nil
}

// CheckedReadF64 reads a big-endian IEEE-754 double at off.
func CheckedReadF64(b []byte, off int) (float64, error) {
	bits, err := CheckedReadU64(b, off)
	if err != nil {
		return 0, err
	}
	return math.Float64frombits(bits), nil
}
