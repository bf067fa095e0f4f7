// Package buf contains overflow-safe bounds helpers for decoding routines.
package buf

import (
	"fmt"
	"math"
)

// AddOverflowSafe adds a and b, returning ok = false when the result would overflow int.
func AddOverflowSafe(a, b int) (int, bool) {
	switch {
	case b > 0 && a > math.MaxInt-b:
		return 0, false
	case b < 0 && a < math.MinInt-b:
		return 0, false
	default:
		return a + b, true
	}
}

// MulOverflowSafe multiplies two non-negative counts, returning ok = false
// when the result would overflow int. Used for count * elementSize
// calculations in array and list parsing.
func MulOverflowSafe(a, b int) (int, bool) {
	if a == 0 || b == 0 {
		return 0, true
	}
	if a < 0 || b < 0 {
		return 0, false
	}
	if a > math.MaxInt/b {
		return 0, false
	}
	return a * b, true
}

// CheckArrayBounds validates that count elements of elementSize bytes fit in
// a buffer of bufLen starting at offset, returning the end offset.
//
//	end, err := buf.CheckArrayBounds(len(data), off, int(count), format.IntElemSize)
//	if err != nil {
//	    return fmt.Errorf("int array: %w", err)
//	}
func CheckArrayBounds(bufLen, offset, count, elementSize int) (int, error) {
	if offset < 0 {
		return 0, fmt.Errorf("negative offset: %d", offset)
	}
	if count < 0 {
		return 0, fmt.Errorf("negative count: %d", count)
	}
	total, ok := MulOverflowSafe(count, elementSize)
	if !ok {
		return 0, fmt.Errorf("overflow: count=%d * elemSize=%d", count, elementSize)
	}
	end, ok := AddOverflowSafe(offset, total)
	if !ok {
		return 0, fmt.Errorf("overflow: offset=%d + size=%d", offset, total)
	}
	if end > bufLen {
		return 0, fmt.Errorf("bounds: end=%d > len=%d", end, bufLen)
	}
	return end, nil
}

// Has reports whether b[off:off+n] is within bounds.
func Has(b []byte, off, n int) bool {
	if off < 0 || n < 0 || off > len(b) {
		return false
	}
	end, ok := AddOverflowSafe(off, n)
	return ok && end <= len(b)
}
