package format

import "errors"

var (
	// ErrTruncated indicates the buffer lacked the bytes required for a read.
	ErrTruncated = errors.New("format: truncated buffer")
	// ErrBadTag indicates a tag byte outside the known range.
	ErrBadTag = errors.New("format: unknown tag byte")
	// ErrBadString indicates a string payload that is not valid UTF-8.
	ErrBadString = errors.New("format: string is not valid UTF-8")
	// ErrBadLength indicates a negative element count prefix.
	ErrBadLength = errors.New("format: negative length prefix")
	// ErrEndAsValue indicates an End tag where a stored value was required.
	ErrEndAsValue = errors.New("format: end tag used as a value")
	// ErrTooDeep indicates nesting beyond MaxDepth.
	ErrTooDeep = errors.New("format: nesting exceeds depth limit")
)
