package types

// -----------------------------------------------------------------------------
// Typed Errors (stable categories for programmatic handling)
// -----------------------------------------------------------------------------

// ErrKind classifies errors so callers can branch on intent rather than text.
type ErrKind int

const (
	ErrKindNoData  ErrKind = iota // empty input (after decompression)
	ErrKindInvalid                // unknown tag byte, bad UTF-8, End used as a value
	ErrKindEOF                    // buffer exhausted before a legal terminator
	ErrKindType                   // requested decode doesn't match the value's Tag
	ErrKindState                  // invalid operation for current state
)

// Error is a typed error with an optional underlying cause.
type Error struct {
	Kind ErrKind
	Msg  string
	Err  error // optional underlying cause
}

func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.Err != nil {
		return e.Msg + ": " + e.Err.Error()
	}
	return e.Msg
}

func (e *Error) Unwrap() error { return e.Err }

// Sentinels commonly returned by implementations.
var (
	// ErrNoData indicates the input was empty after decompression.
	ErrNoData = &Error{Kind: ErrKindNoData, Msg: "no data to parse"}
	// ErrInvalid indicates malformed document structure.
	ErrInvalid = &Error{Kind: ErrKindInvalid, Msg: "invalid document structure"}
	// ErrUnexpectedEOF indicates the buffer ended before the terminator tag.
	ErrUnexpectedEOF = &Error{Kind: ErrKindEOF, Msg: "unexpected end of buffer"}
	// ErrTypeMismatch indicates the requested decode doesn't match the value's tag.
	ErrTypeMismatch = &Error{Kind: ErrKindType, Msg: "value has different tag"}
)
