package nbt

import (
	"context"
	"fmt"
	"io"
	"net/http"

	"github.com/mcformats/nbtkit/internal/decoder"
	"github.com/mcformats/nbtkit/internal/format"
	"github.com/mcformats/nbtkit/internal/mmfile"
	"github.com/mcformats/nbtkit/pkg/types"
)

// Re-exports so most callers only import this package.
type (
	Compound = types.Compound
	Value    = types.Value
	Tag      = types.Tag
	Error    = types.Error
	ErrKind  = types.ErrKind
)

const (
	TagEnd       = types.TagEnd
	TagByte      = types.TagByte
	TagShort     = types.TagShort
	TagInt       = types.TagInt
	TagLong      = types.TagLong
	TagFloat     = types.TagFloat
	TagDouble    = types.TagDouble
	TagByteArray = types.TagByteArray
	TagString    = types.TagString
	TagList      = types.TagList
	TagCompound  = types.TagCompound
	TagIntArray  = types.TagIntArray
)

// Constructors, re-exported for callers assembling values by hand.
var (
	NewCompound   = types.NewCompound
	Byte          = types.Byte
	Short         = types.Short
	Int           = types.Int
	Long          = types.Long
	Float         = types.Float
	Double        = types.Double
	Str           = types.Str
	ByteArray     = types.ByteArray
	IntArray      = types.IntArray
	List          = types.List
	CompoundValue = types.CompoundValue
)

const (
	ErrKindNoData  = types.ErrKindNoData
	ErrKindInvalid = types.ErrKindInvalid
	ErrKindEOF     = types.ErrKindEOF
	ErrKindType    = types.ErrKindType
	ErrKindState   = types.ErrKindState
)

// Parse decodes an in-memory document, decompressing first when the buffer
// is gzip-framed. Decompression errors are returned unwrapped.
func Parse(data []byte) (*Compound, error) {
	if format.IsGzip(data) {
		var err error
		data, err = format.Decompress(data)
		if err != nil {
			return nil, err
		}
	}
	if len(data) == 0 {
		return nil, types.ErrNoData
	}
	root, err := decoder.Decode(data)
	if err != nil {
		return nil, err
	}
	return promoteRoot(root), nil
}

// ParseFile maps the file at path and decodes it. The mapping is released
// before returning; the parsed tree owns all of its memory. I/O errors are
// returned unwrapped.
func ParseFile(path string) (*Compound, error) {
	data, unmap, err := mmfile.Map(path)
	if err != nil {
		return nil, err
	}
	defer func() {
		if unmap != nil {
			_ = unmap()
		}
	}()
	return Parse(data)
}

// ParseURL fetches url and decodes the response body. HTTP and I/O errors
// are returned unwrapped; a non-2xx status is an error.
func ParseURL(ctx context.Context, url string) (*Compound, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("nbt: fetch %s: unexpected status %s", url, resp.Status)
	}
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	return Parse(data)
}

// promoteRoot unwraps the conventional document framing: a single top-level
// entry with an empty key holding a compound is the document itself, so that
// compound is returned as the root.
func promoteRoot(root *Compound) *Compound {
	if root.Len() != 1 {
		return root
	}
	key, _ := root.KeyAt(0)
	if key != "" {
		return root
	}
	v, _ := root.At(0)
	if inner, err := v.AsCompound(); err == nil {
		return inner
	}
	return root
}
