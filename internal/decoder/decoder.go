// Package decoder turns a raw (already decompressed) byte buffer into a tree
// of types.Compound and types.Value nodes. The exported entry point is used
// by the public nbt package, which layers decompression detection and root
// promotion on top.
package decoder

import (
	"errors"
	"fmt"

	"github.com/mcformats/nbtkit/internal/format"
	"github.com/mcformats/nbtkit/pkg/types"
)

// listCapHint caps the initial allocation for list elements so a forged
// count cannot force a huge up-front make. The slice still grows to the
// real element count as the stream is consumed.
const listCapHint = 4096

// Decode parses buf as a complete document: a stream of tag/key/value
// entries forming an implicit top-level compound, terminated by an End tag
// with no open scope left to close. On any failure no partial structure is
// returned.
func Decode(b []byte) (*types.Compound, error) {
	cur := NewCursor(b)
	root := types.NewCompound()
	if err := readEntries(cur, root, 0); err != nil {
		return nil, err
	}
	return root, nil
}

// readEntries consumes tag/key/value triples into dst until the matching
// End tag. The open-scope chain is the call stack: each nested compound is
// one recursive frame, so closing a scope is simply returning.
func readEntries(cur *Cursor, dst *types.Compound, depth int) error {
	if depth > format.MaxDepth {
		return wrapFormatErr(format.ErrTooDeep)
	}
	for {
		tag, err := cur.ReadTag()
		if err != nil {
			return wrapFormatErr(err)
		}
		if tag == types.TagEnd {
			return nil
		}
		key, err := cur.ReadString()
		if err != nil {
			return wrapFormatErr(err)
		}
		val, err := readValue(cur, tag, depth)
		if err != nil {
			return err
		}
		dst.Set(key, val)
	}
}

// readValue decodes one payload of the declared tag shape.
func readValue(cur *Cursor, tag types.Tag, depth int) (types.Value, error) {
	switch tag {
	case types.TagByte:
		v, err := cur.ReadByte()
		if err != nil {
			return types.Value{}, wrapFormatErr(err)
		}
		return types.Byte(v), nil
	case types.TagShort:
		v, err := cur.ReadShort()
		if err != nil {
			return types.Value{}, wrapFormatErr(err)
		}
		return types.Short(v), nil
	case types.TagInt:
		v, err := cur.ReadInt()
		if err != nil {
			return types.Value{}, wrapFormatErr(err)
		}
		return types.Int(v), nil
	case types.TagLong:
		v, err := cur.ReadLong()
		if err != nil {
			return types.Value{}, wrapFormatErr(err)
		}
		return types.Long(v), nil
	case types.TagFloat:
		v, err := cur.ReadFloat()
		if err != nil {
			return types.Value{}, wrapFormatErr(err)
		}
		return types.Float(v), nil
	case types.TagDouble:
		v, err := cur.ReadDouble()
		if err != nil {
			return types.Value{}, wrapFormatErr(err)
		}
		return types.Double(v), nil
	case types.TagByteArray:
		v, err := cur.ReadByteArray()
		if err != nil {
			return types.Value{}, wrapFormatErr(err)
		}
		return types.ByteArray(v), nil
	case types.TagString:
		v, err := cur.ReadString()
		if err != nil {
			return types.Value{}, wrapFormatErr(err)
		}
		return types.Str(v), nil
	case types.TagIntArray:
		v, err := cur.ReadIntArray()
		if err != nil {
			return types.Value{}, wrapFormatErr(err)
		}
		return types.IntArray(v), nil
	case types.TagList:
		return readList(cur, depth)
	case types.TagCompound:
		child := types.NewCompound()
		if err := readEntries(cur, child, depth+1); err != nil {
			return types.Value{}, err
		}
		return types.CompoundValue(child), nil
	default:
		// TagEnd: legal only as a scope terminator, never as a stored value.
		return types.Value{}, wrapFormatErr(fmt.Errorf("at %d: %w", cur.Offset(), format.ErrEndAsValue))
	}
}

// readList decodes a list payload: one element tag byte, a big-endian int32
// count, then back-to-back payloads of the declared tag. Elements are
// appended strictly in stream order, including lists of compounds.
func readList(cur *Cursor, depth int) (types.Value, error) {
	if depth > format.MaxDepth {
		return types.Value{}, wrapFormatErr(format.ErrTooDeep)
	}
	elem, err := cur.ReadTag()
	if err != nil {
		return types.Value{}, wrapFormatErr(err)
	}
	n, err := cur.readCount()
	if err != nil {
		return types.Value{}, wrapFormatErr(err)
	}
	if elem == types.TagEnd {
		// An empty list may declare End as its element tag; a populated one
		// would require End values, which do not exist.
		if n > 0 {
			return types.Value{}, wrapFormatErr(fmt.Errorf("list of %d end tags: %w", n, format.ErrEndAsValue))
		}
		return types.List(types.TagEnd, nil), nil
	}
	// Every element occupies at least one byte, so a count beyond the
	// remaining buffer can be rejected before allocating.
	if n > cur.Remaining() {
		return types.Value{}, wrapFormatErr(fmt.Errorf("list of %d elements with %d bytes left: %w", n, cur.Remaining(), format.ErrTruncated))
	}
	capHint := n
	if capHint > listCapHint {
		capHint = listCapHint
	}
	elems := make([]types.Value, 0, capHint)
	for i := 0; i < n; i++ {
		v, err := readValue(cur, elem, depth+1)
		if err != nil {
			return types.Value{}, err
		}
		elems = append(elems, v)
	}
	return types.List(elem, elems), nil
}

// wrapFormatErr maps format-level sentinels onto the public error taxonomy.
// Errors that already carry a public kind pass through untouched.
func wrapFormatErr(err error) error {
	var typed *types.Error
	if errors.As(err, &typed) {
		return err
	}
	switch {
	case errors.Is(err, format.ErrTruncated):
		return &types.Error{Kind: types.ErrKindEOF, Msg: "document truncated", Err: err}
	case errors.Is(err, format.ErrBadTag),
		errors.Is(err, format.ErrBadString),
		errors.Is(err, format.ErrBadLength),
		errors.Is(err, format.ErrEndAsValue),
		errors.Is(err, format.ErrTooDeep):
		return &types.Error{Kind: types.ErrKindInvalid, Msg: "malformed document", Err: err}
	default:
		return &types.Error{Kind: types.ErrKindInvalid, Msg: err.Error(), Err: err}
	}
}
