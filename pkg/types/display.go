package types

import (
	"strconv"
	"strings"
)

// Display returns a human-readable single-line representation of the value,
// loosely following the textual NBT notation: numeric suffixes for narrow
// scalars (1b, 2s, 3L), quoted strings, [B;...]/[I;...] arrays, bracketed
// lists, and braced compounds.
func (v Value) Display() string {
	var b strings.Builder
	v.display(&b)
	return b.String()
}

func (v Value) display(b *strings.Builder) {
	switch v.tag {
	case TagByte:
		b.WriteString(strconv.FormatUint(uint64(v.byteVal), 10))
		b.WriteByte('b')
	case TagShort:
		b.WriteString(strconv.FormatInt(int64(v.shortVal), 10))
		b.WriteByte('s')
	case TagInt:
		b.WriteString(strconv.FormatInt(int64(v.intVal), 10))
	case TagLong:
		b.WriteString(strconv.FormatInt(v.longVal, 10))
		b.WriteByte('L')
	case TagFloat:
		b.WriteString(strconv.FormatFloat(float64(v.floatVal), 'g', -1, 32))
		b.WriteByte('f')
	case TagDouble:
		b.WriteString(strconv.FormatFloat(v.doubleVal, 'g', -1, 64))
		b.WriteByte('d')
	case TagString:
		b.WriteString(strconv.Quote(v.strVal))
	case TagByteArray:
		b.WriteString("[B;")
		for i, e := range v.byteArr {
			if i > 0 {
				b.WriteByte(',')
			}
			b.WriteString(strconv.FormatInt(int64(e), 10))
		}
		b.WriteByte(']')
	case TagIntArray:
		b.WriteString("[I;")
		for i, e := range v.intArr {
			if i > 0 {
				b.WriteByte(',')
			}
			b.WriteString(strconv.FormatInt(int64(e), 10))
		}
		b.WriteByte(']')
	case TagList:
		b.WriteByte('[')
		for i, e := range v.listVal {
			if i > 0 {
				b.WriteByte(',')
			}
			e.display(b)
		}
		b.WriteByte(']')
	case TagCompound:
		b.WriteByte('{')
		for i, k := range v.compVal.keys {
			if i > 0 {
				b.WriteByte(',')
			}
			b.WriteString(k)
			b.WriteByte(':')
			e := v.compVal.entries[k]
			e.display(b)
		}
		b.WriteByte('}')
	default:
		b.WriteString("<end>")
	}
}
