package types

import "fmt"

// Tag is the one-byte type code preceding each entry in the wire format.
// TagEnd never appears as a stored value; it only terminates a compound.
type Tag uint8

const (
	TagEnd       Tag = 0
	TagByte      Tag = 1
	TagShort     Tag = 2
	TagInt       Tag = 3
	TagLong      Tag = 4
	TagFloat     Tag = 5
	TagDouble    Tag = 6
	TagByteArray Tag = 7
	TagString    Tag = 8
	TagList      Tag = 9
	TagCompound  Tag = 10
	TagIntArray  Tag = 11
)

// Valid reports whether t is inside the known tag range.
func (t Tag) Valid() bool { return t <= TagIntArray }

// String implements the Stringer interface for Tag.
func (t Tag) String() string {
	switch t {
	case TagEnd:
		return "TAG_End"
	case TagByte:
		return "TAG_Byte"
	case TagShort:
		return "TAG_Short"
	case TagInt:
		return "TAG_Int"
	case TagLong:
		return "TAG_Long"
	case TagFloat:
		return "TAG_Float"
	case TagDouble:
		return "TAG_Double"
	case TagByteArray:
		return "TAG_Byte_Array"
	case TagString:
		return "TAG_String"
	case TagList:
		return "TAG_List"
	case TagCompound:
		return "TAG_Compound"
	case TagIntArray:
		return "TAG_Int_Array"
	default:
		return fmt.Sprintf("UNKNOWN_TAG_%d", uint8(t))
	}
}

// ScalarWidth returns the fixed payload width in bytes for scalar tags,
// or 0 for tags whose payload is length-prefixed or structural.
func (t Tag) ScalarWidth() int {
	switch t {
	case TagByte:
		return 1
	case TagShort:
		return 2
	case TagInt, TagFloat:
		return 4
	case TagLong, TagDouble:
		return 8
	default:
		return 0
	}
}
