package types

// Value is a closed variant over the storable tag payloads. Exactly one
// payload field is meaningful, selected by the tag; TagEnd is not a storable
// value and has no constructor.
type Value struct {
	tag Tag

	// Scalar payloads (only one valid based on tag)
	byteVal   uint8
	shortVal  int16
	intVal    int32
	longVal   int64
	floatVal  float32
	doubleVal float64
	strVal    string

	// Array payloads
	byteArr []int8
	intArr  []int32

	// Container payloads
	listVal []Value
	listTag Tag // declared element tag of listVal
	compVal *Compound
}

// ============================================================
// Constructors
// ============================================================

// Byte creates a TAG_Byte value.
func Byte(v uint8) Value { return Value{tag: TagByte, byteVal: v} }

// Short creates a TAG_Short value.
func Short(v int16) Value { return Value{tag: TagShort, shortVal: v} }

// Int creates a TAG_Int value.
func Int(v int32) Value { return Value{tag: TagInt, intVal: v} }

// Long creates a TAG_Long value.
func Long(v int64) Value { return Value{tag: TagLong, longVal: v} }

// Float creates a TAG_Float value.
func Float(v float32) Value { return Value{tag: TagFloat, floatVal: v} }

// Double creates a TAG_Double value.
func Double(v float64) Value { return Value{tag: TagDouble, doubleVal: v} }

// Str creates a TAG_String value.
func Str(v string) Value { return Value{tag: TagString, strVal: v} }

// ByteArray creates a TAG_Byte_Array value.
func ByteArray(v []int8) Value { return Value{tag: TagByteArray, byteArr: v} }

// IntArray creates a TAG_Int_Array value.
func IntArray(v []int32) Value { return Value{tag: TagIntArray, intArr: v} }

// List creates a TAG_List value with the declared element tag. All elements
// must carry that tag; the decoder guarantees this for parsed documents.
func List(elem Tag, elems []Value) Value {
	return Value{tag: TagList, listTag: elem, listVal: elems}
}

// CompoundValue wraps a Compound as a TAG_Compound value.
func CompoundValue(c *Compound) Value { return Value{tag: TagCompound, compVal: c} }

// ============================================================
// Accessors
// ============================================================

// Tag returns the value's tag. The zero Value reports TagEnd.
func (v Value) Tag() Tag { return v.tag }

// AsByte returns the TAG_Byte payload.
func (v Value) AsByte() (uint8, error) {
	if v.tag != TagByte {
		return 0, tagErr(TagByte, v.tag)
	}
	return v.byteVal, nil
}

// AsShort returns the TAG_Short payload.
func (v Value) AsShort() (int16, error) {
	if v.tag != TagShort {
		return 0, tagErr(TagShort, v.tag)
	}
	return v.shortVal, nil
}

// AsInt returns the TAG_Int payload.
func (v Value) AsInt() (int32, error) {
	if v.tag != TagInt {
		return 0, tagErr(TagInt, v.tag)
	}
	return v.intVal, nil
}

// AsLong returns the TAG_Long payload.
func (v Value) AsLong() (int64, error) {
	if v.tag != TagLong {
		return 0, tagErr(TagLong, v.tag)
	}
	return v.longVal, nil
}

// AsFloat returns the TAG_Float payload.
func (v Value) AsFloat() (float32, error) {
	if v.tag != TagFloat {
		return 0, tagErr(TagFloat, v.tag)
	}
	return v.floatVal, nil
}

// AsDouble returns the TAG_Double payload.
func (v Value) AsDouble() (float64, error) {
	if v.tag != TagDouble {
		return 0, tagErr(TagDouble, v.tag)
	}
	return v.doubleVal, nil
}

// AsString returns the TAG_String payload.
func (v Value) AsString() (string, error) {
	if v.tag != TagString {
		return "", tagErr(TagString, v.tag)
	}
	return v.strVal, nil
}

// AsByteArray returns the TAG_Byte_Array payload.
func (v Value) AsByteArray() ([]int8, error) {
	if v.tag != TagByteArray {
		return nil, tagErr(TagByteArray, v.tag)
	}
	return v.byteArr, nil
}

// AsIntArray returns the TAG_Int_Array payload.
func (v Value) AsIntArray() ([]int32, error) {
	if v.tag != TagIntArray {
		return nil, tagErr(TagIntArray, v.tag)
	}
	return v.intArr, nil
}

// AsList returns the TAG_List elements in stream order.
func (v Value) AsList() ([]Value, error) {
	if v.tag != TagList {
		return nil, tagErr(TagList, v.tag)
	}
	return v.listVal, nil
}

// ListTag returns the declared element tag of a TAG_List value, or TagEnd
// when the value is not a list.
func (v Value) ListTag() Tag {
	if v.tag != TagList {
		return TagEnd
	}
	return v.listTag
}

// AsCompound returns the nested Compound of a TAG_Compound value.
func (v Value) AsCompound() (*Compound, error) {
	if v.tag != TagCompound {
		return nil, tagErr(TagCompound, v.tag)
	}
	return v.compVal, nil
}

// ============================================================
// Presentation surface (container protocol for tree consumers)
// ============================================================

// Countable reports whether the value has ordered children (list or compound).
func (v Value) Countable() bool {
	return v.tag == TagList || v.tag == TagCompound
}

// Len returns the child count of a list or compound, the element count of an
// array, and 0 for scalars.
func (v Value) Len() int {
	switch v.tag {
	case TagList:
		return len(v.listVal)
	case TagCompound:
		return v.compVal.Len()
	case TagByteArray:
		return len(v.byteArr)
	case TagIntArray:
		return len(v.intArr)
	default:
		return 0
	}
}

// Index returns the i-th child of a list or compound by position.
func (v Value) Index(i int) (Value, bool) {
	switch v.tag {
	case TagList:
		if i < 0 || i >= len(v.listVal) {
			return Value{}, false
		}
		return v.listVal[i], true
	case TagCompound:
		return v.compVal.At(i)
	default:
		return Value{}, false
	}
}

func tagErr(want, got Tag) error {
	return &Error{
		Kind: ErrKindType,
		Msg:  "expected " + want.String() + ", got " + got.String(),
		Err:  ErrTypeMismatch,
	}
}
