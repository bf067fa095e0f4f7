package types

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValueAccessors(t *testing.T) {
	cases := []struct {
		name string
		v    Value
		tag  Tag
		get  func(Value) (interface{}, error)
		want interface{}
	}{
		{"byte", Byte(200), TagByte, func(v Value) (interface{}, error) { return v.AsByte() }, uint8(200)},
		{"short", Short(-5), TagShort, func(v Value) (interface{}, error) { return v.AsShort() }, int16(-5)},
		{"int", Int(70000), TagInt, func(v Value) (interface{}, error) { return v.AsInt() }, int32(70000)},
		{"long", Long(-1 << 40), TagLong, func(v Value) (interface{}, error) { return v.AsLong() }, int64(-1 << 40)},
		{"float", Float(1.25), TagFloat, func(v Value) (interface{}, error) { return v.AsFloat() }, float32(1.25)},
		{"double", Double(-0.5), TagDouble, func(v Value) (interface{}, error) { return v.AsDouble() }, float64(-0.5)},
		{"string", Str("hi"), TagString, func(v Value) (interface{}, error) { return v.AsString() }, "hi"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.tag, tc.v.Tag())
			got, err := tc.get(tc.v)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestValueTagMismatch(t *testing.T) {
	v := Int(1)
	_, err := v.AsString()
	require.Error(t, err)

	var typed *Error
	require.ErrorAs(t, err, &typed)
	assert.Equal(t, ErrKindType, typed.Kind)
	assert.True(t, errors.Is(err, ErrTypeMismatch))
}

func TestValueArrays(t *testing.T) {
	ba := ByteArray([]int8{1, -1})
	got, err := ba.AsByteArray()
	require.NoError(t, err)
	assert.Equal(t, []int8{1, -1}, got)
	assert.Equal(t, 2, ba.Len())
	assert.False(t, ba.Countable())

	ia := IntArray([]int32{5, 6, 7})
	gotInts, err := ia.AsIntArray()
	require.NoError(t, err)
	assert.Equal(t, []int32{5, 6, 7}, gotInts)
	assert.Equal(t, 3, ia.Len())
}

func TestValueListContainer(t *testing.T) {
	l := List(TagInt, []Value{Int(1), Int(2)})
	assert.True(t, l.Countable())
	assert.Equal(t, 2, l.Len())
	assert.Equal(t, TagInt, l.ListTag())

	e, ok := l.Index(1)
	require.True(t, ok)
	n, err := e.AsInt()
	require.NoError(t, err)
	assert.Equal(t, int32(2), n)

	_, ok = l.Index(2)
	assert.False(t, ok)
	_, ok = l.Index(-1)
	assert.False(t, ok)

	// ListTag on a non-list is TagEnd
	assert.Equal(t, TagEnd, Int(1).ListTag())
}

func TestValueCompoundContainer(t *testing.T) {
	c := NewCompound()
	c.Set("x", Int(10))
	c.Set("y", Int(20))
	v := CompoundValue(c)

	assert.True(t, v.Countable())
	assert.Equal(t, 2, v.Len())

	e, ok := v.Index(0)
	require.True(t, ok)
	n, err := e.AsInt()
	require.NoError(t, err)
	assert.Equal(t, int32(10), n)

	inner, err := v.AsCompound()
	require.NoError(t, err)
	assert.Same(t, c, inner)
}

func TestZeroValueIsEnd(t *testing.T) {
	var v Value
	assert.Equal(t, TagEnd, v.Tag())
	assert.False(t, v.Countable())
	assert.Equal(t, 0, v.Len())
}
