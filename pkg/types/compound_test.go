package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompoundInsertionOrder(t *testing.T) {
	c := NewCompound()
	c.Set("z", Byte(1))
	c.Set("a", Byte(2))
	c.Set("m", Byte(3))

	assert.Equal(t, 3, c.Len())
	assert.Equal(t, []string{"z", "a", "m"}, c.Keys())

	k, ok := c.KeyAt(1)
	require.True(t, ok)
	assert.Equal(t, "a", k)

	v, ok := c.At(2)
	require.True(t, ok)
	b, err := v.AsByte()
	require.NoError(t, err)
	assert.Equal(t, uint8(3), b)
}

func TestCompoundUpsertKeepsPosition(t *testing.T) {
	c := NewCompound()
	c.Set("first", Byte(1))
	c.Set("second", Byte(2))
	c.Set("first", Byte(9))

	assert.Equal(t, 2, c.Len())
	assert.Equal(t, []string{"first", "second"}, c.Keys())
	v, _ := c.Get("first")
	b, err := v.AsByte()
	require.NoError(t, err)
	assert.Equal(t, uint8(9), b)
}

func TestCompoundDelete(t *testing.T) {
	c := NewCompound()
	c.Set("a", Byte(1))
	c.Set("b", Byte(2))
	c.Set("c", Byte(3))

	c.Delete("b")
	assert.Equal(t, []string{"a", "c"}, c.Keys())
	_, ok := c.Get("b")
	assert.False(t, ok)

	c.Delete("missing") // no-op
	assert.Equal(t, 2, c.Len())
}

func TestCompoundOutOfRange(t *testing.T) {
	c := NewCompound()
	c.Set("only", Byte(1))

	_, ok := c.At(-1)
	assert.False(t, ok)
	_, ok = c.At(1)
	assert.False(t, ok)
	_, ok = c.KeyAt(5)
	assert.False(t, ok)
}

func TestCompoundNilReceiver(t *testing.T) {
	var c *Compound
	assert.Equal(t, 0, c.Len())
	_, ok := c.Get("x")
	assert.False(t, ok)
	_, ok = c.At(0)
	assert.False(t, ok)
	assert.Nil(t, c.Keys())
}

func TestCompoundKeysIsCopy(t *testing.T) {
	c := NewCompound()
	c.Set("a", Byte(1))
	keys := c.Keys()
	keys[0] = "mutated"
	got, _ := c.KeyAt(0)
	assert.Equal(t, "a", got)
}
