package nbt

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeDoc(t *testing.T, dir, name string, b byte) string {
	t.Helper()
	var entries []byte
	entries = entry(entries, TagByte, "b")
	entries = append(entries, b)
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, wrap(entries), 0o644))
	return path
}

func TestCacheHit(t *testing.T) {
	dir := t.TempDir()
	path := writeDoc(t, dir, "a.nbt", 1)

	c, err := NewCache(4)
	require.NoError(t, err)

	first, err := c.Open(path)
	require.NoError(t, err)
	second, err := c.Open(path)
	require.NoError(t, err)
	// Same parsed tree handed back, not a re-parse.
	assert.Same(t, first, second)
	assert.Equal(t, 1, c.Len())
}

func TestCacheInvalidate(t *testing.T) {
	dir := t.TempDir()
	path := writeDoc(t, dir, "a.nbt", 1)

	c, err := NewCache(4)
	require.NoError(t, err)

	first, err := c.Open(path)
	require.NoError(t, err)

	c.Invalidate(path)
	assert.Equal(t, 0, c.Len())

	second, err := c.Open(path)
	require.NoError(t, err)
	assert.NotSame(t, first, second)
}

func TestCacheEviction(t *testing.T) {
	dir := t.TempDir()
	c, err := NewCache(2)
	require.NoError(t, err)

	for i, name := range []string{"a.nbt", "b.nbt", "c.nbt"} {
		path := writeDoc(t, dir, name, byte(i+1))
		_, err := c.Open(path)
		require.NoError(t, err)
	}
	assert.Equal(t, 2, c.Len())
}

func TestCacheMissError(t *testing.T) {
	c, err := NewCache(2)
	require.NoError(t, err)
	_, err = c.Open(filepath.Join(t.TempDir(), "absent.nbt"))
	require.Error(t, err)
	assert.Equal(t, 0, c.Len())
}

func TestCachePurge(t *testing.T) {
	dir := t.TempDir()
	c, err := NewCache(4)
	require.NoError(t, err)
	_, err = c.Open(writeDoc(t, dir, "a.nbt", 1))
	require.NoError(t, err)
	c.Purge()
	assert.Equal(t, 0, c.Len())
}
