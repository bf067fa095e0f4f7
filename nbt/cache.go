package nbt

import (
	lru "github.com/hashicorp/golang-lru/v2"
)

// Cache keeps recently parsed documents keyed by file path. Parsed trees are
// immutable, so a cached root may be handed to any number of readers
// concurrently; the cache itself is also safe for concurrent use.
type Cache struct {
	lru *lru.Cache[string, *Compound]
}

// NewCache returns a cache holding up to size parsed documents.
func NewCache(size int) (*Cache, error) {
	l, err := lru.New[string, *Compound](size)
	if err != nil {
		return nil, err
	}
	return &Cache{lru: l}, nil
}

// Open returns the cached root for path, parsing and caching it on a miss.
func (c *Cache) Open(path string) (*Compound, error) {
	if root, ok := c.lru.Get(path); ok {
		return root, nil
	}
	root, err := ParseFile(path)
	if err != nil {
		return nil, err
	}
	c.lru.Add(path, root)
	return root, nil
}

// Invalidate drops the cached document for path, if present.
func (c *Cache) Invalidate(path string) {
	c.lru.Remove(path)
}

// Len returns the number of cached documents.
func (c *Cache) Len() int { return c.lru.Len() }

// Purge drops every cached document.
func (c *Cache) Purge() { c.lru.Purge() }
