package types

// Compound is an ordered mapping from string key to Value. Keys iterate in
// first-insertion order; overwriting an existing key keeps its position.
//
// The decoder populates a Compound one entry at a time and never touches it
// again once its terminating End tag has been consumed. Consumers treat the
// tree as read-only; Set and Delete exist for the decoder and for callers
// assembling fixtures by hand.
type Compound struct {
	keys    []string
	entries map[string]Value
}

// NewCompound returns an empty Compound.
func NewCompound() *Compound {
	return &Compound{entries: make(map[string]Value)}
}

// Len returns the number of entries.
func (c *Compound) Len() int {
	if c == nil {
		return 0
	}
	return len(c.keys)
}

// Get returns the value bound to key.
func (c *Compound) Get(key string) (Value, bool) {
	if c == nil {
		return Value{}, false
	}
	v, ok := c.entries[key]
	return v, ok
}

// KeyAt returns the key at position i in insertion order.
func (c *Compound) KeyAt(i int) (string, bool) {
	if c == nil || i < 0 || i >= len(c.keys) {
		return "", false
	}
	return c.keys[i], true
}

// At returns the value at position i in insertion order.
func (c *Compound) At(i int) (Value, bool) {
	if c == nil || i < 0 || i >= len(c.keys) {
		return Value{}, false
	}
	return c.entries[c.keys[i]], true
}

// Keys returns the keys in insertion order. The slice is a copy.
func (c *Compound) Keys() []string {
	if c == nil {
		return nil
	}
	out := make([]string, len(c.keys))
	copy(out, c.keys)
	return out
}

// Set inserts or overwrites key. An overwrite keeps the key's original
// position in iteration order (upsert-in-place, not move-to-end).
func (c *Compound) Set(key string, v Value) {
	if _, exists := c.entries[key]; !exists {
		c.keys = append(c.keys, key)
	}
	c.entries[key] = v
}

// Delete removes key and its slot in the iteration order.
func (c *Compound) Delete(key string) {
	if _, exists := c.entries[key]; !exists {
		return
	}
	delete(c.entries, key)
	for i, k := range c.keys {
		if k == key {
			c.keys = append(c.keys[:i], c.keys[i+1:]...)
			break
		}
	}
}
