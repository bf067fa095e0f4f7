package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/mcformats/nbtkit/nbt"
)

// resolvePath walks a dot-separated path from root. Each segment names a
// compound key; a purely numeric segment indexes the current list (or the
// n-th entry of a compound when no key of that name exists).
func resolvePath(root *nbt.Compound, path string) (nbt.Value, error) {
	cur := nbt.CompoundValue(root)
	if path == "" {
		return cur, nil
	}
	for _, seg := range strings.Split(path, ".") {
		next, err := step(cur, seg)
		if err != nil {
			return nbt.Value{}, err
		}
		cur = next
	}
	return cur, nil
}

func step(cur nbt.Value, seg string) (nbt.Value, error) {
	if c, err := cur.AsCompound(); err == nil {
		if v, ok := c.Get(seg); ok {
			return v, nil
		}
		if i, err := strconv.Atoi(seg); err == nil {
			if v, ok := c.At(i); ok {
				return v, nil
			}
		}
		return nbt.Value{}, fmt.Errorf("no entry %q", seg)
	}
	if cur.Tag() == nbt.TagList {
		i, err := strconv.Atoi(seg)
		if err != nil {
			return nbt.Value{}, fmt.Errorf("list index %q is not a number", seg)
		}
		if v, ok := cur.Index(i); ok {
			return v, nil
		}
		return nbt.Value{}, fmt.Errorf("list index %d out of range (len %d)", i, cur.Len())
	}
	return nbt.Value{}, fmt.Errorf("cannot descend into %s via %q", cur.Tag(), seg)
}
