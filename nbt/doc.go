// Package nbt decodes Named Binary Tag documents into an in-memory tree.
//
// # Overview
//
// NBT is a binary tag-length-value tree format used to persist nested
// structured data: scalars, byte/int arrays, ordered lists, and nested
// compounds (ordered dictionaries). This package parses a byte buffer,
// optionally gzip-compressed, into a tree of typed nodes, preserving key
// order and nesting. Decoding is read-only; no encoder exists.
//
// # Parsing a document
//
//	root, err := nbt.ParseFile("level.dat")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	name, _ := root.Get("LevelName")
//	fmt.Println(name.Display())
//
// Gzip framing is detected by magic bytes and decompressed transparently.
// The returned root is the document's unnamed top-level compound.
//
// # Navigating the tree
//
// Compound exposes ordered access (Get, At, KeyAt, Keys, Len) and Value is a
// closed variant with per-tag accessors (AsInt, AsString, AsList, ...) plus
// a presentation surface for tree viewers: Countable, Len, Index, and
// Display for a single-line rendering of any node.
//
// # Errors
//
// Parse failures carry a types.Error with a stable kind: ErrKindNoData for
// empty input, ErrKindInvalid for malformed structure (unknown tag byte,
// bad UTF-8, End used as a value), ErrKindEOF when the buffer ends before
// the terminator. I/O and decompression failures are returned unwrapped.
//
// # Concurrency
//
// Parsing is single-threaded and synchronous; one call consumes one buffer.
// The returned tree is never mutated by the library, so it is safe for
// concurrent read-only access from multiple goroutines.
package nbt
