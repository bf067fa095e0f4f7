// Package types defines the public data model for parsed NBT documents:
// the tag enumeration, the closed Value variant, the ordered Compound
// container, and the typed error taxonomy shared by all entry points.
//
// Values in this package are populated by the decoder and are treated as
// read-only afterwards. A parsed tree is never mutated by the library, so a
// single document may be read concurrently from multiple goroutines without
// synchronization.
package types
