/*
Package catvec implements a persistent, relative-indexed sequence container:
a cat-vector backed by a balanced B+tree (package btree).

A CatVec is immutable from the caller's perspective: InsertAt, DropHead,
TakeHead, SliceInto and Append all return a new CatVec sharing as much
structure as possible with their receiver rather than mutating it, so an
older CatVec value remains valid and unaffected after deriving a new one from
it. Clone is O(1).

Typical usage:

	v, _ := catvec.New[int](catvec.Config{Order: 32})
	v, _ = v.PushBack(1)
	v, _ = v.PushBack(2)
	v, _ = v.InsertAt(1, 42)
	head, _ := v.SliceInto(0, 2)

Package btree contains the generic persistent B+tree implementation. Package
catvec/text provides a ready-made CatVec of grapheme clusters for editing
text by user-perceived character.
*/
package catvec

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'catvec'.
func tracer() tracing.Trace {
	return tracing.Select("catvec")
}

func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}
