/*
Package btree provides the core of catvec: a persistent, relative-indexed
B+tree specialized for positional sequence storage rather than keyed lookup.

Unlike a conventional B+tree, nodes are not addressed by key but by position:
an internal node caches the element count of each subtree so that Get,
InsertAt, DropHead/TakeHead and Concat all route purely by arithmetic on
cached lengths, never by comparing element values.

Mutating operations are persistent: they return a new *Tree sharing as much
structure as possible with the receiver rather than mutating it in place.
Only the nodes on the path actually touched by an operation are cloned; every
other subtree is shared between old and new trees via a plain Go pointer,
which is safe because a node, once built, is never modified after it is
reachable from more than one *Tree.

Current status:
  - leaf/internal node representation with cached subtree lengths,
  - path-copy Get / GetMut / InsertAt with split propagation,
  - DropHead / TakeHead truncation with spine rebalancing,
  - Concat with height alignment and seam rebalancing,
  - Check() invariant walker and a Dot() Graphviz dumper for diagnostics.
*/
package btree

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'catvec/btree'.
func tracer() tracing.Trace {
	return tracing.Select("catvec/btree")
}

func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}
