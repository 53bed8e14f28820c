package btree

import "fmt"

// treeHeight computes a node's height by descending its leftmost spine:
// 0 for a leaf, 1 + the height of child[0] for an internal node. Every
// internal node has uniform leaf depth, so any spine gives the same
// answer; height is recomputed rather than cached.
func treeHeight[T any](n treeNode[T]) int {
	h := 0
	cur := n
	for {
		inner, ok := cur.(*innerNode[T])
		if !ok {
			return h
		}
		if len(inner.children) == 0 {
			return h + 1
		}
		h++
		cur = inner.children[0]
	}
}

// Concat appends other's elements after t's, returning a new tree. Either
// argument may be empty.
func (t *Tree[T]) Concat(other *Tree[T]) (*Tree[T], error) {
	if t == nil || other == nil {
		return nil, fmt.Errorf("%w: nil tree", ErrInvalidConfig)
	}
	if t.IsEmpty() {
		return other.Clone(), nil
	}
	if other.IsEmpty() {
		return t.Clone(), nil
	}
	cfg := t.cfg

	left := treeNode[T](cloneInner(t.root))
	left.(*innerNode[T]).root = false
	right := treeNode[T](cloneInner(other.root))
	right.(*innerNode[T]).root = false

	leftH := treeHeight[T](left)
	rightH := treeHeight[T](right)
	for leftH < rightH {
		left = makeInner[T](left)
		leftH++
	}
	for rightH < leftH {
		right = makeInner[T](right)
		rightH++
	}

	merged := concatEqualHeight[T](cfg, left, right, leftH)
	newRoot, ok := merged.(*innerNode[T])
	if !ok {
		newRoot = makeInner[T](merged)
	}
	newRoot.root = true

	newRoot = rebalanceRoot(cfg, newRoot, dirLeft)
	newRoot = rebalanceRoot(cfg, newRoot, dirRight)

	return &Tree[T]{cfg: cfg, root: newRoot}, nil
}

// concatEqualHeight merges two nodes of equal height: absorb one side into
// the other when they fit within a single node, or rebalance toward the
// occupancy floor and wrap both as children of a new node one level taller.
func concatEqualHeight[T any](cfg Config, left, right treeNode[T], h int) treeNode[T] {
	if h == 0 {
		ll := left.(*leafNode[T])
		rl := right.(*leafNode[T])
		if len(ll.items)+len(rl.items) <= cfg.maxChildren() {
			return makeLeaf(append(append([]T(nil), ll.items...), rl.items...))
		}
		balanceLeafPair(cfg, ll, rl)
		return makeInner[T](ll, rl)
	}

	li := left.(*innerNode[T])
	ri := right.(*innerNode[T])
	if len(li.children)+len(ri.children) <= cfg.maxChildren() {
		children := append(append([]treeNode[T](nil), li.children...), ri.children...)
		return makeInner(children...)
	}
	balanceInnerPair(cfg, li, ri)
	return makeInner[T](li, ri)
}

// balanceLeafPair shifts elements from the longer leaf to the shorter one,
// taking from the inner edge (the edge facing the other leaf), until both
// reach at least the occupancy floor.
func balanceLeafPair[T any](cfg Config, left, right *leafNode[T]) {
	min := cfg.minChildren()
	switch {
	case len(left.items) < min:
		need := min - len(left.items)
		moved := append([]T(nil), right.items[:need]...)
		left.items = append(left.items, moved...)
		right.items = right.items[need:]
	case len(right.items) < min:
		need := min - len(right.items)
		n := len(left.items)
		moved := append([]T(nil), left.items[n-need:]...)
		right.items = append(append([]T(nil), moved...), right.items...)
		left.items = left.items[:n-need]
	}
}

// balanceInnerPair is balanceLeafPair's counterpart for internal nodes.
func balanceInnerPair[T any](cfg Config, left, right *innerNode[T]) {
	min := cfg.minChildren()
	switch {
	case len(left.children) < min:
		need := min - len(left.children)
		moved := append([]treeNode[T](nil), right.children[:need]...)
		left.children = append(left.children, moved...)
		right.children = right.children[need:]
	case len(right.children) < min:
		need := min - len(right.children)
		n := len(left.children)
		moved := append([]treeNode[T](nil), left.children[n-need:]...)
		right.children = append(append([]treeNode[T](nil), moved...), right.children...)
		left.children = left.children[:n-need]
	}
	recomputeLength(left)
	recomputeLength(right)
}
