package btree

// cloneLeaf makes a shallow, independently-owned copy of a leaf's element
// array. This is the copy-on-write step for leaves.
func cloneLeaf[T any](leaf *leafNode[T]) *leafNode[T] {
	return &leafNode[T]{items: append([]T(nil), leaf.items...)}
}

// cloneInner makes a shallow, independently-owned copy of an internal node's
// child list. The children themselves are shared (plain pointer copy) until
// one of them is in turn cloned on a further descent; this is what makes
// Clone O(1) and a mutation touch only the nodes on its path.
func cloneInner[T any](inner *innerNode[T]) *innerNode[T] {
	return &innerNode[T]{
		length:   inner.length,
		children: append([]treeNode[T](nil), inner.children...),
		root:     inner.root,
	}
}

func makeLeaf[T any](items []T) *leafNode[T] {
	return &leafNode[T]{items: append([]T(nil), items...)}
}

func makeInner[T any](children ...treeNode[T]) *innerNode[T] {
	inner := &innerNode[T]{children: append([]treeNode[T](nil), children...)}
	recomputeLength(inner)
	return inner
}

func recomputeLength[T any](inner *innerNode[T]) {
	total := 0
	for _, child := range inner.children {
		total += child.count()
	}
	inner.length = total
}

// insertSliceAt inserts values into src at idx and returns a new slice.
func insertSliceAt[T any](src []T, idx int, values ...T) []T {
	assert(idx >= 0 && idx <= len(src), "insertSliceAt index out of range")
	out := make([]T, 0, len(src)+len(values))
	out = append(out, src[:idx]...)
	out = append(out, values...)
	out = append(out, src[idx:]...)
	return out
}

// removeSliceRange removes the half-open interval [from,to) from src.
func removeSliceRange[T any](src []T, from, to int) []T {
	assert(from >= 0 && from <= to && to <= len(src), "removeSliceRange bounds invalid")
	out := make([]T, 0, len(src)-(to-from))
	out = append(out, src[:from]...)
	out = append(out, src[to:]...)
	return out
}
