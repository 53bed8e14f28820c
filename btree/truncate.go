package btree

import "fmt"

// DropHead removes the first k elements. k == 0 is a no-op.
func (t *Tree[T]) DropHead(k int) (*Tree[T], error) {
	if t == nil {
		return nil, fmt.Errorf("%w: nil tree", ErrInvalidConfig)
	}
	if k < 0 || k > t.Len() {
		return nil, ErrIndexOutOfBounds
	}
	if k == 0 {
		return t, nil
	}
	cloned := t.Clone()
	newRoot := truncateNode[T](cloned.root, k, true).(*innerNode[T])
	cloned.root = rebalanceRoot(cloned.cfg, newRoot, dirLeft)
	return cloned, nil
}

// TakeHead keeps only the first k elements, dropping the rest. k == Len()
// is a no-op.
func (t *Tree[T]) TakeHead(k int) (*Tree[T], error) {
	if t == nil {
		return nil, fmt.Errorf("%w: nil tree", ErrInvalidConfig)
	}
	if k < 0 || k > t.Len() {
		return nil, ErrIndexOutOfBounds
	}
	if k == t.Len() {
		return t, nil
	}
	cloned := t.Clone()
	newRoot := truncateNode[T](cloned.root, k, false).(*innerNode[T])
	cloned.root = rebalanceRoot(cloned.cfg, newRoot, dirRight)
	return cloned, nil
}

// SliceInto retains only the half-open range [lo, hi), built from TakeHead
// followed by DropHead.
func (t *Tree[T]) SliceInto(lo, hi int) (*Tree[T], error) {
	if t == nil {
		return nil, fmt.Errorf("%w: nil tree", ErrInvalidConfig)
	}
	if lo < 0 || hi < lo || hi > t.Len() {
		return nil, ErrInvalidRange
	}
	taken, err := t.TakeHead(hi)
	if err != nil {
		return nil, err
	}
	return taken.DropHead(lo)
}

// truncateNode performs plain recursive truncation with no rebalancing: it
// deletes the out-of-range children and recurses into whichever boundary
// child straddles k. The occupancy fixup pass runs separately afterward,
// once, from the root.
func truncateNode[T any](n treeNode[T], k int, dropping bool) treeNode[T] {
	switch node := n.(type) {
	case *leafNode[T]:
		leaf := cloneLeaf(node)
		if dropping {
			leaf.items = leaf.items[k:]
		} else {
			leaf.items = leaf.items[:k]
		}
		return leaf

	case *innerNode[T]:
		inner := cloneInner(node)
		idx, offset := keyToIdxAndOffset(inner.children, k)
		if dropping {
			inner.children = inner.children[idx:]
			if len(inner.children) > 0 {
				inner.children[0] = truncateNode[T](inner.children[0], k-offset, true)
			}
		} else {
			inner.children = inner.children[:idx+1]
			last := len(inner.children) - 1
			inner.children[last] = truncateNode[T](inner.children[last], k-offset, false)
		}
		recomputeLength(inner)
		return inner
	}
	panic("btree: unknown node type")
}
