package btree

import "fmt"

// keyToIdxAndOffset resolves a position key to the child index that owns it
// and that child's starting offset. It always returns a valid index: when
// key lands past the last child's local range, it still returns the last
// child, so callers that have already bounds-checked key against the
// parent's total length never see keyToIdxAndOffset fail.
func keyToIdxAndOffset[T any](children []treeNode[T], key int) (idx, offset int) {
	offset = 0
	for i, child := range children {
		if key-offset < child.count() || i+1 == len(children) {
			return i, offset
		}
		offset += child.count()
	}
	panic("btree: keyToIdxAndOffset called with no children")
}

// InsertAt inserts v at position key, where 0 <= key <= Len(). Inserting at
// key == Len() appends.
func (t *Tree[T]) InsertAt(key int, v T) (*Tree[T], error) {
	if t == nil {
		return nil, fmt.Errorf("%w: nil tree", ErrInvalidConfig)
	}
	if key < 0 || key > t.Len() {
		return nil, ErrIndexOutOfBounds
	}
	cloned := t.Clone()
	cloned.root = insertRoot(cloned.cfg, cloned.root, key, v)
	return cloned, nil
}

// insertRoot implements the root-only case of the insert rule: when the
// root is full, a new level is interposed above it (the tree grows in
// height) and the insertion is retried against the now under-full root.
func insertRoot[T any](cfg Config, root *innerNode[T], key int, v T) *innerNode[T] {
	for {
		if len(root.children) < cfg.maxChildren() {
			clone := cloneInner(root)
			idx, offset := keyToIdxAndOffset(clone.children, key)
			updatedChild, split := insertNode(cfg, clone.children[idx], key-offset, v)
			clone.children[idx] = updatedChild
			if split != nil {
				clone.children = insertSliceAt(clone.children, idx+1, split)
			}
			recomputeLength(clone)
			return clone
		}
		demoted := cloneInner(root)
		demoted.root = false
		root = &innerNode[T]{length: root.length, children: []treeNode[T]{demoted}, root: true}
		tracer().Debugf("insert: root full at %d children, growing height", len(demoted.children))
	}
}

// insertNode implements the leaf and non-root-internal cases of the insert
// rule. It returns the updated node and, if the node had to split, the new
// right-hand sibling.
func insertNode[T any](cfg Config, n treeNode[T], key int, v T) (treeNode[T], treeNode[T]) {
	switch node := n.(type) {
	case *leafNode[T]:
		leaf := cloneLeaf(node)
		if len(leaf.items) < cfg.maxChildren() {
			leaf.items = insertSliceAt(leaf.items, key, v)
			return leaf, nil
		}
		m := len(leaf.items) / 2
		tracer().Debugf("insert: leaf full at %d items, splitting at %d", len(leaf.items), m)
		var left, right *leafNode[T]
		if key < m {
			left = makeLeaf(insertSliceAt(leaf.items[:m], key, v))
			right = makeLeaf(leaf.items[m:])
		} else {
			left = makeLeaf(leaf.items[:m])
			right = makeLeaf(insertSliceAt(leaf.items[m:], key-m, v))
		}
		return left, right

	case *innerNode[T]:
		assert(!node.root, "insertNode invoked on a root node; use insertRoot")
		clone := cloneInner(node)
		if len(clone.children) < cfg.maxChildren() {
			idx, offset := keyToIdxAndOffset(clone.children, key)
			updatedChild, split := insertNode(cfg, clone.children[idx], key-offset, v)
			clone.children[idx] = updatedChild
			if split != nil {
				clone.children = insertSliceAt(clone.children, idx+1, split)
			}
			recomputeLength(clone)
			return clone, nil
		}
		m := len(clone.children) / 2
		tracer().Debugf("insert: internal node full at %d children, splitting at %d", len(clone.children), m)
		left := makeInner(append([]treeNode[T](nil), clone.children[:m]...)...)
		right := makeInner(append([]treeNode[T](nil), clone.children[m:]...)...)
		leftLen := left.length
		if key < leftLen {
			updated, _ := insertNode[T](cfg, left, key, v)
			left = updated.(*innerNode[T])
		} else {
			updated, _ := insertNode[T](cfg, right, key-leftLen, v)
			right = updated.(*innerNode[T])
		}
		return left, right
	}
	panic("btree: unknown node type")
}
