package btree

import "fmt"

// Check validates the tree's structural invariants: bounded occupancy,
// consistent cached lengths, uniform leaf depth, a unique marked root, and
// canonical shape when empty. It is exported unconditionally rather than
// gated to test builds.
func (t *Tree[T]) Check() error {
	if t == nil {
		return fmt.Errorf("%w: nil tree", ErrInvalidConfig)
	}
	if t.root == nil {
		err := fmt.Errorf("%w: tree has no root", ErrInvariantViolation)
		tracer().Errorf("check: %s", err.Error())
		return err
	}
	if !t.root.root {
		err := fmt.Errorf("%w: root node not marked root", ErrInvariantViolation)
		tracer().Errorf("check: %s", err.Error())
		return err
	}
	if len(t.root.children) == 0 {
		err := fmt.Errorf("%w: root has no children", ErrInvariantViolation)
		tracer().Errorf("check: %s", err.Error())
		return err
	}
	if len(t.root.children) > t.cfg.maxChildren() {
		err := fmt.Errorf("%w: root exceeds max children", ErrInvariantViolation)
		tracer().Errorf("check: %s", err.Error())
		return err
	}
	if t.Len() == 0 {
		sole := t.root.children[0]
		if len(t.root.children) != 1 || !sole.isLeaf() || sole.count() != 0 {
			err := fmt.Errorf("%w: empty tree is not in canonical form", ErrInvariantViolation)
			tracer().Errorf("check: %s", err.Error())
			return err
		}
	}
	if _, err := checkNode[T](t.cfg, t.root, true); err != nil {
		tracer().Errorf("check: %s", err.Error())
		return err
	}
	return nil
}

// checkNode walks n verifying occupancy and root-flag placement, and
// returns the uniform leaf depth of its subtree.
func checkNode[T any](cfg Config, n treeNode[T], isRoot bool) (leafDepth int, err error) {
	switch v := n.(type) {
	case *leafNode[T]:
		if len(v.items) > cfg.maxChildren() {
			return 0, fmt.Errorf("%w: leaf holds %d items, exceeds order %d", ErrInvariantViolation, len(v.items), cfg.maxChildren())
		}
		if !isRoot && len(v.items) < cfg.minChildren() {
			return 0, fmt.Errorf("%w: leaf underfull: %d items, floor is %d", ErrInvariantViolation, len(v.items), cfg.minChildren())
		}
		return 0, nil

	case *innerNode[T]:
		if v.root != isRoot {
			return 0, fmt.Errorf("%w: root flag inconsistent with position", ErrInvariantViolation)
		}
		if len(v.children) > cfg.maxChildren() {
			return 0, fmt.Errorf("%w: internal node holds %d children, exceeds order %d", ErrInvariantViolation, len(v.children), cfg.maxChildren())
		}
		if !isRoot && len(v.children) < cfg.minChildren() {
			return 0, fmt.Errorf("%w: internal node underfull: %d children, floor is %d", ErrInvariantViolation, len(v.children), cfg.minChildren())
		}
		sum := 0
		leafDepth = -1
		for i, c := range v.children {
			// A leaf that is the root's sole child is exempt from the floor,
			// like the root itself (this covers the canonical empty tree).
			soleRootLeaf := isRoot && len(v.children) == 1 && c.isLeaf()
			d, cErr := checkNode[T](cfg, c, soleRootLeaf)
			if cErr != nil {
				return 0, cErr
			}
			sum += c.count()
			if i == 0 {
				leafDepth = d
			} else if d != leafDepth {
				return 0, fmt.Errorf("%w: non-uniform leaf depth", ErrInvariantViolation)
			}
		}
		if sum != v.length {
			return 0, fmt.Errorf("%w: cached length %d does not match actual %d", ErrInvariantViolation, v.length, sum)
		}
		return leafDepth + 1, nil
	}
	panic("btree: unknown node type")
}
