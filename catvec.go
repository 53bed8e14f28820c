package catvec

import (
	"fmt"
	"io"

	"github.com/mel-project/catvec/btree"
)

// Config configures a CatVec's underlying tree fanout.
type Config = btree.Config

// DefaultOrder is the fanout used when Config.Order is left zero.
const DefaultOrder = btree.DefaultOrder

// CatVec is a persistent, relative-indexed sequence of T.
type CatVec[T any] struct {
	inner *btree.Tree[T]
}

// New creates an empty CatVec.
func New[T any](cfg Config) (*CatVec[T], error) {
	tree, err := btree.New[T](cfg)
	if err != nil {
		return nil, err
	}
	return &CatVec[T]{inner: tree}, nil
}

// From builds a CatVec from a dense slice.
func From[T any](cfg Config, values []T) (*CatVec[T], error) {
	v, err := New[T](cfg)
	if err != nil {
		return nil, err
	}
	for i, value := range values {
		v, err = v.InsertAt(i, value)
		if err != nil {
			return nil, err
		}
	}
	return v, nil
}

// Len returns the number of elements.
func (v *CatVec[T]) Len() int {
	if v == nil {
		return 0
	}
	return v.inner.Len()
}

// IsEmpty reports whether the sequence has no elements.
func (v *CatVec[T]) IsEmpty() bool {
	return v.Len() == 0
}

// Clone returns an O(1) structural-sharing clone.
func (v *CatVec[T]) Clone() *CatVec[T] {
	if v == nil {
		return nil
	}
	return &CatVec[T]{inner: v.inner.Clone()}
}

// Get returns the element at position i.
func (v *CatVec[T]) Get(i int) (T, bool) {
	var zero T
	if v == nil {
		return zero, false
	}
	return v.inner.Get(i)
}

// GetMut returns a CatVec in which the path to position i has been made
// uniquely owned, together with a pointer to the element so the caller may
// write through it.
func (v *CatVec[T]) GetMut(i int) (*CatVec[T], *T, error) {
	if v == nil {
		return nil, nil, fmt.Errorf("%w: nil catvec", ErrInvalidConfig)
	}
	tree, ptr, err := v.inner.GetMut(i)
	if err != nil {
		return nil, nil, translate(err)
	}
	return &CatVec[T]{inner: tree}, ptr, nil
}

// InsertAt inserts value at position key.
func (v *CatVec[T]) InsertAt(key int, value T) (*CatVec[T], error) {
	if v == nil {
		return nil, fmt.Errorf("%w: nil catvec", ErrInvalidConfig)
	}
	tree, err := v.inner.InsertAt(key, value)
	if err != nil {
		return nil, translate(err)
	}
	return &CatVec[T]{inner: tree}, nil
}

// PushBack appends value to the end of the sequence.
func (v *CatVec[T]) PushBack(value T) (*CatVec[T], error) {
	return v.InsertAt(v.Len(), value)
}

// DropHead removes the first k elements.
func (v *CatVec[T]) DropHead(k int) (*CatVec[T], error) {
	if v == nil {
		return nil, fmt.Errorf("%w: nil catvec", ErrInvalidConfig)
	}
	tree, err := v.inner.DropHead(k)
	if err != nil {
		return nil, translate(err)
	}
	return &CatVec[T]{inner: tree}, nil
}

// TakeHead keeps only the first k elements.
func (v *CatVec[T]) TakeHead(k int) (*CatVec[T], error) {
	if v == nil {
		return nil, fmt.Errorf("%w: nil catvec", ErrInvalidConfig)
	}
	tree, err := v.inner.TakeHead(k)
	if err != nil {
		return nil, translate(err)
	}
	return &CatVec[T]{inner: tree}, nil
}

// SliceInto retains only the half-open range [lo, hi).
func (v *CatVec[T]) SliceInto(lo, hi int) (*CatVec[T], error) {
	if v == nil {
		return nil, fmt.Errorf("%w: nil catvec", ErrInvalidConfig)
	}
	tree, err := v.inner.SliceInto(lo, hi)
	if err != nil {
		return nil, translate(err)
	}
	return &CatVec[T]{inner: tree}, nil
}

// Append concatenates other after v, returning a new CatVec.
func (v *CatVec[T]) Append(other *CatVec[T]) (*CatVec[T], error) {
	if v == nil || other == nil {
		return nil, fmt.Errorf("%w: nil catvec", ErrInvalidConfig)
	}
	tree, err := v.inner.Concat(other.inner)
	if err != nil {
		return nil, translate(err)
	}
	return &CatVec[T]{inner: tree}, nil
}

// ToSlice materializes the sequence as a dense slice.
func (v *CatVec[T]) ToSlice() []T {
	if v == nil {
		return nil
	}
	return v.inner.ToSlice()
}

// Each walks every element in order, stopping early if fn returns false.
func (v *CatVec[T]) Each(fn func(item T) bool) {
	if v == nil {
		return
	}
	v.inner.Each(fn)
}

// CheckInvariants validates the underlying tree's structural invariants.
// Exposed unconditionally rather than gated to test builds.
func (v *CatVec[T]) CheckInvariants() error {
	if v == nil {
		return fmt.Errorf("%w: nil catvec", ErrInvalidConfig)
	}
	if err := v.inner.Check(); err != nil {
		tracer().Errorf("check invariants: %s", err.Error())
		return err
	}
	return nil
}

// Dot writes the underlying tree's structure to w in Graphviz DOT format,
// for diagnostic use only.
func (v *CatVec[T]) Dot(w io.Writer) {
	if v == nil {
		return
	}
	v.inner.Dot(w)
}

// Equal reports whether a and b hold the same elements in the same order.
func Equal[T comparable](a, b *CatVec[T]) bool {
	if a.Len() != b.Len() {
		return false
	}
	equal := true
	i := 0
	as := a.ToSlice()
	bs := b.ToSlice()
	for ; i < len(as); i++ {
		if as[i] != bs[i] {
			equal = false
			break
		}
	}
	return equal
}

func translate(err error) error {
	tracer().Debugf("operation failed: %s", err.Error())
	switch err {
	case btree.ErrIndexOutOfBounds:
		return ErrIndexOutOfBounds
	case btree.ErrInvalidRange:
		return ErrInvalidRange
	case btree.ErrInvalidConfig:
		return ErrInvalidConfig
	default:
		return err
	}
}
