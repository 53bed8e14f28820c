package btree

import "errors"

var (
	// ErrInvalidConfig signals an invalid tree configuration.
	ErrInvalidConfig = errors.New("btree: invalid configuration")
	// ErrIndexOutOfBounds signals an invalid positional index.
	ErrIndexOutOfBounds = errors.New("btree: index out of bounds")
	// ErrInvalidRange signals that a slice range violates lo <= hi <= len.
	ErrInvalidRange = errors.New("btree: invalid range")
	// ErrInvariantViolation signals that Check found a structural defect.
	ErrInvariantViolation = errors.New("btree: invariant violation")
)
