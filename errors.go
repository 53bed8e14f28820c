package catvec

import "errors"

var (
	// ErrInvalidConfig signals an invalid CatVec configuration.
	ErrInvalidConfig = errors.New("catvec: invalid configuration")
	// ErrIndexOutOfBounds signals an invalid positional index.
	ErrIndexOutOfBounds = errors.New("catvec: index out of bounds")
	// ErrInvalidRange signals that a slice range violates lo <= hi <= len.
	ErrInvalidRange = errors.New("catvec: invalid range")
)
