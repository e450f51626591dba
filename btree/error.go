package btree

import "errors"

var (
	ErrInvalidDegree = errors.New("invalid minimum degree")
	ErrKeyNotFound   = errors.New("key not found")
	ErrInvariant     = errors.New("b-tree invariant violated")
)
