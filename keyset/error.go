package keyset

import "errors"

var (
	ErrUnsorted = errors.New("keys must be in strictly ascending order")
	ErrCorrupt  = errors.New("corrupt key set")
)
