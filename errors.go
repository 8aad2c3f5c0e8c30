package unrolled

import (
	"errors"
	"fmt"
)

var (
	ErrEmptyContainer    = errors.New("unrolled: access to an empty list")
	ErrInvalidCursor     = errors.New("unrolled: invalid cursor")
	ErrAllocationFailure = errors.New("unrolled: block allocation failed")
	ErrIndexOutOfRange   = errors.New("unrolled: index out of range")
	ErrInvalidOptions    = errors.New("unrolled: invalid options")

	ErrBlockLimit = errors.New("unrolled: block limit reached")
)

// emptyAccess panics for a Front/Back style call on an empty list.
func emptyAccess(op string) {
	panic(fmt.Errorf("%s: %w", op, ErrEmptyContainer))
}

func invalidCursor(op string) {
	panic(fmt.Errorf("%s: %w", op, ErrInvalidCursor))
}
