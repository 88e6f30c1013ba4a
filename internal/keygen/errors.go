package keygen

import (
	"errors"
)

var (
	// ErrExhausted signals that a one-shot cursor has yielded everything
	// it holds. It is a terminal condition, not a failure.
	ErrExhausted = errors.New("no more items")

	// ErrUUIDVersion is returned for UUID versions outside 1 through 5.
	ErrUUIDVersion = errors.New("uuid version must be between 1 and 5")
)
