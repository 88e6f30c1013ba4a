package wrapper

import (
	"errors"
)

var (
	// ErrSeparatorIncompatible is returned when the raw key already
	// contains the separator, so wrapping would be ambiguous.
	ErrSeparatorIncompatible = errors.New("separator collides with key material")

	// ErrUnexpectedCharacter is returned when the wrapped key contains a
	// character outside the resolved charset and separator.
	ErrUnexpectedCharacter = errors.New("unexpected character in generated key")
)
