package request

import (
	"errors"
)

var (
	// ErrInvalidParameter is returned when a field fails its basic type
	// or arity constraints.
	ErrInvalidParameter = errors.New("invalid parameter")

	// ErrNonPositiveLength is returned for zero or negative lengths and
	// counts.
	ErrNonPositiveLength = errors.New("length must be a positive integer")

	// ErrCapacityExceeded is returned when a length or count exceeds the
	// platform integer capacity.
	ErrCapacityExceeded = errors.New("length exceeds maximum capacity")

	// ErrMutuallyExclusive is returned when two parameters that cannot
	// be combined are both set.
	ErrMutuallyExclusive = errors.New("parameters are mutually exclusive")

	// ErrEmptyCharset is returned when the exclusions leave no candidate
	// characters to draw from.
	ErrEmptyCharset = errors.New("exclusions leave an empty character set")

	// ErrUniqueCapacity is returned when unique-characters mode is
	// requested for a key longer than the candidate set.
	ErrUniqueCapacity = errors.New("key length exceeds unique character capacity")

	// ErrSeparatorLength is returned when the separator is longer than a
	// single character.
	ErrSeparatorLength = errors.New("separator must be a single character")

	// ErrSeparatorWhitespace is returned when the separator is a
	// whitespace character other than a plain space.
	ErrSeparatorWhitespace = errors.New("separator must not be whitespace other than a plain space")

	// ErrSeparatorWidth is returned when the separator widths are not
	// consistent with the requested key length.
	ErrSeparatorWidth = errors.New("separator width inconsistent with key length")

	// ErrMissingWordCount is returned when word mode is requested
	// without a word count.
	ErrMissingWordCount = errors.New("word mode requires a word count")
)
