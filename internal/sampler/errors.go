package sampler

import (
	"errors"
)

// ErrCharsetSize is returned when the candidate set is empty or larger
// than a byte can index.
var ErrCharsetSize = errors.New("candidate set size out of range")
