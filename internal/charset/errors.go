package charset

import (
	"errors"
)

// ErrUnknownProfile is returned when a profile name or index is not part
// of the fixed catalog.
var ErrUnknownProfile = errors.New("unknown exclusion profile")
