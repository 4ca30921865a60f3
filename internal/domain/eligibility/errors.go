package eligibility

import "errors"

// Sentinel kinds for this package.
var (
	ErrUnknownSortKey = errors.New("unknown sort key")
)
