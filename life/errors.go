package life

import "github.com/pkg/errors"

// Sentinel errors returned by grid and world operations. Call sites wrap
// these with coordinate detail; callers classify them with errors.Cause.
var (
	ErrNegativeDimensions = errors.New("grid dimensions must be non-negative")
	ErrOutOfRange         = errors.New("coordinate outside grid bounds")
	ErrInvalidDimensions  = errors.New("world state buffers have mismatched dimensions")
	ErrNegativeSteps      = errors.New("cannot advance by a negative number of steps")
)
