package script

import (
	"errors"
	"fmt"
)

// Errors for script runs.
var (
	// ErrTimeout is returned when a run outlives its context.
	ErrTimeout = errors.New("script timed out")

	// ErrOutputLimit is returned when a script prints more than allowed.
	ErrOutputLimit = errors.New("script output limit exceeded")
)

// RunError reports a failed run.
type RunError struct {
	Phase string // compile or run
	Err   error
}

// Error implements the error interface.
func (e *RunError) Error() string {
	return fmt.Sprintf("%s: %v", e.Phase, e.Err)
}

// Unwrap returns the underlying error.
func (e *RunError) Unwrap() error {
	return e.Err
}
