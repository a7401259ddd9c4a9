package executor

import (
	"errors"
	"fmt"
)

// ErrInterrupted is reported when an external signal terminated the
// running subprocess. The invocation halts and partial state is
// discarded.
var ErrInterrupted = errors.New("interrupted")

// StepFailedError is returned when a step's subprocess exits non-zero.
// The originating exit code is preserved so the calling environment can
// propagate it verbatim.
type StepFailedError struct {
	Target   string
	ExitCode int
}

// Error implements the error interface for StepFailedError.
func (e *StepFailedError) Error() string {
	return fmt.Sprintf("target %q failed with exit code %d", e.Target, e.ExitCode)
}
