package dag

import "fmt"

// UnknownTargetError is returned when an invocation names a target that
// does not exist in the graph. Nothing executes when it is returned.
type UnknownTargetError struct {
	Name string
}

// Error implements the error interface for UnknownTargetError.
func (e *UnknownTargetError) Error() string {
	return fmt.Sprintf("unknown target: %q", e.Name)
}
