package workflow

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is matched by every *NotFoundError.
	ErrNotFound = errors.New("workflow not found")

	// ErrAlreadyRun is returned when an Action or Phase that already left
	// the pending state is run again.
	ErrAlreadyRun = errors.New("already run")

	// ErrNestedRun is returned when action logic tries to run the manager
	// or workflow that is currently running it.
	ErrNestedRun = errors.New("nested run")
)

// NotFoundError is returned by Manager.Run for an unregistered name.
type NotFoundError struct {
	Name string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("workflow %q not found", e.Name)
}

func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

// ArgError describes a bound argument that is missing or cannot be
// converted to the requested type.
type ArgError struct {
	Key string
	Err error
}

func (e *ArgError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("missing required argument %q", e.Key)
	}
	return fmt.Sprintf("argument %q: %v", e.Key, e.Err)
}

func (e *ArgError) Unwrap() error { return e.Err }
