package accessor

import (
	"fmt"
)

// Error is returned by Set when a record refuses a member: the field does
// not exist, is not public, or cannot hold the value.
type Error struct {
	Path string // path up to and including the refused segment
	Err  error
}

func (e *Error) Error() string {
	return fmt.Sprintf("cannot set %q: %v", e.Path, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}
