package ds

import (
	"fmt"
)

type (
	// ErrUnreachableCode is returned from the default arm of a switch over a
	// closed set of types.
	ErrUnreachableCode struct {
		Caller string
		Value  any
	}
)

func (r ErrUnreachableCode) Error() string {
	return fmt.Sprintf("%s: unreachable code for %T", r.Caller, r.Value)
}
