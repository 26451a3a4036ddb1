package lbytes

import (
	"fmt"
)

type (
	// ErrOutOfBounds is returned when a read or a seek would go past the end of the buffer.
	ErrOutOfBounds struct {
		Offset    int64
		Want      int64
		Remaining int64
	}
	// ErrMalformedText is returned when a text run is not valid UTF-8
	// or does not follow the expected grammar.
	ErrMalformedText struct {
		Offset int64
		Reason string
	}
)

func (r ErrOutOfBounds) Error() string {
	return fmt.Sprintf(
		"out of bounds at offset %d: want %d bytes, %d remaining",
		r.Offset, r.Want, r.Remaining,
	)
}

func (r ErrMalformedText) Error() string {
	return fmt.Sprintf("malformed text at offset %d: %s", r.Offset, r.Reason)
}
