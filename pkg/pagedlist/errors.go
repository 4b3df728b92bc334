package pagedlist

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidArgument is returned when a page cannot be constructed from the
	// supplied page number, page size, total item count or subset.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrIndexOutOfRange is returned by At when the index falls outside the subset.
	ErrIndexOutOfRange = errors.New("index out of range")
)

func invalidArgument(name string, value int, reason string) error {
	return fmt.Errorf("%s = %d: %s: %w", name, value, reason, ErrInvalidArgument)
}
