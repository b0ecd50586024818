package grouping

import (
	"errors"
	"fmt"
)

var (
	ErrEmptySelection  = errors.New("empty selection")
	ErrSegmentNotFound = errors.New("segment not found")
	ErrNotInGroup      = errors.New("segment not in group")
)

// EmptySelectionError is returned when an operation's target set is empty or
// matches nothing in the list.
type EmptySelectionError struct {
	Op string
}

func (e *EmptySelectionError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, ErrEmptySelection)
}

func (e *EmptySelectionError) Is(target error) bool {
	return target == ErrEmptySelection
}
