package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidSelection is returned by a booking attempt made with no category selected.
	ErrInvalidSelection = errors.New("invalid selection: no category selected")
	ErrIndexOutOfRange  = errors.New("category index out of range")
	ErrSessionNotFound  = errors.New("session not found")
)

// IndexOutOfRangeError reports a lookup outside the registered categories.
type IndexOutOfRangeError struct {
	Index int
	Count int
}

func (e *IndexOutOfRangeError) Error() string {
	return fmt.Sprintf("category index %d out of range [0, %d)", e.Index, e.Count)
}

func (e *IndexOutOfRangeError) Is(target error) bool {
	return target == ErrIndexOutOfRange
}
