package collection

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidJSON data is not a JSON array of the element type
	ErrInvalidJSON = errors.New("invalid json")

	// ErrNilCollection decoding into a nil *Collection
	ErrNilCollection = errors.New("nil collection")
)

// Error records the operation that failed and why.
type Error struct {
	Op  string
	Err error
}

func (e *Error) Error() string {
	return fmt.Sprintf("collection: %s: %v", e.Op, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}
