package collectionpb

import (
	"errors"
	"fmt"
)

var (
	// ErrUnsupportedValue item cannot be represented as a structpb.Value
	ErrUnsupportedValue = errors.New("unsupported value")

	// ErrNotNumber item is not a number value
	ErrNotNumber = errors.New("not a number")
)

// IndexError reports the position of the item that failed to convert.
type IndexError struct {
	Index int
	Kind  error
	err   error
}

func (e IndexError) Error() string {
	return fmt.Sprintf("collectionpb: %v at index %d, %v", e.Kind, e.Index, e.err)
}

func (e IndexError) Unwrap() []error {
	return []error{e.Kind, e.err}
}

func newIndexError(kind error, index int, err error) error {
	return IndexError{Index: index, Kind: kind, err: err}
}
