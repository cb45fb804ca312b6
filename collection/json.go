package collection

import (
	"fmt"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// MarshalJSON encodes the items as a JSON array. An empty Collection encodes as [].
func (c *Collection[T]) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.All())
}

// UnmarshalJSON replaces the items with the decoded JSON array. null decodes to an empty Collection.
// It is the only method that writes to its receiver and must not race with readers.
func (c *Collection[T]) UnmarshalJSON(data []byte) error {
	if c == nil {
		return &Error{Op: "unmarshal", Err: ErrNilCollection}
	}
	var items []T
	if err := json.Unmarshal(data, &items); err != nil {
		return &Error{Op: "unmarshal", Err: fmt.Errorf("%w: %w", ErrInvalidJSON, err)}
	}
	c.items = items
	return nil
}
