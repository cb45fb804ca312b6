// Package collectionpb converts collections to and from protobuf ListValue messages.
package collectionpb

import (
	"fmt"

	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/zerofoolcoder/collectionsjs/collection"
)

// Encode converts every item with structpb.NewValue, preserving order.
func Encode[T any](c *collection.Collection[T]) (*structpb.ListValue, error) {
	items := c.All()
	values := make([]*structpb.Value, len(items))
	for i, item := range items {
		v, err := structpb.NewValue(item)
		if err != nil {
			return nil, newIndexError(ErrUnsupportedValue, i, err)
		}
		values[i] = v
	}
	return &structpb.ListValue{Values: values}, nil
}

// Decode returns the ListValue items as Go values, see structpb.Value.AsInterface.
func Decode(lv *structpb.ListValue) *collection.Collection[any] {
	if lv == nil {
		return collection.Empty[any]()
	}
	return collection.New(lv.AsSlice())
}

// DecodeNumbers decodes a ListValue holding only numbers.
func DecodeNumbers(lv *structpb.ListValue) (*collection.Collection[float64], error) {
	numbers := make([]float64, 0, len(lv.GetValues()))
	for i, v := range lv.GetValues() {
		n, ok := v.GetKind().(*structpb.Value_NumberValue)
		if !ok {
			return nil, newIndexError(ErrNotNumber, i, fmt.Errorf("got %T", v.GetKind()))
		}
		numbers = append(numbers, n.NumberValue)
	}
	return collection.New(numbers), nil
}

// Marshal encodes c into the protobuf wire format of a ListValue.
func Marshal[T any](c *collection.Collection[T]) ([]byte, error) {
	lv, err := Encode(c)
	if err != nil {
		return nil, err
	}
	return proto.Marshal(lv)
}

// Unmarshal decodes data produced by Marshal.
func Unmarshal(data []byte) (*collection.Collection[any], error) {
	lv := &structpb.ListValue{}
	if err := proto.Unmarshal(data, lv); err != nil {
		return nil, fmt.Errorf("collectionpb: %w", err)
	}
	return Decode(lv), nil
}
