// Package collection provides Collection, an ordered, value-semantic wrapper around a slice.
//
// Every transformation returns a new Collection over a freshly allocated backing slice, so a
// Collection never changes after construction and may be shared freely between goroutines.
package collection

import (
	"context"
	"fmt"

	"golang.org/x/exp/slices"

	"github.com/zerofoolcoder/collectionsjs/specification"
)

// Predicate reports whether item should be selected.
type Predicate[T any] func(item T) bool

var _ Enumerable[int] = (*Collection[int])(nil)

// Collection is an ordered sequence of T. The zero value and a nil *Collection are empty.
type Collection[T any] struct {
	items []T
}

// New returns a Collection holding a copy of items, preserving order and values.
func New[T any](items []T) *Collection[T] {
	return &Collection[T]{items: slices.Clone(items)}
}

// Of returns a Collection holding items.
func Of[T any](items ...T) *Collection[T] {
	return New(items)
}

// Empty returns a Collection with no items.
func Empty[T any]() *Collection[T] {
	return &Collection[T]{}
}

// wrap takes ownership of items without copying.
func wrap[T any](items []T) *Collection[T] {
	return &Collection[T]{items: items}
}

// All returns the items in order. The returned slice is a copy and never nil.
func (c *Collection[T]) All() []T {
	out := make([]T, c.Len())
	if c != nil {
		copy(out, c.items)
	}
	return out
}

// ToSlice is an alias for All.
func (c *Collection[T]) ToSlice() []T {
	return c.All()
}

// Filter returns a new Collection holding the items for which predicate returns true, in their
// original order. The predicate is called once per item, from first to last.
func (c *Collection[T]) Filter(predicate Predicate[T]) *Collection[T] {
	out := make([]T, 0, c.Len())
	for _, item := range c.view() {
		if predicate(item) {
			out = append(out, item)
		}
	}
	return wrap(out)
}

// Where is Filter driven by a specification evaluated with ctx.
func (c *Collection[T]) Where(ctx context.Context, spec specification.Specification[T]) *Collection[T] {
	return c.Filter(specification.Predicate(ctx, spec))
}

func (c *Collection[T]) Len() int {
	if c == nil {
		return 0
	}
	return len(c.items)
}

// Count is an alias for Len.
func (c *Collection[T]) Count() int {
	return c.Len()
}

func (c *Collection[T]) IsEmpty() bool {
	return c.Len() == 0
}

func (c *Collection[T]) IsNotEmpty() bool {
	return c.Len() > 0
}

// Clone returns a Collection with the same items.
func (c *Collection[T]) Clone() *Collection[T] {
	return New(c.view())
}

func (c *Collection[T]) String() string {
	return fmt.Sprint(c.view())
}

// view exposes the backing slice for reading only.
func (c *Collection[T]) view() []T {
	if c == nil {
		return nil
	}
	return c.items
}
