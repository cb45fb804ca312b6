package collection

import (
	"github.com/go-leo/gox/slicex"
	"golang.org/x/exp/constraints"
	"golang.org/x/exp/slices"
)

// Map returns a new Collection holding fn applied to every item, in order.
func Map[T any, R any](c *Collection[T], fn func(item T) R) *Collection[R] {
	items := c.view()
	out := make([]R, len(items))
	for i, item := range items {
		out[i] = fn(item)
	}
	return wrap(out)
}

// Reduce folds the items from first to last into an accumulator starting at init.
func Reduce[T any, R any](c *Collection[T], init R, fn func(acc R, item T) R) R {
	acc := init
	for _, item := range c.view() {
		acc = fn(acc, item)
	}
	return acc
}

// GroupBy partitions the items by key. Items keep their relative order within a group.
func GroupBy[T any, K comparable](c *Collection[T], key func(item T) K) map[K]*Collection[T] {
	groups := make(map[K][]T)
	for _, item := range c.view() {
		k := key(item)
		groups[k] = append(groups[k], item)
	}
	out := make(map[K]*Collection[T], len(groups))
	for k, items := range groups {
		out[k] = wrap(items)
	}
	return out
}

// Sorted returns a new Collection with the items in ascending order.
func Sorted[T constraints.Ordered](c *Collection[T]) *Collection[T] {
	return c.SortBy(func(a, b T) bool { return a < b })
}

// Unique returns a new Collection keeping only the first occurrence of each item.
func Unique[T comparable](c *Collection[T]) *Collection[T] {
	items := c.view()
	seen := make(map[T]struct{}, len(items))
	out := make([]T, 0, len(items))
	for _, item := range items {
		if _, ok := seen[item]; ok {
			continue
		}
		seen[item] = struct{}{}
		out = append(out, item)
	}
	return wrap(out)
}

// IndexesOf returns the positions of every item equal to v.
func IndexesOf[T comparable](c *Collection[T], v T) []int {
	indexes := slicex.Indexes(c.view(), v)
	if indexes == nil {
		return []int{}
	}
	return indexes
}

func Contains[T comparable](c *Collection[T], v T) bool {
	return slices.Index(c.view(), v) >= 0
}

// Equal reports whether a and b hold equal items in the same order.
func Equal[T comparable](a, b *Collection[T]) bool {
	return slices.Equal(a.view(), b.view())
}
