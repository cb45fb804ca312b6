package collection

import (
	"sort"

	"github.com/go-leo/gox/slicex"
	"golang.org/x/exp/slices"
)

// Each calls fn(item, index) for every item in order.
func (c *Collection[T]) Each(fn func(item T, index int)) {
	for i, item := range c.view() {
		fn(item, i)
	}
}

// Reject returns a new Collection without the items for which predicate returns true.
func (c *Collection[T]) Reject(predicate Predicate[T]) *Collection[T] {
	items := slices.Clone(c.view())
	indexes := slicex.IndexesFunc(items, (func(T) bool)(predicate))
	if len(indexes) == 0 {
		return wrap(items)
	}
	return wrap(slicex.DeleteAll(items, indexes...))
}

func (c *Collection[T]) First(predicates ...Predicate[T]) (T, bool) {
	items := c.view()
	for i := 0; i < len(items); i++ {
		if len(predicates) == 0 || predicates[0](items[i]) {
			return items[i], true
		}
	}
	var zero T
	return zero, false
}

func (c *Collection[T]) Last(predicates ...Predicate[T]) (T, bool) {
	items := c.view()
	for i := len(items) - 1; i >= 0; i-- {
		if len(predicates) == 0 || predicates[0](items[i]) {
			return items[i], true
		}
	}
	var zero T
	return zero, false
}

// Any reports whether predicate returns true for at least one item.
func (c *Collection[T]) Any(predicate Predicate[T]) bool {
	return slices.IndexFunc(c.view(), (func(T) bool)(predicate)) >= 0
}

// Every reports whether predicate returns true for all items. It is true for an empty Collection.
func (c *Collection[T]) Every(predicate Predicate[T]) bool {
	for _, item := range c.view() {
		if !predicate(item) {
			return false
		}
	}
	return true
}

// CountBy returns the number of items for which predicate returns true.
func (c *Collection[T]) CountBy(predicate Predicate[T]) int {
	n := 0
	for _, item := range c.view() {
		if predicate(item) {
			n++
		}
	}
	return n
}

// Take returns the first n items. A negative n is treated as 0.
func (c *Collection[T]) Take(n int) *Collection[T] {
	items := c.view()
	return New(items[:clamp(n, len(items))])
}

// Skip returns all but the first n items. A negative n is treated as 0.
func (c *Collection[T]) Skip(n int) *Collection[T] {
	items := c.view()
	return New(items[clamp(n, len(items)):])
}

// Append returns a new Collection with items added after the existing ones.
func (c *Collection[T]) Append(items ...T) *Collection[T] {
	out := make([]T, 0, c.Len()+len(items))
	out = append(out, c.view()...)
	return wrap(append(out, items...))
}

// Prepend returns a new Collection with items added before the existing ones.
func (c *Collection[T]) Prepend(items ...T) *Collection[T] {
	out := make([]T, 0, c.Len()+len(items))
	out = append(out, items...)
	return wrap(append(out, c.view()...))
}

// SortBy returns a new Collection sorted by less. Equal items keep their relative order.
func (c *Collection[T]) SortBy(less func(a, b T) bool) *Collection[T] {
	items := slices.Clone(c.view())
	sort.SliceStable(items, func(i, j int) bool {
		return less(items[i], items[j])
	})
	return wrap(items)
}

// Chunk splits the items into consecutive collections of at most size items.
// A size <= 0 yields a single chunk with every item.
func (c *Collection[T]) Chunk(size int) []*Collection[T] {
	items := c.view()
	if len(items) == 0 {
		return []*Collection[T]{}
	}
	if size <= 0 {
		size = len(items)
	}
	chunks := make([]*Collection[T], 0, (len(items)+size-1)/size)
	for i := 0; i < len(items); i += size {
		chunks = append(chunks, New(items[i:min(i+size, len(items))]))
	}
	return chunks
}

func clamp(n, length int) int {
	if n < 0 {
		return 0
	}
	if n > length {
		return length
	}
	return n
}
