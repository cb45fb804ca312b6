package collection

// Enumerable is the read and narrowing surface of a Collection.
//
// Accept Enumerable in your own functions so that callers can pass any implementation
// without depending on the concrete *Collection type.
type Enumerable[T any] interface {
	// All returns a copy of every item as a plain slice.
	All() []T

	// Len returns the number of items.
	Len() int

	// Count is an alias for Len.
	Count() int

	// IsEmpty reports whether there are no items.
	IsEmpty() bool

	// IsNotEmpty reports whether there is at least one item.
	IsNotEmpty() bool

	// Each calls fn(item, index) for every item in order.
	Each(fn func(item T, index int))

	// Filter returns a new collection containing only items for which predicate returns true.
	Filter(predicate Predicate[T]) *Collection[T]

	// Reject returns a new collection with the items for which predicate returns true removed.
	Reject(predicate Predicate[T]) *Collection[T]

	// First returns the first item, optionally the first matching predicates[0].
	// Returns the zero value and false when there is no such item.
	First(predicates ...Predicate[T]) (T, bool)

	// Last returns the last item, optionally the last matching predicates[0].
	// Returns the zero value and false when there is no such item.
	Last(predicates ...Predicate[T]) (T, bool)
}
