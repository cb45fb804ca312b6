package specification

import "context"

// Specification interface.
// Use New or FromPredicate for creating specifications, and
// compose them with the combinator methods.
type Specification[T any] interface {

	// IsSatisfiedBy check if t is satisfied by the specification.
	IsSatisfiedBy(ctx context.Context, t T) bool

	// And create a new specification that is the AND operation of the current specification and
	// another specification.
	And(another Specification[T]) Specification[T]

	// Or create a new specification that is the OR operation of the current specification and
	// another specification.
	Or(another Specification[T]) Specification[T]

	// Not create a new specification that is the NOT operation of the current specification.
	Not() Specification[T]

	// Conjunction create a new specification that is satisfied when the current specification
	// and all others are satisfied.
	Conjunction(others ...Specification[T]) Specification[T]

	// Disjunction create a new specification that is satisfied when the current specification
	// or any of others is satisfied.
	Disjunction(others ...Specification[T]) Specification[T]
}

// New returns a Specification backed by predicate.
func New[T any](predicate func(ctx context.Context, t T) bool) Specification[T] {
	spec := &base[T]{Predicate: predicate}
	spec.combinator = combinator[T]{self: spec}
	return spec
}

// FromPredicate returns a Specification backed by a context-free predicate.
func FromPredicate[T any](predicate func(t T) bool) Specification[T] {
	return New[T](func(_ context.Context, t T) bool {
		return predicate(t)
	})
}

// True returns a Specification satisfied by every value.
func True[T any]() Specification[T] {
	return Conjunction[T]()
}

// False returns a Specification satisfied by no value.
func False[T any]() Specification[T] {
	return Disjunction[T]()
}

func And[T any](left Specification[T], right Specification[T]) Specification[T] {
	spec := &and[T]{Left: left, Right: right}
	spec.combinator = combinator[T]{self: spec}
	return spec
}

func Not[T any](spec Specification[T]) Specification[T] {
	n := &not[T]{Spec: spec}
	n.combinator = combinator[T]{self: n}
	return n
}

func Or[T any](left Specification[T], right Specification[T]) Specification[T] {
	spec := &or[T]{Left: left, Right: right}
	spec.combinator = combinator[T]{self: spec}
	return spec
}

// Conjunction is satisfied when all specs are satisfied. An empty Conjunction is satisfied by everything.
func Conjunction[T any](specs ...Specification[T]) Specification[T] {
	spec := &conjunction[T]{Specs: specs}
	spec.combinator = combinator[T]{self: spec}
	return spec
}

// Disjunction is satisfied when any of specs is satisfied. An empty Disjunction is satisfied by nothing.
func Disjunction[T any](specs ...Specification[T]) Specification[T] {
	spec := &disjunction[T]{Specs: specs}
	spec.combinator = combinator[T]{self: spec}
	return spec
}

// Predicate adapts spec into a plain predicate bound to ctx.
func Predicate[T any](ctx context.Context, spec Specification[T]) func(t T) bool {
	return func(t T) bool {
		return spec.IsSatisfiedBy(ctx, t)
	}
}
