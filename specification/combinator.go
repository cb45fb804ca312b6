package specification

// combinator implements the composition methods on behalf of the specification that embeds it.
type combinator[T any] struct {
	self Specification[T]
}

func (c combinator[T]) And(another Specification[T]) Specification[T] {
	return And[T](c.self, another)
}

func (c combinator[T]) Or(another Specification[T]) Specification[T] {
	return Or[T](c.self, another)
}

func (c combinator[T]) Not() Specification[T] {
	return Not[T](c.self)
}

func (c combinator[T]) Conjunction(others ...Specification[T]) Specification[T] {
	return Conjunction[T](append([]Specification[T]{c.self}, others...)...)
}

func (c combinator[T]) Disjunction(others ...Specification[T]) Specification[T] {
	return Disjunction[T](append([]Specification[T]{c.self}, others...)...)
}
