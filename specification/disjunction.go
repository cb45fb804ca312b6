package specification

import "context"

// disjunction used to create a new specification that is the OR of all Specs.
type disjunction[T any] struct {
	combinator[T]
	Specs []Specification[T]
}

func (spec *disjunction[T]) IsSatisfiedBy(ctx context.Context, t T) bool {
	for _, s := range spec.Specs {
		if s.IsSatisfiedBy(ctx, t) {
			return true
		}
	}
	return false
}
