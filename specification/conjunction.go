package specification

import "context"

// conjunction used to create a new specification that is the AND of all Specs.
type conjunction[T any] struct {
	combinator[T]
	Specs []Specification[T]
}

func (spec *conjunction[T]) IsSatisfiedBy(ctx context.Context, t T) bool {
	for _, s := range spec.Specs {
		if !s.IsSatisfiedBy(ctx, t) {
			return false
		}
	}
	return true
}
