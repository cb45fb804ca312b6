package specification

import "context"

type base[T any] struct {
	combinator[T]
	Predicate func(ctx context.Context, t T) bool
}

func (spec *base[T]) IsSatisfiedBy(ctx context.Context, t T) bool {
	return spec.Predicate(ctx, t)
}
