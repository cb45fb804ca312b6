package specification

import "context"

// not used to create a new specification that is the inverse (NOT) of the given Spec.
type not[T any] struct {
	combinator[T]
	Spec Specification[T]
}

func (spec *not[T]) IsSatisfiedBy(ctx context.Context, t T) bool {
	return !spec.Spec.IsSatisfiedBy(ctx, t)
}
