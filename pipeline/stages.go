package pipeline

import (
	"context"

	"github.com/zerofoolcoder/collectionsjs/collection"
	"github.com/zerofoolcoder/collectionsjs/specification"
)

// Identity returns c unchanged.
func Identity[T any]() Stage[T] {
	return StageFunc[T](func(c *collection.Collection[T]) *collection.Collection[T] {
		return c
	})
}

func Filter[T any](predicate collection.Predicate[T]) Stage[T] {
	return StageFunc[T](func(c *collection.Collection[T]) *collection.Collection[T] {
		return c.Filter(predicate)
	})
}

func Reject[T any](predicate collection.Predicate[T]) Stage[T] {
	return StageFunc[T](func(c *collection.Collection[T]) *collection.Collection[T] {
		return c.Reject(predicate)
	})
}

// Where filters by spec, evaluated with ctx.
func Where[T any](ctx context.Context, spec specification.Specification[T]) Stage[T] {
	return StageFunc[T](func(c *collection.Collection[T]) *collection.Collection[T] {
		return c.Where(ctx, spec)
	})
}

func Take[T any](n int) Stage[T] {
	return StageFunc[T](func(c *collection.Collection[T]) *collection.Collection[T] {
		return c.Take(n)
	})
}

func Skip[T any](n int) Stage[T] {
	return StageFunc[T](func(c *collection.Collection[T]) *collection.Collection[T] {
		return c.Skip(n)
	})
}

func SortBy[T any](less func(a, b T) bool) Stage[T] {
	return StageFunc[T](func(c *collection.Collection[T]) *collection.Collection[T] {
		return c.SortBy(less)
	})
}
