// Package pipeline composes collection transformations into reusable, ordered chains.
package pipeline

import (
	"github.com/zerofoolcoder/collectionsjs/collection"
)

// Stage transforms a collection into a new one.
type Stage[T any] interface {
	// Apply returns the transformed collection. It must not modify c.
	Apply(c *collection.Collection[T]) *collection.Collection[T]
}

// The StageFunc type is an adapter to allow the use of ordinary functions as Stage.
// If f is a function with the appropriate signature, StageFunc(f) is a Stage that calls f.
type StageFunc[T any] func(c *collection.Collection[T]) *collection.Collection[T]

// Apply call f(c).
func (f StageFunc[T]) Apply(c *collection.Collection[T]) *collection.Collection[T] {
	return f(c)
}

type chain[T any] []Stage[T]

func (stages chain[T]) Apply(c *collection.Collection[T]) *collection.Collection[T] {
	for _, stage := range stages {
		if stage == nil {
			continue
		}
		c = stage.Apply(c)
	}
	return c
}

// Chain returns a Stage that applies stages in the given order. Nil stages are skipped.
func Chain[T any](stages ...Stage[T]) Stage[T] {
	return chain[T](append([]Stage[T](nil), stages...))
}

// Run applies stages to c in order.
func Run[T any](c *collection.Collection[T], stages ...Stage[T]) *collection.Collection[T] {
	return Chain(stages...).Apply(c)
}
