package specification

import (
	"golang.org/x/exp/constraints"
)

// GreaterThan is satisfied by values strictly greater than v.
func GreaterThan[T constraints.Ordered](v T) Specification[T] {
	return FromPredicate(func(t T) bool { return t > v })
}

// GreaterThanOrEqual is satisfied by values greater than or equal to v.
func GreaterThanOrEqual[T constraints.Ordered](v T) Specification[T] {
	return FromPredicate(func(t T) bool { return t >= v })
}

// LessThan is satisfied by values strictly less than v.
func LessThan[T constraints.Ordered](v T) Specification[T] {
	return FromPredicate(func(t T) bool { return t < v })
}

// LessThanOrEqual is satisfied by values less than or equal to v.
func LessThanOrEqual[T constraints.Ordered](v T) Specification[T] {
	return FromPredicate(func(t T) bool { return t <= v })
}

func EqualTo[T constraints.Ordered](v T) Specification[T] {
	return FromPredicate(func(t T) bool { return t == v })
}

func NotEqualTo[T constraints.Ordered](v T) Specification[T] {
	return Not(EqualTo(v))
}

// Between is satisfied by values in the closed interval [lo, hi].
func Between[T constraints.Ordered](lo, hi T) Specification[T] {
	return And(GreaterThanOrEqual(lo), LessThanOrEqual(hi))
}
