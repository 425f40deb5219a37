package monoid

import (
	"golang.org/x/exp/constraints"
)

// Monoid is an associative binary operation with an identity element.
type Monoid[T any] interface {
	// Identity returns the identity element: Combine(Identity(), x) == x == Combine(x, Identity()).
	Identity() T
	// Combine applies the associative operation to a and b.
	Combine(a, b T) T
}

// Number is the set of built-in numeric types the ready-made monoids accept.
type Number interface {
	constraints.Integer | constraints.Float
}

// funcMonoid adapts an identity value and a function to the Monoid interface.
type funcMonoid[T any] struct {
	id T
	op func(a, b T) T
}

func (m funcMonoid[T]) Identity() T { return m.id }

func (m funcMonoid[T]) Combine(a, b T) T { return m.op(a, b) }

// New returns a Monoid from an identity element and an operation.
// op must be associative and non-nil; New panics on a nil op.
//
//	m := monoid.New(0, func(a, b int) int { return a + b })
func New[T any](identity T, op func(a, b T) T) Monoid[T] {
	if op == nil {
		panic("monoid: nil operation")
	}

	return funcMonoid[T]{id: identity, op: op}
}

// Sum returns the additive monoid (0, +).
func Sum[T Number]() Monoid[T] {
	return New(T(0), func(a, b T) T { return a + b })
}

// Product returns the multiplicative monoid (1, *).
func Product[T Number]() Monoid[T] {
	return New(T(1), func(a, b T) T { return a * b })
}

// Max returns the monoid (floor, max). floor must be ≤ every value that will be
// combined, e.g. 0 for non-negative edge weights. Used for bottleneck paths.
func Max[T Number](floor T) Monoid[T] {
	return New(floor, func(a, b T) T {
		if a > b {
			return a
		}
		return b
	})
}

// Min returns the monoid (ceiling, min). ceiling must be ≥ every value that
// will be combined, e.g. math.MaxInt64. Min never increases an accumulated
// value, so a widest (max-capacity) path search must order the frontier by
// greater-is-better, e.g. search.DijkstraFunc with
// func(a, b T) bool { return a > b }; the plain min-ordered Dijkstra preset
// gives wrong results with it.
func Min[T Number](ceiling T) Monoid[T] {
	return New(ceiling, func(a, b T) T {
		if a < b {
			return a
		}
		return b
	})
}

// Fold combines values left to right, starting from m.Identity().
// An empty slice folds to the identity.
func Fold[T any](m Monoid[T], values ...T) T {
	acc := m.Identity()
	for _, v := range values {
		acc = m.Combine(acc, v)
	}

	return acc
}
