package treeset

import "golang.org/x/exp/constraints"

// Order is the comparison policy of a Set, fixed at the type level rather
// than passed at runtime. Less must implement a strict weak ordering over T.
// The Set instantiates its policy as a zero value, so implementations have
// to be stateless value types.
type Order[T any] interface {
	Less(a, b T) bool
}

// Ascending orders values by the builtin < operator. It is the policy to
// reach for unless values should come out largest-first.
type Ascending[T constraints.Ordered] struct{}

// Less returns a < b.
func (Ascending[T]) Less(a, b T) bool { return a < b }

// Descending is the reverse of Ascending.
type Descending[T constraints.Ordered] struct{}

// Less returns b < a.
func (Descending[T]) Less(a, b T) bool { return b < a }

// NewOrdered returns an ascending set holding the given values.
// It is shorthand for New[T, Ascending[T]].
func NewOrdered[T constraints.Ordered](values ...T) *Set[T, Ascending[T]] {
	return New[T, Ascending[T]](values...)
}

// NewReversed returns a descending set holding the given values.
func NewReversed[T constraints.Ordered](values ...T) *Set[T, Descending[T]] {
	return New[T, Descending[T]](values...)
}
