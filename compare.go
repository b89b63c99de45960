package maptrait

import (
	"cmp"

	"golang.org/x/exp/constraints"
)

// Equaler may be implemented by query types that need an equality
// other than ==. Hash based containers consult it for views that also
// hash themselves (see hashmap.Hashable).
type Equaler[T any] interface {
	Equal(other T) bool
}

// Comparer may be implemented by query types that define their own
// total order. Compare returns a negative number when the receiver
// sorts before other, zero when they are equal and a positive number
// otherwise.
type Comparer[T any] interface {
	Compare(other T) int
}

// Equal reports whether a and b are equal, using a's Equal method when
// it has one and == otherwise.
func Equal[T comparable](a, b T) bool {
	switch v := any(a).(type) {
	case Equaler[T]:
		return v.Equal(b)
	default:
		return a == b
	}
}

// Compare orders a and b by a's Compare method when it has one.
// Otherwise it is cmp.Compare: the natural order, with NaN sorted
// before every other float and equal to itself.
func Compare[T constraints.Ordered](a, b T) int {
	switch v := any(a).(type) {
	case Comparer[T]:
		return v.Compare(b)
	default:
		return cmp.Compare(a, b)
	}
}

// CompareMethod orders values by their Compare method.
func CompareMethod[T Comparer[T]](a, b T) int {
	return a.Compare(b)
}
