// Package treeset implements a mutable ordered Set datastructure on
// top of treemap.
package treeset // import "jsouthworth.net/go/maptrait/treeset"

import (
	"fmt"
	"strings"

	"golang.org/x/exp/constraints"
	"jsouthworth.net/go/maptrait"
	"jsouthworth.net/go/maptrait/treemap"
)

// Set is a mutable set of owned elements T ordered by their borrowed
// view Q.
type Set[T, Q any] struct {
	backingMap *treemap.Map[T, Q, struct{}]
}

// New returns a set containing the supplied elements.
func New[T constraints.Ordered](elems ...T) *Set[T, T] {
	return fill(&Set[T, T]{
		backingMap: treemap.New[T, struct{}](),
	}, elems)
}

// NewFunc returns a set containing the supplied elements ordered by
// cmp.
func NewFunc[T any](cmp func(a, b T) int, elems ...T) *Set[T, T] {
	return fill(&Set[T, T]{
		backingMap: treemap.NewFunc[T, struct{}](cmp),
	}, elems)
}

// NewBorrowed returns an empty set ordering each element by
// borrow(elem) under cmp.
func NewBorrowed[T, Q any](borrow func(T) Q, cmp func(a, b Q) int) *Set[T, Q] {
	return &Set[T, Q]{
		backingMap: treemap.NewBorrowed[T, Q, struct{}](borrow, cmp),
	}
}

func fill[T any](s *Set[T, T], elems []T) *Set[T, T] {
	for _, elem := range elems {
		s.Insert(elem)
	}
	return s
}

// Insert adds elem to the set and reports whether it was not
// already a member.
func (s *Set[T, Q]) Insert(elem T) bool {
	if s.backingMap.Contains(s.backingMap.Borrow(elem)) {
		return false
	}
	s.backingMap.Insert(elem, struct{}{})
	return true
}

// Contains returns true if the element is in the set, false otherwise.
func (s *Set[T, Q]) Contains(elem Q) bool {
	return s.backingMap.Contains(elem)
}

// Delete removes an element from the set and reports whether it was
// a member.
func (s *Set[T, Q]) Delete(elem Q) bool {
	_, ok := s.backingMap.Delete(elem)
	return ok
}

// Length returns the elements in the set.
func (s *Set[T, Q]) Length() int {
	return s.backingMap.Length()
}

// Range calls do for each element in ascending order until do
// returns false.
func (s *Set[T, Q]) Range(do func(elem T) bool) {
	s.backingMap.Range(func(elem T, _ struct{}) bool {
		return do(elem)
	})
}

// Min returns the smallest element.
func (s *Set[T, Q]) Min() (T, bool) {
	elem, _, ok := s.backingMap.Min()
	return elem, ok
}

// Max returns the largest element.
func (s *Set[T, Q]) Max() (T, bool) {
	elem, _, ok := s.backingMap.Max()
	return elem, ok
}

// Clone returns an independent copy of the set in constant time.
func (s *Set[T, Q]) Clone() *Set[T, Q] {
	return &Set[T, Q]{backingMap: s.backingMap.Clone()}
}

// String returns a string serialization of the set.
func (s *Set[T, Q]) String() string {
	var b strings.Builder
	fmt.Fprint(&b, "{ ")
	s.Range(func(elem T) bool {
		fmt.Fprintf(&b, "%v ", elem)
		return true
	})
	fmt.Fprint(&b, "}")
	return b.String()
}

var _ maptrait.Set[int, int] = (*Set[int, int])(nil)
var _ maptrait.SetDeleter[int] = (*Set[int, int])(nil)
