// Package hashset implements a mutable Set datastructure on top of hashmap
package hashset // import "jsouthworth.net/go/maptrait/hashset"

import (
	"fmt"
	"strings"

	"jsouthworth.net/go/maptrait"
	"jsouthworth.net/go/maptrait/hashmap"
)

// Set is a mutable unordered set of owned elements T, queried by
// their borrowed view Q.
type Set[T, Q any] struct {
	backingMap *hashmap.Map[T, Q, struct{}]
}

// New returns a set containing the supplied elements.
func New[T comparable](elems ...T) *Set[T, T] {
	s := &Set[T, T]{
		backingMap: hashmap.New[T, struct{}](hashmap.Capacity(len(elems))),
	}
	for _, elem := range elems {
		s.Insert(elem)
	}
	return s
}

// NewBorrowed returns an empty set indexing each element by
// borrow(elem).
func NewBorrowed[T, Q any](
	borrow func(T) Q,
	hasher hashmap.Hasher[Q],
	options ...hashmap.Option,
) *Set[T, Q] {
	return &Set[T, Q]{
		backingMap: hashmap.NewBorrowed[T, Q, struct{}](
			borrow, hasher, options...),
	}
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

// Range calls do for each element until do returns false.
func (s *Set[T, Q]) Range(do func(elem T) bool) {
	s.backingMap.Range(func(elem T, _ struct{}) bool {
		return do(elem)
	})
}

// Clone returns an independent copy of the set.
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
