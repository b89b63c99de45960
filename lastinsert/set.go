package lastinsert

import (
	"fmt"

	"jsouthworth.net/go/maptrait"
)

// Set wraps a maptrait.Set and records the last inserted element.
type Set[T, Q any] struct {
	inner maptrait.Set[T, Q]
	last  T
}

// NewSet inserts elem into inner and returns a decorator around it
// with elem as its last insert.
func NewSet[T, Q any](inner maptrait.Set[T, Q], elem T) *Set[T, Q] {
	if inner == nil {
		panic(errNilInner)
	}
	inner.Insert(elem)
	return &Set[T, Q]{inner: inner, last: elem}
}

// Contains forwards to the wrapped set.
func (s *Set[T, Q]) Contains(elem Q) bool {
	return s.inner.Contains(elem)
}

// Insert records elem as the last insert, including when it was
// already a member, and forwards to the wrapped set.
func (s *Set[T, Q]) Insert(elem T) bool {
	s.last = elem
	return s.inner.Insert(elem)
}

// LastInsert returns the most recently inserted element.
func (s *Set[T, Q]) LastInsert() T {
	return s.last
}

// Unwrap returns the wrapped set.
func (s *Set[T, Q]) Unwrap() maptrait.Set[T, Q] {
	return s.inner
}

func (s *Set[T, Q]) String() string {
	return fmt.Sprintf("%v last=%v", s.inner, s.last)
}
