package async

import (
	"errors"

	"jsouthworth.net/go/maptrait"
)

var errNilMap = errors.New("async: wrapped map must not be nil")

// Map is the deferred form of maptrait.Map.
type Map[K, Q, V any] interface {
	Get(key Q) Future[maptrait.Guard[V]]
	Insert(key K, value V) Future[V]
}

// Adapter presents a synchronous maptrait.Map as a Map. Each call
// runs the underlying operation before returning.
type Adapter[K, Q, V any] struct {
	m maptrait.Map[K, Q, V]
}

// Wrap returns an Adapter over m.
func Wrap[K, Q, V any](m maptrait.Map[K, Q, V]) *Adapter[K, Q, V] {
	if m == nil {
		panic(errNilMap)
	}
	return &Adapter[K, Q, V]{m: m}
}

// Get looks key up and returns the completed lookup.
func (a *Adapter[K, Q, V]) Get(key Q) Future[maptrait.Guard[V]] {
	g, ok := a.m.Get(key)
	return Resolved(g, ok)
}

// Insert stores (key, value) and returns the completed insert, whose
// result holds any displaced value.
func (a *Adapter[K, Q, V]) Insert(key K, value V) Future[V] {
	old, ok := a.m.Insert(key, value)
	return Resolved(old, ok)
}

// Unwrap returns the synchronous map.
func (a *Adapter[K, Q, V]) Unwrap() maptrait.Map[K, Q, V] {
	return a.m
}

var _ Map[int, int, int] = (*Adapter[int, int, int])(nil)
