package lastinsert // import "jsouthworth.net/go/maptrait/lastinsert"

import (
	"errors"
	"fmt"

	"jsouthworth.net/go/maptrait"
)

var errNilInner = errors.New("lastinsert: inner container must not be nil")

// Map wraps a maptrait.Map and records the last inserted entry.
type Map[K, Q, V any] struct {
	inner     maptrait.Map[K, Q, V]
	lastKey   K
	lastValue V
}

// NewMap inserts (key, value) into inner and returns a decorator
// around it with that entry as its last insert.
func NewMap[K, Q, V any](inner maptrait.Map[K, Q, V], key K, value V) *Map[K, Q, V] {
	if inner == nil {
		panic(errNilInner)
	}
	inner.Insert(key, value)
	return &Map[K, Q, V]{
		inner:     inner,
		lastKey:   key,
		lastValue: value,
	}
}

// Get forwards to the wrapped map.
func (m *Map[K, Q, V]) Get(key Q) (maptrait.Guard[V], bool) {
	return m.inner.Get(key)
}

// Insert records (key, value) as the last insert and forwards to the
// wrapped map, returning its result.
func (m *Map[K, Q, V]) Insert(key K, value V) (V, bool) {
	m.lastKey = key
	m.lastValue = value
	return m.inner.Insert(key, value)
}

// LastInsert returns the most recently inserted entry.
func (m *Map[K, Q, V]) LastInsert() (K, V) {
	return m.lastKey, m.lastValue
}

// Unwrap returns the wrapped map.
func (m *Map[K, Q, V]) Unwrap() maptrait.Map[K, Q, V] {
	return m.inner
}

func (m *Map[K, Q, V]) String() string {
	return fmt.Sprintf("%v last=[%v %v]", m.inner, m.lastKey, m.lastValue)
}
