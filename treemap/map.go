package treemap // import "jsouthworth.net/go/maptrait/treemap"

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/exp/constraints"
	"jsouthworth.net/go/maptrait"
	"jsouthworth.net/go/maptrait/internal/btree"
)

var (
	errNilBorrow  = errors.New("treemap: borrow function must not be nil")
	errNilCompare = errors.New("treemap: compare function must not be nil")
)

type entry[K, Q, V any] struct {
	key   K
	view  Q
	value V
}

func (e *entry[K, Q, V]) String() string {
	return fmt.Sprintf("[%v %v]", e.key, e.value)
}

// Map is a mutable map from owned keys K to values V, ordered by the
// borrowed view Q of each key. A Map is not safe for concurrent
// mutation. The zero value is not usable; build maps with New, NewFunc
// or NewBorrowed.
type Map[K, Q, V any] struct {
	root   *btree.Tree[*entry[K, Q, V]]
	borrow func(K) Q
	cmp    func(a, b Q) int
}

// New returns an empty map of naturally ordered keys. Keys with a
// Compare method are ordered by it.
func New[K constraints.Ordered, V any]() *Map[K, K, V] {
	return NewBorrowed[K, K, V](maptrait.Identity[K], maptrait.Compare[K])
}

// NewFunc returns an empty map whose keys are ordered by cmp.
func NewFunc[K, V any](cmp func(a, b K) int) *Map[K, K, V] {
	return NewBorrowed[K, K, V](maptrait.Identity[K], cmp)
}

// NewBorrowed returns an empty map ordering each key by borrow(key)
// under cmp. The view is computed once when an entry is inserted and
// is kept with the entry.
func NewBorrowed[K, Q, V any](
	borrow func(K) Q,
	cmp func(a, b Q) int,
) *Map[K, Q, V] {
	if borrow == nil {
		panic(errNilBorrow)
	}
	if cmp == nil {
		panic(errNilCompare)
	}
	return &Map[K, Q, V]{
		root: btree.New(
			func(a, b *entry[K, Q, V]) int {
				return cmp(a.view, b.view)
			},
			func(a, b *entry[K, Q, V]) bool {
				return a == b
			},
		),
		borrow: borrow,
		cmp:    cmp,
	}
}

// at returns a probe locating the entry whose view equals key.
func (m *Map[K, Q, V]) at(key Q) func(*entry[K, Q, V]) int {
	return func(e *entry[K, Q, V]) int {
		return m.cmp(e.view, key)
	}
}

func (m *Map[K, Q, V]) find(key Q) (*entry[K, Q, V], bool) {
	return m.root.Find(m.at(key))
}

// Borrow returns the view the map orders key by.
func (m *Map[K, Q, V]) Borrow(key K) Q {
	return m.borrow(key)
}

// Get returns a guard over the value stored under key.
// If one is not found, (nil, false) is returned.
func (m *Map[K, Q, V]) Get(key Q) (maptrait.Guard[V], bool) {
	e, ok := m.find(key)
	if !ok {
		return nil, false
	}
	return maptrait.RefOf(&e.value), true
}

// Find will return the value for a key if it exists in the map and
// whether the key exists in the map.
func (m *Map[K, Q, V]) Find(key Q) (value V, exists bool) {
	e, ok := m.find(key)
	if !ok {
		return value, false
	}
	return e.value, true
}

// Contains will test if the key exists in the map.
func (m *Map[K, Q, V]) Contains(key Q) bool {
	return m.root.Contains(m.at(key))
}

// Insert associates a value with a key in the map. When the key is
// already present its value is replaced and returned; the stored key
// is kept.
func (m *Map[K, Q, V]) Insert(key K, value V) (V, bool) {
	view := m.borrow(key)
	old, ok := m.find(view)
	if !ok {
		m.root.Add(&entry[K, Q, V]{key: key, view: view, value: value})
		var zero V
		return zero, false
	}
	m.root.Add(&entry[K, Q, V]{key: old.key, view: old.view, value: value})
	return old.value, true
}

// Delete removes a key and associated value from the map, returning
// the value.
func (m *Map[K, Q, V]) Delete(key Q) (V, bool) {
	e, ok := m.root.Delete(m.at(key))
	if !ok {
		var zero V
		return zero, false
	}
	return e.value, true
}

// Length returns the number of entries in the map.
func (m *Map[K, Q, V]) Length() int {
	return m.root.Length()
}

// Range calls do for each entry in ascending key order until do
// returns false. The map must not be modified during the call.
func (m *Map[K, Q, V]) Range(do func(key K, value V) bool) {
	iter := m.root.Iterator()
	for iter.HasNext() {
		e := iter.Next()
		if !do(e.key, e.value) {
			return
		}
	}
}

// Min returns the entry with the smallest key.
func (m *Map[K, Q, V]) Min() (key K, value V, ok bool) {
	e, ok := m.root.Min()
	if !ok {
		return key, value, false
	}
	return e.key, e.value, true
}

// Max returns the entry with the largest key.
func (m *Map[K, Q, V]) Max() (key K, value V, ok bool) {
	e, ok := m.root.Max()
	if !ok {
		return key, value, false
	}
	return e.key, e.value, true
}

// Clone returns a map holding the same entries. Modifying either map
// does not affect the other.
func (m *Map[K, Q, V]) Clone() *Map[K, Q, V] {
	return &Map[K, Q, V]{
		root:   m.root.Clone(),
		borrow: m.borrow,
		cmp:    m.cmp,
	}
}

// String returns a string representation of the map.
func (m *Map[K, Q, V]) String() string {
	var b strings.Builder
	fmt.Fprint(&b, "{ ")
	iter := m.root.Iterator()
	for iter.HasNext() {
		fmt.Fprintf(&b, "%s ", iter.Next())
	}
	fmt.Fprint(&b, "}")
	return b.String()
}
