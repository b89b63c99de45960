package hashmap // import "jsouthworth.net/go/maptrait/hashmap"

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"jsouthworth.net/go/maptrait"
)

var (
	errNilBorrow = errors.New("hashmap: borrow function must not be nil")
	errNilHasher = errors.New("hashmap: hasher must not be nil")
)

type entry[K, Q, V any] struct {
	key   K
	view  Q
	value V
}

func (e *entry[K, Q, V]) String() string {
	return fmt.Sprintf("[%v %v]", e.key, e.value)
}

// Map is a mutable hash map from owned keys K to values V, queried
// by the borrowed view Q of a key. Entries with colliding hashes are
// chained. A Map is not safe for concurrent mutation. The zero value
// is not usable; build maps with New, NewBorrowed or FromNative.
type Map[K, Q, V any] struct {
	index  map[uint64][]*entry[K, Q, V]
	count  int
	borrow func(K) Q
	hasher Hasher[Q]
}

type mapOptions struct {
	capacity int
}

// Option is a type that allows changes to pluggable parts of the
// Map implementation.
type Option func(*mapOptions)

// Capacity is an option that sizes the map for n entries.
func Capacity(n int) Option {
	return func(o *mapOptions) {
		o.capacity = n
	}
}

// New returns an empty map whose keys are their own views, hashed by
// DefaultHasher.
func New[K comparable, V any](options ...Option) *Map[K, K, V] {
	return NewBorrowed[K, K, V](maptrait.Identity[K],
		DefaultHasher[K](), options...)
}

// NewBorrowed returns an empty map indexing each key by borrow(key).
// The view is computed once when an entry is inserted and is kept
// with the entry.
func NewBorrowed[K, Q, V any](
	borrow func(K) Q,
	hasher Hasher[Q],
	options ...Option,
) *Map[K, Q, V] {
	if borrow == nil {
		panic(errNilBorrow)
	}
	if hasher == nil {
		panic(errNilHasher)
	}
	var opts mapOptions
	for _, opt := range options {
		opt(&opts)
	}
	return &Map[K, Q, V]{
		index:  make(map[uint64][]*entry[K, Q, V], opts.capacity),
		borrow: borrow,
		hasher: hasher,
	}
}

// FromNative returns a map holding the entries of a go native map.
func FromNative[K comparable, V any](native map[K]V) *Map[K, K, V] {
	out := New[K, V](Capacity(len(native)))
	for k, v := range native {
		out.Insert(k, v)
	}
	return out
}

func (m *Map[K, Q, V]) lookup(view Q) (hash uint64, idx int) {
	hash = m.hasher.Hash(view)
	for i, e := range m.index[hash] {
		if m.hasher.Equal(e.view, view) {
			return hash, i
		}
	}
	return hash, -1
}

// Borrow returns the view the map indexes key by.
func (m *Map[K, Q, V]) Borrow(key K) Q {
	return m.borrow(key)
}

// Get returns a guard over the value stored under key.
// If one is not found, (nil, false) is returned.
func (m *Map[K, Q, V]) Get(key Q) (maptrait.Guard[V], bool) {
	hash, idx := m.lookup(key)
	if idx < 0 {
		return nil, false
	}
	return maptrait.RefOf(&m.index[hash][idx].value), true
}

// Find will return the value for a key if it exists in the map and
// whether the key exists in the map.
func (m *Map[K, Q, V]) Find(key Q) (value V, exists bool) {
	hash, idx := m.lookup(key)
	if idx < 0 {
		return value, false
	}
	return m.index[hash][idx].value, true
}

// Contains will test if the key exists in the map.
func (m *Map[K, Q, V]) Contains(key Q) bool {
	_, idx := m.lookup(key)
	return idx >= 0
}

// Insert associates a value with a key in the map. When the key is
// already present its value is replaced and returned; the stored key
// is kept.
func (m *Map[K, Q, V]) Insert(key K, value V) (V, bool) {
	view := m.borrow(key)
	hash, idx := m.lookup(view)
	if idx < 0 {
		m.index[hash] = append(m.index[hash],
			&entry[K, Q, V]{key: key, view: view, value: value})
		m.count++
		var zero V
		return zero, false
	}
	chain := m.index[hash]
	old := chain[idx]
	chain[idx] = &entry[K, Q, V]{key: old.key, view: old.view, value: value}
	return old.value, true
}

// Delete removes a key and associated value from the map, returning
// the value.
func (m *Map[K, Q, V]) Delete(key Q) (V, bool) {
	hash, idx := m.lookup(key)
	if idx < 0 {
		var zero V
		return zero, false
	}
	chain := m.index[hash]
	old := chain[idx]
	if len(chain) == 1 {
		delete(m.index, hash)
	} else {
		m.index[hash] = slices.Delete(chain, idx, idx+1)
	}
	m.count--
	return old.value, true
}

// Length returns the number of entries in the map.
func (m *Map[K, Q, V]) Length() int {
	return m.count
}

// Range calls do for each entry until do returns false. The order
// is unspecified. The map must not be modified during the call.
func (m *Map[K, Q, V]) Range(do func(key K, value V) bool) {
	for _, chain := range m.index {
		for _, e := range chain {
			if !do(e.key, e.value) {
				return
			}
		}
	}
}

// Clone returns a map holding the same entries. Modifying either
// map does not affect the other.
func (m *Map[K, Q, V]) Clone() *Map[K, Q, V] {
	index := make(map[uint64][]*entry[K, Q, V], len(m.index))
	for hash, chain := range m.index {
		index[hash] = slices.Clone(chain)
	}
	return &Map[K, Q, V]{
		index:  index,
		count:  m.count,
		borrow: m.borrow,
		hasher: m.hasher,
	}
}

// AsNative returns the map converted to a go native map type keyed
// by the stored keys.
func AsNative[K comparable, Q, V any](m *Map[K, Q, V]) map[K]V {
	out := make(map[K]V, m.count)
	m.Range(func(k K, v V) bool {
		out[k] = v
		return true
	})
	return out
}

// String returns a string representation of the map.
func (m *Map[K, Q, V]) String() string {
	var b strings.Builder
	fmt.Fprint(&b, "{ ")
	for _, chain := range m.index {
		for _, e := range chain {
			fmt.Fprintf(&b, "%s ", e)
		}
	}
	fmt.Fprint(&b, "}")
	return b.String()
}
