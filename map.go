package maptrait

// Map is the capability shared by every key-value container.
//
// K is the owned key type stored in the container, Q the borrowed view
// of K that lookups are made with and V the value type.
type Map[K, Q, V any] interface {
	// Get returns a guard over the value stored under key. If no
	// entry matches, Get returns nil and false.
	Get(key Q) (Guard[V], bool)

	// Insert associates value with key, replacing any entry with an
	// equal key. When a value is displaced it is returned along with
	// true; the caller then owns it. Otherwise the zero value and false
	// are returned.
	Insert(key K, value V) (V, bool)
}

// Lengther is implemented by containers that know how many entries
// they hold.
type Lengther interface {
	Length() int
}

// Deleter is implemented by maps that support removing entries.
type Deleter[Q, V any] interface {
	// Delete removes the entry stored under key and returns its
	// value. If no entry matches, the zero value and false are
	// returned.
	Delete(key Q) (V, bool)
}

// Find copies the value stored under key out of m.
func Find[K, Q, V any](m Map[K, Q, V], key Q) (value V, exists bool) {
	g, ok := m.Get(key)
	if !ok {
		return value, false
	}
	return *g.Deref(), true
}

// Length returns the number of entries in c if c is a Lengther.
func Length(c any) (int, bool) {
	l, ok := c.(Lengther)
	if !ok {
		return 0, false
	}
	return l.Length(), true
}
