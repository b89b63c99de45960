package maptrait

// Guard is a read-only borrow of a value held by a container. The
// pointer returned by Deref must not be written through and must not
// be used after the container is modified.
type Guard[V any] interface {
	Deref() *V
}

// Ref is the plain reference guard.
type Ref[V any] struct {
	p *V
}

// RefOf returns a guard over the value p points to.
func RefOf[V any](p *V) Ref[V] {
	return Ref[V]{p: p}
}

// Deref returns the borrowed value.
func (r Ref[V]) Deref() *V {
	return r.p
}
