package maptrait

// Set is the capability shared by every set container. T is the owned
// element type and Q the borrowed view used for membership tests.
type Set[T, Q any] interface {
	// Contains reports whether an element equal to elem is a member.
	Contains(elem Q) bool

	// Insert adds elem and reports whether it was not already a
	// member. Inserting a member leaves the set unchanged.
	Insert(elem T) bool
}

// SetDeleter is implemented by sets that support removing members.
type SetDeleter[Q any] interface {
	// Delete removes elem and reports whether it was a member.
	Delete(elem Q) bool
}
