// Package btree implements a mutable B+Tree whose snapshots share
// structure. Nodes created since the last Clone are modified in place;
// nodes reachable from a snapshot are copied before they are written.
//
// Lookups are driven by a probe rather than by an item: probe(item)
// reports how item orders against whatever is being searched for, so
// callers can search by a part of the item without building one.
package btree

import "sync/atomic"

// Tree is a B+Tree of items ordered by a comparison function. Items
// that compare equal occupy the same slot; the identity function
// decides whether adding such an item replaces the stored one.
type Tree[T any] struct {
	root  node[T]
	count int
	edit  *atomic.Bool

	cmp  func(a, b T) int
	same func(a, b T) bool
}

// New returns an empty tree. cmp orders items and same reports whether
// two items are the identical item.
func New[T any](cmp func(a, b T) int, same func(a, b T) bool) *Tree[T] {
	edit := newEdit(true)
	return &Tree[T]{
		root: newLeaf[T](0, edit),
		edit: edit,
		cmp:  cmp,
		same: same,
	}
}

func newEdit(val bool) *atomic.Bool {
	var b atomic.Bool
	b.Store(val)
	return &b
}

// Contains reports whether an item matching probe is stored.
func (t *Tree[T]) Contains(probe func(item T) int) bool {
	_, found := t.root.find(probe)
	return found
}

// Find returns the stored item matching probe. probe(item) must be
// negative for items that sort before the match, zero for the match
// and positive for items after it.
func (t *Tree[T]) Find(probe func(item T) int) (T, bool) {
	return t.root.find(probe)
}

// Add stores item, replacing an equal item that is not identical to
// it. Add reports whether the tree gained an item.
func (t *Tree[T]) Add(item T) bool {
	probe := func(stored T) int {
		return t.cmp(stored, item)
	}
	ret := t.root.add(item, probe, t.same, t.edit)
	switch ret.status {
	case returnUnchanged:
		return false
	case returnReplaced:
		t.root = ret.nodes[0]
		return false
	case returnEarly:
	case returnOne:
		t.root = ret.nodes[0]
	default:
		t.root = internalOf(ret.nodes[:2], t.edit)
	}
	t.count++
	return true
}

// Delete removes the item matching probe and returns it.
func (t *Tree[T]) Delete(probe func(item T) int) (T, bool) {
	item, found := t.root.find(probe)
	if !found {
		return item, false
	}
	ret := t.root.remove(probe, nil, nil, t.edit)
	if ret.status != returnEarly {
		root := ret.nodes[1]
		if in, ok := root.(*internalNode[T]); ok && in.len == 1 {
			root = in.children[0]
		}
		t.root = root
	}
	t.count--
	return item, true
}

// Length returns the number of items.
func (t *Tree[T]) Length() int {
	return t.count
}

// Min returns the smallest item.
func (t *Tree[T]) Min() (T, bool) {
	if t.count == 0 {
		var zero T
		return zero, false
	}
	n := t.root
	for {
		switch v := n.(type) {
		case *internalNode[T]:
			n = v.children[0]
		case *leafNode[T]:
			return v.keys[0], true
		}
	}
}

// Max returns the largest item.
func (t *Tree[T]) Max() (T, bool) {
	if t.count == 0 {
		var zero T
		return zero, false
	}
	return t.root.maxKey(), true
}

// Clone returns a tree holding the same items. The receiver's nodes
// are frozen and shared by both trees; either tree copies a frozen
// node before modifying it.
func (t *Tree[T]) Clone() *Tree[T] {
	t.edit.Store(false)
	t.edit = newEdit(true)
	return &Tree[T]{
		root:  t.root,
		count: t.count,
		edit:  newEdit(true),
		cmp:   t.cmp,
		same:  t.same,
	}
}

// Iterator returns an iterator positioned before the smallest item.
func (t *Tree[T]) Iterator() Iterator[T] {
	i := makeIterator(t.root)
	i.HasNext() // Make sure the initial iterator value is valid
	return i
}

// Iterator walks the items of a tree in ascending order. The tree must
// not be modified while an iterator is in use.
type Iterator[T any] struct {
	depth int
	stack [maxIterDepth]struct {
		n   node[T]
		cur int
	}
}

func makeIterator[T any](n node[T]) Iterator[T] {
	var i Iterator[T]
	i.stack[0].n = n
	return i
}

// Next returns the current item and advances. HasNext must have
// returned true.
func (i *Iterator[T]) Next() T {
	state := &i.stack[i.depth]
	out := state.n.(*leafNode[T]).keys[state.cur]
	state.cur++
	return out
}

// HasNext reports whether Next may be called.
func (i *Iterator[T]) HasNext() bool {
	for {
		state := &i.stack[i.depth]
		switch n := state.n.(type) {
		case *leafNode[T]:
			if state.cur < n.len {
				return true
			}
		case *internalNode[T]:
			if state.cur < n.len {
				child := n.children[state.cur]
				state.cur++
				i.depth++
				i.stack[i.depth].n = child
				i.stack[i.depth].cur = 0
				continue
			}
		}
		if i.depth == 0 {
			return false
		}
		i.stack[i.depth].n = nil
		i.depth--
	}
}

const (
	maxLen    = 64
	minLen    = maxLen >> 1
	expandLen = 8
	// maxIterDepth bounds the height of the tree. Every non-root node
	// holds at least minLen children, so a tree of height h holds at
	// least 2*32^(h-1) items; 13 levels exceed any addressable count.
	maxIterDepth = (64 + 1) / 5
)

type node[T any] interface {
	locate(probe func(T) int) (int, bool)
	find(probe func(T) int) (T, bool)
	add(item T, probe func(T) int, same func(a, b T) bool, edit *atomic.Bool) nodeReturn[T]
	remove(probe func(T) int, left, right node[T], edit *atomic.Bool) nodeReturn[T]
	maxKey() T
}

type returnStatus uint8

const (
	returnUnchanged returnStatus = iota
	returnEarly
	returnReplaced
	returnOne
	returnTwo
	returnThree
)

// nodeReturn tells a parent how a child changed. returnEarly means the
// change was absorbed in place below the parent; the other statuses
// hand back the replacement node(s). After a removal the three slots
// stand for the left sibling, the node itself and the right sibling,
// any of which may be nil.
type nodeReturn[T any] struct {
	status returnStatus
	nodes  [3]node[T]
}

// preferLeft reports whether a node left with n entries after a
// removal should be rebalanced against its left sibling rather than
// its right one. Missing siblings have length -1.
func preferLeft(left, right, n int) bool {
	switch {
	case left < 0:
		return false
	case right < 0:
		return true
	case left+n < maxLen:
		return true
	case right+n < maxLen:
		return false
	default:
		return left >= right
	}
}

// halve splits items into two even runs when they do not fit in one
// node.
func halve[E any](items []E) ([]E, []E) {
	if len(items) <= maxLen {
		return items, nil
	}
	h := len(items) / 2
	return items[:h], items[h:]
}
