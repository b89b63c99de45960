package btree

import (
	"slices"
	"sort"
	"sync/atomic"
)

type leafNode[T any] struct {
	keys []T
	len  int
	edit *atomic.Bool
}

// newLeaf returns a leaf holding len items. Editable leaves get spare
// room so that later inserts can happen in place.
func newLeaf[T any](len int, edit *atomic.Bool) *leafNode[T] {
	size := len
	if edit.Load() {
		size = min(maxLen, len+expandLen)
	}
	return &leafNode[T]{
		keys: make([]T, size),
		len:  len,
		edit: edit,
	}
}

func leafOf[T any](items []T, edit *atomic.Bool) *leafNode[T] {
	out := newLeaf[T](len(items), edit)
	copy(out.keys, items)
	return out
}

// leavesOf packs items into one leaf, or two when they do not fit.
// The second leaf is nil when one suffices.
func leavesOf[T any](items []T, edit *atomic.Bool) (*leafNode[T], *leafNode[T]) {
	first, second := halve(items)
	if second == nil {
		return leafOf(first, edit), nil
	}
	return leafOf(first, edit), leafOf(second, edit)
}

func (n *leafNode[T]) asNode() node[T] {
	if n == nil {
		return nil
	}
	return n
}

func (n *leafNode[T]) isEditable() bool {
	return n.edit.Load()
}

func (n *leafNode[T]) items() []T {
	return n.keys[:n.len]
}

func (n *leafNode[T]) maxKey() T {
	return n.keys[n.len-1]
}

// locate returns the first slot whose item does not sort before the
// probed position, and whether that item is a match.
func (n *leafNode[T]) locate(probe func(T) int) (int, bool) {
	i := sort.Search(n.len, func(i int) bool {
		return probe(n.keys[i]) >= 0
	})
	return i, i < n.len && probe(n.keys[i]) == 0
}

func (n *leafNode[T]) find(probe func(T) int) (T, bool) {
	i, found := n.locate(probe)
	if !found {
		var zero T
		return zero, false
	}
	return n.keys[i], true
}

func (n *leafNode[T]) add(
	item T,
	probe func(T) int,
	same func(a, b T) bool,
	edit *atomic.Bool,
) nodeReturn[T] {
	i, found := n.locate(probe)
	switch {
	case found && same(n.keys[i], item):
		return nodeReturn[T]{status: returnUnchanged}
	case found:
		return n.replace(i, item, edit)
	default:
		return n.insert(i, item, edit)
	}
}

func (n *leafNode[T]) replace(i int, item T, edit *atomic.Bool) nodeReturn[T] {
	out := n
	if !n.isEditable() {
		out = leafOf(n.items(), edit)
	}
	out.keys[i] = item
	return nodeReturn[T]{status: returnReplaced, nodes: [3]node[T]{out}}
}

// insert puts item at slot i. The parent only has to hear about it
// when the leaf was copied or split, or when item became its largest.
func (n *leafNode[T]) insert(i int, item T, edit *atomic.Bool) nodeReturn[T] {
	if n.isEditable() && n.len < len(n.keys) {
		copy(n.keys[i+1:n.len+1], n.keys[i:n.len])
		n.keys[i] = item
		n.len++
		if i < n.len-1 {
			return nodeReturn[T]{status: returnEarly}
		}
		return nodeReturn[T]{status: returnOne, nodes: [3]node[T]{n}}
	}
	grown := slices.Insert(slices.Clone(n.items()), i, item)
	first, second := leavesOf(grown, edit)
	if second == nil {
		return nodeReturn[T]{status: returnOne, nodes: [3]node[T]{first}}
	}
	return nodeReturn[T]{status: returnTwo, nodes: [3]node[T]{first, second}}
}

func (n *leafNode[T]) remove(
	probe func(T) int,
	leftNode, rightNode node[T],
	edit *atomic.Bool,
) nodeReturn[T] {
	i, found := n.locate(probe)
	if !found {
		return nodeReturn[T]{status: returnUnchanged}
	}
	var left, right *leafNode[T]
	if leftNode != nil {
		left = leftNode.(*leafNode[T])
	}
	if rightNode != nil {
		right = rightNode.(*leafNode[T])
	}
	if n.len-1 >= minLen || (left == nil && right == nil) {
		return n.shrink(i, left, right, edit)
	}

	rest := slices.Delete(slices.Clone(n.items()), i, i+1)
	if preferLeft(left.length(), right.length(), len(rest)) {
		first, second := leavesOf(slices.Concat(left.items(), rest), edit)
		if second == nil {
			first, second = nil, first
		}
		return nodeReturn[T]{
			status: returnThree,
			nodes:  [3]node[T]{first.asNode(), second, right.asNode()},
		}
	}
	first, second := leavesOf(slices.Concat(rest, right.items()), edit)
	return nodeReturn[T]{
		status: returnThree,
		nodes:  [3]node[T]{left.asNode(), first, second.asNode()},
	}
}

// shrink drops slot i from a leaf that stays full enough on its own.
func (n *leafNode[T]) shrink(i int, left, right *leafNode[T], edit *atomic.Bool) nodeReturn[T] {
	center := n
	if n.isEditable() {
		copy(n.keys[i:], n.keys[i+1:n.len])
		n.len--
		var zero T
		n.keys[n.len] = zero
		if i < n.len {
			return nodeReturn[T]{status: returnEarly}
		}
	} else {
		center = leafOf(slices.Delete(slices.Clone(n.items()), i, i+1), edit)
	}
	return nodeReturn[T]{
		status: returnThree,
		nodes:  [3]node[T]{left.asNode(), center, right.asNode()},
	}
}

func (n *leafNode[T]) length() int {
	if n == nil {
		return -1
	}
	return n.len
}
