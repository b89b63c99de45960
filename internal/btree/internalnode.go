package btree

import (
	"slices"
	"sync/atomic"
)

// internalNode keeps, for every child, the largest item below it.
type internalNode[T any] struct {
	*leafNode[T]

	children []node[T]
}

func newNode[T any](len int, edit *atomic.Bool) *internalNode[T] {
	return &internalNode[T]{
		leafNode: &leafNode[T]{
			keys: make([]T, len),
			len:  len,
			edit: edit,
		},
		children: make([]node[T], len),
	}
}

// internalOf returns a node over children keyed by their largest
// items.
func internalOf[T any](children []node[T], edit *atomic.Bool) *internalNode[T] {
	out := newNode[T](len(children), edit)
	for i, child := range children {
		out.keys[i] = child.maxKey()
		out.children[i] = child
	}
	return out
}

func internalsOf[T any](
	children []node[T],
	edit *atomic.Bool,
) (*internalNode[T], *internalNode[T]) {
	first, second := halve(children)
	if second == nil {
		return internalOf(first, edit), nil
	}
	return internalOf(first, edit), internalOf(second, edit)
}

func (n *internalNode[T]) asNode() node[T] {
	if n == nil {
		return nil
	}
	return n
}

func (n *internalNode[T]) length() int {
	if n == nil {
		return -1
	}
	return n.len
}

func (n *internalNode[T]) nodes() []node[T] {
	return n.children[:n.len]
}

func (n *internalNode[T]) find(probe func(T) int) (T, bool) {
	i, found := n.locate(probe)
	switch {
	case found:
		return n.keys[i], true
	case i == n.len:
		var zero T
		return zero, false
	default:
		return n.children[i].find(probe)
	}
}

func (n *internalNode[T]) add(
	item T,
	probe func(T) int,
	same func(a, b T) bool,
	edit *atomic.Bool,
) nodeReturn[T] {
	i, found := n.locate(probe)
	if found && same(n.keys[i], item) {
		return nodeReturn[T]{status: returnUnchanged}
	}
	i = min(i, n.len-1)
	ret := n.children[i].add(item, probe, same, edit)
	switch ret.status {
	case returnUnchanged, returnEarly:
		return ret
	case returnOne, returnReplaced:
		return n.update(i, ret.nodes[0], ret.status, edit)
	default:
		grown := slices.Concat(n.nodes()[:i], ret.nodes[:2], n.nodes()[i+1:])
		first, second := internalsOf(grown, edit)
		if second == nil {
			return nodeReturn[T]{status: returnOne, nodes: [3]node[T]{first}}
		}
		return nodeReturn[T]{status: returnTwo, nodes: [3]node[T]{first, second}}
	}
}

// update points slot i at child. A replaced item may be the key of an
// ancestor as well, so replacements always travel to the root.
func (n *internalNode[T]) update(
	i int,
	child node[T],
	status returnStatus,
	edit *atomic.Bool,
) nodeReturn[T] {
	out := n
	if !n.isEditable() {
		out = internalOf(n.nodes(), edit)
	}
	out.keys[i] = child.maxKey()
	out.children[i] = child
	if out == n && i < n.len-1 && status != returnReplaced {
		return nodeReturn[T]{status: returnEarly}
	}
	return nodeReturn[T]{status: status, nodes: [3]node[T]{out}}
}

func (n *internalNode[T]) remove(
	probe func(T) int,
	leftNode, rightNode node[T],
	edit *atomic.Bool,
) nodeReturn[T] {
	i, _ := n.locate(probe)
	if i == n.len {
		return nodeReturn[T]{status: returnUnchanged}
	}

	// The child at i is rebalanced against its neighbours, so the
	// window [lo, hi) of children may be replaced.
	lo, hi := i, i+1
	var leftChild, rightChild node[T]
	if i > 0 {
		lo--
		leftChild = n.children[i-1]
	}
	if i < n.len-1 {
		hi++
		rightChild = n.children[i+1]
	}
	ret := n.children[i].remove(probe, leftChild, rightChild, edit)
	switch ret.status {
	case returnUnchanged, returnEarly:
		return ret
	}

	children := make([]node[T], 0, n.len)
	children = append(children, n.children[:lo]...)
	for _, child := range ret.nodes {
		if child != nil {
			children = append(children, child)
		}
	}
	children = append(children, n.children[hi:n.len]...)

	var left, right *internalNode[T]
	if leftNode != nil {
		left = leftNode.(*internalNode[T])
	}
	if rightNode != nil {
		right = rightNode.(*internalNode[T])
	}
	if len(children) >= minLen || (left == nil && right == nil) {
		return n.rebuild(children, hi, left, right, edit)
	}

	if preferLeft(left.length(), right.length(), len(children)) {
		first, second := internalsOf(slices.Concat(left.nodes(), children), edit)
		if second == nil {
			first, second = nil, first
		}
		return nodeReturn[T]{
			status: returnThree,
			nodes:  [3]node[T]{first.asNode(), second, right.asNode()},
		}
	}
	first, second := internalsOf(slices.Concat(children, right.nodes()), edit)
	return nodeReturn[T]{
		status: returnThree,
		nodes:  [3]node[T]{left.asNode(), first, second.asNode()},
	}
}

// rebuild gives n its new children. It works in place when n is
// editable and its last child, and so its largest key, is untouched.
func (n *internalNode[T]) rebuild(
	children []node[T],
	hi int,
	left, right *internalNode[T],
	edit *atomic.Bool,
) nodeReturn[T] {
	if n.isEditable() && hi < n.len {
		for i, child := range children {
			n.keys[i] = child.maxKey()
			n.children[i] = child
		}
		clear(n.keys[len(children):n.len])
		clear(n.children[len(children):n.len])
		n.len = len(children)
		return nodeReturn[T]{status: returnEarly}
	}
	return nodeReturn[T]{
		status: returnThree,
		nodes:  [3]node[T]{left.asNode(), internalOf(children, edit), right.asNode()},
	}
}
