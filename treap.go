package treap

import "sync"

// Less reports whether a orders before b.
type Less[K comparable] func(a, b K) bool

// Treap is a binary search tree over keys that simultaneously keeps
// max-heap order over randomly assigned priorities. The random priorities
// give expected-logarithmic depth without any explicit rebalancing
// bookkeeping; balance is probabilistic.
//
// A Treap is not safe for concurrent use. Callers that share one across
// goroutines must serialize access with a single lock around the whole
// tree; the bidirectional parent/child links make anything finer-grained
// a deadlock hazard.
type Treap[K comparable] struct {
	less     Less[K]
	root     *Node[K]
	length   int
	src      PrioritySource
	stats    Stats
	nodePool sync.Pool
}

// New returns an empty Treap ordered by less, drawing priorities from the
// package's default xorshift source.
func New[K comparable](less Less[K]) *Treap[K] {
	return NewWithSource(less, newRNG())
}

// NewWithSource returns an empty Treap ordered by less, drawing priorities
// from src. Supplying a deterministic source pins the tree shape for a
// given insertion order, which is how the tests script their scenarios.
func NewWithSource[K comparable](less Less[K], src PrioritySource) *Treap[K] {
	t := &Treap[K]{
		less: less,
		src:  src,
	}
	t.nodePool.New = func() any { return new(Node[K]) }
	return t
}

// Len returns the number of nodes currently linked into the tree.
func (t *Treap[K]) Len() int {
	return t.length
}

// Root returns the tree's root node, or nil if the tree is empty.
func (t *Treap[K]) Root() *Node[K] {
	return t.root
}

// Find descends from the root by key order and returns the node holding
// key, or nil if the key is absent. Pure read; the tree is untouched.
func (t *Treap[K]) Find(key K) *Node[K] {
	cur := t.root
	for cur != nil {
		switch {
		case t.less(key, cur.key):
			cur = cur.left
		case t.less(cur.key, key):
			cur = cur.right
		default:
			return cur
		}
	}
	return nil
}

// rotate exchanges the depth order of root and pivot, which must be a
// direct parent/child pair. The direction is derived from the keys: a
// pivot ordering before its root was the left child, so this is a
// right-rotation; otherwise a left-rotation. Pivot rises one level, root
// sinks one level, pivot's inner subtree moves under root, and root's
// former parent (or the container) adopts pivot. BST order is preserved;
// no allocation.
func (t *Treap[K]) rotate(root, pivot *Node[K]) {
	if rotateHook != nil {
		rotateHook(root, pivot)
	}

	if t.less(pivot.key, root.key) {
		// Right-rotation: pivot's right subtree becomes root's left.
		if pivot.right != nil {
			pivot.right.parent = root
		}
		root.left = pivot.right
		pivot.right = root
	} else {
		// Left-rotation: pivot's left subtree becomes root's right.
		if pivot.left != nil {
			pivot.left.parent = root
		}
		root.right = pivot.left
		pivot.left = root
	}

	pivot.parent = root.parent
	switch {
	case root.parent == nil:
		t.root = pivot
	case t.less(root.key, root.parent.key):
		root.parent.left = pivot
	default:
		root.parent.right = pivot
	}
	root.parent = pivot

	t.stats.Rotations++
}
