// Package arena implements the treap over a handle-indexed node arena.
// Nodes live in one backing slice and every link, parent included, is a
// slice index rather than a pointer, so the structure contains no cyclic
// pointer graph and is trivial to inspect or serialize. "Disposing" a
// decoupled node returns its index to a free list for reuse by a later
// Append.
//
// Like the pointer-based engine in the parent package, an arena treap is
// not safe for concurrent use.
package arena

import (
	"cmp"
	randv2 "math/rand/v2"
)

type node[K cmp.Ordered] struct {
	key      K
	priority uint64
	left     Handle
	right    Handle
	parent   Handle
	live     bool
}

// Treap is a binary search tree by key and a max-heap by randomly drawn
// priority, stored in a handle-indexed arena.
type Treap[K cmp.Ordered] struct {
	nodes  []node[K]
	free   []Handle
	root   Handle
	length int
	rng    randv2.Source
}

// InitTreap creates a new empty arena treap using the provided
// configuration.
func InitTreap[K cmp.Ordered](config Config) *Treap[K] {
	return &Treap[K]{
		nodes: make([]node[K], 0, config.initialCapacity),
		root:  None,
		rng:   randv2.NewPCG(randv2.Uint64(), randv2.Uint64()),
	}
}

func (t *Treap[K]) node(h Handle) *node[K] {
	return &t.nodes[h]
}

func (t *Treap[K]) valid(h Handle) bool {
	return h != None && int(h) < len(t.nodes) && t.nodes[h].live
}

// Len returns the number of nodes currently linked into the tree.
func (t *Treap[K]) Len() int {
	return t.length
}

// Root returns the handle of the tree's root, or None if the tree is empty.
func (t *Treap[K]) Root() Handle {
	return t.root
}

// Key returns the ordering key of the node named by h.
func (t *Treap[K]) Key(h Handle) (K, error) {
	if !t.valid(h) {
		var zero K
		return zero, ErrNotInTree
	}
	return t.nodes[h].key, nil
}

// Priority returns the heap priority of the node named by h.
func (t *Treap[K]) Priority(h Handle) (uint64, error) {
	if !t.valid(h) {
		return 0, ErrNotInTree
	}
	return t.nodes[h].priority, nil
}

// Parent returns the parent handle of the node named by h, or None at the
// root.
func (t *Treap[K]) Parent(h Handle) (Handle, error) {
	if !t.valid(h) {
		return None, ErrNotInTree
	}
	return t.nodes[h].parent, nil
}

// alloc produces a live node for key, reusing a free-listed slot when one
// exists. Growing the backing slice moves the nodes, so callers must not
// hold *node pointers across an alloc.
func (t *Treap[K]) alloc(key K) Handle {
	var h Handle
	if len(t.free) > 0 {
		h = t.free[len(t.free)-1]
		t.free = t.free[:len(t.free)-1]
	} else {
		t.nodes = append(t.nodes, node[K]{})
		h = Handle(len(t.nodes) - 1)
	}
	*t.node(h) = node[K]{
		key:      key,
		priority: t.rng.Uint64(),
		left:     None,
		right:    None,
		parent:   None,
		live:     true,
	}
	return h
}

// rotate exchanges the depth order of root and pivot, which must be a
// direct parent/child pair. Direction is derived from the keys, exactly as
// in the pointer-based engine.
func (t *Treap[K]) rotate(root, pivot Handle) {
	r := t.node(root)
	p := t.node(pivot)

	if p.key < r.key {
		if p.right != None {
			t.node(p.right).parent = root
		}
		r.left = p.right
		p.right = root
	} else {
		if p.left != None {
			t.node(p.left).parent = root
		}
		r.right = p.left
		p.left = root
	}

	p.parent = r.parent
	switch {
	case r.parent == None:
		t.root = pivot
	case r.key < t.node(r.parent).key:
		t.node(r.parent).left = pivot
	default:
		t.node(r.parent).right = pivot
	}
	r.parent = pivot
}

// Find returns the handle of the node holding key. If the key does not
// exist ErrKeyNotFound is returned.
func (t *Treap[K]) Find(key K) (Handle, error) {
	cur := t.root
	for cur != None {
		n := t.node(cur)
		switch {
		case key < n.key:
			cur = n.left
		case n.key < key:
			cur = n.right
		default:
			return cur, nil
		}
	}
	return None, ErrKeyNotFound
}

// UsurpingFind is Find with a promotion side effect: the found node swaps
// priorities with its parent and rotates up one level, so repeatedly
// looked-up keys migrate toward the root.
func (t *Treap[K]) UsurpingFind(key K) (Handle, error) {
	h, err := t.Find(key)
	if err != nil {
		return None, err
	}
	n := t.node(h)
	if n.parent != None {
		p := t.node(n.parent)
		n.priority, p.priority = p.priority, n.priority
		t.rotate(n.parent, h)
	}
	return h, nil
}

// Append inserts key and returns its handle. If the key is already present
// the existing node's handle is returned and the tree is left untouched.
func (t *Treap[K]) Append(key K) Handle {
	parent := t.root
	if parent != None {
		for {
			p := t.node(parent)
			var next Handle
			switch {
			case key < p.key:
				next = p.left
			case p.key < key:
				next = p.right
			default:
				return parent
			}
			if next == None {
				break
			}
			parent = next
		}
	}

	h := t.alloc(key)
	t.node(h).parent = parent
	switch {
	case parent == None:
		t.root = h
	case key < t.node(parent).key:
		t.node(parent).left = h
	default:
		t.node(parent).right = h
	}
	t.length++

	for {
		n := t.node(h)
		if n.parent == None || n.priority <= t.node(n.parent).priority {
			break
		}
		t.rotate(n.parent, h)
	}
	return h
}

// Decouple removes the node named by h from the tree, sinking it by
// rotation with its higher-priority child (right child on a tie) until it
// has at most one child, then splicing it out. The handle stays valid
// until Release; the node's key and priority remain readable.
func (t *Treap[K]) Decouple(h Handle) error {
	if !t.valid(h) {
		return ErrNotInTree
	}
	if h != t.root && t.nodes[h].parent == None {
		// Already decoupled.
		return ErrNotInTree
	}

	for {
		n := t.node(h)
		if n.left == None || n.right == None {
			break
		}
		if t.node(n.left).priority > t.node(n.right).priority {
			t.rotate(h, n.left)
		} else {
			t.rotate(h, n.right)
		}
	}

	n := t.node(h)
	child := n.left
	if child == None {
		child = n.right
	}
	if child != None {
		t.node(child).parent = n.parent
	}
	switch {
	case n.parent == None:
		t.root = child
	case n.key < t.node(n.parent).key:
		t.node(n.parent).left = child
	default:
		t.node(n.parent).right = child
	}

	n.parent, n.left, n.right = None, None, None
	t.length--
	return nil
}

// Release returns a decoupled node's slot to the free list. The handle
// must not be used afterwards; a later Append may hand it out again.
func (t *Treap[K]) Release(h Handle) error {
	if !t.valid(h) {
		return ErrNotInTree
	}
	n := t.node(h)
	if h == t.root || n.parent != None || n.left != None || n.right != None {
		return ErrStillLinked
	}
	*n = node[K]{left: None, right: None, parent: None}
	t.free = append(t.free, h)
	return nil
}

// inOrder visits every linked node in ascending key order using an
// explicit stack.
func (t *Treap[K]) inOrder(visit func(Handle) bool) {
	stack := make([]Handle, 0, 32)
	cur := t.root
	for cur != None || len(stack) > 0 {
		for cur != None {
			stack = append(stack, cur)
			cur = t.node(cur).left
		}
		cur = stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if !visit(cur) {
			return
		}
		cur = t.node(cur).right
	}
}
