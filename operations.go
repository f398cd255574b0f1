package treap

// Append inserts key and returns its node. If the key is already present
// the existing node is returned and the tree is left untouched, so Append
// is idempotent. A fresh node draws its priority from the treap's source,
// is linked in as a leaf, and then bubbles up by rotation exactly until
// heap order is restored.
func (t *Treap[K]) Append(key K) *Node[K] {
	// Descend to the insertion slot, watching for the key en route.
	parent := t.root
	if parent != nil {
		for {
			var next *Node[K]
			switch {
			case t.less(key, parent.key):
				next = parent.left
			case t.less(parent.key, key):
				next = parent.right
			default:
				t.stats.Duplicates++
				return parent
			}
			if next == nil {
				break
			}
			parent = next
		}
	}

	n := t.acquireNode(key, t.src.NextPriority())
	n.parent = parent
	switch {
	case parent == nil:
		t.root = n
	case t.less(key, parent.key):
		parent.left = n
	default:
		parent.right = n
	}
	t.length++
	t.stats.Appends++

	// Bubble up while the new node outranks its parent.
	for n.parent != nil && n.priority > n.parent.priority {
		t.rotate(n.parent, n)
	}

	return n
}

// UsurpingFind is Find with a side effect: if the key is found and the
// node is not already the root, the node swaps priorities with its parent
// and rotates up past it. One call promotes the node one level, so a hot
// key migrates toward the root under repeated lookups. The swap keeps the
// promoted node dominant over its demoted parent, but the parent's other
// subtree may now outrank the parent: exact heap order is traded away for
// temporal locality. Callers that need a read-only lookup must use Find.
func (t *Treap[K]) UsurpingFind(key K) *Node[K] {
	n := t.Find(key)
	if n != nil && n.parent != nil {
		n.priority, n.parent.priority = n.parent.priority, n.priority
		t.rotate(n.parent, n)
		t.stats.Usurpations++
	}
	return n
}

// Decouple removes n from the tree. While n still has two children it is
// rotated down with whichever child holds the higher priority (the right
// child on a tie), which keeps heap order intact at every step. Once n has
// at most one child it is spliced out: the surviving child, if any, takes
// its slot under n's former parent or becomes the new root.
//
// The node is handed back fully unlinked but not reclaimed; the caller
// decides whether to Release it back to the pool, reuse it, or drop it.
// Decoupling a node that is not in the tree is a programming error the
// engine does not detect.
func (t *Treap[K]) Decouple(n *Node[K]) {
	for n.left != nil && n.right != nil {
		if n.left.priority > n.right.priority {
			t.rotate(n, n.left)
		} else {
			t.rotate(n, n.right)
		}
	}

	child := n.left
	if child == nil {
		child = n.right
	}
	if child != nil {
		child.parent = n.parent
	}
	switch {
	case n.parent == nil:
		t.root = child
	case t.less(n.key, n.parent.key):
		n.parent.left = child
	default:
		n.parent.right = child
	}

	n.parent = nil
	n.left = nil
	n.right = nil
	t.length--
	t.stats.Decouples++
}
