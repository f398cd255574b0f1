package treap

func (t *Treap[K]) acquireNode(key K, priority uint64) *Node[K] {
	n := t.nodePool.Get().(*Node[K])
	n.key = key
	n.priority = priority
	n.left = nil
	n.right = nil
	n.parent = nil
	return n
}

// Release scrubs a decoupled node and returns it to the treap's pool so a
// later Append can reuse the allocation. Decouple and Release are
// deliberately separate steps: a decoupled node stays fully readable until
// the caller is done with it. Nodes that still carry links are ignored.
func (t *Treap[K]) Release(n *Node[K]) {
	if n == nil || n == t.root || n.parent != nil || n.left != nil || n.right != nil {
		return
	}

	var zeroK K
	n.key = zeroK
	n.priority = 0
	t.nodePool.Put(n)
}
