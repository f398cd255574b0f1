package treap

import "fmt"

// inOrder visits every node in ascending key order using an explicit
// stack. The visit callback returns false to stop early. Diagnostics only;
// the public surface deliberately exposes no iteration API.
func (t *Treap[K]) inOrder(visit func(*Node[K]) bool) {
	stack := make([]*Node[K], 0, 32)
	cur := t.root
	for cur != nil || len(stack) > 0 {
		for cur != nil {
			stack = append(stack, cur)
			cur = cur.left
		}
		cur = stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if !visit(cur) {
			return
		}
		cur = cur.right
	}
}

// MaxDepth returns the number of edges on the longest root-to-leaf path.
// Empty and single-node trees both report 0. With random priorities the
// expectation is a small constant multiple of log2(Len()), around 2x in
// practice even for ascending insertion order.
func (t *Treap[K]) MaxDepth() int {
	if t.root == nil {
		return 0
	}

	type frame struct {
		n     *Node[K]
		depth int
	}
	maxDepth := 0
	stack := []frame{{t.root, 0}}
	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if f.depth > maxDepth {
			maxDepth = f.depth
		}
		if f.n.left != nil {
			stack = append(stack, frame{f.n.left, f.depth + 1})
		}
		if f.n.right != nil {
			stack = append(stack, frame{f.n.right, f.depth + 1})
		}
	}
	return maxDepth
}

// depth returns the number of edges between n and the root.
func (t *Treap[K]) depth(n *Node[K]) int {
	d := 0
	for n.parent != nil {
		n = n.parent
		d++
	}
	return d
}

// checkInvariants verifies the four structural invariants: strict BST
// order, max-heap order over priorities, back-link consistency, and key
// uniqueness. It walks the whole tree iteratively and reports the first
// violation found. Only valid for trees built by Append and Decouple
// alone: UsurpingFind deliberately trades exact heap order for locality
// (the demoted parent keeps its other child while carrying the promoted
// node's old, lower priority), so sequences including it must use
// checkOrdering instead.
func (t *Treap[K]) checkInvariants() error {
	return t.check(true)
}

// checkOrdering verifies BST order, back-link consistency, key
// uniqueness, and the length count, but not heap order. This is the
// strongest claim that survives usurping lookups.
func (t *Treap[K]) checkOrdering() error {
	return t.check(false)
}

func (t *Treap[K]) check(heapOrder bool) error {
	if t.root != nil && t.root.parent != nil {
		return fmt.Errorf("root %v has a parent", t.root.key)
	}

	var prev *Node[K]
	count := 0
	var firstErr error
	t.inOrder(func(n *Node[K]) bool {
		count++
		if prev != nil && !t.less(prev.key, n.key) {
			firstErr = fmt.Errorf("BST order violated: %v precedes %v in-order", prev.key, n.key)
			return false
		}
		prev = n
		if heapOrder && n.parent != nil && n.priority > n.parent.priority {
			firstErr = fmt.Errorf("heap order violated: %v (pri %d) above its parent's priority %d",
				n.key, n.priority, n.parent.priority)
			return false
		}
		if n.left != nil && n.left.parent != n {
			firstErr = fmt.Errorf("back-link broken: left child of %v", n.key)
			return false
		}
		if n.right != nil && n.right.parent != n {
			firstErr = fmt.Errorf("back-link broken: right child of %v", n.key)
			return false
		}
		return true
	})
	if firstErr != nil {
		return firstErr
	}
	if count != t.length {
		return fmt.Errorf("length mismatch: walk saw %d nodes, Len reports %d", count, t.length)
	}
	return nil
}
