package treap

// Node is a single node in a Treap. It carries the ordering key that fixes
// its position in the search tree and the randomly drawn priority that fixes
// its position in the heap.
//
// A node owns its two child subtrees. The parent link is a non-owning
// back-reference: it always equals the node whose child slot currently holds
// this node, or nil if the node is the tree root (or has been decoupled).
type Node[K comparable] struct {
	key      K
	priority uint64
	left     *Node[K]
	right    *Node[K]
	parent   *Node[K]
}

// Key returns the node's ordering key.
func (n *Node[K]) Key() K {
	return n.key
}

// Priority returns the node's heap priority. Larger priorities sit closer
// to the root. The value is assigned when the node is created and changes
// only through UsurpingFind's priority swap.
func (n *Node[K]) Priority() uint64 {
	return n.priority
}

// Left returns the node's left child, or nil.
func (n *Node[K]) Left() *Node[K] {
	return n.left
}

// Right returns the node's right child, or nil.
func (n *Node[K]) Right() *Node[K] {
	return n.right
}

// Parent returns the node's parent, or nil if the node is the tree root or
// is not currently linked into a tree.
func (n *Node[K]) Parent() *Node[K] {
	return n.parent
}
