package treap

import (
	"fmt"

	"github.com/xlab/treeprint"
)

// Dump renders the tree as an ASCII outline, one branch per node, with
// each key annotated by its priority. Left children print before right
// children; a lone "·" marks an empty slot whose sibling is occupied so
// the two sides stay distinguishable. Debugging aid only.
func (t *Treap[K]) Dump() string {
	out := treeprint.NewWithRoot("treap")
	if t.root == nil {
		return out.String()
	}

	type frame struct {
		n      *Node[K]
		branch treeprint.Tree
	}
	stack := []frame{{t.root, out}}
	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if f.n == nil {
			f.branch.AddNode("·")
			continue
		}

		b := f.branch.AddBranch(fmt.Sprintf("%v (pri %d)", f.n.key, f.n.priority))
		if f.n.left == nil && f.n.right == nil {
			continue
		}
		// Pushed right-first so the left slot renders first.
		stack = append(stack, frame{f.n.right, b})
		stack = append(stack, frame{f.n.left, b})
	}
	return out.String()
}
