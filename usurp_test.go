package treap

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// Each usurping lookup of the same key moves it exactly one level closer
// to the root, and once it reaches the root further lookups leave it
// there.
func TestUsurpingFindPromotesOneLevelPerCall(t *testing.T) {
	tr := NewWithSource(uintLess, newRNGWithSeed(0xdecade))
	for i := uint(0); i < 64; i++ {
		tr.Append(i)
	}

	const hot = uint(17)
	node := tr.Find(hot)
	require.NotNil(t, node)

	depth := tr.depth(node)
	for i := 0; i < 64; i++ {
		got := tr.UsurpingFind(hot)
		require.Same(t, node, got)
		require.NoError(t, tr.checkOrdering())

		next := tr.depth(node)
		if depth == 0 {
			require.Equal(t, 0, next, "root must stay put under further usurping lookups")
		} else {
			require.Equal(t, depth-1, next, "usurping lookup must promote exactly one level")
		}
		depth = next
	}

	require.Equal(t, 0, depth)
	require.Same(t, node, tr.Root())
}

func TestUsurpingFindAbsentKeyLeavesTreeAlone(t *testing.T) {
	tr := NewWithSource(uintLess, newRNGWithSeed(11))
	for i := uint(0); i < 16; i++ {
		tr.Append(i)
	}

	before := tr.Dump()
	rotationsBefore := tr.Stats().Rotations

	require.Nil(t, tr.UsurpingFind(99))
	require.Equal(t, before, tr.Dump())
	require.Equal(t, rotationsBefore, tr.Stats().Rotations)
}

// Search order and link consistency must survive two hot keys fighting
// over the top of the tree; exact heap order is not claimed, since each
// promotion leaves the demoted parent's other subtree possibly
// outranking it.
func TestUsurpingFindAlternatingHotKeys(t *testing.T) {
	tr := NewWithSource(uintLess, newRNGWithSeed(0xcafe))
	for i := uint(0); i < 64; i++ {
		tr.Append(i)
	}

	for i := 0; i < 40; i++ {
		require.NotNil(t, tr.UsurpingFind(1))
		require.NotNil(t, tr.UsurpingFind(62))
		require.NoError(t, tr.checkOrdering())
	}

	require.Equal(t, 64, tr.Len())
}

// A single usurping lookup is enough to relax heap order: with 2 above
// its children 1 and 3, promoting 1 hands its low priority to 2, which
// keeps 3 underneath — and 3 may now outrank 2. BST order and links stay
// intact; the strict heap check is expected to trip.
func TestUsurpingFindRelaxesHeapOrder(t *testing.T) {
	src := &sequenceSource{vals: []uint64{100, 50, 60}}
	tr := NewWithSource(uintLess, src)
	for _, k := range []uint{2, 1, 3} {
		tr.Append(k)
	}
	require.NoError(t, tr.checkInvariants())

	one := tr.UsurpingFind(1)
	require.NotNil(t, one)
	require.Same(t, one, tr.Root())

	two := tr.Find(2)
	three := tr.Find(3)
	require.Same(t, two, three.Parent())
	require.Greater(t, three.Priority(), two.Priority(),
		"demoted parent carries the promoted node's old priority beneath its remaining child")

	require.Error(t, tr.checkInvariants(), "strict heap order is gone after the promotion")
	require.NoError(t, tr.checkOrdering())
	for _, k := range []uint{1, 2, 3} {
		require.NotNil(t, tr.Find(k))
	}
}
