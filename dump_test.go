package treap

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDumpRendersEveryNode(t *testing.T) {
	src := &sequenceSource{vals: []uint64{90, 50, 60}}
	tr := NewWithSource(uintLess, src)
	for _, k := range []uint{2, 1, 3} {
		tr.Append(k)
	}

	out := tr.Dump()
	assert.Contains(t, out, "2 (pri 90)")
	assert.Contains(t, out, "1 (pri 50)")
	assert.Contains(t, out, "3 (pri 60)")
}

func TestDumpMarksEmptySiblingSlot(t *testing.T) {
	// 2 above 1: the left slot is filled, the right is empty and must be
	// marked so the sides stay distinguishable.
	src := &sequenceSource{vals: []uint64{90, 50}}
	tr := NewWithSource(uintLess, src)
	tr.Append(2)
	tr.Append(1)

	assert.Contains(t, tr.Dump(), "·")
}

func TestDumpEmptyTree(t *testing.T) {
	tr := New(uintLess)
	require.NotEmpty(t, tr.Dump())
}
