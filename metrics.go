package treap

// Stats counts the structural work a Treap has performed. The engine is
// single-threaded, so the counters are plain integers; a snapshot is
// returned by value from Stats.
type Stats struct {
	// Rotations is the total number of rotations across all operations.
	Rotations int64
	// Appends counts insertions that created a node.
	Appends int64
	// Duplicates counts Appends that found the key already present.
	Duplicates int64
	// Decouples counts nodes removed from the tree.
	Decouples int64
	// Usurpations counts UsurpingFind calls that promoted a node.
	Usurpations int64
}

// Stats returns a snapshot of the treap's operation counters.
func (t *Treap[K]) Stats() Stats {
	return t.stats
}
