package treap

import (
	"sync/atomic"
	"time"
)

// PrioritySource produces heap priorities for new nodes. Any source of
// well-distributed unsigned integers will do; the closer to uniform over
// the full uint64 range, the fewer priority collisions and the better the
// expected balance. Implementations used with a single Treap need not be
// safe for concurrent use.
type PrioritySource interface {
	NextPriority() uint64
}

const defaultSeed = uint64(0xdeadbeefcafebabe)

func newRandomSeed() uint64 {
	seed := uint64(time.Now().UnixNano())
	if seed == 0 {
		seed = defaultSeed
	}
	return seed
}

// RNG is the default PrioritySource: a lock-free xorshift generator.
type RNG struct {
	seed atomic.Uint64
}

func newRNG() *RNG {
	r := &RNG{}
	r.seed.Store(newRandomSeed())
	return r
}

func newRNGWithSeed(seed uint64) *RNG {
	r := &RNG{}
	if seed == 0 {
		seed = defaultSeed
	}
	r.seed.Store(seed)
	return r
}

// NextPriority returns the next pseudorandom priority.
func (r *RNG) NextPriority() uint64 {
	for {
		current := r.seed.Load()
		if current == 0 {
			r.seed.CompareAndSwap(0, newRandomSeed())
			continue
		}
		x := current
		x ^= x >> 12
		x ^= x << 25
		x ^= x >> 27
		if x == 0 {
			x = defaultSeed
		}
		if r.seed.CompareAndSwap(current, x) {
			return x * 2685821657736338717
		}
	}
}
