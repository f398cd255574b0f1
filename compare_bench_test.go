package treap

import (
	"math/rand"
	"testing"

	"github.com/pinkavat/treap/arena"
)

// BenchmarkCompareEngines runs the same mixed workload against the
// pointer-linked engine and the handle-indexed arena variant.
func BenchmarkCompareEngines(b *testing.B) {
	const keyRange = 1 << 12

	b.Run("Pointer", func(b *testing.B) {
		tr := New(uintLess)
		for i := uint(0); i < keyRange/2; i++ {
			tr.Append(i)
		}
		r := rand.New(rand.NewSource(1_000_003))

		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			key := uint(r.Intn(keyRange))
			switch r.Intn(4) {
			case 0:
				tr.Append(key)
			case 1:
				if node := tr.Find(key); node != nil {
					tr.Decouple(node)
					tr.Release(node)
				}
			case 2:
				tr.Find(key)
			case 3:
				tr.UsurpingFind(key)
			}
		}
	})

	b.Run("Arena", func(b *testing.B) {
		tr := arena.InitTreap[uint](arena.NewConfig(arena.WithInitialCapacity(keyRange)))
		for i := uint(0); i < keyRange/2; i++ {
			tr.Append(i)
		}
		r := rand.New(rand.NewSource(1_000_003))

		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			key := uint(r.Intn(keyRange))
			switch r.Intn(4) {
			case 0:
				tr.Append(key)
			case 1:
				if h, err := tr.Find(key); err == nil {
					_ = tr.Decouple(h)
					_ = tr.Release(h)
				}
			case 2:
				_, _ = tr.Find(key)
			case 3:
				_, _ = tr.UsurpingFind(key)
			}
		}
	})
}
