package pqueue_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/gridchase/core"
	"github.com/katalvlaran/gridchase/pqueue"
)

// BenchmarkQueue_PutGet measures a full fill-and-drain cycle of 10k entries.
// Complexity: O(n log n)
func BenchmarkQueue_PutGet(b *testing.B) {
	const n = 10000
	rng := rand.New(rand.NewSource(42))
	prios := make([]int64, n)
	for i := range prios {
		prios[i] = rng.Int63n(1 << 20)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		q := pqueue.New()
		for j, p := range prios {
			q.Put(core.Tile{X: j % 100, Y: j / 100}, p)
		}
		for !q.IsEmpty() {
			_, _ = q.Get()
		}
	}
}
