package ring_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/ringmix/ring"
)

// benchmarkShift runs random shifts on a ring of n nodes with stride j (0 = default).
func benchmarkShift(b *testing.B, n, j int) {
	r, err := ring.New(n, ring.WithJump(j))
	if err != nil {
		b.Fatalf("New failed: %v", err)
	}
	rng := rand.New(rand.NewSource(1))
	curs := make([]ring.Node, 1024)
	amounts := make([]int, 1024)
	for i := range curs {
		curs[i] = ring.Node(rng.Intn(n))
		amounts[i] = rng.Intn(n)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		r.Shift(curs[i&1023], amounts[i&1023])
	}
}

// BenchmarkShift_5000Default uses the puzzle-sized ring with J = floor(sqrt(N/2)).
func BenchmarkShift_5000Default(b *testing.B) { benchmarkShift(b, 5000, 0) }

// BenchmarkShift_5000Sqrt uses J = floor(sqrt(N)).
func BenchmarkShift_5000Sqrt(b *testing.B) { benchmarkShift(b, 5000, 70) }

// BenchmarkShift_5000Linear degenerates to a plain linked list (J = 1).
func BenchmarkShift_5000Linear(b *testing.B) { benchmarkShift(b, 5000, 1) }

// BenchmarkAdvance_5000 measures the positional query alone.
func BenchmarkAdvance_5000(b *testing.B) {
	r, err := ring.New(5000)
	if err != nil {
		b.Fatalf("New failed: %v", err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = r.Advance(ring.Node(i%5000), i%4999)
	}
}
