package mixer_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/ringmix/mixer"
)

// benchmarkSolve mixes n pseudo-random values (one zero) with the given part.
func benchmarkSolve(b *testing.B, n int, part mixer.Part) {
	rng := rand.New(rand.NewSource(int64(n)))
	values := make([]int64, n)
	for i := range values {
		values[i] = rng.Int63n(20001) - 10000
		if values[i] == 0 {
			values[i] = 1
		}
	}
	values[n/2] = 0

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := mixer.Solve(values, part.Options()...); err != nil {
			b.Fatalf("Solve failed: %v", err)
		}
	}
}

// BenchmarkSolve_PartA5000 is a puzzle-sized single round.
func BenchmarkSolve_PartA5000(b *testing.B) { benchmarkSolve(b, 5000, mixer.PartA) }

// BenchmarkSolve_PartB5000 is a puzzle-sized ten-round decryption.
func BenchmarkSolve_PartB5000(b *testing.B) { benchmarkSolve(b, 5000, mixer.PartB) }
