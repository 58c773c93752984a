package subarray_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/seqkit/subarray"
)

// randomInts returns n values in [-50, 50).
func randomInts(n int) []int {
	r := rand.New(rand.NewSource(42))
	out := make([]int, n)
	for i := range out {
		out[i] = r.Intn(100) - 50
	}

	return out
}

func BenchmarkMaxSubarray_100k(b *testing.B) {
	nums := randomInts(100_000)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := subarray.MaxSubarray(nums); err != nil {
			b.Fatalf("MaxSubarray failed: %v", err)
		}
	}
}

func BenchmarkMaxAverage_100k(b *testing.B) {
	nums := randomInts(100_000)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := subarray.MaxAverage(nums, 64); err != nil {
			b.Fatalf("MaxAverage failed: %v", err)
		}
	}
}
