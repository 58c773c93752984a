package monostack_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/seqkit/monostack"
)

func BenchmarkNextGreaterCircular_100k(b *testing.B) {
	r := rand.New(rand.NewSource(42))
	nums := make([]int, 100_000)
	for i := range nums {
		nums[i] = r.Intn(1000)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = monostack.NextGreaterCircular(nums)
	}
}
