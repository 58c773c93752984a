package window_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/seqkit/window"
)

// benchmarkMinWindow runs MinWindowSpan over an n-rune source.
func benchmarkMinWindow(b *testing.B, n int, opts ...window.Option) {
	r := rand.New(rand.NewSource(1))
	s := randomString(r, "abcdefghijklmnopqrstuvwxyz", n)
	p := "xyz"

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := window.MinWindowSpan(s, p, opts...); err != nil {
			b.Fatalf("MinWindowSpan failed: %v", err)
		}
	}
}

func BenchmarkMinWindow_Runes10k(b *testing.B) { benchmarkMinWindow(b, 10_000) }

func BenchmarkMinWindow_LowerASCII10k(b *testing.B) {
	benchmarkMinWindow(b, 10_000, window.WithAlphabet(window.LowerASCII))
}

func BenchmarkFindAnagrams_10k(b *testing.B) {
	r := rand.New(rand.NewSource(2))
	s := randomString(r, "abcd", 10_000)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := window.FindAnagrams(s, "abcd"); err != nil {
			b.Fatalf("FindAnagrams failed: %v", err)
		}
	}
}

func BenchmarkLongestUnique_10k(b *testing.B) {
	r := rand.New(rand.NewSource(3))
	s := randomString(r, "abcdefghijklmnopqrstuvwxyz", 10_000)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = window.LongestUnique(s)
	}
}
