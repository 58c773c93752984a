package window

// LongestUnique returns the length of the longest substring of s whose runes
// are pairwise distinct. LongestUnique("") == 0.
func LongestUnique(s string) int {
	return LongestUniqueSpan(s).Len
}

// LongestUniqueSpan returns the leftmost longest all-distinct substring of s.
// For s == "" it returns Span{Start: 0, Len: 0}.
//
// last[c] holds the most recent offset of symbol c. When c repeats inside
// the current window, left jumps to one past that offset; occurrences left
// of the window are ignored.
// Complexity: O(|s|) time, O(|s| + σ) memory.
func LongestUniqueSpan(s string) Span {
	enc := newEncoder(DefaultOptions())
	src, _ := enc.encode(s) // unbounded alphabet never fails

	last := make([]int, enc.size())
	for i := range last {
		last[i] = -1
	}

	best := Span{Start: 0, Len: 0}
	left := 0
	for right, c := range src {
		if last[c] >= left {
			left = last[c] + 1
		}
		last[c] = right
		if width := right - left + 1; width > best.Len {
			best = Span{Start: left, Len: width}
		}
	}

	return best
}
