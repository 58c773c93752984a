package window

// CharacterReplacement returns the length of the longest substring of s that
// can be made of a single repeated symbol by replacing at most k runes.
//
// The window [left, right] is valid while width - maxCount <= k, where
// maxCount is the highest single-symbol count ever seen in a window. When an
// expansion makes the window invalid it slides by exactly one step instead of
// shrinking. maxCount is not lowered on slide: a stale maxCount can only keep
// the window at its current width, and the answer only grows when a genuinely
// larger maxCount appears.
//
// Errors: ErrNegativeK if k < 0, ErrSymbolOutsideAlphabet from WithAlphabet.
// Complexity: O(|s|) time, O(|s| + σ) memory.
func CharacterReplacement(s string, k int, opts ...Option) (int, error) {
	if k < 0 {
		return 0, ErrNegativeK
	}
	o := applyOptions(opts)

	enc := newEncoder(o)
	src, err := enc.encode(s)
	if err != nil {
		return 0, err
	}

	counts := make([]int, enc.size())
	maxCount, left, best := 0, 0, 0
	for right, c := range src {
		counts[c]++
		maxCount = max(maxCount, counts[c])

		if right-left+1-maxCount > k {
			counts[src[left]]-- // slide, never shrink
			left++
		}
		best = max(best, right-left+1)
	}

	return best, nil
}

// LongestKDistinct returns the length of the longest substring of s holding
// at most k distinct symbols. k == 0 yields 0.
//
// Errors: ErrNegativeK if k < 0, ErrSymbolOutsideAlphabet from WithAlphabet.
// Complexity: O(|s|) time, O(|s| + σ) memory.
func LongestKDistinct(s string, k int, opts ...Option) (int, error) {
	if k < 0 {
		return 0, ErrNegativeK
	}
	o := applyOptions(opts)

	enc := newEncoder(o)
	src, err := enc.encode(s)
	if err != nil {
		return 0, err
	}

	counts := make([]int, enc.size())
	distinct, left, best := 0, 0, 0
	for right, c := range src {
		if counts[c] == 0 {
			distinct++
		}
		counts[c]++

		for distinct > k {
			d := src[left]
			counts[d]--
			if counts[d] == 0 {
				distinct--
			}
			left++
		}
		best = max(best, right-left+1)
	}

	return best, nil
}
