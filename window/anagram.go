package window

// CheckInclusion reports whether some permutation of p occurs as a
// contiguous substring of s.
//
// Errors: ErrEmptyPattern if p == "", ErrSymbolOutsideAlphabet from WithAlphabet.
// Returns false without error if len(p) > len(s).
func CheckInclusion(p, s string, opts ...Option) (bool, error) {
	starts, err := scanAnagrams(s, p, applyOptions(opts), true)
	if err != nil {
		return false, err
	}

	return len(starts) > 0, nil
}

// FindAnagrams returns, in ascending order, every rune offset of s at which
// a permutation of p begins. The result is empty (never nil) when there is
// no match.
//
// Errors: ErrEmptyPattern if p == "", ErrSymbolOutsideAlphabet from WithAlphabet.
func FindAnagrams(s, p string, opts ...Option) ([]int, error) {
	return scanAnagrams(s, p, applyOptions(opts), false)
}

// scanAnagrams slides a window of len(p) over s.
//
// delta[c] = count of c in p minus count of c in the window. mismatched is
// the number of symbols whose delta is non-zero; the window is a permutation
// of p exactly when mismatched == 0, i.e. when every one of the σ slots
// matches.
// Complexity: O(|s| + |p|) time, O(|s| + |p| + σ) memory.
func scanAnagrams(s, p string, o Options, first bool) ([]int, error) {
	if p == "" {
		return nil, ErrEmptyPattern
	}

	src, pat, size, err := encodePair(s, p, o)
	if err != nil {
		return nil, err
	}

	starts := []int{}
	m := len(pat)
	if m > len(src) {
		return starts, nil
	}

	delta := make([]int, size)
	mismatched := 0
	bump := func(c, d int) {
		before := delta[c]
		delta[c] += d
		switch {
		case before == 0:
			mismatched++
		case delta[c] == 0:
			mismatched--
		}
	}

	// 1. Prime with the pattern and the first window.
	for _, c := range pat {
		bump(c, 1)
	}
	for _, c := range src[:m] {
		bump(c, -1)
	}
	if mismatched == 0 {
		starts = append(starts, 0)
		if first {
			return starts, nil
		}
	}

	// 2. Slide: admit src[right], evict src[right-m].
	for right := m; right < len(src); right++ {
		bump(src[right], -1)
		bump(src[right-m], 1)
		if mismatched == 0 {
			starts = append(starts, right-m+1)
			if first {
				return starts, nil
			}
		}
	}

	return starts, nil
}
