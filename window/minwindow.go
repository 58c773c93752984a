package window

// MinWindow returns the shortest substring of s that contains every symbol of
// t with at least t's multiplicity, or "" when no such substring exists.
// Among equally short windows the leftmost one wins.
//
// Example:
//
//	w, _ := MinWindow("ADOBECODEBANC", "ABC") // "BANC"
func MinWindow(s, t string, opts ...Option) (string, error) {
	span, err := MinWindowSpan(s, t, opts...)
	if err != nil || !span.Found() {
		return "", err
	}

	return string([]rune(s)[span.Start:span.End()]), nil
}

// MinWindowSpan is MinWindow reporting the rune span instead of the text.
//
// Algorithm:
//  1. need[c] = multiplicity of c in t; required = number of distinct symbols of t.
//  2. Expand right over s, incrementing have[c]. When have[c] reaches need[c]
//     exactly, one more symbol is satisfied.
//  3. While satisfied == required the window is valid: record it if shorter
//     than the best so far, then drop s[left]. When have[d] falls to
//     need[d]-1 the symbol is no longer satisfied and the window is invalid.
//
// Errors: ErrEmptyPattern if t == "", ErrSymbolOutsideAlphabet from WithAlphabet.
// Returns Span{Start: -1} if len(t) > len(s) or no window covers t.
// Complexity: O(|s| + |t|) time, O(|s| + |t| + σ) memory.
func MinWindowSpan(s, t string, opts ...Option) (Span, error) {
	if t == "" {
		return notFound, ErrEmptyPattern
	}
	o := applyOptions(opts)

	src, pat, size, err := encodePair(s, t, o)
	if err != nil {
		return notFound, err
	}
	if len(pat) > len(src) {
		return notFound, nil
	}

	// 1. Required counts.
	need := make([]int, size)
	required := 0
	for _, c := range pat {
		if need[c] == 0 {
			required++
		}
		need[c]++
	}

	// 2-3. Expand, then shrink while valid.
	have := make([]int, size)
	satisfied := 0
	best := notFound
	left := 0
	for right, c := range src {
		have[c]++
		if need[c] > 0 && have[c] == need[c] {
			satisfied++
		}

		for satisfied == required {
			if width := right - left + 1; !best.Found() || width < best.Len {
				best = Span{Start: left, Len: width}
			}
			d := src[left]
			have[d]--
			if need[d] > 0 && have[d] == need[d]-1 {
				satisfied--
			}
			left++
		}
	}

	return best, nil
}
