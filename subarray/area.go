package subarray

// MaxArea treats heights[i] as a vertical line at x = i and returns the
// largest area (j - i) × min(heights[i], heights[j]) over all pairs i < j.
// Fewer than two lines hold no water and yield 0.
//
// Areas are computed in float64 so narrow element types (uint8, int16...)
// cannot wrap; integer areas are exact up to 2^53.
//
// Two pointers start at both ends. The shorter line bounds every container
// it can still form with lines between the pointers, and all of those are
// narrower, so it is discarded: always advance the pointer at the shorter
// height.
//
// Errors: ErrNegativeHeight if any height is negative.
func MaxArea[T Number](heights []T) (float64, error) {
	for _, h := range heights {
		if h < 0 {
			return 0, ErrNegativeHeight
		}
	}

	var best float64
	i, j := 0, len(heights)-1
	for i < j {
		width := float64(j - i)
		if heights[i] < heights[j] {
			best = max(best, width*float64(heights[i]))
			i++
		} else {
			best = max(best, width*float64(heights[j]))
			j--
		}
	}

	return best, nil
}
