package subarray

// MaxAverage returns the largest average of any k consecutive values.
//
// The window sum is maintained incrementally (add the entering value,
// subtract the leaving one) in int64 for integer types and as a compensated
// float64 sum otherwise; only the final best sum is divided by k.
//
// Errors: ErrInvalidWindow if k <= 0, ErrWindowTooLarge if k > len(nums).
func MaxAverage[T Number](nums []T, k int) (float64, error) {
	if k <= 0 {
		return 0, ErrInvalidWindow
	}
	if k > len(nums) {
		return 0, ErrWindowTooLarge
	}

	if integral[T]() {
		return float64(maxWindowSumInt(nums, k)) / float64(k), nil
	}

	return maxWindowSumFloat(nums, k) / float64(k), nil
}

// MinSubarrayLen returns the length of the shortest contiguous run whose sum
// is at least target, or 0 if no run qualifies. A target <= 0 is met by any
// single value, so the answer is 1 for non-empty input.
//
// The variable window grows on the right and shrinks from the left while the
// sum still reaches target, which requires non-negative values.
//
// Errors: ErrNegativeValue if any element is negative.
func MinSubarrayLen[T Number](target T, nums []T) (int, error) {
	for _, x := range nums {
		if x < 0 {
			return 0, ErrNegativeValue
		}
	}
	if len(nums) > 0 && target <= 0 {
		return 1, nil
	}

	var sum T
	best, left := 0, 0
	for right, x := range nums {
		sum += x
		for sum >= target {
			if width := right - left + 1; best == 0 || width < best {
				best = width
			}
			sum -= nums[left]
			left++
		}
	}

	return best, nil
}
