package subarray

// MaxSubarray returns the largest sum of any non-empty contiguous subarray.
// For an all-negative input this is the least-negative element, not 0.
//
// Recurrence:
//
//	bestEndingHere = max(x, bestEndingHere + x)
//	best           = max(best, bestEndingHere)
//
// both seeded with nums[0].
//
// Errors: ErrEmptyInput if len(nums) == 0.
func MaxSubarray[T Number](nums []T) (T, error) {
	_, best, err := MaxSubarrayRange(nums)

	return best, err
}

// MaxSubarrayRange is MaxSubarray that also reports where the best subarray
// lies. When several subarrays share the best sum the one found first by the
// scan (smallest Hi, then the start Kadane was tracking) is returned.
//
// Errors: ErrEmptyInput if len(nums) == 0.
func MaxSubarrayRange[T Number](nums []T) (Range, T, error) {
	if len(nums) == 0 {
		var zero T

		return Range{}, zero, ErrEmptyInput
	}

	best, here := nums[0], nums[0]
	bestRange := Range{Lo: 0, Hi: 1}
	start := 0
	for i := 1; i < len(nums); i++ {
		x := nums[i]
		if here+x < x { // restarting beats extending
			here = x
			start = i
		} else {
			here += x
		}
		if here > best {
			best = here
			bestRange = Range{Lo: start, Hi: i + 1}
		}
	}

	return bestRange, best, nil
}
