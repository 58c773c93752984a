package monostack

import "fmt"

// NextGreater returns, for each value x of nums1, the first value to the
// right of x in nums2 that is strictly greater than x, or -1.
//
// Errors: ErrDuplicateValue if nums2 repeats a value, ErrNotSubset if some
// value of nums1 does not occur in nums2.
// Complexity: O(len(nums1) + len(nums2)).
func NextGreater(nums1, nums2 []int) ([]int, error) {
	pos := make(map[int]int, len(nums2))
	for i, v := range nums2 {
		if _, dup := pos[v]; dup {
			return nil, fmt.Errorf("%w: %d at index %d", ErrDuplicateValue, v, i)
		}
		pos[v] = i
	}

	next := nextGreaterIdx(nums2, false)
	out := make([]int, len(nums1))
	for i, x := range nums1 {
		p, ok := pos[x]
		if !ok {
			return nil, fmt.Errorf("%w: %d", ErrNotSubset, x)
		}
		out[i] = valueAt(nums2, next[p])
	}

	return out, nil
}

// NextGreaterCircular returns, for each element, the first strictly greater
// value met when scanning forward from it and wrapping around, or -1.
//
// Example: NextGreaterCircular([1 2 1]) == [2 -1 2].
func NextGreaterCircular(nums []int) []int {
	next := nextGreaterIdx(nums, true)
	out := make([]int, len(nums))
	for i, j := range next {
		out[i] = valueAt(nums, j)
	}

	return out
}

// NextGreaterIndices returns the index of the next strictly greater element
// to the right of each position, or -1.
func NextGreaterIndices(nums []int) []int {
	return nextGreaterIdx(nums, false)
}

// DailyWait returns, for each day, how many days pass until a strictly
// warmer one, or 0 if no warmer day follows.
func DailyWait(temps []int) []int {
	next := nextGreaterIdx(temps, false)
	for i, j := range next {
		if j == None {
			next[i] = 0
		} else {
			next[i] = j - i
		}
	}

	return next
}

func valueAt(nums []int, idx int) int {
	if idx == None {
		return None
	}

	return nums[idx]
}
