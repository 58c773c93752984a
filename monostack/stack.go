package monostack

// nextGreaterIdx returns, for every index i, the index of the nearest
// strictly greater element to its right, or None. With circular set the
// search wraps around to the start of nums.
func nextGreaterIdx(nums []int, circular bool) []int {
	n := len(nums)
	out := make([]int, n)
	for i := range out {
		out[i] = None
	}

	span := n
	if circular {
		span = 2 * n
	}

	stack := make([]int, 0, n) // indices, values strictly decreasing bottom to top
	for j := span - 1; j >= 0; j-- {
		i := j % n
		// 1. Drop candidates that cannot exceed nums[i].
		for len(stack) > 0 && nums[stack[len(stack)-1]] <= nums[i] {
			stack = stack[:len(stack)-1]
		}
		// 2. The surviving top is the answer. On the first (shadow) lap of a
		//    circular walk the answer is overwritten by the second lap.
		if len(stack) > 0 {
			out[i] = stack[len(stack)-1]
		} else {
			out[i] = None
		}
		// 3. Become a candidate for elements further left.
		stack = append(stack, i)
	}

	return out
}
