// Package subarray implements running-aggregate scans over numeric slices:
// Kadane's maximum subarray, the best fixed-width average, the two-pointer
// "container with most water" and the shortest run reaching a target sum.
//
// All functions are generic over Number (any integer or floating-point type)
// and never modify their input.
//
// Functions:
//
//   - MaxSubarray(nums)           best contiguous sum (Kadane)
//   - MaxSubarrayRange(nums)      best contiguous sum plus its index range
//   - MaxAverage(nums, k)         best average over windows of exactly k values
//   - MaxArea(heights)            largest width × min(height) over two lines
//   - MinSubarrayLen(target, nums) shortest run with sum >= target
//
// Complexity: every function is O(n) time and O(1) extra memory.
//
// Errors:
//
//   - ErrEmptyInput      MaxSubarray on an empty slice; there is no defined best sum
//   - ErrInvalidWindow   k <= 0
//   - ErrWindowTooLarge  k > len(nums)
//   - ErrNegativeHeight  MaxArea with a negative height
//   - ErrNegativeValue   MinSubarrayLen with a negative value
package subarray
