// Package monostack answers "next strictly greater element" queries with a
// monotonic stack.
//
// Walk the sequence right to left keeping a stack of candidates whose values
// strictly decrease from bottom to top. For each element: pop every
// candidate <= the element (it can never be anyone's answer again), the top
// that remains is the answer (-1 if the stack is empty), then push the
// element. Each index is pushed and popped at most once per pass, so a
// linear pass is O(n) amortised.
//
// The circular variant walks the conceptually doubled sequence (indices
// 2n-1 .. 0, taken mod n), so elements near the end can find answers that
// wrap to the start; each index is pushed at most twice.
//
// Functions:
//
//   - NextGreater(nums1, nums2)   answers for values of nums1 looked up in nums2
//   - NextGreaterCircular(nums)   circular next greater value
//   - NextGreaterIndices(nums)    index of the next greater value
//   - DailyWait(temps)            distance to the next strictly greater value
//
// Errors:
//
//   - ErrNotSubset       a value of nums1 is missing from nums2
//   - ErrDuplicateValue  nums2 holds a repeated value, so lookups are ambiguous
package monostack
