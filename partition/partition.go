package partition

import (
	"errors"
	"fmt"

	"golang.org/x/exp/constraints"
)

// ErrOutOfDomain indicates a value other than 0, 1 or 2 passed to SortColors.
var ErrOutOfDomain = errors.New("partition: value outside {0, 1, 2}")

// ThreeWay partitions nums in place so that nums[:lt] < pivot,
// nums[lt:gt] == pivot and nums[gt:] > pivot, and returns lt and gt.
// The relative order inside each region is not preserved.
func ThreeWay[T constraints.Ordered](nums []T, pivot T) (lt, gt int) {
	i, hi := 0, len(nums)-1
	for i <= hi {
		switch {
		case nums[i] < pivot:
			nums[lt], nums[i] = nums[i], nums[lt]
			lt++
			i++
		case nums[i] > pivot:
			nums[i], nums[hi] = nums[hi], nums[i]
			hi-- // nums[i] is unclassified now; do not advance
		default:
			i++
		}
	}

	return lt, hi + 1
}

// SortColors sorts a slice holding only 0, 1 and 2 in a single pass.
//
// Errors: ErrOutOfDomain (wrapped with the offending index) if any value is
// outside {0, 1, 2}; nums is then left untouched.
func SortColors(nums []int) error {
	for i, v := range nums {
		if v < 0 || v > 2 {
			return fmt.Errorf("%w: %d at index %d", ErrOutOfDomain, v, i)
		}
	}
	ThreeWay(nums, 1)

	return nil
}
