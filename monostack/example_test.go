package monostack_test

import (
	"fmt"

	"github.com/katalvlaran/seqkit/monostack"
)

// ExampleNextGreaterCircular lets the last element wrap to the first.
func ExampleNextGreaterCircular() {
	fmt.Println(monostack.NextGreaterCircular([]int{1, 2, 1}))
	// Output: [2 -1 2]
}

// ExampleNextGreater looks nums1 up in nums2.
func ExampleNextGreater() {
	out, err := monostack.NextGreater([]int{4, 1, 2}, []int{1, 3, 4, 2})
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Println(out)
	// Output: [-1 3 -1]
}
