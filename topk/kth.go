package topk

import (
	"cmp"

	"golang.org/x/exp/constraints"
)

// KthLargest returns the k-th largest value of nums (k = 1 is the maximum).
// Duplicates count separately: KthLargest([3, 3, 1], 2) == 3.
//
// A bounded min-heap of size k scans nums once; afterwards its root is the
// k-th largest.
//
// Errors: ErrInvalidK if k <= 0, ErrKOutOfRange if k > len(nums).
// Complexity: O(n log k) time, O(k) memory.
func KthLargest[T constraints.Ordered](nums []T, k int) (T, error) {
	var zero T
	if k <= 0 {
		return zero, ErrInvalidK
	}
	if k > len(nums) {
		return zero, ErrKOutOfRange
	}

	h, err := NewBoundedHeap(k, cmp.Compare[T])
	if err != nil {
		return zero, err
	}
	for _, x := range nums {
		h.Push(x)
	}
	kth, _ := h.Peek()

	return kth, nil
}

// Stream tracks the k-th largest value of a growing sequence.
// The heap persists across Add calls; a Stream is not safe for concurrent use.
type Stream[T constraints.Ordered] struct {
	h *BoundedHeap[T]
}

// NewStream returns a Stream for k seeded with nums. nums may hold fewer
// than k values; Kth reports false until k values have been seen.
//
// Errors: ErrInvalidK if k <= 0.
func NewStream[T constraints.Ordered](k int, nums []T) (*Stream[T], error) {
	h, err := NewBoundedHeap(k, cmp.Compare[T])
	if err != nil {
		return nil, err
	}
	s := &Stream[T]{h: h}
	for _, x := range nums {
		h.Push(x)
	}

	return s, nil
}

// Add records v and returns the k-th largest value seen so far, v included.
// ok is false while fewer than k values have been seen.
// Complexity: O(log k).
func (s *Stream[T]) Add(v T) (kth T, ok bool) {
	s.h.Push(v)

	return s.Kth()
}

// Kth returns the current k-th largest value without modifying the stream.
func (s *Stream[T]) Kth() (kth T, ok bool) {
	if !s.h.Full() {
		return kth, false
	}

	return s.h.Peek()
}

// K returns the rank tracked by the stream.
func (s *Stream[T]) K() int { return s.h.Cap() }
