package topk

import "errors"

var (
	// ErrInvalidK indicates k <= 0.
	ErrInvalidK = errors.New("topk: k must be positive")

	// ErrKOutOfRange indicates k larger than the number of available elements.
	ErrKOutOfRange = errors.New("topk: k exceeds available elements")

	// ErrNilComparator indicates a BoundedHeap constructed without a comparator.
	ErrNilComparator = errors.New("topk: comparator is nil")

	// ErrNegativeWeight indicates a negative stone weight.
	ErrNegativeWeight = errors.New("topk: stone weights must be non-negative")
)

// Counted pairs a value with its number of occurrences.
type Counted[T any] struct {
	Value T
	Count int
}
