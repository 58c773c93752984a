package subarray

import (
	"errors"

	"golang.org/x/exp/constraints"
)

// Number is the set of element types accepted by this package.
type Number interface {
	constraints.Integer | constraints.Float
}

var (
	// ErrEmptyInput indicates that a non-empty slice was required.
	ErrEmptyInput = errors.New("subarray: input must be non-empty")

	// ErrInvalidWindow indicates a window width k <= 0.
	ErrInvalidWindow = errors.New("subarray: window size must be positive")

	// ErrWindowTooLarge indicates a window width larger than the input.
	ErrWindowTooLarge = errors.New("subarray: window size exceeds input length")

	// ErrNegativeHeight indicates a negative line height passed to MaxArea.
	ErrNegativeHeight = errors.New("subarray: heights must be non-negative")

	// ErrNegativeValue indicates a negative element passed to MinSubarrayLen.
	ErrNegativeValue = errors.New("subarray: values must be non-negative")
)

// Range is the half-open index interval [Lo, Hi) of a subarray.
type Range struct {
	Lo int
	Hi int
}

// Len returns the number of elements covered by r.
func (r Range) Len() int { return r.Hi - r.Lo }
