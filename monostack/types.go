package monostack

import "errors"

var (
	// ErrNotSubset indicates a query value absent from the reference sequence.
	ErrNotSubset = errors.New("monostack: query value not present in reference sequence")

	// ErrDuplicateValue indicates repeated values in a sequence that must be distinct.
	ErrDuplicateValue = errors.New("monostack: reference sequence values must be distinct")
)

// None marks "no greater element".
const None = -1
