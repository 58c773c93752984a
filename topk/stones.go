package topk

import (
	"cmp"
	"container/heap"
	"slices"
)

// LastStoneWeight smashes the two heaviest stones together until at most one
// remains and returns its weight, or 0 if none is left. Equal stones destroy
// each other; otherwise the difference goes back on the pile.
//
// Errors: ErrNegativeWeight if any stone is negative.
// Complexity: O(n log n) time, O(n) memory; stones is not modified.
func LastStoneWeight(stones []int) (int, error) {
	for _, s := range stones {
		if s < 0 {
			return 0, ErrNegativeWeight
		}
	}

	// max-oriented: the heaviest stone ranks lowest under the reversed comparator.
	q := &pq[int]{
		items: slices.Clone(stones),
		cmp:   func(a, b int) int { return cmp.Compare(b, a) },
	}
	heap.Init(q)

	for q.Len() > 1 {
		y := heap.Pop(q).(int) // heaviest
		x := heap.Pop(q).(int) // second heaviest
		if y != x {
			heap.Push(q, y-x)
		}
	}
	if q.Len() == 0 {
		return 0, nil
	}

	return q.items[0], nil
}
