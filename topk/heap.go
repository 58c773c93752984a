package topk

import (
	"container/heap"
	"slices"
)

// pq is a container/heap adapter ordered by cmp; the item with the smallest
// cmp rank sits at index 0.
type pq[T any] struct {
	items []T
	cmp   func(a, b T) int
}

func (q *pq[T]) Len() int           { return len(q.items) }
func (q *pq[T]) Less(i, j int) bool { return q.cmp(q.items[i], q.items[j]) < 0 }
func (q *pq[T]) Swap(i, j int)      { q.items[i], q.items[j] = q.items[j], q.items[i] }
func (q *pq[T]) Push(x any)         { q.items = append(q.items, x.(T)) }

func (q *pq[T]) Pop() any {
	old := q.items
	n := len(old)
	item := old[n-1]
	var zero T
	old[n-1] = zero // drop the reference for the GC
	q.items = old[:n-1]

	return item
}

// BoundedHeap holds at most limit items: the best ones pushed so far
// according to cmp, where cmp(a, b) > 0 means a is better than b.
// The worst kept item is at the root.
type BoundedHeap[T any] struct {
	q     pq[T]
	limit int
}

// NewBoundedHeap returns an empty heap keeping the limit best items.
//
// Errors: ErrInvalidK if limit <= 0, ErrNilComparator if cmp is nil.
func NewBoundedHeap[T any](limit int, cmp func(a, b T) int) (*BoundedHeap[T], error) {
	if limit <= 0 {
		return nil, ErrInvalidK
	}
	if cmp == nil {
		return nil, ErrNilComparator
	}

	return &BoundedHeap[T]{
		q:     pq[T]{items: make([]T, 0, limit+1), cmp: cmp},
		limit: limit,
	}, nil
}

// Push inserts x and, if the heap grew past its limit, evicts the worst item.
// It reports the evicted item, which may be x itself.
// Complexity: O(log limit).
func (h *BoundedHeap[T]) Push(x T) (evicted T, ok bool) {
	heap.Push(&h.q, x)
	if h.q.Len() > h.limit {
		return heap.Pop(&h.q).(T), true
	}

	return evicted, false
}

// Peek returns the worst kept item, which is the limit-th best once the heap
// is full. ok is false when the heap is empty.
func (h *BoundedHeap[T]) Peek() (item T, ok bool) {
	if h.q.Len() == 0 {
		return item, false
	}

	return h.q.items[0], true
}

// Len returns the number of kept items.
func (h *BoundedHeap[T]) Len() int { return h.q.Len() }

// Cap returns the limit the heap was built with.
func (h *BoundedHeap[T]) Cap() int { return h.limit }

// Full reports whether the heap holds limit items.
func (h *BoundedHeap[T]) Full() bool { return h.q.Len() == h.limit }

// Sorted returns a copy of the kept items, best first.
func (h *BoundedHeap[T]) Sorted() []T {
	out := slices.Clone(h.q.items)
	slices.SortFunc(out, func(a, b T) int { return h.q.cmp(b, a) })

	return out
}
