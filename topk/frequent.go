package topk

import (
	"cmp"

	"golang.org/x/exp/constraints"
)

// TopKFrequent returns the k most frequent values of nums, highest frequency
// first; equal frequencies are ordered by ascending value.
//
// Steps:
//  1. Count occurrences in a map (O(n)).
//  2. Push every (value, count) pair into a BoundedHeap of size k ranked by
//     count, then by smaller value (O(d log k), d = distinct values).
//  3. Drain the heap best-first.
//
// Errors: ErrInvalidK if k <= 0, ErrKOutOfRange if k exceeds the number of
// distinct values.
func TopKFrequent[T constraints.Ordered](nums []T, k int) ([]T, error) {
	counted, err := TopKCounted(nums, k)
	if err != nil {
		return nil, err
	}

	out := make([]T, len(counted))
	for i, c := range counted {
		out[i] = c.Value
	}

	return out, nil
}

// TopKFrequentWords returns the k most frequent words, highest frequency
// first; words with equal frequency appear in lexicographic order.
//
// Errors: ErrInvalidK if k <= 0, ErrKOutOfRange if k exceeds the number of
// distinct words.
func TopKFrequentWords(words []string, k int) ([]string, error) {
	return TopKFrequent(words, k)
}

// TopKCounted is TopKFrequent that also returns each value's count.
func TopKCounted[T constraints.Ordered](nums []T, k int) ([]Counted[T], error) {
	if k <= 0 {
		return nil, ErrInvalidK
	}

	// 1. Frequencies.
	freq := make(map[T]int, len(nums))
	for _, x := range nums {
		freq[x]++
	}
	if k > len(freq) {
		return nil, ErrKOutOfRange
	}

	// 2. Bounded selection: more occurrences rank higher, then the smaller value.
	h, err := NewBoundedHeap(k, byFrequency[T])
	if err != nil {
		return nil, err
	}
	for v, c := range freq {
		h.Push(Counted[T]{Value: v, Count: c})
	}

	// 3. Best first.
	return h.Sorted(), nil
}

// byFrequency ranks a above b when it is more frequent, or equally frequent
// with a smaller value.
func byFrequency[T constraints.Ordered](a, b Counted[T]) int {
	if a.Count != b.Count {
		return cmp.Compare(a.Count, b.Count)
	}

	return cmp.Compare(b.Value, a.Value)
}
