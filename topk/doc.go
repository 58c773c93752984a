// Package topk implements heap-based order statistics: the k-th largest
// value of a slice or of an unbounded stream, the k most frequent values or
// words, and the "last stone weight" simulation.
//
// 🚀 Building block:
//
//	BoundedHeap keeps the k best items seen so far under a caller-supplied
//	comparator. Its root is the worst kept item, so "is the new item good
//	enough?" and "what is the k-th best?" are both O(1), and an insertion
//	costs O(log k).
//
// Functions:
//
//   - KthLargest(nums, k)          one-shot k-th largest, O(n log k)
//   - NewStream(k, nums) / Add(v)  k-th largest over a growing stream
//   - TopKFrequent(nums, k)        k most frequent values, O(n + d log k)
//   - TopKFrequentWords(words, k)  k most frequent words, ties broken lexicographically
//   - LastStoneWeight(stones)      max-heap smash simulation, O(n log n)
//
// Ordering of frequency results:
//
//	Highest frequency first. Among equal frequencies the smaller value
//	(lexicographically smaller word) comes first, so results are
//	deterministic regardless of map iteration order.
//
// Errors:
//
//   - ErrInvalidK        k <= 0
//   - ErrKOutOfRange     k exceeds the number of values (or distinct values)
//   - ErrNilComparator   NewBoundedHeap without a comparator
//   - ErrNegativeWeight  LastStoneWeight with a negative stone
//
// Concurrency: Stream and BoundedHeap are not safe for concurrent use; the
// caller owns them and must serialise access.
package topk
