// Package seqkit is a toolkit of linear-time window, heap and stack
// algorithms over in-memory sequences. Every function is pure over
// caller-owned input; the only stateful value is topk.Stream, which the
// caller holds for as long as it feeds values.
//
// 🚀 What is inside?
//
//	window/     — minimum covering window, longest unique substring,
//	              k-replacement, k-distinct, permutation / anagram search
//	subarray/   — Kadane, fixed-width average, container with most water,
//	              shortest run reaching a target
//	topk/       — bounded heap, k-th largest (one-shot and streaming),
//	              top-k frequent values and words, last stone weight
//	monostack/  — next greater element (linear, lookup and circular)
//	partition/  — three-way partition, sort colors
//	dsu/        — disjoint-set union with path compression
//	cmd/seqkit  — run any of the above on a JSON payload
//
// ✨ Conventions
//
//   - Not found is a value, never an error: "", -1, an empty slice, false.
//   - Precondition violations (k <= 0, k past the input, empty input where a
//     value is required) return a package sentinel error; test with errors.Is.
//   - Window positions are rune offsets.
//
// Quick example:
//
//	w, _ := window.MinWindow("ADOBECODEBANC", "ABC") // "BANC"
//
//	go get github.com/katalvlaran/seqkit
package seqkit
