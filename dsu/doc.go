// Package dsu provides a disjoint-set union (union-find) over any comparable
// element type, with iterative path compression and union by rank.
//
// Complexity:
//
//   - Find / Union / Connected: O(α(n)) amortised, α = inverse Ackermann.
//   - Memory: O(n).
//
// Errors:
//
//   - ErrUnknownElement  an element that was never added
//
// A DSU is owned by its caller and is not safe for concurrent use.
package dsu
