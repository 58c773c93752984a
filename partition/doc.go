// Package partition rearranges slices in place around a pivot using the
// three-way (Dutch national flag) scheme: one pass, three regions, O(1)
// extra memory.
//
//	[0, lt)   values < pivot
//	[lt, i)   values == pivot
//	[i, gt]   not yet classified
//	(gt, n)   values > pivot
//
// SortColors is the 0/1/2 special case; it validates the whole slice before
// touching it, so a rejected input is left unchanged. Applying it twice
// yields the same slice as applying it once.
package partition
