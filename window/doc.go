// Package window implements expand/contract sliding-window searches over
// strings: the shortest window covering a pattern, the longest window with
// no repeated symbol, the longest uniform window after k replacements, and
// fixed-size anagram matching.
//
// What:
//
//   - MinWindow / MinWindowSpan: shortest substring of s containing every
//     symbol of t with at least t's multiplicity. A `satisfied` counter moves
//     only when a symbol's window count crosses its required count, so the
//     feasibility check is O(1) per step.
//   - LongestUnique / LongestUniqueSpan: longest substring with all-distinct
//     symbols; the left edge jumps past the previous occurrence of a repeat.
//   - CharacterReplacement: longest substring that becomes uniform after at
//     most k replacements. The window never shrinks by more than one step per
//     expansion and maxCount is never lowered, which keeps the scan O(n).
//   - LongestKDistinct: longest substring with at most k distinct symbols.
//   - CheckInclusion / FindAnagrams: fixed window of len(p) sliding over s,
//     tracking how many symbols still have a non-zero count delta.
//
// Symbols and offsets:
//
//	All functions work on runes. Every position and length reported by this
//	package (Span.Start, Span.Len, FindAnagrams offsets) is a rune offset,
//	not a byte offset.
//
// Alphabets:
//
//	By default any rune is accepted and counts are kept per distinct rune
//	seen in the inputs. WithAlphabet restricts inputs to a finite alphabet
//	(LowerASCII, UpperASCII, ASCII, Bytes or a custom one); counts are then
//	sized to the alphabet and foreign symbols fail with
//	ErrSymbolOutsideAlphabet.
//
// Complexity:
//
//   - Time:   O(|s| + |t|) for every search.
//   - Memory: O(|s| + |t| + σ) where σ is the alphabet size.
//
// Errors:
//
//   - ErrEmptyPattern           pattern is the empty string
//   - ErrNegativeK              k < 0
//   - ErrSymbolOutsideAlphabet  input contains a rune the alphabet rejects
//
// Not-found is not an error: MinWindow returns "", MinWindowSpan returns a
// Span with Start == -1, CheckInclusion returns false and FindAnagrams an
// empty slice.
package window
