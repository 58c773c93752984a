package window

import "fmt"

// Alphabet is a finite, indexable set of symbols.
// Index must return a value in [0, Size) for members and -1 for anything else.
type Alphabet struct {
	Name  string
	Size  int
	Index func(r rune) int
}

var (
	// LowerASCII accepts 'a'..'z'.
	LowerASCII = Alphabet{Name: "lower-ascii", Size: 26, Index: rangeIndex('a', 'z')}

	// UpperASCII accepts 'A'..'Z'.
	UpperASCII = Alphabet{Name: "upper-ascii", Size: 26, Index: rangeIndex('A', 'Z')}

	// ASCII accepts the 7-bit range.
	ASCII = Alphabet{Name: "ascii", Size: 128, Index: rangeIndex(0, 127)}

	// Bytes accepts runes 0..255 (Latin-1).
	Bytes = Alphabet{Name: "bytes", Size: 256, Index: rangeIndex(0, 255)}
)

// rangeIndex builds an Index function for the closed interval [lo, hi].
func rangeIndex(lo, hi rune) func(rune) int {
	return func(r rune) int {
		if r < lo || r > hi {
			return -1
		}

		return int(r - lo)
	}
}

// encoder turns strings into dense symbol indices so that every search can
// keep its counts in a plain []int. With a finite alphabet the indices come
// from Alphabet.Index; otherwise each distinct rune gets the next free index
// in order of first appearance, shared across all strings of one call.
type encoder struct {
	alpha *Alphabet
	seen  map[rune]int
}

func newEncoder(o Options) *encoder {
	e := &encoder{alpha: o.Alphabet}
	if e.alpha == nil {
		e.seen = make(map[rune]int)
	}

	return e
}

// encode maps s to symbol indices, one per rune.
func (e *encoder) encode(s string) ([]int, error) {
	out := make([]int, 0, len(s))
	pos := 0
	for _, r := range s {
		if e.alpha != nil {
			idx := e.alpha.Index(r)
			if idx < 0 || idx >= e.alpha.Size {
				return nil, fmt.Errorf("%w %s: %q at offset %d", ErrSymbolOutsideAlphabet, e.alpha.Name, r, pos)
			}
			out = append(out, idx)
		} else {
			idx, ok := e.seen[r]
			if !ok {
				idx = len(e.seen)
				e.seen[r] = idx
			}
			out = append(out, idx)
		}
		pos++
	}

	return out, nil
}

// size is the number of count slots needed for everything encoded so far.
func (e *encoder) size() int {
	if e.alpha != nil {
		return e.alpha.Size
	}

	return len(e.seen)
}

// encodePair encodes a source and a pattern with one shared symbol table.
func encodePair(s, p string, o Options) (src, pat []int, size int, err error) {
	enc := newEncoder(o)
	if src, err = enc.encode(s); err != nil {
		return nil, nil, 0, err
	}
	if pat, err = enc.encode(p); err != nil {
		return nil, nil, 0, err
	}

	return src, pat, enc.size(), nil
}
