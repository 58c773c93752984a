package window

import "errors"

var (
	// ErrEmptyPattern is returned when the pattern to search for is "".
	ErrEmptyPattern = errors.New("window: pattern must be non-empty")

	// ErrNegativeK is returned when a replacement or distinct-symbol budget is negative.
	ErrNegativeK = errors.New("window: k must be non-negative")

	// ErrSymbolOutsideAlphabet indicates an input rune the configured Alphabet cannot index.
	ErrSymbolOutsideAlphabet = errors.New("window: symbol outside alphabet")
)

// Span is a contiguous range of runes [Start, Start+Len).
// Start == -1 marks "no window found".
type Span struct {
	Start int
	Len   int
}

// notFound is the Span returned when no window satisfies the predicate.
var notFound = Span{Start: -1}

// Found reports whether the span denotes an actual window.
func (s Span) Found() bool { return s.Start >= 0 }

// End returns the exclusive end offset of the span.
func (s Span) End() int { return s.Start + s.Len }

// Options configures the window searches.
type Options struct {
	// Alphabet, if non-nil, restricts inputs to a finite alphabet and sizes
	// the count tables to it. Nil accepts any rune.
	Alphabet *Alphabet
}

// Option mutates Options.
type Option func(*Options)

// DefaultOptions returns Options with an unbounded rune alphabet.
func DefaultOptions() Options {
	return Options{Alphabet: nil}
}

// WithAlphabet returns an Option restricting inputs to a.
func WithAlphabet(a Alphabet) Option {
	return func(o *Options) {
		o.Alphabet = &a
	}
}

func applyOptions(opts []Option) Options {
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}

	return o
}
