package window_test

import (
	"testing"

	"github.com/katalvlaran/seqkit/window"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestMinWindow_Classic checks the canonical ADOBECODEBANC case.
func TestMinWindow_Classic(t *testing.T) {
	got, err := window.MinWindow("ADOBECODEBANC", "ABC")
	require.NoError(t, err)
	assert.Equal(t, "BANC", got)

	span, err := window.MinWindowSpan("ADOBECODEBANC", "ABC")
	require.NoError(t, err)
	assert.Equal(t, window.Span{Start: 9, Len: 4}, span)
	assert.Equal(t, 13, span.End())
}

// TestMinWindow_Infeasible verifies the not-found sentinels.
func TestMinWindow_Infeasible(t *testing.T) {
	got, err := window.MinWindow("a", "aa")
	require.NoError(t, err)
	assert.Equal(t, "", got, "pattern longer than source")

	span, err := window.MinWindowSpan("abc", "d")
	require.NoError(t, err)
	assert.False(t, span.Found(), "symbol absent from source")
	assert.Equal(t, -1, span.Start)

	got, err = window.MinWindow("", "a")
	require.NoError(t, err)
	assert.Equal(t, "", got, "empty source")
}

// TestMinWindow_EmptyPattern pins the empty-pattern contract.
func TestMinWindow_EmptyPattern(t *testing.T) {
	got, err := window.MinWindow("abc", "")
	assert.ErrorIs(t, err, window.ErrEmptyPattern)
	assert.Equal(t, "", got)

	span, err := window.MinWindowSpan("", "")
	assert.ErrorIs(t, err, window.ErrEmptyPattern)
	assert.False(t, span.Found())
}

// TestMinWindow_Multiplicity requires repeated symbols to be covered as often as they appear in t.
func TestMinWindow_Multiplicity(t *testing.T) {
	got, err := window.MinWindow("aab", "aa")
	require.NoError(t, err)
	assert.Equal(t, "aa", got)

	got, err = window.MinWindow("abab", "aab")
	require.NoError(t, err)
	assert.Equal(t, "aba", got)
}

// TestMinWindow_LeftmostOnTie keeps the first of two equally short windows.
func TestMinWindow_LeftmostOnTie(t *testing.T) {
	got, err := window.MinWindow("abxba", "ab")
	require.NoError(t, err)
	assert.Equal(t, "ab", got)
}

// TestMinWindow_Unicode reports rune spans for multi-byte input.
func TestMinWindow_Unicode(t *testing.T) {
	span, err := window.MinWindowSpan("жaбвгa", "вa")
	require.NoError(t, err)
	assert.Equal(t, window.Span{Start: 1, Len: 3}, span)

	got, err := window.MinWindow("жaбвгa", "вa")
	require.NoError(t, err)
	assert.Equal(t, "aбв", got)
}

// TestMinWindow_Alphabet rejects foreign symbols and accepts members.
func TestMinWindow_Alphabet(t *testing.T) {
	got, err := window.MinWindow("ADOBECODEBANC", "ABC", window.WithAlphabet(window.UpperASCII))
	require.NoError(t, err)
	assert.Equal(t, "BANC", got)

	_, err = window.MinWindow("ADOBECODEBANc", "ABC", window.WithAlphabet(window.UpperASCII))
	assert.ErrorIs(t, err, window.ErrSymbolOutsideAlphabet)
	assert.Contains(t, err.Error(), "offset 12")

	_, err = window.MinWindow("abc", "B", window.WithAlphabet(window.LowerASCII))
	assert.ErrorIs(t, err, window.ErrSymbolOutsideAlphabet, "pattern is validated too")
}

// TestLongestUnique covers the documented examples.
func TestLongestUnique(t *testing.T) {
	cases := map[string]int{
		"abcabcbb": 3,
		"bbbbb":    1,
		"pwwkew":   3,
		"":         0,
		"a":        1,
		"abba":     2,
		"dvdf":     3,
		"tmmzuxt":  5,
	}
	for in, want := range cases {
		assert.Equal(t, want, window.LongestUnique(in), "input %q", in)
	}
}

// TestLongestUniqueSpan returns the leftmost longest window.
func TestLongestUniqueSpan(t *testing.T) {
	assert.Equal(t, window.Span{Start: 0, Len: 3}, window.LongestUniqueSpan("abcabcbb"))
	assert.Equal(t, window.Span{Start: 2, Len: 3}, window.LongestUniqueSpan("pwwkew"))
	assert.Equal(t, window.Span{Start: 0, Len: 0}, window.LongestUniqueSpan(""))
}

// TestCharacterReplacement covers the classic cases and the k contract.
func TestCharacterReplacement(t *testing.T) {
	got, err := window.CharacterReplacement("ABAB", 2)
	require.NoError(t, err)
	assert.Equal(t, 4, got)

	got, err = window.CharacterReplacement("AABABBA", 1)
	require.NoError(t, err)
	assert.Equal(t, 4, got)

	got, err = window.CharacterReplacement("ABCDE", 0)
	require.NoError(t, err)
	assert.Equal(t, 1, got)

	got, err = window.CharacterReplacement("", 3)
	require.NoError(t, err)
	assert.Equal(t, 0, got)

	got, err = window.CharacterReplacement("AB", 5)
	require.NoError(t, err)
	assert.Equal(t, 2, got, "answer is capped by the source length")

	_, err = window.CharacterReplacement("AB", -1)
	assert.ErrorIs(t, err, window.ErrNegativeK)
}

// TestLongestKDistinct covers the budget boundaries.
func TestLongestKDistinct(t *testing.T) {
	got, err := window.LongestKDistinct("eceba", 2)
	require.NoError(t, err)
	assert.Equal(t, 3, got)

	got, err = window.LongestKDistinct("aa", 1)
	require.NoError(t, err)
	assert.Equal(t, 2, got)

	got, err = window.LongestKDistinct("abc", 0)
	require.NoError(t, err)
	assert.Equal(t, 0, got)

	_, err = window.LongestKDistinct("abc", -2)
	assert.ErrorIs(t, err, window.ErrNegativeK)
}

// TestCheckInclusion covers matches, misses and the empty-pattern contract.
func TestCheckInclusion(t *testing.T) {
	ok, err := window.CheckInclusion("ab", "eidbaooo")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = window.CheckInclusion("ab", "eidboaoo")
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = window.CheckInclusion("abc", "ab")
	require.NoError(t, err)
	assert.False(t, ok, "pattern longer than source")

	_, err = window.CheckInclusion("", "abc")
	assert.ErrorIs(t, err, window.ErrEmptyPattern)
}

// TestCheckInclusion_PermutationSymmetry: every permutation of the pattern gives the same answer.
func TestCheckInclusion_PermutationSymmetry(t *testing.T) {
	for _, p := range []string{"abc", "acb", "bac", "bca", "cab", "cba"} {
		ok, err := window.CheckInclusion(p, "xxcabxx", window.WithAlphabet(window.LowerASCII))
		require.NoError(t, err)
		assert.True(t, ok, "pattern %q", p)
	}
	for _, p := range []string{"ab", "ba"} {
		ok, err := window.CheckInclusion(p, "ab")
		require.NoError(t, err)
		assert.True(t, ok, "pattern %q", p)
	}
}

// TestFindAnagrams covers overlapping matches and the empty result.
func TestFindAnagrams(t *testing.T) {
	got, err := window.FindAnagrams("cbaebabacd", "abc")
	require.NoError(t, err)
	assert.Equal(t, []int{0, 6}, got)

	got, err = window.FindAnagrams("abab", "ab")
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2}, got)

	got, err = window.FindAnagrams("a", "ab")
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)

	_, err = window.FindAnagrams("abc", "")
	assert.ErrorIs(t, err, window.ErrEmptyPattern)

	_, err = window.FindAnagrams("ab!", "ab", window.WithAlphabet(window.LowerASCII))
	assert.ErrorIs(t, err, window.ErrSymbolOutsideAlphabet)
}

// TestAlphabet_Custom wires a user-defined alphabet through the options.
func TestAlphabet_Custom(t *testing.T) {
	dna := window.Alphabet{
		Name: "dna",
		Size: 4,
		Index: func(r rune) int {
			switch r {
			case 'A':
				return 0
			case 'C':
				return 1
			case 'G':
				return 2
			case 'T':
				return 3
			}

			return -1
		},
	}

	got, err := window.FindAnagrams("ACGTTGCA", "TG", window.WithAlphabet(dna))
	require.NoError(t, err)
	assert.Equal(t, []int{2, 4}, got)

	_, err = window.FindAnagrams("ACGU", "TG", window.WithAlphabet(dna))
	assert.ErrorIs(t, err, window.ErrSymbolOutsideAlphabet)
}

// TestDefaultOptions has no alphabet restriction.
func TestDefaultOptions(t *testing.T) {
	assert.Nil(t, window.DefaultOptions().Alphabet)
}
