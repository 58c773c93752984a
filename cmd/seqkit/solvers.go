package main

import (
	"fmt"

	"github.com/katalvlaran/seqkit/dsu"
	"github.com/katalvlaran/seqkit/monostack"
	"github.com/katalvlaran/seqkit/partition"
	"github.com/katalvlaran/seqkit/subarray"
	"github.com/katalvlaran/seqkit/topk"
	"github.com/katalvlaran/seqkit/window"
	"github.com/tidwall/gjson"
)

// alphabets are the names accepted by the optional "alphabet" field.
var alphabets = map[string]window.Alphabet{
	window.LowerASCII.Name: window.LowerASCII,
	window.UpperASCII.Name: window.UpperASCII,
	window.ASCII.Name:      window.ASCII,
	window.Bytes.Name:      window.Bytes,
}

// windowOptions reads the optional "alphabet" field.
func windowOptions(in gjson.Result) ([]window.Option, error) {
	v := in.Get("alphabet")
	if !v.Exists() {
		return nil, nil
	}
	a, ok := alphabets[v.String()]
	if !ok {
		return nil, fmt.Errorf("%w: unknown alphabet %s", ErrFieldType, v.Raw)
	}

	return []window.Option{window.WithAlphabet(a)}, nil
}

// stringAndK reads a string field and the integer "k".
func stringAndK(in gjson.Result, key string) (string, int, error) {
	s, err := stringField(in, key)
	if err != nil {
		return "", 0, err
	}
	k, err := intField(in, "k")

	return s, k, err
}

func intsAndK(in gjson.Result, key string) ([]int, int, error) {
	nums, err := intsField(in, key)
	if err != nil {
		return nil, 0, err
	}
	k, err := intField(in, "k")

	return nums, k, err
}

func builtinSolvers() []Solver {
	return []Solver{
		{
			Name: "min-window",
			Help: `{"s", "t", "alphabet"?} shortest substring of s covering t`,
			Run: func(in gjson.Result) (any, error) {
				s, err := stringField(in, "s")
				if err != nil {
					return nil, err
				}
				t, err := stringField(in, "t")
				if err != nil {
					return nil, err
				}
				opts, err := windowOptions(in)
				if err != nil {
					return nil, err
				}

				return window.MinWindow(s, t, opts...)
			},
		},
		{
			Name: "longest-unique",
			Help: `{"s"} length of the longest substring without repeats`,
			Run: func(in gjson.Result) (any, error) {
				s, err := stringField(in, "s")
				if err != nil {
					return nil, err
				}

				return window.LongestUnique(s), nil
			},
		},
		{
			Name: "char-replacement",
			Help: `{"s", "k", "alphabet"?} longest uniform substring after k replacements`,
			Run: func(in gjson.Result) (any, error) {
				s, k, err := stringAndK(in, "s")
				if err != nil {
					return nil, err
				}
				opts, err := windowOptions(in)
				if err != nil {
					return nil, err
				}

				return window.CharacterReplacement(s, k, opts...)
			},
		},
		{
			Name: "longest-k-distinct",
			Help: `{"s", "k"} longest substring with at most k distinct symbols`,
			Run: func(in gjson.Result) (any, error) {
				s, k, err := stringAndK(in, "s")
				if err != nil {
					return nil, err
				}

				return window.LongestKDistinct(s, k)
			},
		},
		{
			Name: "check-inclusion",
			Help: `{"p", "s", "alphabet"?} whether a permutation of p occurs in s`,
			Run: func(in gjson.Result) (any, error) {
				p, err := stringField(in, "p")
				if err != nil {
					return nil, err
				}
				s, err := stringField(in, "s")
				if err != nil {
					return nil, err
				}
				opts, err := windowOptions(in)
				if err != nil {
					return nil, err
				}

				return window.CheckInclusion(p, s, opts...)
			},
		},
		{
			Name: "find-anagrams",
			Help: `{"s", "p", "alphabet"?} start offsets of every anagram of p in s`,
			Run: func(in gjson.Result) (any, error) {
				s, err := stringField(in, "s")
				if err != nil {
					return nil, err
				}
				p, err := stringField(in, "p")
				if err != nil {
					return nil, err
				}
				opts, err := windowOptions(in)
				if err != nil {
					return nil, err
				}

				return window.FindAnagrams(s, p, opts...)
			},
		},
		{
			Name: "max-subarray",
			Help: `{"nums"} largest contiguous sum (Kadane)`,
			Run: func(in gjson.Result) (any, error) {
				nums, err := intsField(in, "nums")
				if err != nil {
					return nil, err
				}

				return subarray.MaxSubarray(nums)
			},
		},
		{
			Name: "max-average",
			Help: `{"nums", "k"} largest average of k consecutive values`,
			Run: func(in gjson.Result) (any, error) {
				nums, err := floatsField(in, "nums")
				if err != nil {
					return nil, err
				}
				k, err := intField(in, "k")
				if err != nil {
					return nil, err
				}

				return subarray.MaxAverage(nums, k)
			},
		},
		{
			Name: "max-area",
			Help: `{"heights"} container with most water`,
			Run: func(in gjson.Result) (any, error) {
				hs, err := intsField(in, "heights")
				if err != nil {
					return nil, err
				}

				return subarray.MaxArea(hs)
			},
		},
		{
			Name: "min-subarray-len",
			Help: `{"target", "nums"} shortest run with sum >= target`,
			Run: func(in gjson.Result) (any, error) {
				target, err := intField(in, "target")
				if err != nil {
					return nil, err
				}
				nums, err := intsField(in, "nums")
				if err != nil {
					return nil, err
				}

				return subarray.MinSubarrayLen(target, nums)
			},
		},
		{
			Name: "kth-largest",
			Help: `{"nums", "k"} k-th largest value`,
			Run: func(in gjson.Result) (any, error) {
				nums, k, err := intsAndK(in, "nums")
				if err != nil {
					return nil, err
				}

				return topk.KthLargest(nums, k)
			},
		},
		{
			Name: "kth-stream",
			Help: `{"k", "nums", "adds"} k-th largest after each add, null while fewer than k seen`,
			Run: func(in gjson.Result) (any, error) {
				nums, k, err := intsAndK(in, "nums")
				if err != nil {
					return nil, err
				}
				adds, err := intsField(in, "adds")
				if err != nil {
					return nil, err
				}
				s, err := topk.NewStream(k, nums)
				if err != nil {
					return nil, err
				}
				out := make([]*int, len(adds))
				for i, v := range adds {
					if kth, ok := s.Add(v); ok {
						out[i] = &kth
					}
				}

				return out, nil
			},
		},
		{
			Name: "top-k-frequent",
			Help: `{"nums", "k"} k most frequent values`,
			Run: func(in gjson.Result) (any, error) {
				nums, k, err := intsAndK(in, "nums")
				if err != nil {
					return nil, err
				}

				return topk.TopKFrequent(nums, k)
			},
		},
		{
			Name: "top-k-words",
			Help: `{"words", "k"} k most frequent words, ties lexicographic`,
			Run: func(in gjson.Result) (any, error) {
				words, err := stringsField(in, "words")
				if err != nil {
					return nil, err
				}
				k, err := intField(in, "k")
				if err != nil {
					return nil, err
				}

				return topk.TopKFrequentWords(words, k)
			},
		},
		{
			Name: "last-stone",
			Help: `{"stones"} weight of the last stone`,
			Run: func(in gjson.Result) (any, error) {
				stones, err := intsField(in, "stones")
				if err != nil {
					return nil, err
				}

				return topk.LastStoneWeight(stones)
			},
		},
		{
			Name: "next-greater",
			Help: `{"nums1", "nums2"} next greater value in nums2 for each of nums1`,
			Run: func(in gjson.Result) (any, error) {
				nums1, err := intsField(in, "nums1")
				if err != nil {
					return nil, err
				}
				nums2, err := intsField(in, "nums2")
				if err != nil {
					return nil, err
				}

				return monostack.NextGreater(nums1, nums2)
			},
		},
		{
			Name: "next-greater-circular",
			Help: `{"nums"} circular next greater value`,
			Run: func(in gjson.Result) (any, error) {
				nums, err := intsField(in, "nums")
				if err != nil {
					return nil, err
				}

				return monostack.NextGreaterCircular(nums), nil
			},
		},
		{
			Name: "daily-wait",
			Help: `{"temps"} days until a warmer day`,
			Run: func(in gjson.Result) (any, error) {
				temps, err := intsField(in, "temps")
				if err != nil {
					return nil, err
				}

				return monostack.DailyWait(temps), nil
			},
		},
		{
			Name: "sort-colors",
			Help: `{"nums"} sort 0/1/2 values`,
			Run: func(in gjson.Result) (any, error) {
				nums, err := intsField(in, "nums")
				if err != nil {
					return nil, err
				}
				if err = partition.SortColors(nums); err != nil {
					return nil, err
				}

				return nums, nil
			},
		},
		{
			Name: "components",
			Help: `{"items", "pairs"} groups connected by the given pairs`,
			Run: func(in gjson.Result) (any, error) {
				items, err := stringsField(in, "items")
				if err != nil {
					return nil, err
				}
				pairs, err := pairsField(in, "pairs")
				if err != nil {
					return nil, err
				}

				return dsu.Components(items, pairs)
			},
		},
	}
}
