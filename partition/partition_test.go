package partition_test

import (
	"math/rand"
	"slices"
	"testing"

	"github.com/katalvlaran/seqkit/partition"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestSortColors covers the classic inputs.
func TestSortColors(t *testing.T) {
	cases := [][]int{
		{2, 0, 2, 1, 1, 0},
		{2, 0, 1},
		{0},
		{},
		{2, 2, 2},
	}
	for _, in := range cases {
		want := slices.Clone(in)
		slices.Sort(want)

		got := slices.Clone(in)
		require.NoError(t, partition.SortColors(got))
		assert.Equal(t, want, got, "input %v", in)
	}
}

// TestSortColors_Idempotent: sorting a sorted slice changes nothing.
func TestSortColors_Idempotent(t *testing.T) {
	nums := []int{1, 2, 0, 0, 2, 1, 0}
	require.NoError(t, partition.SortColors(nums))
	once := slices.Clone(nums)
	require.NoError(t, partition.SortColors(nums))
	assert.Equal(t, once, nums)
}

// TestSortColors_OutOfDomain rejects foreign values without mutating.
func TestSortColors_OutOfDomain(t *testing.T) {
	nums := []int{2, 0, 3, 1}
	err := partition.SortColors(nums)
	assert.ErrorIs(t, err, partition.ErrOutOfDomain)
	assert.Contains(t, err.Error(), "index 2")
	assert.Equal(t, []int{2, 0, 3, 1}, nums)
}

// TestThreeWay_Property checks region invariants on random inputs.
func TestThreeWay_Property(t *testing.T) {
	r := rand.New(rand.NewSource(17))
	for iter := 0; iter < 300; iter++ {
		nums := make([]int, r.Intn(15))
		for i := range nums {
			nums[i] = r.Intn(7)
		}
		pivot := r.Intn(7)
		before := slices.Clone(nums)

		lt, gt := partition.ThreeWay(nums, pivot)
		require.LessOrEqual(t, lt, gt)
		for i, v := range nums {
			switch {
			case i < lt:
				require.Less(t, v, pivot)
			case i < gt:
				require.Equal(t, pivot, v)
			default:
				require.Greater(t, v, pivot)
			}
		}

		slices.Sort(before)
		after := slices.Clone(nums)
		slices.Sort(after)
		require.Equal(t, before, after, "partition must permute, not alter, values")
	}
}

// TestThreeWay_Strings works on any ordered type.
func TestThreeWay_Strings(t *testing.T) {
	words := []string{"m", "z", "a", "m", "b"}
	lt, gt := partition.ThreeWay(words, "m")
	assert.Equal(t, 2, lt)
	assert.Equal(t, 4, gt)
	assert.ElementsMatch(t, []string{"a", "b"}, words[:lt])
	assert.Equal(t, []string{"z"}, words[gt:])
}
