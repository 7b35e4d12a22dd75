package sharedarray

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEqualIsContentBased(t *testing.T) {
	a, b := Of(1, 2, 3), Of(1, 2, 3)
	require.NotSame(t, a, b)
	require.True(t, Equal(a, b))
	b.Append(4)
	require.False(t, Equal(a, b))
	require.True(t, Equal(New[int](), new(Array[int])))
}

func TestIndexContains(t *testing.T) {
	a := Of("a", "b", "a")
	require.Equal(t, 0, Index(a, "a"))
	require.Equal(t, 2, LastIndex(a, "a"))
	require.Equal(t, -1, Index(a, "z"))
	require.Equal(t, -1, LastIndex(a, "z"))
	require.True(t, Contains(a, "b"))
	require.False(t, Contains(New[string](), "b"))
}

func TestStartsWithElementsEqual(t *testing.T) {
	a := Of(1, 2, 3)
	require.True(t, StartsWith(a, slices.Values([]int{1, 2})))
	require.True(t, StartsWith(a, slices.Values([]int(nil))))
	require.False(t, StartsWith(a, slices.Values([]int{2})))
	require.False(t, StartsWith(a, slices.Values([]int{1, 2, 3, 4})))

	require.True(t, ElementsEqual(a, slices.Values([]int{1, 2, 3})))
	require.False(t, ElementsEqual(a, slices.Values([]int{1, 2})))
}

func TestSplit(t *testing.T) {
	a := Of(1, 0, 2, 0, 0, 3)
	for _, tc := range []struct {
		name      string
		maxSplits int
		omitEmpty bool
		want      [][]int
	}{
		{"unlimited", -1, true, [][]int{{1}, {2}, {3}}},
		{"keep empty", -1, false, [][]int{{1}, {2}, {}, {3}}},
		{"one split", 1, true, [][]int{{1}, {2, 0, 0, 3}}},
		{"two splits keep empty", 2, false, [][]int{{1}, {2}, {0, 3}}},
		{"no splits", 0, true, [][]int{{1, 0, 2, 0, 0, 3}}},
	} {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, Split(a, 0, tc.maxSplits, tc.omitEmpty))
		})
	}

	require.Empty(t, Split(New[int](), 0, -1, true))
	require.Equal(t, [][]int{{}}, Split(New[int](), 0, -1, false))
	require.Equal(t, [][]int{{}, {}}, Split(Of(0), 0, -1, false))

	parts := Split(a, 0, -1, true)
	parts[0][0] = 7
	require.Equal(t, 7, a.At(0))
}

func TestMinMaxSort(t *testing.T) {
	a := Of(3, 1, 2)
	v, ok := Min(a)
	require.True(t, ok)
	require.Equal(t, 1, v)
	v, ok = Max(a)
	require.True(t, ok)
	require.Equal(t, 3, v)
	_, ok = Min(New[int]())
	require.False(t, ok)
	_, ok = Max(New[int]())
	require.False(t, ok)

	s := Sorted(a)
	require.Equal(t, []int{1, 2, 3}, s.Items())
	require.Equal(t, []int{3, 1, 2}, a.Items())
	Sort(a)
	require.True(t, Equal(a, s))
}

func TestLexicographicOrder(t *testing.T) {
	for _, tc := range []struct {
		a, b []int
		want bool
	}{
		{[]int{1, 2}, []int{1, 2, 3}, true},
		{[]int{1, 2, 3}, []int{1, 2}, false},
		{[]int{1, 2}, []int{1, 2}, false},
		{[]int{1, 3}, []int{2}, true},
		{nil, []int{0}, true},
		{nil, nil, false},
	} {
		require.Equal(t, tc.want, LexicographicallyPrecedes(FromSlice(tc.a), slices.Values(tc.b)), "%v < %v", tc.a, tc.b)
		require.Equal(t, tc.want, Compare(FromSlice(tc.a), FromSlice(tc.b)) < 0, "%v cmp %v", tc.a, tc.b)
	}
	require.Equal(t, 0, Compare(Of("x"), Of("x")))
	require.Equal(t, 1, Compare(Of("y"), Of("x")))
}
