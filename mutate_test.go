package sharedarray

import (
	"cmp"
	"errors"
	"math/rand/v2"
	"slices"
	"testing"
	"testing/quick"

	"github.com/stretchr/testify/require"
)

func TestAppendVariants(t *testing.T) {
	a := Of(1, 2)
	a.AppendSeq(slices.Values([]int{3, 4}))
	a.AppendArray(Of(5))
	require.Equal(t, []int{1, 2, 3, 4, 5}, a.Items())

	b := Of(1, 2)
	b.AppendArray(b)
	require.Equal(t, []int{1, 2, 1, 2}, b.Items())
}

func TestInsertVariants(t *testing.T) {
	a := Of(1, 4)
	a.Insert(1, 2, 3)
	require.Equal(t, []int{1, 2, 3, 4}, a.Items())
	a.InsertSeq(4, slices.Values([]int{5, 6}))
	require.Equal(t, []int{1, 2, 3, 4, 5, 6}, a.Items())
	a.InsertSeq(0, slices.Values([]int{0}))
	require.Equal(t, 0, a.At(0))
	require.PanicsWithError(t, "sharedarray: InsertSeq: index 9 out of range [0:7]", func() {
		a.InsertSeq(9, slices.Values([]int{1}))
	})
}

func TestRemoveVariants(t *testing.T) {
	a := Of(0, 1, 2, 3, 4, 5, 6, 7)
	require.Equal(t, 0, a.RemoveFirst())
	require.Equal(t, 7, a.RemoveLast())
	a.RemoveFirstN(2)
	require.Equal(t, []int{3, 4, 5, 6}, a.Items())
	a.RemoveLastN(1)
	require.Equal(t, []int{3, 4, 5}, a.Items())
	a.RemoveRange(0, 2)
	require.Equal(t, []int{5}, a.Items())

	v, ok := a.PopLast()
	require.True(t, ok)
	require.Equal(t, 5, v)
	_, ok = a.PopLast()
	require.False(t, ok)

	b := Of(1, 2, 3, 4, 5, 6)
	b.RemoveAllFunc(func(v int) bool { return v%2 == 0 })
	require.Equal(t, []int{1, 3, 5}, b.Items())
}

func TestPopLastClearsSlot(t *testing.T) {
	p := &struct{}{}
	a := Of(p)
	raw := a.Raw()
	a.PopLast()
	require.Nil(t, raw[0])
}

func TestAppendRemoveBalance(t *testing.T) {
	condition := func(ops []int16) bool {
		a := New[int16]()
		var model []int16
		for _, op := range ops {
			if op >= 0 || len(model) == 0 {
				a.Append(op)
				model = append(model, op)
				continue
			}
			i := int(-(op + 1)) % len(model)
			if a.Remove(i) != model[i] {
				return false
			}
			model = slices.Delete(model, i, i+1)
		}
		return a.Len() == len(model) && slices.Equal(model, a.Raw())
	}
	require.NoError(t, quick.Check(condition, &quick.Config{}))
}

func TestSwapReplace(t *testing.T) {
	a := Of(1, 2, 3)
	a.SwapAt(0, 2)
	require.Equal(t, []int{3, 2, 1}, a.Items())
	a.SwapAt(1, 1)
	require.Equal(t, []int{3, 2, 1}, a.Items())

	a.ReplaceRange(1, 2, 7, 8)
	require.Equal(t, []int{3, 7, 8, 1}, a.Items())
	a.ReplaceRange(0, 4)
	require.True(t, a.IsEmpty())

	b := Of(1, 2, 3)
	b.ReplaceRangeSeq(0, 3, slices.Values([]int{9}))
	require.Equal(t, []int{9}, b.Items())
	require.Panics(t, func() { b.ReplaceRangeSeq(1, 0, slices.Values([]int{1})) })
}

func TestReverse(t *testing.T) {
	a := Of(1, 2, 3, 4)
	a.Reverse()
	require.Equal(t, []int{4, 3, 2, 1}, a.Items())

	r := a.Reversed()
	require.Equal(t, 4, r.Len())
	var got []int
	for i, v := range r.All() {
		require.Equal(t, r.At(i), v)
		got = append(got, v)
	}
	require.Equal(t, []int{1, 2, 3, 4}, got)
	require.Equal(t, []int{}, New[int]().Reversed().Items())
	require.Panics(t, func() { r.At(4) })
}

func TestSortIdempotent(t *testing.T) {
	condition := func(xs []int) bool {
		once := FromSlice(xs)
		Sort(once)
		twice := once.Clone()
		Sort(twice)
		return Equal(once, twice) && slices.IsSorted(once.Raw())
	}
	require.NoError(t, quick.Check(condition, &quick.Config{}))
}

func TestSortFuncVariants(t *testing.T) {
	type pair struct {
		k string
		v int
	}
	byKey := func(x, y pair) int { return cmp.Compare(x.k, y.k) }
	a := Of(pair{"b", 1}, pair{"a", 2}, pair{"b", 0}, pair{"a", 1})

	s := a.SortedStableFunc(byKey)
	require.Equal(t, []pair{{"a", 2}, {"a", 1}, {"b", 1}, {"b", 0}}, s.Items())
	require.Equal(t, pair{"b", 1}, a.At(0))

	u := a.SortedFunc(byKey)
	require.True(t, slices.IsSortedFunc(u.Raw(), byKey))

	a.SortStableFunc(byKey)
	require.Equal(t, s.Items(), a.Items())

	a.SortFunc(func(x, y pair) int { return cmp.Compare(y.v, x.v) })
	require.Equal(t, 2, a.At(0).v)
}

func TestSortFuncErrLeavesArrayUntouched(t *testing.T) {
	boom := errors.New("boom")
	a := Of(3, 1, 2)
	err := a.SortFuncErr(func(x, y int) (int, error) {
		if x == 2 || y == 2 {
			return 0, boom
		}
		return cmp.Compare(x, y), nil
	})
	require.Same(t, boom, err)
	require.Equal(t, []int{3, 1, 2}, a.Items())

	require.NoError(t, a.SortFuncErr(func(x, y int) (int, error) { return cmp.Compare(x, y), nil }))
	require.Equal(t, []int{1, 2, 3}, a.Items())
}

func TestShuffle(t *testing.T) {
	a := From(func(yield func(int) bool) {
		for i := range 50 {
			if !yield(i) {
				return
			}
		}
	})
	orig := a.Items()

	s := a.Shuffled(rand.New(rand.NewPCG(7, 7)))
	require.Equal(t, orig, a.Items())
	require.ElementsMatch(t, orig, s.Items())

	again := a.Shuffled(rand.New(rand.NewPCG(7, 7)))
	require.Equal(t, s.Items(), again.Items())

	a.Shuffle(nil)
	require.ElementsMatch(t, orig, a.Items())
}

func TestPartition(t *testing.T) {
	even := func(v int) bool { return v%2 == 0 }
	a := Of(1, 2, 3, 4, 5, 6)
	p := a.Partition(even)
	require.Equal(t, 3, p)
	for i, v := range a.All() {
		require.Equal(t, i >= p, even(v), "index %d", i)
	}
	require.ElementsMatch(t, []int{1, 2, 3, 4, 5, 6}, a.Items())

	require.Equal(t, 0, New[int]().Partition(even))
	require.Equal(t, 0, Of(2, 4).Partition(even))
	require.Equal(t, 2, Of(1, 3).Partition(even))
}
