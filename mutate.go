package sharedarray

import (
	"iter"
	"math/rand/v2"
	"slices"
)

// Append adds v to the end.
func (a *Array[T]) Append(v ...T) {
	a.items = append(a.items, v...)
}

// AppendSeq drains seq onto the end.
func (a *Array[T]) AppendSeq(seq iter.Seq[T]) {
	a.items = slices.AppendSeq(a.items, seq)
}

// AppendArray appends the elements of other. Appending an array to itself
// doubles it.
func (a *Array[T]) AppendArray(other *Array[T]) {
	a.items = append(a.items, other.items...)
}

// Insert places v at index i, shifting later elements up. 0 <= i <= Len().
func (a *Array[T]) Insert(i int, v ...T) {
	a.items = slices.Insert(a.items, i, v...)
}

// InsertSeq drains seq and inserts the result at index i.
func (a *Array[T]) InsertSeq(i int, seq iter.Seq[T]) {
	if i < 0 || i > len(a.items) {
		contract("InsertSeq", "index %d out of range [0:%d]", i, len(a.items))
	}
	a.items = slices.Insert(a.items, i, slices.Collect(seq)...)
}

// Remove deletes and returns the element at i, closing the gap.
func (a *Array[T]) Remove(i int) T {
	v := a.items[i]
	a.items = slices.Delete(a.items, i, i+1)
	return v
}

// RemoveRange deletes items[lo:hi].
func (a *Array[T]) RemoveRange(lo, hi int) {
	a.items = slices.Delete(a.items, lo, hi)
}

// RemoveFirst deletes and returns the first element. Panics when empty.
func (a *Array[T]) RemoveFirst() T {
	if len(a.items) == 0 {
		contract("RemoveFirst", "array is empty")
	}
	return a.Remove(0)
}

// RemoveFirstN deletes the first k elements.
func (a *Array[T]) RemoveFirstN(k int) {
	if k < 0 || k > len(a.items) {
		contract("RemoveFirstN", "count %d out of range [0:%d]", k, len(a.items))
	}
	a.items = slices.Delete(a.items, 0, k)
}

// RemoveLast deletes and returns the last element. Panics when empty.
func (a *Array[T]) RemoveLast() T {
	v, ok := a.PopLast()
	if !ok {
		contract("RemoveLast", "array is empty")
	}
	return v
}

// RemoveLastN deletes the last k elements.
func (a *Array[T]) RemoveLastN(k int) {
	if k < 0 || k > len(a.items) {
		contract("RemoveLastN", "count %d out of range [0:%d]", k, len(a.items))
	}
	a.items = slices.Delete(a.items, len(a.items)-k, len(a.items))
}

// PopLast deletes and returns the last element, or false when empty.
func (a *Array[T]) PopLast() (v T, ok bool) {
	n := len(a.items)
	if n == 0 {
		return
	}
	v = a.items[n-1]
	var zero T
	a.items[n-1] = zero
	a.items = a.items[:n-1]
	return v, true
}

// RemoveAllFunc deletes every element for which pred returns true,
// preserving the order of the rest.
func (a *Array[T]) RemoveAllFunc(pred func(T) bool) {
	a.items = slices.DeleteFunc(a.items, pred)
}

// RemoveAll empties the array. With keepCapacity the backing store is kept
// for reuse.
func (a *Array[T]) RemoveAll(keepCapacity bool) {
	if keepCapacity {
		clear(a.items)
		a.items = a.items[:0]
		return
	}
	a.items = []T{}
}

// SwapAt exchanges the elements at i and j.
func (a *Array[T]) SwapAt(i, j int) {
	a.items[i], a.items[j] = a.items[j], a.items[i]
}

// ReplaceRange replaces items[lo:hi] with v.
func (a *Array[T]) ReplaceRange(lo, hi int, v ...T) {
	a.items = slices.Replace(a.items, lo, hi, v...)
}

// ReplaceRangeSeq replaces items[lo:hi] with the elements of seq.
func (a *Array[T]) ReplaceRangeSeq(lo, hi int, seq iter.Seq[T]) {
	if lo < 0 || hi < lo || hi > len(a.items) {
		contract("ReplaceRangeSeq", "range [%d:%d] out of range [0:%d]", lo, hi, len(a.items))
	}
	a.items = slices.Replace(a.items, lo, hi, slices.Collect(seq)...)
}

// Reverse reverses the elements in place.
func (a *Array[T]) Reverse() {
	slices.Reverse(a.items)
}

// Reversed returns a reversed view. The array is not modified.
func (a *Array[T]) Reversed() Reversed[T] {
	return Reversed[T]{items: a.items}
}

// SortFunc sorts in place by cmp. The order of equal elements is
// unspecified.
func (a *Array[T]) SortFunc(cmp func(x, y T) int) {
	slices.SortFunc(a.items, cmp)
}

// SortStableFunc sorts in place by cmp keeping equal elements in their
// original order.
func (a *Array[T]) SortStableFunc(cmp func(x, y T) int) {
	slices.SortStableFunc(a.items, cmp)
}

// SortedFunc returns a sorted copy.
func (a *Array[T]) SortedFunc(cmp func(x, y T) int) *Array[T] {
	out := a.Clone()
	out.SortFunc(cmp)
	return out
}

// SortedStableFunc returns a stably sorted copy.
func (a *Array[T]) SortedStableFunc(cmp func(x, y T) int) *Array[T] {
	out := a.Clone()
	out.SortStableFunc(cmp)
	return out
}

// SortFuncErr sorts with a comparator that can fail. The first error is
// returned as is and the array is left untouched.
func (a *Array[T]) SortFuncErr(cmp func(x, y T) (int, error)) error {
	var firstErr error
	scratch := slices.Clone(a.items)
	slices.SortFunc(scratch, func(x, y T) int {
		if firstErr != nil {
			return 0
		}
		c, err := cmp(x, y)
		if err != nil {
			firstErr = err
			return 0
		}
		return c
	})
	if firstErr != nil {
		return firstErr
	}
	copy(a.items, scratch)
	return nil
}

// Shuffle permutes the elements using r, or the process default source
// when r is nil.
func (a *Array[T]) Shuffle(r *rand.Rand) {
	swap := func(i, j int) { a.items[i], a.items[j] = a.items[j], a.items[i] }
	if r == nil {
		rand.Shuffle(len(a.items), swap)
		return
	}
	r.Shuffle(len(a.items), swap)
}

// Shuffled returns a shuffled copy.
func (a *Array[T]) Shuffled(r *rand.Rand) *Array[T] {
	out := a.Clone()
	out.Shuffle(r)
	return out
}

// Partition reorders the elements so that all elements for which pred
// returns true come after the others, and returns the index of the first
// of them. Relative order within each side is not preserved.
func (a *Array[T]) Partition(pred func(T) bool) int {
	lo, hi := 0, len(a.items)
	for {
		for {
			if lo == hi {
				return lo
			}
			if pred(a.items[lo]) {
				break
			}
			lo++
		}
		for {
			hi--
			if lo == hi {
				return lo
			}
			if !pred(a.items[hi]) {
				break
			}
		}
		a.items[lo], a.items[hi] = a.items[hi], a.items[lo]
		lo++
	}
}

// Reversed is a back-to-front view over an array's backing store.
type Reversed[T any] struct {
	items []T
}

func (r Reversed[T]) Len() int {
	return len(r.items)
}

// At returns the i-th element counting from the back.
func (r Reversed[T]) At(i int) T {
	if i < 0 || i >= len(r.items) {
		contract("Reversed.At", "index %d out of range [0:%d]", i, len(r.items))
	}
	return r.items[len(r.items)-1-i]
}

func (r Reversed[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		n := len(r.items)
		for i := range n {
			if !yield(i, r.items[n-1-i]) {
				return
			}
		}
	}
}

func (r Reversed[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := len(r.items) - 1; i >= 0; i-- {
			if !yield(r.items[i]) {
				return
			}
		}
	}
}

// Items returns the reversed elements as a new slice.
func (r Reversed[T]) Items() []T {
	out := slices.Clone(r.items)
	slices.Reverse(out)
	if out == nil {
		out = []T{}
	}
	return out
}
