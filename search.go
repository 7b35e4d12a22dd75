package sharedarray

import (
	"iter"
	"slices"
)

// IndexFunc returns the index of the first element satisfying pred, or -1.
func (a *Array[T]) IndexFunc(pred func(T) bool) int {
	return slices.IndexFunc(a.items, pred)
}

// LastIndexFunc returns the index of the last element satisfying pred, or -1.
func (a *Array[T]) LastIndexFunc(pred func(T) bool) int {
	for i := len(a.items) - 1; i >= 0; i-- {
		if pred(a.items[i]) {
			return i
		}
	}
	return -1
}

func (a *Array[T]) FirstFunc(pred func(T) bool) (v T, ok bool) {
	if i := a.IndexFunc(pred); i >= 0 {
		return a.items[i], true
	}
	return
}

func (a *Array[T]) LastFunc(pred func(T) bool) (v T, ok bool) {
	if i := a.LastIndexFunc(pred); i >= 0 {
		return a.items[i], true
	}
	return
}

func (a *Array[T]) ContainsFunc(pred func(T) bool) bool {
	return slices.ContainsFunc(a.items, pred)
}

// AllSatisfy reports whether pred holds for every element. It is true for
// an empty array.
func (a *Array[T]) AllSatisfy(pred func(T) bool) bool {
	for _, v := range a.items {
		if !pred(v) {
			return false
		}
	}
	return true
}

func (a *Array[T]) ForEach(fn func(i int, v T)) {
	for i, v := range a.items {
		fn(i, v)
	}
}

// ForEachErr calls fn on every element in order and stops at the first
// error, which is returned unchanged.
func (a *Array[T]) ForEachErr(fn func(i int, v T) error) error {
	for i, v := range a.items {
		if err := fn(i, v); err != nil {
			return err
		}
	}
	return nil
}

// MinFunc returns the first minimal element according to cmp.
func (a *Array[T]) MinFunc(cmp func(x, y T) int) (v T, ok bool) {
	if len(a.items) == 0 {
		return
	}
	return slices.MinFunc(a.items, cmp), true
}

// MaxFunc returns the first maximal element according to cmp.
func (a *Array[T]) MaxFunc(cmp func(x, y T) int) (v T, ok bool) {
	if len(a.items) == 0 {
		return
	}
	return slices.MaxFunc(a.items, cmp), true
}

// ElementsEqualFunc reports whether other yields the same number of
// elements as a and eq holds pairwise. It stops at the first mismatch.
func (a *Array[T]) ElementsEqualFunc(other iter.Seq[T], eq func(x, y T) bool) bool {
	i := 0
	for v := range other {
		if i >= len(a.items) || !eq(a.items[i], v) {
			return false
		}
		i++
	}
	return i == len(a.items)
}
