package sharedarray

import (
	"iter"
	"math/rand/v2"
)

// At returns the element at index i.
func (a *Array[T]) At(i int) T {
	return a.items[i]
}

// Set replaces the element at index i.
func (a *Array[T]) Set(i int, v T) {
	a.items[i] = v
}

func (a *Array[T]) Len() int {
	return len(a.items)
}

func (a *Array[T]) IsEmpty() bool {
	return len(a.items) == 0
}

// First returns the first element, or false when the array is empty.
func (a *Array[T]) First() (v T, ok bool) {
	if len(a.items) == 0 {
		return
	}
	return a.items[0], true
}

// Last returns the last element, or false when the array is empty.
func (a *Array[T]) Last() (v T, ok bool) {
	if len(a.items) == 0 {
		return
	}
	return a.items[len(a.items)-1], true
}

func (a *Array[T]) Cap() int {
	return cap(a.items)
}

// Reserve grows the backing store so that n more elements can be appended
// without reallocating.
func (a *Array[T]) Reserve(n int) {
	if n < 0 {
		contract("Reserve", "negative count %d", n)
	}
	if cap(a.items)-len(a.items) >= n {
		return
	}
	grown := make([]T, len(a.items), len(a.items)+n)
	copy(grown, a.items)
	a.items = grown
}

// UnderestimatedCount is Len; a slice always knows its length.
func (a *Array[T]) UnderestimatedCount() int {
	return len(a.items)
}

// Indices returns the half-open range of valid indices.
func (a *Array[T]) Indices() (lo, hi int) {
	return 0, len(a.items)
}

// Slice returns a view of items[lo:hi]. The view aliases the backing store.
func (a *Array[T]) Slice(lo, hi int) []T {
	return a.items[lo:hi:hi]
}

// DropFirst returns a view without the first k elements. k larger than Len
// yields an empty view.
func (a *Array[T]) DropFirst(k int) []T {
	if k < 0 {
		contract("DropFirst", "negative count %d", k)
	}
	k = min(k, len(a.items))
	return a.items[k:len(a.items):len(a.items)]
}

// DropLast returns a view without the last k elements.
func (a *Array[T]) DropLast(k int) []T {
	if k < 0 {
		contract("DropLast", "negative count %d", k)
	}
	end := max(len(a.items)-k, 0)
	return a.items[:end:end]
}

// DropWhile returns a view starting at the first element for which pred is
// false.
func (a *Array[T]) DropWhile(pred func(T) bool) []T {
	for i, v := range a.items {
		if !pred(v) {
			return a.items[i:len(a.items):len(a.items)]
		}
	}
	return a.items[len(a.items):]
}

// All yields index/element pairs in order.
func (a *Array[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i, v := range a.items {
			if !yield(i, v) {
				return
			}
		}
	}
}

// Values yields elements in order.
func (a *Array[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, v := range a.items {
			if !yield(v) {
				return
			}
		}
	}
}

// Backward yields index/element pairs from the last element to the first.
func (a *Array[T]) Backward() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := len(a.items) - 1; i >= 0; i-- {
			if !yield(i, a.items[i]) {
				return
			}
		}
	}
}

// Items returns a copy of the elements.
func (a *Array[T]) Items() []T {
	out := make([]T, len(a.items))
	copy(out, a.items)
	return out
}

// Raw returns the backing store itself. It is valid until the next mutation.
func (a *Array[T]) Raw() []T {
	return a.items
}

// WithStorage hands the backing store to fn for in-place element writes.
// fn must not retain the slice; changing its length has no effect.
func (a *Array[T]) WithStorage(fn func(s []T)) {
	fn(a.items)
}

// RandomElement picks an element using r, or the process default source
// when r is nil.
func (a *Array[T]) RandomElement(r *rand.Rand) (v T, ok bool) {
	if len(a.items) == 0 {
		return
	}
	if r == nil {
		return a.items[rand.IntN(len(a.items))], true
	}
	return a.items[r.IntN(len(a.items))], true
}
