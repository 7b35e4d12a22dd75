package sharedarray

import (
	"cmp"
	"iter"
	"slices"
)

// Equal reports whether a and b hold equal elements in the same order.
func Equal[T comparable](a, b *Array[T]) bool {
	return slices.Equal(a.items, b.items)
}

// Index returns the index of the first occurrence of v, or -1.
func Index[T comparable](a *Array[T], v T) int {
	return slices.Index(a.items, v)
}

// LastIndex returns the index of the last occurrence of v, or -1.
func LastIndex[T comparable](a *Array[T], v T) int {
	for i := len(a.items) - 1; i >= 0; i-- {
		if a.items[i] == v {
			return i
		}
	}
	return -1
}

func Contains[T comparable](a *Array[T], v T) bool {
	return slices.Contains(a.items, v)
}

// StartsWith reports whether the first elements of a are those of prefix.
// An empty prefix always matches.
func StartsWith[T comparable](a *Array[T], prefix iter.Seq[T]) bool {
	i := 0
	for v := range prefix {
		if i >= len(a.items) || a.items[i] != v {
			return false
		}
		i++
	}
	return true
}

// ElementsEqual reports whether other yields exactly the elements of a.
func ElementsEqual[T comparable](a *Array[T], other iter.Seq[T]) bool {
	return a.ElementsEqualFunc(other, func(x, y T) bool { return x == y })
}

// Split cuts a around every occurrence of sep and returns views into the
// backing store. At most maxSplits cuts are made; a negative maxSplits means
// no limit. With omitEmpty, empty parts are dropped and do not count
// towards maxSplits.
func Split[T comparable](a *Array[T], sep T, maxSplits int, omitEmpty bool) [][]T {
	items := a.items
	var out [][]T
	start := 0
	push := func(end int) bool {
		if start == end && omitEmpty {
			return false
		}
		out = append(out, items[start:end:end])
		return true
	}
	if maxSplits == 0 || len(items) == 0 {
		push(len(items))
		return out
	}
	for end := 0; end < len(items); end++ {
		if items[end] != sep {
			continue
		}
		appended := push(end)
		start = end + 1
		if appended && len(out) == maxSplits {
			break
		}
	}
	if start != len(items) || !omitEmpty {
		out = append(out, items[start:len(items):len(items)])
	}
	return out
}

// Min returns the smallest element, or false when empty.
func Min[T cmp.Ordered](a *Array[T]) (v T, ok bool) {
	if len(a.items) == 0 {
		return
	}
	return slices.Min(a.items), true
}

// Max returns the largest element, or false when empty.
func Max[T cmp.Ordered](a *Array[T]) (v T, ok bool) {
	if len(a.items) == 0 {
		return
	}
	return slices.Max(a.items), true
}

// Sort sorts a in ascending order.
func Sort[T cmp.Ordered](a *Array[T]) {
	slices.Sort(a.items)
}

// Sorted returns an ascending copy of a.
func Sorted[T cmp.Ordered](a *Array[T]) *Array[T] {
	out := a.Clone()
	slices.Sort(out.items)
	return out
}

// LexicographicallyPrecedes reports whether a orders before other when
// compared element by element, a shorter prefix ordering first.
func LexicographicallyPrecedes[T cmp.Ordered](a *Array[T], other iter.Seq[T]) bool {
	i := 0
	for v := range other {
		if i >= len(a.items) {
			return true
		}
		if cmp.Less(a.items[i], v) {
			return true
		}
		if cmp.Less(v, a.items[i]) {
			return false
		}
		i++
	}
	return false
}

// Compare compares a and b element by element, like slices.Compare.
func Compare[T cmp.Ordered](a, b *Array[T]) int {
	return slices.Compare(a.items, b.items)
}
