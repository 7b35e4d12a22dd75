package sharedarray

import "iter"

// Map returns fn applied to every element, in order.
func Map[T, U any](a *Array[T], fn func(T) U) []U {
	out := make([]U, len(a.items))
	for i, v := range a.items {
		out[i] = fn(v)
	}
	return out
}

// MapErr is Map with a fallible fn. The first error is returned unchanged
// together with a nil slice.
func MapErr[T, U any](a *Array[T], fn func(T) (U, error)) ([]U, error) {
	out := make([]U, len(a.items))
	for i, v := range a.items {
		u, err := fn(v)
		if err != nil {
			return nil, err
		}
		out[i] = u
	}
	return out, nil
}

// CompactMap keeps the results of fn for which it reports true.
func CompactMap[T, U any](a *Array[T], fn func(T) (U, bool)) []U {
	out := make([]U, 0, len(a.items))
	for _, v := range a.items {
		if u, ok := fn(v); ok {
			out = append(out, u)
		}
	}
	return out
}

// FlatMap concatenates the sequences produced by fn.
func FlatMap[T, U any](a *Array[T], fn func(T) iter.Seq[U]) []U {
	out := []U{}
	for _, v := range a.items {
		for u := range fn(v) {
			out = append(out, u)
		}
	}
	return out
}

// Reduce folds the elements left to right starting from initial.
func Reduce[T, R any](a *Array[T], initial R, fn func(acc R, v T) R) R {
	acc := initial
	for _, v := range a.items {
		acc = fn(acc, v)
	}
	return acc
}

// ReduceErr is Reduce with a fallible fn, stopping at the first error.
func ReduceErr[T, R any](a *Array[T], initial R, fn func(acc R, v T) (R, error)) (R, error) {
	acc := initial
	for _, v := range a.items {
		next, err := fn(acc, v)
		if err != nil {
			var zero R
			return zero, err
		}
		acc = next
	}
	return acc, nil
}

// ReduceInto folds by mutating an accumulator in place.
func ReduceInto[T, R any](a *Array[T], initial R, fn func(acc *R, v T)) R {
	acc := initial
	for _, v := range a.items {
		fn(&acc, v)
	}
	return acc
}
