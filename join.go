package sharedarray

import (
	"iter"
	"strings"
)

// Joined concatenates the elements with sep between them.
func Joined[S ~string](a *Array[S], sep string) string {
	switch len(a.items) {
	case 0:
		return ""
	case 1:
		return string(a.items[0])
	}
	n := len(sep) * (len(a.items) - 1)
	for _, s := range a.items {
		n += len(s)
	}
	var b strings.Builder
	b.Grow(n)
	b.WriteString(string(a.items[0]))
	for _, s := range a.items[1:] {
		b.WriteString(sep)
		b.WriteString(string(s))
	}
	return b.String()
}

// Flatten lazily yields the elements of every inner slice in order.
func Flatten[E any, S ~[]E](a *Array[S]) iter.Seq[E] {
	return JoinedWith(a, nil)
}

// JoinedWith lazily yields the inner slices with sep between them.
func JoinedWith[E any, S ~[]E](a *Array[S], sep []E) iter.Seq[E] {
	return func(yield func(E) bool) {
		for i, inner := range a.items {
			if i > 0 {
				for _, e := range sep {
					if !yield(e) {
						return
					}
				}
			}
			for _, e := range inner {
				if !yield(e) {
					return
				}
			}
		}
	}
}
