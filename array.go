package sharedarray

import (
	"fmt"
	"iter"
	"slices"
)

// Array is a growable sequence with reference identity. Use it through
// *Array[T]; the struct value is not meant to be copied.
type Array[T any] struct {
	_ [0]func() // incomparable: == on handles would only compare identity

	items []T
}

// ContractError is the panic value for precondition failures the runtime
// would not catch on its own.
type ContractError struct {
	Op  string
	Msg string
}

func (e *ContractError) Error() string {
	return "sharedarray: " + e.Op + ": " + e.Msg
}

func contract(op, format string, args ...any) {
	panic(&ContractError{Op: op, Msg: fmt.Sprintf(format, args...)})
}

// New returns an empty array.
func New[T any]() *Array[T] {
	return &Array[T]{items: []T{}}
}

// WithCapacity returns an empty array able to hold n elements without
// reallocating.
func WithCapacity[T any](n int) *Array[T] {
	if n < 0 {
		contract("WithCapacity", "negative capacity %d", n)
	}
	return &Array[T]{items: make([]T, 0, n)}
}

// Repeating returns an array of count copies of value. Pointer, map and
// slice values alias the same referent in every slot.
func Repeating[T any](value T, count int) *Array[T] {
	if count < 0 {
		contract("Repeating", "negative count %d", count)
	}
	items := make([]T, count)
	for i := range items {
		items[i] = value
	}
	return &Array[T]{items: items}
}

// From drains seq in order. seq must be finite.
func From[T any](seq iter.Seq[T]) *Array[T] {
	items := slices.Collect(seq)
	if items == nil {
		items = []T{}
	}
	return &Array[T]{items: items}
}

// FromSlice copies s into a new array.
func FromSlice[T any](s []T) *Array[T] {
	items := make([]T, len(s))
	copy(items, s)
	return &Array[T]{items: items}
}

// Of builds an array from a literal list of elements.
func Of[T any](elems ...T) *Array[T] {
	return FromSlice(elems)
}

// Wrap adopts s as the backing store without copying. The caller hands over
// ownership and must not use s afterwards.
func Wrap[T any](s []T) *Array[T] {
	if s == nil {
		s = []T{}
	}
	return &Array[T]{items: s}
}

// Clone returns an array with its own backing store holding the same
// elements. Elements themselves are copied shallowly.
func (a *Array[T]) Clone() *Array[T] {
	return FromSlice(a.items)
}
