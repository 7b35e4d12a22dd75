package sharedarray

import "fmt"

// Format implements fmt.Formatter by formatting the backing slice, so
// %v, %d, %q and friends print exactly what they print for a []T.
func (a *Array[T]) Format(state fmt.State, verb rune) {
	fmt.Fprintf(state, fmt.FormatString(state, verb), a.storage())
}

func (a *Array[T]) String() string {
	return fmt.Sprint(a.storage())
}
