// Package sharedarray provides Array, a growable sequence with reference
// identity.
//
// A Go slice header is a value: appending through one copy does not grow
// the others, so two holders of "the same" slice drift apart after the first
// reallocation. *Array[T] is a heap handle owning exactly one backing slice.
// Every copy of the pointer observes every mutation. Clone is the only way
// to obtain an independent backing store.
//
// Equality, hashing, ordering and encoding are defined by content, and
// are exposed as package functions constrained on the element type
// (Equal, Hash, Sort, Min, ...) because methods cannot carry extra
// constraints.
//
// Index arguments follow slice bounds: an out-of-range index panics with the
// runtime's bounds error. Views returned by Slice, Raw, DropFirst and the
// like alias the backing store and are invalidated by the next mutation.
//
// Array is not safe for concurrent use. Callers sharing a handle between
// goroutines must serialize access themselves.
package sharedarray
