package sharedarray

import (
	"hash/maphash"
)

// Hash hashes the length and elements of a. Arrays that are Equal hash
// to the same value for a given seed.
func Hash[T comparable](a *Array[T], seed maphash.Seed) uint64 {
	var h maphash.Hash
	h.SetSeed(seed)
	maphash.WriteComparable(&h, len(a.items))
	for _, v := range a.items {
		maphash.WriteComparable(&h, v)
	}
	return h.Sum64()
}
