package sharedarray

import (
	"slices"

	"github.com/bits-and-blooms/bitset"
)

type ChangeKind uint8

const (
	Insert ChangeKind = iota + 1
	Remove
)

func (k ChangeKind) String() string {
	switch k {
	case Insert:
		return "insert"
	case Remove:
		return "remove"
	default:
		return "unknown"
	}
}

// Change is one step of an edit script. Remove offsets index the original
// sequence, Insert offsets index the result. AssociatedWith is the offset
// of the paired change of the opposite kind when the change is part of a
// move, or -1.
type Change[T any] struct {
	Kind           ChangeKind
	Offset         int
	Element        T
	AssociatedWith int
}

// Diff is an ordered edit script: removals by descending offset, then
// insertions by ascending offset.
type Diff[T any] struct {
	Changes []Change[T]
}

func (d Diff[T]) IsEmpty() bool {
	return len(d.Changes) == 0
}

func (d Diff[T]) Removals() []Change[T] {
	var out []Change[T]
	for _, c := range d.Changes {
		if c.Kind == Remove {
			out = append(out, c)
		}
	}
	return out
}

func (d Diff[T]) Insertions() []Change[T] {
	var out []Change[T]
	for _, c := range d.Changes {
		if c.Kind == Insert {
			out = append(out, c)
		}
	}
	return out
}

// Inverse returns the script that undoes d.
func (d Diff[T]) Inverse() Diff[T] {
	changes := make([]Change[T], len(d.Changes))
	for i, c := range d.Changes {
		if c.Kind == Insert {
			c.Kind = Remove
		} else {
			c.Kind = Insert
		}
		changes[i] = c
	}
	return newDiff(changes)
}

func newDiff[T any](changes []Change[T]) Diff[T] {
	slices.SortStableFunc(changes, func(x, y Change[T]) int {
		if x.Kind != y.Kind {
			if x.Kind == Remove {
				return -1
			}
			return 1
		}
		if x.Kind == Remove {
			return y.Offset - x.Offset
		}
		return x.Offset - y.Offset
	})
	return Diff[T]{Changes: changes}
}

// InferringMoves pairs each insertion with an unpaired removal of an equal
// element, filling AssociatedWith on both sides.
func InferringMoves[T comparable](d Diff[T]) Diff[T] {
	changes := slices.Clone(d.Changes)
	removals := make(map[T][]int)
	for i, c := range changes {
		c.AssociatedWith = -1
		changes[i] = c
		if c.Kind == Remove {
			removals[c.Element] = append(removals[c.Element], i)
		}
	}
	paired := bitset.New(uint(len(changes)))
	for i, c := range changes {
		if c.Kind != Insert {
			continue
		}
		for _, r := range removals[c.Element] {
			if paired.Test(uint(r)) {
				continue
			}
			paired.Set(uint(r))
			changes[i].AssociatedWith = changes[r].Offset
			changes[r].AssociatedWith = c.Offset
			break
		}
	}
	return Diff[T]{Changes: changes}
}

// Difference returns the edit script turning from into a.
func Difference[T comparable](a *Array[T], from []T) Diff[T] {
	return DifferenceFunc(a, from, func(x, y T) bool { return x == y })
}

// DifferenceFunc is Difference with a caller supplied equivalence, called
// as eq(elementOfFrom, elementOfA).
func DifferenceFunc[T any](a *Array[T], from []T, eq func(x, y T) bool) Diff[T] {
	return newDiff(myers(from, a.items, eq))
}

// Applying returns a copy of a with d applied, or false when d does not
// fit a.
func Applying[T any](a *Array[T], d Diff[T]) (*Array[T], bool) {
	removed := make(map[int]struct{})
	inserted := make(map[int]T)
	for _, c := range d.Changes {
		switch c.Kind {
		case Remove:
			if c.Offset < 0 || c.Offset >= len(a.items) {
				return nil, false
			}
			if _, dup := removed[c.Offset]; dup {
				return nil, false
			}
			removed[c.Offset] = struct{}{}
		case Insert:
			if _, dup := inserted[c.Offset]; dup || c.Offset < 0 {
				return nil, false
			}
			inserted[c.Offset] = c.Element
		default:
			return nil, false
		}
	}
	n := len(a.items) - len(removed) + len(inserted)
	out := make([]T, 0, n)
	src := 0
	for i := range n {
		if v, ok := inserted[i]; ok {
			out = append(out, v)
			continue
		}
		for {
			if src >= len(a.items) {
				return nil, false
			}
			_, skip := removed[src]
			src++
			if !skip {
				out = append(out, a.items[src-1])
				break
			}
		}
	}
	if len(out) != n {
		return nil, false
	}
	return Wrap(out), true
}

// myers computes a shortest edit script from old to cur with Myers' O(ND)
// greedy algorithm and returns the changes in backtracking order.
func myers[T any](old, cur []T, eq func(x, y T) bool) []Change[T] {
	n, m := len(old), len(cur)
	limit := n + m
	off := limit
	v := make([]int, 2*limit+2)
	var trace [][]int

search:
	for d := 0; d <= limit; d++ {
		trace = append(trace, slices.Clone(v))
		for k := -d; k <= d; k += 2 {
			var x int
			if k == -d || (k != d && v[off+k-1] < v[off+k+1]) {
				x = v[off+k+1]
			} else {
				x = v[off+k-1] + 1
			}
			y := x - k
			for x < n && y < m && eq(old[x], cur[y]) {
				x++
				y++
			}
			v[off+k] = x
			if x >= n && y >= m {
				break search
			}
		}
	}

	var changes []Change[T]
	x, y := n, m
	for d := len(trace) - 1; d > 0; d-- {
		vd := trace[d]
		k := x - y
		var prevK int
		if k == -d || (k != d && vd[off+k-1] < vd[off+k+1]) {
			prevK = k + 1
		} else {
			prevK = k - 1
		}
		prevX := vd[off+prevK]
		prevY := prevX - prevK
		for x > prevX && y > prevY {
			x--
			y--
		}
		if x == prevX {
			changes = append(changes, Change[T]{Kind: Insert, Offset: prevY, Element: cur[prevY], AssociatedWith: -1})
		} else {
			changes = append(changes, Change[T]{Kind: Remove, Offset: prevX, Element: old[prevX], AssociatedWith: -1})
		}
		x, y = prevX, prevY
	}
	return changes
}
