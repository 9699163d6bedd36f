package sets

import (
	"cmp"
	"maps"
	"slices"
)

// Set is an unordered collection of unique comparable elements.
type Set[E comparable] map[E]struct{}

// New returns a set containing the given elements.
func New[E comparable](elems ...E) Set[E] {
	return FromSlice(elems)
}

// FromSlice returns a set containing every element of elems. Duplicates collapse.
func FromSlice[E comparable](elems []E) Set[E] {
	s := make(Set[E], len(elems))
	for _, e := range elems {
		s[e] = struct{}{}
	}
	return s
}

// Contains reports whether e is a member of s.
func (s Set[E]) Contains(e E) bool {
	_, ok := s[e]
	return ok
}

// Len returns the number of elements in s.
func (s Set[E]) Len() int {
	return len(s)
}

// Equal reports whether s and t contain exactly the same elements.
func Equal[E comparable](s, t Set[E]) bool {
	if len(s) != len(t) {
		return false
	}
	for e := range s {
		if !t.Contains(e) {
			return false
		}
	}
	return true
}

// Sorted returns the elements of s in ascending order.
func Sorted[E cmp.Ordered](s Set[E]) []E {
	return slices.Sorted(maps.Keys(s))
}
