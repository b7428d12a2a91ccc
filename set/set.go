// Package set is a minimal generic set on top of a map.
package set

import (
	"sort"

	"golang.org/x/exp/constraints"
)

func New[T comparable](ts ...T) Set[T] {
	s := Set[T]{}
	for _, t := range ts {
		s[t] = struct{}{}
	}
	return s
}

type Set[T comparable] map[T]struct{}

func (s Set[T]) Insert(t T) {
	s[t] = struct{}{}
}

func (s Set[T]) Contains(t T) bool {
	_, ok := s[t]
	return ok
}

func (s Set[T]) Len() int {
	return len(s)
}

// Sorted returns the members of s in ascending order; never nil.
func Sorted[T constraints.Ordered](s Set[T]) []T {
	ts := make([]T, 0, len(s))
	for t := range s {
		ts = append(ts, t)
	}
	sort.Slice(ts, func(i, j int) bool {
		return ts[i] < ts[j]
	})
	return ts
}
