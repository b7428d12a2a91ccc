package maps

import (
	"sort"

	"golang.org/x/exp/constraints"
)

func Keys[K comparable, V any](m map[K]V) []K {
	var ks []K
	for k := range m {
		ks = append(ks, k)
	}
	return ks
}

// OrderedKeys returns the keys of m in ascending order.
func OrderedKeys[K constraints.Ordered, V any](m map[K]V) []K {
	ks := Keys(m)
	sort.Slice(ks, func(i, j int) bool {
		return ks[i] < ks[j]
	})
	return ks
}

// Merge copies entries of from into to, keeping keys already present in to.
func Merge[K comparable, V any](from map[K]V, to map[K]V) {
	for k, v := range from {
		if _, ok := to[k]; !ok {
			to[k] = v
		}
	}
}
