package menu

import (
	"cmp"
	"fmt"
	"slices"
)

// Key is the set of integer kinds usable as option keys.
// Enumeration-like types such as "type Phone int" satisfy it.
type Key interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64
}

// Option is one numbered entry of a menu.
type Option[K Key] struct {
	Key   K
	Label string
}

// FromStringers builds an option set from enum-like constants, using each
// constant's String method as its label.
func FromStringers[K interface {
	Key
	fmt.Stringer
}](keys ...K) []Option[K] {
	opts := make([]Option[K], len(keys))
	for i, k := range keys {
		opts[i] = Option[K]{Key: k, Label: k.String()}
	}
	return opts
}

// sortOptions returns a copy of opts in ascending key order.
// Returns ErrDuplicateKey if two options share a key.
func sortOptions[K Key](opts []Option[K]) ([]Option[K], error) {
	sorted := slices.Clone(opts)
	slices.SortStableFunc(sorted, func(a, b Option[K]) int {
		return cmp.Compare(a.Key, b.Key)
	})
	for i := 1; i < len(sorted); i++ {
		if sorted[i].Key == sorted[i-1].Key {
			return nil, fmt.Errorf("%w: %d", ErrDuplicateKey, int64(sorted[i].Key))
		}
	}
	return sorted, nil
}
