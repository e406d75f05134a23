package menu

import "strconv"

// Selection is the outcome of a menu: either a concrete key or no selection.
// The zero value is NoSelection.
type Selection[K Key] struct {
	key K
	ok  bool
}

// Selected returns a selection holding key.
func Selected[K Key](key K) Selection[K] {
	return Selection[K]{key: key, ok: true}
}

// NoSelection returns the empty selection, used before the first successful
// Show and after the user cancels.
func NoSelection[K Key]() Selection[K] {
	return Selection[K]{}
}

// Key returns the selected key and true, or the zero key and false.
func (s Selection[K]) Key() (K, bool) {
	return s.key, s.ok
}

// IsNone reports whether s holds no key.
func (s Selection[K]) IsNone() bool {
	return !s.ok
}

func (s Selection[K]) String() string {
	if !s.ok {
		return "none"
	}
	return strconv.FormatInt(int64(s.key), 10)
}
