// Package filter narrows a menu option set with fuzzy matching.
package filter

import (
	"strings"

	"github.com/sahilm/fuzzy"

	"github.com/raphi011/consolemenu/internal/menu"
)

// labelSource implements fuzzy.Source over the labels shown to the user.
type labelSource []string

func (s labelSource) String(i int) string { return s[i] }
func (s labelSource) Len() int            { return len(s) }

// Options returns the options whose labels fuzzy-match query, keeping their
// original keys and relative order. Labels are matched as displayed: each
// wordSeparator becomes a blank (0 matches the raw label). An empty query
// returns all options.
func Options[K menu.Key](opts []menu.Option[K], query string, wordSeparator rune) []menu.Option[K] {
	if query == "" {
		return append([]menu.Option[K](nil), opts...)
	}

	labels := make(labelSource, len(opts))
	for i, o := range opts {
		labels[i] = o.Label
		if wordSeparator != 0 {
			labels[i] = strings.ReplaceAll(o.Label, string(wordSeparator), " ")
		}
	}

	matches := fuzzy.FindFrom(query, labels)
	keep := make([]bool, len(opts))
	for _, m := range matches {
		keep[m.Index] = true
	}

	filtered := make([]menu.Option[K], 0, len(matches))
	for i, o := range opts {
		if keep[i] {
			filtered = append(filtered, o)
		}
	}
	return filtered
}
