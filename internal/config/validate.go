package config

import (
	"fmt"
	"unicode/utf8"
)

// validateWordSeparator accepts "" (disabled) or exactly one character.
func validateWordSeparator(sep string) error {
	if sep == "" {
		return nil
	}
	if utf8.RuneCountInString(sep) != 1 {
		return fmt.Errorf("invalid word_separator %q: must be a single character or empty", sep)
	}
	return nil
}

// validateOptions checks that keys are unique and labels are non-empty.
func validateOptions(opts []OptionEntry) error {
	seen := make(map[int64]int, len(opts))
	for i, o := range opts {
		if o.Label == "" {
			return fmt.Errorf("invalid option[%d] (key %d): label must not be empty", i, o.Key)
		}
		if prev, ok := seen[o.Key]; ok {
			return fmt.Errorf("invalid option[%d]: key %d already used by option[%d]", i, o.Key, prev)
		}
		seen[o.Key] = i
	}
	return nil
}
