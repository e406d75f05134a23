package menu

import "errors"

// Configuration errors are returned by the call that caused them.
var (
	ErrNilOutput    = errors.New("menu output must not be nil")
	ErrNilInput     = errors.New("menu input must not be nil")
	ErrDuplicateKey = errors.New("duplicate option key")
	ErrNilAction    = errors.New("menu action must not be nil")
)

// ErrInvalidSelection marks an input line that names no option.
// Show handles it internally by asking again; it is never returned.
var ErrInvalidSelection = errors.New("no valid selection")

// ErrInputClosed is returned by Show when the input reaches EOF before a
// selection was made.
var ErrInputClosed = errors.New("input closed before a selection was made")
