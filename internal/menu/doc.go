// Package menu renders numbered "pick one of N" menus on plain line streams.
//
// A [Menu] owns an ordered option set, writes it to an [io.Writer] and reads
// one line per attempt from an [io.Reader] until the line names an existing
// option key or the cancel token "x". Invalid input is never returned to the
// caller: the menu prints a retry message and renders itself again.
//
// # Layout
//
// With the default settings the menu is written as:
//
//	(blank line)
//	Please choose an option:
//	(blank line)
//	1 - iPhone 5
//	2 - iPhone 4S
//	X - Exit
//	(blank line)
//
// The leading blank line, the cancel line and the replacement of the word
// separator ("_") by a blank are all configurable.
//
// # Actions
//
// [Menu.RegisterAction] binds a zero-argument function to a key. With
// [Menu.AutoDispatch] set (the default) the function for the accepted key
// runs once, after the loop exits. Presentation-only callers clear
// AutoDispatch and inspect [Menu.Selection] or call [Menu.Dispatch]
// themselves.
package menu
