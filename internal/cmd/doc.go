// Package cmd runs the shell commands bound to menu options.
//
// Options loaded from an options file may carry a "run" command. The CLI
// registers each one as a menu action that calls [Shell], so the command
// runs once the user has picked its option. [Shell] is [RunContext] with
// "sh -c".
//
// # Errors
//
// Captured stderr is used as the error message when a command fails, which
// keeps failures readable ("permission denied" rather than "exit status 1").
// When the context was cancelled, the context error is returned instead.
package cmd
