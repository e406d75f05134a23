// Package config handles loading and validation of consolemenu configuration.
//
// Configuration is read from ~/.config/consolemenu/config.toml, or from the
// file named by the CONSOLEMENU_CONFIG environment variable.
//
// # Configuration Sources (highest priority first)
//
//   - Command-line flags (--header, --separator, --raw, ...)
//   - Options file top-level settings (header, separator)
//   - Config file settings
//   - Default values
//
// # Key Settings
//
//   - header: line printed above the options
//   - separator: text between an option's number and its label
//   - word_separator: single character shown as a blank in labels ("" disables)
//   - raw_labels: print labels verbatim
//   - cancel: offer "X - Exit"
//   - dispatch: run an option's action after it is picked
//   - leading_blank: print a blank line before the header
//
// # Options Files
//
// An options file defines the menu entries:
//
//	header = "Please select a Smartphone:"
//
//	[[option]]
//	key = 1
//	label = "iPhone_5"
//	run = "echo 'good choice'"
//
// Keys must be unique and labels non-empty. "run" is optional.
package config
