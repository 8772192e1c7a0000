// Package ui provides theme and color support for terminal output.
// It defines color schemes, ANSI escape code accessors for the active theme,
// and the lipgloss banner shown by the REPL.
//
// The package is a shared dependency for presentation code, keeping business
// logic free of styling concerns.
package ui
