// Package format holds the small text-formatting helpers shared by the CLI
// presenters and the REPL.
package format

import (
	"fmt"
	"time"
)

// FormatExecutionDuration formats a time.Duration for display: microseconds
// below a millisecond, milliseconds below a second, and the default string
// representation otherwise.
//
// Parameters:
//   - d: The duration to format.
//
// Returns:
//   - string: A formatted string representing the duration.
func FormatExecutionDuration(d time.Duration) string {
	switch {
	case d < time.Millisecond:
		return fmt.Sprintf("%dµs", d.Microseconds())
	case d < time.Second:
		return fmt.Sprintf("%dms", d.Milliseconds())
	default:
		return d.Round(time.Millisecond).String()
	}
}

// FormatETA renders a remaining-time estimate, or "--" when none is known.
func FormatETA(eta time.Duration) string {
	if eta <= 0 {
		return "--"
	}
	if eta < time.Second {
		return "<1s"
	}
	return eta.Round(time.Second).String()
}
