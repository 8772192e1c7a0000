// # Naming Conventions
//
// Functions in this package follow consistent naming patterns:
//
//   - Display* functions write formatted output to an [io.Writer].
//     They handle presentation logic and colorization.
//     Examples: [DisplayResult], [DisplayProgress].
//
//   - Format* and Truncate* functions return strings without performing I/O.
//     Examples: [FormatValue], [TruncateValue], [FormatExecutionDuration].

package cli

import (
	"fmt"
	"io"
	"time"

	"github.com/agbru/bigcalc/internal/eval"
	"github.com/agbru/bigcalc/internal/metrics"
	"github.com/agbru/bigcalc/internal/sysmon"
	"github.com/agbru/bigcalc/internal/ui"
)

// OutputConfig holds configuration for result output.
type OutputConfig struct {
	// Format is the rendering of values, "hex" or "bin".
	Format string
	// Quiet prints the bare result only, for scripting.
	Quiet bool
	// Verbose prints values in full instead of truncating them.
	Verbose bool
}

// TruncateValue shortens a rendered value longer than TruncationLimit to its
// leading and trailing digits. It reports whether s was truncated.
func TruncateValue(s, format string) (string, bool) {
	if len(s) <= TruncationLimit {
		return s, false
	}
	edges := HexDisplayEdges
	if format == "bin" {
		edges = BinDisplayEdges
	}
	return s[:edges] + "..." + s[len(s)-edges:], true
}

// FormatValue renders res in the configured format, truncated unless
// verbose. Scalars are never truncated.
func FormatValue(res eval.Result, cfg OutputConfig) string {
	text := res.Render(cfg.Format)
	if res.IsScalar() || cfg.Verbose || cfg.Quiet {
		return text
	}
	short, truncated := TruncateValue(text, effectiveFormat(res, cfg))
	if truncated {
		return short + " (truncated)"
	}
	return short
}

// DisplayResult writes the result of an evaluation. In quiet mode only the
// value is written, in full; otherwise the value is followed by its size and
// the evaluation time.
func DisplayResult(out io.Writer, res eval.Result, duration time.Duration, cfg OutputConfig) {
	if cfg.Quiet {
		fmt.Fprintln(out, res.Render(cfg.Format))
		return
	}

	fmt.Fprintf(out, "%s%s%s\n", ui.ColorGreen(), FormatValue(res, cfg), ui.ColorReset())
	if res.IsScalar() {
		fmt.Fprintf(out, "%s%s%s in %s%s%s\n",
			ui.ColorBlue(), res.Op, ui.ColorReset(), ui.ColorMagenta(), FormatExecutionDuration(duration), ui.ColorReset())
		return
	}
	fmt.Fprintf(out, "%s%s%s: %s%d%s limbs, %s%d%s bits in %s%s%s\n",
		ui.ColorBlue(), res.Op, ui.ColorReset(),
		ui.ColorCyan(), res.Value.Len(), ui.ColorReset(),
		ui.ColorCyan(), res.Value.BitLen(), ui.ColorReset(),
		ui.ColorMagenta(), FormatExecutionDuration(duration), ui.ColorReset())
	if len(res.Render(effectiveFormat(res, cfg))) > TruncationLimit && !cfg.Verbose {
		fmt.Fprintf(out, "%sTip: use -v to print the full value.%s\n", ui.ColorYellow(), ui.ColorReset())
	}
}

// DisplayMemoryStats shows the allocation activity of a run.
func DisplayMemoryStats(d metrics.MemoryDelta, out io.Writer) {
	fmt.Fprintf(out, "\nMemory Stats:\n")
	fmt.Fprintf(out, "  %s\n", d)
}

// DisplaySystemStats shows the peak system-wide usage observed during a run.
func DisplaySystemStats(peak sysmon.Stats, out io.Writer) {
	fmt.Fprintf(out, "  System peak: %s\n", peak)
}

func effectiveFormat(res eval.Result, cfg OutputConfig) string {
	if res.Format != "" {
		return res.Format
	}
	return cfg.Format
}
