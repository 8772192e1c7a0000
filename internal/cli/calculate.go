package cli

import (
	"fmt"
	"io"
	"runtime"

	"github.com/agbru/bigcalc/internal/config"
	"github.com/agbru/bigcalc/internal/ui"
)

// PrintExecutionConfig displays the configuration of a verification run:
// the vector source, timeout, environment and multiplication threshold.
//
// Parameters:
//   - cfg: The application configuration, with adaptive values applied.
//   - count: The number of vectors to verify.
//   - out: The writer for standard output.
func PrintExecutionConfig(cfg config.AppConfig, count int, out io.Writer) {
	source := "built-in vectors"
	if cfg.VectorsFile != "" {
		source = cfg.VectorsFile
	}
	fmt.Fprintf(out, "--- Execution Configuration ---\n")
	fmt.Fprintf(out, "Verifying %s%d%s vectors from %s%s%s with a timeout of %s%s%s.\n",
		ui.ColorCyan(), count, ui.ColorReset(), ui.ColorBlue(), source, ui.ColorReset(),
		ui.ColorYellow(), cfg.Timeout, ui.ColorReset())
	fmt.Fprintf(out, "Environment: %s%d%s logical processors, Go %s%s%s, %s%d%s workers.\n",
		ui.ColorCyan(), runtime.NumCPU(), ui.ColorReset(), ui.ColorCyan(), runtime.Version(), ui.ColorReset(),
		ui.ColorCyan(), cfg.Workers, ui.ColorReset())
	fmt.Fprintf(out, "Karatsuba threshold: %s%d%s limbs.\n", ui.ColorCyan(), cfg.KaratsubaThreshold, ui.ColorReset())
	fmt.Fprintf(out, "\n--- Starting Execution ---\n")
}
