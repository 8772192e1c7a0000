package cli

import (
	"fmt"
	"io"
	"sync"

	"github.com/briandowns/spinner"

	"github.com/agbru/bigcalc/internal/format"
	"github.com/agbru/bigcalc/internal/orchestration"
	"github.com/agbru/bigcalc/internal/ui"
)

// CLIProgressReporter implements orchestration.ProgressReporter with a
// spinner, a progress bar and an ETA.
type CLIProgressReporter struct{}

var _ orchestration.ProgressReporter = CLIProgressReporter{}

// DisplayProgress shows batch progress until progressChan is closed.
func (CLIProgressReporter) DisplayProgress(wg *sync.WaitGroup, progressChan <-chan orchestration.ProgressUpdate, total int, out io.Writer) {
	DisplayProgress(wg, progressChan, total, out)
}

// DisplayProgress consumes per-vector updates and renders them as a spinner
// suffix. It returns after progressChan is closed and calls wg.Done.
//
// Parameters:
//   - wg: The WaitGroup to signal on return.
//   - progressChan: Channel receiving one update per finished vector.
//   - total: The number of vectors in the batch.
//   - out: The writer the spinner draws on.
func DisplayProgress(wg *sync.WaitGroup, progressChan <-chan orchestration.ProgressUpdate, total int, out io.Writer) {
	defer wg.Done()
	agg := orchestration.NewProgressAggregator(total)
	if agg == nil {
		orchestration.DrainChannel(progressChan)
		return
	}

	s := newSpinner(spinner.WithWriter(out), spinner.WithHiddenCursor(true))
	s.UpdateSuffix(progressSuffix(orchestration.AggregatedProgress{Total: total}))
	s.Start()
	defer s.Stop()

	for update := range progressChan {
		s.UpdateSuffix(progressSuffix(agg.Update(update)))
	}
}

func progressSuffix(p orchestration.AggregatedProgress) string {
	suffix := fmt.Sprintf(" %s %d/%d vectors", progressBar(p.Fraction, ProgressBarWidth), p.Done, p.Total)
	if p.Failed > 0 {
		suffix += fmt.Sprintf(", %d failed", p.Failed)
	}
	if p.Done > 0 && p.Done < p.Total {
		suffix += ", ETA " + format.FormatETA(p.ETA)
	}
	return suffix
}

// CLIResultPresenter implements orchestration.ResultPresenter with colored
// tabular output.
type CLIResultPresenter struct {
	// Verbose prints full values in failure details instead of truncating
	// them.
	Verbose bool
}

var _ orchestration.ResultPresenter = CLIResultPresenter{}

// PresentVectorTable displays one row per vector with its operation,
// duration and status. Uses manual padding to handle ANSI color codes.
func (CLIResultPresenter) PresentVectorTable(results []orchestration.VectorResult, out io.Writer) {
	fmt.Fprintf(out, "\n--- Verification Summary ---\n")

	nameWidth, opWidth, durWidth := len("Vector"), len("Op"), len("Duration")
	for _, r := range results {
		nameWidth = max(nameWidth, len(r.Vector.Name))
		opWidth = max(opWidth, len(r.Vector.Op))
		durWidth = max(durWidth, len(displayDuration(r)))
	}

	fmt.Fprintf(out, "%sVector%s%s   %sOp%s%s   %sDuration%s%s   %sStatus%s\n",
		ui.ColorUnderline(), ui.ColorReset(), padRight("", nameWidth-len("Vector")),
		ui.ColorUnderline(), ui.ColorReset(), padRight("", opWidth-len("Op")),
		ui.ColorUnderline(), ui.ColorReset(), padRight("", durWidth-len("Duration")),
		ui.ColorUnderline(), ui.ColorReset())

	for _, r := range results {
		dur := displayDuration(r)
		fmt.Fprintf(out, "%s%s%s%s   %s%s   %s%s%s%s   %s\n",
			ui.ColorBlue(), r.Vector.Name, ui.ColorReset(), padRight("", nameWidth-len(r.Vector.Name)),
			r.Vector.Op, padRight("", opWidth-len(r.Vector.Op)),
			ui.ColorMagenta(), dur, ui.ColorReset(), padRight("", durWidth-len(dur)),
			status(r))
	}
}

// PresentFailure details a vector that did not pass: the evaluation error,
// or the expected and actual values.
func (p CLIResultPresenter) PresentFailure(r orchestration.VectorResult, out io.Writer) {
	fmt.Fprintf(out, "\n%s✗ %s%s (%s)\n", ui.ColorRed(), r.Vector.Name, ui.ColorReset(), r.Vector.Expr())
	if r.Err != nil {
		fmt.Fprintf(out, "  error: %s%v%s\n", ui.ColorRed(), r.Err, ui.ColorReset())
		return
	}
	want, got := r.Want, r.Got
	if !p.Verbose {
		want, _ = TruncateValue(want, r.Format)
		got, _ = TruncateValue(got, r.Format)
	}
	fmt.Fprintf(out, "  want: %s%s%s\n", ui.ColorGreen(), want, ui.ColorReset())
	fmt.Fprintf(out, "  got:  %s%s%s\n", ui.ColorRed(), got, ui.ColorReset())
}

func displayDuration(r orchestration.VectorResult) string {
	if r.Duration == 0 {
		return "-"
	}
	return FormatExecutionDuration(r.Duration)
}

func status(r orchestration.VectorResult) string {
	switch {
	case r.Passed():
		return ui.ColorGreen() + "✅ Pass" + ui.ColorReset()
	case r.Err != nil:
		return fmt.Sprintf("%s❌ Error (%v)%s", ui.ColorRed(), r.Err, ui.ColorReset())
	default:
		return ui.ColorRed() + "❌ Mismatch" + ui.ColorReset()
	}
}

// padRight returns s followed by length spaces.
func padRight(s string, length int) string {
	if length <= 0 {
		return s
	}
	return s + fmt.Sprintf("%*s", length, "")
}
