package orchestration

import (
	"io"
	"sync"
	"time"

	"github.com/agbru/bigcalc/internal/eval"
	"github.com/agbru/bigcalc/internal/vectors"
)

//go:generate mockgen -destination=mocks/mock_orchestration.go -package=mocks . Evaluator,ResultPresenter

// Evaluator evaluates a single expression. *eval.Evaluator satisfies it.
type Evaluator interface {
	Eval(expr string) (eval.Result, error)
}

// VectorResult is the outcome of verifying one vector.
type VectorResult struct {
	Vector vectors.Vector
	// Got is the rendered result, empty when Err is set.
	Got string
	// Want is the canonical expectation Got is compared against.
	Want string
	// Format is the rendering used for Got and Want.
	Format   string
	Duration time.Duration
	// Err is set when the expression could not be evaluated or the batch
	// was cancelled before the vector ran.
	Err error
}

// Passed reports whether the vector evaluated to its expectation.
func (r VectorResult) Passed() bool {
	return r.Err == nil && r.Got == r.Want
}

// ProgressUpdate is sent once per finished vector.
type ProgressUpdate struct {
	Name   string
	Passed bool
}

// ProgressReporter displays batch progress.
type ProgressReporter interface {
	// DisplayProgress consumes updates until progressChan is closed, then
	// calls wg.Done.
	//
	// Parameters:
	//   - wg: A WaitGroup to signal when display is complete.
	//   - progressChan: Channel receiving one update per finished vector.
	//   - total: The number of vectors in the batch.
	//   - out: The writer for progress output.
	DisplayProgress(wg *sync.WaitGroup, progressChan <-chan ProgressUpdate, total int, out io.Writer)
}

// ProgressReporterFunc adapts a function to ProgressReporter.
type ProgressReporterFunc func(wg *sync.WaitGroup, progressChan <-chan ProgressUpdate, total int, out io.Writer)

// DisplayProgress calls the underlying function.
func (f ProgressReporterFunc) DisplayProgress(wg *sync.WaitGroup, progressChan <-chan ProgressUpdate, total int, out io.Writer) {
	f(wg, progressChan, total, out)
}

// NullProgressReporter drains the progress channel without displaying
// anything. Used in quiet mode and tests.
type NullProgressReporter struct{}

// DisplayProgress drains the channel without output.
func (NullProgressReporter) DisplayProgress(wg *sync.WaitGroup, progressChan <-chan ProgressUpdate, _ int, _ io.Writer) {
	defer wg.Done()
	DrainChannel(progressChan)
}

// ResultPresenter presents batch outcomes.
type ResultPresenter interface {
	// PresentVectorTable displays one row per vector.
	PresentVectorTable(results []VectorResult, out io.Writer)
	// PresentFailure details a vector that did not pass.
	PresentFailure(result VectorResult, out io.Writer)
}
