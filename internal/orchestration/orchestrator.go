package orchestration

import (
	"context"
	"fmt"
	"io"
	"sync"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"

	apperrors "github.com/agbru/bigcalc/internal/errors"
	"github.com/agbru/bigcalc/internal/logging"
	"github.com/agbru/bigcalc/internal/metrics"
	"github.com/agbru/bigcalc/internal/vectors"
)

// tracerName identifies spans emitted by this package.
const tracerName = "github.com/agbru/bigcalc/internal/orchestration"

// Options configures a batch run. The zero value runs one vector at a time
// with the global tracer and no metrics or logging.
type Options struct {
	// Workers bounds the number of vectors evaluated concurrently.
	Workers int
	// Metrics records per-operation counters; nil disables them.
	Metrics *metrics.Metrics
	// Tracer opens one span per vector; nil uses the global provider.
	Tracer trace.Tracer
	// Logger receives per-vector debug entries and failure warnings.
	Logger logging.Logger
}

// ExecuteVectors verifies vs concurrently and returns one result per vector,
// in input order.
//
// Vectors are evaluated on an errgroup bounded by opts.Workers. Evaluation
// errors are recorded in the result rather than aborting the batch. Once ctx
// is done, vectors that have not started are marked with the context error.
//
// Parameters:
//   - ctx: The context for cancellation and deadlines.
//   - ev: The evaluator applying each vector's expression.
//   - vs: The vectors to verify.
//   - opts: Concurrency, metrics, tracing and logging settings.
//   - reporter: The progress reporter (use NullProgressReporter for quiet mode).
//   - out: The writer for progress output.
//
// Returns:
//   - []VectorResult: The outcome of each vector.
func ExecuteVectors(ctx context.Context, ev Evaluator, vs []vectors.Vector, opts Options, reporter ProgressReporter, out io.Writer) []VectorResult {
	tracer := opts.Tracer
	if tracer == nil {
		tracer = otel.Tracer(tracerName)
	}
	logger := opts.Logger
	if logger == nil {
		logger = logging.Nop()
	}

	opts.Metrics.BatchStarted()
	defer opts.Metrics.BatchFinished()

	results := make([]VectorResult, len(vs))
	progressChan := make(chan ProgressUpdate, len(vs))

	var displayWg sync.WaitGroup
	displayWg.Add(1)
	go reporter.DisplayProgress(&displayWg, progressChan, len(vs), out)

	g := new(errgroup.Group)
	g.SetLimit(max(opts.Workers, 1))
	for i, v := range vs {
		g.Go(func() error {
			results[i] = runVector(ctx, tracer, ev, v, opts.Metrics)
			if err := results[i].Err; err != nil && !apperrors.IsContextError(err) {
				logger.Warn("vector failed to evaluate", logging.String("vector", v.Name), logging.Err(err))
			} else {
				logger.Debug("vector verified", logging.String("vector", v.Name),
					logging.Duration("duration", results[i].Duration))
			}
			progressChan <- ProgressUpdate{Name: v.Name, Passed: results[i].Passed()}
			return nil
		})
	}

	_ = g.Wait()
	close(progressChan)
	displayWg.Wait()

	return results
}

func runVector(ctx context.Context, tracer trace.Tracer, ev Evaluator, v vectors.Vector, m *metrics.Metrics) VectorResult {
	want, format := v.Expected()
	res := VectorResult{Vector: v, Want: want, Format: format}
	if err := ctx.Err(); err != nil {
		res.Err = err
		return res
	}

	_, span := tracer.Start(ctx, "vector "+v.Name, trace.WithAttributes(
		attribute.String("bigcalc.vector", v.Name),
		attribute.String("bigcalc.op", v.Op),
	))
	defer span.End()

	start := time.Now()
	out, err := ev.Eval(v.Expr())
	res.Duration = time.Since(start)
	m.ObserveOperation(v.Op, res.Duration, err)

	if err != nil {
		res.Err = err
		span.RecordError(err)
		span.SetStatus(codes.Error, "evaluation failed")
		return res
	}
	res.Got = out.Render(format)
	span.SetAttributes(attribute.Bool("bigcalc.passed", res.Passed()))
	if !res.Passed() {
		span.SetStatus(codes.Error, "result mismatch")
	}
	return res
}

// AnalyzeResults presents the batch and derives the exit code.
//
// Parameters:
//   - results: The outcome of each vector.
//   - presenter: The result presenter for display formatting.
//   - out: The writer for the summary report.
//
// Returns:
//   - int: ExitSuccess when every vector passed, the context-derived code
//     when the batch was cut short, ExitErrorMismatch otherwise.
func AnalyzeResults(results []VectorResult, presenter ResultPresenter, out io.Writer) int {
	presenter.PresentVectorTable(results, out)

	passed := 0
	var ctxErr error
	for _, r := range results {
		switch {
		case r.Passed():
			passed++
		case apperrors.IsContextError(r.Err):
			if ctxErr == nil {
				ctxErr = r.Err
			}
		default:
			presenter.PresentFailure(r, out)
		}
	}

	failed := len(results) - passed
	switch {
	case ctxErr != nil:
		fmt.Fprintf(out, "\nGlobal Status: Interrupted. %d of %d vectors verified before: %v\n", passed, len(results), ctxErr)
		return apperrors.ExitCodeFor(ctxErr)
	case failed > 0:
		fmt.Fprintf(out, "\nGlobal Status: Failure. %d of %d vectors did not match.\n", failed, len(results))
		return apperrors.ExitErrorMismatch
	default:
		fmt.Fprintf(out, "\nGlobal Status: Success. All %d vectors match.\n", len(results))
		return apperrors.ExitSuccess
	}
}
