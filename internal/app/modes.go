package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/agbru/bigcalc/internal/cli"
	apperrors "github.com/agbru/bigcalc/internal/errors"
	"github.com/agbru/bigcalc/internal/eval"
	"github.com/agbru/bigcalc/internal/logging"
	"github.com/agbru/bigcalc/internal/metrics"
	"github.com/agbru/bigcalc/internal/orchestration"
	"github.com/agbru/bigcalc/internal/sysmon"
	"github.com/agbru/bigcalc/internal/vectors"
)

// sysmonInterval is the system sampling period of verbose verification.
const sysmonInterval = 250 * time.Millisecond

// runVerify verifies the built-in vectors, or the vectors file when one is
// configured, and reports the batch.
func (a *Application) runVerify(ctx context.Context, out io.Writer) int {
	vs := vectors.Builtin()
	if a.Config.VectorsFile != "" {
		loaded, err := vectors.Load(a.Config.VectorsFile)
		if err != nil {
			a.Logger.Error("failed to load vectors", err, logging.String("file", a.Config.VectorsFile))
			return ReportError(a.ErrWriter, apperrors.NewConfigError("%v", err))
		}
		vs = loaded
	}

	if !a.Config.Quiet {
		cli.PrintExecutionConfig(a.Config, len(vs), out)
	}

	var reporter orchestration.ProgressReporter = cli.CLIProgressReporter{}
	progressOut := out
	if a.Config.Quiet {
		reporter = orchestration.NullProgressReporter{}
		progressOut = io.Discard
	}

	collector := metrics.NewMemoryCollector()
	before := collector.Snapshot()
	var monitor *sysmon.Monitor
	if a.Config.Verbose {
		monitor = sysmon.Start(sysmonInterval)
	}
	start := time.Now()

	results := orchestration.ExecuteVectors(ctx, eval.New(a.Config.KaratsubaThreshold), vs, orchestration.Options{
		Workers: a.Config.Workers,
		Metrics: a.Metrics,
		Logger:  a.Logger,
	}, reporter, progressOut)

	elapsed := time.Since(start)
	presentOut := out
	if a.Config.Quiet {
		presentOut = io.Discard
	}
	code := orchestration.AnalyzeResults(results, cli.CLIResultPresenter{Verbose: a.Config.Verbose}, presentOut)

	a.Logger.Debug("verification finished",
		logging.Int("vectors", len(vs)),
		logging.Duration("elapsed", elapsed),
		logging.Int("exit_code", code))
	if monitor != nil {
		peak, samples := monitor.Stop()
		a.Logger.Debug("system usage", logging.Stringer("peak", peak), logging.Int("samples", samples))
		if !a.Config.Quiet {
			cli.DisplayMemoryStats(collector.Snapshot().Since(before), out)
			cli.DisplaySystemStats(peak, out)
		}
	}
	if a.Config.Quiet && code != apperrors.ExitSuccess {
		fmt.Fprintf(a.ErrWriter, "verification failed (exit code %d)\n", code)
	}
	return code
}

// runExpr evaluates the configured expression. The evaluation itself cannot
// be interrupted; on timeout or signal the result is abandoned.
func (a *Application) runExpr(ctx context.Context, out io.Writer) int {
	ev := eval.New(a.Config.KaratsubaThreshold)

	type outcome struct {
		res eval.Result
		err error
		d   time.Duration
	}
	done := make(chan outcome, 1)
	go func() {
		start := time.Now()
		res, err := ev.Eval(a.Config.Expr)
		done <- outcome{res, err, time.Since(start)}
	}()

	select {
	case <-ctx.Done():
		err := ctx.Err()
		if errors.Is(err, context.DeadlineExceeded) {
			err = apperrors.TimeoutError{Operation: a.Config.Expr, Limit: a.Config.Timeout}
		}
		return ReportError(a.ErrWriter, err)
	case o := <-done:
		op := o.res.Op
		if op == "" {
			op = "invalid"
		}
		a.Metrics.ObserveOperation(op, o.d, o.err)
		if o.err != nil {
			a.Logger.Debug("evaluation failed", logging.String("expr", a.Config.Expr), logging.Err(o.err))
			return ReportError(a.ErrWriter, o.err)
		}
		cli.DisplayResult(out, o.res, o.d, cli.OutputConfig{
			Format:  a.Config.Output,
			Quiet:   a.Config.Quiet,
			Verbose: a.Config.Verbose,
		})
		return apperrors.ExitSuccess
	}
}

// runREPL starts the interactive session.
func (a *Application) runREPL(ctx context.Context, out io.Writer) int {
	repl := cli.NewREPL(cli.REPLConfig{
		Threshold: a.Config.KaratsubaThreshold,
		Format:    a.Config.Output,
		Verbose:   a.Config.Verbose,
		Metrics:   a.Metrics,
		Logger:    a.Logger,
	})
	repl.SetInput(a.In)
	repl.SetOutput(out)
	repl.Start(ctx)
	return apperrors.ExitSuccess
}
