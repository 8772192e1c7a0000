// Package app wires configuration, evaluation and presentation into the
// bigcalc command.
package app

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/agbru/bigcalc/internal/calibration"
	"github.com/agbru/bigcalc/internal/config"
	apperrors "github.com/agbru/bigcalc/internal/errors"
	"github.com/agbru/bigcalc/internal/logging"
	"github.com/agbru/bigcalc/internal/metrics"
	"github.com/agbru/bigcalc/internal/server"
	"github.com/agbru/bigcalc/internal/ui"
)

// Application represents the bigcalc application instance.
type Application struct {
	Config    config.AppConfig
	ErrWriter io.Writer
	// In is the REPL input, os.Stdin unless replaced.
	In      io.Reader
	Logger  logging.Logger
	Metrics *metrics.Metrics
}

// AppOption configures an Application during construction.
type AppOption func(*Application)

// WithLogger replaces the console logger built from the configuration.
func WithLogger(l logging.Logger) AppOption {
	return func(a *Application) { a.Logger = l }
}

// WithMetrics records operations into m instead of a fresh registry.
func WithMetrics(m *metrics.Metrics) AppOption {
	return func(a *Application) { a.Metrics = m }
}

// WithInput sets the reader the REPL consumes.
func WithInput(r io.Reader) AppOption {
	return func(a *Application) { a.In = r }
}

// New creates a new Application by parsing command-line arguments.
// args[0] is the program name.
func New(args []string, errWriter io.Writer, opts ...AppOption) (*Application, error) {
	programName := "bigcalc"
	var cmdArgs []string
	if len(args) > 0 {
		programName = args[0]
		cmdArgs = args[1:]
	}

	cfg, err := config.ParseConfig(programName, cmdArgs, errWriter)
	if err != nil {
		return nil, err
	}

	app := &Application{
		Config:    config.ApplyAdaptiveThresholds(cfg),
		ErrWriter: errWriter,
		In:        os.Stdin,
	}
	for _, opt := range opts {
		opt(app)
	}
	if app.Logger == nil {
		app.Logger = logging.NewConsoleLogger(errWriter, "bigcalc", cfg.Verbose, cfg.Quiet)
	}
	if app.Metrics == nil {
		app.Metrics = metrics.NewMetrics()
	}
	return app, nil
}

// Run executes the configured mode and returns the process exit code.
//
// The run is bounded by the configured timeout and interrupted by SIGINT or
// SIGTERM. The REPL is exempt from the timeout.
func (a *Application) Run(ctx context.Context, out io.Writer) int {
	if a.Config.ShowVersion {
		PrintVersion(out)
		return apperrors.ExitSuccess
	}
	ui.InitTheme(a.Config.NoColor)

	ctx, stopSignals := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stopSignals()

	if a.Config.MetricsAddr != "" {
		stop, err := a.startMetricsServer(ctx)
		if err != nil {
			a.Logger.Error("failed to start metrics server", err, logging.String("addr", a.Config.MetricsAddr))
			return apperrors.ExitErrorConfig
		}
		defer stop()
	}

	switch {
	case a.Config.REPL:
		return a.runREPL(ctx, out)
	case a.Config.Calibrate:
		ctx, cancel := context.WithTimeout(ctx, a.Config.Timeout)
		defer cancel()
		return calibration.RunCalibration(ctx, out, calibration.Options{OperandLimbs: a.Config.CalibrationLimbs})
	case a.Config.Expr != "":
		ctx, cancel := context.WithTimeout(ctx, a.Config.Timeout)
		defer cancel()
		return a.runExpr(ctx, out)
	default:
		ctx, cancel := context.WithTimeout(ctx, a.Config.Timeout)
		defer cancel()
		return a.runVerify(ctx, out)
	}
}

// startMetricsServer serves /metrics until the returned stop function is
// called. It returns once the listener is bound.
func (a *Application) startMetricsServer(ctx context.Context) (stop func(), err error) {
	ctx, cancel := context.WithCancel(ctx)
	srv := server.New(a.Config.MetricsAddr, a.Metrics, a.Logger)
	ready := make(chan string, 1)
	done := make(chan error, 1)
	go func() { done <- srv.ListenAndServe(ctx, ready) }()

	select {
	case <-ready:
		return func() {
			cancel()
			if err := <-done; err != nil {
				a.Logger.Warn("metrics server stopped with error", logging.Err(err))
			}
		}, nil
	case err := <-done:
		cancel()
		return nil, apperrors.WrapError(err, "metrics server on %s", a.Config.MetricsAddr)
	}
}

// IsHelpError checks if the error is a help flag error (--help was used).
func IsHelpError(err error) bool {
	return errors.Is(err, flag.ErrHelp)
}

// ReportError prints err to w and returns its exit code.
func ReportError(w io.Writer, err error) int {
	fmt.Fprintf(w, "Error: %v\n", err)
	return apperrors.ExitCodeFor(err)
}
