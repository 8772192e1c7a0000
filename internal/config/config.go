// Package config defines bigcalc's run configuration and parses it from
// command-line flags and BIGCALC_* environment variables.
package config

import (
	"flag"
	"fmt"
	"io"
	"strings"
	"time"

	apperrors "github.com/agbru/bigcalc/internal/errors"
)

// EnvPrefix is the prefix of every environment variable that overrides a flag.
const EnvPrefix = "BIGCALC_"

// Output formats for rendered values.
const (
	OutputHex = "hex"
	OutputBin = "bin"
)

// DefaultCalibrationLimbs is the operand size benchmarked by --calibrate.
const DefaultCalibrationLimbs = 512

// DefaultTimeout bounds a whole run unless overridden.
const DefaultTimeout = 5 * time.Minute

// AppConfig aggregates the parameters of a single bigcalc run.
type AppConfig struct {
	// Expr is the expression to evaluate, taken from the positional arguments.
	Expr string
	// VectorsFile is a TOML file of test vectors to verify.
	VectorsFile string
	// Verify runs the built-in test vectors (or VectorsFile when set).
	Verify bool
	// REPL starts the interactive session.
	REPL bool
	// Calibrate benchmarks multiplication to recommend a Karatsuba threshold.
	Calibrate bool
	// CalibrationLimbs is the operand size used by Calibrate.
	CalibrationLimbs int
	// KaratsubaThreshold is the operand size in limbs at or below which
	// multiplication switches to the schoolbook method. 0 selects a value for
	// the host; 1 recurses down to single limbs.
	KaratsubaThreshold int
	// Workers bounds the number of vectors verified concurrently. 0 selects
	// the number of CPUs.
	Workers int
	// Timeout bounds the whole run.
	Timeout time.Duration
	// Output is the rendering of values, OutputHex or OutputBin.
	Output string
	// Quiet limits output to results and errors.
	Quiet bool
	// Verbose enables debug logging and memory statistics.
	Verbose bool
	// NoColor disables ANSI colors.
	NoColor bool
	// MetricsAddr, when set, serves Prometheus metrics on this address.
	MetricsAddr string
	// ShowVersion prints the version and exits.
	ShowVersion bool
}

// Validate checks the semantic consistency of the configuration.
//
// Returns:
//   - error: A ConfigError or ValidationError describing the first problem found.
func (c AppConfig) Validate() error {
	if c.KaratsubaThreshold < 0 {
		return apperrors.ValidationError{Field: "karatsuba-threshold", Message: "must be non-negative"}
	}
	if c.Workers < 0 {
		return apperrors.ValidationError{Field: "workers", Message: "must be non-negative"}
	}
	if c.Timeout <= 0 {
		return apperrors.ValidationError{Field: "timeout", Message: "must be positive"}
	}
	if c.Output != OutputHex && c.Output != OutputBin {
		return apperrors.ValidationError{Field: "output", Message: fmt.Sprintf("must be %q or %q, got %q", OutputHex, OutputBin, c.Output)}
	}
	modes := 0
	if c.Calibrate && c.CalibrationLimbs < 2 {
		return apperrors.ValidationError{Field: "calibration-limbs", Message: fmt.Sprintf("must be at least 2, got %d", c.CalibrationLimbs)}
	}
	for _, on := range []bool{c.REPL, c.Verify || c.VectorsFile != "", c.Expr != "", c.Calibrate} {
		if on {
			modes++
		}
	}
	if modes > 1 {
		return apperrors.NewConfigError("choose only one of an expression, --verify/--vectors, --repl or --calibrate")
	}
	return nil
}

// ParseConfig parses args into an AppConfig, applies environment overrides
// for flags not given on the command line, and validates the result.
//
// Parameters:
//   - programName: The name used in usage output.
//   - args: The command-line arguments, without the program name.
//   - errorWriter: Where flag errors and usage are written.
//
// Returns:
//   - AppConfig: The parsed configuration.
//   - error: flag.ErrHelp when help was requested, otherwise a ConfigError or
//     ValidationError.
func ParseConfig(programName string, args []string, errorWriter io.Writer) (AppConfig, error) {
	fs := flag.NewFlagSet(programName, flag.ContinueOnError)
	fs.SetOutput(errorWriter)
	fs.Usage = func() {
		fmt.Fprintf(errorWriter, "Usage: %s [flags] [expression]\n\n", programName)
		fmt.Fprintln(errorWriter, "Expressions: \"add 0xFFFFFFFF 0x1\", \"0x10000 * 0x10000\", \"shr 0b1011 2\".")
		fmt.Fprintln(errorWriter, "\nFlags:")
		fs.PrintDefaults()
	}

	config := AppConfig{}
	fs.StringVar(&config.VectorsFile, "vectors", "", "TOML file of test vectors to verify.")
	fs.BoolVar(&config.Verify, "verify", false, "Verify the built-in test vectors.")
	fs.BoolVar(&config.REPL, "repl", false, "Start the interactive session.")
	fs.BoolVar(&config.REPL, "i", false, "Shorthand for --repl.")
	fs.BoolVar(&config.Calibrate, "calibrate", false, "Benchmark multiplication and recommend a Karatsuba threshold.")
	fs.IntVar(&config.CalibrationLimbs, "calibration-limbs", DefaultCalibrationLimbs, "Operand size in limbs used by --calibrate.")
	fs.IntVar(&config.KaratsubaThreshold, "karatsuba-threshold", 0, "Limb count at or below which multiplication uses the schoolbook method (0=auto, 1=always Karatsuba).")
	fs.IntVar(&config.Workers, "workers", 0, "Vectors verified concurrently (0=number of CPUs).")
	fs.DurationVar(&config.Timeout, "timeout", DefaultTimeout, "Maximum duration of the run.")
	fs.StringVar(&config.Output, "output", OutputHex, "Value rendering: hex or bin.")
	fs.StringVar(&config.Output, "o", OutputHex, "Shorthand for --output.")
	fs.BoolVar(&config.Quiet, "quiet", false, "Print results and errors only.")
	fs.BoolVar(&config.Quiet, "q", false, "Shorthand for --quiet.")
	fs.BoolVar(&config.Verbose, "verbose", false, "Enable debug logs and memory statistics.")
	fs.BoolVar(&config.Verbose, "v", false, "Shorthand for --verbose.")
	fs.BoolVar(&config.NoColor, "no-color", false, "Disable colored output.")
	fs.StringVar(&config.MetricsAddr, "metrics-addr", "", "Serve Prometheus metrics on this address (e.g. :9090).")
	fs.BoolVar(&config.ShowVersion, "version", false, "Print the version and exit.")
	fs.BoolVar(&config.ShowVersion, "V", false, "Shorthand for --version.")

	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return AppConfig{}, err
		}
		return AppConfig{}, apperrors.NewConfigError("%v", err)
	}
	config.Expr = strings.TrimSpace(strings.Join(fs.Args(), " "))

	applyEnvOverrides(&config, fs)
	config.Output = strings.ToLower(config.Output)

	if config.ShowVersion {
		return config, nil
	}
	if err := config.Validate(); err != nil {
		return AppConfig{}, err
	}
	return config, nil
}
