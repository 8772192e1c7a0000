// Package cli provides the terminal presentation of bigcalc: result and
// progress display for verification batches, and the interactive REPL.
package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"maps"
	"os"
	"regexp"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/agbru/bigcalc/internal/bigint"
	"github.com/agbru/bigcalc/internal/config"
	"github.com/agbru/bigcalc/internal/eval"
	"github.com/agbru/bigcalc/internal/logging"
	"github.com/agbru/bigcalc/internal/metrics"
	"github.com/agbru/bigcalc/internal/ui"
)

// LastResult is the token referring to the most recent value.
const LastResult = "_"

var varName = regexp.MustCompile(`^[A-Za-z][A-Za-z0-9_]*$`)

// REPLConfig holds configuration for the REPL session.
type REPLConfig struct {
	// Threshold is the Karatsuba threshold in limbs.
	Threshold int
	// Format is the initial output format, "hex" or "bin".
	Format string
	// Verbose prints values in full.
	Verbose bool
	// Metrics, when set, records every evaluation.
	Metrics *metrics.Metrics
	// Logger receives evaluation failures at debug level.
	Logger logging.Logger
}

// REPL is an interactive session evaluating one expression per line.
// Values can be stored in variables with set and referred to as $name;
// _ refers to the last value printed.
type REPL struct {
	config REPLConfig
	ev     *eval.Evaluator
	vars   map[string]*bigint.Int
	last   *bigint.Int
	in     io.Reader
	out    io.Writer
}

// NewREPL creates a new REPL instance reading from stdin and writing to
// stdout.
func NewREPL(cfg REPLConfig) *REPL {
	if cfg.Format == "" {
		cfg.Format = config.OutputHex
	}
	if cfg.Logger == nil {
		cfg.Logger = logging.Nop()
	}
	r := &REPL{
		config: cfg,
		ev:     eval.New(cfg.Threshold),
		vars:   make(map[string]*bigint.Int),
		in:     os.Stdin,
		out:    os.Stdout,
	}
	r.ev.Resolve = r.resolve
	return r
}

// SetInput sets a custom input reader (useful for testing).
func (r *REPL) SetInput(in io.Reader) {
	r.in = in
}

// SetOutput sets a custom output writer (useful for testing).
func (r *REPL) SetOutput(out io.Writer) {
	r.out = out
}

// Start runs the session until exit, end of input, or cancellation of ctx.
// Cancellation is observed between lines.
func (r *REPL) Start(ctx context.Context) {
	fmt.Fprintln(r.out, ui.Banner("bigcalc", "Arbitrary-precision integer calculator"))
	fmt.Fprintf(r.out, "Type %shelp%s for commands, %sops%s for operations.\n\n",
		ui.ColorYellow(), ui.ColorReset(), ui.ColorYellow(), ui.ColorReset())

	reader := bufio.NewReader(r.in)
	for ctx.Err() == nil {
		fmt.Fprint(r.out, ui.ColorGreen()+"big> "+ui.ColorReset())

		input, err := reader.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			fmt.Fprintf(r.out, "%sRead error: %v%s\n", ui.ColorRed(), err, ui.ColorReset())
			return
		}
		if line := strings.TrimSpace(input); line != "" {
			if !r.processCommand(line) {
				return
			}
		}
		if errors.Is(err, io.EOF) {
			fmt.Fprintln(r.out, "\nGoodbye!")
			return
		}
	}
}

// processCommand executes one input line. Returns false if the REPL should
// exit.
func (r *REPL) processCommand(input string) bool {
	parts := strings.Fields(input)
	args := parts[1:]

	switch strings.ToLower(parts[0]) {
	case "help", "h", "?":
		r.printHelp()
	case "set":
		r.cmdSet(args)
	case "vars":
		r.cmdVars()
	case "ops":
		r.cmdOps()
	case "hex", "bin":
		if len(args) == 0 {
			r.cmdFormat(strings.ToLower(parts[0]))
			return true
		}
		r.evaluate(input)
	case "threshold":
		r.cmdThreshold(args)
	case "status", "st":
		r.cmdStatus()
	case "exit", "quit", "q":
		fmt.Fprintf(r.out, "%sGoodbye!%s\n", ui.ColorGreen(), ui.ColorReset())
		return false
	default:
		r.evaluate(input)
	}
	return true
}

func (r *REPL) printHelp() {
	fmt.Fprintf(r.out, "%sAvailable commands:%s\n", ui.ColorBold(), ui.ColorReset())
	for _, c := range [][2]string{
		{"<op> <a> [b]", "Evaluate a prefix expression, e.g. mul 0xFFFF 0b101"},
		{"<a> <sym> <b>", "Evaluate an infix expression, e.g. $x << 40"},
		{"set <name> <expr>", "Store a value as $name"},
		{"vars", "List stored values"},
		{"ops", "List operations"},
		{"hex | bin", "Switch the output format"},
		{"threshold <n>", "Set the Karatsuba threshold in limbs (0 = auto)"},
		{"status", "Display the current configuration"},
		{"help", "Display this help"},
		{"exit / quit", "Exit interactive mode"},
	} {
		fmt.Fprintf(r.out, "  %s%-18s%s - %s\n", ui.ColorYellow(), c[0], ui.ColorReset(), c[1])
	}
	fmt.Fprintf(r.out, "Literals are hex by default (0x optional) or binary with 0b. %s%s%s is the last value.\n",
		ui.ColorCyan(), LastResult, ui.ColorReset())
}

// evaluate evaluates expr and prints the result. Values become the new _.
func (r *REPL) evaluate(expr string) {
	res, ok := r.eval(expr)
	if !ok {
		return
	}
	if !res.IsScalar() {
		r.last = res.Value
	}
}

func (r *REPL) eval(expr string) (eval.Result, bool) {
	start := time.Now()
	res, err := r.ev.Eval(expr)
	d := time.Since(start)
	op := res.Op
	if op == "" {
		op = "invalid"
	}
	r.config.Metrics.ObserveOperation(op, d, err)

	if err != nil {
		r.config.Logger.Debug("evaluation failed", logging.String("expr", expr), logging.Err(err))
		fmt.Fprintf(r.out, "%sError: %v%s\n", ui.ColorRed(), err, ui.ColorReset())
		return eval.Result{}, false
	}
	DisplayResult(r.out, res, d, OutputConfig{Format: r.config.Format, Verbose: r.config.Verbose})
	return res, true
}

// cmdSet stores a value. The value is either a single operand token or an
// expression producing a value.
func (r *REPL) cmdSet(args []string) {
	if len(args) < 2 {
		fmt.Fprintf(r.out, "%sUsage: set <name> <expr>%s\n", ui.ColorRed(), ui.ColorReset())
		return
	}
	name := strings.TrimPrefix(args[0], "$")
	if !varName.MatchString(name) {
		fmt.Fprintf(r.out, "%sInvalid variable name: %s%s\n", ui.ColorRed(), args[0], ui.ColorReset())
		return
	}

	var v *bigint.Int
	if len(args) == 2 {
		var err error
		if v, err = r.operand(args[1]); err != nil {
			fmt.Fprintf(r.out, "%sError: %v%s\n", ui.ColorRed(), err, ui.ColorReset())
			return
		}
	} else {
		res, ok := r.eval(strings.Join(args[1:], " "))
		if !ok {
			return
		}
		if res.IsScalar() {
			fmt.Fprintf(r.out, "%s%s produces a number, not a value%s\n", ui.ColorRed(), res.Op, ui.ColorReset())
			return
		}
		v = res.Value
	}
	r.vars[name] = v
	r.last = v
	fmt.Fprintf(r.out, "%s$%s%s = %s%s%s\n", ui.ColorCyan(), name, ui.ColorReset(),
		ui.ColorGreen(), FormatValue(eval.Result{Value: v}, r.outputConfig()), ui.ColorReset())
}

func (r *REPL) operand(tok string) (*bigint.Int, error) {
	if v, ok := r.resolve(tok); ok {
		return v, nil
	}
	if eval.IsReference(tok) {
		return nil, fmt.Errorf("%w %s", eval.ErrUndefinedVariable, tok)
	}
	return eval.ParseValue(tok)
}

// resolve implements eval.Resolver over the session's variables.
func (r *REPL) resolve(tok string) (*bigint.Int, bool) {
	if tok == LastResult {
		return r.last, r.last != nil
	}
	name, ok := strings.CutPrefix(tok, "$")
	if !ok {
		return nil, false
	}
	v, ok := r.vars[name]
	return v, ok
}

func (r *REPL) cmdVars() {
	if len(r.vars) == 0 {
		fmt.Fprintln(r.out, "No variables. Use set <name> <expr>.")
		return
	}
	cfg := r.outputConfig()
	for _, name := range slices.Sorted(maps.Keys(r.vars)) {
		v := r.vars[name]
		fmt.Fprintf(r.out, "  %s$%-10s%s %s (%d limbs)\n", ui.ColorCyan(), name, ui.ColorReset(),
			FormatValue(eval.Result{Value: v}, cfg), v.Len())
	}
}

func (r *REPL) cmdOps() {
	fmt.Fprintf(r.out, "\n%sOperations:%s\n", ui.ColorBold(), ui.ColorReset())
	for _, op := range r.ev.Registry.List() {
		sym := ""
		if op.Symbol != "" {
			sym = "(" + op.Symbol + ")"
		}
		fmt.Fprintf(r.out, "  %s%-5s%s %-4s %s\n", ui.ColorYellow(), op.Name, ui.ColorReset(), sym, op.Usage)
	}
	fmt.Fprintln(r.out)
}

func (r *REPL) cmdFormat(format string) {
	r.config.Format = format
	fmt.Fprintf(r.out, "Output format: %s%s%s\n", ui.ColorGreen(), format, ui.ColorReset())
}

func (r *REPL) cmdThreshold(args []string) {
	if len(args) != 1 {
		fmt.Fprintf(r.out, "%sUsage: threshold <n>%s\n", ui.ColorRed(), ui.ColorReset())
		return
	}
	n, err := strconv.Atoi(args[0])
	if err != nil || n < 0 {
		fmt.Fprintf(r.out, "%sInvalid threshold: %s%s\n", ui.ColorRed(), args[0], ui.ColorReset())
		return
	}
	if n == 0 {
		n = config.EstimateKaratsubaThreshold()
	}
	r.config.Threshold = n
	r.ev.Multiplier = bigint.Multiplier{Threshold: n}
	fmt.Fprintf(r.out, "Karatsuba threshold: %s%d%s limbs\n", ui.ColorGreen(), n, ui.ColorReset())
}

func (r *REPL) cmdStatus() {
	fmt.Fprintf(r.out, "\n%sCurrent configuration:%s\n", ui.ColorBold(), ui.ColorReset())
	fmt.Fprintf(r.out, "  Output format:  %s%s%s\n", ui.ColorCyan(), r.config.Format, ui.ColorReset())
	fmt.Fprintf(r.out, "  Threshold:      %s%d%s limbs\n", ui.ColorCyan(), r.config.Threshold, ui.ColorReset())
	fmt.Fprintf(r.out, "  Variables:      %s%d%s\n", ui.ColorCyan(), len(r.vars), ui.ColorReset())
	fmt.Fprintln(r.out)
}

func (r *REPL) outputConfig() OutputConfig {
	return OutputConfig{Format: r.config.Format, Verbose: r.config.Verbose}
}
