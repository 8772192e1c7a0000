// Package calibration benchmarks multiplication at several Karatsuba
// thresholds to recommend one for the host.
package calibration

import (
	"context"
	"fmt"
	"io"
	"math/rand/v2"
	"strings"
	"time"

	"github.com/agbru/bigcalc/internal/bigint"
	apperrors "github.com/agbru/bigcalc/internal/errors"
)

// DefaultRounds is the number of products timed per threshold.
const DefaultRounds = 5

// Options configures a calibration run.
type Options struct {
	// OperandLimbs is the size of both factors.
	OperandLimbs int
	// Rounds is the number of products timed per threshold; the fastest
	// counts.
	Rounds int
	// Thresholds overrides GenerateThresholds(OperandLimbs).
	Thresholds []int
	// Seed makes the operands reproducible.
	Seed uint64
}

// Result is the timing of one threshold. Err is set when its products
// disagreed with the first threshold's.
type Result struct {
	Threshold int
	Duration  time.Duration
	Err       error
}

// Calibrate times Multiplier.Mul for each threshold and returns the results
// with the fastest threshold. The products are checked against each other so
// a miscalibrated configuration cannot be recommended.
func Calibrate(ctx context.Context, opts Options) ([]Result, int, error) {
	if opts.Rounds <= 0 {
		opts.Rounds = DefaultRounds
	}
	thresholds := opts.Thresholds
	if len(thresholds) == 0 {
		thresholds = GenerateThresholds(opts.OperandLimbs)
	}

	r := rand.New(rand.NewPCG(opts.Seed, opts.Seed+1))
	x, y := randomOperand(r, opts.OperandLimbs), randomOperand(r, opts.OperandLimbs)

	results := make([]Result, 0, len(thresholds))
	var reference *bigint.Int
	best, bestDur := 0, time.Duration(0)
	for _, t := range thresholds {
		if err := ctx.Err(); err != nil {
			return results, best, err
		}
		res := Result{Threshold: t}
		m := bigint.Multiplier{Threshold: t}
		for range opts.Rounds {
			start := time.Now()
			z := m.Mul(x, y)
			d := time.Since(start)
			if res.Duration == 0 || d < res.Duration {
				res.Duration = d
			}
			if reference == nil {
				reference = z
			} else if !z.Eq(reference) {
				res.Err = apperrors.EvaluationError{Op: "mul", Cause: fmt.Errorf("threshold %d disagrees with threshold %d", t, thresholds[0])}
				break
			}
		}
		if res.Err == nil && (bestDur == 0 || res.Duration < bestDur) {
			best, bestDur = t, res.Duration
		}
		results = append(results, res)
	}
	return results, best, nil
}

// RunCalibration runs a calibration, prints the summary and returns the exit
// code.
func RunCalibration(ctx context.Context, out io.Writer, opts Options) int {
	fmt.Fprintf(out, "--- Calibration ---\nMultiplying two %d-limb operands, best of %d rounds per threshold.\n",
		opts.OperandLimbs, max(opts.Rounds, 1))
	results, best, err := Calibrate(ctx, opts)
	printCalibrationResults(out, results, best)
	if err != nil {
		fmt.Fprintf(out, "\nCalibration interrupted: %v\n", err)
		return apperrors.ExitCodeFor(err)
	}
	for _, r := range results {
		if r.Err != nil {
			fmt.Fprintf(out, "\nCalibration failed: %v\n", r.Err)
			return apperrors.ExitErrorMismatch
		}
	}
	printRecommendation(out, best)
	return apperrors.ExitSuccess
}

func randomOperand(r *rand.Rand, limbs int) *bigint.Int {
	var sb strings.Builder
	sb.Grow(limbs * 8)
	fmt.Fprintf(&sb, "%08X", r.Uint32()|0x80000000) // top limb nonzero
	for range limbs - 1 {
		fmt.Fprintf(&sb, "%08X", r.Uint32())
	}
	return bigint.MustParseHex(sb.String())
}
