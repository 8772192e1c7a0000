// This file chooses the thresholds benchmarked by calibration.

package calibration

import (
	"slices"

	"github.com/agbru/bigcalc/internal/config"
)

// candidateThresholds are the Karatsuba thresholds considered, in limbs.
// 1 disables the schoolbook fallback entirely.
var candidateThresholds = []int{1, 4, 8, 16, 24, 32, 48, 64, 96, 128}

// GenerateThresholds returns the thresholds worth benchmarking for operands
// of the given size: every candidate below the operand size, plus the host
// estimate. A threshold at or above the operand size would only measure the
// schoolbook method, which the largest kept candidate approaches anyway.
func GenerateThresholds(operandLimbs int) []int {
	thresholds := make([]int, 0, len(candidateThresholds)+1)
	for _, t := range candidateThresholds {
		if t < operandLimbs {
			thresholds = append(thresholds, t)
		}
	}
	if est := config.EstimateKaratsubaThreshold(); est < operandLimbs {
		thresholds = append(thresholds, est)
	}
	slices.Sort(thresholds)
	return slices.Compact(thresholds)
}
