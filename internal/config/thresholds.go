package config

import "runtime"

// Threshold resolution chain (highest priority first):
//   1. CLI flags (--karatsuba-threshold, --workers)
//   2. Environment variables (BIGCALC_KARATSUBA_THRESHOLD, BIGCALC_WORKERS)
//   3. Host estimation (this file)

// ApplyAdaptiveThresholds fills in the Karatsuba threshold and the worker
// count when they are left at their zero default. User-specified values are
// preserved.
func ApplyAdaptiveThresholds(cfg AppConfig) AppConfig {
	if cfg.KaratsubaThreshold == 0 {
		cfg.KaratsubaThreshold = EstimateKaratsubaThreshold()
	}
	if cfg.Workers == 0 {
		cfg.Workers = EstimateWorkers()
	}
	return cfg
}

// EstimateKaratsubaThreshold returns the operand size in limbs below which
// the schoolbook method is expected to beat another Karatsuba split. The
// split allocates fresh deque-backed values per level, so the crossover sits
// well above a single limb.
func EstimateKaratsubaThreshold() int {
	wordSize := 32 << (^uint(0) >> 63)
	if wordSize == 64 {
		return 32
	}
	return 16 // 64-bit products are emulated on 32-bit hosts
}

// EstimateWorkers returns the default number of vectors verified at once.
func EstimateWorkers() int {
	return max(runtime.NumCPU(), 1)
}
