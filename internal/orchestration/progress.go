package orchestration

import (
	"time"

	"github.com/agbru/bigcalc/internal/format"
)

// ProgressAggregator turns the per-vector update stream into batch totals
// with an ETA. The CLI reporter uses it to drive its spinner suffix.
type ProgressAggregator struct {
	state  *format.ProgressWithETA
	total  int
	done   int
	failed int
}

// NewProgressAggregator creates an aggregator for total vectors. Returns nil
// if total <= 0.
func NewProgressAggregator(total int) *ProgressAggregator {
	if total <= 0 {
		return nil
	}
	return &ProgressAggregator{state: format.NewProgressWithETA(total), total: total}
}

// AggregatedProgress is the batch state after an update.
type AggregatedProgress struct {
	Done     int
	Failed   int
	Total    int
	Fraction float64
	ETA      time.Duration
}

// Update folds one finished vector into the totals.
func (a *ProgressAggregator) Update(update ProgressUpdate) AggregatedProgress {
	a.done++
	if !update.Passed {
		a.failed++
	}
	frac, eta := a.state.Update(a.done)
	return AggregatedProgress{Done: a.done, Failed: a.failed, Total: a.total, Fraction: frac, ETA: eta}
}

// Total returns the number of vectors being tracked.
func (a *ProgressAggregator) Total() int { return a.total }

// DrainChannel reads all updates from the channel without processing.
func DrainChannel(progressChan <-chan ProgressUpdate) {
	for range progressChan {
	}
}
