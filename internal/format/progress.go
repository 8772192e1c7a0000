package format

import (
	"sync"
	"time"
)

// etaSmoothing is the weight of the newest rate sample in the moving average.
const etaSmoothing = 0.3

// ProgressWithETA tracks completion of a fixed number of items and estimates
// the remaining time from an exponentially smoothed completion rate. It is
// safe for concurrent use.
type ProgressWithETA struct {
	mu         sync.Mutex
	total      int
	done       int
	startTime  time.Time
	lastUpdate time.Time
	rate       float64 // items per second
	now        func() time.Time
}

// NewProgressWithETA starts tracking total items.
func NewProgressWithETA(total int) *ProgressWithETA {
	return newProgressWithClock(total, time.Now)
}

func newProgressWithClock(total int, now func() time.Time) *ProgressWithETA {
	t := now()
	return &ProgressWithETA{total: total, startTime: t, lastUpdate: t, now: now}
}

// Update records that done items are complete and returns the completed
// fraction and the estimated remaining time. Counts never move backwards.
func (p *ProgressWithETA) Update(done int) (fraction float64, eta time.Duration) {
	p.mu.Lock()
	defer p.mu.Unlock()

	done = min(done, p.total)
	if done > p.done {
		t := p.now()
		if elapsed := t.Sub(p.lastUpdate).Seconds(); elapsed > 0 {
			sample := float64(done-p.done) / elapsed
			if p.rate == 0 {
				p.rate = sample
			} else {
				p.rate = etaSmoothing*sample + (1-etaSmoothing)*p.rate
			}
		}
		p.done = done
		p.lastUpdate = t
	}
	return p.fraction(), p.eta()
}

// Fraction returns the completed fraction in [0, 1].
func (p *ProgressWithETA) Fraction() float64 {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.fraction()
}

// ETA returns the current estimate of the remaining time, 0 when unknown or
// complete.
func (p *ProgressWithETA) ETA() time.Duration {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.eta()
}

// Elapsed returns the time since tracking started.
func (p *ProgressWithETA) Elapsed() time.Duration {
	return p.now().Sub(p.startTime)
}

func (p *ProgressWithETA) fraction() float64 {
	if p.total <= 0 {
		return 1
	}
	return float64(p.done) / float64(p.total)
}

func (p *ProgressWithETA) eta() time.Duration {
	if p.rate <= 0 || p.done >= p.total {
		return 0
	}
	return time.Duration(float64(p.total-p.done) / p.rate * float64(time.Second))
}
