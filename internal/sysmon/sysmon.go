// Package sysmon samples system-wide CPU and memory usage while a
// verification batch runs.
package sysmon

import (
	"fmt"
	"sync"
	"time"

	"github.com/shirou/gopsutil/v4/cpu"
	"github.com/shirou/gopsutil/v4/mem"
)

// Stats holds a snapshot of system-wide resource usage.
type Stats struct {
	CPUPercent float64 // 0.0 .. 100.0
	MemPercent float64 // 0.0 .. 100.0
}

func (s Stats) String() string {
	return fmt.Sprintf("CPU %.1f%%, memory %.1f%%", s.CPUPercent, s.MemPercent)
}

// Sample collects a single system-wide CPU and memory snapshot.
// CPU uses interval=0 (delta since last call). Returns zero values on error.
func Sample() Stats {
	var s Stats
	if pcts, err := cpu.Percent(0, false); err == nil && len(pcts) > 0 {
		s.CPUPercent = pcts[0]
	}
	if vmem, err := mem.VirtualMemory(); err == nil && vmem != nil {
		s.MemPercent = vmem.UsedPercent
	}
	return s
}

// Monitor samples periodically in the background and keeps the peak of
// each reading.
type Monitor struct {
	mu      sync.Mutex
	peak    Stats
	samples int

	stop chan struct{}
	done chan struct{}
}

// Start begins sampling every interval. The first sample is taken
// immediately. Call Stop to end sampling.
func Start(interval time.Duration) *Monitor {
	m := &Monitor{stop: make(chan struct{}), done: make(chan struct{})}
	m.record(Sample())
	go m.loop(interval)
	return m
}

func (m *Monitor) loop(interval time.Duration) {
	defer close(m.done)
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-m.stop:
			return
		case <-ticker.C:
			m.record(Sample())
		}
	}
}

func (m *Monitor) record(s Stats) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.peak.CPUPercent = max(m.peak.CPUPercent, s.CPUPercent)
	m.peak.MemPercent = max(m.peak.MemPercent, s.MemPercent)
	m.samples++
}

// Stop takes a final sample, ends sampling and returns the peaks with the
// number of samples taken. It must be called once.
func (m *Monitor) Stop() (peak Stats, samples int) {
	close(m.stop)
	<-m.done
	m.record(Sample())
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.peak, m.samples
}
