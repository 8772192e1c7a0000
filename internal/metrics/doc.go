// Package metrics exposes bigcalc's operational metrics. Metrics records
// per-operation counters and latencies on a private Prometheus registry, and
// MemoryCollector samples runtime memory for verbose batch summaries.
package metrics
