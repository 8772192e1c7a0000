// Package orchestration verifies batches of test vectors concurrently and
// aggregates their outcomes. It decouples evaluation from presentation via
// the ProgressReporter and ResultPresenter interfaces.
package orchestration
