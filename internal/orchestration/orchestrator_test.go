package orchestration

import (
	"context"
	"errors"
	"io"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"

	"github.com/agbru/bigcalc/internal/bigint"
	apperrors "github.com/agbru/bigcalc/internal/errors"
	"github.com/agbru/bigcalc/internal/eval"
	"github.com/agbru/bigcalc/internal/metrics"
	"github.com/agbru/bigcalc/internal/vectors"
)

// stubPresenter records what it was asked to present.
type stubPresenter struct {
	mu       sync.Mutex
	rows     int
	failures []string
}

func (p *stubPresenter) PresentVectorTable(results []VectorResult, _ io.Writer) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.rows = len(results)
}

func (p *stubPresenter) PresentFailure(r VectorResult, _ io.Writer) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.failures = append(p.failures, r.Vector.Name)
}

// recordingTracer counts the spans it starts.
type recordingTracer struct {
	noop.Tracer
	spans atomic.Int32
}

func (r *recordingTracer) Start(ctx context.Context, name string, opts ...trace.SpanStartOption) (context.Context, trace.Span) {
	r.spans.Add(1)
	return r.Tracer.Start(ctx, name, opts...)
}

// evalFunc adapts a function to Evaluator.
type evalFunc func(expr string) (eval.Result, error)

func (f evalFunc) Eval(expr string) (eval.Result, error) { return f(expr) }

func TestExecuteVectorsBuiltin(t *testing.T) {
	t.Parallel()
	vs := vectors.Builtin()
	tracer := &recordingTracer{}
	m := metrics.NewMetrics()

	results := ExecuteVectors(context.Background(), eval.New(0), vs,
		Options{Workers: 4, Metrics: m, Tracer: tracer}, NullProgressReporter{}, io.Discard)

	if len(results) != len(vs) {
		t.Fatalf("got %d results, want %d", len(results), len(vs))
	}
	for i, r := range results {
		if r.Vector.Name != vs[i].Name {
			t.Errorf("result %d is %q, want input order %q", i, r.Vector.Name, vs[i].Name)
		}
		if !r.Passed() {
			t.Errorf("vector %s: got %q, want %q (err %v)", r.Vector.Name, r.Got, r.Want, r.Err)
		}
	}
	if got := int(tracer.spans.Load()); got != len(vs) {
		t.Errorf("started %d spans, want %d", got, len(vs))
	}
}

func TestExecuteVectorsThresholds(t *testing.T) {
	t.Parallel()
	for _, threshold := range []int{1, 2, 32} {
		results := ExecuteVectors(context.Background(), eval.New(threshold), vectors.Builtin(),
			Options{Workers: 2}, NullProgressReporter{}, io.Discard)
		for _, r := range results {
			if !r.Passed() {
				t.Errorf("threshold %d: vector %s failed", threshold, r.Vector.Name)
			}
		}
	}
}

func TestExecuteVectorsMismatchAndError(t *testing.T) {
	t.Parallel()
	vs := []vectors.Vector{
		{Name: "ok", Op: "add", A: "1", B: "1", Want: "2"},
		{Name: "wrong", Op: "add", A: "1", B: "1", Want: "3"},
		{Name: "underflow", Op: "sub", A: "1", B: "2", Want: "0"},
	}
	results := ExecuteVectors(context.Background(), eval.New(0), vs, Options{}, NullProgressReporter{}, io.Discard)

	if !results[0].Passed() {
		t.Errorf("ok should pass: %+v", results[0])
	}
	if results[1].Passed() || results[1].Err != nil || results[1].Got != "00000002" {
		t.Errorf("wrong should be a mismatch: %+v", results[1])
	}
	if !errors.Is(results[2].Err, bigint.ErrUnderflow) {
		t.Errorf("underflow should carry ErrUnderflow, got %v", results[2].Err)
	}
}

func TestExecuteVectorsCancelled(t *testing.T) {
	t.Parallel()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var calls atomic.Int32
	ev := evalFunc(func(string) (eval.Result, error) {
		calls.Add(1)
		return eval.Result{}, nil
	})
	results := ExecuteVectors(ctx, ev, vectors.Builtin(), Options{Workers: 3}, NullProgressReporter{}, io.Discard)

	if calls.Load() != 0 {
		t.Errorf("no vector should be evaluated after cancellation, got %d", calls.Load())
	}
	for _, r := range results {
		if !errors.Is(r.Err, context.Canceled) {
			t.Fatalf("vector %s: err = %v, want context.Canceled", r.Vector.Name, r.Err)
		}
	}
}

func TestExecuteVectorsRespectsWorkerLimit(t *testing.T) {
	t.Parallel()
	var active, peak atomic.Int32
	ev := evalFunc(func(string) (eval.Result, error) {
		n := active.Add(1)
		for {
			p := peak.Load()
			if n <= p || peak.CompareAndSwap(p, n) {
				break
			}
		}
		time.Sleep(5 * time.Millisecond)
		active.Add(-1)
		return eval.Result{Value: bigint.New()}, nil
	})

	vs := make([]vectors.Vector, 12)
	for i := range vs {
		vs[i] = vectors.Vector{Name: string(rune('a' + i)), Op: "add", A: "0", B: "0", Want: "0"}
	}
	ExecuteVectors(context.Background(), ev, vs, Options{Workers: 3}, NullProgressReporter{}, io.Discard)

	if got := peak.Load(); got > 3 {
		t.Errorf("peak concurrency %d exceeds the worker limit", got)
	}
}

func TestExecuteVectorsReportsProgress(t *testing.T) {
	t.Parallel()
	var updates []ProgressUpdate
	reporter := ProgressReporterFunc(func(wg *sync.WaitGroup, ch <-chan ProgressUpdate, total int, _ io.Writer) {
		defer wg.Done()
		if total != 2 {
			t.Errorf("total = %d, want 2", total)
		}
		for u := range ch {
			updates = append(updates, u)
		}
	})
	vs := []vectors.Vector{
		{Name: "pass", Op: "xor", A: "F", B: "F", Want: "0"},
		{Name: "fail", Op: "xor", A: "F", B: "0", Want: "0"},
	}
	ExecuteVectors(context.Background(), eval.New(0), vs, Options{Workers: 1}, reporter, io.Discard)

	if len(updates) != 2 {
		t.Fatalf("got %d updates, want 2", len(updates))
	}
	passed := map[string]bool{}
	for _, u := range updates {
		passed[u.Name] = u.Passed
	}
	if !passed["pass"] || passed["fail"] {
		t.Errorf("unexpected progress %+v", updates)
	}
}

func TestAnalyzeResults(t *testing.T) {
	t.Parallel()
	ok := VectorResult{Vector: vectors.Vector{Name: "a"}, Got: "1", Want: "1"}
	bad := VectorResult{Vector: vectors.Vector{Name: "b"}, Got: "1", Want: "2"}
	failed := VectorResult{Vector: vectors.Vector{Name: "c"}, Err: errors.New("boom")}
	cancelled := VectorResult{Vector: vectors.Vector{Name: "d"}, Err: context.Canceled}
	timedOut := VectorResult{Vector: vectors.Vector{Name: "e"}, Err: context.DeadlineExceeded}

	tests := []struct {
		name         string
		results      []VectorResult
		wantStatus   int
		wantFailures []string
		wantText     string
	}{
		{"all pass", []VectorResult{ok, ok}, apperrors.ExitSuccess, nil, "Success"},
		{"mismatch", []VectorResult{ok, bad}, apperrors.ExitErrorMismatch, []string{"b"}, "1 of 2"},
		{"eval error", []VectorResult{failed, ok}, apperrors.ExitErrorMismatch, []string{"c"}, "Failure"},
		{"cancelled", []VectorResult{ok, cancelled}, apperrors.ExitErrorCanceled, nil, "Interrupted"},
		{"timed out", []VectorResult{timedOut, bad}, apperrors.ExitErrorTimeout, []string{"b"}, "Interrupted"},
		{"empty", nil, apperrors.ExitSuccess, nil, "All 0 vectors"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			p := &stubPresenter{}
			var out strings.Builder
			status := AnalyzeResults(tt.results, p, &out)
			if status != tt.wantStatus {
				t.Errorf("status = %d, want %d", status, tt.wantStatus)
			}
			if p.rows != len(tt.results) {
				t.Errorf("table rows = %d, want %d", p.rows, len(tt.results))
			}
			if strings.Join(p.failures, ",") != strings.Join(tt.wantFailures, ",") {
				t.Errorf("failures = %v, want %v", p.failures, tt.wantFailures)
			}
			if !strings.Contains(out.String(), tt.wantText) {
				t.Errorf("summary %q should contain %q", out.String(), tt.wantText)
			}
		})
	}
}
