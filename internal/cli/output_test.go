package cli

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/agbru/bigcalc/internal/bigint"
	"github.com/agbru/bigcalc/internal/eval"
	"github.com/agbru/bigcalc/internal/metrics"
	"github.com/agbru/bigcalc/internal/orchestration"
	"github.com/agbru/bigcalc/internal/sysmon"
	"github.com/agbru/bigcalc/internal/ui"
	"github.com/agbru/bigcalc/internal/vectors"
)

func init() {
	ui.SetCurrentTheme(ui.NoColorTheme)
}

func TestTruncateValue(t *testing.T) {
	t.Parallel()
	short := strings.Repeat("A", TruncationLimit)
	if got, truncated := TruncateValue(short, "hex"); truncated || got != short {
		t.Error("values at the limit should not be truncated")
	}

	long := strings.Repeat("0", 60) + strings.Repeat("F", 60)
	got, truncated := TruncateValue(long, "hex")
	if !truncated {
		t.Fatal("expected truncation")
	}
	if want := strings.Repeat("0", HexDisplayEdges) + "..." + strings.Repeat("F", HexDisplayEdges); got != want {
		t.Errorf("TruncateValue = %q, want %q", got, want)
	}

	bin := strings.Repeat("1", 200)
	got, _ = TruncateValue(bin, "bin")
	if len(got) != 2*BinDisplayEdges+3 {
		t.Errorf("binary truncation kept %d characters", len(got))
	}
}

func TestDisplayResult(t *testing.T) {
	t.Parallel()
	big := bigint.FromUint32(1).Lsh(32 * 20) // 21 limbs, 168 hex digits

	tests := []struct {
		name        string
		res         eval.Result
		cfg         OutputConfig
		contains    []string
		notContains []string
	}{
		{
			name:     "hex value",
			res:      eval.Result{Op: "add", Value: bigint.MustParseHex("1F")},
			cfg:      OutputConfig{Format: "hex"},
			contains: []string{"0000001F", "add: 1 limbs, 5 bits"},
		},
		{
			name:     "binary value",
			res:      eval.Result{Op: "shl", Value: bigint.FromUint32(2)},
			cfg:      OutputConfig{Format: "bin"},
			contains: []string{"00000000000000000000000000000010"},
		},
		{
			name:     "forced format",
			res:      eval.Result{Op: "bin", Value: bigint.FromUint32(1), Format: "bin"},
			cfg:      OutputConfig{Format: "hex"},
			contains: []string{"00000000000000000000000000000001"},
		},
		{
			name:        "scalar",
			res:         eval.Result{Op: "mod", Scalar: "16"},
			cfg:         OutputConfig{Format: "hex"},
			contains:    []string{"16\n", "mod in"},
			notContains: []string{"limbs"},
		},
		{
			name:     "truncated",
			res:      eval.Result{Op: "shl", Value: big},
			cfg:      OutputConfig{Format: "hex"},
			contains: []string{"...", "(truncated)", "Tip: use -v"},
		},
		{
			name:        "verbose",
			res:         eval.Result{Op: "shl", Value: big},
			cfg:         OutputConfig{Format: "hex", Verbose: true},
			contains:    []string{big.Hex()},
			notContains: []string{"truncated"},
		},
		{
			name:        "quiet",
			res:         eval.Result{Op: "shl", Value: big},
			cfg:         OutputConfig{Format: "hex", Quiet: true},
			contains:    []string{big.Hex() + "\n"},
			notContains: []string{"limbs", "truncated"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			var buf bytes.Buffer
			DisplayResult(&buf, tt.res, time.Millisecond, tt.cfg)
			out := buf.String()
			for _, s := range tt.contains {
				if !strings.Contains(out, s) {
					t.Errorf("output should contain %q, got:\n%s", s, out)
				}
			}
			for _, s := range tt.notContains {
				if strings.Contains(out, s) {
					t.Errorf("output should not contain %q, got:\n%s", s, out)
				}
			}
		})
	}
}

func TestPresentVectorTable(t *testing.T) {
	t.Parallel()
	results := []orchestration.VectorResult{
		{Vector: vectors.Vector{Name: "xor", Op: "xor"}, Got: "1", Want: "1", Duration: time.Millisecond},
		{Vector: vectors.Vector{Name: "add-wrong", Op: "add"}, Got: "1", Want: "2"},
		{Vector: vectors.Vector{Name: "sub", Op: "sub"}, Err: bigint.ErrUnderflow},
	}
	var buf bytes.Buffer
	CLIResultPresenter{}.PresentVectorTable(results, &buf)
	out := buf.String()

	for _, want := range []string{"Verification Summary", "Vector", "Duration", "✅ Pass", "❌ Mismatch", "❌ Error", "1ms"} {
		if !strings.Contains(out, want) {
			t.Errorf("table should contain %q:\n%s", want, out)
		}
	}
	lines := strings.Split(strings.TrimSpace(out), "\n")
	if len(lines) != 5 {
		t.Fatalf("expected title, header and 3 rows, got %d lines", len(lines))
	}
	// Columns are aligned on the longest vector name.
	if strings.Index(lines[2], "xor  ") != 0 || strings.Index(lines[3], "add-wrong") != 0 {
		t.Errorf("unexpected row layout:\n%s", out)
	}
}

func TestPresentFailure(t *testing.T) {
	t.Parallel()
	long := strings.Repeat("A", 200)
	mismatch := orchestration.VectorResult{
		Vector: vectors.Vector{Name: "big", Op: "mul", A: "2", B: "3"},
		Got:    long, Want: long + "0", Format: "hex",
	}

	var buf bytes.Buffer
	CLIResultPresenter{}.PresentFailure(mismatch, &buf)
	if out := buf.String(); !strings.Contains(out, "✗ big (mul 2 3)") || !strings.Contains(out, "...") {
		t.Errorf("unexpected failure output:\n%s", out)
	}

	buf.Reset()
	CLIResultPresenter{Verbose: true}.PresentFailure(mismatch, &buf)
	if !strings.Contains(buf.String(), long+"0") {
		t.Error("verbose failure should print full values")
	}

	buf.Reset()
	CLIResultPresenter{}.PresentFailure(orchestration.VectorResult{
		Vector: vectors.Vector{Name: "neg", Op: "sub", A: "1", B: "2"},
		Err:    errors.New("boom"),
	}, &buf)
	if !strings.Contains(buf.String(), "error: boom") {
		t.Errorf("error failure output: %s", buf.String())
	}
}

func TestDisplayMemoryStats(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	DisplayMemoryStats(metrics.MemoryDelta{Allocated: 2048, Mallocs: 3, GCCycles: 1}, &buf)
	if !strings.Contains(buf.String(), "2.0 KiB allocated in 3 objects, 1 GC cycles") {
		t.Errorf("unexpected memory stats: %s", buf.String())
	}

	buf.Reset()
	DisplaySystemStats(sysmon.Stats{CPUPercent: 12.5, MemPercent: 40}, &buf)
	if !strings.Contains(buf.String(), "System peak: CPU 12.5%, memory 40.0%") {
		t.Errorf("unexpected system stats: %s", buf.String())
	}
}
