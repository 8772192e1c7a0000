package eval

import (
	"errors"
	"strings"
	"testing"

	"github.com/agbru/bigcalc/internal/bigint"
	apperrors "github.com/agbru/bigcalc/internal/errors"
)

func TestEval(t *testing.T) {
	t.Parallel()
	zeros33 := strings.Repeat("0", 33)
	tests := []struct {
		name   string
		expr   string
		format string
		want   string
	}{
		{"prefix add", "add 0xFFFFFFFF 0x1", "hex", "0000000100000000"},
		{"infix add", "FFFFFFFF + 1", "hex", "0000000100000000"},
		{"infix mul", "0x10000 * 0x10000", "hex", "0000000100000000"},
		{"prefix mul", "mul 7d7deab2affa38154326e96d350deee1 97f92a75b3faf8939e8e98b96476fd22", "hex",
			"4A7F69B908E167EB0DC9AF7BBAA5456039C38359E4DE4F169CA10C44D0A416E2"},
		{"sub", "0x100000000 - 0x1", "hex", "FFFFFFFF"},
		{"wsub wraps", "wsub 0 1", "hex", "FFFFFFFF"},
		{"xor", "0xF0 ^ 0xFF", "hex", "0000000F"},
		{"or binary", "0b1101" + zeros33 + " | 0b10101" + zeros33, "bin", padBin("11101" + zeros33)},
		{"and binary", "and 0b1101" + zeros33 + " 0b10101" + zeros33, "bin", padBin("101" + zeros33)},
		{"not", "not 0b101001", "bin", padBin("10110")},
		{"shl decimal count", "0b1011 << 33", "bin", padBin("1011" + zeros33)},
		{"shr", "shr 0b111000110101101010101110101101010101111 33", "bin", padBin("111000")},
		{"shl hex count", "shl 1 0x20", "hex", "0000000100000000"},
		{"mod", "mod 2A 5", "hex", "2"},
		{"infix mod", "0xFFFFFFFF % 4294967295", "hex", "0"},
		{"cmp less", "cmp 1 2", "hex", "-1"},
		{"cmp equal", "cmp 0x00ff FF", "hex", "0"},
		{"hex forces format", "hex 0b1", "bin", "00000001"},
		{"bin forces format", "bin 0x3", "hex", padBin("11")},
		{"case-insensitive op", "ADD 1 1", "hex", "00000002"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			res, err := New(0).Eval(tt.expr)
			if err != nil {
				t.Fatalf("Eval(%q): %v", tt.expr, err)
			}
			if got := res.Render(tt.format); got != tt.want {
				t.Errorf("Eval(%q) = %s, want %s", tt.expr, got, tt.want)
			}
		})
	}
}

func padBin(s string) string {
	if r := len(s) % 32; r != 0 {
		s = strings.Repeat("0", 32-r) + s
	}
	return s
}

func TestEvalErrors(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name    string
		expr    string
		wantIs  error
		wantOp  string
		wantMsg string
	}{
		{"empty", "   ", ErrSyntax, "", "empty expression"},
		{"unknown op", "pow 2 3", ErrSyntax, "", `unknown operation "pow"`},
		{"unknown op with hex-like name", "div FF 3", ErrSyntax, "", `unknown operation "div"`},
		{"unknown infix", "2 ** 3", ErrSyntax, "", `unknown operator "**"`},
		{"arity", "add 1", ErrSyntax, "", "takes 2 operand(s)"},
		{"bad hex", "add 0xZZ 1", bigint.ErrInvalidInput, "add", ""},
		{"bad binary", "0b102 + 1", bigint.ErrInvalidInput, "add", ""},
		{"underflow", "1 - 2", bigint.ErrUnderflow, "sub", ""},
		{"zero modulus", "mod FF 0", bigint.ErrZeroModulus, "mod", ""},
		{"modulus too wide", "mod FF 4294967296", ErrSyntax, "mod", "does not fit in 32 bits"},
		{"negative count", "shl 1 -3", ErrSyntax, "shl", "invalid count"},
		{"count overflow", "shl 1 99999999999999999999", ErrSyntax, "shl", "invalid count"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := New(0).Eval(tt.expr)
			if !errors.Is(err, tt.wantIs) {
				t.Fatalf("Eval(%q) error = %v, want %v", tt.expr, err, tt.wantIs)
			}
			var evalErr apperrors.EvaluationError
			if tt.wantOp != "" {
				if !errors.As(err, &evalErr) || evalErr.Op != tt.wantOp {
					t.Errorf("expected EvaluationError for %q, got %v", tt.wantOp, err)
				}
			}
			if tt.wantMsg != "" && !strings.Contains(err.Error(), tt.wantMsg) {
				t.Errorf("error %q should mention %q", err.Error(), tt.wantMsg)
			}
		})
	}
}

func TestEvalThresholdIndependent(t *testing.T) {
	t.Parallel()
	a := strings.Repeat("9E3779B97F4A7C15", 20)
	b := strings.Repeat("C2B2AE3D27D4EB4F", 13)
	want, err := New(0).Eval("mul " + a + " " + b)
	if err != nil {
		t.Fatal(err)
	}
	for _, threshold := range []int{1, 4, 16, 64} {
		got, err := New(threshold).Eval(a + " * " + b)
		if err != nil {
			t.Fatal(err)
		}
		if !got.Value.Eq(want.Value) {
			t.Errorf("threshold %d changed the product", threshold)
		}
	}
}

func TestEvalResolver(t *testing.T) {
	t.Parallel()
	vars := map[string]*bigint.Int{"$x": bigint.FromUint32(0x10), "_": bigint.FromUint32(2)}
	e := New(0)
	e.Resolve = func(tok string) (*bigint.Int, bool) {
		v, ok := vars[tok]
		return v, ok
	}

	tests := []struct {
		expr string
		want string
	}{
		{"$x + _", "00000012"},
		{"mul $x $x", "00000100"},
		{"not _", "00000001"},
		{"$x << 4", "00000100"},
	}
	for _, tt := range tests {
		res, err := e.Eval(tt.expr)
		if err != nil {
			t.Fatalf("Eval(%q): %v", tt.expr, err)
		}
		if got := res.Render("hex"); got != tt.want {
			t.Errorf("Eval(%q) = %s, want %s", tt.expr, got, tt.want)
		}
	}

	for _, expr := range []string{"$y + 1", "1 + $y", "shl 1 $y", "mod FF $y"} {
		_, err := e.Eval(expr)
		if !errors.Is(err, ErrUndefinedVariable) || !strings.Contains(err.Error(), "undefined variable $y") {
			t.Errorf("Eval(%q) error = %v, want undefined variable $y", expr, err)
		}
	}
}

func TestEvalScalarReferences(t *testing.T) {
	t.Parallel()
	vars := map[string]*bigint.Int{
		"$n":    bigint.FromUint32(33),
		"$m":    bigint.FromUint32(7),
		"$x":    bigint.MustParseHex("123456789ABCDEF"),
		"$wide": bigint.MustParseHex("10000000000000000"),
		"$big":  bigint.MustParseHex("100000000"),
	}
	e := New(0)
	e.Resolve = func(tok string) (*bigint.Int, bool) {
		v, ok := vars[tok]
		return v, ok
	}

	tests := []struct {
		expr string
		want string
	}{
		{"shl 1 $n", "0000000200000000"},
		{"$x >> $n", "0091A2B3"},
		{"$x << $m", "91A2B3C4D5E6F780"},
		{"mod $x $m", "6"},
		{"$x % 7", "6"},
	}
	for _, tt := range tests {
		res, err := e.Eval(tt.expr)
		if err != nil {
			t.Fatalf("Eval(%q): %v", tt.expr, err)
		}
		if got := res.Render("hex"); got != tt.want {
			t.Errorf("Eval(%q) = %s, want %s", tt.expr, got, tt.want)
		}
	}

	if _, err := e.Eval("shl 1 $wide"); !errors.Is(err, ErrSyntax) || !strings.Contains(err.Error(), "wider than 64 bits") {
		t.Errorf("a 65-bit count reference should be rejected, got %v", err)
	}
	if _, err := e.Eval("mod 1 $big"); !errors.Is(err, ErrSyntax) || !strings.Contains(err.Error(), "does not fit in 32 bits") {
		t.Errorf("a modulus reference above 32 bits should be rejected, got %v", err)
	}
}

func TestResultIsScalar(t *testing.T) {
	t.Parallel()
	res, err := New(0).Eval("cmp 2 1")
	if err != nil {
		t.Fatal(err)
	}
	if !res.IsScalar() || res.Op != "cmp" || res.Render("bin") != "1" {
		t.Errorf("unexpected result %+v", res)
	}
}
