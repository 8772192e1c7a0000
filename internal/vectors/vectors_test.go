package vectors

import (
	"errors"
	"os"
	"strings"
	"testing"
)

func TestPadExpected(t *testing.T) {
	t.Parallel()
	tests := []struct {
		in   string
		base int
		want string
	}{
		{"1", 16, "00000001"},
		{"abc", 16, "00000ABC"},
		{"100000000", 16, "0000000100000000"},
		{"DEADBEEF", 16, "DEADBEEF"},
		{"", 16, "00000000"},
		{"10110", 2, strings.Repeat("0", 27) + "10110"},
		{strings.Repeat("1", 33), 2, strings.Repeat("0", 31) + strings.Repeat("1", 33)},
	}
	for _, tt := range tests {
		if got := PadExpected(tt.in, tt.base); got != tt.want {
			t.Errorf("PadExpected(%q, %d) = %q, want %q", tt.in, tt.base, got, tt.want)
		}
	}
}

func TestVectorExprAndExpected(t *testing.T) {
	t.Parallel()
	tests := []struct {
		v          Vector
		wantExpr   string
		wantText   string
		wantFormat string
	}{
		{Vector{Op: "add", A: "1", B: "2", Want: "3"}, "add 1 2", "00000003", FormatHex},
		{Vector{Op: "add", A: "1", B: "2", Want: "0x3"}, "add 1 2", "00000003", FormatHex},
		{Vector{Op: "not", A: "0b101001", Want: "0b10110"}, "not 0b101001", strings.Repeat("0", 27) + "10110", FormatBin},
		{Vector{Op: "mod", A: "2A", B: "5", Want: " 2 "}, "mod 2A 5", "2", FormatDec},
		{Vector{Op: "cmp", A: "1", B: "2", Want: "-1"}, "cmp 1 2", "-1", FormatDec},
	}
	for _, tt := range tests {
		if got := tt.v.Expr(); got != tt.wantExpr {
			t.Errorf("Expr() = %q, want %q", got, tt.wantExpr)
		}
		text, format := tt.v.Expected()
		if text != tt.wantText || format != tt.wantFormat {
			t.Errorf("Expected() = %q, %q; want %q, %q", text, format, tt.wantText, tt.wantFormat)
		}
	}
}

func TestBuiltin(t *testing.T) {
	t.Parallel()
	vs := Builtin()
	if len(vs) < 15 {
		t.Fatalf("expected the full builtin set, got %d vectors", len(vs))
	}
	ops := map[string]bool{}
	for _, v := range vs {
		ops[v.Op] = true
	}
	for _, op := range []string{"xor", "or", "and", "not", "add", "sub", "wsub", "mul", "shl", "shr", "mod", "cmp"} {
		if !ops[op] {
			t.Errorf("builtin vectors do not cover %q", op)
		}
	}
}

func TestLoad(t *testing.T) {
	t.Parallel()
	vs, err := Load("testdata/sample.toml")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(vs) != 3 {
		t.Fatalf("got %d vectors, want 3", len(vs))
	}
	if vs[0].Name != "carry" || vs[0].Expr() != "add 0xFFFFFFFF 0x1" {
		t.Errorf("unexpected first vector %+v", vs[0])
	}
	if text, _ := vs[0].Expected(); text != "0000000100000000" {
		t.Errorf("Expected() = %q", text)
	}
}

func TestLoadErrors(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name    string
		path    string
		wantMsg string
	}{
		{"missing file", "testdata/nope.toml", "nope.toml"},
		{"duplicate", "testdata/duplicate.toml", "duplicate name"},
		{"unknown key", "testdata/unknown_key.toml", "unknown key"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := Load(tt.path)
			if !errors.Is(err, ErrInvalidVector) {
				t.Fatalf("Load(%s) error = %v, want ErrInvalidVector", tt.path, err)
			}
			if !strings.Contains(err.Error(), tt.wantMsg) {
				t.Errorf("error %q should mention %q", err.Error(), tt.wantMsg)
			}
		})
	}
}

func TestParseValidation(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		doc  string
	}{
		{"empty", ""},
		{"no name", "[[vector]]\nop = \"add\"\na = \"1\"\nwant = \"1\"\n"},
		{"no want", "[[vector]]\nname = \"x\"\nop = \"add\"\na = \"1\"\n"},
		{"bad toml", "[[vector]\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if _, err := Parse(strings.NewReader(tt.doc)); !errors.Is(err, ErrInvalidVector) {
				t.Errorf("Parse error = %v, want ErrInvalidVector", err)
			}
		})
	}
}

func TestBuiltinFileIsLoadable(t *testing.T) {
	t.Parallel()
	if _, err := os.Stat("builtin.toml"); err != nil {
		t.Skip("builtin.toml not present next to the test binary")
	}
	vs, err := Load("builtin.toml")
	if err != nil {
		t.Fatalf("Load(builtin.toml): %v", err)
	}
	if len(vs) != len(Builtin()) {
		t.Errorf("file and embedded copies differ: %d vs %d", len(vs), len(Builtin()))
	}
}
