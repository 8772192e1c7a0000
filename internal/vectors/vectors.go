// Package vectors loads known-answer test vectors from TOML.
package vectors

import (
	_ "embed"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/BurntSushi/toml"
)

//go:embed builtin.toml
var builtinTOML string

// Formats of an expectation, as returned by Vector.Expected.
const (
	FormatHex = "hex"
	FormatBin = "bin"
	FormatDec = "dec"
)

// ErrInvalidVector is returned when a vector file is malformed.
var ErrInvalidVector = errors.New("vectors: invalid vector")

// Vector is a single known-answer test: Op applied to A (and B) must give
// Want.
type Vector struct {
	Name string `toml:"name"`
	Op   string `toml:"op"`
	A    string `toml:"a"`
	B    string `toml:"b"`
	Want string `toml:"want"`
}

type file struct {
	Vectors []Vector `toml:"vector"`
}

// scalarOps produce decimal results rather than values.
var scalarOps = map[string]bool{"mod": true, "cmp": true}

// Expr returns the prefix expression evaluating v.
func (v Vector) Expr() string {
	if v.B == "" {
		return v.Op + " " + v.A
	}
	return v.Op + " " + v.A + " " + v.B
}

// Expected returns the canonical text the evaluation of v must render to and
// the format to render it in. Value expectations are padded to the canonical
// limb-aligned width.
func (v Vector) Expected() (text, format string) {
	if scalarOps[v.Op] {
		return strings.TrimSpace(v.Want), FormatDec
	}
	want := strings.TrimSpace(v.Want)
	lower := strings.ToLower(want)
	switch {
	case strings.HasPrefix(lower, "0b"):
		return PadExpected(want[2:], 2), FormatBin
	case strings.HasPrefix(lower, "0x"):
		return PadExpected(want[2:], 16), FormatHex
	default:
		return PadExpected(want, 16), FormatHex
	}
}

// PadExpected left-pads s with zeros to a whole number of limbs, 8 digits
// for base 16 and 32 for base 2, and uppercases hex digits. It yields the
// canonical form of the value s denotes when s has no superfluous leading
// zero limb.
func PadExpected(s string, base int) string {
	width := 8
	if base == 2 {
		width = 32
	} else {
		s = strings.ToUpper(s)
	}
	if s == "" {
		s = "0"
	}
	if r := len(s) % width; r != 0 {
		s = strings.Repeat("0", width-r) + s
	}
	return s
}

// Parse decodes vectors from TOML.
func Parse(r io.Reader) ([]Vector, error) {
	var f file
	meta, err := toml.NewDecoder(r).Decode(&f)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to parse TOML: %v", ErrInvalidVector, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return nil, fmt.Errorf("%w: unknown key %q", ErrInvalidVector, undecoded[0].String())
	}
	if err := validate(f.Vectors); err != nil {
		return nil, err
	}
	return f.Vectors, nil
}

// Load reads vectors from the TOML file at path.
func Load(path string) ([]Vector, error) {
	var f file
	meta, err := toml.DecodeFile(path, &f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w: %v", path, ErrInvalidVector, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return nil, fmt.Errorf("%s: %w: unknown key %q", path, ErrInvalidVector, undecoded[0].String())
	}
	if err := validate(f.Vectors); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return f.Vectors, nil
}

// Builtin returns the vectors compiled into the binary.
func Builtin() []Vector {
	vs, err := Parse(strings.NewReader(builtinTOML))
	if err != nil {
		panic(err)
	}
	return vs
}

func validate(vs []Vector) error {
	if len(vs) == 0 {
		return fmt.Errorf("%w: no [[vector]] entries", ErrInvalidVector)
	}
	seen := make(map[string]bool, len(vs))
	for i, v := range vs {
		switch {
		case v.Name == "":
			return fmt.Errorf("%w: vector %d has no name", ErrInvalidVector, i+1)
		case seen[v.Name]:
			return fmt.Errorf("%w: duplicate name %q", ErrInvalidVector, v.Name)
		case v.Op == "" || v.A == "" || v.Want == "":
			return fmt.Errorf("%w: %q needs op, a and want", ErrInvalidVector, v.Name)
		}
		seen[v.Name] = true
	}
	return nil
}
