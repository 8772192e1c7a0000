package bigint

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseHex parses a big-endian hexadecimal string without prefix. Digits are
// grouped into limbs of 8 from the least significant end; the most
// significant group may be shorter. Upper- and lower-case digits are accepted.
func ParseHex(s string) (*Int, error) {
	return parse(s, 16, hexDigitsPerLimb)
}

// ParseBin parses a big-endian binary string without prefix, grouping digits
// into limbs of 32 from the least significant end.
func ParseBin(s string) (*Int, error) {
	return parse(s, 2, limbBits)
}

// MustParseHex is like ParseHex but panics if s cannot be parsed.
func MustParseHex(s string) *Int {
	z, err := ParseHex(s)
	if err != nil {
		panic(err)
	}
	return z
}

// MustParseBin is like ParseBin but panics if s cannot be parsed.
func MustParseBin(s string) *Int {
	z, err := ParseBin(s)
	if err != nil {
		panic(err)
	}
	return z
}

func parse(s string, base, width int) (*Int, error) {
	if s == "" {
		return nil, fmt.Errorf("%w: empty base-%d string", ErrInvalidInput, base)
	}
	z := new(Int)
	for end := len(s); end > 0; end -= width {
		start := max(end-width, 0)
		v, err := strconv.ParseUint(s[start:end], base, limbBits)
		if err != nil {
			return nil, fmt.Errorf("%w: %q is not a base-%d number", ErrInvalidInput, s, base)
		}
		z.limbs.PushBack(uint32(v))
	}
	return z.norm(), nil
}

// Hex returns the canonical hexadecimal form of x: every limb as exactly 8
// uppercase digits, most significant limb first.
func (x *Int) Hex() string {
	return x.render("%08X", hexDigitsPerLimb)
}

// Bin returns the canonical binary form of x: every limb as exactly 32
// digits, most significant limb first.
func (x *Int) Bin() string {
	return x.render("%032b", limbBits)
}

// String implements fmt.Stringer and returns x.Hex().
func (x *Int) String() string {
	return x.Hex()
}

func (x *Int) render(verb string, width int) string {
	n := x.Len()
	var sb strings.Builder
	sb.Grow(n * width)
	for i := n - 1; i >= 0; i-- {
		fmt.Fprintf(&sb, verb, x.limb(i))
	}
	return sb.String()
}
