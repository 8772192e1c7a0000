package eval

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"fortio.org/safecast"

	"github.com/agbru/bigcalc/internal/bigint"
)

var (
	// ErrSyntax is returned for malformed expressions and operands.
	ErrSyntax = errors.New("eval: syntax error")
	// ErrUndefinedVariable is returned for a $name nothing is bound to.
	ErrUndefinedVariable = errors.New("eval: undefined variable")
)

// IsReference reports whether tok names a variable, as in $x.
func IsReference(tok string) bool {
	return len(tok) > 1 && tok[0] == '$'
}

// ParseValue parses a value operand. "0x" selects hexadecimal and "0b"
// binary; a bare digit string is hexadecimal.
func ParseValue(tok string) (*bigint.Int, error) {
	lower := strings.ToLower(tok)
	switch {
	case strings.HasPrefix(lower, "0x"):
		return bigint.ParseHex(tok[2:])
	case strings.HasPrefix(lower, "0b"):
		return bigint.ParseBin(tok[2:])
	default:
		return bigint.ParseHex(tok)
	}
}

// ParseCount parses a non-negative shift count. Decimal is the default and
// 0x, 0b and 0o prefixes are honored.
func ParseCount(tok string) (int, error) {
	v, err := strconv.ParseUint(tok, 0, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: invalid count %q", ErrSyntax, tok)
	}
	n, err := safecast.Conv[int](v)
	if err != nil {
		return 0, fmt.Errorf("%w: count %q out of range: %v", ErrSyntax, tok, err)
	}
	return n, nil
}

// ParseModulus parses a modulus that must fit in one 32-bit limb.
func ParseModulus(tok string) (uint32, error) {
	v, err := strconv.ParseUint(tok, 0, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: invalid modulus %q", ErrSyntax, tok)
	}
	m, err := safecast.Conv[uint32](v)
	if err != nil {
		return 0, fmt.Errorf("%w: modulus %q does not fit in 32 bits", ErrSyntax, tok)
	}
	return m, nil
}
