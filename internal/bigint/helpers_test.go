package bigint

import (
	"math/big"
	"math/rand"
	"strings"
	"testing"
)

// toBig converts x to a math/big value through its canonical hex form.
func toBig(t testing.TB, x *Int) *big.Int {
	t.Helper()
	b, ok := new(big.Int).SetString(x.Hex(), 16)
	if !ok {
		t.Fatalf("math/big rejected canonical hex %q", x.Hex())
	}
	return b
}

// fromBig converts a non-negative math/big value to an Int.
func fromBig(b *big.Int) *Int {
	return MustParseHex(b.Text(16))
}

// randInt returns a random value of exactly n limbs (n >= 1).
func randInt(rng *rand.Rand, n int) *Int {
	ls := make([]uint32, n)
	for i := range ls {
		ls[i] = rng.Uint32()
	}
	if ls[n-1] == 0 {
		ls[n-1] = 1
	}
	return fromLimbs(ls)
}

// padLeft left-pads s with zeros to a multiple of width, the same alignment
// the canonical text forms use.
func padLeft(s string, width int) string {
	if r := len(s) % width; r != 0 {
		s = strings.Repeat("0", width-r) + s
	}
	return s
}

// assertNormalized fails the test when x carries superfluous high zero limbs.
func assertNormalized(t testing.TB, x *Int) {
	t.Helper()
	n := x.limbs.Len()
	if n == 0 {
		t.Fatal("value has no limbs")
	}
	if n > 1 && x.limbs.Back() == 0 {
		t.Fatalf("value %s has a zero top limb", x.Hex())
	}
}
