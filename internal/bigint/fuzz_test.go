package bigint

import (
	"math/big"
	"testing"
)

// FuzzParseHex checks that every accepted hex string yields a normalized value
// whose canonical form names the same number math/big reads.
func FuzzParseHex(f *testing.F) {
	for _, seed := range []string{"0", "1", "FFFFFFFF", "100000000", "00000000abc", "deadBEEFcafe"} {
		f.Add(seed)
	}
	f.Fuzz(func(t *testing.T, s string) {
		x, err := ParseHex(s)
		want, ok := new(big.Int).SetString(s, 16)
		if err != nil {
			return
		}
		if !ok {
			t.Fatalf("ParseHex accepted %q which math/big rejects", s)
		}
		assertNormalized(t, x)
		if toBig(t, x).Cmp(want) != 0 {
			t.Fatalf("ParseHex(%q) = %s", s, x.Hex())
		}
	})
}

// FuzzArithmetic compares add, subtract and multiply with math/big on
// operands built from raw bytes.
func FuzzArithmetic(f *testing.F) {
	f.Add([]byte{1}, []byte{2})
	f.Add([]byte{0xff, 0xff, 0xff, 0xff}, []byte{1})
	f.Add(make([]byte, 40), []byte{0xff, 0, 0, 0, 0, 0, 0, 0, 1})
	f.Fuzz(func(t *testing.T, ab, bb []byte) {
		if len(ab) > 512 || len(bb) > 512 {
			return
		}
		ba, bbig := new(big.Int).SetBytes(ab), new(big.Int).SetBytes(bb)
		a, b := fromBig(ba), fromBig(bbig)

		if got, want := toBig(t, a.Add(b)), new(big.Int).Add(ba, bbig); got.Cmp(want) != 0 {
			t.Fatalf("add mismatch: %s + %s", a.Hex(), b.Hex())
		}
		if got, want := toBig(t, a.Mul(b)), new(big.Int).Mul(ba, bbig); got.Cmp(want) != 0 {
			t.Fatalf("mul mismatch: %s * %s", a.Hex(), b.Hex())
		}
		d, err := a.Sub(b)
		if ba.Cmp(bbig) < 0 {
			if err == nil {
				t.Fatalf("expected underflow for %s - %s", a.Hex(), b.Hex())
			}
			return
		}
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got, want := toBig(t, d), new(big.Int).Sub(ba, bbig); got.Cmp(want) != 0 {
			t.Fatalf("sub mismatch: %s - %s", a.Hex(), b.Hex())
		}
	})
}
