package bigint

import "math/bits"

// Not returns the complement of x within its significant width.
//
// Every limb below the top one is complemented in full. In the top limb only
// the bits up to and including the highest set bit are flipped, so the result
// never grows past the bit length of x. Not of 0 is 1. This is not a
// two's-complement NOT: applying it twice does not restore x when the top
// limb had leading ones cleared by the first application.
func (x *Int) Not() *Int {
	n := x.Len()
	top := x.limb(n - 1)
	if n == 1 && top == 0 {
		return FromUint32(1)
	}
	z := new(Int)
	for i := 0; i < n-1; i++ {
		z.limbs.PushBack(^x.limb(i))
	}
	// A full-width top limb gives a shift of 32, which yields an all-ones mask.
	mask := uint32(1)<<bits.Len32(top) - 1
	z.limbs.PushBack(top ^ mask)
	return z.norm()
}

// Xor returns x ^ y. The shorter operand is extended with zero limbs.
func (x *Int) Xor(y *Int) *Int {
	return limbwise(x, y, max(x.Len(), y.Len()), func(a, b uint32) uint32 { return a ^ b })
}

// Or returns x | y. The shorter operand is extended with zero limbs.
func (x *Int) Or(y *Int) *Int {
	return limbwise(x, y, max(x.Len(), y.Len()), func(a, b uint32) uint32 { return a | b })
}

// And returns x & y. Limbs above the shorter operand are zero and dropped.
func (x *Int) And(y *Int) *Int {
	return limbwise(x, y, min(x.Len(), y.Len()), func(a, b uint32) uint32 { return a & b })
}

func limbwise(x, y *Int, n int, op func(a, b uint32) uint32) *Int {
	z := new(Int)
	for i := 0; i < n; i++ {
		z.limbs.PushBack(op(x.limb(i), y.limb(i)))
	}
	return z.norm()
}
