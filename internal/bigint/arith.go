package bigint

import (
	"fmt"
	"math/bits"
)

// Add returns x + y.
func (x *Int) Add(y *Int) *Int {
	n := max(x.Len(), y.Len())
	z := new(Int)
	var carry uint64
	for i := 0; i < n; i++ {
		sum := uint64(x.limb(i)) + uint64(y.limb(i)) + carry
		z.limbs.PushBack(uint32(sum))
		carry = sum >> limbBits
	}
	if carry != 0 {
		z.limbs.PushBack(uint32(carry))
	}
	return z.norm()
}

// Sub returns x - y. It returns ErrUnderflow when y > x.
func (x *Int) Sub(y *Int) (*Int, error) {
	if x.Lt(y) {
		return nil, fmt.Errorf("%w: subtrahend has %d bits, minuend %d", ErrUnderflow, y.BitLen(), x.BitLen())
	}
	return sub(x, y), nil
}

// WrappingSub returns x - y without an underflow check. The borrow runs over
// the limbs of x only, so when y > x the result is x - y modulo 2^(32*x.Len()),
// and limbs of y above x.Len() are ignored.
func (x *Int) WrappingSub(y *Int) *Int {
	return sub(x, y)
}

// sub is the borrow-propagating kernel shared by Sub and multiplication.
func sub(x, y *Int) *Int {
	z := new(Int)
	var borrow uint32
	for i, n := 0, x.Len(); i < n; i++ {
		var d uint32
		d, borrow = bits.Sub32(x.limb(i), y.limb(i), borrow)
		z.limbs.PushBack(d)
	}
	return z.norm()
}
