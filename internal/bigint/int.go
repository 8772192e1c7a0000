package bigint

import (
	"math/bits"

	"github.com/gammazero/deque"
)

const (
	// limbBits is the width of one limb.
	limbBits = 32
	// hexDigitsPerLimb is the number of hex digits rendered per limb.
	hexDigitsPerLimb = limbBits / 4
)

// Int is an arbitrary-precision unsigned integer.
//
// The zero value is ready to use and represents 0. An Int shares its limb
// storage with copies made by value assignment, so pass *Int and use Clone
// when an independent value is needed.
type Int struct {
	// limbs holds the magnitude, least significant limb first. Apart from the
	// empty zero value, the top limb is non-zero unless the value is 0, in
	// which case there is exactly one zero limb.
	limbs deque.Deque[uint32]
}

// New returns a new Int set to 0.
func New() *Int {
	z := new(Int)
	z.limbs.PushBack(0)
	return z
}

// FromUint32 returns a new Int set to v.
func FromUint32(v uint32) *Int {
	z := new(Int)
	z.limbs.PushBack(v)
	return z
}

// fromLimbs builds a normalized Int from a little-endian limb slice. The
// slice is copied.
func fromLimbs(ls []uint32) *Int {
	z := new(Int)
	for _, l := range ls {
		z.limbs.PushBack(l)
	}
	return z.norm()
}

// norm trims high-order zero limbs until the top limb is non-zero or a single
// limb remains.
func (z *Int) norm() *Int {
	for z.limbs.Len() > 1 && z.limbs.Back() == 0 {
		z.limbs.PopBack()
	}
	if z.limbs.Len() == 0 {
		z.limbs.PushBack(0)
	}
	return z
}

// limb returns limb i, or 0 when i is past the top limb.
func (x *Int) limb(i int) uint32 {
	if i < x.limbs.Len() {
		return x.limbs.At(i)
	}
	return 0
}

// Len returns the number of limbs in x. It is at least 1.
func (x *Int) Len() int {
	if n := x.limbs.Len(); n > 0 {
		return n
	}
	return 1
}

// Limbs returns a copy of the limbs of x, least significant first.
func (x *Int) Limbs() []uint32 {
	n := x.Len()
	ls := make([]uint32, n)
	for i := range ls {
		ls[i] = x.limb(i)
	}
	return ls
}

// Clone returns a copy of x that shares no storage with it.
func (x *Int) Clone() *Int {
	z := new(Int)
	for i, n := 0, x.Len(); i < n; i++ {
		z.limbs.PushBack(x.limb(i))
	}
	return z
}

// IsZero reports whether x is 0.
func (x *Int) IsZero() bool {
	return x.Len() == 1 && x.limb(0) == 0
}

// BitLen returns the length of x in bits. The bit length of 0 is 0.
func (x *Int) BitLen() int {
	n := x.Len()
	return (n-1)*limbBits + bits.Len32(x.limb(n-1))
}

// Uint32 returns the least significant limb of x.
func (x *Int) Uint32() uint32 {
	return x.limb(0)
}

// shiftLimbs returns x multiplied by 2^(32*k), realized by pushing k zero limbs
// at the low end.
func (x *Int) shiftLimbs(k int) *Int {
	z := x.Clone()
	if z.IsZero() {
		return z
	}
	for ; k > 0; k-- {
		z.limbs.PushFront(0)
	}
	return z
}

// split returns the limbs of x below index half and the limbs from half
// upward as two normalized values. When x has at most half limbs the high part
// is 0 and the low part is x itself.
func (x *Int) split(half int) (lo, hi *Int) {
	n := x.Len()
	if n <= half {
		return x, New()
	}
	lo, hi = new(Int), new(Int)
	for i := 0; i < half; i++ {
		lo.limbs.PushBack(x.limb(i))
	}
	for i := half; i < n; i++ {
		hi.limbs.PushBack(x.limb(i))
	}
	return lo.norm(), hi.norm()
}
