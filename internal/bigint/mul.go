package bigint

// Multiplier multiplies values with Karatsuba's algorithm, falling back to
// schoolbook multiplication for small operands.
//
// The zero Multiplier recurses until one operand is a single limb. A
// Threshold above 1 stops the recursion earlier: once the shorter operand has
// at most Threshold limbs the full schoolbook product is used instead.
type Multiplier struct {
	Threshold int
}

// Mul returns x * y using the zero Multiplier.
func (x *Int) Mul(y *Int) *Int {
	return Multiplier{}.Mul(x, y)
}

// Mul returns x * y.
//
// With half = max(len x, len y)/2 limbs, each operand is split into a low
// part below limb half and a high part from limb half upward. Then
//
//	p1 = hi(x)*hi(y)
//	p2 = lo(x)*lo(y)
//	p3 = (lo(x)+hi(x))*(lo(y)+hi(y)) - p1 - p2
//	x*y = p1<<(2*half limbs) + p3<<(half limbs) + p2
//
// which needs three recursive products instead of four. The sums fed into p3
// are strictly smaller than the longer operand, so the recursion terminates.
func (m Multiplier) Mul(x, y *Int) *Int {
	if x.IsZero() || y.IsZero() {
		return New()
	}
	lx, ly := x.Len(), y.Len()
	if lx == 1 || ly == 1 {
		return mulLimb(x, y)
	}
	if m.Threshold > 1 && min(lx, ly) <= m.Threshold {
		return SchoolbookMul(x, y)
	}

	half := max(lx, ly) / 2
	xLo, xHi := x.split(half)
	yLo, yHi := y.split(half)

	p1 := m.Mul(xHi, yHi)
	p2 := m.Mul(xLo, yLo)
	p3 := m.Mul(xLo.Add(xHi), yLo.Add(yHi))
	p3 = sub(sub(p3, p1), p2)

	return p1.shiftLimbs(2 * half).Add(p3.shiftLimbs(half)).Add(p2)
}

// mulLimb multiplies when at least one operand is a single limb. The operand
// with more limbs is scanned; when both have one limb the larger is scanned.
func mulLimb(x, y *Int) *Int {
	long, short := x, y
	if long.Len() < short.Len() || (long.Len() == short.Len() && long.Lt(short)) {
		long, short = short, long
	}
	d := uint64(short.limb(0))
	n := long.Len()

	buf := acquireLimbSlice(n + 1)
	defer releaseLimbSlice(buf)

	var carry uint64
	for i := 0; i < n; i++ {
		t := uint64(long.limb(i))*d + carry
		buf[i] = uint32(t)
		carry = t >> limbBits
	}
	buf[n] = uint32(carry)
	return fromLimbs(buf)
}

// SchoolbookMul returns x * y computed with the direct O(len x * len y)
// method. It is the base case of a thresholded Multiplier and the reference
// product for Karatsuba.
func SchoolbookMul(x, y *Int) *Int {
	if x.IsZero() || y.IsZero() {
		return New()
	}
	lx, ly := x.Len(), y.Len()

	buf := acquireLimbSlice(lx + ly)
	defer releaseLimbSlice(buf)

	for j := 0; j < ly; j++ {
		d := uint64(y.limb(j))
		if d == 0 {
			continue
		}
		var carry uint64
		for i := 0; i < lx; i++ {
			t := uint64(x.limb(i))*d + uint64(buf[i+j]) + carry
			buf[i+j] = uint32(t)
			carry = t >> limbBits
		}
		buf[j+lx] = uint32(carry)
	}
	return fromLimbs(buf)
}
