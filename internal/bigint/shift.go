package bigint

// Lsh returns x << n. The sub-limb part of the shift is applied first,
// carrying the bits shifted out of each limb into the next one and adding a
// top limb on overflow; the whole-limb part then pushes zero limbs at the low
// end. A shift by n <= 0 returns an unchanged copy.
func (x *Int) Lsh(n int) *Int {
	z := x.Clone()
	if n <= 0 || z.IsZero() {
		return z
	}
	whole, s := n/limbBits, uint(n%limbBits)
	if s > 0 {
		var carry uint32
		for i, m := 0, z.limbs.Len(); i < m; i++ {
			v := z.limbs.At(i)
			z.limbs.Set(i, v<<s|carry)
			carry = v >> (limbBits - s)
		}
		if carry != 0 {
			z.limbs.PushBack(carry)
		}
	}
	for ; whole > 0; whole-- {
		z.limbs.PushFront(0)
	}
	return z
}

// Rsh returns x >> n. The low n/32 limbs are dropped from the front of the
// sequence, then the remaining limbs are shifted by n%32 with the low bits of
// each limb moving into the top of the limb below it. A shift by n <= 0
// returns an unchanged copy.
func (x *Int) Rsh(n int) *Int {
	z := x.Clone()
	if n <= 0 {
		return z
	}
	whole, s := n/limbBits, uint(n%limbBits)
	if whole >= z.limbs.Len() {
		return New()
	}
	for ; whole > 0; whole-- {
		z.limbs.PopFront()
	}
	if s > 0 {
		m := z.limbs.Len()
		for i := 0; i < m; i++ {
			v := z.limbs.At(i) >> s
			if i+1 < m {
				v |= z.limbs.At(i+1) << (limbBits - s)
			}
			z.limbs.Set(i, v)
		}
	}
	return z.norm()
}
