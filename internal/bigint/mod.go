package bigint

// Mod returns x mod m for a modulus that fits in a limb.
//
// The value is consumed one hex digit at a time, most significant first, with
// Horner's rule in base 16. The accumulator is 64 bits wide so acc*16+digit
// cannot overflow for any 32-bit modulus.
func (x *Int) Mod(m uint32) (uint32, error) {
	if m == 0 {
		return 0, ErrZeroModulus
	}
	mod := uint64(m)
	var acc uint64
	for i := x.Len() - 1; i >= 0; i-- {
		l := x.limb(i)
		for shift := limbBits - 4; shift >= 0; shift -= 4 {
			acc = (acc<<4 | uint64(l>>uint(shift)&0xF)) % mod
		}
	}
	return uint32(acc), nil
}
