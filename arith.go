package rsqrt

// Mul32 returns the 64-bit product of x and y as a high and low
// 32-bit word pair: hi*2^32 + lo == x*y. The hi/lo contract matches
// [math/bits.Mul32].
//
// The product is assembled from the four 16x16 partial products with
// a 32-bit middle accumulator, so it never needs a wider integer type
// or a hardware multiply.
func Mul32(x, y uint32) (hi, lo uint32) {
	xl, xh := x&0xffff, x>>16
	yl, yh := y&0xffff, y>>16

	p0 := MulLo32(xl, yl)
	p1 := MulLo32(xl, yh)
	p2 := MulLo32(xh, yl)
	p3 := MulLo32(xh, yh)

	// mid collects bits 16..47 of the product; it cannot overflow,
	// its three terms are at most 0xfffe, 0xffff, and 0xffff.
	mid := (p0 >> 16) + (p1 & 0xffff) + (p2 & 0xffff)

	lo = (p0 & 0xffff) | (mid << 16)
	hi = p3 + (p1 >> 16) + (p2 >> 16) + (mid >> 16)
	return
}

// MulLo32 returns the low 32 bits of the product x*y, identical to
// native wraparound multiplication. It is binary long multiplication:
// conditional add and shift, one step per set bit of y.
func MulLo32(x, y uint32) uint32 {
	var r uint32
	for y != 0 {
		if y&1 != 0 {
			r += x
		}
		x <<= 1
		y >>= 1
	}
	return r
}

// DivMod32 returns the quotient x/y and remainder x%y computed by
// 32 steps of restoring long division. DivMod32(x, 0) is (0, 0);
// division by zero is not an error here, mirroring targets whose
// divide instruction is emulated and must not trap.
func DivMod32(x, y uint32) (q, r uint32) {
	if y == 0 {
		return 0, 0
	}
	for i := 31; i >= 0; i-- {
		r = r<<1 | (x>>i)&1
		if r >= y {
			r -= y
			q |= 1 << i
		}
	}
	return
}

// Div32 returns the quotient x/y, or 0 if y == 0.
func Div32(x, y uint32) uint32 {
	q, _ := DivMod32(x, y)
	return q
}

// Mod32 returns the remainder x%y, or 0 if y == 0.
func Mod32(x, y uint32) uint32 {
	_, r := DivMod32(x, y)
	return r
}
