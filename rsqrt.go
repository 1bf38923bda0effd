// Package rsqrt computes an approximate reciprocal square root of a
// 32-bit unsigned integer using only integer addition, shifts, and
// comparisons. It is written for cores without a hardware multiply,
// divide, or floating-point unit; the software arithmetic primitives
// it is built on (Mul32, MulLo32, DivMod32, LeadingZeros32) are
// exported for reuse.
//
// Results are unsigned Q16.16 fixed point: RSqrt(x) approximates
// 65536/sqrt(x).
package rsqrt

// rsqrtTable[e] is the Q16.16 value of 1/sqrt(2^e), rounded.
// Entry 0 is exactly 1.0; entries halve every second step.
var rsqrtTable = [32]uint32{
	65536, 46341, 32768, 23170, 16384, 11585, 8192, 5793,
	4096, 2896, 2048, 1448, 1024, 724, 512, 362,
	256, 181, 128, 90, 64, 45, 32, 23,
	16, 11, 8, 6, 4, 3, 2, 1,
}

// seed returns a first Q16.16 approximation of 1/sqrt(x) by linear
// interpolation between the table entries for x's exponent bucket.
// e must be the position of x's highest set bit.
func seed(e uint32, x uint32) uint32 {
	base := rsqrtTable[e]
	next := uint32(1) // 1/sqrt(2^32) rounds up to the smallest unit
	if e < 31 {
		next = rsqrtTable[e+1]
	}

	// The bits of x below the top bit, scaled to a 16-bit fraction
	// of the distance from 2^e to 2^(e+1).
	var frac uint32
	if e >= 16 {
		frac = (x - 1<<e) >> (e - 16)
	} else {
		frac = (x - 1<<e) << (16 - e)
	}

	return base - MulLo32(base-next, frac)>>16
}

// newtonStep refines the Q16.16 estimate y of 1/sqrt(x) with one
// Newton-Raphson iteration, y' = y*(3 - x*y*y)/2, carried out in
// fixed point with 64-bit intermediates held as hi/lo word pairs.
func newtonStep(y, x uint32) uint32 {
	// y*y is Q32.32 split across y2hi (integer part) and y2lo.
	y2hi, y2lo := Mul32(y, y)

	// x*y*y in Q16.16, assembled from the two halves of y*y.
	// For any seed the table can produce, x*y*y is near 1.0, so
	// the value fits in the single low word kept here.
	_, lo1 := Mul32(x, y2hi)
	termA := lo1 << 16
	hi2, lo2 := Mul32(x, y2lo)
	termB := hi2<<16 | lo2>>16
	xy2 := termA + termB

	// 3 - x*y*y in Q16.16.
	term := 3<<16 - xy2

	// y*term carries 32 fractional bits; shifting by 17 rescales to
	// Q16.16 and halves in one step. Round with a half-unit bias
	// before the shift.
	hi, lo := Mul32(y, term)
	lo += 1 << 16
	if lo < 1<<16 {
		hi++
	}
	return hi<<15 | lo>>17
}

// RSqrt returns an approximation of 65536/sqrt(x), the reciprocal
// square root of x in unsigned Q16.16 fixed point.
//
// Special cases are:
//
//	RSqrt(0) = 0xffffffff
//	RSqrt(0xffffffff) = 1
//
// For all other inputs the result is one Newton step over an
// interpolated table seed: exact at powers of four, and within about
// 2^-7 relative error elsewhere. RSqrt is total over the 32-bit
// domain, never fails, and is safe to call from concurrent
// goroutines.
func RSqrt(x uint32) uint32 {
	// special cases
	switch x {
	case 0:
		// 1/sqrt(0) diverges; saturate.
		return 0xffffffff
	case 0xffffffff:
		// floor of the representable range
		return 1
	}

	e := uint32(31 - LeadingZeros32(x))
	return newtonStep(seed(e, x), x)
}
