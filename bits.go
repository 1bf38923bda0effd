package rsqrt

// LeadingZeros32 returns the number of leading zero bits in x;
// the result is 32 for x == 0.
//
// It uses only addition, shifts, and comparisons so that it stays
// valid on targets without a count-leading-zeros instruction. On such
// targets [math/bits.LeadingZeros32] may compile to a lookup or a
// native instruction; this function is the portable reference.
func LeadingZeros32(x uint32) int {
	n := 0
	if x < 1<<16 {
		n += 16
		x <<= 16
	}
	if x < 1<<24 {
		n += 8
		x <<= 8
	}
	if x < 1<<28 {
		n += 4
		x <<= 4
	}
	if x < 1<<30 {
		n += 2
		x <<= 2
	}
	if x < 1<<31 {
		n++
		x <<= 1
	}
	if x == 0 {
		// x was all zeros; the last shifted bit counts too.
		n++
	}
	return n
}
