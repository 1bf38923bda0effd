package rsqrt

// xorshift32 is a tiny deterministic PRNG for randomized tests and
// benchmarks. It covers all of [1, 2^32-1] before repeating.
type xorshift32 uint32

func newXorshift32() *xorshift32 {
	x := xorshift32(2463534242)
	return &x
}

func (s *xorshift32) Uint32() uint32 {
	x := uint32(*s)
	x ^= x << 13
	x ^= x >> 17
	x ^= x << 5
	*s = xorshift32(x)
	return x
}

func (s *xorshift32) Pair() (uint32, uint32) {
	return s.Uint32(), s.Uint32()
}
