package rsqrt

const hexDigits = "0123456789abcdef"

// AppendUint appends the string form of x in the given base (10 or
// 16) to dst and returns the extended buffer. The conversion uses
// only the package's own software arithmetic: base 10 peels digits
// with DivMod32, base 16 with shifts and masks. It panics on any
// other base.
//
// It exists so that a target without hardware divide can report
// results over a byte channel without linking a runtime division
// helper.
func AppendUint(dst []byte, x uint32, base int) []byte {
	var buf [10]byte // enough for 0xffffffff in base 10
	i := len(buf)

	switch base {
	case 10:
		for {
			var d uint32
			x, d = DivMod32(x, 10)
			i--
			buf[i] = byte('0' + d)
			if x == 0 {
				break
			}
		}
	case 16:
		for {
			i--
			buf[i] = hexDigits[x&0xf]
			x >>= 4
			if x == 0 {
				break
			}
		}
	default:
		panic("rsqrt: invalid base")
	}

	return append(dst, buf[i:]...)
}

// FormatUint returns the string form of x in the given base (10 or
// 16).
func FormatUint(x uint32, base int) string {
	return string(AppendUint(nil, x, base))
}
