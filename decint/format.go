package decint

import (
	"fmt"
)

// String renders z as an optional '-', then the decimal digits of L0 with
// no padding, then each subsequent limb zero-padded to width 9.
func (z *DecInt) String() string {
	return string(z.Append(make([]byte, 0, z.digitCount()+1)))
}

// Append appends the decimal string form of z to buf and returns the
// extended buffer, writing directly into a preallocated buffer for large
// numbers rather than building up intermediate strings.
func (z *DecInt) Append(buf []byte) []byte {
	if z.sign < 0 && !z.IsZero() {
		buf = append(buf, '-')
	}
	buf = appendUnpadded(buf, z.buf.Get(0))
	for i := 1; i < z.numLimbs(); i++ {
		buf = appendPadded9(buf, z.buf.Get(i))
	}
	return buf
}

func appendUnpadded(buf []byte, v uint64) []byte {
	if v == 0 {
		return append(buf, '0')
	}
	var tmp [20]byte
	i := len(tmp)
	for v > 0 {
		i--
		tmp[i] = byte('0' + v%10)
		v /= 10
	}
	return append(buf, tmp[i:]...)
}

func appendPadded9(buf []byte, v uint64) []byte {
	var tmp [LimbDigits]byte
	for i := LimbDigits - 1; i >= 0; i-- {
		tmp[i] = byte('0' + v%10)
		v /= 10
	}
	return append(buf, tmp[:]...)
}

// Format implements fmt.Formatter for the 'v', 's', and 'd' verbs, narrowed
// to decimal rendering only: a hexadecimal/octal/binary rendering of a
// decimal-limb value has no natural meaning the way it would for a binary
// big-integer type.
func (z *DecInt) Format(s fmt.State, verb rune) {
	switch verb {
	case 'v', 's', 'd':
		s.Write(z.Append(nil))
	default:
		fmt.Fprintf(s, "%%!%c(decint.DecInt=%s)", verb, z.String())
	}
}
