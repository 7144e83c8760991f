package asciiint

import (
	"strings"
)

// String renders z as an optional '-' followed by its digits, identity
// memcpy-equivalent for base 10 (each digit value equals its ASCII digit
// minus '0', so the loop below degenerates to a plain byte-for-byte copy
// through alphabet's first ten entries) and a translation table
// otherwise.
func (z *AsciiInt) String() string {
	var sb strings.Builder
	sb.Grow(len(z.digits) + 1)
	if z.sign < 0 && !z.IsZero() {
		sb.WriteByte('-')
	}
	for _, d := range z.digits {
		sb.WriteString(digitChar(int(d), z.base))
	}
	return sb.String()
}
