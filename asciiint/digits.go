package asciiint

import (
	"fmt"

	"github.com/philippag/compint/compinterrors"
)

// alphabet supplies the display character for digit values 0-35 (bases up
// to 36 get a single printable character per digit, the same convention
// strconv.FormatInt uses for its base argument).
const alphabet = "0123456789abcdefghijklmnopqrstuvwxyz"

// digitChar renders a digit value as its display form. Bases above 36
// have no single-character-per-digit convention, so each digit is
// rendered as a decimal number instead.
func digitChar(v int, base int) string {
	if base <= 36 {
		return string(alphabet[v])
	}
	return fmt.Sprintf("%d", v)
}

func digitValue(c byte) (int, bool) {
	switch {
	case c >= '0' && c <= '9':
		return int(c - '0'), true
	case c >= 'a' && c <= 'z':
		return int(c-'a') + 10, true
	case c >= 'A' && c <= 'Z':
		return int(c-'A') + 10, true
	default:
		return 0, false
	}
}

// Len returns the digit count of the absolute value.
func (z *AsciiInt) Len() int {
	return z.numDigits()
}

// CharAt returns the display character for the digit at position i from
// the most significant end. Bases above 36 return the first byte of the
// digit's decimal rendering (ambiguous for multi-byte digits by design —
// callers needing the exact value should read Digit instead).
func (z *AsciiInt) CharAt(i int) (byte, error) {
	n := z.numDigits()
	if i < 0 || i >= n {
		return 0, &compinterrors.IndexError{Index: i, Length: n}
	}
	s := digitChar(int(z.digits[i]), z.base)
	return s[0], nil
}

// Digit returns the raw digit value (0..base-1) at position i, the
// lossless counterpart to CharAt for bases where a single display
// character cannot represent every digit.
func (z *AsciiInt) Digit(i int) (byte, error) {
	n := z.numDigits()
	if i < 0 || i >= n {
		return 0, &compinterrors.IndexError{Index: i, Length: n}
	}
	return z.digits[i], nil
}
