package decint

import "github.com/philippag/compint/compinterrors"

// Len returns the decimal digit count of the absolute value of z.
func (z *DecInt) Len() int {
	return z.digitCount()
}

// CharAt returns the decimal digit at position i from the most significant
// end, as an ASCII byte, addressing the digits of |z| (sign excluded).
func (z *DecInt) CharAt(i int) (byte, error) {
	n := z.digitCount()
	if i < 0 || i >= n {
		return 0, &compinterrors.IndexError{Index: i, Length: n}
	}
	if i < z.firstDigitLength {
		return digitFrom(z.buf.Get(0), z.firstDigitLength, i), nil
	}
	rest := i - z.firstDigitLength
	limbIndex := 1 + rest/LimbDigits
	within := rest % LimbDigits
	return digitFrom(z.buf.Get(limbIndex), LimbDigits, within), nil
}

// digitFrom extracts the digit at position p (0 = most significant, from
// the left) of a limb value v that prints with width w digits, via
// division by a precomputed power of 10.
func digitFrom(v uint64, w, p int) byte {
	divisor := pow10[w-1-p]
	return byte('0' + (v/divisor)%10)
}
