package decint

import (
	"strconv"

	"github.com/philippag/compint/compinterrors"
	"github.com/philippag/compint/internal/limb"
)

var pow10 = [10]uint64{1, 10, 100, 1000, 10000, 100000, 1000000, 10000000, 100000000, 1000000000}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

// Parse parses a decimal (optionally scientific) string into a DecInt,
// rejecting fractional scientific truncation. See ParseWithOptions to opt into truncation.
func Parse(s string) (*DecInt, error) {
	return ParseWithOptions(s, false)
}

// ParseWithOptions parses s like Parse, but when allowFractional is true a
// negative exponent that does not evenly divide the mantissa truncates
// instead of failing.
func ParseWithOptions(s string, allowFractional bool) (*DecInt, error) {
	if len(s) == 0 {
		return nil, compinterrors.NewParseError(s, 0, errEmptyInput)
	}
	i := 0
	sign := int8(1)
	switch s[i] {
	case '+':
		i++
	case '-':
		sign = -1
		i++
	}
	start := i
	for i < len(s) && isDigit(s[i]) {
		i++
	}
	if i == start {
		return nil, compinterrors.NewParseError(s, i, errNoDigits)
	}
	mantissa := s[start:i]

	exp := 0
	if i < len(s) && (s[i] == 'e' || s[i] == 'E') {
		i++
		expSign := 1
		if i < len(s) && (s[i] == '+' || s[i] == '-') {
			if s[i] == '-' {
				expSign = -1
			}
			i++
		}
		expStart := i
		for i < len(s) && isDigit(s[i]) {
			i++
		}
		if i == expStart {
			return nil, compinterrors.NewParseError(s, i, errNoExponentDigits)
		}
		e, err := strconv.Atoi(s[expStart:i])
		if err != nil {
			return nil, compinterrors.NewParseError(s, expStart, err)
		}
		exp = expSign * e
	}
	if i != len(s) {
		return nil, compinterrors.NewParseError(s, i, errTrailingGarbage)
	}

	z, err := mantissaToDecInt(mantissa)
	if err != nil {
		return nil, compinterrors.NewParseError(s, start, err)
	}
	if z.IsZero() {
		return z, nil
	}
	z.sign = sign

	switch {
	case exp > 0:
		appendZeroDigits(z, exp)
	case exp < 0:
		if err := removeZeroDigits(z, -exp, allowFractional); err != nil {
			return nil, compinterrors.NewParseError(s, start, err)
		}
	}
	z.canonicalize()
	return z, nil
}

// FromScientific builds a DecInt from a mantissa string and a separate
// exponent, the non-string-parsing entry point for scientific values.
func FromScientific(mantissa string, exp int) (*DecInt, error) {
	sign := int8(1)
	m := mantissa
	if len(m) > 0 && (m[0] == '+' || m[0] == '-') {
		if m[0] == '-' {
			sign = -1
		}
		m = m[1:]
	}
	for _, c := range []byte(m) {
		if !isDigit(c) {
			return nil, compinterrors.NewParseError(mantissa, 0, errNoDigits)
		}
	}
	z, err := mantissaToDecInt(m)
	if err != nil {
		return nil, compinterrors.NewParseError(mantissa, 0, err)
	}
	if !z.IsZero() {
		z.sign = sign
		switch {
		case exp > 0:
			appendZeroDigits(z, exp)
		case exp < 0:
			if err := removeZeroDigits(z, -exp, false); err != nil {
				return nil, compinterrors.NewParseError(mantissa, 0, err)
			}
		}
	}
	z.canonicalize()
	return z, nil
}

// mantissaToDecInt packs a validated (sign-free, exponent-free) digit
// string right-to-left in groups of 9 into limbs.
func mantissaToDecInt(digits string) (*DecInt, error) {
	j := 0
	for j < len(digits) && digits[j] == '0' {
		j++
	}
	digits = digits[j:]
	if len(digits) == 0 {
		return Zero(), nil
	}
	total := len(digits)
	first := total % LimbDigits
	if first == 0 {
		first = LimbDigits
	}
	nLimbs := (total-first)/LimbDigits + 1
	limbs := make([]uint64, nLimbs)
	v, err := strconv.ParseUint(digits[:first], 10, 64)
	if err != nil {
		return nil, err
	}
	limbs[0] = v
	idx := first
	for k := 1; k < nLimbs; k++ {
		v, err := strconv.ParseUint(digits[idx:idx+LimbDigits], 10, 64)
		if err != nil {
			return nil, err
		}
		limbs[k] = v
		idx += LimbDigits
	}
	z := &DecInt{sign: 1, buf: limb.NewFromLimbs(limbs)}
	z.canonicalize()
	return z, nil
}

// appendZeroDigits multiplies z by 10^e in place:
// shift limbs by e/9 full limbs, then multiply by 10^(e%9) with carry.
func appendZeroDigits(z *DecInt, e int) {
	r := e % LimbDigits
	k := e / LimbDigits
	if r > 0 {
		z.MultiplyInPlace(pow10[r])
	}
	if k > 0 {
		z.buf.ExpandRight(k)
	}
}

// removeZeroDigits divides z by 10^e in place,
// requiring exact divisibility unless allowFractional is set, in which case
// it truncates.
func removeZeroDigits(z *DecInt, e int, allowFractional bool) error {
	k := e / LimbDigits
	r := e % LimbDigits
	n := z.buf.Len()
	if k > 0 {
		if k >= n {
			// dividing the whole magnitude away: only legal if the part
			// being discarded, plus the remaining digit, round-trips to
			// zero (i.e. z was already zero, handled by the caller) or
			// truncation is allowed.
			if !allowFractional {
				for idx := 0; idx < n; idx++ {
					if z.buf.Get(idx) != 0 {
						return errInexactExponent
					}
				}
			}
			z.buf.SetWindow(z.buf.Offset()+n-1, 1)
			z.buf.Set(0, 0)
			return nil
		}
		if !allowFractional {
			for idx := n - k; idx < n; idx++ {
				if z.buf.Get(idx) != 0 {
					return errInexactExponent
				}
			}
		}
		z.buf.SetWindow(z.buf.Offset(), n-k)
	}
	if r > 0 {
		rem, _ := z.DivideInPlace(pow10[r])
		if rem != 0 && !allowFractional {
			return errInexactExponent
		}
	}
	return nil
}
