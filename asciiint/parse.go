package asciiint

import "github.com/philippag/compint/compinterrors"

// Parse parses an optionally-signed run of digits in the given base into
// an AsciiInt. Unlike decint.Parse there is no scientific-notation suffix:
// the source format this type mirrors is a flat digit string (or raw byte
// array, see FromHexBytes), not a numeric-literal grammar.
func Parse(s string, base int) (*AsciiInt, error) {
	if err := validateBase(base); err != nil {
		return nil, err
	}
	if len(s) == 0 {
		return nil, compinterrors.NewParseError(s, 0, errEmptyInput)
	}
	i := 0
	sign := int8(1)
	switch s[0] {
	case '+':
		i++
	case '-':
		sign = -1
		i++
	}
	if i == len(s) {
		return nil, compinterrors.NewParseError(s, i, errNoDigits)
	}
	digits := make([]byte, 0, len(s)-i)
	for ; i < len(s); i++ {
		v, ok := digitValue(s[i])
		if !ok || v >= base {
			return nil, compinterrors.NewParseError(s, i, errBadDigit)
		}
		digits = append(digits, byte(v))
	}
	z := &AsciiInt{sign: sign, base: base, digits: digits}
	z.canonicalize()
	return z, nil
}
