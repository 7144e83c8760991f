package decint

import "errors"

var (
	errEmptyInput       = errors.New("empty input")
	errNoDigits         = errors.New("expected at least one digit")
	errNoExponentDigits = errors.New("expected at least one exponent digit")
	errTrailingGarbage  = errors.New("unexpected trailing characters")
	errInexactExponent  = errors.New("negative exponent does not evenly divide the mantissa")
)
