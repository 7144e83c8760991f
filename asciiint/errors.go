package asciiint

import "errors"

var (
	errEmptyInput = errors.New("empty input")
	errNoDigits   = errors.New("expected at least one digit")
	errBadDigit   = errors.New("digit out of range for base")
)
