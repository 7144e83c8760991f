// Package asciiint implements AsciiInt, a signed arbitrary-precision
// integer whose magnitude is stored one digit per byte over a caller-
// chosen base b in [2,256], rather than DecInt's
// packed base-10^9 limbs. It mirrors decint's algorithms — same
// canonical-form invariants, same add/subtract/multiply shapes — at the
// narrower byte-per-digit granularity the source format calls for
// (ASCII pipelines, hex byte strings) where a plain memcpy round-trip
// matters more than squeezing nine decimal digits into one machine word.
package asciiint

import (
	"github.com/philippag/compint/compinterrors"
)

// MaxBase and MinBase bound the configurable digit base.
const (
	MinBase = 2
	MaxBase = 256
)

// DefaultBase is used by the zero-value-friendly constructors.
const DefaultBase = 10

// AsciiInt is a signed multi-precision integer with one digit per byte.
type AsciiInt struct {
	sign       int8 // +1 or -1; zero is always +1
	base       int  // 2..256
	hexSafe    bool // cleared by any mutation, set only by FromHexBytes
	hexByteLen int  // byte length ToHexByteArray reconstructs to, valid only while hexSafe
	digits     []byte
}

func validateBase(base int) error {
	if base < MinBase || base > MaxBase {
		return &compinterrors.IllegalStateError{Reason: "base out of [2,256]"}
	}
	return nil
}

// Zero returns a new AsciiInt representing 0 in the given base.
func Zero(base int) *AsciiInt {
	if err := validateBase(base); err != nil {
		panic(err)
	}
	return &AsciiInt{sign: 1, base: base, digits: []byte{0}}
}

// FromInt64 builds an AsciiInt from a machine int64 in the given base.
func FromInt64(base int, x int64) *AsciiInt {
	neg := x < 0
	var u uint64
	if neg {
		u = uint64(-(x + 1)) + 1
	} else {
		u = uint64(x)
	}
	z := FromUint64(base, u)
	if neg && !z.IsZero() {
		z.sign = -1
	}
	return z
}

// FromUint64 builds an AsciiInt from a machine uint64 in the given base.
func FromUint64(base int, x uint64) *AsciiInt {
	if err := validateBase(base); err != nil {
		panic(err)
	}
	b := uint64(base)
	if x == 0 {
		return &AsciiInt{sign: 1, base: base, digits: []byte{0}}
	}
	var tmp []byte
	for x > 0 {
		tmp = append(tmp, byte(x%b))
		x /= b
	}
	digits := make([]byte, len(tmp))
	for i, v := range tmp {
		digits[len(tmp)-1-i] = v
	}
	return &AsciiInt{sign: 1, base: base, digits: digits}
}

// Base returns the configured digit base.
func (z *AsciiInt) Base() int { return z.base }

// Copy returns a deep copy of z sharing no backing array with the receiver.
func (z *AsciiInt) Copy() *AsciiInt {
	d := make([]byte, len(z.digits))
	copy(d, z.digits)
	return &AsciiInt{sign: z.sign, base: z.base, hexSafe: z.hexSafe, hexByteLen: z.hexByteLen, digits: d}
}

// Sign returns -1, 0, or +1.
func (z *AsciiInt) Sign() int {
	if z.IsZero() {
		return 0
	}
	if z.sign < 0 {
		return -1
	}
	return 1
}

// IsZero reports whether z is the canonical zero value.
func (z *AsciiInt) IsZero() bool {
	return len(z.digits) == 1 && z.digits[0] == 0
}

func (z *AsciiInt) numDigits() int { return len(z.digits) }

// canonicalize trims leading zero digits and forces zero to the unique
// +1-signed form, mirroring DecInt's canonical form at byte granularity.
// Callers that need to preserve hexSafe across a canonicalizing trim (only
// FromHexBytes does) must restore hexSafe and hexByteLen themselves
// afterward; canonicalize always clears both, since trimming leading zero
// digits changes the digit count a hex-safe round trip depends on.
func (z *AsciiInt) canonicalize() {
	i := 0
	for i < len(z.digits)-1 && z.digits[i] == 0 {
		i++
	}
	if i > 0 {
		z.digits = z.digits[i:]
	}
	if z.IsZero() {
		z.sign = 1
	}
	z.hexSafe = false
	z.hexByteLen = 0
}
