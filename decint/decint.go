// Package decint implements DecInt, a signed arbitrary-precision integer
// whose magnitude is stored as a sequence of base-10^9 limbs.
//
// The package follows the classic sign-plus-unsigned-magnitude split of a
// big-integer type, generalized so the magnitude is an array of decimal
// limbs rather than binary words; the multiplicative engine in mul.go uses
// the same divide-and-conquer recursion shape that style of type typically
// uses for its Karatsuba path.
package decint

import (
	"github.com/philippag/compint/internal/limb"
)

// Base is B = 10^9, the limb base DecInt's digit array uses.
const Base uint64 = 1_000_000_000

// LimbDigits is the fixed decimal width of every limb except the most
// significant one (which is only [1,9] digits wide, tracked by
// firstDigitLength).
const LimbDigits = 9

// DecInt is a signed multi-precision decimal integer: sign * (L0*B^(n-1) +
// L1*B^(n-2) + ... + L{n-1}).
type DecInt struct {
	sign             int8 // +1 or -1; zero is always represented as +1
	firstDigitLength int  // decimal width of the most significant limb, in [1,9]
	buf              *limb.Buffer
}

// Zero returns a new DecInt representing 0, in canonical form.
func Zero() *DecInt {
	return &DecInt{sign: 1, firstDigitLength: 1, buf: limb.New(1)}
}

// FromInt64 builds a DecInt from a machine int64.
func FromInt64(x int64) *DecInt {
	neg := x < 0
	var u uint64
	if neg {
		u = uint64(-(x + 1)) + 1 // avoids overflow at math.MinInt64
	} else {
		u = uint64(x)
	}
	z := FromUint64(u)
	if neg && !z.IsZero() {
		z.sign = -1
	}
	return z
}

// FromUint64 builds a DecInt from a machine uint64.
func FromUint64(x uint64) *DecInt {
	limbs := decomposeUint64(x)
	z := &DecInt{sign: 1, buf: limb.NewFromLimbs(limbs)}
	z.canonicalize()
	return z
}

// decomposeUint64 splits x into big-endian base-B limbs (at most 3, since
// B^3 > 2^64).
func decomposeUint64(x uint64) []uint64 {
	if x == 0 {
		return []uint64{0}
	}
	var tmp [3]uint64
	n := 0
	for x > 0 {
		tmp[n] = x % Base
		x /= Base
		n++
	}
	out := make([]uint64, n)
	for i := 0; i < n; i++ {
		out[i] = tmp[n-1-i]
	}
	return out
}

// Copy returns a deep copy of z: no shared backing array with the
// receiver.
func (z *DecInt) Copy() *DecInt {
	return &DecInt{sign: z.sign, firstDigitLength: z.firstDigitLength, buf: z.buf.Copy()}
}

// Sign returns -1, 0, or +1.
func (z *DecInt) Sign() int {
	if z.IsZero() {
		return 0
	}
	if z.sign < 0 {
		return -1
	}
	return 1
}

// IsZero reports whether z is the canonical zero value.
func (z *DecInt) IsZero() bool {
	return z.buf.Len() == 1 && z.buf.Get(0) == 0
}

// numLimbs returns the number of limbs n.
func (z *DecInt) numLimbs() int { return z.buf.Len() }

// digitCount returns (length-1)*9 + firstDigitLength, the total decimal
// digit count of |z|.
func (z *DecInt) digitCount() int {
	return (z.numLimbs()-1)*LimbDigits + z.firstDigitLength
}

func digitWidth(v uint64) int {
	if v == 0 {
		return 1
	}
	w := 0
	for v > 0 {
		w++
		v /= 10
	}
	return w
}

// canonicalize trims leading zero limbs, recomputes firstDigitLength from
// L0, and forces zero to the unique +1-signed representation.
func (z *DecInt) canonicalize() {
	z.buf.TrimLeadingZeros()
	z.firstDigitLength = digitWidth(z.buf.Get(0))
	if z.IsZero() {
		z.sign = 1
	}
}

func abs8(s int8) int8 {
	if s < 0 {
		return -s
	}
	return s
}
