package decint

import "github.com/philippag/compint/internal/limb"

// addMagnitudes computes |a|+|b| over raw limb buffers, least-significant
// limb first (both buffers are big-endian, so the least significant limb
// is always the last index regardless of how many limbs each operand
// has).
func addMagnitudes(a, b *limb.Buffer) *limb.Buffer {
	na, nb := a.Len(), b.Len()
	n := na
	if nb > n {
		n = nb
	}
	out := limb.New(n + 1)
	var carry uint64
	for i := 0; i <= n; i++ {
		var av, bv uint64
		if i < na {
			av = a.Get(na - 1 - i)
		}
		if i < nb {
			bv = b.Get(nb - 1 - i)
		}
		sum := av + bv + carry
		if sum >= Base {
			sum -= Base
			carry = 1
		} else {
			carry = 0
		}
		out.Set(n-i, sum)
	}
	out.TrimLeadingZeros()
	return out
}

// subMagnitudes computes |a|-|b| over raw limb buffers, requiring
// |a| >= |b| (the caller must have ordered operands via cmpMagnitude).
// The trailing borrow must be zero; a non-zero borrow here would indicate
// a caller bug, not a runtime error condition.
func subMagnitudes(a, b *limb.Buffer) *limb.Buffer {
	na, nb := a.Len(), b.Len()
	n := na
	if nb > n {
		n = nb
	}
	out := limb.New(n)
	var borrow int64
	for i := 0; i < n; i++ {
		var av, bv int64
		if i < na {
			av = int64(a.Get(na - 1 - i))
		}
		if i < nb {
			bv = int64(b.Get(nb - 1 - i))
		}
		d := av - bv - borrow
		if d < 0 {
			d += int64(Base)
			borrow = 1
		} else {
			borrow = 0
		}
		out.Set(n-1-i, uint64(d))
	}
	out.TrimLeadingZeros()
	return out
}

// Add sets z to the sum x+y and returns z.
func Add(x, y *DecInt) *DecInt {
	z := &DecInt{}
	if x.sign == y.sign {
		z.buf = addMagnitudes(x.buf, y.buf)
		z.sign = x.sign
	} else if cmpMagnitude(x, y) >= 0 {
		z.buf = subMagnitudes(x.buf, y.buf)
		z.sign = x.sign
	} else {
		z.buf = subMagnitudes(y.buf, x.buf)
		z.sign = y.sign
	}
	z.canonicalize()
	return z
}

// Subtract sets z to the difference x-y and returns z.
func Subtract(x, y *DecInt) *DecInt {
	z := &DecInt{}
	if x.sign != y.sign {
		z.buf = addMagnitudes(x.buf, y.buf)
		z.sign = x.sign
	} else if cmpMagnitude(x, y) >= 0 {
		z.buf = subMagnitudes(x.buf, y.buf)
		z.sign = x.sign
	} else {
		z.buf = subMagnitudes(y.buf, x.buf)
		z.sign = -x.sign
	}
	z.canonicalize()
	return z
}

// AddInPlace mutates z to z+y and returns z. The result is computed into a
// fresh limb buffer before being adopted by z, which keeps the in-place
// and out-of-place paths byte-identical at the cost of the headroom-reuse
// optimization a true in-place loop would give; see DESIGN.md for the
// tradeoff.
func (z *DecInt) AddInPlace(y *DecInt) *DecInt {
	r := Add(z, y)
	*z = *r
	return z
}

// SubtractInPlace mutates z to z-y and returns z.
func (z *DecInt) SubtractInPlace(y *DecInt) *DecInt {
	r := Subtract(z, y)
	*z = *r
	return z
}

// AddInt64InPlace mutates z to z+x and returns z, the single-machine-word
// overload of AddInPlace.
func (z *DecInt) AddInt64InPlace(x int64) *DecInt {
	return z.AddInPlace(FromInt64(x))
}

// SubtractInt64InPlace mutates z to z-x and returns z.
func (z *DecInt) SubtractInt64InPlace(x int64) *DecInt {
	return z.SubtractInPlace(FromInt64(x))
}

// IncrementInPlace mutates z to z+1 and returns z.
func (z *DecInt) IncrementInPlace() *DecInt {
	return z.AddInt64InPlace(1)
}

// DecrementInPlace mutates z to z-1 and returns z.
func (z *DecInt) DecrementInPlace() *DecInt {
	return z.SubtractInt64InPlace(1)
}
