package decint

import "github.com/philippag/compint/compinterrors"

// MultiplyInPlace multiplies z by a single-limb factor k (0 <= k < Base),
// walking least-to-most significant, extending by one limb on a final
// carry. It is the primitive behind Parse's 10^e scaling.
func (z *DecInt) MultiplyInPlace(k uint64) *DecInt {
	n := z.buf.Len()
	var carry uint64
	for i := n - 1; i >= 0; i-- {
		v := z.buf.Get(i)*k + carry
		z.buf.Set(i, v%Base)
		carry = v / Base
	}
	for carry > 0 {
		z.buf.ExpandLeft(1)
		z.buf.Set(0, carry%Base)
		carry /= Base
	}
	z.canonicalize()
	return z
}

// DivideInPlace divides z by a single-limb divisor k (0 < k < Base),
// walking most-to-least significant, and returns the remainder. Dividing
// by 0 reports compinterrors.DivisionError rather than panicking, since
// unlike overflow this is caller-triggerable through the exported k
// argument, not an internal invariant violation. (Parse's scientific
// exponent path only ever divides by 10^1..10^8.)
func (z *DecInt) DivideInPlace(k uint64) (uint64, error) {
	if k == 0 {
		return 0, &compinterrors.DivisionError{}
	}
	n := z.buf.Len()
	var rem uint64
	for i := 0; i < n; i++ {
		cur := rem*Base + z.buf.Get(i)
		z.buf.Set(i, cur/k)
		rem = cur % k
	}
	z.canonicalize()
	return rem, nil
}
