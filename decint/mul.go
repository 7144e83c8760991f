package decint

import (
	"github.com/philippag/compint/decint/scheduler"
	"github.com/philippag/compint/internal/limb"
)

// addLE adds two little-endian magnitude slices (possibly of different
// lengths, possibly carrying un-trimmed high zero limbs) and returns a
// trimmed little-endian result.
func addLE(a, b []uint64) []uint64 {
	n := maxInt(len(a), len(b))
	out := make([]uint64, n+1)
	var carry uint64
	for i := 0; i < n; i++ {
		var av, bv uint64
		if i < len(a) {
			av = a[i]
		}
		if i < len(b) {
			bv = b[i]
		}
		s := av + bv + carry
		out[i] = s % Base
		carry = s / Base
	}
	out[n] = carry
	return trim(out)
}

// subLE computes a-b for little-endian magnitude slices, requiring a >= b
// (the Karatsuba identity (aLo+aHi)(bLo+bHi)-z0-z2 never goes negative; a
// non-zero trailing borrow here is an internal bug, not a runtime
// condition the caller can trigger).
func subLE(a, b []uint64) []uint64 {
	n := maxInt(len(a), len(b))
	out := make([]uint64, n)
	var borrow int64
	for i := 0; i < n; i++ {
		var av, bv int64
		if i < len(a) {
			av = int64(a[i])
		}
		if i < len(b) {
			bv = int64(b[i])
		}
		d := av - bv - borrow
		if d < 0 {
			d += int64(Base)
			borrow = 1
		} else {
			borrow = 0
		}
		out[i] = uint64(d)
	}
	if borrow != 0 {
		panic("decint: karatsuba combine went negative")
	}
	return trim(out)
}

// addInto adds src (little-endian, scaled by B^shift) into dst in place.
// Limbs of src that would land past the end of dst are not added; a carry
// that runs past the end of dst (the classical Karatsuba size bound
// violated) panics rather than being dropped.
func addInto(dst, src []uint64, shift int) {
	n := len(src)
	if shift+n > len(dst) {
		n = len(dst) - shift
	}
	var carry uint64
	for i := 0; i < n; i++ {
		idx := shift + i
		s := dst[idx] + src[i] + carry
		dst[idx] = s % Base
		carry = s / Base
	}
	idx := shift + n
	for carry > 0 {
		if idx >= len(dst) {
			panic("decint: karatsuba combine overflow")
		}
		s := dst[idx] + carry
		dst[idx] = s % Base
		carry = s / Base
		idx++
	}
}

// mulSimpleLE is schoolbook long multiplication over little-endian limbs:
// for each row i, walk j accumulating a[i]*b[j] with an immediately
// propagated carry, so no intermediate sum ever has to
// hold more than one product's worth of overflow above Base.
func mulSimpleLE(a, b []uint64) []uint64 {
	na, nb := len(a), len(b)
	out := make([]uint64, na+nb)
	if na == 0 || nb == 0 {
		return out[:0]
	}
	for i := 0; i < na; i++ {
		ai := a[i]
		if ai == 0 {
			continue
		}
		var carry uint64
		for j := 0; j < nb; j++ {
			p := ai*b[j] + out[i+j] + carry
			out[i+j] = p % Base
			carry = p / Base
		}
		k := i + nb
		for carry > 0 {
			p := out[k] + carry
			out[k] = p % Base
			carry = p / Base
			k++
		}
	}
	return trim(out)
}

// karatsubaLE is the recursive divide-and-conquer multiply: split each
// operand at the midpoint, recurse on (low,low) and (high,high), recurse
// once more on the summed halves to get the cross term without a fourth
// multiplication, then combine with shifted adds. Adapted to decimal
// limbs and little-endian slicing so the split falls on a plain slice
// boundary. Below threshold it falls back to mulSimpleLE.
func karatsubaLE(a, b []uint64, threshold int) []uint64 {
	n := minInt(len(a), len(b))
	if n == 0 {
		return nil
	}
	if n <= threshold {
		return mulSimpleLE(a, b)
	}
	m := (maxInt(len(a), len(b)) + 1) / 2
	aLo, aHi := split(a, m)
	bLo, bHi := split(b, m)

	z0 := karatsubaLE(aLo, bLo, threshold)
	z2 := karatsubaLE(aHi, bHi, threshold)
	aSum := addLE(aLo, aHi)
	bSum := addLE(bLo, bHi)
	z1 := subLE(subLE(karatsubaLE(aSum, bSum, threshold), z0), z2)

	result := make([]uint64, len(a)+len(b))
	addInto(result, z0, 0)
	addInto(result, z1, m)
	addInto(result, z2, 2*m)
	return trim(result)
}

// karatsubaParallelLE is karatsubaLE with the three recursive sub-products
// forked onto sched when depth remains, and joined before the combine
// step. depth 0 (or no sched) falls back to the sequential recursion.
func karatsubaParallelLE(a, b []uint64, threshold, depth int, sched scheduler.Scheduler) []uint64 {
	n := minInt(len(a), len(b))
	if n == 0 {
		return nil
	}
	if n <= threshold {
		return mulSimpleLE(a, b)
	}
	if depth <= 0 || sched == nil {
		return karatsubaLE(a, b, threshold)
	}
	m := (maxInt(len(a), len(b)) + 1) / 2
	aLo, aHi := split(a, m)
	bLo, bHi := split(b, m)

	var z0, z2, z1raw []uint64
	h0 := sched.Submit(func() error {
		z0 = karatsubaParallelLE(aLo, bLo, threshold, depth-1, sched)
		return nil
	})
	h2 := sched.Submit(func() error {
		z2 = karatsubaParallelLE(aHi, bHi, threshold, depth-1, sched)
		return nil
	})
	h1 := sched.Submit(func() error {
		aSum := addLE(aLo, aHi)
		bSum := addLE(bLo, bHi)
		z1raw = karatsubaParallelLE(aSum, bSum, threshold, depth-1, sched)
		return nil
	})
	_ = sched.Join(h0)
	_ = sched.Join(h2)
	_ = sched.Join(h1)

	z1 := subLE(subLE(z1raw, z0), z2)
	result := make([]uint64, len(a)+len(b))
	addInto(result, z0, 0)
	addInto(result, z1, m)
	addInto(result, z2, 2*m)
	return trim(result)
}

func productSign(x, y *DecInt) int8 {
	if x.sign == y.sign {
		return 1
	}
	return -1
}

func decIntFromLE(le []uint64, sign int8) *DecInt {
	be := toBE(le)
	if len(be) == 0 {
		return Zero()
	}
	z := &DecInt{sign: sign, buf: limb.NewFromLimbs(be)}
	z.canonicalize()
	return z
}

// MultiplySimple computes x*y with schoolbook long multiplication,
// ignoring the Karatsuba threshold entirely.
func MultiplySimple(x, y *DecInt) *DecInt {
	if x.IsZero() || y.IsZero() {
		return Zero()
	}
	le := mulSimpleLE(toLE(x.buf.Slice()), toLE(y.buf.Slice()))
	return decIntFromLE(le, productSign(x, y))
}

// MultiplyKaratsuba computes x*y with sequential Karatsuba recursion,
// falling back to schoolbook multiplication for operands with at most
// threshold limbs.
func MultiplyKaratsuba(x, y *DecInt, threshold int) *DecInt {
	if x.IsZero() || y.IsZero() {
		return Zero()
	}
	le := karatsubaLE(toLE(x.buf.Slice()), toLE(y.buf.Slice()), threshold)
	return decIntFromLE(le, productSign(x, y))
}

// ParallelMultiplyKaratsuba computes x*y with Karatsuba recursion, forking
// the three sub-products onto sched down to maxDepth levels of recursion.
func ParallelMultiplyKaratsuba(x, y *DecInt, threshold, maxDepth int, sched scheduler.Scheduler) *DecInt {
	if x.IsZero() || y.IsZero() {
		return Zero()
	}
	le := karatsubaParallelLE(toLE(x.buf.Slice()), toLE(y.buf.Slice()), threshold, maxDepth, sched)
	return decIntFromLE(le, productSign(x, y))
}

// Multiply is the convenience dispatcher: it picks sequential or parallel
// Karatsuba according to the package-level tuning knobs
// (SetKaratsubaThreshold, SetMaxDepth, SetForkJoinPool).
func Multiply(x, y *DecInt) *DecInt {
	threshold := KaratsubaThreshold()
	if sched := ForkJoinPool(); sched != nil {
		n := minInt(x.numLimbs(), y.numLimbs())
		if n > threshold {
			return ParallelMultiplyKaratsuba(x, y, threshold, MaxDepth(), sched)
		}
	}
	return MultiplyKaratsuba(x, y, threshold)
}
