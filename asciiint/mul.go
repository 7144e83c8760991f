package asciiint

import "github.com/philippag/compint/decint/scheduler"

// addWords adds two little-endian word slices modulo base, mirroring
// decint/mul.go's addLE but parameterized by a runtime base instead of
// the fixed decimal Base.
func addWords(a, b []uint64, base uint64) []uint64 {
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
		out[i] = s % base
		carry = s / base
	}
	out[n] = carry
	return trimWords(out)
}

// subWords computes a-b for little-endian word slices, requiring a >= b.
func subWords(a, b []uint64, base uint64) []uint64 {
	n := maxInt(len(a), len(b))
	out := make([]uint64, n)
	var borrow int64
	ibase := int64(base)
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
			d += ibase
			borrow = 1
		} else {
			borrow = 0
		}
		out[i] = uint64(d)
	}
	if borrow != 0 {
		panic("asciiint: karatsuba combine went negative")
	}
	return trimWords(out)
}

func addWordsInto(dst, src []uint64, shift int, base uint64) {
	n := len(src)
	if shift+n > len(dst) {
		n = len(dst) - shift
	}
	var carry uint64
	for i := 0; i < n; i++ {
		idx := shift + i
		s := dst[idx] + src[i] + carry
		dst[idx] = s % base
		carry = s / base
	}
	idx := shift + n
	for carry > 0 {
		if idx >= len(dst) {
			panic("asciiint: karatsuba combine overflow")
		}
		s := dst[idx] + carry
		dst[idx] = s % base
		carry = s / base
		idx++
	}
}

// mulSimpleWords is schoolbook multiplication over little-endian digit
// words, row by row with immediately-propagated carry (mirrors
// decint/mul.go's mulSimpleLE).
func mulSimpleWords(a, b []uint64, base uint64) []uint64 {
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
			out[i+j] = p % base
			carry = p / base
		}
		k := i + nb
		for carry > 0 {
			p := out[k] + carry
			out[k] = p % base
			carry = p / base
			k++
		}
	}
	return trimWords(out)
}

func karatsubaWords(a, b []uint64, threshold int, base uint64) []uint64 {
	n := minInt(len(a), len(b))
	if n == 0 {
		return nil
	}
	if n <= threshold {
		return mulSimpleWords(a, b, base)
	}
	m := (maxInt(len(a), len(b)) + 1) / 2
	aLo, aHi := splitWords(a, m)
	bLo, bHi := splitWords(b, m)

	z0 := karatsubaWords(aLo, bLo, threshold, base)
	z2 := karatsubaWords(aHi, bHi, threshold, base)
	aSum := addWords(aLo, aHi, base)
	bSum := addWords(bLo, bHi, base)
	z1 := subWords(subWords(karatsubaWords(aSum, bSum, threshold, base), z0, base), z2, base)

	result := make([]uint64, len(a)+len(b))
	addWordsInto(result, z0, 0, base)
	addWordsInto(result, z1, m, base)
	addWordsInto(result, z2, 2*m, base)
	return trimWords(result)
}

func karatsubaParallelWords(a, b []uint64, threshold, depth int, base uint64, sched scheduler.Scheduler) []uint64 {
	n := minInt(len(a), len(b))
	if n == 0 {
		return nil
	}
	if n <= threshold {
		return mulSimpleWords(a, b, base)
	}
	if depth <= 0 || sched == nil {
		return karatsubaWords(a, b, threshold, base)
	}
	m := (maxInt(len(a), len(b)) + 1) / 2
	aLo, aHi := splitWords(a, m)
	bLo, bHi := splitWords(b, m)

	var z0, z2, z1raw []uint64
	h0 := sched.Submit(func() error {
		z0 = karatsubaParallelWords(aLo, bLo, threshold, depth-1, base, sched)
		return nil
	})
	h2 := sched.Submit(func() error {
		z2 = karatsubaParallelWords(aHi, bHi, threshold, depth-1, base, sched)
		return nil
	})
	h1 := sched.Submit(func() error {
		aSum := addWords(aLo, aHi, base)
		bSum := addWords(bLo, bHi, base)
		z1raw = karatsubaParallelWords(aSum, bSum, threshold, depth-1, base, sched)
		return nil
	})
	_ = sched.Join(h0)
	_ = sched.Join(h2)
	_ = sched.Join(h1)

	z1 := subWords(subWords(z1raw, z0, base), z2, base)
	result := make([]uint64, len(a)+len(b))
	addWordsInto(result, z0, 0, base)
	addWordsInto(result, z1, m, base)
	addWordsInto(result, z2, 2*m, base)
	return trimWords(result)
}

func productSign(x, y *AsciiInt) int8 {
	if x.sign == y.sign {
		return 1
	}
	return -1
}

func fromWords(le []uint64, base int, sign int8) *AsciiInt {
	be := toBEBytes(le, uint64(base))
	if len(be) == 0 {
		return Zero(base)
	}
	z := &AsciiInt{sign: sign, base: base, digits: be}
	z.canonicalize()
	return z
}

// MultiplySimple computes x*y with schoolbook multiplication.
func MultiplySimple(x, y *AsciiInt) *AsciiInt {
	requireSameBase(x, y)
	if x.IsZero() || y.IsZero() {
		return Zero(x.base)
	}
	le := mulSimpleWords(toLEWords(x.digits), toLEWords(y.digits), uint64(x.base))
	return fromWords(le, x.base, productSign(x, y))
}

// MultiplyKaratsuba computes x*y with sequential Karatsuba recursion,
// mirroring decint's multiplicative engine at byte-digit granularity.
func MultiplyKaratsuba(x, y *AsciiInt, threshold int) *AsciiInt {
	requireSameBase(x, y)
	if x.IsZero() || y.IsZero() {
		return Zero(x.base)
	}
	le := karatsubaWords(toLEWords(x.digits), toLEWords(y.digits), threshold, uint64(x.base))
	return fromWords(le, x.base, productSign(x, y))
}

// ParallelMultiplyKaratsuba computes x*y, forking the three sub-products
// onto sched down to maxDepth levels of recursion.
func ParallelMultiplyKaratsuba(x, y *AsciiInt, threshold, maxDepth int, sched scheduler.Scheduler) *AsciiInt {
	requireSameBase(x, y)
	if x.IsZero() || y.IsZero() {
		return Zero(x.base)
	}
	le := karatsubaParallelWords(toLEWords(x.digits), toLEWords(y.digits), threshold, maxDepth, uint64(x.base), sched)
	return fromWords(le, x.base, productSign(x, y))
}

// Multiply is the convenience dispatcher mirroring decint.Multiply: it
// picks sequential or parallel Karatsuba per the package-level tuning
// knobs.
func Multiply(x, y *AsciiInt) *AsciiInt {
	threshold := KaratsubaThreshold()
	if sched := ForkJoinPool(); sched != nil {
		n := minInt(x.numDigits(), y.numDigits())
		if n > threshold {
			return ParallelMultiplyKaratsuba(x, y, threshold, MaxDepth(), sched)
		}
	}
	return MultiplyKaratsuba(x, y, threshold)
}
