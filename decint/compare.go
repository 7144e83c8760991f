package decint

// cmpMagnitude compares |a| and |b|: by total digit count first, then
// lexicographically by limbs.
func cmpMagnitude(a, b *DecInt) int {
	da, db := a.digitCount(), b.digitCount()
	if da != db {
		if da < db {
			return -1
		}
		return 1
	}
	na, nb := a.numLimbs(), b.numLimbs()
	// equal digit counts imply equal limb counts, since firstDigitLength
	// and limb count determine each other once the high-limb width matches.
	for i := 0; i < na && i < nb; i++ {
		av, bv := a.buf.Get(i), b.buf.Get(i)
		if av != bv {
			if av < bv {
				return -1
			}
			return 1
		}
	}
	return 0
}

// Cmp compares z and other and returns -1, 0, or +1.
// Zero compares equal regardless of stored sign.
func (z *DecInt) Cmp(other *DecInt) int {
	zZero, oZero := z.IsZero(), other.IsZero()
	switch {
	case zZero && oZero:
		return 0
	case zZero:
		if other.sign < 0 {
			return 1
		}
		return -1
	case oZero:
		if z.sign < 0 {
			return -1
		}
		return 1
	}
	if z.sign != other.sign {
		if z.sign < 0 {
			return -1
		}
		return 1
	}
	c := cmpMagnitude(z, other)
	if z.sign < 0 {
		return -c
	}
	return c
}

// Equal reports whether z and other represent the same integer.
func (z *DecInt) Equal(other *DecInt) bool {
	return z.Cmp(other) == 0
}
