package decint

import "github.com/philippag/compint/decint/scheduler"

// Pow computes base^exp by repeated squaring using MultiplyKaratsuba at
// each step. Negative exponents are out of scope
// and panic,
// since exp is a machine int the caller controls directly and a negative
// value has no integer result.
func Pow(base *DecInt, exp int) *DecInt {
	return powWith(base, exp, func(x, y *DecInt) *DecInt {
		return MultiplyKaratsuba(x, y, KaratsubaThreshold())
	})
}

// ParallelPow computes base^exp like Pow, but squares with
// ParallelMultiplyKaratsuba against sched at every step.
func ParallelPow(base *DecInt, exp int, sched scheduler.Scheduler) *DecInt {
	threshold, maxDepth := KaratsubaThreshold(), MaxDepth()
	return powWith(base, exp, func(x, y *DecInt) *DecInt {
		return ParallelMultiplyKaratsuba(x, y, threshold, maxDepth, sched)
	})
}

func powWith(base *DecInt, exp int, mul func(x, y *DecInt) *DecInt) *DecInt {
	if exp < 0 {
		panic("decint: Pow does not support negative exponents")
	}
	result := FromInt64(1)
	if exp == 0 {
		return result
	}
	b := base.Copy()
	for exp > 0 {
		if exp&1 == 1 {
			result = mul(result, b)
		}
		exp >>= 1
		if exp > 0 {
			b = mul(b, b)
		}
	}
	return result
}
