package dd

import "math"

// Arithmetic shared by both renormalization policies. Add, Sub and Div are
// policy-dependent and live in arith_fast.go / arith_accurate.go.

// Neg returns -d. Exact.
func (d Double) Neg() Double {
	return Double{hi: -d.hi, lo: -d.lo}
}

// Abs returns the absolute value of d.
func (d Double) Abs() Double {
	if d.hi < 0 {
		return d.Neg()
	}
	return d
}

// AddFloat64 returns d + f using the narrow-operand kernel, which is
// cheaper than promoting f to a Double and adding wide.
func (d Double) AddFloat64(f float64) (v Double) {
	s1, s2 := twoSum(d.hi, f)
	s2 += d.lo
	s1, s2 = quickTwoSum(s1, s2)
	return Double{hi: s1, lo: s2}
}

// SubFloat64 returns d - f using the narrow-operand kernel.
func (d Double) SubFloat64(f float64) (v Double) {
	s1, s2 := twoDiff(d.hi, f)
	s2 += d.lo
	s1, s2 = quickTwoSum(s1, s2)
	return Double{hi: s1, lo: s2}
}

// Mul returns d * n. One exact product of the leading limbs; the cross
// products land in the error term.
func (d Double) Mul(n Double) (v Double) {
	p1, p2 := twoProd(d.hi, n.hi)
	p2 += d.hi*n.lo + d.lo*n.hi
	p1, p2 = quickTwoSum(p1, p2)
	return Double{hi: p1, lo: p2}
}

// MulFloat64 returns d * f using the narrow-operand kernel.
func (d Double) MulFloat64(f float64) (v Double) {
	p1, p2 := twoProd(d.hi, f)
	p2 += d.lo * f
	p1, p2 = quickTwoSum(p1, p2)
	return Double{hi: p1, lo: p2}
}

// Sqr returns d squared, slightly cheaper than d.Mul(d).
func (d Double) Sqr() (v Double) {
	p1, p2 := twoSqr(d.hi)
	p2 += 2.0 * d.hi * d.lo
	p2 += d.lo * d.lo
	s1, s2 := quickTwoSum(p1, p2)
	return Double{hi: s1, lo: s2}
}

// DivFloat64 returns d / f using the narrow-operand kernel: one approximate
// quotient corrected by the exact residual.
func (d Double) DivFloat64(f float64) (v Double) {
	q1 := d.hi / f

	p1, p2 := twoProd(q1, f)
	s, e := twoDiff(d.hi, p1)
	e += d.lo
	e -= p2

	q2 := (s + e) / f

	hi, lo := quickTwoSum(q1, q2)
	return Double{hi: hi, lo: lo}
}

// Inv returns 1 / d.
func (d Double) Inv() Double {
	return Double{hi: 1}.Div(d)
}

// Ldexp returns d * 2^exp. Exact short of overflow and underflow.
func (d Double) Ldexp(exp int) Double {
	return Double{hi: math.Ldexp(d.hi, exp), lo: math.Ldexp(d.lo, exp)}
}

// mulPwr2 scales both limbs by b, which must be an exact power of two.
func (d Double) mulPwr2(b float64) Double {
	return Double{hi: d.hi * b, lo: d.lo * b}
}
