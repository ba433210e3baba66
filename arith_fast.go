//go:build !dd_accurate

package dd

// Fast renormalization policy, the default. Addition folds both tail limbs
// into a single error term, so its error bound is in terms of |d|+|n|
// rather than |d+n|; division applies one correction. The dd_accurate tag
// swaps in the strict variants.

const arithPolicy = "fast"

// Add returns d + n.
func (d Double) Add(n Double) (v Double) {
	s, e := twoSum(d.hi, n.hi)
	e += d.lo + n.lo
	s, e = quickTwoSum(s, e)
	return Double{hi: s, lo: e}
}

// Sub returns d - n.
func (d Double) Sub(n Double) (v Double) {
	s, e := twoDiff(d.hi, n.hi)
	e += d.lo
	e -= n.lo
	s, e = quickTwoSum(s, e)
	return Double{hi: s, lo: e}
}

// Div returns d / n to working precision: an approximate quotient from the
// leading limbs plus one correction from the full residual.
func (d Double) Div(n Double) (v Double) {
	q1 := d.hi / n.hi

	r := n.MulFloat64(q1)
	s1, s2 := twoDiff(d.hi, r.hi)
	s2 -= r.lo
	s2 += d.lo

	q2 := (s1 + s2) / n.hi

	hi, lo := quickTwoSum(q1, q2)
	return Double{hi: hi, lo: lo}
}
