//go:build dd_accurate

package dd

// Strict renormalization policy. Addition satisfies an IEEE-style error
// bound in terms of the result (Briggs and Kahan's cascade); division
// applies two corrections. Roughly double the flops of the default policy.

const arithPolicy = "accurate"

// Add returns d + n.
func (d Double) Add(n Double) (v Double) {
	s1, s2 := twoSum(d.hi, n.hi)
	t1, t2 := twoSum(d.lo, n.lo)

	s2 += t1
	s1, s2 = quickTwoSum(s1, s2)
	s2 += t2
	s1, s2 = quickTwoSum(s1, s2)
	return Double{hi: s1, lo: s2}
}

// Sub returns d - n.
func (d Double) Sub(n Double) (v Double) {
	s1, s2 := twoDiff(d.hi, n.hi)
	t1, t2 := twoDiff(d.lo, n.lo)

	s2 += t1
	s1, s2 = quickTwoSum(s1, s2)
	s2 += t2
	s1, s2 = quickTwoSum(s1, s2)
	return Double{hi: s1, lo: s2}
}

// Div returns d / n with two correction terms from full-width residuals.
func (d Double) Div(n Double) (v Double) {
	q1 := d.hi / n.hi
	r := d.Sub(n.MulFloat64(q1))

	q2 := r.hi / n.hi
	r = r.Sub(n.MulFloat64(q2))

	q3 := r.hi / n.hi

	hi, lo := quickTwoSum(q1, q2)
	return Double{hi: hi, lo: lo}.AddFloat64(q3)
}
