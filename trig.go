package dd

import "math"

// circularReduce rewrites d as t + j*(pi/2) + k*(pi/16), with |t| <= pi/32,
// j in [-2, 2] and |k| <= 4. The first stage folds out whole periods using
// the two-limb 2*pi; arguments so large that the constant's 106 bits cannot
// locate the period fail reduction, reporting through the domain hook under
// the caller's name.
func circularReduce(d Double, op string) (t Double, j, k int, ok bool) {
	if d.IsNaN() {
		return nan, 0, 0, false
	}

	z := d.Div(TwoPi).Round()
	r := d.Sub(TwoPi.Mul(z))

	// The range checks are written to reject NaN quotients too, which is
	// what an infinite argument reduces to.
	q := math.Floor(r.hi/HalfPi.hi + 0.5)
	t = r.Sub(HalfPi.MulFloat64(q))
	if !(q >= -2 && q <= 2) {
		domainError("dd: " + op + ": cannot reduce modulo pi/2")
		return Double{}, 0, 0, false
	}
	j = int(q)

	q = math.Floor(t.hi/pi16.hi + 0.5)
	t = t.Sub(pi16.MulFloat64(q))
	if !(q >= -4 && q <= 4) {
		domainError("dd: " + op + ": cannot reduce modulo pi/16")
		return Double{}, 0, 0, false
	}
	k = int(q)

	return t, j, k, true
}

// sinTaylor computes sin by Taylor series. Assumes |t| <= pi/32.
func sinTaylor(t Double) Double {
	if t.IsZero() {
		return Double{}
	}

	thresh := 0.5 * math.Abs(t.hi) * Eps
	x := t.Sqr().Neg()
	s, r := t, t
	for i := 0; ; {
		r = r.Mul(x)
		term := r.Mul(invFact[i])
		s = s.Add(term)
		i += 2
		if i >= len(invFact) || math.Abs(term.hi) <= thresh {
			break
		}
	}
	return s
}

// cosTaylor computes cos by Taylor series. Assumes |t| <= pi/32.
func cosTaylor(t Double) Double {
	if t.IsZero() {
		return Double{hi: 1}
	}

	const thresh = 0.5 * Eps
	x := t.Sqr().Neg()
	r := x
	s := x.mulPwr2(0.5).AddFloat64(1)
	for i := 1; ; {
		r = r.Mul(x)
		term := r.Mul(invFact[i])
		s = s.Add(term)
		i += 2
		if i >= len(invFact) || math.Abs(term.hi) <= thresh {
			break
		}
	}
	return s
}

// sincosTaylor computes the sine by series and derives the cosine from it;
// |t| <= pi/32 keeps cos(t) near 1, where the square root is cheapest.
func sincosTaylor(t Double) (sin, cos Double) {
	if t.IsZero() {
		return Double{}, Double{hi: 1}
	}
	sin = sinTaylor(t)
	cos = Double{hi: 1}.Sub(sin.Sqr()).Sqrt()
	return sin, cos
}

// Sin returns the sine of d.
//
// The argument is rewritten as t + j*(pi/2) + k*(pi/16) with |t| <= pi/32,
// which keeps the Taylor series short; tabulated sin/cos(k*pi/16) pairs and
// the angle-addition identities then recover sin(d), with the quadrant j
// contributing sign flips and sin/cos swaps only.
func (d Double) Sin() Double {
	if d.IsZero() {
		return Double{}
	}

	t, j, k, ok := circularReduce(d, "Sin")
	if !ok {
		return nan
	}

	if k == 0 {
		switch j {
		case 0:
			return sinTaylor(t)
		case 1:
			return cosTaylor(t)
		case -1:
			return cosTaylor(t).Neg()
		default:
			return sinTaylor(t).Neg()
		}
	}

	absK := k
	if absK < 0 {
		absK = -absK
	}
	u, v := cosTable[absK-1], sinTable[absK-1]
	sinT, cosT := sincosTaylor(t)

	switch {
	case j == 0 && k > 0:
		return u.Mul(sinT).Add(v.Mul(cosT))
	case j == 0:
		return u.Mul(sinT).Sub(v.Mul(cosT))
	case j == 1 && k > 0:
		return u.Mul(cosT).Sub(v.Mul(sinT))
	case j == 1:
		return u.Mul(cosT).Add(v.Mul(sinT))
	case j == -1 && k > 0:
		return v.Mul(sinT).Sub(u.Mul(cosT))
	case j == -1:
		return u.Mul(cosT).Neg().Sub(v.Mul(sinT))
	case k > 0:
		return u.Mul(sinT).Neg().Sub(v.Mul(cosT))
	default:
		return v.Mul(cosT).Sub(u.Mul(sinT))
	}
}

// Cos returns the cosine of d.
func (d Double) Cos() Double {
	if d.IsZero() {
		return Double{hi: 1}
	}

	t, j, k, ok := circularReduce(d, "Cos")
	if !ok {
		return nan
	}

	if k == 0 {
		switch j {
		case 0:
			return cosTaylor(t)
		case 1:
			return sinTaylor(t).Neg()
		case -1:
			return sinTaylor(t)
		default:
			return cosTaylor(t).Neg()
		}
	}

	absK := k
	if absK < 0 {
		absK = -absK
	}
	u, v := cosTable[absK-1], sinTable[absK-1]
	sinT, cosT := sincosTaylor(t)

	switch {
	case j == 0 && k > 0:
		return u.Mul(cosT).Sub(v.Mul(sinT))
	case j == 0:
		return u.Mul(cosT).Add(v.Mul(sinT))
	case j == 1 && k > 0:
		return u.Mul(sinT).Neg().Sub(v.Mul(cosT))
	case j == 1:
		return v.Mul(cosT).Sub(u.Mul(sinT))
	case j == -1 && k > 0:
		return u.Mul(sinT).Add(v.Mul(cosT))
	case j == -1:
		return u.Mul(sinT).Sub(v.Mul(cosT))
	case k > 0:
		return v.Mul(sinT).Sub(u.Mul(cosT))
	default:
		return u.Mul(cosT).Neg().Sub(v.Mul(sinT))
	}
}

// SinCos returns the sine and cosine of d from a single argument reduction.
// The pair may differ from Sin and Cos by a rounding, as the compositions
// are not identical.
func (d Double) SinCos() (sin, cos Double) {
	if d.IsZero() {
		return Double{}, Double{hi: 1}
	}

	t, j, k, ok := circularReduce(d, "SinCos")
	if !ok {
		return nan, nan
	}

	sinT, cosT := sincosTaylor(t)

	var s, c Double
	if k == 0 {
		s, c = sinT, cosT
	} else {
		absK := k
		if absK < 0 {
			absK = -absK
		}
		u, v := cosTable[absK-1], sinTable[absK-1]
		if k > 0 {
			s = u.Mul(sinT).Add(v.Mul(cosT))
			c = u.Mul(cosT).Sub(v.Mul(sinT))
		} else {
			s = u.Mul(sinT).Sub(v.Mul(cosT))
			c = u.Mul(cosT).Add(v.Mul(sinT))
		}
	}

	switch j {
	case 0:
		return s, c
	case 1:
		return c, s.Neg()
	case -1:
		return c.Neg(), s
	default:
		return s.Neg(), c.Neg()
	}
}

// Tan returns the tangent of d. Near odd multiples of pi/2 the cosine
// underflows rather than vanishing, so the result grows without a domain
// error.
func (d Double) Tan() Double {
	s, c := d.SinCos()
	return s.Div(c)
}

// Atan2 returns the arc tangent of y/x, using the signs of both to place
// the angle in the correct quadrant. Atan2(0, 0) is a domain error.
//
// The arctan Taylor series converges too slowly to be useful here. Instead,
// with x and y normalized so that x*x + y*y = 1, Newton's iteration solves
// sin(z) = y or cos(z) = x from a native-precision seed:
//
//	z' = z + (y - sin(z)) / cos(z)
//	z' = z - (x - cos(z)) / sin(z)
//
// choosing whichever form has the larger denominator.
func Atan2(y, x Double) Double {
	if x.IsNaN() || y.IsNaN() {
		return nan
	}
	if x.IsZero() {
		if y.IsZero() {
			return domainError("dd: Atan2: both arguments zero")
		}
		if y.hi > 0 {
			return HalfPi
		}
		return HalfPi.Neg()
	} else if y.IsZero() {
		if x.hi > 0 {
			return Double{}
		}
		return Pi
	}

	if x.Equal(y) {
		if y.hi > 0 {
			return QuarterPi
		}
		return ThreeQuarterPi.Neg()
	}
	if x.Equal(y.Neg()) {
		if y.hi > 0 {
			return ThreeQuarterPi
		}
		return QuarterPi.Neg()
	}

	r := x.Sqr().Add(y.Sqr()).Sqrt()
	xx := x.Div(r)
	yy := y.Div(r)

	z := DoubleFromFloat64(math.Atan2(y.hi, x.hi))
	sinZ, cosZ := z.SinCos()
	if math.Abs(xx.hi) > math.Abs(yy.hi) {
		z = z.Add(yy.Sub(sinZ).Div(cosZ))
	} else {
		z = z.Sub(xx.Sub(cosZ).Div(sinZ))
	}
	return z
}

// Atan returns the arc tangent of d.
func (d Double) Atan() Double {
	return Atan2(d, Double{hi: 1})
}

// Asin returns the arc sine of d; arguments outside [-1, 1] are a domain
// error.
func (d Double) Asin() Double {
	abs := d.Abs()
	if abs.CmpFloat64(1) > 0 {
		return domainError("dd: Asin: argument out of domain")
	}
	if abs.IsOne() {
		if d.hi > 0 {
			return HalfPi
		}
		return HalfPi.Neg()
	}
	return Atan2(d, Double{hi: 1}.Sub(d.Sqr()).Sqrt())
}

// Acos returns the arc cosine of d; arguments outside [-1, 1] are a domain
// error.
func (d Double) Acos() Double {
	abs := d.Abs()
	if abs.CmpFloat64(1) > 0 {
		return domainError("dd: Acos: argument out of domain")
	}
	if abs.IsOne() {
		if d.hi > 0 {
			return Double{}
		}
		return Pi
	}
	return Atan2(Double{hi: 1}.Sub(d.Sqr()).Sqrt(), d)
}
