package dd

import "math"

// Exp returns e**d.
//
// The argument is reduced using exp(k*r + m*log(2)) = 2^m * exp(r)^k with
// k = 512, which brings |k*r| under log(2)/2 and |r| small enough that a
// short Taylor series converges; the reduction is undone by nine repeated
// squarings and an exact 2^m scale.
func (d Double) Exp() Double {
	const invK = 1.0 / 512.0

	if d.hi <= -709.0 {
		return Double{}
	}
	if d.hi >= 709.0 {
		return posInf
	}
	if d.IsZero() {
		return Double{hi: 1}
	}
	if d.IsOne() {
		return E
	}

	m := math.Floor(d.hi/Ln2.hi + 0.5)
	r := d.Sub(Ln2.MulFloat64(m)).mulPwr2(invK)

	p := r.Sqr()
	s := r.Add(p.mulPwr2(0.5))
	p = p.Mul(r)
	t := p.Mul(invFact[0])
	for i := 0; ; {
		s = s.Add(t)
		p = p.Mul(r)
		i++
		t = p.Mul(invFact[i])
		if math.Abs(t.hi) <= invK*Eps || i >= 5 {
			break
		}
	}
	s = s.Add(t)

	// exp(r)^512 by nine squarings.
	for i := 0; i < 9; i++ {
		s = s.mulPwr2(2).Add(s.Sqr())
	}
	s = s.AddFloat64(1)

	return s.Ldexp(int(m))
}

// Log returns the natural logarithm of d. Non-positive arguments are a
// domain error.
//
// The Taylor series for log converges far more slowly than the one for exp,
// so Newton's iteration is applied to f(x) = exp(x) - d instead:
//
//	x' = x + d * exp(-x) - 1
//
// One step from a native-precision seed reaches full precision.
func (d Double) Log() Double {
	if d.IsOne() {
		return Double{}
	}
	if d.hi <= 0 {
		return domainError("dd: Log: non-positive argument")
	}

	x := DoubleFromFloat64(math.Log(d.hi))
	return x.Add(d.Mul(x.Neg().Exp())).SubFloat64(1)
}

// Log10 returns the base-10 logarithm of d; the domain follows Log.
func (d Double) Log10() Double {
	return d.Log().Div(Ln10)
}
