package dd

import "math"

// Sinh returns the hyperbolic sine of d.
//
// Above |d| = 0.05 the exp-based closed form is used; below it the two
// exponentials nearly cancel, so a Taylor series on sinh itself takes over.
func (d Double) Sinh() Double {
	if d.IsZero() {
		return Double{}
	}

	if math.Abs(d.hi) > 0.05 {
		ea := d.Exp()
		return ea.Sub(ea.Inv()).mulPwr2(0.5)
	}

	s, t := d, d
	r := d.Sqr()
	m := 1.0
	thresh := math.Abs(d.hi * Eps)
	for {
		m += 2
		t = t.Mul(r)
		t = t.DivFloat64((m - 1) * m)
		s = s.Add(t)
		if t.Abs().CmpFloat64(thresh) <= 0 {
			break
		}
	}
	return s
}

// Cosh returns the hyperbolic cosine of d.
func (d Double) Cosh() Double {
	if d.IsZero() {
		return Double{hi: 1}
	}
	ea := d.Exp()
	return ea.Add(ea.Inv()).mulPwr2(0.5)
}

// SinhCosh returns the hyperbolic sine and cosine of d, sharing a single
// exponential on the large-argument path.
func (d Double) SinhCosh() (sinh, cosh Double) {
	if math.Abs(d.hi) <= 0.05 {
		sinh = d.Sinh()
		cosh = sinh.Sqr().AddFloat64(1).Sqrt()
		return sinh, cosh
	}
	ea := d.Exp()
	invEa := ea.Inv()
	sinh = ea.Sub(invEa).mulPwr2(0.5)
	cosh = ea.Add(invEa).mulPwr2(0.5)
	return sinh, cosh
}

// Tanh returns the hyperbolic tangent of d.
func (d Double) Tanh() Double {
	if d.IsZero() {
		return Double{}
	}

	if math.Abs(d.hi) > 0.05 {
		ea := d.Exp()
		invEa := ea.Inv()
		return ea.Sub(invEa).Div(ea.Add(invEa))
	}
	s := d.Sinh()
	c := s.Sqr().AddFloat64(1).Sqrt()
	return s.Div(c)
}

// Asinh returns the inverse hyperbolic sine of d.
func (d Double) Asinh() Double {
	return d.Add(d.Sqr().AddFloat64(1).Sqrt()).Log()
}

// Acosh returns the inverse hyperbolic cosine of d; arguments below 1 are a
// domain error.
func (d Double) Acosh() Double {
	if d.CmpFloat64(1) < 0 {
		return domainError("dd: Acosh: argument out of domain")
	}
	return d.Add(d.Sqr().SubFloat64(1).Sqrt()).Log()
}

// Atanh returns the inverse hyperbolic tangent of d; arguments with
// magnitude 1 or more are a domain error.
func (d Double) Atanh() Double {
	if d.IsNaN() {
		return nan
	}
	if d.Abs().CmpFloat64(1) >= 0 {
		return domainError("dd: Atanh: argument out of domain")
	}
	return d.AddFloat64(1).Div(Double{hi: 1}.Sub(d)).Log().mulPwr2(0.5)
}
