package dd

import "math"

// ErrFunc, if set, is called with a diagnostic message whenever an operation
// is handed an argument outside its domain, just before the operation returns
// the canonical NaN. Install it before any other goroutine uses the package;
// it is read without synchronization.
var ErrFunc func(msg string)

func domainError(msg string) Double {
	if ErrFunc != nil {
		ErrFunc(msg)
	}
	return nan
}

// Sqrt returns the square root of d.
//
// Karp's trick: if x approximates 1/sqrt(d), then
//
//	sqrt(d) ~ d*x + (d - (d*x)^2) * (x/2)
//
// which is accurate to twice the accuracy of x, and the correction term
// only needs half precision.
func (d Double) Sqrt() Double {
	if d.IsZero() {
		return Double{}
	}
	if d.hi < 0 {
		return domainError("dd: Sqrt: negative argument")
	}
	x := 1.0 / math.Sqrt(d.hi)
	ax := d.hi * x
	return DoubleFromSum(ax, d.Sub(DoubleFromSqr(ax)).hi*(x*0.5))
}

// PowInt returns d raised to the integer power n, by binary exponentiation
// on |n|; for negative n the result is inverted. PowInt(0) on a zero d is a
// domain error.
func (d Double) PowInt(n int) Double {
	if n == 0 {
		if d.IsZero() {
			return domainError("dd: PowInt: zero to the power of zero")
		}
		return Double{hi: 1}
	}

	r, s := d, Double{hi: 1}
	un := uint(n)
	if n < 0 {
		un = -un
	}
	if un > 1 {
		for un > 0 {
			if un&1 == 1 {
				s = s.Mul(r)
			}
			un >>= 1
			if un > 0 {
				r = r.Sqr()
			}
		}
	} else {
		s = r
	}

	if n < 0 {
		return s.Inv()
	}
	return s
}

// Root returns the nth root of d. n must be positive, and d must not be
// negative when n is even.
//
// Newton's iteration for f(x) = x^(-n) - d,
//
//	x' = x + x * (1 - d * x^n) / n
//
// converges quadratically to d^(-1/n), so a native-precision seed needs a
// single step before the reciprocal is taken.
func (d Double) Root(n int) Double {
	if n <= 0 {
		return domainError("dd: Root: non-positive n")
	}
	if n%2 == 0 && d.hi < 0 {
		return domainError("dd: Root: even root of negative argument")
	}
	if n == 1 {
		return d
	}
	if n == 2 {
		return d.Sqrt()
	}
	if d.IsZero() {
		return Double{}
	}

	// d^(-1/n) = exp(-log(d)/n), which seeds x from native parts alone.
	r := d.Abs()
	x := DoubleFromFloat64(math.Exp(-math.Log(r.hi) / float64(n)))

	x = x.Add(x.Mul(Double{hi: 1}.Sub(r.Mul(x.PowInt(n))).DivFloat64(float64(n))))
	if d.hi < 0 {
		x = x.Neg()
	}
	return x.Inv()
}

// Pow returns d**n, computed as Exp(n * Log(d)); the domain follows Log.
func (d Double) Pow(n Double) Double {
	return n.Mul(d.Log()).Exp()
}
