package dd

import (
	"math"
	"testing"

	"github.com/shabbyrobe/golib/assert"
	"gonum.org/v1/gonum/floats/scalar"
)

func TestDoubleSinh(t *testing.T) {
	tt := assert.WrapTB(t)

	tt.MustAssert(Double{}.Sinh().IsZero())

	// 0.01 takes the series, 3 takes the exponential form.
	tt.MustOK(checkCloseDouble(dds("0.01").Sinh(),
		bigs("0.01000016666750000198412973986141173801764156013523"), 16))
	tt.MustOK(checkCloseDouble(d64(3).Sinh(),
		bigs("10.017874927409901898974593619465828060178104123183"), 16))
	tt.MustOK(checkCloseDouble(d64(-3).Sinh(),
		bigs("-10.017874927409901898974593619465828060178104123183"), 16))

	tt.MustAssert(NaN().Sinh().IsNaN())
}

func TestDoubleCosh(t *testing.T) {
	tt := assert.WrapTB(t)

	tt.MustAssert(Double{}.Cosh().EqualFloat64(1))
	tt.MustOK(checkCloseDouble(dds("0.01").Cosh(),
		bigs("1.0000500004166680555580357170414482957897206413890"), 16))
	tt.MustOK(checkCloseDouble(d64(3).Cosh(),
		bigs("10.067661995777765841953936035115889836809803715371"), 16))
	tt.MustOK(checkCloseDouble(d64(-3).Cosh(),
		bigs("10.067661995777765841953936035115889836809803715371"), 16))

	tt.MustAssert(NaN().Cosh().IsNaN())
}

func TestDoubleSinhCosh(t *testing.T) {
	tt := assert.WrapTB(t)

	s, c := Double{}.SinhCosh()
	tt.MustAssert(s.IsZero())
	tt.MustAssert(c.EqualFloat64(1))

	// Either side of the series/exponential crossover, the pair must agree
	// with the standalone functions and satisfy cosh^2 - sinh^2 = 1.
	for _, x := range []Double{
		dds("0.001"), dds("0.04"), dds("0.05"), dds("0.06"),
		dds("0.3"), d64(1), d64(3), d64(-2),
	} {
		s, c := x.SinhCosh()

		tt.MustAssert(DifferenceDouble(s, x.Sinh()).Div(c).CmpFloat64(32*Eps) <= 0,
			"sinh(%s)", x)
		tt.MustAssert(DifferenceDouble(c, x.Cosh()).Div(c).CmpFloat64(32*Eps) <= 0,
			"cosh(%s)", x)

		one := c.Sqr().Sub(s.Sqr())
		tol := 64 * Eps * c.hi * c.hi
		tt.MustAssert(DifferenceDouble(one, d64(1)).CmpFloat64(tol) <= 0,
			"cosh^2-sinh^2 at %s: %s", x, one)
	}
}

func TestDoubleTanh(t *testing.T) {
	tt := assert.WrapTB(t)

	tt.MustAssert(Double{}.Tanh().IsZero())
	tt.MustOK(checkCloseDouble(d64(3).Tanh(),
		bigs("0.99505475368673045133188018525548847509781385470028"), 16))
	tt.MustOK(checkCloseDouble(d64(-3).Tanh(),
		bigs("-0.99505475368673045133188018525548847509781385470028"), 16))
	tt.MustOK(checkCloseDouble(dds("0.02").Tanh(),
		bigs("0.019997333759930931830283869015006502751694809153093"), 16))

	// At 20 the gap below one is 2*e^-40, still wide enough for the tail
	// limb to hold, so the result stays strictly inside (-1, 1).
	tt.MustAssert(d64(20).Tanh().CmpFloat64(1) < 0)
	tt.MustAssert(d64(20).Tanh().CmpFloat64(0.999999) > 0)
	tt.MustAssert(d64(-20).Tanh().CmpFloat64(-1) > 0)

	// By 50 the two exponentials agree in every bit the pair can hold and
	// the quotient collapses to exactly one.
	tt.MustEqual(0, d64(50).Tanh().CmpFloat64(1))
	tt.MustEqual(0, d64(-50).Tanh().CmpFloat64(-1))

	tt.MustAssert(NaN().Tanh().IsNaN())
}

func TestDoubleHypInverse(t *testing.T) {
	tt := assert.WrapTB(t)

	tt.MustAssert(Double{}.Asinh().IsZero())
	tt.MustAssert(d64(1).Acosh().IsZero())
	tt.MustAssert(Double{}.Atanh().IsZero())

	tt.MustOK(checkCloseDouble(d64(1).Asinh(),
		bigs("0.88137358701954302523260932497979230902816032826162"), 16))
	tt.MustOK(checkCloseDouble(d64(2).Acosh(),
		bigs("1.3169578969248167086250463473079684440269819714675"), 16))
	tt.MustOK(checkCloseDouble(dds("0.5").Atanh(),
		bigs("0.54930614433405484569762261846126285232374527891135"), 16))

	tt.MustAssert(dds("0.5").Acosh().IsNaN())
	tt.MustAssert(d64(1).Atanh().IsNaN())
	tt.MustAssert(d64(-1).Atanh().IsNaN())
	tt.MustAssert(d64(2).Atanh().IsNaN())
	tt.MustAssert(NaN().Asinh().IsNaN())
	tt.MustAssert(NaN().Atanh().IsNaN())
}

// Round-trip error is dominated by cancellation inside the inverses: asinh
// forms d + sqrt(d^2+1), which for negative d the size of sinh(4) wipes out
// around eleven bits, and atanh amplifies its argument's error by cosh^2.
// The bounds are looser than the direct comparisons but still pin down 27
// digits.
func TestDoubleHypRoundTrip(t *testing.T) {
	tt := assert.WrapTB(t)

	for i := 0; i < 2000; i++ {
		x := DoubleFromFloat64(globalRNG.Float64()*8 - 4)
		if x.IsZero() {
			continue
		}

		r := x.Sinh().Asinh()
		tt.MustAssert(DifferenceDouble(r, x).Div(x.Abs()).CmpFloat64(8192*Eps) <= 0,
			"asinh(sinh(%s)) = %s", x, r)
	}

	// Atanh amplifies by cosh^2 of the argument, so its sweep stays closer
	// to the origin.
	for i := 0; i < 2000; i++ {
		x := DoubleFromFloat64(globalRNG.Float64()*4 - 2)
		if x.IsZero() {
			continue
		}
		r := x.Tanh().Atanh()
		tt.MustAssert(DifferenceDouble(r, x).Div(x.Abs()).CmpFloat64(512*Eps) <= 0,
			"atanh(tanh(%s)) = %s", x, r)
	}

	for i := 0; i < 2000; i++ {
		x := DoubleFromFloat64(0.5 + globalRNG.Float64()*2.5)
		r := x.Cosh().Acosh()
		tt.MustAssert(DifferenceDouble(r, x).Div(x).CmpFloat64(256*Eps) <= 0,
			"acosh(cosh(%s)) = %s", x, r)
	}
}

func TestHypDomainErrors(t *testing.T) {
	tt := assert.WrapTB(t)

	var msgs []string
	ErrFunc = func(msg string) { msgs = append(msgs, msg) }
	defer func() { ErrFunc = nil }()

	tt.MustAssert(dds("0.5").Acosh().IsNaN())
	tt.MustAssert(d64(1).Atanh().IsNaN())

	tt.MustEqual([]string{
		"dd: Acosh: argument out of domain",
		"dd: Atanh: argument out of domain",
	}, msgs)

	n := len(msgs)
	tt.MustAssert(NaN().Acosh().IsNaN())
	tt.MustAssert(NaN().Atanh().IsNaN())
	tt.MustEqual(n, len(msgs))
}

func TestDoubleHypFloat64Agreement(t *testing.T) {
	tt := assert.WrapTB(t)

	for i := 0; i < 2000; i++ {
		x := globalRNG.Float64()*10 - 5
		d := DoubleFromFloat64(x)
		tt.MustAssert(scalar.EqualWithinULP(d.Sinh().Float64(), math.Sinh(x), 8),
			"sinh(%v)", x)
		tt.MustAssert(scalar.EqualWithinULP(d.Cosh().Float64(), math.Cosh(x), 8),
			"cosh(%v)", x)
		tt.MustAssert(scalar.EqualWithinULP(d.Tanh().Float64(), math.Tanh(x), 8),
			"tanh(%v)", x)
	}

	// The inverses compress toward zero, where ulp counting across two
	// implementations turns noisy; a mixed absolute/relative bound fits.
	for i := 0; i < 2000; i++ {
		x := globalRNG.Float64()*10 - 5
		d := DoubleFromFloat64(x)
		tt.MustAssert(scalar.EqualWithinAbsOrRel(d.Asinh().Float64(), math.Asinh(x), 1e-30, 1e-13),
			"asinh(%v)", x)

		cx := 1 + globalRNG.Float64()*9
		cd := DoubleFromFloat64(cx)
		tt.MustAssert(scalar.EqualWithinAbsOrRel(cd.Acosh().Float64(), math.Acosh(cx), 1e-30, 1e-13),
			"acosh(%v)", cx)

		ax := (globalRNG.Float64()*2 - 1) * 0.999
		ad := DoubleFromFloat64(ax)
		tt.MustAssert(scalar.EqualWithinAbsOrRel(ad.Atanh().Float64(), math.Atanh(ax), 1e-30, 1e-13),
			"atanh(%v)", ax)
	}
}

func BenchmarkDoubleSinh(b *testing.B) {
	for i := 0; i < b.N; i++ {
		BenchDoubleResult = BenchDouble2.Sinh()
	}
}

func BenchmarkDoubleTanh(b *testing.B) {
	for i := 0; i < b.N; i++ {
		BenchDoubleResult = BenchDouble2.Tanh()
	}
}

func BenchmarkDoubleAsinh(b *testing.B) {
	for i := 0; i < b.N; i++ {
		BenchDoubleResult = BenchDouble2.Asinh()
	}
}
