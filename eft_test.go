package dd

import (
	"fmt"
	"math"
	"math/big"
	"testing"

	"github.com/shabbyrobe/golib/assert"
)

// The whole package rests on the transforms in eft.go being error free:
// the rounded result plus the reported error must reproduce the exact
// answer, bit for bit, which big.Float can verify directly.

func exactSum(a, b, s, err float64) bool {
	want := new(big.Float).SetPrec(exactPrec).SetFloat64(a)
	want.Add(want, big.NewFloat(b))
	got := new(big.Float).SetPrec(exactPrec).SetFloat64(s)
	got.Add(got, big.NewFloat(err))
	return want.Cmp(got) == 0
}

func exactDiff(a, b, s, err float64) bool {
	want := new(big.Float).SetPrec(exactPrec).SetFloat64(a)
	want.Sub(want, big.NewFloat(b))
	got := new(big.Float).SetPrec(exactPrec).SetFloat64(s)
	got.Add(got, big.NewFloat(err))
	return want.Cmp(got) == 0
}

func exactProd(a, b, p, err float64) bool {
	want := new(big.Float).SetPrec(exactPrec).SetFloat64(a)
	want.Mul(want, big.NewFloat(b))
	got := new(big.Float).SetPrec(exactPrec).SetFloat64(p)
	got.Add(got, big.NewFloat(err))
	return want.Cmp(got) == 0
}

func randFloat(expLim int) float64 {
	return math.Ldexp(globalRNG.Float64()*2-1, globalRNG.Intn(2*expLim+1)-expLim)
}

func TestTwoSum(t *testing.T) {
	tt := assert.WrapTB(t)

	for idx, tc := range [][2]float64{
		{1, 1e-20},
		{1e-20, 1},
		{0.1, 0.2},
		{1, -1},
		{0, 0},
		{math.Ldexp(1, 600), math.Ldexp(1, -600)},
		{math.MaxFloat64 / 4, -math.MaxFloat64 / 8},
	} {
		s, e := twoSum(tc[0], tc[1])
		tt.MustAssert(exactSum(tc[0], tc[1], s, e), "case %d: %v + %v -> (%v, %v)", idx, tc[0], tc[1], s, e)
	}

	for i := 0; i < 2000; i++ {
		a, b := randFloat(600), randFloat(600)
		s, e := twoSum(a, b)
		tt.MustAssert(exactSum(a, b, s, e), "%v + %v -> (%v, %v)", a, b, s, e)
	}
}

func TestTwoDiff(t *testing.T) {
	tt := assert.WrapTB(t)

	for idx, tc := range [][2]float64{
		{1, 1e-20},
		{1e-20, 1},
		{0.3, 0.1},
		{1, 1},
		{1, math.Nextafter(1, 2)},
	} {
		s, e := twoDiff(tc[0], tc[1])
		tt.MustAssert(exactDiff(tc[0], tc[1], s, e), "case %d: %v - %v -> (%v, %v)", idx, tc[0], tc[1], s, e)
	}

	for i := 0; i < 2000; i++ {
		a, b := randFloat(600), randFloat(600)
		s, e := twoDiff(a, b)
		tt.MustAssert(exactDiff(a, b, s, e), "%v - %v -> (%v, %v)", a, b, s, e)
	}
}

func TestQuickTwoSum(t *testing.T) {
	tt := assert.WrapTB(t)

	for i := 0; i < 2000; i++ {
		a, b := randFloat(600), randFloat(600)
		if math.Abs(a) < math.Abs(b) {
			a, b = b, a
		}
		s, e := quickTwoSum(a, b)
		tt.MustAssert(exactSum(a, b, s, e), "%v + %v -> (%v, %v)", a, b, s, e)

		d, de := quickTwoDiff(a, b)
		tt.MustAssert(exactDiff(a, b, d, de), "%v - %v -> (%v, %v)", a, b, d, de)
	}
}

func TestSplit(t *testing.T) {
	tt := assert.WrapTB(t)

	check := func(a float64) {
		hi, lo := split(a)
		sum := new(big.Float).SetPrec(exactPrec).SetFloat64(hi)
		sum.Add(sum, big.NewFloat(lo))
		tt.MustAssert(sum.Cmp(big.NewFloat(a)) == 0, "split(%v) -> (%v, %v)", a, hi, lo)
		tt.MustAssert(math.Abs(lo) <= math.Abs(hi) || a == 0, "split(%v) unbalanced: (%v, %v)", a, hi, lo)
	}

	check(0)
	check(1)
	check(-math.Pi)
	check(splitter)
	check(splitThresh)

	// Beyond the threshold the 2^28 rescale must still be exact.
	check(1e300)
	check(-1.7e308)

	for i := 0; i < 2000; i++ {
		check(randFloat(995))
	}
}

func TestTwoProd(t *testing.T) {
	tt := assert.WrapTB(t)

	for idx, tc := range [][2]float64{
		{0.1, 0.3},
		{math.Pi, math.E},
		{1.0000000000000002, 0.9999999999999999},
		{1e300, 1e-300},
		{-7, 2.5e-10},
	} {
		p, e := twoProd(tc[0], tc[1])
		tt.MustAssert(exactProd(tc[0], tc[1], p, e), "case %d: %v * %v -> (%v, %v)", idx, tc[0], tc[1], p, e)
	}

	for i := 0; i < 2000; i++ {
		a, b := randFloat(400), randFloat(400)

		p, e := twoProd(a, b)
		tt.MustAssert(exactProd(a, b, p, e), "%v * %v -> (%v, %v)", a, b, p, e)

		sp, se := twoSqr(a)
		tt.MustAssert(exactProd(a, a, sp, se), "%v squared -> (%v, %v)", a, sp, se)
	}
}

// The FMA and Dekker split forms must be interchangeable: same product,
// same error term.
func TestTwoProdImplsAgree(t *testing.T) {
	tt := assert.WrapTB(t)

	checkProd := func(a, b float64) {
		tt.Helper()
		pf, ef := twoProdFMA(a, b)
		ps, es := twoProdSplit(a, b)
		tt.MustEqual(pf, ps)
		tt.MustEqual(ef, es, "twoProd error mismatch for %v * %v: fma %v, split %v", a, b, ef, es)
	}

	// Operands past the split threshold exercise the 2^28 rescale; as long
	// as the product itself is finite it must still match the FMA form.
	checkProd(math.Ldexp(1.5, 1000), math.Ldexp(1, -900))
	checkProd(-math.Ldexp(1.9999999999999998, 1020), math.Ldexp(1.3, -1000))
	checkProd(splitThresh, math.Ldexp(1, -400))

	for i := 0; i < 2000; i++ {
		a, b := randFloat(400), randFloat(400)
		checkProd(a, b)

		qf, eqf := twoSqrFMA(a)
		qs, eqs := twoSqrSplit(a)
		tt.MustEqual(qf, qs)
		tt.MustEqual(eqf, eqs, "twoSqr error mismatch for %v: fma %v, split %v", a, eqf, eqs)
	}
}

func TestNoFMAEnv(t *testing.T) {
	for _, tc := range []struct {
		val string
		out bool
	}{
		{"", false},
		{"0", false},
		{"false", false},
		{"1", true},
		{"true", true},
		{"banana", true},
	} {
		t.Run(fmt.Sprintf("%q=%v", tc.val, tc.out), func(t *testing.T) {
			tt := assert.WrapTB(t)
			t.Setenv("DD_NO_FMA", tc.val)
			tt.MustEqual(tc.out, noFMAEnv())
		})
	}
}
