package dd

import (
	"math"
	"math/big"
	"testing"
)

var (
	BenchBigFloatResult *big.Float
	BenchBoolResult     bool
	BenchDoubleResult   Double
	BenchFloatResult    float64
	BenchIntResult      int
	BenchStringResult   string

	BenchFloat641, BenchFloat642 float64 = 3.1415926535897931, 2.7182818284590451

	BenchDouble1, BenchDouble2 = Pi, E
)

func BenchmarkFloat64Mul(b *testing.B) {
	for i := 0; i < b.N; i++ {
		BenchFloatResult = BenchFloat641 * BenchFloat642
	}
}

func BenchmarkFloat64Add(b *testing.B) {
	for i := 0; i < b.N; i++ {
		BenchFloatResult = BenchFloat641 + BenchFloat642
	}
}

func BenchmarkFloat64Div(b *testing.B) {
	for i := 0; i < b.N; i++ {
		BenchFloatResult = BenchFloat641 / BenchFloat642
	}
}

func BenchmarkFloat64Sqrt(b *testing.B) {
	for i := 0; i < b.N; i++ {
		BenchFloatResult = math.Sqrt(BenchFloat641)
	}
}

func BenchmarkFloat64Equal(b *testing.B) {
	for i := 0; i < b.N; i++ {
		BenchBoolResult = BenchFloat641 == BenchFloat642
	}
}

func BenchmarkBigFloatMul(b *testing.B) {
	var v1, v2 big.Float
	v1.SetPrec(106).SetFloat64(BenchFloat641)
	v2.SetPrec(106).SetFloat64(BenchFloat642)

	for i := 0; i < b.N; i++ {
		var dest big.Float
		dest.Mul(&v1, &v2)
	}
}

func BenchmarkBigFloatAdd(b *testing.B) {
	var v1, v2 big.Float
	v1.SetPrec(106).SetFloat64(BenchFloat641)
	v2.SetPrec(106).SetFloat64(BenchFloat642)

	for i := 0; i < b.N; i++ {
		var dest big.Float
		dest.Add(&v1, &v2)
	}
}

func BenchmarkBigFloatDiv(b *testing.B) {
	v1 := new(big.Float).SetPrec(106).SetFloat64(BenchFloat641)
	v2 := new(big.Float).SetPrec(106).SetFloat64(BenchFloat642)
	for i := 0; i < b.N; i++ {
		var z big.Float
		z.Quo(v1, v2)
	}
}

func BenchmarkBigFloatSqrt(b *testing.B) {
	v := new(big.Float).SetPrec(106).SetFloat64(BenchFloat641)
	z := new(big.Float).SetPrec(106)
	for i := 0; i < b.N; i++ {
		BenchBigFloatResult = z.Sqrt(v)
	}
}

func BenchmarkBigFloatCmpEqual(b *testing.B) {
	var v1, v2 big.Float
	v1.SetPrec(106).SetFloat64(BenchFloat641)
	v2.SetPrec(106).SetFloat64(BenchFloat641)

	for i := 0; i < b.N; i++ {
		BenchIntResult = v1.Cmp(&v2)
	}
}
