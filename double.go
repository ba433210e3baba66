package dd

import (
	"fmt"
	"math"
	"math/big"
	"strings"
)

// Double is a double-double: a float64 pair (hi, lo) whose unevaluated sum
// carries roughly 106 bits of significand. Values returned by this package
// are normalized so that |lo| <= 0.5*ulp(hi). Double is immutable; all
// operations return new values.
type Double struct {
	hi, lo float64
}

// DoubleFromRaw adopts hi and lo verbatim. It is the only constructor that
// can produce a value violating the non-overlap invariant; callers own the
// consequences. See Raw().
func DoubleFromRaw(hi, lo float64) Double { return Double{hi: hi, lo: lo} }

func DoubleFromFloat64(f float64) Double { return Double{hi: f} }
func DoubleFromInt32(v int32) Double     { return Double{hi: float64(v)} }
func DoubleFromInt(v int) Double         { return DoubleFromInt64(int64(v)) }

// DoubleFromInt64 converts v exactly. float64(v) alone rounds above 2^53,
// so v is split into 32-bit halves that each convert exactly.
func DoubleFromInt64(v int64) Double {
	hi := float64(v>>32) * 4294967296.0
	lo := float64(uint32(v))
	return Double{hi: hi}.AddFloat64(lo)
}

// DoubleFromSum returns a + b to the full precision of the pair: the
// rounded sum in the leading limb, its rounding error in the tail.
func DoubleFromSum(a, b float64) Double {
	s, err := twoSum(a, b)
	return Double{hi: s, lo: err}
}

// DoubleFromDiff returns a - b to the full precision of the pair.
func DoubleFromDiff(a, b float64) Double {
	s, err := twoDiff(a, b)
	return Double{hi: s, lo: err}
}

// DoubleFromProd returns a * b to the full precision of the pair. The
// product of two float64s is always representable exactly.
func DoubleFromProd(a, b float64) Double {
	p, err := twoProd(a, b)
	return Double{hi: p, lo: err}
}

// DoubleFromSqr returns a * a to the full precision of the pair.
func DoubleFromSqr(a float64) Double {
	p, err := twoSqr(a)
	return Double{hi: p, lo: err}
}

// DoubleFromQuo returns a / b to the full precision of the pair. Unlike the
// other pair constructors the quotient is not exact, but it is correct to
// the pair's combined precision.
func DoubleFromQuo(a, b float64) Double {
	q1 := a / b
	p1, p2 := twoProd(q1, b)
	s, e := twoDiff(a, p1)
	e -= p2
	q2 := (s + e) / b
	hi, lo := quickTwoSum(q1, q2)
	return Double{hi: hi, lo: lo}
}

// DoubleFromString parses a decimal or hexadecimal ("0x1.8p+1") constant.
// The sentinel spellings "NaN", "Inf", "+Inf" and "-Inf" are accepted in
// any case. Parsing rounds to nearest.
func DoubleFromString(s string) (out Double, err error) {
	switch {
	case strings.EqualFold(s, "nan"):
		return nan, nil
	case strings.EqualFold(s, "inf"), strings.EqualFold(s, "+inf"):
		return posInf, nil
	case strings.EqualFold(s, "-inf"):
		return negInf, nil
	}
	b, _, err := big.ParseFloat(s, 0, exactPrec, big.ToNearestEven)
	if err != nil {
		return out, fmt.Errorf("dd: string %q invalid", s)
	}
	out, _ = DoubleFromBigFloat(b)
	return out, nil
}

// DoubleFromBigFloat rounds v to the nearest Double. accurate reports
// whether the result represents v exactly.
func DoubleFromBigFloat(v *big.Float) (out Double, accurate bool) {
	hi, _ := v.Float64()
	if math.IsInf(hi, 0) {
		if hi > 0 {
			return posInf, v.IsInf()
		}
		return negInf, v.IsInf()
	}

	rest := new(big.Float).SetPrec(exactPrec).SetFloat64(hi)
	rest.Sub(v, rest)
	lo, _ := rest.Float64()

	h, l := quickTwoSum(hi, lo)
	out = Double{hi: h, lo: l}

	check := new(big.Float).SetPrec(exactPrec).SetFloat64(h)
	check.Add(check, new(big.Float).SetFloat64(l))
	return out, check.Cmp(v) == 0
}

// NaN returns the canonical not-a-number expansion (all limbs NaN).
func NaN() Double { return nan }

// Inf returns the canonical infinity expansion (all limbs infinite):
// positive if sign >= 0, negative if sign < 0.
func Inf(sign int) Double {
	if sign < 0 {
		return negInf
	}
	return posInf
}

func (d Double) IsZero() bool { return d.hi == 0 }
func (d Double) IsOne() bool  { return d.hi == 1 && d.lo == 0 }

func (d Double) IsNaN() bool { return math.IsNaN(d.hi) || math.IsNaN(d.lo) }

// IsInf reports whether d is an infinity, according to sign: positive
// infinity if sign > 0, negative infinity if sign < 0, either if sign == 0.
func (d Double) IsInf(sign int) bool { return math.IsInf(d.hi, sign) }

// Sign returns 1 if d > 0, -1 if d < 0, and 0 otherwise. The leading limb
// alone decides; a normalized pair cannot hide the sign in its tail.
func (d Double) Sign() int {
	if d.hi > 0 {
		return 1
	} else if d.hi < 0 {
		return -1
	}
	return 0
}

// Raw returns the limbs of d. The pair reconstructs with DoubleFromRaw.
func (d Double) Raw() (hi, lo float64) { return d.hi, d.lo }

// Float64 returns d rounded to native precision. For normalized values this
// is exactly the leading limb.
func (d Double) Float64() float64 { return d.hi }

func (d Double) String() string {
	if d.IsNaN() {
		return "NaN"
	}
	if d.IsInf(0) {
		if d.hi > 0 {
			return "+Inf"
		}
		return "-Inf"
	}
	return d.AsBigFloat().Text('g', Digits)
}

func (d Double) Format(s fmt.State, c rune) {
	if d.IsNaN() {
		fmt.Fprint(s, "NaN")
		return
	}
	switch c {
	case 'v', 's':
		fmt.Fprint(s, d.String())
	default:
		d.AsBigFloat().Format(s, c)
	}
}

// AsBigFloat returns d as an exact big.Float. Like big.Float itself it has
// no NaN: passing a NaN Double panics with big.ErrNaN.
func (d Double) AsBigFloat() (b *big.Float) {
	b = new(big.Float).SetPrec(exactPrec).SetFloat64(d.hi)
	if d.lo != 0 {
		b.Add(b, new(big.Float).SetFloat64(d.lo))
	}
	return b
}

// Cmp returns -1 if d < n, 1 if d > n, and 0 otherwise. Comparison is
// lexicographic on the limbs, which orders normalized values correctly.
// Any NaN involvement compares as 0.
func (d Double) Cmp(n Double) int {
	if d.hi > n.hi {
		return 1
	} else if d.hi < n.hi {
		return -1
	} else if d.lo > n.lo {
		return 1
	} else if d.lo < n.lo {
		return -1
	}
	return 0
}

// CmpFloat64 compares d against a native float64.
func (d Double) CmpFloat64(f float64) int {
	if d.hi > f {
		return 1
	} else if d.hi < f {
		return -1
	} else if d.lo > 0 {
		return 1
	} else if d.lo < 0 {
		return -1
	}
	return 0
}

func (d Double) Equal(n Double) bool {
	return d.hi == n.hi && d.lo == n.lo
}

func (d Double) EqualFloat64(f float64) bool {
	return d.hi == f && d.lo == 0
}

func (d Double) GreaterThan(n Double) bool {
	return d.hi > n.hi || (d.hi == n.hi && d.lo > n.lo)
}

func (d Double) GreaterOrEqualTo(n Double) bool {
	return d.hi > n.hi || (d.hi == n.hi && d.lo >= n.lo)
}

func (d Double) LessThan(n Double) bool {
	return d.hi < n.hi || (d.hi == n.hi && d.lo < n.lo)
}

func (d Double) LessOrEqualTo(n Double) bool {
	return d.hi < n.hi || (d.hi == n.hi && d.lo <= n.lo)
}

// MarshalText emits the exact hexadecimal spelling of d ("0x1.92p+01"
// style), which round-trips every finite value bit for bit; 31 decimal
// digits cannot. Sentinels marshal as their String spellings.
func (d Double) MarshalText() ([]byte, error) {
	if d.IsNaN() || d.IsInf(0) {
		return []byte(d.String()), nil
	}
	return []byte(d.AsBigFloat().Text('x', -1)), nil
}

func (d *Double) UnmarshalText(bts []byte) (err error) {
	v, err := DoubleFromString(string(bts))
	if err != nil {
		return err
	}
	*d = v
	return nil
}

func (d Double) MarshalJSON() ([]byte, error) {
	bts, err := d.MarshalText()
	if err != nil {
		return nil, err
	}
	return []byte(`"` + string(bts) + `"`), nil
}

func (d *Double) UnmarshalJSON(bts []byte) (err error) {
	if bts[0] == '"' {
		ln := len(bts)
		if bts[ln-1] != '"' {
			return fmt.Errorf("dd: invalid JSON %q", string(bts))
		}
		bts = bts[1 : ln-1]
	}

	v, err := DoubleFromString(string(bts))
	if err != nil {
		return err
	}
	*d = v
	return nil
}
