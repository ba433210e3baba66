package dd

import (
	"math"
	"os"
	"strconv"
)

// Error-free transforms: each returns a result rounded to float64 along with
// the rounding error it incurred, so result + err recovers the exact value.
// Everything above this file is built out of these.

const (
	// splitter is 2^27 + 1, used by split to cut a float64 mantissa into
	// 26 and 27 bit halves. Dekker (1971).
	splitter = 134217729.0

	// splitThresh is 2^996. Values beyond it would overflow when multiplied
	// by splitter, so split rescales them first.
	splitThresh = 6.69692879491417e+299
)

// quickTwoSum computes s = fl(a+b) and its rounding error. Requires
// |a| >= |b| or a == 0; three flops.
func quickTwoSum(a, b float64) (s, err float64) {
	s = a + b
	return s, b - (s - a)
}

// quickTwoDiff computes s = fl(a-b) and its rounding error. Requires
// |a| >= |b| or a == 0.
func quickTwoDiff(a, b float64) (s, err float64) {
	s = a - b
	return s, (a - s) - b
}

// twoSum computes s = fl(a+b) and its rounding error for any ordering of
// the arguments. Knuth's branch-free six-flop version.
func twoSum(a, b float64) (s, err float64) {
	s = a + b
	bb := s - a
	return s, (a - (s - bb)) + (b - bb)
}

// twoDiff computes s = fl(a-b) and its rounding error for any ordering.
func twoDiff(a, b float64) (s, err float64) {
	s = a - b
	bb := s - a
	return s, (a - (s - bb)) - (b + bb)
}

// split cuts a into 26 and 27 bit halves such that a == hi + lo exactly.
// Arguments with magnitude beyond 2^996 are scaled by 2^-28 going in and
// 2^28 coming out to dodge overflow in splitter*a.
func split(a float64) (hi, lo float64) {
	if a > splitThresh || a < -splitThresh {
		a *= 3.7252902984619140625e-09 // 2^-28
		temp := splitter * a
		hi = temp - (temp - a)
		lo = a - hi
		hi *= 268435456.0 // 2^28
		lo *= 268435456.0
		return hi, lo
	}
	temp := splitter * a
	hi = temp - (temp - a)
	return hi, a - hi
}

// twoProd and twoSqr produce p = fl(a*b) and its exact rounding error.
// They are assigned once during package init: the FMA forms where the
// hardware fuses the multiply, the Dekker split forms elsewhere (see the
// fma_*.go files). Both forms compute the same error term exactly, so the
// choice is performance only and results are bit-identical either way.
var (
	twoProd func(a, b float64) (p, err float64)
	twoSqr  func(a float64) (p, err float64)
)

func twoProdFMA(a, b float64) (p, err float64) {
	p = a * b
	return p, math.FMA(a, b, -p)
}

func twoSqrFMA(a float64) (p, err float64) {
	p = a * a
	return p, math.FMA(a, a, -p)
}

func twoProdSplit(a, b float64) (p, err float64) {
	p = a * b
	ahi, alo := split(a)
	bhi, blo := split(b)
	return p, ((ahi*bhi - p) + ahi*blo + alo*bhi) + alo*blo
}

func twoSqrSplit(a float64) (p, err float64) {
	p = a * a
	hi, lo := split(a)
	return p, ((hi*hi - p) + 2.0*hi*lo) + lo*lo
}

// noFMAEnv checks the DD_NO_FMA environment variable. When set, the Dekker
// split product is used regardless of CPU capabilities. Useful for testing
// and debugging.
func noFMAEnv() bool {
	val := os.Getenv("DD_NO_FMA")
	if val == "" {
		return false
	}
	// Any non-empty value is considered true, but also parse as bool
	if b, err := strconv.ParseBool(val); err == nil {
		return b
	}
	return true
}
