package dd

import "math"

// Rounding to integral values, and the remainder family built on it.

// Floor returns the largest integral Double not greater than d.
func (d Double) Floor() Double {
	hi := math.Floor(d.hi)
	var lo float64
	if hi == d.hi {
		// Leading limb already integral; the tail decides whether the
		// value steps down.
		lo = math.Floor(d.lo)
		hi, lo = quickTwoSum(hi, lo)
	}
	return Double{hi: hi, lo: lo}
}

// Ceil returns the smallest integral Double not less than d.
func (d Double) Ceil() Double {
	hi := math.Ceil(d.hi)
	var lo float64
	if hi == d.hi {
		lo = math.Ceil(d.lo)
		hi, lo = quickTwoSum(hi, lo)
	}
	return Double{hi: hi, lo: lo}
}

// Trunc returns d rounded toward zero to an integral Double.
func (d Double) Trunc() Double {
	if d.hi >= 0 {
		return d.Floor()
	}
	return d.Ceil()
}

// Round returns the nearest integral Double, ties to even.
func (d Double) Round() Double {
	hi := math.RoundToEven(d.hi)
	var lo float64

	if hi == d.hi {
		// Leading limb already integral; round the tail and carry.
		lo = math.RoundToEven(d.lo)
		hi, lo = quickTwoSum(hi, lo)
	} else if math.Abs(hi-d.hi) == 0.5 {
		// The leading limb sat exactly on a tie. The tail breaks it; the
		// even choice stands only when the tail is zero.
		if d.lo > 0 && hi < d.hi {
			hi++
		} else if d.lo < 0 && hi > d.hi {
			hi--
		}
	}
	return Double{hi: hi, lo: lo}
}

// Mod returns d - n*Trunc(d/n), the truncated-quotient remainder (fmod).
func (d Double) Mod(n Double) Double {
	q := d.Div(n).Trunc()
	return d.Sub(n.Mul(q))
}

// Remainder returns d - n*Round(d/n), the nearest-quotient remainder
// (IEEE-style drem; a tied quotient rounds to even).
func (d Double) Remainder(n Double) Double {
	q := d.Div(n).Round()
	return d.Sub(n.Mul(q))
}

// DivRem returns the nearest integral quotient of d / n along with the
// matching remainder, so q*n + r reproduces d to working precision.
func (d Double) DivRem(n Double) (q, r Double) {
	q = d.Div(n).Round()
	r = d.Sub(n.Mul(q))
	return q, r
}
