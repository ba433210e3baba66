package dd

type RandSource interface {
	Uint64() uint64
}

// DifferenceDouble subtracts the smaller of a and b from the larger. If
// either argument is NaN, the result is NaN.
func DifferenceDouble(a, b Double) Double {
	if a.IsNaN() || b.IsNaN() {
		return nan
	}
	if a.hi > b.hi {
		return a.Sub(b)
	} else if a.hi < b.hi {
		return b.Sub(a)
	} else if a.lo > b.lo {
		return a.Sub(b)
	} else if a.lo < b.lo {
		return b.Sub(a)
	}
	return Double{}
}

func LargerDouble(a, b Double) Double {
	if a.hi > b.hi {
		return a
	} else if a.hi < b.hi {
		return b
	} else if a.lo > b.lo {
		return a
	} else if a.lo < b.lo {
		return b
	}
	return a
}

func SmallerDouble(a, b Double) Double {
	if a.hi < b.hi {
		return a
	} else if a.hi > b.hi {
		return b
	} else if a.lo < b.lo {
		return a
	} else if a.lo > b.lo {
		return b
	}
	return a
}
