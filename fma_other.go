//go:build !amd64 && !arm64

package dd

func init() {
	// Without known hardware FMA, math.FMA falls back to software
	// emulation; the split product is faster and produces the same bits.
	twoProd = twoProdSplit
	twoSqr = twoSqrSplit
}
