//go:build arm64

package dd

func init() {
	// FMA is part of the ARMv8-A base architecture; no feature check
	// needed.
	if noFMAEnv() {
		twoProd = twoProdSplit
		twoSqr = twoSqrSplit
	} else {
		twoProd = twoProdFMA
		twoSqr = twoSqrFMA
	}
}
