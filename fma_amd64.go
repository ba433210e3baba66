//go:build amd64

package dd

import "golang.org/x/sys/cpu"

func init() {
	if !noFMAEnv() && cpu.X86.HasFMA {
		twoProd = twoProdFMA
		twoSqr = twoSqrFMA
	} else {
		// Pre-Haswell, or forced off: math.FMA would trap to the slow
		// software path, so Dekker wins.
		twoProd = twoProdSplit
		twoSqr = twoSqrSplit
	}
}
