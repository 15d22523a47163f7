package box

import "github.com/forestrie/go-cornerstone/sfc"

// MaxSplit is the largest number of pieces a wrapped box splits into.
const MaxSplit = 8

// SplitWrapped appends to out[:0] the non wrapped pieces of b for a periodic
// domain of extent cells per axis. A box wrapped on k axes yields up to 2^k
// pieces. Pieces lying outside [0, extent) are dropped, so a wrapped axis
// whose bounds are both out of range yields no pieces at all.
func SplitWrapped(b IBox, extent int32, out []IBox) []IBox {
	out = append(out[:0], b)
	for axis := 0; axis < 3; axis++ {
		if !b.Wrapped(axis) {
			continue
		}
		n := len(out)
		for i := 0; i < n; i++ {
			lo := out[i]
			lo.Min[axis] = 0
			out[i].Max[axis] = extent - 1
			if b.Max[axis] >= 0 {
				out = append(out, lo)
			}
		}
		if b.Min[axis] >= extent {
			out = append(out[:0], out[n:]...)
		}
	}
	return out
}

// SplitPeriodic is SplitWrapped over the integer domain of K.
func SplitPeriodic[K sfc.Key](b IBox, out []IBox) []IBox {
	return SplitWrapped(b, sfc.MaxCoord[K](), out)
}
