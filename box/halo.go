package box

import (
	"math"

	"github.com/forestrie/go-cornerstone/sfc"
)

// IntRadius converts a physical radius into integer cells along an axis of
// physical extent length, rounding up. The result saturates at MaxCoord, a
// radius that is negative or NaN converts to 0.
func IntRadius[K sfc.Key, T Float](radius T, length T) int64 {
	m := float64(sfc.MaxCoord[K]())
	r := float64(radius) * m / float64(length)
	if !(r > 0) {
		return 0
	}
	if r >= m {
		return int64(m)
	}
	return int64(math.Ceil(r))
}

// MakeHaloIBox expands node by d cells per axis. Periodic axes wrap modulo
// the domain size, the others clamp to it.
func MakeHaloIBox[K sfc.Key](node IBox, d [3]int64, periodic [3]bool) IBox {
	m := int64(sfc.MaxCoord[K]())
	var out IBox
	for i := 0; i < 3; i++ {
		r := min(max(d[i], 0), m)
		lo := int64(node.Min[i]) - r
		hi := int64(node.Max[i]) + r
		if periodic[i] {
			out.Min[i], out.Max[i] = wrapAxis(lo, hi, m)
		} else {
			out.Min[i], out.Max[i] = int32(max(lo, 0)), int32(min(hi, m-1))
		}
	}
	return out
}

func wrapAxis(lo, hi, m int64) (int32, int32) {
	if hi-lo+1 >= m {
		return 0, int32(m - 1)
	}
	lo = ((lo % m) + m) % m
	hi = ((hi % m) + m) % m
	return int32(lo), int32(hi)
}

// MakeHaloBox returns the box of the leaf [loKey, hiKey) expanded by radius,
// converted to integer cells with the scale of global.
func MakeHaloBox[K sfc.Key, T Float](loKey, hiKey K, radius T, global Box[T]) IBox {
	node := NodeIBox(loKey, sfc.TreeLevel(hiKey-loKey))
	var d [3]int64
	for i := 0; i < 3; i++ {
		d[i] = IntRadius[K](radius, global.Length(i))
	}
	return MakeHaloIBox[K](node, d, global.Periodic)
}
