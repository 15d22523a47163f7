package box

import (
	"fmt"

	"github.com/forestrie/go-cornerstone/sfc"
)

// IBox is an axis aligned box in the discretized integer space of the octree.
//
// Bounds are closed and count cells: a node with edge length n starting at x
// covers [x, x+n-1]. On a periodic axis Min > Max denotes the wrapped
// interval [Min, M-1] ∪ [0, Max].
type IBox struct {
	Min [3]int32
	Max [3]int32
}

// NewIBox creates a box from its six bounds.
func NewIBox(xmin, xmax, ymin, ymax, zmin, zmax int32) IBox {
	return IBox{
		Min: [3]int32{xmin, ymin, zmin},
		Max: [3]int32{xmax, ymax, zmax},
	}
}

// NodeIBox returns the box of the octree node starting at key with the given level.
func NodeIBox[K sfc.Key](key K, level uint) IBox {
	x, y, z := sfc.Decode(key)
	n := sfc.NodeLength[K](level) - 1
	return NewIBox(x, x+n, y, y+n, z, z+n)
}

// Wrapped reports whether the interval on axis wraps around the domain.
func (b IBox) Wrapped(axis int) bool {
	return b.Min[axis] > b.Max[axis]
}

// AnyWrapped reports whether any axis of b wraps around the domain.
func (b IBox) AnyWrapped() bool {
	return b.Wrapped(0) || b.Wrapped(1) || b.Wrapped(2)
}

func (b IBox) String() string {
	return fmt.Sprintf("[%d,%d]x[%d,%d]x[%d,%d]", b.Min[0], b.Max[0], b.Min[1], b.Max[1], b.Min[2], b.Max[2])
}

func overlapRange(aLo, aHi, bLo, bHi int32) bool {
	aw, bw := aLo > aHi, bLo > bHi
	switch {
	case !aw && !bw:
		return aLo <= bHi && bLo <= aHi
	case aw && bw:
		// both contain the last cell of the axis
		return true
	case aw:
		return bHi >= aLo || bLo <= aHi
	default:
		return aHi >= bLo || aLo <= bHi
	}
}

// Overlap reports whether a and b intersect on all three axes. Boxes which
// only touch at a boundary (a.Max == b.Min) overlap.
func Overlap(a, b IBox) bool {
	return overlapRange(a.Min[0], a.Max[0], b.Min[0], b.Max[0]) &&
		overlapRange(a.Min[1], a.Max[1], b.Min[1], b.Max[1]) &&
		overlapRange(a.Min[2], a.Max[2], b.Min[2], b.Max[2])
}

// Contains reports whether inner lies completely within outer. A wrapped
// outer axis never contains anything.
func Contains(outer, inner IBox) bool {
	for i := 0; i < 3; i++ {
		if outer.Min[i] > outer.Max[i] {
			return false
		}
		if inner.Min[i] < outer.Min[i] || inner.Max[i] > outer.Max[i] {
			return false
		}
	}
	return true
}

// Union returns the smallest box containing a and b. Neither may be wrapped.
func Union(a, b IBox) IBox {
	u := a
	for i := 0; i < 3; i++ {
		u.Min[i] = min(a.Min[i], b.Min[i])
		u.Max[i] = max(a.Max[i], b.Max[i])
	}
	return u
}
