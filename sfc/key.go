package sfc

import "math/bits"

// Key is the family of unsigned integers usable as octree keys.
type Key interface {
	~uint32 | ~uint64
}

// KeyBits returns the bit width of K.
func KeyBits[K Key]() uint {
	all := ^K(0)
	return uint(bits.Len64(uint64(all)))
}

// MaxTreeLevel returns the deepest octree level representable with K. This is
// 10 for 32-bit keys and 21 for 64-bit keys.
func MaxTreeLevel[K Key]() uint {
	return KeyBits[K]() / 3
}

// MaxCoord returns the number of integer cells along each axis, 2^MaxTreeLevel.
func MaxCoord[K Key]() int32 {
	return int32(1) << MaxTreeLevel[K]()
}

// NodeRange returns the number of keys covered by a node at level.
func NodeRange[K Key](level uint) K {
	return K(1) << (3 * (MaxTreeLevel[K]() - level))
}

// TreeLevel returns the level of a node whose key range has the given width.
//
// width must be a power of 8 no larger than NodeRange(0).
func TreeLevel[K Key](width K) uint {
	return MaxTreeLevel[K]() - uint(bits.TrailingZeros64(uint64(width)))/3
}

// IsPowerOf8 reports whether n is a power of 8 (1, 8, 64, ...).
func IsPowerOf8[K Key](n K) bool {
	v := uint64(n)
	if v == 0 || v&(v-1) != 0 {
		return false
	}
	return bits.TrailingZeros64(v)%3 == 0
}

// NodeLength returns the edge length, in integer cells, of a node at level.
func NodeLength[K Key](level uint) int32 {
	return int32(1) << (MaxTreeLevel[K]() - level)
}

// EnclosingNode returns the start key of the level node containing key.
func EnclosingNode[K Key](key K, level uint) K {
	return key &^ (NodeRange[K](level) - 1)
}

// OctalDigit returns the octal digit of key at position (level), where the
// digit at level 1 selects one of the 8 children of the root.
func OctalDigit[K Key](key K, level uint) uint {
	shift := 3 * (MaxTreeLevel[K]() - level)
	return uint(key>>shift) & 7
}
