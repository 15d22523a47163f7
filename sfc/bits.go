package sfc

import "math/bits"

// CommonPrefix returns the number of leading bits, counted within the width
// of K, that a and b share. It is KeyBits when a == b.
func CommonPrefix[K Key](a, b K) uint {
	x := uint64(a ^ b)
	return uint(bits.LeadingZeros64(x)) - (64 - KeyBits[K]())
}
