package btree

import "github.com/forestrie/go-cornerstone/sfc"

// critBit returns the first differing MSB-first bit index between a and b.
// ok=false indicates a==b.
func critBit[K sfc.Key](a, b K) (idx uint8, ok bool) {
	if a == b {
		return 0, false
	}
	return uint8(sfc.CommonPrefix(a, b)), true
}

// bitAt returns the bit at index i where i=0 is the MSB of K.
func bitAt[K sfc.Key](x K, i uint8) uint8 {
	shift := sfc.KeyBits[K]() - 1 - uint(i)
	return uint8((x >> shift) & 1)
}
