package sfc

// expandBits spaces the lower 21 bits of v out by two zero bits.
func expandBits(v uint64) uint64 {
	v &= 0x1fffff
	v = (v | v<<32) & 0x1f00000000ffff
	v = (v | v<<16) & 0x1f0000ff0000ff
	v = (v | v<<8) & 0x100f00f00f00f00f
	v = (v | v<<4) & 0x10c30c30c30c30c3
	v = (v | v<<2) & 0x1249249249249249
	return v
}

// compactBits is the inverse of expandBits, it keeps every third bit starting
// with the least significant one.
func compactBits(v uint64) uint32 {
	v &= 0x1249249249249249
	v = (v ^ (v >> 2)) & 0x10c30c30c30c30c3
	v = (v ^ (v >> 4)) & 0x100f00f00f00f00f
	v = (v ^ (v >> 8)) & 0x1f0000ff0000ff
	v = (v ^ (v >> 16)) & 0x1f00000000ffff
	v = (v ^ (v >> 32)) & 0x1fffff
	return uint32(v)
}

// Encode interleaves integer coordinates into a Morton key. Coordinates must
// be in [0, MaxCoord).
func Encode[K Key](x, y, z int32) K {
	return K(expandBits(uint64(x))<<2 | expandBits(uint64(y))<<1 | expandBits(uint64(z)))
}

// Decode returns the integer coordinates of the lower corner of key.
func Decode[K Key](key K) (x, y, z int32) {
	k := uint64(key)
	return int32(compactBits(k >> 2)), int32(compactBits(k >> 1)), int32(compactBits(k))
}
