package sfc

/*

# Space filling curve keys for cornerstone octrees

Package sfc provides the key arithmetic the octree and the collision engine
are built on. Keys are unsigned integers (32 or 64 bit) that interleave the
bits of three integer coordinates in Morton (Z) order, one octal digit per
octree level:

	key = ... x2 y2 z2 | x1 y1 z1 | x0 y0 z0

A 32-bit key carries 10 levels (30 bits), a 64-bit key carries 21 levels
(63 bits). The most significant bit of a 64-bit key is never set, except for
the one past the end key of a cornerstone tree, NodeRange(0).

Like the mmr index arithmetic this is built on, these are small functional
primitives. They place a burden of knowledge on the caller: passing a width
that is not a power of 8 to TreeLevel yields nonsense and is not detected.

## Node ranges and levels

A node at level l spans NodeRange(l) = 8^(maxLevel-l) consecutive keys. The
level of a cornerstone leaf is recovered from the width of its key range:

	level = maxLevel - trailingZeros(width)/3

and its integer box follows from decoding the start key, with an edge length
of 2^(maxLevel-level) integer cells.

*/
