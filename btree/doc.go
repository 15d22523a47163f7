package btree

/*

# Binary radix index over cornerstone leaves

This package builds a binary radix tree over the strictly increasing start
keys of the leaves of a cornerstone octree. It is the structure the
collision engine descends to prune whole ranges of leaves whose union box
cannot overlap a query.

It uses the same append-only construction as a crit-bit trie: keys arrive in
increasing order, the split of every internal node is the most significant
bit in which the first and last key of its range differ, and node records are
emitted in postorder into flat, preallocated arrays.

## Core invariants

1. keys are strictly increasing (`newKey > lastKey`)
2. crit bits are indexed MSB first within the width of the key type
3. N leaves produce exactly N-1 branches and 2N-1 records

## Navigation without child refs

Branch records store `rightSpan`, the record count of the right subtree.
For a branch at record index i:

	rightRoot = i - 1
	leftRoot  = i - 1 - rightSpan

and the root is the last record. Every record also carries the half open leaf
range [first, last) it covers and its integer box: a leaf holds its own node
box, a branch holds the exact union of its two children. Because the leaves
of a cornerstone tree tile space in curve order, these unions are tight and a
failed overlap test against a branch discards all of its leaves at once.

## Depth

Crit bits strictly increase from the root towards the leaves, so no path is
longer than the key width. A traversal keeping one pending sibling per level
therefore never needs more than MaxDepth stack entries.

*/
