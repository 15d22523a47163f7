// Package octree implements the cornerstone representation of a linear octree.
//
// A cornerstone tree is a sorted sequence of N+1 keys where each adjacent pair
// (tree[i], tree[i+1]) delimits leaf i. The sequence starts at key 0 and ends
// at NodeRange(0), so the leaves partition the whole space filling curve range
// without gaps or overlaps. Leaf levels and boxes are derived from the keys
// alone, no node objects are materialised.
package octree
