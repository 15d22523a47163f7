// Package collisions finds, for every leaf of a cornerstone octree, the leaves
// whose boxes overlap the leaf's halo box.
//
// Engine answers queries by descending a btree.Index and pruning every branch
// whose union box misses the query. FindCollisions2All and
// FindCollisionsAll2All scan all leaves and are kept as the reference the
// engine is tested against.
//
// A leaf is always part of its own collision list, including for a zero
// radius: its halo box is then its own box, which overlaps itself.
//
// Boxes count inclusive integer cells, so a leaf covering [x, x+n-1] and its
// neighbour starting at x+n share no cell and no coordinate plane. With a zero
// radius only the leaf itself is found. Touching boxes do overlap: a halo that
// reaches the first cell of a neighbour, [.., x+n], collects it.
package collisions
