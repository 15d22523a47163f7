package collisions

import "slices"

// CollisionList collects the leaf indices found by one query. It is owned by
// the caller and must not be shared between concurrent queries.
type CollisionList struct {
	indices []int
}

// Add appends a leaf index.
func (c *CollisionList) Add(idx int) {
	c.indices = append(c.indices, idx)
}

// Len returns the number of collisions.
func (c *CollisionList) Len() int { return len(c.indices) }

// At returns the i'th collision in insertion order.
func (c *CollisionList) At(i int) int { return c.indices[i] }

// Indices returns the collected leaf indices. The slice aliases the list.
func (c *CollisionList) Indices() []int { return c.indices }

// Reset empties the list, keeping its storage.
func (c *CollisionList) Reset() { c.indices = c.indices[:0] }

// Contains reports whether idx was collected.
func (c *CollisionList) Contains(idx int) bool {
	return slices.Contains(c.indices, idx)
}

// Sorted returns a sorted copy of the indices.
func (c *CollisionList) Sorted() []int {
	s := slices.Clone(c.indices)
	slices.Sort(s)
	return s
}

// dedupeFrom sorts the indices added after from and removes repeats among them.
func (c *CollisionList) dedupeFrom(from int) {
	tail := c.indices[from:]
	slices.Sort(tail)
	tail = slices.Compact(tail)
	c.indices = c.indices[:from+len(tail)]
}
