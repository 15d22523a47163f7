package octree

import (
	"fmt"

	"github.com/forestrie/go-cornerstone/box"
	"github.com/forestrie/go-cornerstone/sfc"
)

// Validate checks tree is in cornerstone format.
//
// Every leaf must be a genuine octree node: its width is a power of 8 and its
// start key is a multiple of that width.
func Validate[K sfc.Key](tree []K) error {
	if len(tree) < 2 {
		return fmt.Errorf("%w: got %d", ErrTooFewKeys, len(tree))
	}
	if tree[0] != 0 || tree[len(tree)-1] != sfc.NodeRange[K](0) {
		return fmt.Errorf("%w: first=%d, last=%d", ErrBadRange, tree[0], tree[len(tree)-1])
	}
	for i := 0; i < len(tree)-1; i++ {
		if tree[i+1] <= tree[i] {
			return fmt.Errorf("%w: tree[%d]=%d, tree[%d]=%d", ErrNotIncreasing, i, tree[i], i+1, tree[i+1])
		}
	}
	for i := 0; i < len(tree)-1; i++ {
		width := tree[i+1] - tree[i]
		if !sfc.IsPowerOf8(width) || tree[i]%width != 0 {
			return fmt.Errorf("%w: leaf=%d, key=%d, width=%d", ErrMisaligned, i, tree[i], width)
		}
	}
	return nil
}

// NumNodes returns the number of leaves in tree.
func NumNodes[K sfc.Key](tree []K) int {
	return len(tree) - 1
}

// NodeLevel returns the octree level of leaf i.
func NodeLevel[K sfc.Key](tree []K, i int) uint {
	return sfc.TreeLevel(tree[i+1] - tree[i])
}

// NodeBox returns the integer box of leaf i.
func NodeBox[K sfc.Key](tree []K, i int) box.IBox {
	return box.NodeIBox(tree[i], NodeLevel(tree, i))
}

// MaxUniformLevel is the deepest level MakeUniformTree refines to, 2^30 leaves.
const MaxUniformLevel = 10

// MakeUniformTree returns the cornerstone tree of the fully refined octree at
// level, with 8^level leaves.
func MakeUniformTree[K sfc.Key](level uint) ([]K, error) {
	if level > sfc.MaxTreeLevel[K]() || level > MaxUniformLevel {
		return nil, fmt.Errorf("%w: level=%d", ErrBadLevel, level)
	}
	n := 1 << (3 * level)
	width := sfc.NodeRange[K](level)
	tree := make([]K, n+1)
	for i := range tree {
		tree[i] = K(i) * width
	}
	return tree, nil
}

// Split replaces leaf i of tree into its 8 children and returns the new tree.
// The input is not modified.
func Split[K sfc.Key](tree []K, i int) ([]K, error) {
	level := NodeLevel(tree, i)
	if level >= sfc.MaxTreeLevel[K]() {
		return nil, fmt.Errorf("%w: level=%d", ErrBadLevel, level+1)
	}
	width := sfc.NodeRange[K](level + 1)
	out := make([]K, 0, len(tree)+7)
	out = append(out, tree[:i+1]...)
	for c := K(1); c < 8; c++ {
		out = append(out, tree[i]+c*width)
	}
	return append(out, tree[i+1:]...), nil
}
