package btree

import (
	"fmt"

	"github.com/forestrie/go-cornerstone/box"
	"github.com/forestrie/go-cornerstone/sfc"
)

// Index is a finalized binary radix tree held in flat parallel arrays, one
// entry per postorder record. It is read only and safe for concurrent use.
type Index[K sfc.Key] struct {
	kind      []NodeKind
	bit       []uint8
	rightSpan []uint32
	size      []uint32
	first     []uint32
	last      []uint32
	boxes     []box.IBox

	root      Ref
	leafCount uint32
}

// Root returns the root record, NoRef for an empty index.
func (x *Index[K]) Root() Ref { return x.root }

// LeafCount returns the number of leaves indexed.
func (x *Index[K]) LeafCount() uint32 { return x.leafCount }

// NodeCount returns the number of records, 2*LeafCount-1.
func (x *Index[K]) NodeCount() uint32 { return uint32(len(x.kind)) }

// NodeKindAt returns the kind of ref.
func (x *Index[K]) NodeKindAt(ref Ref) NodeKind { return x.kind[ref] }

// NodeBit returns the branch crit-bit index (only meaningful for KindBranch).
func (x *Index[K]) NodeBit(ref Ref) uint8 { return x.bit[ref] }

// NodeRightSpan returns the node-count of the right subtree (only meaningful for KindBranch).
func (x *Index[K]) NodeRightSpan(ref Ref) uint32 { return x.rightSpan[ref] }

// NodeSubtreeSize returns the node-count of this subtree (incl this node).
func (x *Index[K]) NodeSubtreeSize(ref Ref) uint32 { return x.size[ref] }

// NodeLeafRange returns the half open range of leaf indices below ref.
func (x *Index[K]) NodeLeafRange(ref Ref) (first, last uint32) {
	return x.first[ref], x.last[ref]
}

// NodeBox returns the box of ref: the leaf box, or the union of all leaf boxes below a branch.
func (x *Index[K]) NodeBox(ref Ref) box.IBox { return x.boxes[ref] }

// Children returns the left and right child refs of a branch.
func (x *Index[K]) Children(ref Ref) (left, right Ref, err error) {
	rs := x.rightSpan[ref]
	if rs == 0 || ref == 0 {
		return 0, 0, fmt.Errorf("%w: ref=%d", ErrInvalidRightSpan, ref)
	}
	right = ref - 1
	left64 := uint64(ref) - 1 - uint64(rs)
	if left64 >= uint64(right) {
		return 0, 0, fmt.Errorf("%w: ref=%d, span=%d", ErrInvalidRightSpan, ref, rs)
	}
	return Ref(left64), right, nil
}

// Verify walks every record and checks the structural invariants: subtree
// sizes, contiguous leaf ranges, crit bits increasing towards the leaves and
// branch boxes equal to the union of their children.
func (x *Index[K]) Verify() error {
	if x.root == NoRef {
		return ErrEmptyIndex
	}
	if uint64(x.root)+1 != uint64(len(x.kind)) || x.size[x.root] != uint32(len(x.kind)) {
		return fmt.Errorf("%w: root=%d, records=%d", ErrInvalidSubtreeSize, x.root, len(x.kind))
	}
	if x.first[x.root] != 0 || x.last[x.root] != x.leafCount {
		return fmt.Errorf("%w: root leaf range [%d,%d)", ErrInvalidSubtreeSize, x.first[x.root], x.last[x.root])
	}
	for i := range x.kind {
		ref := Ref(i)
		switch x.kind[ref] {
		case KindLeaf:
			if x.size[ref] != 1 || x.last[ref] != x.first[ref]+1 {
				return fmt.Errorf("%w: leaf ref=%d", ErrInvalidSubtreeSize, ref)
			}
		case KindBranch:
			left, right, err := x.Children(ref)
			if err != nil {
				return err
			}
			if x.size[ref] != x.size[left]+x.size[right]+1 || x.rightSpan[ref] != x.size[right] {
				return fmt.Errorf("%w: ref=%d", ErrInvalidSubtreeSize, ref)
			}
			if x.first[ref] != x.first[left] || x.last[left] != x.first[right] || x.last[ref] != x.last[right] {
				return fmt.Errorf("%w: leaf ranges of ref=%d", ErrInvalidSubtreeSize, ref)
			}
			for _, c := range []Ref{left, right} {
				if x.kind[c] == KindBranch && x.bit[c] <= x.bit[ref] {
					return fmt.Errorf("%w: ref=%d bit=%d, child=%d bit=%d", ErrInvalidBranchBit, ref, x.bit[ref], c, x.bit[c])
				}
			}
			if x.boxes[ref] != box.Union(x.boxes[left], x.boxes[right]) {
				return fmt.Errorf("btree: branch box is not the union of its children: ref=%d", ref)
			}
		default:
			return fmt.Errorf("%w: ref=%d", ErrInvalidNodeKind, ref)
		}
	}
	return nil
}
